// Command dascript is the standalone runner spec.md §6.4 describes:
// compile each file, simulate, and invoke a named entry function.
package main

import (
	"fmt"
	"os"

	"github.com/dascript-lang/dascript/cmd/dascript/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	if code := cmd.ExitCode(err); code != 0 {
		os.Exit(code)
	}
}
