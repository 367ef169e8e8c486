package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/dascript-lang/dascript/internal/debuginfo"
	"github.com/dascript-lang/dascript/internal/sim"
	"github.com/dascript-lang/dascript/pkg/dascript"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	faint  = color.New(color.Faint).SprintFunc()
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive daScript session",
	Long: `A line-editing read-eval-print loop (SPEC_FULL.md's AMBIENT STACK:
github.com/peterh/liner for history/editing, github.com/fatih/color for
colorized output), grounded on sunholo-data-ailang's internal/repl/repl.go.

Each line is compiled as a complete one-shot script; if it declares a
"main" function, that function is invoked and its result printed.
":quit" (or ":q") exits and ":help" prints a short usage line.`,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	parser, err := requireParser()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", bold("dascript"), bold(Version))
	fmt.Fprintln(out, faint("Type :help for help, :quit to exit"))

	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(false)

	historyFile := filepath.Join(os.TempDir(), ".dascript_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		text, err := line.Prompt("ds> ")
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		line.AppendHistory(text)

		switch text {
		case ":quit", ":q":
			return nil
		case ":help":
			fmt.Fprintln(out, faint(":quit to exit, anything else is evaluated as a script"))
			continue
		}

		evalREPLLine(out, parser, text)
	}
}

// evalREPLLine compiles text as a one-shot script and, if it declares a
// "main" function, runs it, printing the result or exception in color.
func evalREPLLine(out io.Writer, parser dascript.Parser, text string) {
	fa := dascript.MapFileAccess{"<repl>": text}
	prog, err := dascript.Compile("<repl>", fa, parser)
	if err != nil {
		fmt.Fprintln(out, red(err.Error()))
		return
	}
	if prog.Failed() {
		fmt.Fprintln(out, red(prog.Errors().Error()))
		return
	}

	ctx, err := prog.Simulate(sim.DefaultOptions())
	if err != nil {
		fmt.Fprintln(out, red(err.Error()))
		return
	}
	ctx.SetDebugSink(debuginfo.NewPrinter(func(s string) { fmt.Fprintln(out, cyan(s)) }))

	idx, ok := ctx.FindFunction("main")
	if !ok {
		fmt.Fprintln(out, faint("(no main function declared)"))
		return
	}
	result, ok := ctx.Eval(idx, nil)
	if !ok {
		msg, _ := ctx.Exception()
		fmt.Fprintln(out, red("exception: "+msg))
		return
	}
	fmt.Fprintln(out, green(fmt.Sprintf("= %d", result.Int64())))
}
