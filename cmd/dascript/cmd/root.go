// Package cmd is the cobra command tree for the dascript CLI (spec
// §6.4, SPEC_FULL.md's AMBIENT STACK: "github.com/spf13/cobra ... run,
// compile, repl, version"). Grounded on the teacher's
// cmd/dwscript/cmd/root.go (persistent flags, Execute() entry point, a
// version template baked in at build time via ldflags).
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dascript-lang/dascript/pkg/dascript"
)

// Version information; overridden by -ldflags at release build time,
// matching the teacher's cmd/dwscript/cmd/root.go convention.
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "dascript",
	Short: "daScript interpreter",
	Long: `dascript compiles and runs daScript programs: a statically-typed,
embeddable scripting language with its own type-inference pass and a
tree-of-evaluator-nodes runtime.

This CLI drives the core type-checked AST, inference and SimNode
evaluator; it does not itself implement a lexer or parser (an external
front end is expected to supply one — see ParserPlugin).`,
	Version: Version,
}

// ParserPlugin is the Parser implementation run/compile/repl use to turn
// source text into a *dascript.Program. The core's lexer/parser front
// end is explicitly out of this repository's scope (spec §1); a host
// distribution wires a real one in here (an init() in another package of
// the same binary, or a plugin) before calling Execute. Left nil, run/
// compile/repl report a clear configuration error instead of panicking.
var ParserPlugin dascript.Parser

// SetParser registers the Parser the CLI should use. Call before
// Execute(); the daScript core itself never implements parsing (spec
// §1's explicit external-collaborator list).
func SetParser(p dascript.Parser) { ParserPlugin = p }

func requireParser() (dascript.Parser, error) {
	if ParserPlugin == nil {
		return nil, fmt.Errorf("dascript: no front end registered — call cmd.SetParser before cmd.Execute (the lexer/parser is out of this core's scope, spec §1)")
	}
	return ParserPlugin, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// exitError carries the process exit code spec §6.4 assigns: 0 on
// success, -1 on usage or compile error. Plain Go errors from other
// failure modes (I/O, missing parser plugin) exit 1 via main's default.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

// ExitCode extracts the process exit code from an error returned by
// Execute, defaulting to 1 for an unclassified error and 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exitError); ok {
		return ee.code
	}
	return 1
}

func usageOrCompileError(err error) error { return &exitError{code: -1, err: err} }

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}
