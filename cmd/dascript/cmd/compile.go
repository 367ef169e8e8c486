package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dascript-lang/dascript/pkg/dascript"
)

var compileCmd = &cobra.Command{
	Use:   "compile <file>",
	Short: "Type-check a daScript file without running it",
	Long: `Parses and infers the given file (spec §6.1's compile/infer pipeline)
and reports any compile diagnostics, without simulating or invoking an
entry function.`,
	Args: cobra.ExactArgs(1),
	RunE: compileFile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
}

func compileFile(cmd *cobra.Command, args []string) error {
	parser, err := requireParser()
	if err != nil {
		return err
	}

	prog, err := dascript.Compile(args[0], osFileAccess{}, parser)
	if prog != nil && prog.Failed() {
		return usageOrCompileError(prog.Errors())
	}
	if err != nil {
		return usageOrCompileError(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("%s: OK", args[0]))
	return nil
}
