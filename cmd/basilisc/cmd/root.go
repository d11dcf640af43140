package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "basilisc",
	Short: "Compiler pipeline for the basilisc BASIC dialect",
	Long: `basilisc drives a line-numbered BASIC dialect through its compiler
pipeline: lexer, parser, semantic checker, three-address-code lowering,
control-flow graph construction, and constant-fold optimization.

Each pipeline stage is exposed as its own subcommand so the pipeline can
be inspected one stage at a time during development:

  basilisc lex      tokenize a source file
  basilisc parse    parse and print the AST back as source text
  basilisc symbols  list every variable a program references
  basilisc tac       lower to three-address code
  basilisc cfg       build (and optionally optimize) the control-flow graph
  basilisc compile   run the whole pipeline and report diagnostics`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
