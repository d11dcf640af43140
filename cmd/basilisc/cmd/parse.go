package cmd

import (
	"fmt"

	"github.com/pc1500/basilisc/internal/ast"
	"github.com/spf13/cobra"
)

var parseEval string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a BASIC program and print it back as source",
	Long: `Parse BASIC source code and pretty-print the resulting AST back as
source text, one line per program line in ascending line-number order.

If no file is provided, reads from standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline source instead of reading from file")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, name, err := readSource(parseEval, args)
	if err != nil {
		return err
	}

	prog, err := parseSource(name, input)
	if err != nil {
		return err
	}

	fmt.Print(ast.NewPrinter().Print(prog))
	return nil
}
