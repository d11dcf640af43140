package cmd

import (
	"fmt"

	"github.com/pc1500/basilisc/internal/ast"
	"github.com/spf13/cobra"
)

var symbolsEval string

var symbolsCmd = &cobra.Command{
	Use:   "symbols [file]",
	Short: "List every variable a program references",
	Long: `Parse a BASIC program and list every variable it references, in
first-sighting order, along with its inferred type (INTEGER or STRING,
by the trailing '$' suffix rule).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSymbols,
}

func init() {
	rootCmd.AddCommand(symbolsCmd)
	symbolsCmd.Flags().StringVarP(&symbolsEval, "eval", "e", "", "inspect inline source instead of reading from file")
}

func runSymbols(cmd *cobra.Command, args []string) error {
	input, name, err := readSource(symbolsEval, args)
	if err != nil {
		return err
	}

	prog, err := parseSource(name, input)
	if err != nil {
		return err
	}

	st := ast.NewSymbolTable()
	st.Collect(prog)

	for _, n := range st.Names() {
		typ, _ := st.Type(n)
		fmt.Printf("%-10s %s\n", n, typ)
	}
	return nil
}
