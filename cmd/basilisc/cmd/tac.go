package cmd

import (
	"fmt"

	"github.com/pc1500/basilisc/internal/tac"
	"github.com/spf13/cobra"
)

var (
	tacEval        string
	tacPreserveRem bool
)

var tacCmd = &cobra.Command{
	Use:   "tac [file]",
	Short: "Lower a BASIC program to three-address code",
	Long: `Parse, type-check, and lower a BASIC program to three-address code,
printing the flat instruction stream produced by lowering.

If no file is provided, reads from standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTac,
}

func init() {
	rootCmd.AddCommand(tacCmd)
	tacCmd.Flags().StringVarP(&tacEval, "eval", "e", "", "lower inline source instead of reading from file")
	tacCmd.Flags().BoolVar(&tacPreserveRem, "preserve-rem", false, "keep REM comments as Remark no-ops in the listing")
}

func runTac(cmd *cobra.Command, args []string) error {
	input, name, err := readSource(tacEval, args)
	if err != nil {
		return err
	}

	prog, err := checkSource(name, input)
	if err != nil {
		return err
	}

	var lowered *tac.Program
	if err := recoverInternal(name, func() {
		lowered = tac.New(tac.WithPreserveRem(tacPreserveRem)).Lower(prog)
	}); err != nil {
		return err
	}
	fmt.Print(lowered.String())

	if len(lowered.Strings) > 0 {
		fmt.Println("---")
		fmt.Println("string table:")
		for i, s := range lowered.Strings {
			fmt.Printf("  $%d = %q\n", i, s)
		}
	}
	return nil
}
