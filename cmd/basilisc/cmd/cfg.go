package cmd

import (
	"fmt"

	"github.com/pc1500/basilisc/internal/cfg"
	"github.com/pc1500/basilisc/internal/tac"
	"github.com/spf13/cobra"
)

var (
	cfgEval     string
	cfgOptimize bool
)

var cfgCmd = &cobra.Command{
	Use:   "cfg [file]",
	Short: "Build the control-flow graph for a BASIC program",
	Long: `Parse, type-check, and lower a BASIC program to three-address code,
then partition it into basic blocks and print the resulting control-flow
graph: each block's instructions followed by its successor block ids.

Pass --optimize to run the constant-fold/simplify fixpoint pass first and
print the optimized graph instead of the raw one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCfg,
}

func init() {
	rootCmd.AddCommand(cfgCmd)
	cfgCmd.Flags().StringVarP(&cfgEval, "eval", "e", "", "inspect inline source instead of reading from file")
	cfgCmd.Flags().BoolVar(&cfgOptimize, "optimize", false, "run the fixpoint optimizer before printing")
}

func runCfg(cmd *cobra.Command, args []string) error {
	input, name, err := readSource(cfgEval, args)
	if err != nil {
		return err
	}

	prog, err := checkSource(name, input)
	if err != nil {
		return err
	}

	var graph *cfg.Graph
	if err := recoverInternal(name, func() {
		lowered := tac.New().Lower(prog)
		graph = cfg.Build(lowered)
	}); err != nil {
		return err
	}

	if cfgOptimize {
		var passes int
		if err := recoverInternal(name, func() {
			passes = cfg.NewOptimizer(graph).Optimize()
		}); err != nil {
			return err
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			fmt.Printf("optimized in %d pass(es)\n---\n", passes)
		}
	}

	fmt.Print(graph.String())
	return nil
}
