package cmd

import (
	"fmt"
	"os"

	"github.com/pc1500/basilisc/internal/cfg"
	"github.com/pc1500/basilisc/internal/config"
	"github.com/pc1500/basilisc/internal/tac"
	"github.com/spf13/cobra"
)

var (
	compileConfigPath string
	compileOptimize   bool
	compileVerbose    bool
)

var compileCmd = &cobra.Command{
	Use:   "compile <file>",
	Short: "Run the full pipeline over a BASIC file and report diagnostics",
	Long: `Compile runs every pipeline stage over a BASIC source file — lex,
parse, semantic check, lower to three-address code, build the control-flow
graph, and (unless disabled) optimize it — reporting the first diagnostic
that fails the run, or a summary of the resulting graph on success.

Examples:
  # Compile and optimize a program
  basilisc compile program.bas

  # Compile without optimizing
  basilisc compile --optimize=false program.bas

  # Load limits from a project config file
  basilisc compile --config basilisc.yaml program.bas`,
	Args: cobra.ExactArgs(1),
	RunE: compileFile,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVar(&compileConfigPath, "config", "", "path to a YAML config file (see internal/config)")
	compileCmd.Flags().BoolVar(&compileOptimize, "optimize", true, "run the fixpoint optimizer")
	compileCmd.Flags().BoolVarP(&compileVerbose, "verbose", "v", false, "verbose output")
}

func compileFile(cmd *cobra.Command, args []string) error {
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	input := string(content)

	opts := config.New()
	if compileConfigPath != "" {
		opts, err = config.LoadFile(compileConfigPath)
		if err != nil {
			return err
		}
	}

	if opts.MaxLines() > 0 {
		if n := countLines(input); n > opts.MaxLines() {
			return fmt.Errorf("%s: %d lines exceeds the configured limit of %d", filename, n, opts.MaxLines())
		}
	}

	if compileVerbose {
		fmt.Fprintf(os.Stderr, "Compiling %s...\n", filename)
	}

	prog, err := checkSource(filename, input)
	if err != nil {
		return err
	}

	var lowered *tac.Program
	var graph *cfg.Graph
	if err := recoverInternal(filename, func() {
		lowered = tac.New(tac.WithPreserveRem(opts.PreserveRem())).Lower(prog)
		graph = cfg.Build(lowered)
	}); err != nil {
		return err
	}

	if compileOptimize {
		var passes int
		if err := recoverInternal(filename, func() {
			optimizer := cfg.NewOptimizer(graph)
			if n := opts.MaxOptimizerPasses(); n > 0 {
				optimizer = optimizer.WithMaxPasses(n)
			}
			passes = optimizer.Optimize()
		}); err != nil {
			return err
		}
		if compileVerbose {
			fmt.Fprintf(os.Stderr, "Optimized in %d pass(es)\n", passes)
		}
	}

	fmt.Printf("Compiled %s: %d instruction(s), %d block(s)\n", filename, len(lowered.Instructions), len(graph.Blocks))
	return nil
}

func countLines(src string) int {
	n := 0
	for _, c := range src {
		if c == '\n' {
			n++
		}
	}
	if len(src) > 0 && src[len(src)-1] != '\n' {
		n++
	}
	return n
}
