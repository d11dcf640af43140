// Command basilisc is the compiler-pipeline CLI for the basilisc BASIC
// dialect: tokenize, parse, check, lower to three-address code, build a
// control-flow graph, and optimize it, with one subcommand exposing each
// stage for debugging and tooling.
package main

import (
	"fmt"
	"os"

	"github.com/pc1500/basilisc/cmd/basilisc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
