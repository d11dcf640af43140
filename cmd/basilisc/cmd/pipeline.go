package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pc1500/basilisc/internal/ast"
	"github.com/pc1500/basilisc/internal/parser"
	"github.com/pc1500/basilisc/internal/semantic"
)

func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}
	return string(data), nil
}

// parseSource runs the lexer and parser over input, returning a
// diagnostics-formatted error on any syntax error.
func parseSource(name, input string) (*ast.Program, error) {
	p := parser.New(input)
	prog, err := p.Parse()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return prog, nil
}

// checkSource runs parseSource followed by the semantic checker, the
// shared entry point for every subcommand past parse that needs a
// type-clean program (tac, cfg, compile).
func checkSource(name, input string) (*ast.Program, error) {
	prog, err := parseSource(name, input)
	if err != nil {
		return nil, err
	}
	diag := semantic.NewChecker().Check(prog)
	if diag.HasErrors() {
		return nil, fmt.Errorf("%s: semantic errors:\n%s", name, diag.Error())
	}
	return prog, nil
}

// recoverInternal runs fn, converting any panic into a plain error. The
// lowering and CFG-building stages panic on an internal invariant
// violation (a program the semantic checker should already have
// rejected) rather than returning an error value, since that situation
// is a compiler bug, not a reportable program error; the CLI is the one
// place that turns it back into something a user can paste into a bug
// report instead of a raw stack trace.
func recoverInternal(name string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: internal compiler error: %v", name, r)
		}
	}()
	fn()
	return nil
}
