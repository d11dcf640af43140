// Package errors provides the compiler's diagnostic taxonomy and
// source-context formatting, following the same Kind-tagged error shape
// the rest of this compiler's stages use to report failures.
package errors

import (
	"fmt"
	"strings"

	"github.com/pc1500/basilisc/internal/token"
)

// Kind classifies a CompilerError into the lexical/syntactic/semantic
// taxonomy.
type Kind string

const (
	// Lexical.
	UnexpectedCharacter Kind = "unexpected_character"
	InvalidNumber       Kind = "invalid_number"
	UnterminatedString  Kind = "unterminated_string"

	// Syntactic.
	UnexpectedToken        Kind = "unexpected_token"
	UnexpectedEOF          Kind = "unexpected_eof"
	ExpectedExpression     Kind = "expected_expression"
	ExpectedStatement      Kind = "expected_statement"
	ExpectedIdentifier     Kind = "expected_identifier"
	ExpectedUnsigned       Kind = "expected_unsigned"
	ExpectedLineNumber     Kind = "expected_line_number"
	MismatchedParentheses  Kind = "mismatched_parentheses"

	// Semantic.
	TypeMismatch           Kind = "type_mismatch"
	UndefinedLineTarget    Kind = "undefined_line_target"
	ForNextMismatch        Kind = "for_next_mismatch"
	NextWithoutFor         Kind = "next_without_for"
	NonIntegerLoopComponent Kind = "non_integer_loop_component"
	NonIntegerCondition    Kind = "non_integer_condition"
)

// CompilerError is a single diagnostic: a classified Kind, a human
// message, and the source position it refers to.
type CompilerError struct {
	Kind    Kind
	Message string
	Pos     token.Position
}

// NewError builds a CompilerError with the given kind, position, and a
// printf-style message.
func NewError(kind Kind, pos token.Position, format string, args ...any) *CompilerError {
	return &CompilerError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}

// Error implements the error interface.
func (e *CompilerError) Error() string {
	return fmt.Sprintf("%s: %s (at %s)", e.Kind, e.Message, e.Pos)
}

// Format renders the error with the offending source line and a caret
// pointing at the column, for CLI-facing output. Callers embedding the
// core packages in a non-terminal context can ignore this and use Error()
// or the Kind/Pos fields directly.
func (e *CompilerError) Format(source string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "error at %s: %s\n", e.Pos, e.Message)

	lines := strings.Split(source, "\n")
	if e.Pos.Line >= 1 && e.Pos.Line <= len(lines) {
		line := lines[e.Pos.Line-1]
		prefix := fmt.Sprintf("%5d | ", e.Pos.Line)
		fmt.Fprintf(&sb, "%s%s\n", prefix, line)
		col := e.Pos.Column
		if col < 1 {
			col = 1
		}
		sb.WriteString(strings.Repeat(" ", len(prefix)+col-1))
		sb.WriteString("^")
	}

	return sb.String()
}

// Diagnostics accumulates multiple CompilerErrors, for stages (the
// semantic checker) whose propagation policy is to collect every error
// and report them together rather than abort on the first.
type Diagnostics struct {
	Errors []*CompilerError
}

// Add appends an error to the collection.
func (d *Diagnostics) Add(err *CompilerError) {
	d.Errors = append(d.Errors, err)
}

// HasErrors reports whether any diagnostic has been recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Error implements the error interface, rendering every collected
// diagnostic.
func (d *Diagnostics) Error() string {
	if len(d.Errors) == 0 {
		return "no errors"
	}
	if len(d.Errors) == 1 {
		return d.Errors[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d errors:\n", len(d.Errors))
	for i, e := range d.Errors {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, e.Error())
	}
	return sb.String()
}
