// Package token defines the lexical token vocabulary shared by the lexer
// and parser.
package token

import "fmt"

// Position identifies a location in BASIC source text. Lines and columns
// are both 1-based.
type Position struct {
	Line   int
	Column int
}

// String renders the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
