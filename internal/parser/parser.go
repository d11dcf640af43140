// Package parser implements a recursive-descent parser that turns a
// token.Token stream into an *ast.Program. Parsing aborts at the first
// syntax error: the propagation policy here, unlike the semantic
// checker's, is fail-fast.
package parser

import (
	"github.com/pc1500/basilisc/internal/ast"
	"github.com/pc1500/basilisc/internal/errors"
	"github.com/pc1500/basilisc/internal/lexer"
	"github.com/pc1500/basilisc/internal/token"
)

// Parser consumes a lexer.Lexer and builds an *ast.Program, allocating
// every node from a single Arena owned by the returned program's caller.
type Parser struct {
	lex   *lexer.Lexer
	arena *ast.Arena

	cur  token.Token
	peek token.Token
}

// New creates a Parser over source, ready to call Parse.
func New(source string) *Parser {
	p := &Parser{lex: lexer.New(source), arena: ast.NewArena()}
	return p
}

// Arena returns the arena backing every node the parser allocates. The
// caller must keep it alive for as long as the returned Program is used.
func (p *Parser) Arena() *ast.Arena { return p.arena }

func (p *Parser) advance() error {
	p.cur = p.peek
	t, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.peek = t
	return nil
}

// Parse runs the full parse: lexes two tokens of lookahead, then parses
// every line until EOF.
func (p *Parser) Parse() (*ast.Program, error) {
	// Prime cur/peek.
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	prog := ast.NewProgram()

	for p.cur.Type != token.EOF {
		if p.cur.Type == token.EOL {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}

		line, stmt, err := p.parseLine()
		if err != nil {
			return nil, err
		}
		prog.Set(line, stmt)
	}

	return prog, nil
}

// parseLine parses `lineno stmts EOL`.
func (p *Parser) parseLine() (uint32, ast.Statement, error) {
	if p.cur.Type != token.INT {
		return 0, nil, errors.NewError(errors.ExpectedLineNumber, p.cur.Pos,
			"expected a line number, got %s", p.cur.Type)
	}
	if p.cur.IntValue < 0 {
		return 0, nil, errors.NewError(errors.ExpectedLineNumber, p.cur.Pos,
			"line number must be non-negative")
	}
	line := uint32(p.cur.IntValue)
	if err := p.advance(); err != nil {
		return 0, nil, err
	}

	stmt, err := p.parseStmts()
	if err != nil {
		return 0, nil, err
	}

	if p.cur.Type != token.EOL && p.cur.Type != token.EOF {
		return 0, nil, errors.NewError(errors.UnexpectedToken, p.cur.Pos,
			"unexpected %s after statement", p.cur.Type)
	}
	if p.cur.Type == token.EOL {
		if err := p.advance(); err != nil {
			return 0, nil, err
		}
	}

	return line, stmt, nil
}

// parseStmts parses `atom { ":" atom }`, collapsing a single atom into
// itself rather than wrapping it in a one-element SeqStmt.
func (p *Parser) parseStmts() (ast.Statement, error) {
	first, err := p.parseAtomStmt()
	if err != nil {
		return nil, err
	}

	if p.cur.Type != token.COLON {
		return first, nil
	}

	stmts := []ast.Statement{first}
	for p.cur.Type == token.COLON {
		if err := p.advance(); err != nil {
			return nil, err
		}
		s, err := p.parseAtomStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}

	return p.arena.NewSeq(stmts), nil
}
