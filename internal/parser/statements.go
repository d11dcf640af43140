package parser

import (
	"github.com/pc1500/basilisc/internal/ast"
	"github.com/pc1500/basilisc/internal/errors"
	"github.com/pc1500/basilisc/internal/token"
)

// parseAtomStmt parses a single atomic statement (one "atom" of the
// grammar in spec §6): everything except the colon-joining that
// parseStmts handles.
func (p *Parser) parseAtomStmt() (ast.Statement, error) {
	switch p.cur.Type {
	case token.LET:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseAssignment()
	case token.IDENT:
		return p.parseAssignment()
	case token.PRINT:
		return p.parsePrint()
	case token.INPUT:
		return p.parseInput()
	case token.GOTO:
		if err := p.advance(); err != nil {
			return nil, err
		}
		line, err := p.parseLineNumberOperand()
		if err != nil {
			return nil, err
		}
		return p.arena.NewGoto(line), nil
	case token.GOSUB:
		if err := p.advance(); err != nil {
			return nil, err
		}
		line, err := p.parseLineNumberOperand()
		if err != nil {
			return nil, err
		}
		return p.arena.NewGosub(line), nil
	case token.RETURN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.arena.NewReturn(), nil
	case token.END:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.arena.NewEnd(), nil
	case token.IF:
		return p.parseIf()
	case token.FOR:
		return p.parseFor()
	case token.NEXT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		return p.arena.NewNext(name), nil
	case token.COMMENT:
		text := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.arena.NewRem(text), nil
	}

	return nil, errors.NewError(errors.ExpectedStatement, p.cur.Pos,
		"expected a statement, got %s", p.cur.Type)
}

func (p *Parser) expectIdent() (string, error) {
	if p.cur.Type != token.IDENT {
		return "", errors.NewError(errors.ExpectedIdentifier, p.cur.Pos,
			"expected an identifier, got %s", p.cur.Type)
	}
	name := p.cur.Literal
	if err := p.advance(); err != nil {
		return "", err
	}
	return name, nil
}

// parseLineNumberOperand parses the unsigned line-number literal used by
// GOTO and GOSUB.
func (p *Parser) parseLineNumberOperand() (uint32, error) {
	if p.cur.Type != token.INT || p.cur.IntValue < 0 {
		return 0, errors.NewError(errors.ExpectedUnsigned, p.cur.Pos,
			"expected a line number, got %s", p.cur.Type)
	}
	line := uint32(p.cur.IntValue)
	if err := p.advance(); err != nil {
		return 0, err
	}
	return line, nil
}

// parseAssignment parses `[ "LET" ] ident "=" expr`, with the LET keyword
// (if any) already consumed by the caller.
func (p *Parser) parseAssignment() (ast.Statement, error) {
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != token.EQ {
		return nil, errors.NewError(errors.UnexpectedToken, p.cur.Pos,
			"expected '=' in assignment, got %s", p.cur.Type)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return p.arena.NewLet(name, value), nil
}

// parsePrint parses `"PRINT" expr { ";" expr }`.
func (p *Parser) parsePrint() (ast.Statement, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	args := []ast.Expression{first}
	for p.cur.Type == token.SEMICOLON {
		if err := p.advance(); err != nil {
			return nil, err
		}
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, e)
	}
	return p.arena.NewPrint(args), nil
}

// parseInput parses `"INPUT" [ expr ";" ] ident`. Since a bare variable
// name is itself a valid expression, the disambiguation is: parse an
// expression, then check whether a ';' follows. If it does, the parsed
// expression was the prompt and an identifier must follow; if not, the
// parsed expression must itself have been a plain variable reference.
func (p *Parser) parseInput() (ast.Statement, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.cur.Type == token.SEMICOLON {
		if err := p.advance(); err != nil {
			return nil, err
		}
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		return p.arena.NewInput(first, name), nil
	}

	v, ok := first.(*ast.VariableRef)
	if !ok {
		return nil, errors.NewError(errors.ExpectedIdentifier, p.cur.Pos,
			"INPUT destination must be a variable")
	}
	return p.arena.NewInput(nil, v.Name), nil
}

// parseIf parses `"IF" expr [ "THEN" ] atom [ "ELSE" atom ]`.
func (p *Parser) parseIf() (ast.Statement, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.cur.Type == token.THEN {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	then, err := p.parseAtomStmt()
	if err != nil {
		return nil, err
	}

	var els ast.Statement
	if p.cur.Type == token.ELSE {
		if err := p.advance(); err != nil {
			return nil, err
		}
		els, err = p.parseAtomStmt()
		if err != nil {
			return nil, err
		}
	}

	return p.arena.NewIf(cond, then, els), nil
}

// parseFor parses `"FOR" ident "=" expr "TO" expr [ "STEP" expr ]`.
func (p *Parser) parseFor() (ast.Statement, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != token.EQ {
		return nil, errors.NewError(errors.UnexpectedToken, p.cur.Pos,
			"expected '=' in FOR, got %s", p.cur.Type)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	from, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != token.TO {
		return nil, errors.NewError(errors.UnexpectedToken, p.cur.Pos,
			"expected TO in FOR, got %s", p.cur.Type)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	to, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	var step ast.Expression
	if p.cur.Type == token.STEP {
		if err := p.advance(); err != nil {
			return nil, err
		}
		step, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	return p.arena.NewFor(name, from, to, step), nil
}
