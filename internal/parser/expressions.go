package parser

import (
	"github.com/pc1500/basilisc/internal/ast"
	"github.com/pc1500/basilisc/internal/errors"
	"github.com/pc1500/basilisc/internal/token"
)

// parseExpression is the entry point for expression parsing, at the
// loosest-binding precedence level: logical AND/OR.
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseLogical()
}

// parseLogical parses left-associative AND/OR, the loosest-binding level.
func (p *Parser) parseLogical() (ast.Expression, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == token.AND || p.cur.Type == token.OR {
		op := ast.And
		if p.cur.Type == token.OR {
			op = ast.Or
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = p.arena.NewBinary(left, op, right)
	}
	return left, nil
}

// parseComparison parses a single, non-associative comparison: at most
// one `= <> < <= > >=` may appear at this level, evaluated left-to-right
// against its already-parsed operands (chained comparisons like
// `a = b = c` are not part of the grammar).
func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if !p.cur.Type.IsComparison() {
		return left, nil
	}
	op := comparisonOp(p.cur.Type)
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return p.arena.NewBinary(left, op, right), nil
}

func comparisonOp(tt token.Type) ast.BinaryOp {
	switch tt {
	case token.EQ:
		return ast.Eq
	case token.NEQ:
		return ast.Ne
	case token.LT:
		return ast.Lt
	case token.LE:
		return ast.Le
	case token.GT:
		return ast.Gt
	case token.GE:
		return ast.Ge
	}
	panic("parser: comparisonOp called on non-comparison token")
}

// parseAdditive parses left-associative + -.
func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == token.PLUS || p.cur.Type == token.MINUS {
		op := ast.Add
		if p.cur.Type == token.MINUS {
			op = ast.Sub
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = p.arena.NewBinary(left, op, right)
	}
	return left, nil
}

// parseMultiplicative parses left-associative * /.
func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == token.STAR || p.cur.Type == token.SLASH {
		op := ast.Mul
		if p.cur.Type == token.SLASH {
			op = ast.Div
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = p.arena.NewBinary(left, op, right)
	}
	return left, nil
}

// parseUnary parses right-associative unary +/-. The AST has no unary
// node: a leading '+' is a no-op and is discarded, while a leading '-' is
// desugared to `0 - operand`, since spec §3 defines Expression as having
// only literal, variable, and binary-operation variants.
func (p *Parser) parseUnary() (ast.Expression, error) {
	switch p.cur.Type {
	case token.PLUS:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseUnary()
	case token.MINUS:
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return p.arena.NewBinary(p.arena.NewInteger(0), ast.Sub, operand), nil
	}
	return p.parseAtom()
}

// parseAtom parses the tightest-binding level: literals, variables, and
// parenthesized expressions.
func (p *Parser) parseAtom() (ast.Expression, error) {
	switch p.cur.Type {
	case token.INT:
		v := p.cur.IntValue
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.arena.NewInteger(v), nil
	case token.STRING:
		v := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.arena.NewString(v), nil
	case token.IDENT:
		v := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.arena.NewVariable(v), nil
	case token.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.cur.Type != token.RPAREN {
			return nil, errors.NewError(errors.MismatchedParentheses, p.cur.Pos,
				"expected ')', got %s", p.cur.Type)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil
	case token.EOF:
		return nil, errors.NewError(errors.UnexpectedEOF, p.cur.Pos, "unexpected end of input in expression")
	}

	return nil, errors.NewError(errors.ExpectedExpression, p.cur.Pos,
		"expected an expression, got %s", p.cur.Type)
}
