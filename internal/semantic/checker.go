// Package semantic validates an *ast.Program before it is lowered: type
// discipline by the '$' suffix rule, GOTO/GOSUB target resolution, and
// FOR/NEXT pairing. Every error found is collected and reported together
// — the checker never stops at the first one, unlike the lexer and
// parser — and lowering only proceeds once Check reports no errors.
package semantic

import (
	"strings"

	"github.com/pc1500/basilisc/internal/ast"
	"github.com/pc1500/basilisc/internal/errors"
	"github.com/pc1500/basilisc/internal/token"
)

// Checker walks a Program collecting semantic errors.
type Checker struct {
	prog        *ast.Program
	diag        errors.Diagnostics
	forStack    []string
	currentLine int
}

// NewChecker creates a Checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Check validates prog and returns every diagnostic found. An empty
// Diagnostics (HasErrors() == false) means the program is safe to lower.
func (c *Checker) Check(prog *ast.Program) *errors.Diagnostics {
	c.prog = prog
	for _, line := range prog.Lines() {
		c.currentLine = int(line)
		stmt, _ := prog.Get(line)
		c.checkStmt(stmt)
	}
	return &c.diag
}

func (c *Checker) pos() token.Position {
	return token.Position{Line: c.currentLine}
}

func varTypeOf(name string) ast.VarType {
	if strings.HasSuffix(name, "$") {
		return ast.StringType
	}
	return ast.IntegerType
}

func (c *Checker) checkStmt(s ast.Statement) {
	switch st := s.(type) {
	case *ast.LetStmt:
		valueType := c.checkExpr(st.Value)
		if varTypeOf(st.Name) != valueType {
			c.diag.Add(errors.NewError(errors.TypeMismatch, c.pos(),
				"cannot assign %s value to %s variable %s", valueType, varTypeOf(st.Name), st.Name))
		}

	case *ast.PrintStmt:
		for _, arg := range st.Args {
			c.checkExpr(arg)
		}

	case *ast.InputStmt:
		if st.Prompt != nil {
			c.checkExpr(st.Prompt)
		}

	case *ast.ForStmt:
		if varTypeOf(st.Var) != ast.IntegerType {
			c.diag.Add(errors.NewError(errors.NonIntegerLoopComponent, c.pos(),
				"FOR loop variable %s must be INTEGER", st.Var))
		}
		if t := c.checkExpr(st.From); t != ast.IntegerType {
			c.diag.Add(errors.NewError(errors.NonIntegerLoopComponent, c.pos(),
				"FOR lower bound must be INTEGER, got %s", t))
		}
		if t := c.checkExpr(st.To); t != ast.IntegerType {
			c.diag.Add(errors.NewError(errors.NonIntegerLoopComponent, c.pos(),
				"FOR upper bound must be INTEGER, got %s", t))
		}
		if st.Step != nil {
			if t := c.checkExpr(st.Step); t != ast.IntegerType {
				c.diag.Add(errors.NewError(errors.NonIntegerLoopComponent, c.pos(),
					"FOR step must be INTEGER, got %s", t))
			}
		}
		c.forStack = append(c.forStack, st.Var)

	case *ast.NextStmt:
		if len(c.forStack) == 0 {
			c.diag.Add(errors.NewError(errors.NextWithoutFor, c.pos(),
				"NEXT %s without a matching FOR", st.Var))
			return
		}
		top := c.forStack[len(c.forStack)-1]
		c.forStack = c.forStack[:len(c.forStack)-1]
		if top != st.Var {
			c.diag.Add(errors.NewError(errors.ForNextMismatch, c.pos(),
				"NEXT %s does not match innermost FOR %s", st.Var, top))
		}

	case *ast.GotoStmt:
		if !c.prog.Has(st.Line) {
			c.diag.Add(errors.NewError(errors.UndefinedLineTarget, c.pos(),
				"GOTO target line %d does not exist", st.Line))
		}

	case *ast.GosubStmt:
		if !c.prog.Has(st.Line) {
			c.diag.Add(errors.NewError(errors.UndefinedLineTarget, c.pos(),
				"GOSUB target line %d does not exist", st.Line))
		}

	case *ast.ReturnStmt, *ast.EndStmt:
		// No validation needed.

	case *ast.IfStmt:
		if t := c.checkExpr(st.Cond); t != ast.IntegerType {
			c.diag.Add(errors.NewError(errors.NonIntegerCondition, c.pos(),
				"IF condition must be INTEGER, got %s", t))
		}
		c.checkStmt(st.Then)
		if st.Else != nil {
			c.checkStmt(st.Else)
		}

	case *ast.SeqStmt:
		for _, inner := range st.Stmts {
			c.checkStmt(inner)
		}

	case *ast.RemStmt:
		// No validation needed.
	}
}

// checkExpr validates e and returns its inferred type, recursing into
// operands even when it can't determine a type (IntegerType is used as a
// type to allow the rest of the program to keep checking, since an
// untyped failure would otherwise cascade into spurious mismatches).
func (c *Checker) checkExpr(e ast.Expression) ast.VarType {
	switch ex := e.(type) {
	case *ast.IntegerLiteral:
		return ast.IntegerType

	case *ast.StringLiteral:
		return ast.StringType

	case *ast.VariableRef:
		if ex.IsString() {
			return ast.StringType
		}
		return ast.IntegerType

	case *ast.BinaryExpr:
		leftType := c.checkExpr(ex.Left)
		rightType := c.checkExpr(ex.Right)

		switch {
		case ex.Op.IsArithmetic() || ex.Op.IsLogical():
			if leftType != ast.IntegerType {
				c.diag.Add(errors.NewError(errors.TypeMismatch, c.pos(),
					"left operand of %s must be INTEGER, got %s", ex.Op, leftType))
			}
			if rightType != ast.IntegerType {
				c.diag.Add(errors.NewError(errors.TypeMismatch, c.pos(),
					"right operand of %s must be INTEGER, got %s", ex.Op, rightType))
			}
			return ast.IntegerType

		case ex.Op.IsComparison():
			if leftType != rightType {
				c.diag.Add(errors.NewError(errors.TypeMismatch, c.pos(),
					"comparison operands must match in type, got %s and %s", leftType, rightType))
			}
			return ast.IntegerType
		}
	}

	return ast.IntegerType
}
