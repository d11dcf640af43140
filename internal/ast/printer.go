package ast

import (
	"fmt"
	"strings"
)

// Printer reconstructs BASIC source text from a Program, one output line
// per program line. It is peripheral to the compiler core — informational
// tooling, not a roundtrip-exact formatter: expression parenthesization
// is normalized rather than preserved, and REM comments are reproduced
// from their stored text, not original whitespace.
type Printer struct{}

// NewPrinter creates a Printer.
func NewPrinter() *Printer { return &Printer{} }

// Print renders the whole program, one source line per program line, in
// ascending line-number order.
func (p *Printer) Print(prog *Program) string {
	var sb strings.Builder
	for _, line := range prog.Lines() {
		stmt, _ := prog.Get(line)
		fmt.Fprintf(&sb, "%d %s\n", line, p.stmt(stmt))
	}
	return sb.String()
}

func (p *Printer) stmt(s Statement) string {
	switch st := s.(type) {
	case *LetStmt:
		return fmt.Sprintf("LET %s = %s", st.Name, p.expr(st.Value))
	case *PrintStmt:
		parts := make([]string, len(st.Args))
		for i, a := range st.Args {
			parts[i] = p.expr(a)
		}
		return "PRINT " + strings.Join(parts, "; ")
	case *InputStmt:
		if st.Prompt != nil {
			return fmt.Sprintf("INPUT %s; %s", p.expr(st.Prompt), st.Name)
		}
		return fmt.Sprintf("INPUT %s", st.Name)
	case *ForStmt:
		if st.Step != nil {
			return fmt.Sprintf("FOR %s = %s TO %s STEP %s", st.Var, p.expr(st.From), p.expr(st.To), p.expr(st.Step))
		}
		return fmt.Sprintf("FOR %s = %s TO %s", st.Var, p.expr(st.From), p.expr(st.To))
	case *NextStmt:
		return fmt.Sprintf("NEXT %s", st.Var)
	case *GotoStmt:
		return fmt.Sprintf("GOTO %d", st.Line)
	case *GosubStmt:
		return fmt.Sprintf("GOSUB %d", st.Line)
	case *ReturnStmt:
		return "RETURN"
	case *EndStmt:
		return "END"
	case *IfStmt:
		if st.Else != nil {
			return fmt.Sprintf("IF %s THEN %s ELSE %s", p.expr(st.Cond), p.stmt(st.Then), p.stmt(st.Else))
		}
		return fmt.Sprintf("IF %s THEN %s", p.expr(st.Cond), p.stmt(st.Then))
	case *SeqStmt:
		parts := make([]string, len(st.Stmts))
		for i, s := range st.Stmts {
			parts[i] = p.stmt(s)
		}
		return strings.Join(parts, " : ")
	case *RemStmt:
		return "REM " + st.Text
	default:
		return fmt.Sprintf("<unknown %s>", stmtKind(s))
	}
}

func (p *Printer) expr(e Expression) string {
	switch ex := e.(type) {
	case *IntegerLiteral:
		return fmt.Sprintf("%d", ex.Value)
	case *StringLiteral:
		return fmt.Sprintf("%q", ex.Value)
	case *VariableRef:
		return ex.Name
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", p.expr(ex.Left), ex.Op, p.expr(ex.Right))
	default:
		return e.String()
	}
}
