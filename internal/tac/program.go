package tac

import "strings"

// Program is the flat, fully-resolved TAC instruction stream that
// lowering produces: every Goto/Call label is a synthetic label id, never
// a raw source line number.
type Program struct {
	Instructions []Instruction
	// Strings holds every distinct string literal referenced by the
	// program, indexed by the Value field of an
	// Operand{Kind: KindIndirectNumberLiteral}.
	Strings []string
}

// String renders the instruction stream one instruction per line, for the
// CLI's tac listing. Labels are printed flush left;
// every other instruction is indented under the label it falls under.
func (p *Program) String() string {
	var b strings.Builder
	for _, instr := range p.Instructions {
		if _, ok := instr.(*Label); ok {
			b.WriteString(instr.String())
		} else {
			b.WriteString("    ")
			b.WriteString(instr.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
