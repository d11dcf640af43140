package tac

import (
	"github.com/pc1500/basilisc/internal/ast"
)

// forFrame is the LIFO bookkeeping the lowerer keeps for one open
// FOR/NEXT loop: the label to loop back to, the label to fall through to
// once the bound test fails, and the loop's own STEP expression (nil
// meaning the implicit step of 1).
type forFrame struct {
	beginLabel, endLabel uint32
	step                 ast.Expression
}

// Lowerer turns a validated *ast.Program into a flat TAC Program. A
// Lowerer is single-use: construct one per program with New and discard
// it after calling Lower.
type Lowerer struct {
	instrs []Instruction

	vars    map[string]Operand     // BASIC variable name -> its operand
	exprMap map[ast.Expression]Operand // node identity -> already-lowered operand

	strIndex map[string]int32 // string literal -> its Strings table index
	strings  []string

	lineIndex map[uint32]int // source line number -> index of its first instruction

	forStack []forFrame

	nextVar   uint32
	nextLabel uint32

	patchList []int // indices into instrs of Goto/Call carrying a raw line number

	preserveRem bool
}

// Option configures a Lowerer. Options are applied during construction
// via New(), using the functional-options pattern.
type Option func(*Lowerer)

// WithPreserveRem controls whether REM statements are lowered to a
// Remark no-op instruction (useful for tooling that wants to correlate
// TAC back to commented source) or dropped entirely during lowering,
// the default.
func WithPreserveRem(preserve bool) Option {
	return func(l *Lowerer) {
		l.preserveRem = preserve
	}
}

// New creates a Lowerer ready to lower a single program.
func New(opts ...Option) *Lowerer {
	l := &Lowerer{
		vars:      make(map[string]Operand),
		exprMap:   make(map[ast.Expression]Operand),
		strIndex:  make(map[string]int32),
		lineIndex: make(map[uint32]int),
		nextLabel: FirstUserLabel,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Lower runs the full AST-to-TAC translation described by the grammar
// visit rules: one pass over every line emitting instructions and
// recording GOTO/GOSUB targets, followed by the patch pass that resolves
// those targets to synthetic labels.
//
// Lower assumes prog has already passed semantic.Checker.Check with no
// errors: an out-of-range GOTO/GOSUB target found here is an internal
// invariant failure, not user error, and Lower panics rather than
// returning one more error type for a case the checker already rules out.
func (l *Lowerer) Lower(prog *ast.Program) *Program {
	for _, line := range prog.Lines() {
		l.lineIndex[line] = len(l.instrs)
		stmt, _ := prog.Get(line)
		l.lowerStmt(stmt)
	}
	l.patch()
	return &Program{Instructions: l.instrs, Strings: l.strings}
}

func (l *Lowerer) emit(instr Instruction) int {
	idx := len(l.instrs)
	l.instrs = append(l.instrs, instr)
	return idx
}

func (l *Lowerer) newLabel() uint32 {
	id := l.nextLabel
	l.nextLabel++
	return id
}

func (l *Lowerer) newTemp() Operand {
	id := l.nextVar
	l.nextVar++
	return NewVariable(id)
}

// lowerVariable maps a BASIC variable name to its operand, assigning it a
// fresh id on first reference. The '$' suffix decides direct vs.
// indirect, mirroring ast.VariableRef.IsString.
func (l *Lowerer) lowerVariable(name string) Operand {
	if op, ok := l.vars[name]; ok {
		return op
	}
	id := l.nextVar
	l.nextVar++
	var op Operand
	if len(name) > 0 && name[len(name)-1] == '$' {
		op = NewIndirectVariable(id)
	} else {
		op = NewVariable(id)
	}
	l.vars[name] = op
	return op
}

func (l *Lowerer) internString(s string) int32 {
	if idx, ok := l.strIndex[s]; ok {
		return idx
	}
	idx := int32(len(l.strings))
	l.strings = append(l.strings, s)
	l.strIndex[s] = idx
	return idx
}

// lowerExpr lowers e to the operand holding its value, interning by AST
// node identity so that re-visiting the same node (possible only if a
// future parser starts sharing subtrees) returns the already-computed
// operand instead of re-emitting instructions. With today's parser, which
// never shares nodes, this cache is always a miss and costs one map probe
// per node — an optimization the lowering algorithm affords, not a
// correctness requirement.
func (l *Lowerer) lowerExpr(e ast.Expression) Operand {
	if op, ok := l.exprMap[e]; ok {
		return op
	}

	var op Operand
	switch ex := e.(type) {
	case *ast.IntegerLiteral:
		op = NewNumberLiteral(ex.Value)

	case *ast.StringLiteral:
		op = NewIndirectNumberLiteral(l.internString(ex.Value))

	case *ast.VariableRef:
		op = l.lowerVariable(ex.Name)

	case *ast.BinaryExpr:
		left := l.lowerExpr(ex.Left)
		right := l.lowerExpr(ex.Right)
		dest := l.newTemp()
		l.emit(&BinExpr{Dest: dest, Left: left, Op: ex.Op, Right: right})
		op = dest
	}

	l.exprMap[e] = op
	return op
}

// printOneArg emits the PARAM/EXTERNCALL pair for a single PRINT or INPUT
// prompt argument, dispatching to the pointer or value intrinsic
// depending on whether op is string- or integer-valued.
func (l *Lowerer) printOneArg(op Operand) {
	l.emit(&Param{Operand: op})
	if op.IsIndirect() {
		l.emit(&ExternCall{Label: PrintPtr})
	} else {
		l.emit(&ExternCall{Label: PrintVal})
	}
}

func (l *Lowerer) lowerStmt(s ast.Statement) {
	switch st := s.(type) {
	case *ast.LetStmt:
		dest := l.lowerVariable(st.Name)
		src := l.lowerExpr(st.Value)
		l.emit(&Copy{Dest: dest, Src: src})

	case *ast.PrintStmt:
		for _, arg := range st.Args {
			l.printOneArg(l.lowerExpr(arg))
		}

	case *ast.InputStmt:
		if st.Prompt != nil {
			l.printOneArg(l.lowerExpr(st.Prompt))
		}
		dest := l.lowerVariable(st.Name)
		l.emit(&Param{Operand: dest})
		if dest.IsIndirect() {
			l.emit(&ExternCall{Label: InputPtr})
		} else {
			l.emit(&ExternCall{Label: InputVal})
		}

	case *ast.ForStmt:
		idx := l.lowerVariable(st.Var)
		from := l.lowerExpr(st.From)
		l.emit(&Copy{Dest: idx, Src: from})

		to := l.lowerExpr(st.To)
		begin := l.newLabel()
		end := l.newLabel()
		l.emit(&Label{ID: begin})
		l.emit(&If{Op: ast.Ge, Left: idx, Right: to, Label: end})

		l.forStack = append(l.forStack, forFrame{beginLabel: begin, endLabel: end, step: st.Step})

	case *ast.NextStmt:
		if len(l.forStack) == 0 {
			panic("tac: NEXT without matching FOR (semantic check should have rejected this)")
		}
		frame := l.forStack[len(l.forStack)-1]
		l.forStack = l.forStack[:len(l.forStack)-1]

		idx := l.lowerVariable(st.Var)
		var step Operand
		if frame.step != nil {
			step = l.lowerExpr(frame.step)
		} else {
			step = NewNumberLiteral(1)
		}
		l.emit(&BinExpr{Dest: idx, Left: idx, Op: ast.Add, Right: step})
		l.emit(&Goto{Label: frame.beginLabel})
		l.emit(&Label{ID: frame.endLabel})

	case *ast.GotoStmt:
		idx := l.emit(&Goto{Label: st.Line})
		l.patchList = append(l.patchList, idx)

	case *ast.GosubStmt:
		idx := l.emit(&Call{Label: st.Line})
		l.patchList = append(l.patchList, idx)

	case *ast.ReturnStmt:
		l.emit(&Return{})

	case *ast.EndStmt:
		l.emit(&ExternCall{Label: Exit})

	case *ast.IfStmt:
		l.lowerIf(st)

	case *ast.SeqStmt:
		for _, inner := range st.Stmts {
			l.lowerStmt(inner)
		}

	case *ast.RemStmt:
		if l.preserveRem {
			l.emit(&Remark{Text: st.Text})
		}
	}
}

// lowerIf lowers the short-circuit THEN/ELSE form described by the
// grammar: negate a top-level comparison condition directly into the
// branch test (avoiding a materialized boolean), or fall back to an
// explicit "compare against zero" test for any other expression shape.
func (l *Lowerer) lowerIf(st *ast.IfStmt) {
	skipThen := l.newLabel()

	if cond, ok := st.Cond.(*ast.BinaryExpr); ok && cond.Op.IsComparison() {
		left := l.lowerExpr(cond.Left)
		right := l.lowerExpr(cond.Right)
		l.emit(&If{Op: cond.Op.Negate(), Left: left, Right: right, Label: skipThen})
	} else {
		v := l.lowerExpr(st.Cond)
		l.emit(&If{Op: ast.Eq, Left: v, Right: NewNumberLiteral(0), Label: skipThen})
	}

	l.lowerStmt(st.Then)

	if st.Else != nil {
		skipElse := l.newLabel()
		l.emit(&Goto{Label: skipElse})
		l.emit(&Label{ID: skipThen})
		l.lowerStmt(st.Else)
		l.emit(&Label{ID: skipElse})
	} else {
		l.emit(&Label{ID: skipThen})
	}
}

// gotoLabel reads the (possibly still unpatched) target of a Goto or Call
// at instrs[idx].
func gotoLabel(instrs []Instruction, idx int) uint32 {
	switch instr := instrs[idx].(type) {
	case *Goto:
		return instr.Label
	case *Call:
		return instr.Label
	}
	panic("tac: patch list entry is neither Goto nor Call")
}

func setGotoLabel(instrs []Instruction, idx int, label uint32) {
	switch instr := instrs[idx].(type) {
	case *Goto:
		instr.Label = label
	case *Call:
		instr.Label = label
	default:
		panic("tac: patch list entry is neither Goto nor Call")
	}
}

func labelAt(instrs []Instruction, idx int) (uint32, bool) {
	if idx < 0 || idx >= len(instrs) {
		return 0, false
	}
	lbl, ok := instrs[idx].(*Label)
	if !ok {
		return 0, false
	}
	return lbl.ID, true
}

// patch resolves every GOTO/GOSUB placeholder recorded in patchList,
// turning its raw line-number target into a synthetic label. It reuses an
// existing label immediately preceding the target line when one is
// already there, and otherwise synthesizes and inserts a fresh one —
// never leaving the same target line with two different labels pointing
// at it.
func (l *Lowerer) patch() {
	for i := 0; i < len(l.patchList); i++ {
		gotoIdx := l.patchList[i]
		line := gotoLabel(l.instrs, gotoIdx)

		p, ok := l.lineIndex[line]
		if !ok {
			panic("tac: GOTO/GOSUB target line not found during patch pass (semantic check should have rejected this)")
		}

		var label uint32
		if existing, found := labelAt(l.instrs, p-1); found {
			label = existing
		} else {
			label = l.newLabel()

			l.instrs = append(l.instrs, nil)
			copy(l.instrs[p+1:], l.instrs[p:])
			l.instrs[p] = &Label{ID: label}

			for ln, idx := range l.lineIndex {
				if idx >= p {
					l.lineIndex[ln] = idx + 1
				}
			}
			for j := i; j < len(l.patchList); j++ {
				if l.patchList[j] >= p {
					l.patchList[j]++
				}
			}
		}

		setGotoLabel(l.instrs, l.patchList[i], label)
	}
}
