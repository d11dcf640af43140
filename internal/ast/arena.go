package ast

// Arena owns every expression and statement node allocated while parsing
// one program. Nodes are valid for the arena's lifetime, which encloses
// semantic checking and lowering — callers never free an individual node.
//
// The arena does not pool memory itself (Go's garbage collector already
// reclaims the backing allocations once the Arena and everything
// reachable from it is dropped); its purpose is to make that ownership
// boundary explicit in the API, the same role a bump allocator plays in
// a language without a tracing GC.
type Arena struct {
	exprs []Expression
	stmts []Statement
}

// NewArena creates an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) track(e Expression) Expression {
	a.exprs = append(a.exprs, e)
	return e
}

func (a *Arena) trackStmt(s Statement) Statement {
	a.stmts = append(a.stmts, s)
	return s
}

// NewInteger allocates an IntegerLiteral from the arena.
func (a *Arena) NewInteger(v int32) *IntegerLiteral {
	n := &IntegerLiteral{Value: v}
	a.track(n)
	return n
}

// NewString allocates a StringLiteral from the arena.
func (a *Arena) NewString(v string) *StringLiteral {
	n := &StringLiteral{Value: v}
	a.track(n)
	return n
}

// NewVariable allocates a VariableRef from the arena.
func (a *Arena) NewVariable(name string) *VariableRef {
	n := &VariableRef{Name: name}
	a.track(n)
	return n
}

// NewBinary allocates a BinaryExpr from the arena.
func (a *Arena) NewBinary(left Expression, op BinaryOp, right Expression) *BinaryExpr {
	n := &BinaryExpr{Left: left, Op: op, Right: right}
	a.track(n)
	return n
}

// NewLet allocates a LetStmt from the arena.
func (a *Arena) NewLet(name string, value Expression) *LetStmt {
	n := &LetStmt{Name: name, Value: value}
	a.trackStmt(n)
	return n
}

// NewPrint allocates a PrintStmt from the arena.
func (a *Arena) NewPrint(args []Expression) *PrintStmt {
	n := &PrintStmt{Args: args}
	a.trackStmt(n)
	return n
}

// NewInput allocates an InputStmt from the arena.
func (a *Arena) NewInput(prompt Expression, name string) *InputStmt {
	n := &InputStmt{Prompt: prompt, Name: name}
	a.trackStmt(n)
	return n
}

// NewFor allocates a ForStmt from the arena.
func (a *Arena) NewFor(v string, from, to, step Expression) *ForStmt {
	n := &ForStmt{Var: v, From: from, To: to, Step: step}
	a.trackStmt(n)
	return n
}

// NewNext allocates a NextStmt from the arena.
func (a *Arena) NewNext(v string) *NextStmt {
	n := &NextStmt{Var: v}
	a.trackStmt(n)
	return n
}

// NewGoto allocates a GotoStmt from the arena.
func (a *Arena) NewGoto(line uint32) *GotoStmt {
	n := &GotoStmt{Line: line}
	a.trackStmt(n)
	return n
}

// NewGosub allocates a GosubStmt from the arena.
func (a *Arena) NewGosub(line uint32) *GosubStmt {
	n := &GosubStmt{Line: line}
	a.trackStmt(n)
	return n
}

// NewReturn allocates a ReturnStmt from the arena.
func (a *Arena) NewReturn() *ReturnStmt {
	n := &ReturnStmt{}
	a.trackStmt(n)
	return n
}

// NewEnd allocates an EndStmt from the arena.
func (a *Arena) NewEnd() *EndStmt {
	n := &EndStmt{}
	a.trackStmt(n)
	return n
}

// NewIf allocates an IfStmt from the arena.
func (a *Arena) NewIf(cond Expression, then, els Statement) *IfStmt {
	n := &IfStmt{Cond: cond, Then: then, Else: els}
	a.trackStmt(n)
	return n
}

// NewSeq allocates a SeqStmt from the arena.
func (a *Arena) NewSeq(stmts []Statement) *SeqStmt {
	n := &SeqStmt{Stmts: stmts}
	a.trackStmt(n)
	return n
}

// NewRem allocates a RemStmt from the arena.
func (a *Arena) NewRem(text string) *RemStmt {
	n := &RemStmt{Text: text}
	a.trackStmt(n)
	return n
}

// ExprCount returns the number of expression nodes the arena has
// allocated.
func (a *Arena) ExprCount() int { return len(a.exprs) }
