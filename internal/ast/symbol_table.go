package ast

// VarType is the inferred type of a BASIC variable: integer unless the
// name carries a trailing '$', which marks it string-typed.
type VarType int

const (
	IntegerType VarType = iota
	StringType
)

func (t VarType) String() string {
	if t == StringType {
		return "STRING"
	}
	return "INTEGER"
}

// SymbolTable is an alternate way to collect a program's variables and
// their inferred types, walking statements and expressions once up
// front. It is not required by semantic checking, which applies the '$'
// suffix rule directly wherever it needs a variable's type; SymbolTable
// exists for tooling (the `symbols` CLI listing) that wants
// the full variable set ahead of time.
type SymbolTable struct {
	vars map[string]VarType
	// order preserves first-sighting order so listings are deterministic.
	order []string
}

// NewSymbolTable creates an empty SymbolTable.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{vars: make(map[string]VarType)}
}

// Collect walks prog and records every variable it references, in
// program (line-ascending) order.
func (st *SymbolTable) Collect(prog *Program) {
	for _, line := range prog.Lines() {
		s, _ := prog.Get(line)
		st.collectStmt(s)
	}
}

func (st *SymbolTable) define(name string) {
	if _, ok := st.vars[name]; ok {
		return
	}
	typ := IntegerType
	if len(name) > 0 && name[len(name)-1] == '$' {
		typ = StringType
	}
	st.vars[name] = typ
	st.order = append(st.order, name)
}

func (st *SymbolTable) collectStmt(s Statement) {
	switch v := s.(type) {
	case *LetStmt:
		st.define(v.Name)
		st.collectExpr(v.Value)
	case *PrintStmt:
		for _, a := range v.Args {
			st.collectExpr(a)
		}
	case *InputStmt:
		if v.Prompt != nil {
			st.collectExpr(v.Prompt)
		}
		st.define(v.Name)
	case *ForStmt:
		st.define(v.Var)
		st.collectExpr(v.From)
		st.collectExpr(v.To)
		if v.Step != nil {
			st.collectExpr(v.Step)
		}
	case *NextStmt:
		st.define(v.Var)
	case *IfStmt:
		st.collectExpr(v.Cond)
		st.collectStmt(v.Then)
		if v.Else != nil {
			st.collectStmt(v.Else)
		}
	case *SeqStmt:
		for _, s2 := range v.Stmts {
			st.collectStmt(s2)
		}
	}
}

func (st *SymbolTable) collectExpr(e Expression) {
	switch v := e.(type) {
	case *VariableRef:
		st.define(v.Name)
	case *BinaryExpr:
		st.collectExpr(v.Left)
		st.collectExpr(v.Right)
	}
}

// Type returns the inferred type of name and whether it was seen.
func (st *SymbolTable) Type(name string) (VarType, bool) {
	t, ok := st.vars[name]
	return t, ok
}

// Names returns every collected variable name in first-sighting order.
func (st *SymbolTable) Names() []string {
	return append([]string(nil), st.order...)
}
