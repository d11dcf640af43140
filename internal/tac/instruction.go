package tac

import (
	"fmt"

	"github.com/pc1500/basilisc/internal/ast"
)

// Instruction is one of the ten TAC instruction kinds. Go has no native
// sum type, so membership is closed by an unexported marker method, the
// same pattern ast.Expression and ast.Statement use.
type Instruction interface {
	fmt.Stringer
	isInstruction()
}

// BinExpr computes Left Op Right into Dest.
type BinExpr struct {
	Dest, Left, Right Operand
	Op                ast.BinaryOp
}

func (*BinExpr) isInstruction() {}
func (i *BinExpr) String() string {
	return fmt.Sprintf("%s = %s %s %s", i.Dest, i.Left, i.Op, i.Right)
}

// Copy assigns Src to Dest verbatim.
type Copy struct {
	Dest, Src Operand
}

func (*Copy) isInstruction() {}
func (i *Copy) String() string { return fmt.Sprintf("%s = %s", i.Dest, i.Src) }

// Goto transfers control unconditionally to Label. Before the patch pass
// runs, Label temporarily holds a raw source line number for GOTO
// statements; after it runs, every Goto's Label is a resolved synthetic
// label id.
type Goto struct {
	Label uint32
}

func (*Goto) isInstruction() {}
func (i *Goto) String() string { return fmt.Sprintf("goto L%d", i.Label) }

// If transfers control to Label when Left Op Right holds, falling through
// otherwise.
type If struct {
	Op          ast.BinaryOp
	Left, Right Operand
	Label       uint32
}

func (*If) isInstruction() {}
func (i *If) String() string {
	return fmt.Sprintf("if %s %s %s goto L%d", i.Left, i.Op, i.Right, i.Label)
}

// Label marks a jump target. ID is reserved (0-19) for the fixed
// intrinsics and the gap set aside for them, or >= FirstUserLabel for a
// label synthesized during lowering.
type Label struct {
	ID uint32
}

func (*Label) isInstruction() {}
func (i *Label) String() string { return fmt.Sprintf("L%d:", i.ID) }

// Call invokes the subroutine at Label, pushing a return address; same
// pre/post-patch Label convention as Goto.
type Call struct {
	Label uint32
}

func (*Call) isInstruction() {}
func (i *Call) String() string { return fmt.Sprintf("call L%d", i.Label) }

// ExternCall invokes one of the fixed runtime intrinsics (PrintPtr,
// InputPtr, PrintVal, InputVal, Exit). Label is always one of the
// reserved intrinsic ids and is never patched.
type ExternCall struct {
	Label uint32
}

func (*ExternCall) isInstruction() {}
func (i *ExternCall) String() string { return fmt.Sprintf("extern L%d", i.Label) }

// Param stages Operand as the next argument to the following Call or
// ExternCall.
type Param struct {
	Operand Operand
}

func (*Param) isInstruction() {}
func (i *Param) String() string { return fmt.Sprintf("param %s", i.Operand) }

// Return returns from the innermost Call.
type Return struct{}

func (*Return) isInstruction() {}
func (*Return) String() string { return "return" }

// Remark is a no-op marker preserving a source REM comment's text. It is
// only emitted when a Lowerer is constructed WithPreserveRem(true); it
// never affects control flow or constant folding, and the CFG builder
// treats it exactly like BinExpr/Copy/Param — it has no terminator
// effect and never ends a block.
type Remark struct {
	Text string
}

func (*Remark) isInstruction() {}
func (i *Remark) String() string { return fmt.Sprintf("; %s", i.Text) }

// IsTerminator reports whether instr can end a basic block: every
// control-transferring instruction other than Param and BinExpr/Copy.
func IsTerminator(instr Instruction) bool {
	switch instr.(type) {
	case *Goto, *If, *Call, *ExternCall, *Return:
		return true
	}
	return false
}
