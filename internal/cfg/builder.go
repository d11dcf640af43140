package cfg

import (
	"fmt"

	"github.com/pc1500/basilisc/internal/tac"
)

// branchEntry records a pending edge from a block ending in Goto, If, or
// Call to whatever block label ends up mapping to, resolved once the
// whole instruction stream has been partitioned.
type branchEntry struct {
	from  BlockID
	label uint32
}

type builder struct {
	graph        *Graph
	nextID       BlockID
	current      BlockID
	labelToBlock map[uint32]BlockID
	branchStack  []branchEntry
}

func newBuilder() *builder {
	g := newGraph()
	g.Blocks[0] = newBasicBlock(0)
	g.order = append(g.order, 0)
	return &builder{graph: g, nextID: 1, labelToBlock: make(map[uint32]BlockID)}
}

func (b *builder) currentBlock() *BasicBlock { return b.graph.Blocks[b.current] }

// newBlock starts a fresh block, unless the current one is still empty
// (two terminators back to back would otherwise open an unused block
// between them).
func (b *builder) newBlock() BlockID {
	if len(b.currentBlock().Instructions) == 0 {
		return b.current
	}
	id := b.nextID
	b.nextID++
	blk := newBasicBlock(id)
	b.graph.Blocks[id] = blk
	b.graph.order = append(b.graph.order, id)
	b.current = id
	return id
}

// Build partitions prog's flat instruction stream into basic blocks and
// wires every edge between them.
func Build(prog *tac.Program) *Graph {
	b := newBuilder()
	for _, instr := range prog.Instructions {
		b.visit(instr)
	}
	for _, be := range b.branchStack {
		target, ok := b.labelToBlock[be.label]
		if !ok {
			panic(fmt.Sprintf("cfg: branch target label %d was never defined", be.label))
		}
		b.graph.addEdge(be.from, target)
	}
	return b.graph
}

func (b *builder) visit(instr tac.Instruction) {
	switch i := instr.(type) {
	case *tac.Label:
		b.visitLabel(i)

	case *tac.Goto:
		b.currentBlock().push(instr)
		b.branchStack = append(b.branchStack, branchEntry{from: b.current, label: i.Label})
		b.newBlock()

	case *tac.If:
		from := b.current
		b.currentBlock().push(instr)
		b.branchStack = append(b.branchStack, branchEntry{from: from, label: i.Label})
		next := b.newBlock()
		b.graph.addEdge(from, next)
		b.graph.setFallthrough(from, next)

	case *tac.Call:
		from := b.current
		b.currentBlock().push(instr)
		b.branchStack = append(b.branchStack, branchEntry{from: from, label: i.Label})
		next := b.newBlock()
		b.graph.addEdge(from, next)
		b.graph.setFallthrough(from, next)

	case *tac.ExternCall:
		// A runtime intrinsic call is not an internal jump: no Label ever
		// carries one of the reserved intrinsic ids, so there is nothing
		// to resolve against labelToBlock. Like Call, control always
		// returns to the following instruction once the intrinsic
		// completes, so the fallthrough edge to the next block is wired
		// the same way If wires its own fallthrough edge.
		from := b.current
		b.currentBlock().push(instr)
		next := b.newBlock()
		b.graph.addEdge(from, next)
		b.graph.setFallthrough(from, next)

	case *tac.Return:
		b.currentBlock().push(instr)
		b.newBlock()

	default: // BinExpr, Copy, Param, Remark: no control-flow effect.
		b.currentBlock().push(instr)
	}
}

// visitLabel opens a new block for the label (unless the current one was
// already empty) and, when control falls into it from the previous block
// rather than only by explicit jump, wires the implicit fallthrough edge.
func (b *builder) visitLabel(i *tac.Label) {
	lastID := b.current
	newID := b.newBlock()
	b.graph.Blocks[newID].push(i)
	b.labelToBlock[i.ID] = newID

	if lastID == newID {
		return
	}

	lastBlock := b.graph.Blocks[lastID]
	switch lastBlock.Instructions[len(lastBlock.Instructions)-1].(type) {
	case *tac.Goto, *tac.If, *tac.Call, *tac.ExternCall, *tac.Return:
		// The previous block already ends in a terminator that accounts
		// for where control goes; no implicit fallthrough here.
	default:
		b.graph.addEdge(lastID, newID)
	}
}
