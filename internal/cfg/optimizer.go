package cfg

import (
	"github.com/pc1500/basilisc/internal/ast"
	"github.com/pc1500/basilisc/internal/tac"
)

// FoldResult classifies what a single block's constant fold discovered
// about its own terminator.
type FoldResult int

const (
	// Unchanged means the block's terminator (if any) could not be
	// resolved to a compile-time constant; the block's shape is
	// untouched, though operands inside it may have been rewritten to
	// literals.
	Unchanged FoldResult = iota
	// Linear means the block ended in an If whose condition folded to
	// false: the branch never taken, so the block now always falls
	// through to its physical successor.
	Linear
	// Branch means the block ended in an If whose condition folded to
	// true: the branch always taken, so the block now always jumps to
	// its target, abandoning the fallthrough edge.
	Branch
)

// evalOperand resolves op to a known compile-time value, either from env
// (a variable already proven constant earlier in the block) or from a
// literal operand itself.
func evalOperand(op tac.Operand, env map[tac.Operand]int32) (int32, bool) {
	if v, ok := env[op]; ok {
		return v, true
	}
	if op.Kind == tac.KindNumberLiteral {
		return op.Value, true
	}
	return 0, false
}

// evalBinary applies op to the known operand values lv, rv, computing the
// same result the runtime would at execution time.
func evalBinary(op ast.BinaryOp, lv, rv int32) int32 {
	switch op {
	case ast.Add:
		return lv + rv
	case ast.Sub:
		return lv - rv
	case ast.Mul:
		return lv * rv
	case ast.Div:
		return lv / rv
	case ast.And:
		return boolToInt(lv != 0 && rv != 0)
	case ast.Or:
		return boolToInt(lv != 0 || rv != 0)
	case ast.Eq:
		return boolToInt(lv == rv)
	case ast.Ne:
		return boolToInt(lv != rv)
	case ast.Lt:
		return boolToInt(lv < rv)
	case ast.Le:
		return boolToInt(lv <= rv)
	case ast.Gt:
		return boolToInt(lv > rv)
	case ast.Ge:
		return boolToInt(lv >= rv)
	}
	panic("cfg: evalBinary called with unknown operator")
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// ConstantFold rewrites b's instructions in a single left-to-right pass,
// tracking which variables hold a known constant value after each
// instruction and folding every operand it can prove constant. It never
// looks past its own block: cross-block propagation instead falls out of
// the CFG-level Optimize loop re-running this after blocks merge.
func (b *BasicBlock) ConstantFold() FoldResult {
	env := make(map[tac.Operand]int32)
	newInstrs := make([]tac.Instruction, 0, len(b.Instructions))
	result := Unchanged

	for _, instr := range b.Instructions {
		switch ins := instr.(type) {
		case *tac.BinExpr:
			lv, lok := evalOperand(ins.Left, env)
			rv, rok := evalOperand(ins.Right, env)
			if lok && rok && !(ins.Op == ast.Div && rv == 0) {
				val := evalBinary(ins.Op, lv, rv)
				env[ins.Dest] = val
				newInstrs = append(newInstrs, &tac.Copy{Dest: ins.Dest, Src: tac.NewNumberLiteral(val)})
			} else {
				delete(env, ins.Dest)
				newInstrs = append(newInstrs, ins)
			}

		case *tac.Copy:
			if v, ok := evalOperand(ins.Src, env); ok {
				env[ins.Dest] = v
				newInstrs = append(newInstrs, &tac.Copy{Dest: ins.Dest, Src: tac.NewNumberLiteral(v)})
			} else {
				delete(env, ins.Dest)
				newInstrs = append(newInstrs, ins)
			}

		case *tac.Param:
			if v, ok := evalOperand(ins.Operand, env); ok {
				newInstrs = append(newInstrs, &tac.Param{Operand: tac.NewNumberLiteral(v)})
			} else {
				newInstrs = append(newInstrs, ins)
			}

		case *tac.If:
			// An If is always the last instruction in a block, by
			// construction.
			lv, lok := evalOperand(ins.Left, env)
			rv, rok := evalOperand(ins.Right, env)
			if lok && rok {
				if evalBinary(ins.Op, lv, rv) != 0 {
					newInstrs = append(newInstrs, &tac.Goto{Label: ins.Label})
					result = Branch
				} else {
					result = Linear
				}
			} else {
				newInstrs = append(newInstrs, ins)
			}

		default:
			newInstrs = append(newInstrs, instr)
		}
	}

	b.Instructions = newInstrs
	return result
}

// Optimizer runs the CFG-level simplification loop: fold each block,
// react to its FoldResult by rewiring or merging blocks, and repeat until
// a full pass makes no further structural change or maxPasses is
// reached.
type Optimizer struct {
	graph     *Graph
	maxPasses int
}

// defaultMaxPasses bounds the fixpoint loop for a pathological input
// that could otherwise oscillate; in practice real programs converge in
// far fewer passes than this.
const defaultMaxPasses = 64

// NewOptimizer creates an Optimizer over g.
func NewOptimizer(g *Graph) *Optimizer {
	return &Optimizer{graph: g, maxPasses: defaultMaxPasses}
}

// WithMaxPasses overrides the fixpoint iteration cap.
func (o *Optimizer) WithMaxPasses(n int) *Optimizer {
	o.maxPasses = n
	return o
}

// Optimize runs constant folding and CFG simplification to a fixpoint and
// returns the number of passes it took (1 if the graph was already
// optimal).
func (o *Optimizer) Optimize() int {
	passes := 0
	for passes < o.maxPasses {
		passes++
		if !o.runPass() {
			break
		}
	}
	return passes
}

func (o *Optimizer) runPass() bool {
	changed := false
	worklist := o.graph.Order() // LIFO, like the reference algorithm's node stack

	for len(worklist) > 0 {
		id := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		blk, ok := o.graph.Blocks[id]
		if !ok {
			continue // removed earlier this pass by a merge
		}

		switch blk.ConstantFold() {
		case Linear:
			o.mergeLinear(id, blk, &worklist)
			changed = true
		case Branch:
			o.rewireBranch(id)
			changed = true
		}
	}

	o.removeEmptyBlocks()
	o.removeUnreachableBlocks()
	return changed
}

// mergeLinear reacts to an If folding away with its condition proved
// false: blk now always falls through. If its fall-through successor has
// no other predecessor, the two blocks are really one straight-line run
// and are fused together; otherwise the successor is still needed as its
// own block (another path reaches it too), so only the edge is kept.
//
// The fall-through successor is read from the graph's own bookkeeping
// rather than compared against id+1, since a block that has already
// absorbed a neighbor keeps its own id while inheriting that neighbor's
// successors, which are no longer numbered relative to it.
func (o *Optimizer) mergeLinear(id BlockID, blk *BasicBlock, worklist *[]BlockID) {
	next, ok := o.graph.fallthroughOf(id)
	if !ok {
		panic("cfg: Linear fold result but no fall-through successor recorded")
	}

	for _, s := range o.graph.Successors(id) {
		o.graph.removeEdge(id, s)
	}
	o.graph.addEdge(id, next)

	if o.graph.inDegree(next) != 1 {
		// Some other block also reaches next; absorbing its instructions
		// into blk would cut that path off, so leave next as its own block.
		o.graph.setFallthrough(id, next)
		return
	}

	nextBlock := o.graph.Blocks[next]
	nextSuccs := o.graph.Successors(next)
	nextFallthrough, nextHasFallthrough := o.graph.fallthroughOf(next)

	o.graph.removeEdge(id, next)
	blk.Instructions = append(blk.Instructions, nextBlock.Instructions...)
	o.graph.removeBlock(next)
	for i, w := range *worklist {
		if w == next {
			*worklist = append((*worklist)[:i], (*worklist)[i+1:]...)
			break
		}
	}

	for _, s := range nextSuccs {
		o.graph.addEdge(id, s)
	}
	o.graph.clearFallthrough(id)
	if nextHasFallthrough {
		o.graph.setFallthrough(id, nextFallthrough)
	}
}

// rewireBranch drops the fall-through edge once an If has folded to an
// unconditional jump, keeping only the taken target. As in mergeLinear,
// the fall-through successor comes from the graph's own bookkeeping, not
// id adjacency.
func (o *Optimizer) rewireBranch(id BlockID) {
	fallthroughID, hasFallthrough := o.graph.fallthroughOf(id)
	var target BlockID
	found := false
	for _, s := range o.graph.Successors(id) {
		o.graph.removeEdge(id, s)
		if !hasFallthrough || s != fallthroughID {
			target = s
			found = true
		}
	}
	if !found {
		panic("cfg: Branch fold result but no taken-branch successor found")
	}
	o.graph.addEdge(id, target)
	o.graph.clearFallthrough(id)
}

// removeEmptyBlocks drops every block left with no instructions, e.g. a
// terminator-only block whose If folded away without being merged (its
// fall-through successor had another predecessor, so mergeLinear left it
// in place rather than absorbing it). An empty block still reachable
// from elsewhere is a pure passthrough: before deleting it, every
// predecessor's edge is redirected to its one successor so none of those
// paths are lost.
func (o *Optimizer) removeEmptyBlocks() {
	for _, id := range o.graph.Order() {
		blk, ok := o.graph.Blocks[id]
		if !ok || len(blk.Instructions) != 0 {
			continue
		}

		succs := o.graph.Successors(id)
		if len(succs) == 1 {
			target := succs[0]
			for _, from := range o.graph.predecessors(id) {
				o.graph.removeEdge(from, id)
				o.graph.addEdge(from, target)
				if ft, ok := o.graph.fallthroughOf(from); ok && ft == id {
					o.graph.setFallthrough(from, target)
				}
			}
		}

		o.graph.removeBlock(id)
	}
}

// removeUnreachableBlocks sweeps away every block the entry block can no
// longer reach, by BFS over the graph's edges. Folding an If to an
// unconditional jump or a known-false condition can strand a block that
// used to be live; this keeps every surviving edge target reachable from
// entry, as the rest of the optimizer assumes.
func (o *Optimizer) removeUnreachableBlocks() {
	const entry BlockID = 0
	reachable := map[BlockID]bool{entry: true}
	queue := []BlockID{entry}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, s := range o.graph.Successors(id) {
			if !reachable[s] {
				reachable[s] = true
				queue = append(queue, s)
			}
		}
	}

	for _, id := range o.graph.Order() {
		if !reachable[id] {
			o.graph.removeBlock(id)
		}
	}
}
