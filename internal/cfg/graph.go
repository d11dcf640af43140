// Package cfg builds a control-flow graph from a flat tac.Program and
// runs the fixpoint constant-folding/simplification pass over it.
//
// The graph is represented as a map keyed by a small integer BlockID
// plus a parallel adjacency map, rather than a pointer- or
// generational-arena-based graph library: block identity is just an
// integer assigned in construction order, which is all this compiler
// ever needs to look a block up or print a stable listing. A block's
// fall-through successor, the one control reaches without taking any
// branch, is tracked explicitly alongside the edges rather than
// inferred from id adjacency, since merging blocks can leave an
// absorbing block's successors numbered arbitrarily far from its own
// id.
package cfg

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pc1500/basilisc/internal/tac"
)

// BlockID identifies a BasicBlock within one Graph. Ids are assigned in
// construction order starting at 0 and are never reused, even after the
// block they name is merged away or removed as dead.
type BlockID uint32

// BasicBlock is a maximal straight-line run of TAC instructions: control
// only enters at the first instruction and only leaves at the last.
type BasicBlock struct {
	ID           BlockID
	Instructions []tac.Instruction
}

func newBasicBlock(id BlockID) *BasicBlock {
	return &BasicBlock{ID: id}
}

func (b *BasicBlock) push(instr tac.Instruction) {
	b.Instructions = append(b.Instructions, instr)
}

func (b *BasicBlock) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== BB:%d ===\n", b.ID)
	for _, instr := range b.Instructions {
		if _, ok := instr.(*tac.Label); ok {
			fmt.Fprintf(&sb, "%s\n", instr)
		} else {
			fmt.Fprintf(&sb, "\t%s\n", instr)
		}
	}
	return sb.String()
}

// Graph is a control-flow graph over BasicBlocks.
type Graph struct {
	Blocks map[BlockID]*BasicBlock
	edges  map[BlockID]map[BlockID]struct{}
	order  []BlockID // construction order, for deterministic iteration

	// fallthroughTo records, for a block that has one, which of its
	// successors is reached by falling off the end rather than by
	// taking a branch. Populated when the builder wires a fall-through
	// edge and carried forward across merges, so the optimizer never has
	// to rederive it from block id arithmetic.
	fallthroughTo map[BlockID]BlockID
}

func newGraph() *Graph {
	return &Graph{
		Blocks:        make(map[BlockID]*BasicBlock),
		edges:         make(map[BlockID]map[BlockID]struct{}),
		fallthroughTo: make(map[BlockID]BlockID),
	}
}

func (g *Graph) addEdge(from, to BlockID) {
	if g.edges[from] == nil {
		g.edges[from] = make(map[BlockID]struct{})
	}
	g.edges[from][to] = struct{}{}
}

func (g *Graph) removeEdge(from, to BlockID) {
	delete(g.edges[from], to)
	if len(g.edges[from]) == 0 {
		delete(g.edges, from)
	}
}

func (g *Graph) removeBlock(id BlockID) {
	delete(g.Blocks, id)
	delete(g.edges, id)
	delete(g.fallthroughTo, id)
	for from := range g.edges {
		g.removeEdge(from, id)
	}
	for i, o := range g.order {
		if o == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

// setFallthrough records that to is from's fall-through successor.
func (g *Graph) setFallthrough(from, to BlockID) {
	g.fallthroughTo[from] = to
}

// fallthroughOf reports the block that from falls through to, if any.
func (g *Graph) fallthroughOf(from BlockID) (BlockID, bool) {
	to, ok := g.fallthroughTo[from]
	return to, ok
}

// clearFallthrough forgets that from has a fall-through successor.
func (g *Graph) clearFallthrough(from BlockID) {
	delete(g.fallthroughTo, from)
}

// inDegree counts how many distinct blocks have an edge into id.
func (g *Graph) inDegree(id BlockID) int {
	return len(g.predecessors(id))
}

// predecessors returns every block with an edge into id.
func (g *Graph) predecessors(id BlockID) []BlockID {
	var preds []BlockID
	for from, targets := range g.edges {
		if _, ok := targets[id]; ok {
			preds = append(preds, from)
		}
	}
	return preds
}

// Successors returns id's outgoing edge targets in ascending order.
func (g *Graph) Successors(id BlockID) []BlockID {
	succs := make([]BlockID, 0, len(g.edges[id]))
	for s := range g.edges[id] {
		succs = append(succs, s)
	}
	sort.Slice(succs, func(i, j int) bool { return succs[i] < succs[j] })
	return succs
}

// Order returns every live block id in construction order.
func (g *Graph) Order() []BlockID {
	out := make([]BlockID, len(g.order))
	copy(out, g.order)
	return out
}

func (g *Graph) String() string {
	var sb strings.Builder
	for _, id := range g.order {
		blk, ok := g.Blocks[id]
		if !ok {
			continue
		}
		sb.WriteString(blk.String())
		sb.WriteString("==> ")
		for _, s := range g.Successors(id) {
			fmt.Fprintf(&sb, "BB:%d ", s)
		}
		sb.WriteString("<==\n\n")
	}
	return sb.String()
}
