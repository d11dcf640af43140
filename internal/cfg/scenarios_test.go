package cfg

import (
	"testing"

	"github.com/pc1500/basilisc/internal/tac"
)

func allInstructions(g *Graph) []tac.Instruction {
	var out []tac.Instruction
	for _, id := range g.Order() {
		out = append(out, g.Blocks[id].Instructions...)
	}
	return out
}

// reachableFrom reports whether target can be reached from start by
// following the graph's edges.
func reachableFrom(g *Graph, start, target BlockID) bool {
	seen := map[BlockID]bool{start: true}
	queue := []BlockID{start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if id == target {
			return true
		}
		for _, s := range g.Successors(id) {
			if !seen[s] {
				seen[s] = true
				queue = append(queue, s)
			}
		}
	}
	return false
}

// TestArithmeticConstantFoldCollapsesToASingleCopy checks that a
// compile-time-constant arithmetic expression fully folds, leaving
// no surviving BinExpr and a Copy carrying the folded literal.
func TestArithmeticConstantFoldCollapsesToASingleCopy(t *testing.T) {
	g := optimizedGraph(t, "10 LET A = 1 + 2 * 3\n20 PRINT A\n30 END\n")

	for _, instr := range allInstructions(g) {
		if _, ok := instr.(*tac.BinExpr); ok {
			t.Fatalf("BinExpr survived optimization: %s", instr)
		}
	}

	var foldedTo7 bool
	for _, instr := range allInstructions(g) {
		if c, ok := instr.(*tac.Copy); ok && c.Src.Kind == tac.KindNumberLiteral && c.Src.Value == 7 {
			foldedTo7 = true
		}
	}
	if !foldedTo7 {
		t.Fatal("no Copy instruction carries the folded value 7 (1 + 2*3)")
	}
}

// TestDeadBranchEliminationCutsOffTheUntakenGoto checks that an IF
// whose condition is always false folds its branch away, dropping
// the entry block's edge into the GOTO it never takes while line 30
// (END) stays reachable through the fallthrough PRINT block instead.
//
// The unreachable-block sweep then removes the GOTO's block entirely,
// since nothing reaches it once that edge is gone.
func TestDeadBranchEliminationCutsOffTheUntakenGoto(t *testing.T) {
	src := "10 IF 1 = 2 THEN GOTO 30\n20 PRINT \"reachable\"\n30 END\n"
	g := buildGraph(t, src)

	var gotoBlock BlockID
	found := false
	for _, id := range g.Order() {
		for _, instr := range g.Blocks[id].Instructions {
			if _, ok := instr.(*tac.Goto); ok {
				gotoBlock, found = id, true
			}
		}
	}
	if !found {
		t.Fatal("expected a Goto instruction in the unoptimized graph")
	}
	if !reachableFrom(g, 0, gotoBlock) {
		t.Fatal("sanity check failed: the GOTO's block should be reachable before optimizing")
	}

	var endBlock BlockID
	found = false
	for _, id := range g.Order() {
		for _, instr := range g.Blocks[id].Instructions {
			if e, ok := instr.(*tac.ExternCall); ok && e.Label == tac.Exit {
				endBlock, found = id, true
			}
		}
	}
	if !found {
		t.Fatal("expected an ExternCall(Exit) for the END statement")
	}

	NewOptimizer(g).Optimize()

	if reachableFrom(g, 0, gotoBlock) {
		t.Error("the GOTO 30's block is still reachable after optimizing an always-false IF; it should have been cut off")
	}
	if _, stillPresent := g.Blocks[gotoBlock]; stillPresent {
		t.Error("the GOTO 30's block should have been removed by the unreachable-block sweep, not merely orphaned")
	}
	if !reachableFrom(g, 0, endBlock) {
		t.Error("line 30 (END) should remain reachable via fallthrough from the PRINT block")
	}
}

// TestOptimizeDoesNotPanicOnNestedIfMergedAcrossPasses is a regression
// test for a crash where a block that absorbed a neighbor via a Linear
// merge, and so held a successor no longer numbered id+1, was re-folded
// on a later fixpoint pass and its fall-through successor could not be
// found.
func TestOptimizeDoesNotPanicOnNestedIfMergedAcrossPasses(t *testing.T) {
	src := "10 LET A = 5 : IF 1 = 1 THEN IF A = 5 THEN GOTO 40\n40 END\n"
	g := buildGraph(t, src)

	NewOptimizer(g).Optimize()

	var sawGoto, sawExit bool
	for _, instr := range allInstructions(g) {
		switch v := instr.(type) {
		case *tac.Goto:
			sawGoto = true
		case *tac.ExternCall:
			if v.Label == tac.Exit {
				sawExit = true
			}
		}
	}
	if !sawGoto {
		t.Error("expected the unconditional GOTO 40 to survive folding")
	}
	if !sawExit {
		t.Error("expected line 40's END to survive folding")
	}
}
