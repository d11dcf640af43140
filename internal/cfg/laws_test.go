package cfg

import (
	"testing"

	"github.com/pc1500/basilisc/internal/tac"
)

// TestConstantFoldingMatchesSourceEvaluation is the constant-folding
// correctness Law: for a closed expression (no free variables), the
// literal a program folds to must equal what the source language itself
// would compute at runtime.
func TestConstantFoldingMatchesSourceEvaluation(t *testing.T) {
	tests := []struct {
		expr string
		want int32
	}{
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"10 - 4 - 3", 3},
		{"20 / 4 / 5", 1},
		{"5 = 5", 1},
		{"5 = 6", 0},
		{"3 < 5", 1},
		{"3 > 5", 0},
		{"3 <= 3", 1},
		{"1 AND 0", 0},
		{"1 AND 1", 1},
		{"0 OR 0", 0},
		{"0 OR 1", 1},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			g := optimizedGraph(t, "10 LET A = "+tt.expr+"\n")

			var got int32
			found := false
			for _, id := range g.Order() {
				for _, instr := range g.Blocks[id].Instructions {
					if c, ok := instr.(*tac.Copy); ok && c.Src.Kind == tac.KindNumberLiteral {
						got, found = c.Src.Value, true
					}
				}
			}
			if !found {
				t.Fatalf("%q did not fold to a literal Copy", tt.expr)
			}
			if got != tt.want {
				t.Errorf("%q folded to %d, want %d", tt.expr, got, tt.want)
			}
		})
	}
}
