package cfg

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestCFGListingSnapshots pins the optimized block listing for a handful
// of representative control-flow shapes so a future change to the
// optimizer or builder that shifts block ids, instruction order, or edge
// shape shows up as a diff instead of silently drifting.
func TestCFGListingSnapshots(t *testing.T) {
	scenarios := []struct {
		name string
		src  string
	}{
		{"s1_arithmetic_fold", "10 LET A = 1 + 2 * 3\n20 PRINT A\n30 END\n"},
		{"s2_dead_branch", "10 IF 1 = 2 THEN GOTO 30\n20 PRINT \"reachable\"\n30 END\n"},
		{"s3_for_loop", "10 FOR I = 1 TO 3\n20 PRINT I\n30 NEXT I\n"},
		{"s4_goto_patch", "10 PRINT 1\n20 GOTO 10\n"},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			g := optimizedGraph(t, sc.src)
			snaps.MatchSnapshot(t, sc.name, g.String())
		})
	}
}
