package ast

import "testing"

func TestProgramSetAndGet(t *testing.T) {
	prog := NewProgram()
	stmt := &EndStmt{}
	prog.Set(10, stmt)

	got, ok := prog.Get(10)
	if !ok {
		t.Fatal("Get(10) ok = false, want true")
	}
	if got != Statement(stmt) {
		t.Errorf("Get(10) = %v, want the statement that was Set", got)
	}
}

func TestProgramGetMissingLine(t *testing.T) {
	prog := NewProgram()
	if _, ok := prog.Get(10); ok {
		t.Error("Get(10) ok = true on an empty program, want false")
	}
}

func TestProgramHas(t *testing.T) {
	prog := NewProgram()
	if prog.Has(10) {
		t.Error("Has(10) = true before Set, want false")
	}
	prog.Set(10, &EndStmt{})
	if !prog.Has(10) {
		t.Error("Has(10) = false after Set, want true")
	}
}

func TestProgramSetOverwritesSameLine(t *testing.T) {
	prog := NewProgram()
	prog.Set(10, &EndStmt{})
	prog.Set(10, &ReturnStmt{})

	if prog.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after re-using a line number", prog.Len())
	}
	got, _ := prog.Get(10)
	if _, ok := got.(*ReturnStmt); !ok {
		t.Errorf("Get(10) = %T, want the most recently Set statement", got)
	}
}

func TestProgramLinesAreSortedAscending(t *testing.T) {
	prog := NewProgram()
	prog.Set(30, &EndStmt{})
	prog.Set(10, &EndStmt{})
	prog.Set(20, &EndStmt{})

	lines := prog.Lines()
	want := []uint32{10, 20, 30}
	if len(lines) != len(want) {
		t.Fatalf("Lines() = %v, want %v", lines, want)
	}
	for i, l := range lines {
		if l != want[i] {
			t.Errorf("Lines()[%d] = %d, want %d", i, l, want[i])
		}
	}
}

func TestProgramLen(t *testing.T) {
	prog := NewProgram()
	if prog.Len() != 0 {
		t.Fatalf("Len() = %d on an empty program, want 0", prog.Len())
	}
	prog.Set(10, &EndStmt{})
	prog.Set(20, &EndStmt{})
	if prog.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", prog.Len())
	}
}
