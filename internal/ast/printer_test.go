package ast

import "testing"

func TestPrinterLet(t *testing.T) {
	a := NewArena()
	prog := NewProgram()
	prog.Set(10, a.NewLet("A", a.NewInteger(1)))

	got := NewPrinter().Print(prog)
	want := "10 LET A = 1\n"
	if got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrinterPrintStmtJoinsArgsWithSemicolons(t *testing.T) {
	a := NewArena()
	prog := NewProgram()
	prog.Set(10, a.NewPrint([]Expression{a.NewVariable("A"), a.NewString("hi")}))

	got := NewPrinter().Print(prog)
	want := "10 PRINT A; \"hi\"\n"
	if got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrinterInputWithAndWithoutPrompt(t *testing.T) {
	a := NewArena()

	withPrompt := NewProgram()
	withPrompt.Set(10, a.NewInput(a.NewString("n?"), "N"))
	if got, want := NewPrinter().Print(withPrompt), "10 INPUT \"n?\"; N\n"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}

	withoutPrompt := NewProgram()
	withoutPrompt.Set(10, a.NewInput(nil, "N"))
	if got, want := NewPrinter().Print(withoutPrompt), "10 INPUT N\n"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrinterForWithAndWithoutStep(t *testing.T) {
	a := NewArena()

	withStep := NewProgram()
	withStep.Set(10, a.NewFor("I", a.NewInteger(1), a.NewInteger(10), a.NewInteger(2)))
	if got, want := NewPrinter().Print(withStep), "10 FOR I = 1 TO 10 STEP 2\n"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}

	withoutStep := NewProgram()
	withoutStep.Set(10, a.NewFor("I", a.NewInteger(1), a.NewInteger(10), nil))
	if got, want := NewPrinter().Print(withoutStep), "10 FOR I = 1 TO 10\n"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrinterIfWithAndWithoutElse(t *testing.T) {
	a := NewArena()
	cond := a.NewBinary(a.NewVariable("A"), Eq, a.NewInteger(1))

	withElse := NewProgram()
	withElse.Set(10, a.NewIf(cond, a.NewGoto(20), a.NewGoto(30)))
	if got, want := NewPrinter().Print(withElse), "10 IF (A = 1) THEN GOTO 20 ELSE GOTO 30\n"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}

	withoutElse := NewProgram()
	withoutElse.Set(10, a.NewIf(cond, a.NewGoto(20), nil))
	if got, want := NewPrinter().Print(withoutElse), "10 IF (A = 1) THEN GOTO 20\n"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrinterSeqJoinsWithColons(t *testing.T) {
	a := NewArena()
	prog := NewProgram()
	prog.Set(10, a.NewSeq([]Statement{
		a.NewLet("A", a.NewInteger(1)),
		a.NewPrint([]Expression{a.NewVariable("A")}),
	}))

	got := NewPrinter().Print(prog)
	want := "10 LET A = 1 : PRINT A\n"
	if got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrinterRem(t *testing.T) {
	a := NewArena()
	prog := NewProgram()
	prog.Set(10, a.NewRem("a note"))

	got := NewPrinter().Print(prog)
	want := "10 REM a note\n"
	if got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrinterMultipleLinesInAscendingOrder(t *testing.T) {
	a := NewArena()
	prog := NewProgram()
	prog.Set(20, a.NewEnd())
	prog.Set(10, a.NewReturn())

	got := NewPrinter().Print(prog)
	want := "10 RETURN\n20 END\n"
	if got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrinterBinaryExprIsFullyParenthesized(t *testing.T) {
	a := NewArena()
	expr := a.NewBinary(a.NewInteger(1), Add, a.NewBinary(a.NewInteger(2), Mul, a.NewInteger(3)))
	got := NewPrinter().expr(expr)
	want := "(1 + (2 * 3))"
	if got != want {
		t.Errorf("expr() = %q, want %q", got, want)
	}
}
