package cmd

import (
	"strings"
	"testing"
)

func TestParseSourceParsesEveryLine(t *testing.T) {
	prog, err := parseSource("<test>", "10 LET A = 1\n20 PRINT A\n")
	if err != nil {
		t.Fatalf("parseSource() error = %v", err)
	}
	if prog.Len() != 2 {
		t.Fatalf("prog.Len() = %d, want 2", prog.Len())
	}
}

func TestParseSourceReportsSyntaxErrors(t *testing.T) {
	if _, err := parseSource("<test>", "10 LET = 1\n"); err == nil {
		t.Fatal("parseSource() error = nil, want a syntax error")
	}
}

func TestCheckSourceReportsSemanticErrors(t *testing.T) {
	_, err := checkSource("<test>", "10 GOTO 999\n")
	if err == nil {
		t.Fatal("checkSource() error = nil, want an undefined-target error")
	}
	if !strings.Contains(err.Error(), "semantic errors") {
		t.Errorf("error = %q, want it to mention semantic errors", err.Error())
	}
}

func TestCheckSourceAcceptsWellFormedProgram(t *testing.T) {
	prog, err := checkSource("<test>", "10 FOR I = 1 TO 3\n20 PRINT I\n30 NEXT I\n")
	if err != nil {
		t.Fatalf("checkSource() error = %v", err)
	}
	if prog.Len() != 3 {
		t.Fatalf("prog.Len() = %d, want 3", prog.Len())
	}
}

func TestRecoverInternalConvertsPanicToError(t *testing.T) {
	err := recoverInternal("<test>", func() {
		panic("tac: NEXT without matching FOR")
	})
	if err == nil {
		t.Fatal("recoverInternal() error = nil, want an error from the panic")
	}
	if !strings.Contains(err.Error(), "internal compiler error") {
		t.Errorf("error = %q, want it to mention an internal compiler error", err.Error())
	}
}

func TestRecoverInternalPassesThroughOnSuccess(t *testing.T) {
	ran := false
	if err := recoverInternal("<test>", func() { ran = true }); err != nil {
		t.Fatalf("recoverInternal() error = %v, want nil", err)
	}
	if !ran {
		t.Fatal("fn was never called")
	}
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"no trailing newline", "10 END", 1},
		{"trailing newline", "10 END\n", 1},
		{"two lines", "10 LET A = 1\n20 END\n", 2},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countLines(tt.input); got != tt.want {
				t.Errorf("countLines(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
