package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	o := New()

	if o.MaxLines() != defaultMaxLines {
		t.Errorf("MaxLines() = %d, want default %d", o.MaxLines(), defaultMaxLines)
	}
	if o.MaxOptimizerPasses() != 0 {
		t.Errorf("MaxOptimizerPasses() = %d, want 0 (use optimizer default)", o.MaxOptimizerPasses())
	}
	if o.PreserveRem() {
		t.Error("PreserveRem() = true, want false by default")
	}
}

func TestWithOptionsOverrideDefaults(t *testing.T) {
	o := New(
		WithMaxLines(500),
		WithMaxOptimizerPasses(4),
		WithPreserveRem(true),
	)

	if o.MaxLines() != 500 {
		t.Errorf("MaxLines() = %d, want 500", o.MaxLines())
	}
	if o.MaxOptimizerPasses() != 4 {
		t.Errorf("MaxOptimizerPasses() = %d, want 4", o.MaxOptimizerPasses())
	}
	if !o.PreserveRem() {
		t.Error("PreserveRem() = false, want true")
	}
}

func TestLoadFileAppliesOnlyPresentKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "basilisc.yaml")
	if err := os.WriteFile(path, []byte("max_optimizer_passes: 8\npreserve_rem: true\n"), 0o644); err != nil {
		t.Fatalf("writing fixture config: %v", err)
	}

	o, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if o.MaxLines() != defaultMaxLines {
		t.Errorf("MaxLines() = %d, want untouched default %d", o.MaxLines(), defaultMaxLines)
	}
	if o.MaxOptimizerPasses() != 8 {
		t.Errorf("MaxOptimizerPasses() = %d, want 8", o.MaxOptimizerPasses())
	}
	if !o.PreserveRem() {
		t.Error("PreserveRem() = false, want true from file")
	}
}

func TestLoadFileMissingPath(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("LoadFile() error = nil, want error for missing file")
	}
}
