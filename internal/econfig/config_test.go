package econfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MaxRecursionDepth <= 0 {
		t.Fatalf("MaxRecursionDepth = %d, want > 0", cfg.MaxRecursionDepth)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eval.yaml")
	contents := "maxRecursionDepth: 64\nfeatures:\n  experimentalBinopShim: true\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxRecursionDepth != 64 {
		t.Fatalf("MaxRecursionDepth = %d, want 64", cfg.MaxRecursionDepth)
	}
	if !cfg.Features.ExperimentalBinopShim {
		t.Fatalf("ExperimentalBinopShim = false, want true")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/eval.yaml"); err == nil {
		t.Fatalf("Load of missing file should error")
	}
}
