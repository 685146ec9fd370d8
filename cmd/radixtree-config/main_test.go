package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteDefaultThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radixtree.json")
	if err := writeDefault(path); err != nil {
		t.Fatalf("writeDefault: %v", err)
	}

	cfg, err := load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Bits != 30 || cfg.MaxLeafSize != 4 || cfg.KeepSingletons {
		t.Fatalf("cfg = %+v, want the documented defaults", cfg)
	}
	if err := cfg.Validate(1); err != nil {
		t.Fatalf("default configuration must validate: %v", err)
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := load(path); err == nil {
		t.Fatal("expected a JSON decode error")
	}
}
