package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTOMLMissingFileIsNotAnError(t *testing.T) {
	var v struct {
		Left int `toml:"left"`
	}
	if err := LoadTOML(filepath.Join(t.TempDir(), "missing.toml"), &v); err != nil {
		t.Fatalf("expected missing file to be a no-op, got %v", err)
	}
	if v.Left != 0 {
		t.Fatalf("expected zero value untouched, got %d", v.Left)
	}
}

func TestLoadTOMLDecodesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typeset.toml")
	writeFile(t, path, "left = 90\nheader = \"Draft\"\n")

	var v struct {
		Left   int    `toml:"left"`
		Header string `toml:"header"`
	}
	if err := LoadTOML(path, &v); err != nil {
		t.Fatalf("LoadTOML: %v", err)
	}
	if v.Left != 90 || v.Header != "Draft" {
		t.Fatalf("got %+v", v)
	}
}

func TestLoadYAMLMissingFileIsNotAnError(t *testing.T) {
	var v struct {
		Width int `yaml:"width"`
	}
	if err := LoadYAML(filepath.Join(t.TempDir(), "missing.yaml"), &v); err != nil {
		t.Fatalf("expected missing file to be a no-op, got %v", err)
	}
}

func TestLoadYAMLDecodesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typeset.yaml")
	writeFile(t, path, "width: 475\nalign: j\n")

	var v struct {
		Width int    `yaml:"width"`
		Align string `yaml:"align"`
	}
	if err := LoadYAML(path, &v); err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if v.Width != 475 || v.Align != "j" {
		t.Fatalf("got %+v", v)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing test fixture %s: %v", path, err)
	}
}
