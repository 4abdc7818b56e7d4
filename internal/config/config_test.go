package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/pylist/pkg/cell"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(""), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Identity != "serial" {
		t.Errorf("identity = %q, want serial", cfg.Identity)
	}
	if cfg.Color != ColorAuto {
		t.Errorf("color = %q, want auto", cfg.Color)
	}
	if cfg.IdentityScheme() != cell.SerialIdentity {
		t.Errorf("scheme = %v", cfg.IdentityScheme())
	}
	if !cfg.Enabled("anything", true) || cfg.Enabled("anything", false) {
		t.Error("Enabled should fall back to the default")
	}
}

func TestParseConfig_Full(t *testing.T) {
	yaml := `
identity: uuid
color: never
seed: 7
examples:
  - name: type_check
    enabled: false
  - name: list_sort
    enabled: true
  - name: embed_list
`
	cfg, err := ParseConfig([]byte(yaml), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.IdentityScheme() != cell.UUIDIdentity {
		t.Errorf("scheme = %v, want uuid", cfg.IdentityScheme())
	}
	if cfg.Color != ColorNever {
		t.Errorf("color = %q, want never", cfg.Color)
	}
	if cfg.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Seed)
	}
	if cfg.Enabled("type_check", true) {
		t.Error("type_check should be disabled")
	}
	if !cfg.Enabled("list_sort", false) {
		t.Error("list_sort should be enabled")
	}
	if cfg.Enabled("embed_list", false) {
		t.Error("embed_list has no override and should keep the default")
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad identity", "identity: address\n", "identity"},
		{"bad color", "color: sometimes\n", "color"},
		{"missing name", "examples:\n  - enabled: true\n", "name is required"},
		{"duplicate", "examples:\n  - name: a\n  - name: a\n", "duplicate"},
		{"bad yaml", "identity: [\n", "parsing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml), "test.yaml")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestFindAndLoadConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, err := FindConfig(nested)
	if err != nil {
		t.Fatal(err)
	}
	if path != "" {
		// A config above the temp dir would be picked up too; only fail
		// when it was found inside root.
		if strings.HasPrefix(path, root) {
			t.Fatalf("unexpected config %s", path)
		}
	}

	want := filepath.Join(root, "pylist.yml")
	if err := os.WriteFile(want, []byte("seed: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	path, err = FindConfig(nested)
	if err != nil {
		t.Fatal(err)
	}
	if path != want {
		t.Fatalf("FindConfig = %q, want %q", path, want)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 3 {
		t.Errorf("seed = %d, want 3", cfg.Seed)
	}

	if _, err := LoadConfig(filepath.Join(root, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
