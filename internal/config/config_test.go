package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cidr-tools/cidrgrep/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "field = 2\ncolor = \"never\"\n")

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if d.Field != 2 {
		t.Errorf("Field = %d, want 2", d.Field)
	}
	if d.Color != "never" {
		t.Errorf("Color = %q, want %q", d.Color, "never")
	}
}

func TestLoad_PartialFile(t *testing.T) {
	path := writeConfig(t, "color = \"always\"\n")

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if d.Field != 0 {
		t.Errorf("Field = %d, want 0 (unset)", d.Field)
	}
	if d.Color != "always" {
		t.Errorf("Color = %q, want %q", d.Color, "always")
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("Load should fail for a missing file")
	}
	if code := errors.GetExitCode(err); code != errors.ExitIO {
		t.Errorf("exit code = %d, want %d", code, errors.ExitIO)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed toml", content: "field = = 2\n"},
		{name: "negative field", content: "field = -3\n"},
		{name: "unknown color", content: "color = \"sometimes\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load should fail")
			}
			if code := errors.GetExitCode(err); code != errors.ExitUsage {
				t.Errorf("exit code = %d, want %d", code, errors.ExitUsage)
			}
		})
	}
}

func TestLoadDefault_MissingIsNotAnError(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	d, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault failed: %v", err)
	}
	if d.Field != 0 || d.Color != "" {
		t.Errorf("Defaults = %+v, want zero values", d)
	}
}

func TestLoadDefault_ReadsXDGPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "cidrgrep")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("field = 3\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	d, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault failed: %v", err)
	}
	if d.Field != 3 {
		t.Errorf("Field = %d, want 3", d.Field)
	}
}
