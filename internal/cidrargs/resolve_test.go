package cidrargs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cidr-tools/cidrgrep/internal/errors"
)

func TestResolve_PositionalDisambiguation(t *testing.T) {
	tests := []struct {
		name       string
		positional []string
		wantExprs  []string
		wantInput  string
	}{
		{
			name:       "all positionals are expressions",
			positional: []string{"10.0.0.0/8", "192.168.1.0/24"},
			wantExprs:  []string{"10.0.0.0/8", "192.168.1.0/24"},
			wantInput:  "",
		},
		{
			name:       "last positional is a filename",
			positional: []string{"10.0.0.0/8", "hosts.txt"},
			wantExprs:  []string{"10.0.0.0/8"},
			wantInput:  "hosts.txt",
		},
		{
			name:       "single expression",
			positional: []string{"10.0.0.0/8"},
			wantExprs:  []string{"10.0.0.0/8"},
			wantInput:  "",
		},
		{
			name:       "bare address counts as an expression",
			positional: []string{"10.0.0.0/8", "192.168.1.77"},
			wantExprs:  []string{"10.0.0.0/8", "192.168.1.77"},
			wantInput:  "",
		},
		{
			name:       "only a non-trailing token is never filename-checked",
			positional: []string{"not-a-cidr", "10.0.0.0/8"},
			wantExprs:  []string{"not-a-cidr", "10.0.0.0/8"},
			wantInput:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Resolve(nil, "", tt.positional)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if !reflect.DeepEqual(r.Expressions, tt.wantExprs) {
				t.Errorf("Expressions = %v, want %v", r.Expressions, tt.wantExprs)
			}
			if r.InputPath != tt.wantInput {
				t.Errorf("InputPath = %q, want %q", r.InputPath, tt.wantInput)
			}
		})
	}
}

func TestResolve_SourceOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cidrs.txt")
	content := "# corp ranges\n10.20.0.0/16\n\n  10.30.0.0/16  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	r, err := Resolve([]string{"10.0.0.0/8"}, path, []string{"192.168.0.0/16", "access.log"})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	// Flags first, then file entries, then positionals.
	want := []string{"10.0.0.0/8", "10.20.0.0/16", "10.30.0.0/16", "192.168.0.0/16"}
	if !reflect.DeepEqual(r.Expressions, want) {
		t.Errorf("Expressions = %v, want %v", r.Expressions, want)
	}
	if r.InputPath != "access.log" {
		t.Errorf("InputPath = %q, want %q", r.InputPath, "access.log")
	}
}

func TestResolve_NoExpressions(t *testing.T) {
	tests := []struct {
		name       string
		positional []string
	}{
		{name: "nothing at all", positional: nil},
		{name: "only a filename", positional: []string{"hosts.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(nil, "", tt.positional)
			if err == nil {
				t.Fatal("Resolve should fail with no expressions")
			}
			if code := errors.GetExitCode(err); code != errors.ExitUsage {
				t.Errorf("exit code = %d, want %d", code, errors.ExitUsage)
			}
		})
	}
}

func TestResolve_ExpressionFileMissing(t *testing.T) {
	_, err := Resolve(nil, "/nonexistent/cidrs.txt", nil)
	if err == nil {
		t.Fatal("Resolve should fail when the expression file cannot be opened")
	}
	if code := errors.GetExitCode(err); code != errors.ExitIO {
		t.Errorf("exit code = %d, want %d", code, errors.ExitIO)
	}
}

func TestLoadExpressionFile_CommentsAndBlanks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cidrs.txt")
	content := `# header comment
10.0.0.0/8

   # indented comment
192.168.1.0/24
	2001:db8::/32
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	exprs, err := loadExpressionFile(path)
	if err != nil {
		t.Fatalf("loadExpressionFile failed: %v", err)
	}

	want := []string{"10.0.0.0/8", "192.168.1.0/24", "2001:db8::/32"}
	if !reflect.DeepEqual(exprs, want) {
		t.Errorf("expressions = %v, want %v", exprs, want)
	}
}
