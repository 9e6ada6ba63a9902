package compiler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSource(t *testing.T) {
	src := ParseSource("p.zpm", "\n  X = 1 ;\r\n\n\n\tPRINT X ;\nFOR 2\n  X += 1\nENDFOR\n")
	want := []Line{
		{Num: 1, Text: "X = 1 ;"},
		{Num: 2, Text: "PRINT X ;", Gap: true},
		{Num: 3, Text: "FOR 2"},
		{Num: 4, Text: "X += 1"},
		{Num: 5, Text: "ENDFOR"},
	}
	if diff := cmp.Diff(want, src.Lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSource(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "prog.zpm")
	if err := os.WriteFile(script, []byte("X = 1 ;\nPRINT X ;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	wrongExt := filepath.Join(dir, "prog.txt")
	if err := os.WriteFile(wrongExt, []byte("X = 1 ;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	subdir := filepath.Join(dir, "sub.zpm")
	if err := os.Mkdir(subdir, 0o755); err != nil {
		t.Fatal(err)
	}

	src, err := LoadSource(script)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.Name != script || len(src.Lines) != 2 {
		t.Errorf("unexpected source %+v", src)
	}

	for _, tt := range []struct {
		path string
		kind ErrorKind
	}{
		{wrongExt, ArgumentError},
		{filepath.Join(dir, "prog"), ArgumentError},
		{filepath.Join(dir, "missing.zpm"), FileAccessError},
		{subdir, FileAccessError},
	} {
		_, err := LoadSource(tt.path)
		if got := KindOf(err); got != tt.kind {
			t.Errorf("LoadSource(%s): got kind %q (%v), want %q", tt.path, got, err, tt.kind)
		}
		wantError(t, err, tt.kind, 0)
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.zpm")
	if err := os.WriteFile(path, []byte("X = 2 ;\nX *= 21 ;\nPRINT X ;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	if err := RunFile(path, &out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "X=42\n" {
		t.Errorf("got %q", out.String())
	}
}
