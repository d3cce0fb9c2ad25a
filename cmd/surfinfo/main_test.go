package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := exec(&buf, args)
	return buf.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"cone", "sphere", "torus", "trefoil", "klein", "mobius", "60x15"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", "sphere", "4", "4")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "vertices 16 line indices 36 triangle indices 54") {
		t.Errorf("unexpected counts:\n%s", out)
	}

	out, err = run(t, "info", "torus")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "seam gap 0.0000") {
		t.Errorf("torus seam not closed:\n%s", out)
	}
}

func TestInfoErrors(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"info"}, "missing shape"},
		{[]string{"info", "sphre"}, `did you mean "sphere"`},
		{[]string{"info", "torus", "1", "4"}, "divisions"},
		{[]string{"info", "torus", "x", "4"}, "invalid syntax"},
		{[]string{"info", "torus", "4"}, "have 2 arguments"},
		{[]string{"lst"}, `did you mean "list"`},
	}
	for _, tt := range tests {
		_, err := run(t, tt.args...)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%q: have %v, want error containing %q", tt.args, err, tt.want)
		}
	}
}

func TestExit(t *testing.T) {
	if _, err := run(t, "exit"); err != errExit {
		t.Errorf("have %v, want errExit", err)
	}

	var buf bytes.Buffer
	for _, tt := range []struct {
		line string
		quit bool
	}{
		{"", false},
		{"   ", false},
		{"list", false},
		{"nope", false},
		{"exit", true},
		{"  exit  ", true},
	} {
		if have := runLine(&buf, tt.line); have != tt.quit {
			t.Errorf("runLine(%q): have %v, want %v", tt.line, have, tt.quit)
		}
	}
}

func TestHelp(t *testing.T) {
	out, err := run(t, "help")
	if err != nil {
		t.Fatal(err)
	}
	for name := range commands {
		if !strings.Contains(out, name) {
			t.Errorf("help missing %q", name)
		}
	}
	if _, err := run(t, "help", "nope"); err == nil {
		t.Error("expected error for unknown command")
	}
}

const tetra = `v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
f 1 3 2
f 1 2 4
f 1 4 3
f 2 3 4
`

func TestObjAndSnap(t *testing.T) {
	dir := t.TempDir()
	obj := filepath.Join(dir, "tetra.obj")
	if err := os.WriteFile(obj, []byte(tetra), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "obj", obj)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "faces 4") || !strings.Contains(out, "vertices 4") {
		t.Errorf("unexpected obj output:\n%s", out)
	}

	for _, src := range []string{"trefoil", obj} {
		name := filepath.Join(dir, filepath.Base(src)+".png")
		if _, err := run(t, "snap", src, name, "45"); err != nil {
			t.Fatal(err)
		}
		f, err := os.Open(name)
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatal(err)
		}
		if b := img.Bounds(); b.Dx() != 480 || b.Dy() != 360 {
			t.Errorf("%s: have bounds %v", src, b)
		}
	}

	if _, err := run(t, "obj", filepath.Join(dir, "missing.obj")); err == nil {
		t.Error("expected error for missing file")
	}
}
