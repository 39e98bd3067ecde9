package staging

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestStageFlattensToBaseNames(t *testing.T) {
	src := t.TempDir()
	a := writeFile(t, filepath.Join(src, "deep", "nested", "a.py"), "one\n")
	b := writeFile(t, filepath.Join(src, "b.py"), "two\n")
	inputDir := filepath.Join(t.TempDir(), "input")

	staged, err := Stage([]string{a, b}, inputDir)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(staged, []string{"a.py", "b.py"}) {
		t.Errorf("staged = %v, want sorted base names", staged)
	}
	data, err := os.ReadFile(filepath.Join(inputDir, "a.py"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "one\n" {
		t.Errorf("staged a.py = %q, want %q", data, "one\n")
	}
}

func TestStageLaterFileWinsCollision(t *testing.T) {
	src := t.TempDir()
	first := writeFile(t, filepath.Join(src, "one", "a.py"), "first\nfirst\nfirst\n")
	second := writeFile(t, filepath.Join(src, "two", "a.py"), "second\n")
	inputDir := filepath.Join(t.TempDir(), "input")

	staged, err := Stage([]string{first, second}, inputDir)
	if err != nil {
		t.Fatal(err)
	}
	// Both sources share the base name; exactly one staged file remains
	// and it is the one staged last.
	if !reflect.DeepEqual(staged, []string{"a.py"}) {
		t.Errorf("staged = %v, want single collapsed name", staged)
	}
	data, err := os.ReadFile(filepath.Join(inputDir, "a.py"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second\n" {
		t.Errorf("collision winner = %q, want the later file", data)
	}
}

func TestStageTreeWalksLexically(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a", "dup.py"), "from a\n")
	writeFile(t, filepath.Join(src, "b", "dup.py"), "from b\n")
	writeFile(t, filepath.Join(src, "solo.py"), "solo\n")
	inputDir := filepath.Join(t.TempDir(), "input")

	staged, err := StageTree(src, inputDir)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(staged, []string{"dup.py", "solo.py"}) {
		t.Errorf("staged = %v", staged)
	}
	data, err := os.ReadFile(filepath.Join(inputDir, "dup.py"))
	if err != nil {
		t.Fatal(err)
	}
	// WalkDir visits a/ before b/, so b's copy overwrites a's.
	if string(data) != "from b\n" {
		t.Errorf("dup.py = %q, want the lexically later source", data)
	}
}

func TestStageMissingSource(t *testing.T) {
	inputDir := filepath.Join(t.TempDir(), "input")
	if _, err := Stage([]string{filepath.Join(t.TempDir(), "nope.py")}, inputDir); err == nil {
		t.Error("expected error for missing source file")
	}
}
