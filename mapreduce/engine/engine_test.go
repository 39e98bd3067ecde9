package engine

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// makeLines builds file content of n numbered lines.
func makeLines(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	return b.String()
}

func runJob(t *testing.T, inputDir string, opts Options) []byte {
	t.Helper()
	out := filepath.Join(t.TempDir(), "report.txt")
	if err := Run(inputDir, out, opts); err != nil {
		t.Fatalf("Run: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestRunSingleFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "x.py", makeLines(42))

	report := runJob(t, dir, Options{})
	want := "\"x.py\"\t42\n"
	if string(report) != want {
		t.Errorf("report = %q, want %q", report, want)
	}
}

func TestRunCountsEveryLine(t *testing.T) {
	dir := t.TempDir()
	counts := map[string]int{"a.py": 3, "b.py": 17, "c.py": 1}
	total := 0
	for name, n := range counts {
		writeFile(t, dir, name, makeLines(n))
		total += n
	}

	report := runJob(t, dir, Options{})
	sum := 0
	for _, line := range strings.Split(strings.TrimSuffix(string(report), "\n"), "\n") {
		parts := strings.Split(line, "\t")
		if len(parts) != 2 {
			t.Fatalf("malformed report line %q", line)
		}
		var n int
		if _, err := fmt.Sscanf(parts[1], "%d", &n); err != nil {
			t.Fatalf("bad count in line %q: %v", line, err)
		}
		name := strings.Trim(parts[0], "\"")
		if n != counts[name] {
			t.Errorf("%s = %d lines, want %d", name, n, counts[name])
		}
		sum += n
	}
	// Total preservation: the report accounts for every input line.
	if sum != total {
		t.Errorf("report total = %d, input total = %d", sum, total)
	}
}

func TestRunKeyCompleteness(t *testing.T) {
	dir := t.TempDir()
	names := []string{"alpha.txt", "beta.txt", "gamma.txt"}
	for _, name := range names {
		writeFile(t, dir, name, makeLines(2))
	}

	report := runJob(t, dir, Options{})
	for _, name := range names {
		if !strings.Contains(string(report), "\""+name+"\"") {
			t.Errorf("report is missing %s", name)
		}
	}
	lines := strings.Count(string(report), "\n")
	if lines != len(names) {
		t.Errorf("report has %d entries, want %d (no phantom files)", lines, len(names))
	}
}

func TestRunOutputSortedByKey(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zz.py", "aa.py", "mm.py"} {
		writeFile(t, dir, name, makeLines(1))
	}

	report := runJob(t, dir, Options{})
	want := "\"aa.py\"\t1\n\"mm.py\"\t1\n\"zz.py\"\t1\n"
	if string(report) != want {
		t.Errorf("report = %q, want keys in ascending order %q", report, want)
	}
}

func TestRunIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", makeLines(5))
	writeFile(t, dir, "b.py", makeLines(9))

	first := runJob(t, dir, Options{})
	second := runJob(t, dir, Options{})
	if !bytes.Equal(first, second) {
		t.Errorf("two runs over identical input differ:\n%q\n%q", first, second)
	}
}

func TestRunCombinerTransparent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", makeLines(30))
	writeFile(t, dir, "b.py", makeLines(7))
	writeFile(t, dir, "empty.py", "")

	withCombiner := runJob(t, dir, Options{})
	withoutCombiner := runJob(t, dir, Options{DisableCombiner: true})
	if !bytes.Equal(withCombiner, withoutCombiner) {
		t.Errorf("combiner changed the report:\nwith:    %q\nwithout: %q", withCombiner, withoutCombiner)
	}
}

func TestRunZeroLineFileAbsent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "full.py", makeLines(3))
	writeFile(t, dir, "empty.py", "")

	report := runJob(t, dir, Options{})
	// A zero-line file produces no emissions, so it does not appear in the
	// report at all.
	if strings.Contains(string(report), "empty.py") {
		t.Errorf("zero-line file appeared in report: %q", report)
	}
	if !strings.Contains(string(report), "\"full.py\"\t3") {
		t.Errorf("report = %q, missing full.py entry", report)
	}
}

func TestRunEmptyInputDir(t *testing.T) {
	report := runJob(t, t.TempDir(), Options{})
	if len(report) != 0 {
		t.Errorf("report = %q, want empty report for empty input", report)
	}
}

func TestRunMissingInputDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.txt")
	err := Run(filepath.Join(t.TempDir(), "missing"), out, Options{})
	if err == nil {
		t.Fatal("expected error for missing input dir")
	}
	// A failed run must not leave a partial artifact behind.
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("failed run left an output file")
	}
}

func TestMapFileCombinedEqualsRaw(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.py", makeLines(12))

	combined, err := MapFile(path, false)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := MapFile(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(combined) != 1 {
		t.Errorf("combined emissions = %d, want 1 per distinct key", len(combined))
	}
	if len(raw) != 12 {
		t.Errorf("raw emissions = %d, want 1 per line", len(raw))
	}
	// Either shape reduces to the same report.
	a, err := BuildReport(combined, SortGrouper{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := BuildReport(raw, SortGrouper{})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("reports differ: %q vs %q", a, b)
	}
}
