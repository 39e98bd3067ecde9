// Package staging places source files into the job's input directory. The
// job identifies files by base name only, so staging flattens paths; when
// two sources share a base name, the one staged later overwrites the
// earlier one. Disambiguating such collisions is the caller's problem and
// must happen before staging.
package staging

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Stage copies the given files into inputDir, flattened to their base
// names, and returns the sorted set of staged names. inputDir is created if
// missing. The input location must be fully populated and immutable before
// the job is invoked, so Stage is not safe to call concurrently with a run.
func Stage(sources []string, inputDir string) ([]string, error) {
	if err := os.MkdirAll(inputDir, 0755); err != nil {
		return nil, fmt.Errorf("create input dir %s: %w", inputDir, err)
	}
	staged := make(map[string]struct{})
	for _, src := range sources {
		name := filepath.Base(src)
		if err := copyFile(src, filepath.Join(inputDir, name)); err != nil {
			return nil, err
		}
		staged[name] = struct{}{}
	}
	names := make([]string, 0, len(staged))
	for name := range staged {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// StageTree stages every regular file under root, walking in lexical order
// so the overwrite policy for colliding base names is deterministic.
func StageTree(root, inputDir string) ([]string, error) {
	sources := make([]string, 0)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		sources = append(sources, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return Stage(sources, inputDir)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source %s: %w", src, err)
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("create staged file %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return out.Close()
}
