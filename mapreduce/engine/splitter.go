package engine

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"linecount/mapreduce/types"
)

// maxLineSize bounds a single input line. Scanner's default token limit is
// too small for generated source files.
const maxLineSize = 1024 * 1024

// SplitFile divides one input file into line records. The record key is the
// file's base name, so two staged files can never be told apart by anything
// but their name. Offset carries the byte position of the line start.
func SplitFile(path string) ([]types.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input %s: %w", path, err)
	}
	defer f.Close()

	source := filepath.Base(path)
	records := make([]types.Record, 0)
	offset := int64(0)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		records = append(records, types.Record{
			Source:  source,
			Offset:  offset,
			Content: line,
		})
		// +1 for the newline the scanner strips; the final line may not
		// carry one, but no record follows it either.
		offset += int64(len(scanner.Bytes())) + 1
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input %s: %w", path, err)
	}
	return records, nil
}

// ListInputs returns the base names of the regular files in dir, sorted.
// Zero files is not an error.
func ListInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
