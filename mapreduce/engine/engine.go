// Package engine runs the line-count job: split each input file into line
// records, map and combine them in parallel, group the emissions by key
// behind a barrier, then reduce every key sequentially into a single report
// file. The same building blocks back both the embedded runner and the
// cluster worker.
package engine

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"linecount/mapreduce/linecount"
	"linecount/mapreduce/types"
)

// Options configures a run. The zero value is the production configuration:
// combiner on, sort-based grouping, one reduce partition.
type Options struct {
	// DisableCombiner skips local pre-aggregation. The final report must be
	// byte-identical either way.
	DisableCombiner bool
	// Grouper overrides the shuffle implementation. Nil means SortGrouper.
	Grouper Grouper
}

func (o Options) grouper() Grouper {
	if o.Grouper == nil {
		return SortGrouper{}
	}
	return o.Grouper
}

// MapFile runs the map phase for one input file: one emission per line,
// pre-aggregated by the combiner unless disabled. The combiner state is
// private to this call; nothing escapes before the returned slice.
func MapFile(path string, disableCombiner bool) ([]types.KeyValue, error) {
	records, err := SplitFile(path)
	if err != nil {
		return nil, err
	}
	kvs := make([]types.KeyValue, 0, len(records))
	for _, r := range records {
		kvs = append(kvs, linecount.Map(r))
	}
	if disableCombiner {
		return kvs, nil
	}
	return combineLocal(kvs)
}

// combineLocal folds emissions sharing a key into one partial sum each.
// Output keys are sorted so a map task's spill is deterministic.
func combineLocal(kvs []types.KeyValue) ([]types.KeyValue, error) {
	grouped := make(map[string][]string)
	for _, kv := range kvs {
		grouped[kv.Key] = append(grouped[kv.Key], kv.Value)
	}
	keys := make([]string, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	combined := make([]types.KeyValue, 0, len(keys))
	for _, key := range keys {
		kv, err := linecount.Combine(key, grouped[key])
		if err != nil {
			return nil, err
		}
		combined = append(combined, kv)
	}
	return combined, nil
}

// BuildReport is the reduce phase: group every emission by key, reduce each
// key once, and render the report lines in key order into one buffer.
// Callers must not invoke it until all map tasks have completed.
func BuildReport(kvs []types.KeyValue, g Grouper) ([]byte, error) {
	var buf bytes.Buffer
	for _, group := range g.Group(kvs) {
		total, err := linecount.Reduce(group.Key, group.Values)
		if err != nil {
			return nil, err
		}
		buf.WriteString(linecount.FormatResult(group.Key, total))
	}
	return buf.Bytes(), nil
}

// Run executes the whole job in-process: map tasks fan out one goroutine
// per input file, the WaitGroup is the shuffle barrier, and a single reduce
// partition writes the report. On any task failure no output is written, so
// the output path never holds a partial artifact.
func Run(inputDir, outputPath string, opts Options) error {
	names, err := ListInputs(inputDir)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	perTask := make([][]types.KeyValue, len(names))
	errs := make([]error, len(names))
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			kvs, err := MapFile(filepath.Join(inputDir, name), opts.DisableCombiner)
			if err != nil {
				errs[i] = err
				return
			}
			perTask[i] = kvs
		}(i, name)
	}
	// Barrier: no emission may be grouped until every mapper that could
	// have produced one has finished.
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	all := make([]types.KeyValue, 0)
	for _, kvs := range perTask {
		all = append(all, kvs...)
	}
	report, err := BuildReport(all, opts.grouper())
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, report, 0644); err != nil {
		return fmt.Errorf("write report %s: %w", outputPath, err)
	}
	return nil
}
