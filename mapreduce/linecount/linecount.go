// Package linecount holds the job functions for the line-count aggregation:
// map one emission per input line, combine and reduce by summing, and format
// the final report lines. Combine and Reduce share the same summing logic,
// which is what makes the combiner safe to omit.
package linecount

import (
	"fmt"
	"strconv"

	"linecount/mapreduce/types"
)

// Map emits (source file, 1) for the given line record. It is pure and
// stateless; every record is valid input.
func Map(r types.Record) types.KeyValue {
	return types.KeyValue{Key: r.Source, Value: "1"}
}

// Combine sums the partial counts for a key on one worker, before shuffle.
// Its output has the same shape as Map output, so reduce consumes either.
func Combine(key string, values []string) (types.KeyValue, error) {
	sum, err := sumValues(key, values)
	if err != nil {
		return types.KeyValue{}, err
	}
	return types.KeyValue{Key: key, Value: strconv.FormatInt(sum, 10)}, nil
}

// Reduce sums all counts for a key. It is called exactly once per distinct
// key, after every emission for that key has been grouped together. The sum
// is commutative and associative, so value order does not matter.
func Reduce(key string, values []string) (int64, error) {
	return sumValues(key, values)
}

func sumValues(key string, values []string) (int64, error) {
	var sum int64
	for _, v := range values {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("bad count %q for key %q: %w", v, key, err)
		}
		sum += n
	}
	return sum, nil
}

// FormatResult renders one report line. The filename is wrapped in literal
// quotes so downstream shell pipelines can parse names containing
// whitespace unambiguously.
func FormatResult(key string, total int64) string {
	return fmt.Sprintf("\"%s\"\t%d\n", key, total)
}
