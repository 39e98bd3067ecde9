package engine

import (
	"sort"

	"linecount/mapreduce/types"
)

// Group is all values emitted for one key, delivered together.
type Group struct {
	Key    string
	Values []string
}

// Grouper is the shuffle contract: collect every emission sharing a key and
// deliver the keys one at a time, in ascending order. The engine and the
// reduce worker both depend on this interface rather than on a concrete
// shuffle, so the job functions stay testable in isolation.
type Grouper interface {
	Group(kvs []types.KeyValue) []Group
}

// SortGrouper groups by sorting the emissions and scanning runs of equal
// keys. It must not be handed emissions until every map task has completed;
// the caller owns that barrier.
type SortGrouper struct{}

func (SortGrouper) Group(kvs []types.KeyValue) []Group {
	sorted := make([]types.KeyValue, len(kvs))
	copy(sorted, kvs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	groups := make([]Group, 0)
	i := 0
	for i < len(sorted) {
		j := i + 1
		for j < len(sorted) && sorted[j].Key == sorted[i].Key {
			j++
		}
		values := make([]string, 0, j-i)
		for k := i; k < j; k++ {
			values = append(values, sorted[k].Value)
		}
		groups = append(groups, Group{Key: sorted[i].Key, Values: values})
		i = j
	}
	return groups
}
