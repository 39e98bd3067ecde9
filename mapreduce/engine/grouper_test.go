package engine

import (
	"reflect"
	"testing"

	"linecount/mapreduce/types"
)

func TestSortGrouperGroupsAndSorts(t *testing.T) {
	kvs := []types.KeyValue{
		{Key: "b.py", Value: "1"},
		{Key: "a.py", Value: "2"},
		{Key: "b.py", Value: "3"},
		{Key: "c.py", Value: "1"},
		{Key: "a.py", Value: "1"},
	}
	groups := SortGrouper{}.Group(kvs)

	keys := make([]string, 0, len(groups))
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	if !reflect.DeepEqual(keys, []string{"a.py", "b.py", "c.py"}) {
		t.Errorf("keys = %v, want sorted distinct keys", keys)
	}
	if len(groups[1].Values) != 2 {
		t.Errorf("b.py got %d values, want 2", len(groups[1].Values))
	}
}

func TestSortGrouperAllValuesDelivered(t *testing.T) {
	kvs := []types.KeyValue{
		{Key: "f", Value: "1"},
		{Key: "f", Value: "2"},
		{Key: "f", Value: "3"},
	}
	groups := SortGrouper{}.Group(kvs)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if len(groups[0].Values) != 3 {
		t.Errorf("got %d values, want all 3", len(groups[0].Values))
	}
}

func TestSortGrouperDoesNotMutateInput(t *testing.T) {
	kvs := []types.KeyValue{
		{Key: "z", Value: "1"},
		{Key: "a", Value: "1"},
	}
	SortGrouper{}.Group(kvs)
	if kvs[0].Key != "z" {
		t.Error("grouper reordered the caller's slice")
	}
}

func TestSortGrouperEmpty(t *testing.T) {
	if groups := (SortGrouper{}).Group(nil); len(groups) != 0 {
		t.Errorf("got %d groups for no emissions, want 0", len(groups))
	}
}
