package engine

import (
	"path/filepath"
	"reflect"
	"testing"

	"linecount/mapreduce/types"
)

func TestSpillRoundTrip(t *testing.T) {
	kvs := []types.KeyValue{
		{Key: "a.py", Value: "3"},
		{Key: "b with space.py", Value: "1"},
	}
	path := filepath.Join(t.TempDir(), "spill-job-1-0.jsonl")
	if err := WriteSpill(path, kvs); err != nil {
		t.Fatal(err)
	}
	got, err := ReadSpill(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, kvs) {
		t.Errorf("round trip = %v, want %v", got, kvs)
	}
}

func TestReadSpillMissing(t *testing.T) {
	if _, err := ReadSpill(filepath.Join(t.TempDir(), "nope.jsonl")); err == nil {
		t.Error("expected error for missing spill")
	}
}

func TestDecodeEmissionsRejectsGarbage(t *testing.T) {
	if _, err := DecodeEmissions([]byte("{\"Key\":\"a\",\"Value\":\"1\"}\nnot json\n")); err == nil {
		t.Error("expected error for malformed spill line")
	}
}

func TestDecodeEmissionsSkipsBlankLines(t *testing.T) {
	kvs, err := DecodeEmissions([]byte("{\"Key\":\"a\",\"Value\":\"1\"}\n\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(kvs) != 1 {
		t.Errorf("got %d emissions, want 1", len(kvs))
	}
}
