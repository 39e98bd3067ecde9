package engine

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"linecount/mapreduce/types"
)

// Spill files carry intermediate emissions between the map and reduce
// phases, one JSON object per line.

// EncodeEmissions renders emissions as JSON lines.
func EncodeEmissions(kvs []types.KeyValue) ([]byte, error) {
	var buf bytes.Buffer
	for _, kv := range kvs {
		line, err := json.Marshal(kv)
		if err != nil {
			return nil, fmt.Errorf("encode emission %v: %w", kv, err)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// DecodeEmissions parses JSON-lines emission data. Blank lines are skipped;
// a malformed line is an error, since a spill is written in full by exactly
// one map task or not at all.
func DecodeEmissions(data []byte) ([]types.KeyValue, error) {
	kvs := make([]types.KeyValue, 0)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var kv types.KeyValue
		if err := json.Unmarshal(line, &kv); err != nil {
			return nil, fmt.Errorf("decode emission line %q: %w", string(line), err)
		}
		kvs = append(kvs, kv)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan emissions: %w", err)
	}
	return kvs, nil
}

// WriteSpill writes one map task's emissions to path.
func WriteSpill(path string, kvs []types.KeyValue) error {
	data, err := EncodeEmissions(kvs)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write spill %s: %w", path, err)
	}
	return nil
}

// ReadSpill reads back one spill file.
func ReadSpill(path string) ([]types.KeyValue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spill %s: %w", path, err)
	}
	return DecodeEmissions(data)
}
