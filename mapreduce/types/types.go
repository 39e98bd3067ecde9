package types

// KeyValue is the intermediate emission produced by the map and combine
// phases and consumed by reduce. It MUST be the single shared definition
// imported by every stage, so spill files written by one worker decode
// identically on another.
type KeyValue struct {
	Key   string
	Value string
}

// Record is one line of one input file, as produced by the splitter.
// Source is the base name of the originating file, Offset the byte offset
// of the start of the line within it.
type Record struct {
	Source  string
	Offset  int64
	Content string
}
