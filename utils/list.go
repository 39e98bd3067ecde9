package utils

import (
	"cmp"
	"slices"
)

// OrderedList is a sorted, deduplicated list. The coordinator keeps worker
// addresses and spill file names in one so that task assignment and reduce
// input order are deterministic across runs.
type OrderedList[T cmp.Ordered] struct {
	list []T
}

func NewOrderedList[T cmp.Ordered]() *OrderedList[T] {
	return &OrderedList[T]{
		list: make([]T, 0),
	}
}

func (o *OrderedList[T]) Len() int {
	return len(o.list)
}

// Add inserts item at its sorted position unless it is already present.
func (o *OrderedList[T]) Add(item T) *OrderedList[T] {
	i, found := slices.BinarySearch(o.list, item)
	if found {
		return o
	}
	o.list = append(o.list, *new(T))
	copy(o.list[i+1:], o.list[i:])
	o.list[i] = item
	return o
}

// Remove removes item from the list if it is present.
func (o *OrderedList[T]) Remove(item T) *OrderedList[T] {
	i, found := slices.BinarySearch(o.list, item)
	if !found {
		return o
	}
	copy(o.list[i:], o.list[i+1:])
	// release the reference
	o.list[len(o.list)-1] = *new(T)
	o.list = o.list[:len(o.list)-1]
	return o
}

// Contains reports whether item is in the list.
func (o *OrderedList[T]) Contains(item T) bool {
	_, found := slices.BinarySearch(o.list, item)
	return found
}

// Items returns the underlying sorted slice. Callers must not modify it.
func (o *OrderedList[T]) Items() []T {
	return o.list
}
