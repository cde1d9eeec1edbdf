package seqkit

import (
	"cmp"
	"slices"

	"go.llib.dev/frameless/pkg/mapkit"
)

// Slice creates a view over the elements of a slice.
//
// The view does not copy the slice.
// It observes later writes to the backing array,
// and it must not outlive the storage it points into.
// Use Store when the sequence has to own its elements.
func Slice[T any](s []T) *SliceSeq[T] {
	return &SliceSeq[T]{slice: s}
}

type SliceSeq[T any] struct {
	slice []T
	index int
}

func (s *SliceSeq[T]) First() *T {
	s.index = 0
	return s.current()
}

func (s *SliceSeq[T]) Next() *T {
	if s.index < len(s.slice) {
		s.index++
	}
	return s.current()
}

func (s *SliceSeq[T]) Len() (int, bool) { return len(s.slice), true }

func (s *SliceSeq[T]) current() *T {
	if s.index < len(s.slice) {
		return &s.slice[s.index]
	}
	return nil
}

// Store creates a sequence that owns a copy of the given elements.
// Later changes to the source slice are not visible through the sequence.
func Store[T any](s []T) *StoreSeq[T] {
	return &StoreSeq[T]{SliceSeq: SliceSeq[T]{slice: slices.Clone(s)}}
}

// List creates an owned sequence from a literal list of values.
func List[T any](vs ...T) *StoreSeq[T] {
	return Store(vs)
}

// StoreMap creates an owned sequence of the map's key-value pairs, ordered by key.
func StoreMap[K cmp.Ordered, V any](m map[K]V) *StoreSeq[KV[K, V]] {
	var kvs = make([]KV[K, V], 0, len(m))
	for _, k := range mapkit.Keys(m, slices.Sort[[]K]) {
		kvs = append(kvs, KV[K, V]{K: k, V: m[k]})
	}
	return &StoreSeq[KV[K, V]]{SliceSeq: SliceSeq[KV[K, V]]{slice: kvs}}
}

// StoreSeq is a sequence that owns its storage.
// Independent cursors over the same StoreSeq data can be created with View.
type StoreSeq[T any] struct {
	SliceSeq[T]
}

// View returns a new cursor over the owned elements, with its own traversal state.
func (s *StoreSeq[T]) View() *SliceSeq[T] {
	return Slice(s.slice)
}
