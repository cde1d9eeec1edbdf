// Package listseq connects doubly linked lists from github.com/bahlo/generic-list-go with sequences.
package listseq

import (
	list "github.com/bahlo/generic-list-go"

	"go.llib.dev/seqkit/pkg/seqkit"
	"go.llib.dev/seqkit/port/cursor"
)

// View creates a view over the values of the list, from front to back.
func View[T any](l *list.List[T]) *ElementSeq[T] {
	return &ElementSeq[T]{list: l}
}

// Range creates a view over the elements in [from, to), following the Next links.
// A nil to walks until the end of the list.
//
// The length of a range is not known without walking it.
func Range[T any](from, to *list.Element[T]) *RangeSeq[T] {
	return &RangeSeq[T]{from: from, to: to}
}

type ElementSeq[T any] struct {
	list    *list.List[T]
	element *list.Element[T]
}

func (s *ElementSeq[T]) First() *T {
	if s.list == nil {
		return nil
	}
	s.element = s.list.Front()
	return s.value()
}

func (s *ElementSeq[T]) Next() *T {
	if s.element == nil {
		return nil
	}
	s.element = s.element.Next()
	return s.value()
}

func (s *ElementSeq[T]) Len() (int, bool) {
	if s.list == nil {
		return 0, true
	}
	return s.list.Len(), true
}

func (s *ElementSeq[T]) value() *T {
	if s.element == nil {
		return nil
	}
	return &s.element.Value
}

type RangeSeq[T any] struct {
	from, to *list.Element[T]
	element  *list.Element[T]
}

func (s *RangeSeq[T]) First() *T {
	s.element = s.from
	return s.value()
}

func (s *RangeSeq[T]) Next() *T {
	if s.element == nil {
		return nil
	}
	s.element = s.element.Next()
	return s.value()
}

func (s *RangeSeq[T]) value() *T {
	if s.element == nil || s.element == s.to {
		s.element = nil
		return nil
	}
	return &s.element.Value
}

// Sink creates a sink that appends items to the back of the list.
func Sink[T any](l *list.List[T]) ListSink[T] {
	return ListSink[T]{List: l}
}

type ListSink[T any] struct {
	List *list.List[T]
}

func (s ListSink[T]) Add(item T) {
	s.List.PushBack(item)
}

// Make materializes the sequence into a new list.
func Make[T any, C cursor.Cursor[T]](c C) *list.List[T] {
	l := list.New[T]()
	seqkit.WriteTo(c, Sink(l))
	return l
}
