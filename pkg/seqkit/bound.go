package seqkit

import "go.llib.dev/seqkit/port/cursor"

// Take bounds the sequence to its first n elements.
// When n is zero or negative, the result is empty.
//
// The upstream is never advanced past the n-th element,
// which makes Take safe to use with endless generators.
func Take[T any, C cursor.Cursor[T]](c C, n int) *TakeSeq[T, C] {
	return &TakeSeq[T, C]{up: c, n: n}
}

type TakeSeq[T any, C cursor.Cursor[T]] struct {
	up    C
	n     int
	taken int
}

func (s *TakeSeq[T, C]) First() *T {
	s.taken = 0
	if s.n <= 0 {
		return nil
	}
	v := s.up.First()
	if v != nil {
		s.taken = 1
	}
	return v
}

func (s *TakeSeq[T, C]) Next() *T {
	if s.taken == 0 || s.n <= s.taken {
		return nil
	}
	v := s.up.Next()
	if v == nil {
		s.taken = s.n
		return nil
	}
	s.taken++
	return v
}

func (s *TakeSeq[T, C]) Len() (int, bool) {
	if s.n <= 0 {
		return 0, true
	}
	n, ok := lenOf(s.up)
	if !ok {
		return 0, false
	}
	return min(n, s.n), true
}

// Skip drops the first n elements of the sequence.
// When n is zero or negative, the sequence is yielded as is.
func Skip[T any, C cursor.Cursor[T]](c C, n int) *SkipSeq[T, C] {
	return &SkipSeq[T, C]{up: c, n: n}
}

type SkipSeq[T any, C cursor.Cursor[T]] struct {
	up C
	n  int
}

func (s *SkipSeq[T, C]) First() *T {
	v := s.up.First()
	for i := 0; v != nil && i < s.n; i++ {
		v = s.up.Next()
	}
	return v
}

func (s *SkipSeq[T, C]) Next() *T {
	return s.up.Next()
}

func (s *SkipSeq[T, C]) Len() (int, bool) {
	n, ok := lenOf(s.up)
	if !ok {
		return 0, false
	}
	return max(n-max(s.n, 0), 0), true
}

// TakeWhile yields elements as long as pred holds.
// The predicate is checked before every element, including the first one,
// and the sequence ends at the first element that fails it.
func TakeWhile[T any, C cursor.Cursor[T]](c C, pred func(T) bool) *TakeWhileSeq[T, C] {
	return &TakeWhileSeq[T, C]{up: c, pred: pred}
}

type TakeWhileSeq[T any, C cursor.Cursor[T]] struct {
	up   C
	pred func(T) bool
	done bool
}

func (s *TakeWhileSeq[T, C]) First() *T {
	s.done = false
	return s.check(s.up.First())
}

func (s *TakeWhileSeq[T, C]) Next() *T {
	if s.done {
		return nil
	}
	return s.check(s.up.Next())
}

func (s *TakeWhileSeq[T, C]) check(v *T) *T {
	if v == nil || !s.pred(*v) {
		s.done = true
		return nil
	}
	return v
}

// SkipUntil discards the leading elements until pred first holds,
// then yields that element and every element after it.
// When pred never holds, the result is empty.
func SkipUntil[T any, C cursor.Cursor[T]](c C, pred func(T) bool) *SkipUntilSeq[T, C] {
	return &SkipUntilSeq[T, C]{up: c, pred: pred}
}

type SkipUntilSeq[T any, C cursor.Cursor[T]] struct {
	up   C
	pred func(T) bool
}

func (s *SkipUntilSeq[T, C]) First() *T {
	v := s.up.First()
	for v != nil && !s.pred(*v) {
		v = s.up.Next()
	}
	return v
}

func (s *SkipUntilSeq[T, C]) Next() *T {
	return s.up.Next()
}
