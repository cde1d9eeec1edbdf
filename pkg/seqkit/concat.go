package seqkit

import (
	"math"

	"go.llib.dev/seqkit/port/cursor"
)

// Concat yields the elements of a, then the elements of b.
func Concat[T any, A cursor.Cursor[T], B cursor.Cursor[T]](a A, b B) *ConcatSeq[T, A, B] {
	return &ConcatSeq[T, A, B]{a: a, b: b}
}

type ConcatSeq[T any, A cursor.Cursor[T], B cursor.Cursor[T]] struct {
	a      A
	b      B
	second bool
}

func (s *ConcatSeq[T, A, B]) First() *T {
	s.second = false
	if v := s.a.First(); v != nil {
		return v
	}
	s.second = true
	return s.b.First()
}

func (s *ConcatSeq[T, A, B]) Next() *T {
	if s.second {
		return s.b.Next()
	}
	if v := s.a.Next(); v != nil {
		return v
	}
	s.second = true
	return s.b.First()
}

// Len is the sum of both lengths when both are known.
func (s *ConcatSeq[T, A, B]) Len() (int, bool) {
	n, ok := lenOf(s.a)
	if !ok {
		return 0, false
	}
	m, ok := lenOf(s.b)
	if !ok || math.MaxInt-n < m {
		return 0, false
	}
	return n + m, true
}

// Merge zips two sequences positionally, yielding fn(a, b) for every pair.
// It stops at the end of the shorter sequence.
func Merge[T1, T2, U any, A cursor.Cursor[T1], B cursor.Cursor[T2]](a A, b B, fn func(T1, T2) U) *MergeSeq[T1, T2, U, A, B] {
	return &MergeSeq[T1, T2, U, A, B]{a: a, b: b, fn: fn}
}

type MergeSeq[T1, T2, U any, A cursor.Cursor[T1], B cursor.Cursor[T2]] struct {
	a       A
	b       B
	fn      func(T1, T2) U
	current U
	done    bool
}

func (s *MergeSeq[T1, T2, U, A, B]) First() *U {
	s.done = false
	return s.emit(s.a.First(), s.b.First())
}

func (s *MergeSeq[T1, T2, U, A, B]) Next() *U {
	if s.done {
		return nil
	}
	return s.emit(s.a.Next(), s.b.Next())
}

func (s *MergeSeq[T1, T2, U, A, B]) Len() (int, bool) {
	n, ok := lenOf(s.a)
	if !ok {
		return 0, false
	}
	m, ok := lenOf(s.b)
	if !ok {
		return 0, false
	}
	return min(n, m), true
}

func (s *MergeSeq[T1, T2, U, A, B]) emit(x *T1, y *T2) *U {
	if x == nil || y == nil {
		s.done = true
		return nil
	}
	s.current = s.fn(*x, *y)
	return &s.current
}

// Repeat replays the sequence n times.
// When n is zero or negative, the result is empty.
//
// Between two rounds the upstream's First is called again,
// so the upstream must be restartable.
func Repeat[T any, C cursor.Cursor[T]](c C, n int) *RepeatSeq[T, C] {
	return &RepeatSeq[T, C]{up: c, n: n}
}

type RepeatSeq[T any, C cursor.Cursor[T]] struct {
	up    C
	n     int
	round int
}

func (s *RepeatSeq[T, C]) First() *T {
	s.round = 0
	if s.n <= 0 {
		return nil
	}
	return s.up.First()
}

func (s *RepeatSeq[T, C]) Next() *T {
	if s.n <= s.round {
		return nil
	}
	if v := s.up.Next(); v != nil {
		return v
	}
	s.round++
	if s.round < s.n {
		if v := s.up.First(); v != nil {
			return v
		}
	}
	s.round = s.n
	return nil
}

func (s *RepeatSeq[T, C]) Len() (int, bool) {
	if s.n <= 0 {
		return 0, true
	}
	n, ok := lenOf(s.up)
	if !ok || (0 < n && math.MaxInt/n < s.n) {
		return 0, false
	}
	return n * s.n, true
}
