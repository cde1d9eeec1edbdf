package seqkit

import "go.llib.dev/seqkit/port/cursor"

// Where filters the sequence, yielding only the elements for which pred returns true.
func Where[T any, C cursor.Cursor[T]](c C, pred func(T) bool) *WhereSeq[T, C] {
	return &WhereSeq[T, C]{up: c, pred: pred}
}

type WhereSeq[T any, C cursor.Cursor[T]] struct {
	up   C
	pred func(T) bool
}

func (s *WhereSeq[T, C]) First() *T {
	return s.seek(s.up.First())
}

func (s *WhereSeq[T, C]) Next() *T {
	return s.seek(s.up.Next())
}

func (s *WhereSeq[T, C]) seek(v *T) *T {
	for v != nil && !s.pred(*v) {
		v = s.up.Next()
	}
	return v
}

// Select lazily transforms every element of the sequence with fn.
//
// The transformed value is owned by the returned sequence,
// and it is overwritten on the next call.
func Select[T, U any, C cursor.Cursor[T]](c C, fn func(T) U) *SelectSeq[T, U, C] {
	return &SelectSeq[T, U, C]{up: c, fn: fn}
}

type SelectSeq[T, U any, C cursor.Cursor[T]] struct {
	up      C
	fn      func(T) U
	current U
}

func (s *SelectSeq[T, U, C]) First() *U {
	return s.emit(s.up.First())
}

func (s *SelectSeq[T, U, C]) Next() *U {
	return s.emit(s.up.Next())
}

func (s *SelectSeq[T, U, C]) Len() (int, bool) {
	return lenOf(s.up)
}

func (s *SelectSeq[T, U, C]) emit(v *T) *U {
	if v == nil {
		return nil
	}
	s.current = s.fn(*v)
	return &s.current
}

func lenOf(c any) (int, bool) {
	if s, ok := c.(cursor.Sized); ok {
		return s.Len()
	}
	return 0, false
}
