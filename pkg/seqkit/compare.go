package seqkit

import (
	"cmp"

	"go.llib.dev/seqkit/port/cursor"
)

// Equal reports whether both sequences have the same length and equal elements.
//
// a and b must be independent cursors,
// comparing a cursor with itself drives the same traversal state from both sides.
func Equal[T comparable, A cursor.Cursor[T], B cursor.Cursor[T]](a A, b B) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, but it uses eq to compare the element pairs.
func EqualFunc[T1, T2 any, A cursor.Cursor[T1], B cursor.Cursor[T2]](a A, b B, eq func(T1, T2) bool) bool {
	if n, ok := lenOf(a); ok {
		if m, ok := lenOf(b); ok && n != m {
			return false
		}
	}
	x, y := a.First(), b.First()
	for x != nil && y != nil {
		if !eq(*x, *y) {
			return false
		}
		x, y = a.Next(), b.Next()
	}
	return x == nil && y == nil
}

// Compare compares the sequences lexicographically.
// The first mismatching pair decides the order.
// When one sequence is a prefix of the other, the shorter one is the lesser.
// The result is 0 if a == b, -1 if a < b, and +1 if a > b.
func Compare[T cmp.Ordered, A cursor.Cursor[T], B cursor.Cursor[T]](a A, b B) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

func CompareFunc[T1, T2 any, A cursor.Cursor[T1], B cursor.Cursor[T2]](a A, b B, cmp func(T1, T2) int) int {
	x, y := a.First(), b.First()
	for x != nil && y != nil {
		if c := cmp(*x, *y); c != 0 {
			return c
		}
		x, y = a.Next(), b.Next()
	}
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	default:
		return +1
	}
}

// Less reports whether a sorts lexicographically before b.
// Sequences of equal length and content are not less than each other.
func Less[T cmp.Ordered, A cursor.Cursor[T], B cursor.Cursor[T]](a A, b B) bool {
	return LessFunc(a, b, cmp.Less[T])
}

// LessFunc is like Less, but it uses lt to order the elements.
func LessFunc[T any, A cursor.Cursor[T], B cursor.Cursor[T]](a A, b B, lt func(T, T) bool) bool {
	x, y := a.First(), b.First()
	for x != nil && y != nil {
		if lt(*x, *y) {
			return true
		}
		if lt(*y, *x) {
			return false
		}
		x, y = a.Next(), b.Next()
	}
	return x == nil && y != nil
}
