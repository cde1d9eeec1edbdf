package seqkit

import (
	"go.llib.dev/seqkit/port/cursor"
	"golang.org/x/exp/constraints"
)

// Size returns the number of elements.
// It uses cursor.Sized when the length is known, otherwise it traverses the whole sequence.
func Size[T any, C cursor.Cursor[T]](c C) int {
	if n, ok := lenOf(c); ok {
		return n
	}
	var n int
	for v := c.First(); v != nil; v = c.Next() {
		n++
	}
	return n
}

// Any tells if the sequence has at least one element.
// Only the first element is looked at.
func Any[T any, C cursor.Cursor[T]](c C) bool {
	return c.First() != nil
}

// AnyFunc tells if at least one element satisfies pred.
// It stops at the first match.
func AnyFunc[T any, C cursor.Cursor[T]](c C, pred func(T) bool) bool {
	for v := c.First(); v != nil; v = c.Next() {
		if pred(*v) {
			return true
		}
	}
	return false
}

// IsEmpty is the opposite of Any.
func IsEmpty[T any, C cursor.Cursor[T]](c C) bool {
	return !Any[T](c)
}

// Count returns the number of elements satisfying pred.
func Count[T any, C cursor.Cursor[T]](c C, pred func(T) bool) int {
	var n int
	for v := c.First(); v != nil; v = c.Next() {
		if pred(*v) {
			n++
		}
	}
	return n
}

// At returns the element at the given position with a linear walk.
// ErrIndexOutOfRange is returned when index is negative or not less than the length.
func At[T any, C cursor.Cursor[T]](c C, index int) (T, error) {
	if 0 <= index {
		i := index
		for v := c.First(); v != nil; v = c.Next() {
			if i == 0 {
				return *v, nil
			}
			i--
		}
	}
	var zero T
	return zero, ErrIndexOutOfRange.F("index %d is beyond the end of the sequence", index)
}

func AtOrDefault[T any, C cursor.Cursor[T]](c C, index int, def T) T {
	v, err := At[T](c, index)
	if err != nil {
		return def
	}
	return v
}

// Front returns the first element, or ErrEmptyAccess.
func Front[T any, C cursor.Cursor[T]](c C) (T, error) {
	if v := c.First(); v != nil {
		return *v, nil
	}
	var zero T
	return zero, ErrEmptyAccess.F("front requested")
}

func FrontOrDefault[T any, C cursor.Cursor[T]](c C, def T) T {
	if v := c.First(); v != nil {
		return *v
	}
	return def
}

// Back returns the last element, or ErrEmptyAccess.
func Back[T any, C cursor.Cursor[T]](c C) (T, error) {
	var (
		last T
		ok   bool
	)
	for v := c.First(); v != nil; v = c.Next() {
		last, ok = *v, true
	}
	if !ok {
		return last, ErrEmptyAccess.F("back requested")
	}
	return last, nil
}

func BackOrDefault[T any, C cursor.Cursor[T]](c C, def T) T {
	v, err := Back[T](c)
	if err != nil {
		return def
	}
	return v
}

// Aggregate left-folds the sequence with fn.
// The fold starts from init when it is given, otherwise from the zero value of T.
func Aggregate[T any, C cursor.Cursor[T]](c C, fn func(T, T) T, init ...T) T {
	var result T
	if 0 < len(init) {
		result = init[0]
	}
	for v := c.First(); v != nil; v = c.Next() {
		result = fn(result, *v)
	}
	return result
}

// Accumulate left-folds the sequence into an accumulator that fn updates in place.
// Prefer it over Aggregate when the accumulator is expensive to copy.
func Accumulate[R, T any, C cursor.Cursor[T]](c C, init R, fn func(acc *R, v T)) R {
	var acc = init
	for v := c.First(); v != nil; v = c.Next() {
		fn(&acc, *v)
	}
	return acc
}

// Summable is the set of types Sum can add together.
type Summable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// Sum adds up the elements. An empty sequence sums to the zero value.
func Sum[T Summable, C cursor.Cursor[T]](c C) T {
	return Aggregate(c, func(a, b T) T { return a + b })
}
