package seqkit

import (
	"go.llib.dev/seqkit/port/cursor"
	"golang.org/x/exp/constraints"
)

// KV is a key-value pair element.
type KV[K, V any] struct {
	K K
	V V
}

// Keys projects a sequence of key-value pairs to their keys.
func Keys[K, V any, C cursor.Cursor[KV[K, V]]](c C) *SelectSeq[KV[K, V], K, C] {
	return Select(c, func(kv KV[K, V]) K { return kv.K })
}

// Values projects a sequence of key-value pairs to their values.
func Values[K, V any, C cursor.Cursor[KV[K, V]]](c C) *SelectSeq[KV[K, V], V, C] {
	return Select(c, func(kv KV[K, V]) V { return kv.V })
}

// Number is the set of types As can convert between.
type Number interface {
	constraints.Integer | constraints.Float
}

// As converts every element to U with a Go conversion.
//
//	seqkit.As[float64](seqkit.List(1, 2, 3))
func As[U, T Number, C cursor.Cursor[T]](c C) *SelectSeq[T, U, C] {
	return Select(c, func(v T) U { return U(v) })
}
