package seqkit

import (
	"go.llib.dev/seqkit/port/cursor"
	"go.llib.dev/seqkit/port/sink"
)

// Collect materializes the sequence into a new slice.
func Collect[T any, C cursor.Cursor[T]](c C) []T {
	n, _ := lenOf(c)
	var vs = make([]T, 0, max(n, 0))
	for v := c.First(); v != nil; v = c.Next() {
		vs = append(vs, *v)
	}
	return vs
}

// CollectMap materializes a key-value sequence into a new map.
// For duplicate keys, the last pair wins.
func CollectMap[K comparable, V any, C cursor.Cursor[KV[K, V]]](c C) map[K]V {
	n, _ := lenOf(c)
	var m = make(map[K]V, max(n, 0))
	for kv := c.First(); kv != nil; kv = c.Next() {
		m[kv.K] = kv.V
	}
	return m
}

// WriteTo drains the sequence into the sink, and returns the number of written elements.
func WriteTo[T any, C cursor.Cursor[T], S sink.Sink[T]](c C, s S) int {
	var n int
	for v := c.First(); v != nil; v = c.Next() {
		s.Add(*v)
		n++
	}
	return n
}
