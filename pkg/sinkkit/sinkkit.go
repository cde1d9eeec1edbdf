// Package sinkkit provides output sinks, the push based dual of sequences.
//
// A sequence can be drained into any of them with seqkit.WriteTo.
package sinkkit

import (
	"go.llib.dev/seqkit/pkg/seqkit"
	"go.llib.dev/seqkit/port/sink"
)

// Func wraps a callback into a sink.
func Func[T any](fn func(T)) FuncSink[T] {
	return FuncSink[T](fn)
}

// FuncSink is a callback backed sink.
type FuncSink[T any] func(T)

func (fn FuncSink[T]) Add(item T) { fn(item) }

// Append creates a sink that appends the items to the end of the referenced slice.
func Append[T any](dst *[]T) *AppendSink[T] {
	return &AppendSink[T]{Slice: dst}
}

type AppendSink[T any] struct {
	Slice *[]T
}

func (s *AppendSink[T]) Add(item T) {
	*s.Slice = append(*s.Slice, item)
}

// Map creates a sink that inserts key-value pairs into m.
func Map[K comparable, V any](m map[K]V) MapSink[K, V] {
	return MapSink[K, V](m)
}

type MapSink[K comparable, V any] map[K]V

func (m MapSink[K, V]) Add(kv seqkit.KV[K, V]) {
	m[kv.K] = kv.V
}

// Chan creates a sink that sends the items to ch.
// Add blocks as long as the channel send blocks.
func Chan[T any](ch chan<- T) ChanSink[T] {
	return ChanSink[T](ch)
}

type ChanSink[T any] chan<- T

func (ch ChanSink[T]) Add(item T) {
	ch <- item
}

// Add pushes literal items into the sink.
func Add[T any, S sink.Sink[T]](s S, items ...T) {
	for _, item := range items {
		s.Add(item)
	}
}
