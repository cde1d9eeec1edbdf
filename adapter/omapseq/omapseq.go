// Package omapseq connects insertion ordered maps from github.com/wk8/go-ordered-map with sequences.
package omapseq

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"go.llib.dev/seqkit/pkg/seqkit"
	"go.llib.dev/seqkit/port/cursor"
)

// Pairs creates a view over the key-value pairs of the map, in insertion order.
//
// The view walks the map's own linked pairs, so it observes value updates made during the traversal.
// Deleting the pair the view currently stands on ends the traversal early.
func Pairs[K comparable, V any](om *orderedmap.OrderedMap[K, V]) *PairSeq[K, V] {
	return &PairSeq[K, V]{om: om}
}

type PairSeq[K comparable, V any] struct {
	om      *orderedmap.OrderedMap[K, V]
	pair    *orderedmap.Pair[K, V]
	current seqkit.KV[K, V]
}

func (s *PairSeq[K, V]) First() *seqkit.KV[K, V] {
	if s.om == nil {
		return nil
	}
	s.pair = s.om.Oldest()
	return s.emit()
}

func (s *PairSeq[K, V]) Next() *seqkit.KV[K, V] {
	if s.pair == nil {
		return nil
	}
	s.pair = s.pair.Next()
	return s.emit()
}

func (s *PairSeq[K, V]) Len() (int, bool) {
	if s.om == nil {
		return 0, true
	}
	return s.om.Len(), true
}

func (s *PairSeq[K, V]) emit() *seqkit.KV[K, V] {
	if s.pair == nil {
		return nil
	}
	s.current = seqkit.KV[K, V]{K: s.pair.Key, V: s.pair.Value}
	return &s.current
}

// Sink creates a sink that sets the pairs in the map.
// Setting an existing key keeps its original position.
func Sink[K comparable, V any](om *orderedmap.OrderedMap[K, V]) MapSink[K, V] {
	return MapSink[K, V]{Map: om}
}

type MapSink[K comparable, V any] struct {
	Map *orderedmap.OrderedMap[K, V]
}

func (s MapSink[K, V]) Add(kv seqkit.KV[K, V]) {
	s.Map.Set(kv.K, kv.V)
}

// Make materializes a key-value sequence into a new ordered map.
func Make[K comparable, V any, C cursor.Cursor[seqkit.KV[K, V]]](c C) *orderedmap.OrderedMap[K, V] {
	var capacity int
	if sized, ok := any(c).(cursor.Sized); ok {
		capacity, _ = sized.Len()
	}
	om := orderedmap.New[K, V](capacity)
	seqkit.WriteTo(c, Sink(om))
	return om
}
