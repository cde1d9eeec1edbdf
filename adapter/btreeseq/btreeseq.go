// Package btreeseq connects github.com/google/btree trees with sequences.
package btreeseq

import (
	"github.com/google/btree"

	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"

	"go.llib.dev/seqkit/pkg/seqkit"
	"go.llib.dev/seqkit/port/cursor"
)

// View creates a lazy sequence over the items of the tree in ascending order.
//
// The tree must not be modified while a traversal is in progress.
// An abandoned traversal holds the tree's iteration open until Close is called.
func View[T any](tr *btree.BTreeG[T]) *seqkit.PullSeq[T] {
	return seqkit.FromSeq(func(yield func(T) bool) {
		tr.Ascend(yield)
	})
}

// Collect takes a snapshot of the tree's items in ascending order.
// The returned sequence is independent from later changes of the tree.
func Collect[T any](tr *btree.BTreeG[T]) *seqkit.SliceSeq[T] {
	var vs = make([]T, 0, tr.Len())
	tr.Ascend(func(item T) bool {
		vs = append(vs, item)
		return true
	})
	return seqkit.Slice(vs)
}

// Range takes a snapshot of the items in the half-open interval [greaterOrEqual, lessThan).
func Range[T any](tr *btree.BTreeG[T], greaterOrEqual, lessThan T) *seqkit.SliceSeq[T] {
	var vs []T
	tr.AscendRange(greaterOrEqual, lessThan, func(item T) bool {
		vs = append(vs, item)
		return true
	})
	return seqkit.Slice(vs)
}

// Sink creates a sink that inserts items into the tree.
// An item equal to an existing one replaces it.
func Sink[T any](tr *btree.BTreeG[T]) TreeSink[T] {
	return TreeSink[T]{Tree: tr}
}

type TreeSink[T any] struct {
	Tree *btree.BTreeG[T]
}

func (s TreeSink[T]) Add(item T) {
	s.Tree.ReplaceOrInsert(item)
}

// Make materializes the sequence into a new tree ordered by less.
func Make[T any, C cursor.Cursor[T]](c C, less btree.LessFunc[T], opts ...Option) *btree.BTreeG[T] {
	conf := option.ToConfig(opts)
	tr := btree.NewG[T](zerokit.Coalesce(conf.Degree, DefaultDegree), less)
	seqkit.WriteTo(c, Sink(tr))
	return tr
}

const DefaultDegree = 32

type Option interface {
	option.Option[Config]
}

type Config struct {
	// Degree is the branching factor of the created tree.
	Degree int
}

var _ Option = Config{}

func (c Config) Configure(o *Config) {
	o.Degree = zerokit.Coalesce(c.Degree, o.Degree)
}

func Degree(n int) Option {
	return Config{Degree: n}
}
