package btreeseq_test

import (
	"cmp"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.llib.dev/seqkit/adapter/btreeseq"
	"go.llib.dev/seqkit/pkg/seqkit"
	"go.llib.dev/seqkit/port/cursor"
	"go.llib.dev/seqkit/port/cursor/cursorcontract"
)

func newTree(vs ...int) *btree.BTreeG[int] {
	tr := btree.NewG[int](2, cmp.Less[int])
	for _, v := range vs {
		tr.ReplaceOrInsert(v)
	}
	return tr
}

func TestView(t *testing.T) {
	tr := newTree(5, 1, 4, 2, 3)
	seq := btreeseq.View(tr)
	defer seq.Close()

	assert.Equal(t, []int{1, 2, 3, 4, 5}, seqkit.Collect[int](seq))
	assert.Equal(t, []int{1, 2}, seqkit.Collect[int](seqkit.Take[int](seq, 2)))
	require.NoError(t, seq.Close())

	cursorcontract.Cursor[int](func(tb testing.TB) cursor.Cursor[int] {
		seq := btreeseq.View(newTree(3, 1, 2))
		tb.Cleanup(func() { _ = seq.Close() })
		return seq
	}).Test(t)
}

func TestCollect(t *testing.T) {
	tr := newTree(3, 1, 2)
	seq := btreeseq.Collect(tr)
	tr.ReplaceOrInsert(0)

	assert.Equal(t, []int{1, 2, 3}, seqkit.Collect[int](seq))
	n, ok := seq.Len()
	assert.True(t, ok)
	assert.Equal(t, 3, n)
}

func TestRange(t *testing.T) {
	tr := newTree(1, 2, 3, 4, 5)
	assert.Equal(t, []int{2, 3}, seqkit.Collect[int](btreeseq.Range(tr, 2, 4)))
	assert.True(t, seqkit.IsEmpty[int](btreeseq.Range(tr, 4, 2)))
}

func TestMake(t *testing.T) {
	tr := btreeseq.Make(seqkit.List(3, 1, 2, 1), cmp.Less[int], btreeseq.Degree(4))
	require.Equal(t, 3, tr.Len())

	first, ok := tr.Min()
	require.True(t, ok)
	assert.Equal(t, 1, first)
	assert.Equal(t, []int{1, 2, 3}, seqkit.Collect[int](btreeseq.Collect(tr)))

	assert.Equal(t, 0, btreeseq.Make(seqkit.Empty[int](), cmp.Less[int]).Len())

	clone := btreeseq.Make(btreeseq.Collect(tr), cmp.Less[int])
	assert.True(t, seqkit.Equal[int](btreeseq.Collect(tr), btreeseq.Collect(clone)))
}

func TestSink(t *testing.T) {
	tr := newTree()
	seqkit.WriteTo(seqkit.Range(0, 10), btreeseq.Sink(tr))
	assert.Equal(t, 10, tr.Len())
	assert.True(t, seqkit.Equal[int](seqkit.Range(0, 10), btreeseq.Collect(tr)))
}
