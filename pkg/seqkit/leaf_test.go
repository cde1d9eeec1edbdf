package seqkit_test

import (
	"math"
	"testing"

	"go.llib.dev/seqkit/pkg/seqkit"
	"go.llib.dev/seqkit/port/cursor"
	"go.llib.dev/seqkit/port/cursor/cursorcontract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

var (
	_ cursor.Sized = seqkit.Empty[int]()
	_ cursor.Sized = seqkit.Single(42)
	_ cursor.Sized = seqkit.Slice([]int{})
	_ cursor.Sized = seqkit.List[int]()
	_ cursor.Sized = seqkit.Range(0, 0)
)

func TestEmpty(t *testing.T) {
	s := seqkit.Empty[string]()
	assert.Nil(t, s.First())
	assert.Nil(t, s.Next())
	assert.Equal(t, 0, seqkit.Size[string](s))
	assert.True(t, seqkit.IsEmpty[string](s))

	cursorcontract.Cursor[string](func(tb testing.TB) cursor.Cursor[string] {
		return seqkit.Empty[string]()
	}).Test(t)
}

func TestSingle(t *testing.T) {
	s := testcase.NewSpec(t)

	value := testcase.Let(s, func(t *testcase.T) string {
		return t.Random.String()
	})
	subject := testcase.Let(s, func(t *testcase.T) *seqkit.SingleSeq[string] {
		return seqkit.Single(value.Get(t))
	})

	s.Test("yields the value once", func(t *testcase.T) {
		assert.Must(t).Equal([]string{value.Get(t)}, seqkit.Collect[string](subject.Get(t)))
	})

	s.Test("size is one", func(t *testcase.T) {
		n, ok := subject.Get(t).Len()
		assert.Must(t).True(ok)
		assert.Must(t).Equal(1, n)
	})

	cursorcontract.Cursor[string](func(tb testing.TB) cursor.Cursor[string] {
		t := testcase.ToT(&tb)
		return seqkit.Single(t.Random.String())
	}).Spec(s)
}

func TestSlice(t *testing.T) {
	s := testcase.NewSpec(t)

	values := testcase.Let(s, func(t *testcase.T) []int {
		return random.Slice(t.Random.IntBetween(1, 7), t.Random.Int)
	})
	subject := testcase.Let(s, func(t *testcase.T) *seqkit.SliceSeq[int] {
		return seqkit.Slice(values.Get(t))
	})

	s.Test("yields the elements in order", func(t *testcase.T) {
		assert.Must(t).Equal(values.Get(t), seqkit.Collect[int](subject.Get(t)))
	})

	s.Test("observes the writes to the backing array", func(t *testcase.T) {
		vs := values.Get(t)
		exp := t.Random.Int()
		vs[0] = exp
		v := subject.Get(t).First()
		assert.Must(t).NotNil(v)
		assert.Must(t).Equal(exp, *v)
	})

	s.Test("the length is known without traversal", func(t *testcase.T) {
		n, ok := subject.Get(t).Len()
		assert.Must(t).True(ok)
		assert.Must(t).Equal(len(values.Get(t)), n)
	})

	cursorcontract.Cursor[int](func(tb testing.TB) cursor.Cursor[int] {
		t := testcase.ToT(&tb)
		return seqkit.Slice(random.Slice(t.Random.IntBetween(0, 7), t.Random.Int))
	}).Spec(s)
}

func TestStore(t *testing.T) {
	s := testcase.NewSpec(t)

	values := testcase.Let(s, func(t *testcase.T) []int {
		return random.Slice(t.Random.IntBetween(1, 7), t.Random.Int)
	})
	subject := testcase.Let(s, func(t *testcase.T) *seqkit.StoreSeq[int] {
		return seqkit.Store(values.Get(t))
	})

	s.Test("yields the elements in order", func(t *testcase.T) {
		assert.Must(t).Equal(values.Get(t), seqkit.Collect[int](subject.Get(t)))
	})

	s.Test("stays valid after the source is discarded", func(t *testcase.T) {
		var (
			vs  = values.Get(t)
			exp = append([]int{}, vs...)
			seq = subject.Get(t)
		)
		for i := range vs {
			vs[i] = 0
		}
		vs = nil
		assert.Must(t).Equal(exp, seqkit.Collect[int](seq))
	})

	s.Test("views traverse the owned data independently", func(t *testcase.T) {
		var (
			seq = subject.Get(t)
			a   = seq.View()
			b   = seq.View()
		)
		x := a.First()
		for i := 0; i < len(values.Get(t))-1; i++ {
			x = a.Next()
		}
		y := b.First()
		assert.Must(t).NotNil(x)
		assert.Must(t).NotNil(y)
		assert.Must(t).Equal(values.Get(t)[len(values.Get(t))-1], *x)
		assert.Must(t).Equal(values.Get(t)[0], *y)
	})

	cursorcontract.Cursor[int](func(tb testing.TB) cursor.Cursor[int] {
		t := testcase.ToT(&tb)
		return seqkit.Store(random.Slice(t.Random.IntBetween(0, 7), t.Random.Int))
	}).Spec(s)
}

func TestList(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, seqkit.Collect[int](seqkit.List(1, 2, 3)))
	assert.Equal(t, 0, seqkit.Size[int](seqkit.List[int]()))
}

func TestStoreMap(t *testing.T) {
	m := map[string]int{"c": 3, "a": 1, "b": 2}
	got := seqkit.Collect[seqkit.KV[string, int]](seqkit.StoreMap(m))
	assert.Equal(t, []seqkit.KV[string, int]{{K: "a", V: 1}, {K: "b", V: 2}, {K: "c", V: 3}}, got)
	assert.Equal(t, m, seqkit.CollectMap(seqkit.StoreMap(m)))
}

func TestRange(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("half open", func(t *testcase.T) {
		assert.Must(t).Equal([]int{1, 2, 3}, seqkit.Collect[int](seqkit.Range(1, 4)))
	})

	s.Test("empty when end is not greater than begin", func(t *testcase.T) {
		assert.Must(t).True(seqkit.IsEmpty[int](seqkit.Range(4, 4)))
		assert.Must(t).True(seqkit.IsEmpty[int](seqkit.Range(4, 1)))
		n, ok := seqkit.Range(4, 1).Len()
		assert.Must(t).True(ok)
		assert.Must(t).Equal(0, n)
	})

	s.Test("size equals the traversed count", func(t *testcase.T) {
		var (
			begin = t.Random.IntBetween(-100, 100)
			end   = t.Random.IntBetween(-100, 100)
			seq   = seqkit.Range(begin, end)
		)
		n, _ := seq.Len()
		assert.Must(t).Equal(n, len(seqkit.Collect[int](seq)))
	})

	s.Test("span wider than the positive range of the type", func(t *testcase.T) {
		seq := seqkit.Range[int8](-100, 100)
		n, ok := seq.Len()
		assert.Must(t).True(ok)
		assert.Must(t).Equal(200, n)
		assert.Must(t).Equal(200, len(seqkit.Collect[int8](seq)))

		useq := seqkit.Range[uint8](0, 255)
		assert.Must(t).Equal(255, seqkit.Size[uint8](useq))
		assert.Must(t).Equal(255, len(seqkit.Collect[uint8](useq)))
	})

	s.Test("span that doesn't fit into an int has unknown length", func(t *testcase.T) {
		_, ok := seqkit.Range[uint64](0, math.MaxUint64).Len()
		assert.Must(t).False(ok)

		seq := seqkit.Range[int64](math.MinInt64, math.MaxInt64)
		_, ok = seq.Len()
		assert.Must(t).False(ok)
		head := seqkit.Collect[int64](seqkit.Take[int64](seq, 2))
		assert.Must(t).Equal([]int64{math.MinInt64, math.MinInt64 + 1}, head)
	})

	cursorcontract.Cursor[int](func(tb testing.TB) cursor.Cursor[int] {
		t := testcase.ToT(&tb)
		begin := t.Random.IntBetween(-10, 10)
		return seqkit.Range(begin, begin+t.Random.IntBetween(0, 10))
	}).Spec(s)
}

func TestGenerate(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("first initialises, next advances the shared state", func(t *testcase.T) {
		seq := seqkit.Generate(
			func(c *int) bool { *c = 1; return true },
			func(c *int) bool { *c *= 2; return *c < 100 },
		)
		assert.Must(t).Equal([]int{1, 2, 4, 8, 16, 32, 64}, seqkit.Collect[int](seq))
	})

	s.Test("empty when first reports no element", func(t *testcase.T) {
		seq := seqkit.Generate(
			func(c *int) bool { return false },
			func(c *int) bool { return true },
		)
		assert.Must(t).True(seqkit.IsEmpty[int](seq))
		assert.Must(t).Nil(seq.Next())
	})

	s.Test("first is reused as next when next is not provided", func(t *testcase.T) {
		seq := seqkit.FromGenerator[int](seqkit.GeneratorFunc[int]{
			FirstFunc: func(c *int) bool { *c++; return *c <= 3 },
		})
		assert.Must(t).Equal([]int{1, 2, 3}, seqkit.Collect[int](seq))
	})

	cursorcontract.Cursor[int](func(tb testing.TB) cursor.Cursor[int] {
		t := testcase.ToT(&tb)
		n := t.Random.IntBetween(0, 10)
		return seqkit.Generate(
			func(c *int) bool { return 0 < n },
			func(c *int) bool { *c++; return *c < n },
		)
	}).Spec(s)
}

func primes() *seqkit.WhereSeq[int, *seqkit.RangeSeq[int]] {
	return seqkit.Where(seqkit.Range(2, 1000), func(n int) bool {
		for m := 2; m < n; m++ {
			if n%m == 0 {
				return false
			}
		}
		return true
	})
}

func sieve(limit int) []int {
	composite := make([]bool, limit)
	var out []int
	for n := 2; n < limit; n++ {
		if composite[n] {
			continue
		}
		out = append(out, n)
		for m := n * n; m < limit; m += n {
			composite[m] = true
		}
	}
	return out
}

func TestPrimes(t *testing.T) {
	assert.Equal(t, []int{2, 3, 5, 7, 11}, seqkit.Collect[int](seqkit.Take[int](primes(), 5)))
	assert.Equal(t, sieve(1000), seqkit.Collect[int](primes()))
}
