package seqkit_test

import (
	"strings"
	"testing"

	"go.llib.dev/seqkit/pkg/seqkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func TestEqual(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("length sensitive", func(t *testcase.T) {
		assert.Must(t).False(seqkit.Equal[int](seqkit.List(1, 2), seqkit.List(1, 2, 3)))
		assert.Must(t).False(seqkit.Equal[int](seqkit.List(1, 2, 3), seqkit.List(1, 2)))
	})

	s.Test("length sensitive when the lengths are not known in advance", func(t *testcase.T) {
		a := &StubCursor[int]{Values: []int{1, 2}}
		b := &StubCursor[int]{Values: []int{1, 2, 3}}
		assert.Must(t).False(seqkit.Equal[int](a, b))
	})

	s.Test("reflexive", func(t *testcase.T) {
		vs := makeInts(t)
		assert.Must(t).True(seqkit.Equal[int](seqkit.Slice(vs), seqkit.Slice(vs)))
	})

	s.Test("element mismatch", func(t *testcase.T) {
		assert.Must(t).False(seqkit.Equal[int](seqkit.List(1, 2), seqkit.List(1, 3)))
	})

	s.Test("custom equality", func(t *testcase.T) {
		eq := func(a, b string) bool { return strings.EqualFold(a, b) }
		assert.Must(t).True(seqkit.EqualFunc(seqkit.List("a", "B"), seqkit.List("A", "b"), eq))
		assert.Must(t).False(seqkit.EqualFunc(seqkit.List("a"), seqkit.List("A", "b"), eq))
	})

	s.Test("empty sequences are equal", func(t *testcase.T) {
		assert.Must(t).True(seqkit.Equal[int](seqkit.Empty[int](), seqkit.List[int]()))
	})
}

func TestCompare(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("shorter prefix is the lesser", func(t *testcase.T) {
		assert.Must(t).True(seqkit.Less[int](seqkit.List(1, 2), seqkit.List(1, 2, 3)))
		assert.Must(t).False(seqkit.Less[int](seqkit.List(1, 2, 3), seqkit.List(1, 2)))
		assert.Must(t).Equal(-1, seqkit.Compare[int](seqkit.List(1, 2), seqkit.List(1, 2, 3)))
		assert.Must(t).Equal(+1, seqkit.Compare[int](seqkit.List(1, 2, 3), seqkit.List(1, 2)))
	})

	s.Test("the first mismatch decides", func(t *testcase.T) {
		assert.Must(t).True(seqkit.Less[int](seqkit.List(1), seqkit.List(2)))
		assert.Must(t).False(seqkit.Less[int](seqkit.List(2), seqkit.List(1)))
		assert.Must(t).True(seqkit.Less[int](seqkit.List(1, 9, 9), seqkit.List(2)))
		assert.Must(t).Equal(+1, seqkit.Compare[int](seqkit.List(2), seqkit.List(1)))
	})

	s.Test("equal sequences are not less than each other", func(t *testcase.T) {
		assert.Must(t).False(seqkit.Less[int](seqkit.List(1, 2), seqkit.List(1, 2)))
		assert.Must(t).Equal(0, seqkit.Compare[int](seqkit.List(1, 2), seqkit.List(1, 2)))
		assert.Must(t).True(seqkit.Compare[int](seqkit.List(1, 2), seqkit.List(1, 2)) <= 0)
	})

	s.Test("simultaneous exhaustion is not less", func(t *testcase.T) {
		assert.Must(t).False(seqkit.Less[int](seqkit.Empty[int](), seqkit.Empty[int]()))
		assert.Must(t).True(seqkit.Less[int](seqkit.Empty[int](), seqkit.List(1)))
		assert.Must(t).False(seqkit.Less[int](seqkit.List(1), seqkit.Empty[int]()))
	})

	s.Test("custom order", func(t *testcase.T) {
		desc := func(a, b int) bool { return a > b }
		assert.Must(t).True(seqkit.LessFunc(seqkit.List(2), seqkit.List(1), desc))
		assert.Must(t).False(seqkit.LessFunc(seqkit.List(1), seqkit.List(2), desc))
	})
}
