package cursorcontract

import (
	"testing"

	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/seqkit/port/cursor"
)

// Cursor asserts the traversal protocol on a cursor implementation.
//
// The subject made by mk is expected to be fresh in each test.
func Cursor[T any](mk func(testing.TB) cursor.Cursor[T], opts ...Option) contract.Contract {
	s := testcase.NewSpec(nil)
	c := toConfig(opts)

	subject := let.Var(s, func(t *testcase.T) cursor.Cursor[T] {
		return mk(t)
	})

	traverse := func(t *testcase.T) []T {
		var vs []T
		for v := subject.Get(t).First(); v != nil; v = subject.Get(t).Next() {
			vs = append(vs, *v)
		}
		return vs
	}

	s.Test("Next keeps signalling the end once the cursor is exhausted", func(t *testcase.T) {
		traverse(t)
		n := t.Random.IntBetween(1, 5)
		for i := 0; i < n; i++ {
			assert.Must(t).Nil(subject.Get(t).Next())
		}
	})

	s.Test("the reported length matches the traversed element count", func(t *testcase.T) {
		sized, ok := subject.Get(t).(cursor.Sized)
		if !ok {
			t.Skip("cursor doesn't report its length")
		}
		n, ok := sized.Len()
		if !ok {
			t.Skip("cursor length is not known in advance")
		}
		assert.Must(t).Equal(n, len(traverse(t)))
	})

	if c.OneShot {
		return s.AsSuite("cursor")
	}

	s.Test("First restarts the traversal and replays the same elements", func(t *testcase.T) {
		exp := traverse(t)
		got := traverse(t)
		assert.Equal(t, exp, got)
	})

	s.Test("First restarts a partially consumed traversal", func(t *testcase.T) {
		exp := traverse(t)
		if len(exp) == 0 {
			t.Skip("empty cursor")
		}
		subject.Get(t).First()
		skip := t.Random.IntBetween(0, len(exp)-1)
		for i := 0; i < skip; i++ {
			subject.Get(t).Next()
		}
		got := traverse(t)
		assert.Equal(t, exp, got)
	})

	return s.AsSuite("cursor")
}

type Option interface {
	option.Option[Config]
}

type Config struct {
	// OneShot marks cursors that can be traversed only once,
	// like the ones reading from a non seekable stream.
	OneShot bool
}

var _ Option = Config{}

func (c Config) Configure(o *Config) {
	o.OneShot = o.OneShot || c.OneShot
}

func OneShot() Option {
	return Config{OneShot: true}
}

func toConfig(opts []Option) Config {
	var c Config
	for _, opt := range opts {
		opt.Configure(&c)
	}
	return c
}
