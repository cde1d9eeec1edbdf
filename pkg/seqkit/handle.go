package seqkit

import (
	"context"
	"io"
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/seqkit/port/cursor"
	"go.llib.dev/seqkit/port/sink"
)

// Of wraps a sequence variant into a type-erased Seq handle.
//
// Use it where a sequence crosses an API boundary,
// and the concrete combinator type should not leak into the signature.
// Every call on the handle is forwarded through the cursor.Cursor interface.
func Of[T any](c cursor.Cursor[T]) Seq[T] {
	switch c := c.(type) {
	case nil:
		return Seq[T]{}
	case Seq[T]:
		return c
	case *Seq[T]:
		return *c
	default:
		closer, _ := c.(io.Closer)
		return Seq[T]{cursor: c, closer: closer}
	}
}

// Seq is the owning, type-erased sequence handle.
//
// The zero value is an empty sequence.
// Seq owns the variant it wraps: Close releases the variant's resources when it holds any.
// Handles derived with the fluent combinators keep that ownership,
// so closing the last handle of a pipeline releases its source.
type Seq[T any] struct {
	cursor cursor.Cursor[T]
	closer io.Closer
}

func (s Seq[T]) First() *T { return s.get().First() }

func (s Seq[T]) Next() *T { return s.get().Next() }

func (s Seq[T]) Len() (int, bool) { return lenOf(s.get()) }

// Close releases the wrapped variant when it implements io.Closer.
func (s Seq[T]) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Ref returns a non-owning reference to this handle.
func (s *Seq[T]) Ref() Ref[T] {
	return Ref[T]{seq: s}
}

func (s Seq[T]) get() cursor.Cursor[T] {
	if s.cursor == nil {
		return Empty[T]()
	}
	return s.cursor
}

func (s Seq[T]) derive(c cursor.Cursor[T]) Seq[T] {
	return Seq[T]{cursor: c, closer: s.closer}
}

type closers [2]io.Closer

func (cs closers) Close() error {
	var errs []error
	for _, c := range cs {
		if c != nil {
			errs = append(errs, c.Close())
		}
	}
	return errorkit.Merge(errs...)
}

func (s Seq[T]) Where(pred func(T) bool) Seq[T] {
	return s.derive(Where(s.get(), pred))
}

func (s Seq[T]) Take(n int) Seq[T] {
	return s.derive(Take[T](s.get(), n))
}

func (s Seq[T]) Skip(n int) Seq[T] {
	return s.derive(Skip[T](s.get(), n))
}

func (s Seq[T]) TakeWhile(pred func(T) bool) Seq[T] {
	return s.derive(TakeWhile(s.get(), pred))
}

func (s Seq[T]) SkipUntil(pred func(T) bool) Seq[T] {
	return s.derive(SkipUntil(s.get(), pred))
}

// Concat takes over the ownership of other when it holds resources.
func (s Seq[T]) Concat(other cursor.Cursor[T]) Seq[T] {
	out := s.derive(Concat[T](s.get(), other))
	if closer, ok := other.(io.Closer); ok {
		out.closer = closers{s.closer, closer}
	}
	return out
}

func (s Seq[T]) Repeat(n int) Seq[T] {
	return s.derive(Repeat[T](s.get(), n))
}

func (s Seq[T]) Trace(ctx context.Context, opts ...TraceOption) Seq[T] {
	return s.derive(Trace[T](ctx, s.get(), opts...))
}

func (s Seq[T]) Size() int { return Size[T](s.get()) }

func (s Seq[T]) Any() bool { return Any[T](s.get()) }

func (s Seq[T]) AnyFunc(pred func(T) bool) bool { return AnyFunc(s.get(), pred) }

func (s Seq[T]) IsEmpty() bool { return IsEmpty[T](s.get()) }

func (s Seq[T]) Count(pred func(T) bool) int { return Count(s.get(), pred) }

func (s Seq[T]) At(index int) (T, error) { return At[T](s.get(), index) }

func (s Seq[T]) AtOrDefault(index int, def T) T { return AtOrDefault(s.get(), index, def) }

func (s Seq[T]) Front() (T, error) { return Front[T](s.get()) }

func (s Seq[T]) FrontOrDefault(def T) T { return FrontOrDefault(s.get(), def) }

func (s Seq[T]) Back() (T, error) { return Back[T](s.get()) }

func (s Seq[T]) BackOrDefault(def T) T { return BackOrDefault(s.get(), def) }

func (s Seq[T]) Aggregate(fn func(T, T) T, init ...T) T {
	return Aggregate(s.get(), fn, init...)
}

func (s Seq[T]) EqualFunc(other cursor.Cursor[T], eq func(T, T) bool) bool {
	return EqualFunc(s.get(), other, eq)
}

func (s Seq[T]) LessFunc(other cursor.Cursor[T], lt func(T, T) bool) bool {
	return LessFunc(s.get(), other, lt)
}

func (s Seq[T]) Collect() []T { return Collect[T](s.get()) }

func (s Seq[T]) WriteTo(out sink.Sink[T]) int { return WriteTo[T](s.get(), out) }

func (s Seq[T]) All() iter.Seq[T] { return All[T](s.get()) }

// Ref is a non-owning reference to a Seq handle.
//
// Passing a Ref around never copies the handle it points to,
// and it cannot release the referenced variant.
// Ref itself only speaks the cursor protocol, use Seq to reach
// the fluent combinators and terminals of the handle:
//
//	ref.Seq().Where(pred).Take(3).Collect()
type Ref[T any] struct {
	seq *Seq[T]
}

func (r Ref[T]) First() *T { return r.get().First() }

func (r Ref[T]) Next() *T { return r.get().Next() }

func (r Ref[T]) Len() (int, bool) { return r.get().Len() }

// Seq returns a handle that drives the referenced sequence.
// Closing the returned handle has no effect on the referenced one.
func (r Ref[T]) Seq() Seq[T] {
	return Seq[T]{cursor: r}
}

func (r Ref[T]) get() Seq[T] {
	if r.seq == nil {
		return Seq[T]{}
	}
	return *r.seq
}
