package seqkit

// Empty sequence is used to represent the lack of elements with the Null object pattern.
func Empty[T any]() *EmptySeq[T] {
	return &EmptySeq[T]{}
}

type EmptySeq[T any] struct{}

func (*EmptySeq[T]) First() *T { return nil }

func (*EmptySeq[T]) Next() *T { return nil }

func (*EmptySeq[T]) Len() (int, bool) { return 0, true }
