package seqkit

// Single creates a sequence that yields the given value exactly once.
func Single[T any](v T) *SingleSeq[T] {
	return &SingleSeq[T]{value: v}
}

type SingleSeq[T any] struct{ value T }

func (s *SingleSeq[T]) First() *T { return &s.value }

func (s *SingleSeq[T]) Next() *T { return nil }

func (s *SingleSeq[T]) Len() (int, bool) { return 1, true }
