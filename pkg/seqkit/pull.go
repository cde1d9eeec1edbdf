package seqkit

import (
	"iter"

	"go.llib.dev/seqkit/port/cursor"
)

// FromSeq creates a sequence out of an iter.Seq.
//
// Every First call starts a new iteration of seq,
// thus the sequence is restartable as long as seq itself can be iterated more than once.
// The iteration is held open between calls,
// so when the traversal is abandoned before the end, Close must be called to release it.
func FromSeq[T any](seq iter.Seq[T]) *PullSeq[T] {
	return &PullSeq[T]{seq: seq}
}

type PullSeq[T any] struct {
	seq     iter.Seq[T]
	next    func() (T, bool)
	stop    func()
	current T
}

func (s *PullSeq[T]) First() *T {
	_ = s.Close()
	if s.seq == nil {
		return nil
	}
	s.next, s.stop = iter.Pull(s.seq)
	return s.pull()
}

func (s *PullSeq[T]) Next() *T {
	if s.next == nil {
		return nil
	}
	return s.pull()
}

// Close releases the underlying iteration.
func (s *PullSeq[T]) Close() error {
	if s.stop != nil {
		s.stop()
	}
	s.next, s.stop = nil, nil
	return nil
}

func (s *PullSeq[T]) pull() *T {
	v, ok := s.next()
	if !ok {
		_ = s.Close()
		return nil
	}
	s.current = v
	return &s.current
}

// All returns an iter.Seq that drives c from its first element.
// Breaking out of the range loop leaves c where the iteration stopped.
func All[T any, C cursor.Cursor[T]](c C) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := c.First(); v != nil; v = c.Next() {
			if !yield(*v) {
				return
			}
		}
	}
}
