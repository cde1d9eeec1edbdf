package seqkit

// Generator is the state holder of a generated sequence.
//
// Both steps receive the sequence's current value and update it in place.
// First initialises the state, Next advances it,
// and both report whether the sequence continues with the updated value.
type Generator[T any] interface {
	First(current *T) bool
	Next(current *T) bool
}

// GeneratorFunc adapts a pair of step functions to the Generator interface.
// When NextFunc is nil, FirstFunc is used for both steps.
type GeneratorFunc[T any] struct {
	FirstFunc func(current *T) bool
	NextFunc  func(current *T) bool
}

func (g GeneratorFunc[T]) First(current *T) bool {
	return g.FirstFunc(current)
}

func (g GeneratorFunc[T]) Next(current *T) bool {
	if g.NextFunc == nil {
		return g.FirstFunc(current)
	}
	return g.NextFunc(current)
}

// Generate creates a sequence driven by two step functions sharing the current value.
//
// A generated sequence is only restartable if its step functions keep no state outside the current value.
func Generate[T any](first, next func(current *T) bool) *GeneratorSeq[T, GeneratorFunc[T]] {
	return FromGenerator(GeneratorFunc[T]{FirstFunc: first, NextFunc: next})
}

// FromGenerator creates a sequence out of a Generator.
func FromGenerator[T any, G Generator[T]](g G) *GeneratorSeq[T, G] {
	return &GeneratorSeq[T, G]{gen: g}
}

type GeneratorSeq[T any, G Generator[T]] struct {
	gen     G
	current T
	done    bool
}

func (s *GeneratorSeq[T, G]) First() *T {
	var zero T
	s.current = zero
	s.done = false
	return s.step(s.gen.First(&s.current))
}

func (s *GeneratorSeq[T, G]) Next() *T {
	if s.done {
		return nil
	}
	return s.step(s.gen.Next(&s.current))
}

func (s *GeneratorSeq[T, G]) step(ok bool) *T {
	if !ok {
		s.done = true
		return nil
	}
	return &s.current
}
