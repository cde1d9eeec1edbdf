package seqkit

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Range returns a sequence of the integers in the half-open interval [begin, end).
// When end is not greater than begin, the sequence is empty.
func Range[I constraints.Integer](begin, end I) *RangeSeq[I] {
	return &RangeSeq[I]{begin: begin, end: end}
}

type RangeSeq[I constraints.Integer] struct {
	begin, end I
	current    I
}

func (r *RangeSeq[I]) First() *I {
	r.current = r.begin
	return r.value()
}

func (r *RangeSeq[I]) Next() *I {
	if r.current < r.end {
		r.current++
	}
	return r.value()
}

// Len is unknown when the span doesn't fit into an int.
func (r *RangeSeq[I]) Len() (int, bool) {
	if r.end <= r.begin {
		return 0, true
	}
	// two's complement subtraction gives the span of any integer type
	n := uint64(r.end) - uint64(r.begin)
	if math.MaxInt < n {
		return 0, false
	}
	return int(n), true
}

func (r *RangeSeq[I]) value() *I {
	if r.current < r.end {
		return &r.current
	}
	return nil
}
