// Package cursor defines the traversal protocol of a sequence.
//
// A Cursor is a stateful, single-pass walker over an ordered element stream.
// It is the minimal contract every sequence variant implements,
// everything else (filtering, mapping, folding, comparing) is derived from it.
package cursor

// Cursor is the two-operation traversal protocol.
//
// The returned pointer is only valid until the next call on the same Cursor,
// and the value it points to must be treated as read-only.
// A nil pointer is the end-marker, there is no other way to signal the end of the sequence.
//
// Both methods mutate the hidden traversal state of the Cursor,
// so a Cursor must not be driven from multiple goroutines at the same time.
type Cursor[T any] interface {
	// First resets the traversal and returns the first element, or nil when the sequence is empty.
	First() *T
	// Next advances the traversal and returns the next element, or nil when the sequence is exhausted.
	// Next must be preceded by a First call.
	// Once Next returned nil, it keeps returning nil until First is called again.
	Next() *T
}

// Sized is an optional capability of a Cursor that knows its length without traversal.
type Sized interface {
	// Len returns the number of elements.
	// When ok is false, the length is only learnable by traversing the sequence.
	Len() (n int, ok bool)
}
