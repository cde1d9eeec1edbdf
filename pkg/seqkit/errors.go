package seqkit

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrEmptyAccess is returned when the first or the last element is requested from an empty sequence.
	ErrEmptyAccess errorkit.Error = "sequence is empty"
	// ErrIndexOutOfRange is returned when an element is requested beyond the length of a sequence.
	ErrIndexOutOfRange errorkit.Error = "index out of range"
)
