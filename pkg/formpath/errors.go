package formpath

import "errors"

// MaxIndex is the largest index a write may use. Reads are not limited.
const MaxIndex = 1<<16 - 1

var (
	// ErrEmptyPath is returned when a path has no segments where at least one is needed.
	ErrEmptyPath = errors.New("empty path")

	// ErrInvalidPath is returned when a path string cannot be parsed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrNegativeIndex is returned when an index segment is below zero.
	ErrNegativeIndex = errors.New("negative index")

	// ErrIndexOutOfRange is returned when a write would grow a sequence past
	// MaxIndex.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrShapeMismatch is returned when a write would traverse an existing value
	// whose type does not match the segment (a key into a slice, an index into a
	// map, any segment into a scalar).
	ErrShapeMismatch = errors.New("value shape does not match path")
)
