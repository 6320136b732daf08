package serdes

import "errors"

var (
	// ErrContextMismatch is raised on a write pass when the context has no
	// value left for a target the grammar still wants, or when the grammar
	// finishes with values left over for some target.
	ErrContextMismatch = errors.New("serdes: context does not match grammar")

	// ErrUnclosedBoundedBlock is raised when a grammar exits while a bounded
	// region it opened is still active.
	ErrUnclosedBoundedBlock = errors.New("serdes: grammar exited with an open bounded block")

	// ErrNoActiveBoundedBlock is raised on a bounded_block_end token with no
	// matching bounded_block_begin.
	ErrNoActiveBoundedBlock = errors.New("serdes: bounded_block_end with no active block")

	// ErrUnsupportedValueType is raised when a value fetched from the
	// Context cannot be converted to the type a token's codec needs.
	ErrUnsupportedValueType = errors.New("serdes: value has the wrong type for this token")
)
