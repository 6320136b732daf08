package bitio

import "errors"

var (
	// ErrNestedBoundedBlock is returned by BoundedBlockBegin when a bounded
	// region is already active. VC-2 bounded blocks never nest.
	ErrNestedBoundedBlock = errors.New("bitio: bounded block already active")

	// ErrBoundedBlockOverflow is returned when a 0-bit is written past the
	// end of the active bounded region.
	ErrBoundedBlockOverflow = errors.New("bitio: cannot write 0 past end of bounded block")

	// ErrNoBoundedBlock is returned by BoundedBlockEnd when no region is
	// active.
	ErrNoBoundedBlock = errors.New("bitio: no bounded block active")

	// ErrSeekInBoundedBlock is returned when a seek is attempted while a
	// bounded region is active and the destination falls outside it.
	ErrSeekInBoundedBlock = errors.New("bitio: seek crosses bounded block boundary")
)
