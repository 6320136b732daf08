// Package primitive implements the fixed-width, byte-string, boolean, and
// exp-Golomb integer codecs that sit directly on top of bitio's bit
// reader/writer (SMPTE ST 2042-1 Annex A.3-A.4).
package primitive

import "errors"

// ErrOutOfRange is returned when a value supplied for writing does not fit
// the declared field width, byte length, or sign constraints.
var ErrOutOfRange = errors.New("primitive: value out of range for field")
