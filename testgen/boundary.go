// Package testgen builds VC-2 conformance fixtures whose values are
// constructed to land exactly on the edge of a bounded block: the last bit
// of a field coincides with, falls one bit short of, or overruns the
// block's declared length. These are the cases a hand-written table is
// least likely to cover and most likely to expose an off-by-one in the
// bounded-region bookkeeping.
package testgen

import (
	"github.com/bbc/vc2bitstream/bitio"
	"github.com/bbc/vc2bitstream/primitive"
)

// BoundaryCase is one constructed fixture: the bytes a reader would be
// given, the bounded block size that should be opened over them, and what
// reading the named field back out of that block should produce.
type BoundaryCase struct {
	Description     string
	Data            []byte
	BlockBits       int
	FieldBits       int // width of the nbits(k) field under test
	WantValue       uint64
	WantUnusedBits  int
	WantBitsPastEOB int
}

// NBitsBoundaryCases returns three fixtures for an nbits(fieldBits) field
// read from a bounded block: one where the field exactly fills the block,
// one where it underruns by one bit, and one where it overruns by one bit.
func NBitsBoundaryCases(fieldBits int, value uint64) []BoundaryCase {
	exact := buildNBitsCase("exact fit: field consumes the whole block", fieldBits, fieldBits, value)
	under := buildNBitsCase("underrun: one padding bit left in the block", fieldBits, fieldBits+1, value)
	over := buildNBitsCase("overrun: field reads one synthetic bit past the block", fieldBits, fieldBits-1, value)
	return []BoundaryCase{exact, under, over}
}

func buildNBitsCase(desc string, fieldBits, blockBits int, value uint64) BoundaryCase {
	// The fixture bytes are just fieldBits worth of value, written with no
	// bounded block at all: the block is a read-side constraint imposed
	// afterward, so building the bytes this way lets blockBits legitimately
	// be smaller than fieldBits (the overrun case) without tripping the
	// writer's own BoundedBlockOverflow check, which would only ever fire
	// for an encoder that is itself trying to overrun a block with a 0-bit.
	w := bitio.NewWriter()
	if _, err := primitive.WriteNBits(w, fieldBits, value); err != nil {
		panic(err)
	}
	data := w.Flush()

	r := bitio.NewReader(data)
	if err := r.BoundedBlockBegin(blockBits); err != nil {
		panic(err)
	}
	res := primitive.NBits(r, fieldBits)
	_, readUnused, readPastEOB, err := r.BoundedBlockEnd()
	if err != nil {
		panic(err)
	}

	return BoundaryCase{
		Description:     desc,
		Data:            data,
		BlockBits:       blockBits,
		FieldBits:       fieldBits,
		WantValue:       res.Value,
		WantUnusedBits:  readUnused,
		WantBitsPastEOB: readPastEOB,
	}
}
