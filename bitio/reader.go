package bitio

import "github.com/bbc/vc2bitstream/bounded"

// Reader reads individual bits, most-significant-bit first, from an
// in-memory byte slice. Reads past the end of the slice synthesize 1-bits
// and are tallied rather than raising an error, matching the VC-2
// specification's past-EOF handling. At most one bounded region (A.4.2) may
// be active at a time; VC-2 bounded blocks never nest.
type Reader struct {
	data        []byte
	bitOffset   int // flat offset of the next bit to read
	pastEOFBits int // total synthetic bits returned so far, across the pass
	region      *bounded.ReadBudget
}

// NewReader constructs a Reader over data, positioned at the start.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// PastEOFBits returns the running total of bits synthesized because the
// underlying stream was exhausted (not counting bits synthesized only
// because an active bounded region's budget ran out).
func (r *Reader) PastEOFBits() int {
	return r.pastEOFBits
}

// ReadBit reads the most-significant unread bit of the next byte. The
// second return value is true if the bit was synthesized (the stream, or
// an active bounded region's budget, was exhausted).
func (r *Reader) ReadBit() (int, bool) {
	if r.region != nil {
		if !r.region.Consume() {
			return 1, true
		}
	}
	return r.readRawBit()
}

func (r *Reader) readRawBit() (int, bool) {
	byteIndex, bitIndex := FromBitOffset(r.bitOffset)
	r.bitOffset++
	if byteIndex >= len(r.data) {
		r.pastEOFBits++
		return 1, true
	}
	bit := int((r.data[byteIndex] >> uint(bitIndex)) & 1)
	return bit, false
}

// Tell returns the offset of the next bit to be read.
func (r *Reader) Tell() (byteIndex, bitIndex int) {
	return FromBitOffset(r.bitOffset)
}

// TellOffset returns the flat bit offset of the next bit to be read.
func (r *Reader) TellOffset() int {
	return r.bitOffset
}

// Seek repositions the reader. If a bounded region is active, the
// destination must lie within the region's remaining range.
func (r *Reader) Seek(byteIndex, bitIndex int) error {
	dest := ToBitOffset(byteIndex, bitIndex)
	if r.region != nil {
		regionEnd := r.region.StartOffset + r.region.Length
		if dest < r.region.StartOffset || dest > regionEnd {
			return ErrSeekInBoundedBlock
		}
		r.region.BitsRemaining = regionEnd - dest
	}
	r.bitOffset = dest
	return nil
}

// BoundedBlockBegin starts a bounded region of n bits. Nested regions are
// rejected with ErrNestedBoundedBlock.
func (r *Reader) BoundedBlockBegin(n int) error {
	if r.region != nil {
		return ErrNestedBoundedBlock
	}
	r.region = bounded.NewReadBudget(r.bitOffset, n)
	return nil
}

// BoundedBlockEnd ends the active bounded region. It returns the bits left
// unconsumed in the block as padValue (MSB-first, 0 if the block overran),
// the count of those unused bits, and the number of bits the grammar read
// past the block's end.
func (r *Reader) BoundedBlockEnd() (padValue uint64, unusedBits, bitsPastEOB int, err error) {
	if r.region == nil {
		return 0, 0, 0, ErrNoBoundedBlock
	}
	reg := r.region
	r.region = nil
	// Consume any bits the grammar left unread in the block so the reader
	// lands exactly at the block's end; these are the padding bits and are
	// preserved by the caller for round-trip fidelity.
	unusedBits, bitsPastEOB = reg.End()
	for i := 0; i < unusedBits; i++ {
		bit, _ := r.readRawBit()
		padValue = (padValue << 1) | uint64(bit)
	}
	return padValue, unusedBits, bitsPastEOB, nil
}

// InBoundedBlock reports whether a bounded region is currently active.
func (r *Reader) InBoundedBlock() bool {
	return r.region != nil
}
