package bitio

import "github.com/bbc/vc2bitstream/bounded"

// Writer accumulates individual bits, most-significant-bit first, into a
// byte buffer. A partial trailing byte is padded with 0-bits on Flush. At
// most one bounded region (A.4.2) may be active at a time.
type Writer struct {
	buf       []byte
	cur       byte
	bitsInCur int // bits already placed in cur, 0-7
	totalBits int
	region    *bounded.WriteBudget
}

// NewWriter constructs an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteBit writes one bit, MSB-first within the current byte. It returns 1
// if the bit was actually emitted to the byte buffer, 0 if it was silently
// dropped at an exhausted bounded-region boundary.
func (w *Writer) WriteBit(v int) (int, error) {
	if w.region != nil {
		emit, ok := w.region.Consume(v)
		if !ok {
			return 0, ErrBoundedBlockOverflow
		}
		if !emit {
			return 0, nil
		}
	}
	w.writeRawBit(v)
	return 1, nil
}

func (w *Writer) writeRawBit(v int) {
	if v != 0 {
		w.cur |= 1 << uint(7-w.bitsInCur)
	}
	w.bitsInCur++
	w.totalBits++
	if w.bitsInCur == 8 {
		w.buf = append(w.buf, w.cur)
		w.cur = 0
		w.bitsInCur = 0
	}
}

// Tell returns the offset of the next bit to be written.
func (w *Writer) Tell() (byteIndex, bitIndex int) {
	return FromBitOffset(w.totalBits)
}

// TellOffset returns the flat bit offset of the next bit to be written.
func (w *Writer) TellOffset() int {
	return w.totalBits
}

// BoundedBlockBegin starts a bounded region of n bits. Nested regions are
// rejected with ErrNestedBoundedBlock.
func (w *Writer) BoundedBlockBegin(n int) error {
	if w.region != nil {
		return ErrNestedBoundedBlock
	}
	w.region = bounded.NewWriteBudget(n)
	return nil
}

// BoundedBlockEnd ends the active bounded region, writing padValue's low
// bits (MSB-first) into whatever space remains in the block (0 bits if the
// block overran). It returns the number of padding bits written and
// bitsPastEOB, the number of 1-bits dropped because the grammar exceeded
// the block.
func (w *Writer) BoundedBlockEnd(padValue uint64) (unusedBits, bitsPastEOB int, err error) {
	if w.region == nil {
		return 0, 0, ErrNoBoundedBlock
	}
	reg := w.region
	w.region = nil
	unusedBits, bitsPastEOB = reg.End()
	for i := unusedBits - 1; i >= 0; i-- {
		w.writeRawBit(int((padValue >> uint(i)) & 1))
	}
	return unusedBits, bitsPastEOB, nil
}

// Flush pads any partial trailing byte with 0-bits and returns the
// accumulated byte buffer.
func (w *Writer) Flush() []byte {
	if w.bitsInCur > 0 {
		w.buf = append(w.buf, w.cur)
		w.cur = 0
		w.bitsInCur = 0
	}
	return w.buf
}

// InBoundedBlock reports whether a bounded region is currently active.
func (w *Writer) InBoundedBlock() bool {
	return w.region != nil
}
