// Package bounded implements the bit-budget bookkeeping for VC-2 bounded
// blocks (SMPTE ST 2042-1 A.4.2): length-prefixed regions where reads past
// the declared length synthesize 1-bits and writes of 1-bits past the
// declared length are silently dropped, while writes of 0-bits past the
// end are an error. The types here hold no reference to a byte stream —
// bitio.Reader and bitio.Writer embed them to implement the
// BoundedBlockBegin/BoundedBlockEnd half of the bit-reader/writer contract.
package bounded

// ReadBudget tracks the remaining bits of an active bounded read region.
type ReadBudget struct {
	StartOffset   int // absolute bit offset where the region began
	Length        int // budget in bits
	BitsRemaining int
	BitsPastEOB   int
}

// NewReadBudget creates a budget of n bits starting at the given absolute
// bit offset.
func NewReadBudget(startOffset, n int) *ReadBudget {
	return &ReadBudget{StartOffset: startOffset, Length: n, BitsRemaining: n}
}

// Consume reports whether the next bit should be satisfied from the
// underlying stream (true) or synthesized as a past-end-of-block 1-bit
// (false, incrementing BitsPastEOB).
func (b *ReadBudget) Consume() bool {
	if b.BitsRemaining > 0 {
		b.BitsRemaining--
		return true
	}
	b.BitsPastEOB++
	return false
}

// End returns the region's current BitsRemaining (unused bits, 0 if the
// region overran) and BitsPastEOB.
func (b *ReadBudget) End() (unusedBits, bitsPastEOB int) {
	return b.BitsRemaining, b.BitsPastEOB
}

// WriteBudget tracks the remaining bits of an active bounded write region.
type WriteBudget struct {
	Length        int
	BitsRemaining int
	BitsPastEOB   int
}

// NewWriteBudget creates a budget of n bits.
func NewWriteBudget(n int) *WriteBudget {
	return &WriteBudget{Length: n, BitsRemaining: n}
}

// Consume reports whether a bit being written should be emitted to the
// underlying stream. v is the bit value being written. ok is false when a
// 0-bit was attempted past the budget (the caller must fail the write);
// when a 1-bit is dropped past the budget, BitsPastEOB is incremented and
// emit is false with ok true.
func (b *WriteBudget) Consume(v int) (emit, ok bool) {
	if b.BitsRemaining > 0 {
		b.BitsRemaining--
		return true, true
	}
	if v != 0 {
		b.BitsPastEOB++
		return false, true
	}
	return false, false
}

// End returns the region's current BitsRemaining (bits of padding space
// still owed, 0 if the region overran) and BitsPastEOB.
func (b *WriteBudget) End() (unusedBits, bitsPastEOB int) {
	return b.BitsRemaining, b.BitsPastEOB
}
