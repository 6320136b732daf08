package serdes

import "github.com/bbc/vc2bitstream/bitio"

// FieldRange attributes a contiguous span of bit offsets, in a bitstream
// produced by a write (or measure) pass, to one value of one target.
type FieldRange struct {
	Target     string
	Index      int
	StartBit   int
	EndBitExcl int
}

func (fr FieldRange) contains(offset int) bool {
	return offset >= fr.StartBit && offset < fr.EndBitExcl
}

// rangeTracker accumulates FieldRanges as the Driver processes tokens.
type rangeTracker struct {
	counts map[string]int
	ranges []FieldRange
}

func newRangeTracker() *rangeTracker {
	return &rangeTracker{counts: make(map[string]int)}
}

func (rt *rangeTracker) record(target string, start, end int) {
	idx := rt.counts[target]
	rt.counts[target] = idx + 1
	if start == end {
		// byte_align on an already-aligned position, or bounded_block_end on
		// a block with no space left, contributes a zero-width range; still
		// recorded so index bookkeeping for repeated targets stays consistent.
	}
	rt.ranges = append(rt.ranges, FieldRange{Target: target, Index: idx, StartBit: start, EndBitExcl: end})
}

// LocateOffsets runs grammar in measure mode against ctx (which must
// already hold every value the grammar will write) and returns the
// resulting bitstream's bit ranges, one per token that named a non-empty
// target.
func LocateOffsets(ctx *Context, grammar func(yield Yield)) ([]FieldRange, error) {
	d := &Driver{
		Mode:         ModeMeasure,
		W:            bitio.NewWriter(),
		Ctx:          ctx,
		rangeTracker: newRangeTracker(),
	}
	if err := d.Run(grammar); err != nil {
		return nil, err
	}
	return d.rangeTracker.ranges, nil
}

// LocateOffset finds which FieldRange a bit offset falls in. Offsets that
// fall inside padding produced by byte_align or the tail of a bounded block
// map to whatever target that token named (empty string if the grammar
// didn't name one, in which case no range will match and ok is false).
func LocateOffset(ranges []FieldRange, offset int) (FieldRange, bool) {
	for _, fr := range ranges {
		if fr.contains(offset) {
			return fr, true
		}
	}
	return FieldRange{}, false
}
