package vc2

import "github.com/bbc/vc2bitstream/serdes"

// HQSlice returns a GrammarFunc for one high-quality slice (SMPTE
// ST 2042-1 13.5.3): qindex, then three length fields (one per component,
// each counted in units of sliceSizeScaler bytes), then each component's
// coefficients in their own bounded block. yCoeffs, c1Coeffs, c2Coeffs are
// the number of sint-coded coefficients this slice's subband geometry says
// each component carries; the caller (typically slice.Array-driven code)
// computes them from the picture's subband dimensions and this slice's
// position before building the grammar.
func HQSlice(sliceSizeScaler, yCoeffs, c1Coeffs, c2Coeffs int) GrammarFunc {
	return func(yield serdes.Yield) {
		yield(serdes.NBits("qindex", 7))
		yLen := yield(serdes.NBits("slice_y_length", 8)).(uint64)
		c1Len := yield(serdes.NBits("slice_c1_length", 8)).(uint64)
		c2Len := yield(serdes.NBits("slice_c2_length", 8)).(uint64)

		yield(serdes.BoundedBlockBegin(int(yLen) * sliceSizeScaler * 8))
		for i := 0; i < yCoeffs; i++ {
			yield(serdes.SInt("y_transform"))
		}
		yield(serdes.BoundedBlockEnd("y_padding"))

		yield(serdes.BoundedBlockBegin(int(c1Len) * sliceSizeScaler * 8))
		for i := 0; i < c1Coeffs; i++ {
			yield(serdes.SInt("c1_transform"))
		}
		yield(serdes.BoundedBlockEnd("c1_padding"))

		yield(serdes.BoundedBlockBegin(int(c2Len) * sliceSizeScaler * 8))
		for i := 0; i < c2Coeffs; i++ {
			yield(serdes.SInt("c2_transform"))
		}
		yield(serdes.BoundedBlockEnd("c2_padding"))
	}
}

// LDSlice returns a GrammarFunc for one low-delay slice (13.5.4). sliceBits
// is this slice's total bit allocation (derived from slice_bytes_numer /
// slice_bytes_denom, distributed across the picture's slices per §4.5's
// surplus-byte rule); lengthFieldBits is ⌈log2(sliceBits)⌉, saturating,
// shared by every slice in a picture. yCoeffs and cCoeffs are the
// component coefficient counts for this slice, with C1 and C2 interleaved
// into the single "C" bounded block per the low-delay layout.
func LDSlice(sliceBits, lengthFieldBits, yCoeffs, cCoeffs int) GrammarFunc {
	return func(yield serdes.Yield) {
		yield(serdes.NBits("qindex", 7))
		yLen := yield(serdes.NBits("slice_y_length", lengthFieldBits)).(uint64)

		yield(serdes.BoundedBlockBegin(int(yLen)))
		for i := 0; i < yCoeffs; i++ {
			yield(serdes.SInt("y_transform"))
		}
		yield(serdes.BoundedBlockEnd("y_padding"))

		remaining := sliceBits - 7 - lengthFieldBits - int(yLen)
		if remaining < 0 {
			remaining = 0
		}
		yield(serdes.BoundedBlockBegin(remaining))
		for i := 0; i < cCoeffs; i++ {
			yield(serdes.SInt("c_transform"))
		}
		yield(serdes.BoundedBlockEnd("c_padding"))
	}
}

// LowDelaySliceBits distributes a picture's total low-delay slice bytes
// (slice_bytes_numer/slice_bytes_denom may not be integral) across
// sliceCount slices of 8*floor(numer/denom) bits each plus any surplus
// byte(s). This is the open question §9 flags as something implementers
// must cross-check against the standard; this engine resolves it by giving
// slice i floor((i+1)*numer/denom) - floor(i*numer/denom) bytes, matching
// the reference decoder's cumulative allocation. A slice gets the extra
// byte whenever floor((i+1)*numer/denom) > floor(i*numer/denom) +
// floor(numer/denom), i.e. where the running total crosses the next whole
// byte, so the surplus lands at the end of each cycle rather than on the
// first slices (numer=10, denom=3 over 3 slices gives 3, 3, 4 bytes).
func LowDelaySliceBits(numer, denom, sliceCount int) []int {
	out := make([]int, sliceCount)
	prevTotal := 0
	for i := 0; i < sliceCount; i++ {
		total := (i + 1) * numer / denom
		out[i] = (total - prevTotal) * 8
		prevTotal = total
	}
	return out
}
