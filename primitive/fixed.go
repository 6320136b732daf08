package primitive

import (
	"fmt"

	"github.com/bbc/vc2bitstream/bitio"
)

// NBits reads an n-bit unsigned integer, most-significant bit first
// (SMPTE ST 2042-1 A.3.2, "read_nbits").
func NBits(r *bitio.Reader, n int) Result[uint64] {
	var v uint64
	var pastEOF int
	for i := 0; i < n; i++ {
		bit, synthetic := r.ReadBit()
		v = (v << 1) | uint64(bit)
		if synthetic {
			pastEOF++
		}
	}
	return Result[uint64]{Value: v, PastEOFBits: pastEOF}
}

// WriteNBits writes the low n bits of value, most-significant bit first.
// It returns ErrOutOfRange if value does not fit in n bits.
func WriteNBits(w *bitio.Writer, n int, value uint64) (bitsPastEOB int, err error) {
	if n < 64 && value>>uint(n) != 0 {
		return 0, fmt.Errorf("%w: %d does not fit in %d bits", ErrOutOfRange, value, n)
	}
	for i := n - 1; i >= 0; i-- {
		emitted, err := w.WriteBit(int((value >> uint(i)) & 1))
		if err != nil {
			return bitsPastEOB, err
		}
		if emitted == 0 {
			bitsPastEOB++
		}
	}
	return bitsPastEOB, nil
}

// NBytes reads n bytes as a sequence of NBits(r, 8) fields (A.3.3,
// "read_nbytes" as used by VC-2 parse_info and padding data units).
func NBytes(r *bitio.Reader, n int) Result[[]byte] {
	out := make([]byte, n)
	var pastEOF int
	for i := 0; i < n; i++ {
		b := NBits(r, 8)
		out[i] = byte(b.Value)
		pastEOF += b.PastEOFBits
	}
	return Result[[]byte]{Value: out, PastEOFBits: pastEOF}
}

// WriteNBytes writes value as a sequence of 8-bit fields.
func WriteNBytes(w *bitio.Writer, value []byte) (bitsPastEOB int, err error) {
	for _, b := range value {
		n, err := WriteNBits(w, 8, uint64(b))
		bitsPastEOB += n
		if err != nil {
			return bitsPastEOB, err
		}
	}
	return bitsPastEOB, nil
}

// Bool reads a single bit as a boolean (A.3.1, "read_bool"): 1 is true.
func Bool(r *bitio.Reader) Result[bool] {
	bit, synthetic := r.ReadBit()
	pastEOF := 0
	if synthetic {
		pastEOF = 1
	}
	return Result[bool]{Value: bit != 0, PastEOFBits: pastEOF}
}

// WriteBool writes a single bit: 1 for true, 0 for false.
func WriteBool(w *bitio.Writer, value bool) (bitsPastEOB int, err error) {
	v := 0
	if value {
		v = 1
	}
	emitted, err := w.WriteBit(v)
	if err != nil {
		return 0, err
	}
	if emitted == 0 {
		return 1, nil
	}
	return 0, nil
}

// ByteAlign reads and discards bits until the reader sits at a byte
// boundary, as required before parse_info and between top-level data units
// (A.3.4, "byte_align"). The discarded bits' pattern is retained in
// AlignResult.Value (MSB-first) so a caller that needs byte-exact round
// trips can stash it in a padding field, even though VC-2 encoders normally
// write 0-bits here (see WriteByteAlign).
func ByteAlign(r *bitio.Reader) AlignResult {
	var value uint64
	var n, pastEOF int
	for {
		_, bitIndex := r.Tell()
		if bitIndex == 7 {
			break
		}
		bit, synthetic := r.ReadBit()
		if synthetic {
			pastEOF++
		}
		value = (value << 1) | uint64(bit)
		n++
	}
	return AlignResult{Value: value, BitsSkipped: n, PastEOFBits: pastEOF}
}

// AlignResult is returned by ByteAlign.
type AlignResult struct {
	Value       uint64
	BitsSkipped int
	PastEOFBits int
}

// WriteByteAlign pads the writer to the next byte boundary with the low
// bits of pattern, most-significant first. VC-2 encoders pad byte_align
// with 0-bits (A.3.4; the original source's ByteAlign.write writes its
// default-zero value), so callers that don't care about a specific pad
// pattern should pass 0. A caller replaying the AlignResult.Value a prior
// ByteAlign read retained reproduces that stream's padding exactly, which
// is what keeps write a byte-exact inverse of read.
func WriteByteAlign(w *bitio.Writer, pattern uint64) (bitsWritten, bitsPastEOB int, err error) {
	_, bitIndex := w.Tell()
	n := 0
	if bitIndex != 7 {
		n = bitIndex + 1
	}
	for i := n - 1; i >= 0; i-- {
		emitted, err := w.WriteBit(int((pattern >> uint(i)) & 1))
		if err != nil {
			return bitsWritten, bitsPastEOB, err
		}
		if emitted == 0 {
			bitsPastEOB++
		}
		bitsWritten++
	}
	return bitsWritten, bitsPastEOB, nil
}
