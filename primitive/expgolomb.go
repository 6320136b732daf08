package primitive

import (
	"github.com/bbc/vc2bitstream/bitio"
)

// UInt reads an Exp-Golomb coded non-negative integer (A.4.2, "read_uint")
// in its interleaved form: each 0-bit is followed by one data bit, and a
// 1-bit ends the code. The data bits, in order, after an implicit leading
// 1 form value+1 in binary.
func UInt(r *bitio.Reader) Result[uint64] {
	v := uint64(1)
	pastEOF := 0
	for {
		bit, synthetic := r.ReadBit()
		if synthetic {
			pastEOF++
		}
		if bit == 1 {
			break
		}
		v <<= 1
		bit, synthetic = r.ReadBit()
		if synthetic {
			pastEOF++
		}
		v |= uint64(bit)
	}
	return Result[uint64]{Value: v - 1, PastEOFBits: pastEOF}
}

// WriteUInt writes value using the same Exp-Golomb code read by UInt.
func WriteUInt(w *bitio.Writer, value uint64) (bitsPastEOB int, err error) {
	x := value + 1
	nbits := 0
	for t := x; t > 1; t >>= 1 {
		nbits++
	}
	for i := nbits - 1; i >= 0; i-- {
		emitted, err := w.WriteBit(0)
		if err != nil {
			return bitsPastEOB, err
		}
		if emitted == 0 {
			bitsPastEOB++
		}
		emitted, err = w.WriteBit(int((x >> uint(i)) & 1))
		if err != nil {
			return bitsPastEOB, err
		}
		if emitted == 0 {
			bitsPastEOB++
		}
	}
	emitted, err := w.WriteBit(1)
	if err != nil {
		return bitsPastEOB, err
	}
	if emitted == 0 {
		bitsPastEOB++
	}
	return bitsPastEOB, nil
}

// SInt reads a signed Exp-Golomb coded integer (A.4.3, "read_sint"): a
// read_uint magnitude followed by a sign bit (1 = negative) when the
// magnitude is non-zero.
func SInt(r *bitio.Reader) Result[int64] {
	mag := UInt(r)
	pastEOF := mag.PastEOFBits
	if mag.Value == 0 {
		return Result[int64]{Value: 0, PastEOFBits: pastEOF}
	}
	bit, synthetic := r.ReadBit()
	if synthetic {
		pastEOF++
	}
	v := int64(mag.Value)
	if bit == 1 {
		v = -v
	}
	return Result[int64]{Value: v, PastEOFBits: pastEOF}
}

// WriteSInt writes value using the same code read by SInt. The caller need
// not worry about signed overflow: the magnitude written is value's
// absolute value, which must fit in a uint64.
func WriteSInt(w *bitio.Writer, value int64) (bitsPastEOB int, err error) {
	mag := value
	negative := false
	if mag < 0 {
		negative = true
		mag = -mag
	}
	n, err := WriteUInt(w, uint64(mag))
	bitsPastEOB += n
	if err != nil {
		return bitsPastEOB, err
	}
	if mag == 0 {
		return bitsPastEOB, nil
	}
	signBit := 0
	if negative {
		signBit = 1
	}
	emitted, err := w.WriteBit(signBit)
	if err != nil {
		return bitsPastEOB, err
	}
	if emitted == 0 {
		bitsPastEOB++
	}
	return bitsPastEOB, nil
}
