package primitive

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bbc/vc2bitstream/bitio"
)

func TestNBitsReadsMSBFirst(t *testing.T) {
	r := bitio.NewReader([]byte{0xA5})
	got := NBits(r, 8)
	if got.Value != 0xA5 || got.PastEOFBits != 0 {
		t.Fatalf("NBits = %+v, want {0xa5 0}", got)
	}
}

func TestNBitsPastEOFTallied(t *testing.T) {
	r := bitio.NewReader(nil)
	got := NBits(r, 8)
	if got.Value != 0xFF || got.PastEOFBits != 8 {
		t.Fatalf("NBits = %+v, want {0xff 8}", got)
	}
}

func TestWriteNBitsRoundTrip(t *testing.T) {
	w := bitio.NewWriter()
	if _, err := WriteNBits(w, 12, 0xABC); err != nil {
		t.Fatal(err)
	}
	if _, _, err := WriteByteAlign(w, 0); err != nil {
		t.Fatal(err)
	}
	got := w.Flush()
	r := bitio.NewReader(got)
	v := NBits(r, 12)
	if v.Value != 0xABC {
		t.Fatalf("round trip = %#x, want 0xabc", v.Value)
	}
}

func TestWriteNBitsOutOfRange(t *testing.T) {
	w := bitio.NewWriter()
	if _, err := WriteNBits(w, 4, 16); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
}

func TestNBytesReadsSequentialBytes(t *testing.T) {
	r := bitio.NewReader([]byte{0x01, 0x02, 0x03})
	got := NBytes(r, 3)
	if !bytes.Equal(got.Value, []byte{1, 2, 3}) {
		t.Fatalf("NBytes = %v, want [1 2 3]", got.Value)
	}
}

func TestBoolReadsSingleBit(t *testing.T) {
	r := bitio.NewReader([]byte{0x80})
	got := Bool(r)
	if !got.Value {
		t.Fatalf("Bool = %+v, want true", got)
	}
	got2 := Bool(r)
	if got2.Value {
		t.Fatalf("second Bool = %+v, want false", got2)
	}
}

func TestByteAlignSkipsToBoundary(t *testing.T) {
	r := bitio.NewReader([]byte{0xFF, 0x00})
	NBits(r, 3)
	aligned := ByteAlign(r)
	if aligned.BitsSkipped != 5 {
		t.Fatalf("ByteAlign skipped %d bits, want 5", aligned.BitsSkipped)
	}
	if aligned.Value != 0x1F {
		t.Fatalf("ByteAlign pattern = %#x, want 0x1f (remaining 1-bits of 0xff)", aligned.Value)
	}
	byteIndex, bitIndex := r.Tell()
	if byteIndex != 1 || bitIndex != 7 {
		t.Fatalf("Tell() after align = (%d,%d), want (1,7)", byteIndex, bitIndex)
	}
}

func TestWriteByteAlignPadsWithZerosByDefault(t *testing.T) {
	w := bitio.NewWriter()
	WriteNBits(w, 3, 0x5)
	WriteByteAlign(w, 0)
	got := w.Flush()
	// 101 then five 0-bits: 1010_0000
	if !bytes.Equal(got, []byte{0xA0}) {
		t.Fatalf("Flush() = %x, want a0", got)
	}
}

func TestWriteByteAlignReproducesRetainedPattern(t *testing.T) {
	w := bitio.NewWriter()
	WriteNBits(w, 3, 0x5)
	WriteByteAlign(w, 0x1F)
	got := w.Flush()
	// 101 then the retained pattern's low five bits, all 1: 1011_1111
	if !bytes.Equal(got, []byte{0xBF}) {
		t.Fatalf("Flush() = %x, want bf", got)
	}
}

func TestByteAlignWriteRoundTripsReadPattern(t *testing.T) {
	r := bitio.NewReader([]byte{0xFF, 0x00})
	NBits(r, 3)
	aligned := ByteAlign(r)

	w := bitio.NewWriter()
	WriteNBits(w, 3, 0x7)
	if _, _, err := WriteByteAlign(w, aligned.Value); err != nil {
		t.Fatal(err)
	}
	got := w.Flush()
	if !bytes.Equal(got, []byte{0xFF}) {
		t.Fatalf("Flush() = %x, want ff (reproduces the original byte exactly)", got)
	}
}
