package primitive

import (
	"bytes"
	"testing"

	"github.com/bbc/vc2bitstream/bitio"
)

// Reference values from SMPTE ST 2042-1 Annex A.4.2's exp-Golomb table.
func TestUIntReferenceValues(t *testing.T) {
	tests := []struct {
		bits  []int
		value uint64
	}{
		{[]int{1}, 0},
		{[]int{0, 0, 1}, 1},
		{[]int{0, 1, 1}, 2},
		{[]int{0, 0, 0, 0, 1}, 3},
		{[]int{0, 1, 0, 1, 1}, 6},
	}
	for _, tt := range tests {
		w := bitio.NewWriter()
		for _, b := range tt.bits {
			w.WriteBit(b)
		}
		r := bitio.NewReader(w.Flush())
		got := UInt(r)
		if got.Value != tt.value {
			t.Errorf("UInt(%v) = %d, want %d", tt.bits, got.Value, tt.value)
		}
	}
}

func TestUIntWriteReadRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, 3, 6, 255, 1000, 1 << 20} {
		w := bitio.NewWriter()
		if _, err := WriteUInt(w, v); err != nil {
			t.Fatal(err)
		}
		r := bitio.NewReader(w.Flush())
		got := UInt(r)
		if got.Value != v {
			t.Errorf("round trip %d -> %d", v, got.Value)
		}
	}
}

func TestSIntRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 2, -2, 1000, -1000} {
		w := bitio.NewWriter()
		if _, err := WriteSInt(w, v); err != nil {
			t.Fatal(err)
		}
		r := bitio.NewReader(w.Flush())
		got := SInt(r)
		if got.Value != v {
			t.Errorf("round trip %d -> %d", v, got.Value)
		}
	}
}

func TestSIntZeroHasNoSignBit(t *testing.T) {
	w := bitio.NewWriter()
	WriteSInt(w, 0)
	got := w.Flush()
	// read_uint(0) is a single 1-bit; byte-align pads the rest with 0s by
	// Flush, so only bit 7 is set.
	if !bytes.Equal(got, []byte{0x80}) {
		t.Fatalf("Flush() = %x, want 80", got)
	}
}

func TestUIntPastEOFSynthesizesTerminator(t *testing.T) {
	r := bitio.NewReader(nil)
	got := UInt(r)
	if got.Value != 0 || got.PastEOFBits != 1 {
		t.Fatalf("UInt on empty reader = %+v, want value 0, 1 past-EOF bit", got)
	}
}
