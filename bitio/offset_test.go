package bitio

import "testing"

func TestBitOffsetRoundTrip(t *testing.T) {
	for byteIndex := 0; byteIndex < 4; byteIndex++ {
		for bitIndex := 0; bitIndex < 8; bitIndex++ {
			flat := ToBitOffset(byteIndex, bitIndex)
			gotByte, gotBit := FromBitOffset(flat)
			if gotByte != byteIndex || gotBit != bitIndex {
				t.Fatalf("FromBitOffset(ToBitOffset(%d,%d)) = (%d,%d)", byteIndex, bitIndex, gotByte, gotBit)
			}
		}
	}
}

func TestToBitOffsetFormula(t *testing.T) {
	tests := []struct {
		byteIndex, bitIndex, want int
	}{
		{0, 7, 0},
		{0, 0, 7},
		{1, 7, 8},
		{2, 3, 20},
	}
	for _, tt := range tests {
		if got := ToBitOffset(tt.byteIndex, tt.bitIndex); got != tt.want {
			t.Errorf("ToBitOffset(%d,%d) = %d, want %d", tt.byteIndex, tt.bitIndex, got, tt.want)
		}
	}
}
