package bitio

import "testing"

func TestReaderReadsMSBFirst(t *testing.T) {
	r := NewReader([]byte{0xA5}) // 1010_0101
	want := []int{1, 0, 1, 0, 0, 1, 0, 1}
	for i, w := range want {
		bit, pastEOF := r.ReadBit()
		if pastEOF {
			t.Fatalf("bit %d: unexpected past-EOF", i)
		}
		if bit != w {
			t.Fatalf("bit %d = %d, want %d", i, bit, w)
		}
	}
}

func TestReaderTellInitialPosition(t *testing.T) {
	r := NewReader([]byte{0, 0})
	byteIndex, bitIndex := r.Tell()
	if byteIndex != 0 || bitIndex != 7 {
		t.Fatalf("initial Tell() = (%d,%d), want (0,7)", byteIndex, bitIndex)
	}
}

func TestReaderPastEOFSynthesizesOnes(t *testing.T) {
	r := NewReader(nil)
	for i := 0; i < 12; i++ {
		bit, pastEOF := r.ReadBit()
		if bit != 1 || !pastEOF {
			t.Fatalf("bit %d = (%d,%v), want (1,true)", i, bit, pastEOF)
		}
	}
	if r.PastEOFBits() != 12 {
		t.Fatalf("PastEOFBits() = %d, want 12", r.PastEOFBits())
	}
}

func TestReaderBoundedBlockExactFitLeavesNoPadding(t *testing.T) {
	// Scenario 5 from the spec: 0xA0 in a 4-bit bounded block, nbits(4) then
	// bounded_block_end; reader ends at (0,3) with pad 0.
	r := NewReader([]byte{0xA0})
	if err := r.BoundedBlockBegin(4); err != nil {
		t.Fatal(err)
	}
	var v int
	for i := 0; i < 4; i++ {
		bit, _ := r.ReadBit()
		v = (v << 1) | bit
	}
	if v != 0xA {
		t.Fatalf("v = %#x, want 0xa", v)
	}
	pad, unused, pastEOB, err := r.BoundedBlockEnd()
	if err != nil {
		t.Fatal(err)
	}
	if unused != 0 || pastEOB != 0 || pad != 0 {
		t.Fatalf("unused=%d pastEOB=%d pad=%d, want 0,0,0", unused, pastEOB, pad)
	}
	byteIndex, bitIndex := r.Tell()
	if byteIndex != 0 || bitIndex != 3 {
		t.Fatalf("Tell() after block = (%d,%d), want (0,3)", byteIndex, bitIndex)
	}
}

func TestReaderBoundedBlockOverrunSynthesizesOnes(t *testing.T) {
	r := NewReader([]byte{0xFF})
	if err := r.BoundedBlockBegin(4); err != nil {
		t.Fatal(err)
	}
	var v int
	for i := 0; i < 8; i++ {
		bit, _ := r.ReadBit()
		v = (v << 1) | bit
	}
	if v != 0xFF {
		t.Fatalf("v = %#x, want 0xff (4 real bits + 4 synthetic 1s)", v)
	}
	_, unused, pastEOB, err := r.BoundedBlockEnd()
	if err != nil {
		t.Fatal(err)
	}
	if unused != 0 {
		t.Fatalf("unused = %d, want 0 (block overran)", unused)
	}
	if pastEOB != 4 {
		t.Fatalf("pastEOB = %d, want 4", pastEOB)
	}
}

func TestReaderNestedBoundedBlockRejected(t *testing.T) {
	r := NewReader([]byte{0, 0})
	if err := r.BoundedBlockBegin(8); err != nil {
		t.Fatal(err)
	}
	if err := r.BoundedBlockBegin(4); err != ErrNestedBoundedBlock {
		t.Fatalf("err = %v, want ErrNestedBoundedBlock", err)
	}
}

func TestReaderSeekRejectedOutsideBoundedBlock(t *testing.T) {
	r := NewReader([]byte{0, 0, 0})
	if err := r.BoundedBlockBegin(8); err != nil {
		t.Fatal(err)
	}
	if err := r.Seek(2, 7); err != ErrSeekInBoundedBlock {
		t.Fatalf("err = %v, want ErrSeekInBoundedBlock", err)
	}
	if err := r.Seek(0, 3); err != nil {
		t.Fatalf("seek within block: %v", err)
	}
}
