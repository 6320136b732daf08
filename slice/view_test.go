package slice

import "testing"

func TestViewReadsAcrossComponents(t *testing.T) {
	yDims := ComponentDimensions(32, 32, 1, 0)
	cDims := ComponentDimensions(16, 16, 1, 0)
	y := NewArray(yDims, 2, 2)
	c1 := NewArray(cDims, 2, 2)
	y.SetQIndex(0, 0, 12)
	y.SetLength(0, 0, 4)

	pic := NewPicture(map[string]*Array{"Y": y, "C1": c1})
	v := pic.View(0, 0)

	qi, err := v.QIndex("Y")
	if err != nil {
		t.Fatal(err)
	}
	if qi != 12 {
		t.Fatalf("QIndex = %d, want 12", qi)
	}

	cv, err := v.Component("Y")
	if err != nil {
		t.Fatal(err)
	}
	sv, err := cv.Subband(0)
	if err != nil {
		t.Fatal(err)
	}
	if err := sv.Set(0, 0, 99); err != nil {
		t.Fatal(err)
	}
	got, err := sv.At(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != 99 {
		t.Fatalf("At(0,0) = %d, want 99", got)
	}
}

func TestViewInvalidatedByReshape(t *testing.T) {
	dims := ComponentDimensions(16, 16, 1, 0)
	y := NewArray(dims, 1, 1)
	pic := NewPicture(map[string]*Array{"Y": y})
	v := pic.View(0, 0)

	if !v.Valid() {
		t.Fatal("freshly taken view should be valid")
	}
	y.Reshape(dims, 2, 2)
	if v.Valid() {
		t.Fatal("view should be invalid after Reshape changed geometry")
	}
	if _, err := v.QIndex("Y"); err == nil {
		t.Fatal("expected error reading through a stale view")
	}
}

func TestCoalesceScopeAppliesOnce(t *testing.T) {
	dims := ComponentDimensions(16, 16, 1, 0)
	y := NewArray(dims, 1, 1)
	genBefore := y.Generation()

	cs := y.BeginCoalesce()
	cs.SetSlices(2, 2)
	cs.SetDims(ComponentDimensions(32, 32, 1, 0))
	cs.Close()

	if y.Generation() != genBefore+1 {
		t.Fatalf("Generation = %d, want %d (single Reshape)", y.Generation(), genBefore+1)
	}
	if y.SlicesX() != 2 || y.SlicesY() != 2 {
		t.Fatalf("slice grid = (%d,%d), want (2,2)", y.SlicesX(), y.SlicesY())
	}
}

func TestCoalesceScopeNoopWhenUnchanged(t *testing.T) {
	dims := ComponentDimensions(16, 16, 1, 0)
	y := NewArray(dims, 1, 1)
	genBefore := y.Generation()

	cs := y.BeginCoalesce()
	cs.Close()

	if y.Generation() != genBefore {
		t.Fatalf("Generation = %d, want unchanged %d", y.Generation(), genBefore)
	}
}
