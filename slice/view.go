package slice

import "fmt"

// Picture groups the per-component Arrays that make up one VC-2 picture:
// keys "Y", "C1", "C2" for the high-quality variant or "Y", "C" for
// low-delay.
type Picture struct {
	Components map[string]*Array
}

// NewPicture wraps the given component arrays into a Picture.
func NewPicture(components map[string]*Array) *Picture {
	return &Picture{Components: components}
}

// View returns a borrowing view onto slice (sx,sy) across every component.
// The view is valid only while every component Array's generation counter
// stays at the value recorded here; call Valid before trusting stale views
// held across a Reshape.
func (p *Picture) View(sx, sy int) *View {
	gens := make(map[string]int, len(p.Components))
	for name, arr := range p.Components {
		gens[name] = arr.Generation()
	}
	return &View{picture: p, sx: sx, sy: sy, generations: gens}
}

// View borrows a single slice's fields across every component of a
// Picture. It does not own any coefficient data.
type View struct {
	picture     *Picture
	sx, sy      int
	generations map[string]int
}

// Valid reports whether every component Array this View was built from is
// still at the generation it had when the View was created.
func (v *View) Valid() bool {
	for name, gen := range v.generations {
		arr, ok := v.picture.Components[name]
		if !ok || arr.Generation() != gen {
			return false
		}
	}
	return true
}

func (v *View) component(name string) (*Array, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("slice: view is stale (array geometry changed since it was taken)")
	}
	arr, ok := v.picture.Components[name]
	if !ok {
		return nil, fmt.Errorf("slice: no component %q", name)
	}
	return arr, nil
}

// QIndex returns the quantiser index recorded for this slice in component.
// VC-2 records one qindex per slice, shared across components, but the
// view takes the component anyway so callers need not assume which one is
// authoritative.
func (v *View) QIndex(component string) (int, error) {
	arr, err := v.component(component)
	if err != nil {
		return 0, err
	}
	return arr.QIndex(v.sx, v.sy), nil
}

// Length returns the per-component length field for this slice.
func (v *View) Length(component string) (int, error) {
	arr, err := v.component(component)
	if err != nil {
		return 0, err
	}
	return arr.Length(v.sx, v.sy), nil
}

// Padding returns the padding bit pattern recorded for this slice's
// bounded block in component.
func (v *View) Padding(component string) ([]uint64, error) {
	arr, err := v.component(component)
	if err != nil {
		return nil, err
	}
	return arr.Padding(v.sx, v.sy), nil
}

// Component returns a ComponentView borrowing this slice's coefficients in
// the named component.
func (v *View) Component(component string) (*ComponentView, error) {
	arr, err := v.component(component)
	if err != nil {
		return nil, err
	}
	return &ComponentView{view: v, arr: arr, name: component}, nil
}

// ComponentView borrows one component's subband data for a single slice.
type ComponentView struct {
	view *View
	arr  *Array
	name string
}

// NumSubbands returns the number of subbands in this component.
func (cv *ComponentView) NumSubbands() int { return len(cv.arr.dims) }

// Subband returns a SubbandView for subband index within this slice.
func (cv *ComponentView) Subband(index int) (*SubbandView, error) {
	if !cv.view.Valid() {
		return nil, fmt.Errorf("slice: view is stale (array geometry changed since it was taken)")
	}
	if index < 0 || index >= len(cv.arr.dims) {
		return nil, fmt.Errorf("slice: subband index %d out of range [0,%d)", index, len(cv.arr.dims))
	}
	return &SubbandView{cv: cv, subband: index}, nil
}

// SubbandView borrows one subband's coefficients within a single slice.
type SubbandView struct {
	cv      *ComponentView
	subband int
}

// Dims returns the pixel dimensions of this subband's block within this
// slice (not the whole-picture subband dimensions).
func (sv *SubbandView) Dims() (width, height int, err error) {
	if !sv.cv.view.Valid() {
		return 0, 0, fmt.Errorf("slice: view is stale (array geometry changed since it was taken)")
	}
	ss, err := sv.cv.arr.layoutAt(sv.cv.view.sy*sv.cv.arr.slicesX+sv.cv.view.sx, sv.subband)
	if err != nil {
		return 0, 0, err
	}
	return ss.width, ss.height, nil
}

// At reads the coefficient at (x,y) within this subband's slice block.
func (sv *SubbandView) At(x, y int) (int32, error) {
	if !sv.cv.view.Valid() {
		return 0, fmt.Errorf("slice: view is stale (array geometry changed since it was taken)")
	}
	return sv.cv.arr.Coeff(sv.subband, sv.cv.view.sx, sv.cv.view.sy, x, y)
}

// Set writes the coefficient at (x,y) within this subband's slice block.
// Mutations through a view write straight into the owning Array's flat
// buffer; there is no separate notification step for a single coefficient
// write (only Reshape bumps the generation counter), since per-coefficient
// writes never change a slice's geometry.
func (sv *SubbandView) Set(x, y int, v int32) error {
	if !sv.cv.view.Valid() {
		return fmt.Errorf("slice: view is stale (array geometry changed since it was taken)")
	}
	return sv.cv.arr.SetCoeff(sv.subband, sv.cv.view.sx, sv.cv.view.sy, x, y, v)
}
