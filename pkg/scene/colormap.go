package scene

// Vector modes shared by the color map types.
const (
	VectorModeMagnitude = 0
	VectorModeComponent = 1
	VectorModeRGBColors = 2
)

// Color spaces for transfer function interpolation.
const (
	ColorSpaceRGB = iota
	ColorSpaceHSV
	ColorSpaceLab
	ColorSpaceDiverging
)

// ScalarsToColors is the conceptual contract shared by the discrete lookup
// table and the continuous color transfer function: a scalar range, a
// vector mapping policy, and a global alpha. The two implementations have
// materially different property sets on the wire; this interface only
// covers what they share.
type ScalarsToColors interface {
	Object

	Range() [2]float64
	Alpha() float64
	VectorMode() int
	VectorComponent() int
	VectorSize() int
	IndexedLookup() bool
}

// LookupTable is a discrete color map over a scalar range.
type LookupTable struct {
	object

	numberOfColors  int
	scalarRange     [2]float64
	hueRange        [2]float64
	saturationRange [2]float64

	nanColor        [4]float64
	belowRangeColor [4]float64
	aboveRangeColor [4]float64
	useBelowRange   bool
	useAboveRange   bool

	alpha           float64
	vectorMode      int
	vectorComponent int
	vectorSize      int
	indexedLookup   bool
}

// NewLookupTable creates a 256-entry rainbow table over [0, 1].
func NewLookupTable() *LookupTable {
	return &LookupTable{
		object:          newObject(),
		numberOfColors:  256,
		scalarRange:     [2]float64{0, 1},
		hueRange:        [2]float64{0.66667, 0},
		saturationRange: [2]float64{1, 1},
		nanColor:        [4]float64{0.5, 0, 0, 1},
		belowRangeColor: [4]float64{0, 0, 0, 1},
		aboveRangeColor: [4]float64{1, 1, 1, 1},
		alpha:           1,
		vectorSize:      -1,
	}
}

// ClassName returns the lookup table's class tag.
func (l *LookupTable) ClassName() string { return "vtkLookupTable" }

// NumberOfColors returns the table resolution.
func (l *LookupTable) NumberOfColors() int { return l.numberOfColors }

// SetNumberOfColors sets the table resolution.
func (l *LookupTable) SetNumberOfColors(n int) { l.numberOfColors = n }

// Range returns the scalar mapping range.
func (l *LookupTable) Range() [2]float64 { return l.scalarRange }

// SetRange sets the scalar mapping range.
func (l *LookupTable) SetRange(lo, hi float64) { l.scalarRange = [2]float64{lo, hi} }

// HueRange returns the hue sweep.
func (l *LookupTable) HueRange() [2]float64 { return l.hueRange }

// SetHueRange sets the hue sweep.
func (l *LookupTable) SetHueRange(lo, hi float64) { l.hueRange = [2]float64{lo, hi} }

// SaturationRange returns the saturation sweep.
func (l *LookupTable) SaturationRange() [2]float64 { return l.saturationRange }

// SetSaturationRange sets the saturation sweep.
func (l *LookupTable) SetSaturationRange(lo, hi float64) {
	l.saturationRange = [2]float64{lo, hi}
}

// NanColor returns the RGBA color used for NaN scalars.
func (l *LookupTable) NanColor() [4]float64 { return l.nanColor }

// SetNanColor sets the RGBA color used for NaN scalars.
func (l *LookupTable) SetNanColor(c [4]float64) { l.nanColor = c }

// BelowRangeColor returns the RGBA color for scalars below the range.
func (l *LookupTable) BelowRangeColor() [4]float64 { return l.belowRangeColor }

// SetBelowRangeColor sets the below-range RGBA color.
func (l *LookupTable) SetBelowRangeColor(c [4]float64) { l.belowRangeColor = c }

// AboveRangeColor returns the RGBA color for scalars above the range.
func (l *LookupTable) AboveRangeColor() [4]float64 { return l.aboveRangeColor }

// SetAboveRangeColor sets the above-range RGBA color.
func (l *LookupTable) SetAboveRangeColor(c [4]float64) { l.aboveRangeColor = c }

// UseBelowRangeColor reports whether the below-range color is applied.
func (l *LookupTable) UseBelowRangeColor() bool { return l.useBelowRange }

// SetUseBelowRangeColor toggles the below-range color.
func (l *LookupTable) SetUseBelowRangeColor(v bool) { l.useBelowRange = v }

// UseAboveRangeColor reports whether the above-range color is applied.
func (l *LookupTable) UseAboveRangeColor() bool { return l.useAboveRange }

// SetUseAboveRangeColor toggles the above-range color.
func (l *LookupTable) SetUseAboveRangeColor(v bool) { l.useAboveRange = v }

// Alpha returns the global opacity multiplier.
func (l *LookupTable) Alpha() float64 { return l.alpha }

// SetAlpha sets the global opacity multiplier.
func (l *LookupTable) SetAlpha(v float64) { l.alpha = v }

// VectorMode returns how vector scalars are reduced to one value.
func (l *LookupTable) VectorMode() int { return l.vectorMode }

// SetVectorMode sets the vector reduction policy.
func (l *LookupTable) SetVectorMode(v int) { l.vectorMode = v }

// VectorComponent returns the component used in component mode.
func (l *LookupTable) VectorComponent() int { return l.vectorComponent }

// SetVectorComponent sets the component used in component mode.
func (l *LookupTable) SetVectorComponent(v int) { l.vectorComponent = v }

// VectorSize returns the vector size override (-1 for automatic).
func (l *LookupTable) VectorSize() int { return l.vectorSize }

// SetVectorSize sets the vector size override.
func (l *LookupTable) SetVectorSize(v int) { l.vectorSize = v }

// IndexedLookup reports whether scalars index the table directly.
func (l *LookupTable) IndexedLookup() bool { return l.indexedLookup }

// SetIndexedLookup toggles direct index lookup.
func (l *LookupTable) SetIndexedLookup(v bool) { l.indexedLookup = v }

var _ ScalarsToColors = (*LookupTable)(nil)

// ControlPoint is one node of a continuous color transfer function:
// a scalar position, an RGB color, and the midpoint/sharpness pair
// shaping the interpolation toward the next node.
type ControlPoint struct {
	X         float64
	R, G, B   float64
	Midpoint  float64
	Sharpness float64
}

// ColorTransferFunction is a continuous color map defined by an ordered
// list of control points.
type ColorTransferFunction struct {
	object

	points []ControlPoint

	clamping              bool
	colorSpace            int
	hsvWrap               bool
	allowDuplicateScalars bool

	alpha           float64
	vectorMode      int
	vectorComponent int
	vectorSize      int
	indexedLookup   bool
}

// NewColorTransferFunction creates an empty transfer function with
// clamping enabled.
func NewColorTransferFunction() *ColorTransferFunction {
	return &ColorTransferFunction{
		object:     newObject(),
		clamping:   true,
		hsvWrap:    true,
		alpha:      1,
		vectorSize: -1,
	}
}

// ClassName returns the transfer function's class tag.
func (f *ColorTransferFunction) ClassName() string { return "vtkColorTransferFunction" }

// AddRGBPoint appends a control point with default midpoint/sharpness.
func (f *ColorTransferFunction) AddRGBPoint(x, r, g, b float64) {
	f.AddRGBPointWithShape(x, r, g, b, 0.5, 0)
}

// AddRGBPointWithShape appends a control point with explicit
// midpoint/sharpness shaping.
func (f *ColorTransferFunction) AddRGBPointWithShape(x, r, g, b, midpoint, sharpness float64) {
	f.points = append(f.points, ControlPoint{X: x, R: r, G: g, B: b, Midpoint: midpoint, Sharpness: sharpness})
}

// Size returns the control point count.
func (f *ColorTransferFunction) Size() int { return len(f.points) }

// NodeValue returns the i-th control point as the fixed 6-tuple
// [x, r, g, b, midpoint, sharpness].
func (f *ColorTransferFunction) NodeValue(i int) [6]float64 {
	if i < 0 || i >= len(f.points) {
		return [6]float64{}
	}
	p := f.points[i]
	return [6]float64{p.X, p.R, p.G, p.B, p.Midpoint, p.Sharpness}
}

// Range returns the scalar span covered by the control points.
func (f *ColorTransferFunction) Range() [2]float64 {
	if len(f.points) == 0 {
		return [2]float64{}
	}
	return [2]float64{f.points[0].X, f.points[len(f.points)-1].X}
}

// Clamping reports whether out-of-range scalars clamp to the end colors.
func (f *ColorTransferFunction) Clamping() bool { return f.clamping }

// SetClamping toggles out-of-range clamping.
func (f *ColorTransferFunction) SetClamping(v bool) { f.clamping = v }

// ColorSpace returns the interpolation color space.
func (f *ColorTransferFunction) ColorSpace() int { return f.colorSpace }

// SetColorSpace sets the interpolation color space.
func (f *ColorTransferFunction) SetColorSpace(v int) { f.colorSpace = v }

// HSVWrap reports whether HSV interpolation wraps around the hue circle.
func (f *ColorTransferFunction) HSVWrap() bool { return f.hsvWrap }

// SetHSVWrap toggles hue wrapping.
func (f *ColorTransferFunction) SetHSVWrap(v bool) { f.hsvWrap = v }

// AllowDuplicateScalars reports whether two control points may share a
// scalar position.
func (f *ColorTransferFunction) AllowDuplicateScalars() bool { return f.allowDuplicateScalars }

// SetAllowDuplicateScalars toggles duplicate scalar positions.
func (f *ColorTransferFunction) SetAllowDuplicateScalars(v bool) { f.allowDuplicateScalars = v }

// Alpha returns the global opacity multiplier.
func (f *ColorTransferFunction) Alpha() float64 { return f.alpha }

// SetAlpha sets the global opacity multiplier.
func (f *ColorTransferFunction) SetAlpha(v float64) { f.alpha = v }

// VectorMode returns how vector scalars are reduced to one value.
func (f *ColorTransferFunction) VectorMode() int { return f.vectorMode }

// SetVectorMode sets the vector reduction policy.
func (f *ColorTransferFunction) SetVectorMode(v int) { f.vectorMode = v }

// VectorComponent returns the component used in component mode.
func (f *ColorTransferFunction) VectorComponent() int { return f.vectorComponent }

// SetVectorComponent sets the component used in component mode.
func (f *ColorTransferFunction) SetVectorComponent(v int) { f.vectorComponent = v }

// VectorSize returns the vector size override (-1 for automatic).
func (f *ColorTransferFunction) VectorSize() int { return f.vectorSize }

// SetVectorSize sets the vector size override.
func (f *ColorTransferFunction) SetVectorSize(v int) { f.vectorSize = v }

// IndexedLookup reports whether scalars index the control points directly.
func (f *ColorTransferFunction) IndexedLookup() bool { return f.indexedLookup }

// SetIndexedLookup toggles direct index lookup.
func (f *ColorTransferFunction) SetIndexedLookup(v bool) { f.indexedLookup = v }

var _ ScalarsToColors = (*ColorTransferFunction)(nil)
