package scene

// Array access modes: whether the mapper addresses its color array by index
// or by name.
const (
	ArrayAccessByID   = 0
	ArrayAccessByName = 1
)

// Scalar modes controlling which attribute data colors the surface.
const (
	ScalarModeDefault        = 0
	ScalarModeUsePointData   = 1
	ScalarModeUseCellData    = 2
	ScalarModePointFieldData = 3
	ScalarModeCellFieldData  = 4
)

// Mapper turns a geometry dataset into drawable primitives and optionally
// colors it through a lookup table. Both the input dataset and the lookup
// table are structurally required children for serialization.
type Mapper struct {
	object

	input       DataObject
	lookupTable ScalarsToColors

	scalarRange               [2]float64
	useLookupTableScalarRange bool
	scalarVisibility          bool

	arrayAccessMode int
	arrayName       string
	arrayID         int

	colorMode                       int
	scalarMode                      int
	interpolateScalarsBeforeMapping bool
}

// NewMapper creates a mapper with scalar coloring enabled and a default
// scalar range of [0, 1].
func NewMapper() *Mapper {
	return &Mapper{
		object:           newObject(),
		scalarRange:      [2]float64{0, 1},
		scalarVisibility: true,
		arrayAccessMode:  ArrayAccessByID,
	}
}

// ClassName returns the mapper's class tag.
func (m *Mapper) ClassName() string { return "vtkMapper" }

// InputDataObject returns the input dataset, or nil.
func (m *Mapper) InputDataObject() DataObject { return m.input }

// SetInputData assigns the input dataset.
func (m *Mapper) SetInputData(d DataObject) { m.input = d }

// LookupTable returns the color map, or nil.
func (m *Mapper) LookupTable() ScalarsToColors { return m.lookupTable }

// SetLookupTable assigns the color map.
func (m *Mapper) SetLookupTable(lut ScalarsToColors) { m.lookupTable = lut }

// ScalarRange returns the scalar mapping range.
func (m *Mapper) ScalarRange() [2]float64 { return m.scalarRange }

// SetScalarRange sets the scalar mapping range.
func (m *Mapper) SetScalarRange(lo, hi float64) { m.scalarRange = [2]float64{lo, hi} }

// UseLookupTableScalarRange reports whether the lookup table's own range
// wins over the mapper's.
func (m *Mapper) UseLookupTableScalarRange() bool { return m.useLookupTableScalarRange }

// SetUseLookupTableScalarRange sets the range precedence flag.
func (m *Mapper) SetUseLookupTableScalarRange(v bool) { m.useLookupTableScalarRange = v }

// ScalarVisibility reports whether scalar coloring is applied.
func (m *Mapper) ScalarVisibility() bool { return m.scalarVisibility }

// SetScalarVisibility toggles scalar coloring.
func (m *Mapper) SetScalarVisibility(v bool) { m.scalarVisibility = v }

// ArrayAccessMode reports how the color array is addressed (by id or name).
func (m *Mapper) ArrayAccessMode() int { return m.arrayAccessMode }

// ArrayName returns the color array name used when access mode is by name.
func (m *Mapper) ArrayName() string { return m.arrayName }

// SetColorByArrayName selects the color array by name.
func (m *Mapper) SetColorByArrayName(name string) {
	m.arrayName = name
	m.arrayAccessMode = ArrayAccessByName
}

// ArrayID returns the color array index used when access mode is by id.
func (m *Mapper) ArrayID() int { return m.arrayID }

// SetColorByArrayID selects the color array by index.
func (m *Mapper) SetColorByArrayID(id int) {
	m.arrayID = id
	m.arrayAccessMode = ArrayAccessByID
}

// ColorMode returns the color mapping mode.
func (m *Mapper) ColorMode() int { return m.colorMode }

// SetColorMode sets the color mapping mode.
func (m *Mapper) SetColorMode(v int) { m.colorMode = v }

// ScalarMode returns which attribute data drives coloring.
func (m *Mapper) ScalarMode() int { return m.scalarMode }

// SetScalarMode sets which attribute data drives coloring.
func (m *Mapper) SetScalarMode(v int) { m.scalarMode = v }

// InterpolateScalarsBeforeMapping reports the interpolation ordering flag.
func (m *Mapper) InterpolateScalarsBeforeMapping() bool {
	return m.interpolateScalarsBeforeMapping
}

// SetInterpolateScalarsBeforeMapping sets the interpolation ordering flag.
func (m *Mapper) SetInterpolateScalarsBeforeMapping(v bool) {
	m.interpolateScalarsBeforeMapping = v
}

var (
	_ InputProvider       = (*Mapper)(nil)
	_ LookupTableProvider = (*Mapper)(nil)
)
