package scene

import (
	"encoding/binary"
	"math"
)

// DataArray is a typed binary data buffer: the raw payload unit referenced
// from node records by content hash.
//
// The array owns its bytes and a modification counter that is bumped on
// every mutation. The content cache observes arrays without owning them;
// explicit reference counting (Retain/Release) tells the cache when it
// holds the sole remaining reference and the entry is eligible for
// eviction. A freshly constructed array has a reference count of 1, held
// by its creator.
type DataArray struct {
	name           string
	dtype          DataType
	components     int
	componentNames []string
	data           []byte
	mtime          uint64
	refs           int
}

// NewDataArray creates an empty array with the given element type and
// component count. Component counts below 1 are treated as 1.
func NewDataArray(name string, dtype DataType, components int) *DataArray {
	if components < 1 {
		components = 1
	}
	return &DataArray{
		name:       name,
		dtype:      dtype,
		components: components,
		mtime:      1,
		refs:       1,
	}
}

// NewFloat32Array creates a Float32 array from values.
func NewFloat32Array(name string, components int, values []float32) *DataArray {
	a := NewDataArray(name, Float32, components)
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	a.data = buf
	return a
}

// NewFloat64Array creates a Float64 array from values.
func NewFloat64Array(name string, components int, values []float64) *DataArray {
	a := NewDataArray(name, Float64, components)
	buf := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}
	a.data = buf
	return a
}

// NewIdTypeArray creates a single-component wide-index array, typically
// holding cell connectivity.
func NewIdTypeArray(name string, values []int64) *DataArray {
	a := NewDataArray(name, IdType, 1)
	buf := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[8*i:], uint64(v))
	}
	a.data = buf
	return a
}

// NewUint8Array creates a Uint8 array from values.
func NewUint8Array(name string, components int, values []uint8) *DataArray {
	a := NewDataArray(name, Uint8, components)
	a.data = append([]byte(nil), values...)
	return a
}

// Name returns the array name, which may be empty.
func (a *DataArray) Name() string { return a.name }

// SetName renames the array and bumps the modification counter.
func (a *DataArray) SetName(name string) {
	a.name = name
	a.Modified()
}

// DataType returns the element type.
func (a *DataArray) DataType() DataType { return a.dtype }

// NumberOfComponents returns the per-tuple component count.
func (a *DataArray) NumberOfComponents() int { return a.components }

// NumberOfTuples returns the tuple count.
func (a *DataArray) NumberOfTuples() int {
	w := a.dtype.Width() * a.components
	if w == 0 {
		return 0
	}
	return len(a.data) / w
}

// Size returns the total element count (components times tuples).
func (a *DataArray) Size() int {
	return a.components * a.NumberOfTuples()
}

// Bytes returns the live backing buffer. Mutating it directly bypasses the
// modification counter; callers that do must call Modified themselves.
func (a *DataArray) Bytes() []byte { return a.data }

// MTime returns the current modification counter value.
func (a *DataArray) MTime() uint64 { return a.mtime }

// Modified bumps the modification counter.
func (a *DataArray) Modified() { a.mtime++ }

// Retain increments the shared-ownership count and returns the array.
func (a *DataArray) Retain() *DataArray {
	a.refs++
	return a
}

// Release decrements the shared-ownership count.
func (a *DataArray) Release() {
	if a.refs > 0 {
		a.refs--
	}
}

// RefCount returns the current shared-ownership count.
func (a *DataArray) RefCount() int { return a.refs }

// SetComponentName names the i-th component, growing the name table as
// needed.
func (a *DataArray) SetComponentName(i int, name string) {
	if i < 0 {
		return
	}
	for len(a.componentNames) <= i {
		a.componentNames = append(a.componentNames, "")
	}
	a.componentNames[i] = name
}

// ComponentName returns the name of the i-th component. The combined
// (magnitude) component -1 and unnamed components return "".
func (a *DataArray) ComponentName(i int) string {
	if i < 0 || i >= len(a.componentNames) {
		return ""
	}
	return a.componentNames[i]
}

// Value returns element i as a float64, independent of the element type.
func (a *DataArray) Value(i int) float64 {
	w := a.dtype.Width()
	off := i * w
	if off < 0 || off+w > len(a.data) {
		return 0
	}
	switch a.dtype {
	case Int8:
		return float64(int8(a.data[off]))
	case Uint8:
		return float64(a.data[off])
	case Int16:
		return float64(int16(binary.LittleEndian.Uint16(a.data[off:])))
	case Uint16:
		return float64(binary.LittleEndian.Uint16(a.data[off:]))
	case Int32:
		return float64(int32(binary.LittleEndian.Uint32(a.data[off:])))
	case Uint32:
		return float64(binary.LittleEndian.Uint32(a.data[off:]))
	case Int64, IdType:
		return float64(int64(binary.LittleEndian.Uint64(a.data[off:])))
	case Uint64:
		return float64(binary.LittleEndian.Uint64(a.data[off:]))
	case Float32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(a.data[off:])))
	case Float64:
		return math.Float64frombits(binary.LittleEndian.Uint64(a.data[off:]))
	}
	return 0
}

// Int64Value returns element i of a wide-integer array without a float
// round trip. Only meaningful for Int64, Uint64, and IdType arrays.
func (a *DataArray) Int64Value(i int) int64 {
	off := i * 8
	if off < 0 || off+8 > len(a.data) {
		return 0
	}
	return int64(binary.LittleEndian.Uint64(a.data[off:]))
}

// SetValue overwrites element i and bumps the modification counter.
func (a *DataArray) SetValue(i int, v float64) {
	w := a.dtype.Width()
	off := i * w
	if off < 0 || off+w > len(a.data) {
		return
	}
	switch a.dtype {
	case Int8:
		a.data[off] = byte(int8(v))
	case Uint8:
		a.data[off] = byte(v)
	case Int16:
		binary.LittleEndian.PutUint16(a.data[off:], uint16(int16(v)))
	case Uint16:
		binary.LittleEndian.PutUint16(a.data[off:], uint16(v))
	case Int32:
		binary.LittleEndian.PutUint32(a.data[off:], uint32(int32(v)))
	case Uint32:
		binary.LittleEndian.PutUint32(a.data[off:], uint32(v))
	case Int64, IdType:
		binary.LittleEndian.PutUint64(a.data[off:], uint64(int64(v)))
	case Uint64:
		binary.LittleEndian.PutUint64(a.data[off:], uint64(v))
	case Float32:
		binary.LittleEndian.PutUint32(a.data[off:], math.Float32bits(float32(v)))
	case Float64:
		binary.LittleEndian.PutUint64(a.data[off:], math.Float64bits(v))
	}
	a.Modified()
}

// Range returns the min/max of one component across all tuples.
// Component -1 computes the combined range: the L2 magnitude of each tuple
// treated as a vector. An empty array yields (0, 0).
func (a *DataArray) Range(component int) (min, max float64) {
	tuples := a.NumberOfTuples()
	if tuples == 0 {
		return 0, 0
	}
	min = math.Inf(1)
	max = math.Inf(-1)
	for t := 0; t < tuples; t++ {
		var v float64
		if component < 0 {
			var sum float64
			for c := 0; c < a.components; c++ {
				x := a.Value(t*a.components + c)
				sum += x * x
			}
			v = math.Sqrt(sum)
		} else {
			v = a.Value(t*a.components + component)
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
