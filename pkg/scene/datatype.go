package scene

// DataType enumerates the element types a DataArray can hold. The set is
// fixed: it mirrors the numeric types the receiving renderer's typed arrays
// can represent, plus the wide index type used for cell connectivity.
type DataType int

const (
	Int8 DataType = iota
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64

	// IdType is the wide (64-bit) index type used for connectivity arrays.
	// The receiver cannot represent it natively; reads narrow it to uint32,
	// clamping negative sentinel values to the maximum representable value.
	IdType
)

// typeCodes is the single-letter code appended to content hashes.
// IdType shares the unsigned-long code.
var typeCodes = [...]byte{'b', 'B', 'h', 'H', 'i', 'I', 'l', 'L', 'f', 'd', 'L'}

// jsArrayTypes maps element types to receiver-side typed-array tags.
// Unsigned 16-bit maps to Int16Array and the 64-bit integer types narrow to
// the 32-bit tags; both quirks are part of the receiver contract.
var jsArrayTypes = [...]string{
	"Int8Array",
	"Uint8Array",
	"Int16Array",
	"Int16Array",
	"Int32Array",
	"Uint32Array",
	"Int32Array",
	"Uint32Array",
	"Float32Array",
	"Float64Array",
	"Uint32Array",
}

// widths is the element width in bytes.
var widths = [...]int{1, 1, 2, 2, 4, 4, 8, 8, 4, 8, 8}

var typeNames = [...]string{
	"Int8", "Uint8", "Int16", "Uint16", "Int32", "Uint32",
	"Int64", "Uint64", "Float32", "Float64", "IdType",
}

func (t DataType) valid() bool { return t >= Int8 && t <= IdType }

// Code returns the single-letter type code used in content hashes.
func (t DataType) Code() byte {
	if !t.valid() {
		return ' '
	}
	return typeCodes[t]
}

// JSArrayType returns the receiver-side typed-array tag.
func (t DataType) JSArrayType() string {
	if !t.valid() {
		return ""
	}
	return jsArrayTypes[t]
}

// Width returns the element width in bytes.
func (t DataType) Width() int {
	if !t.valid() {
		return 0
	}
	return widths[t]
}

// String returns the type name.
func (t DataType) String() string {
	if !t.valid() {
		return "Unknown"
	}
	return typeNames[t]
}
