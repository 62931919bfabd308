package wire

// Class tags understood by the receiver. DataArrayClass is the default tag
// produced by the array descriptor builder; points and cell arrays override
// it so the receiver materializes the right container type.
const (
	DataArrayClass = "vtkDataArray"
	PointsClass    = "vtkPoints"
	CellArrayClass = "vtkCellArray"
)

// ArrayDescriptor is the small metadata record describing one binary data
// buffer. The receiver uses Hash to fetch (or skip re-fetching) the payload
// over a separate binary channel.
type ArrayDescriptor struct {
	Hash               string  `json:"hash"`
	VTKClass           string  `json:"vtkClass"`
	Name               string  `json:"name"`
	DataType           string  `json:"dataType"`
	NumberOfComponents int     `json:"numberOfComponents"`
	Size               int     `json:"size"`
	Ranges             []Range `json:"ranges"`

	// Location and Registration annotate field arrays extracted for a
	// mapper: where the array lives (pointData/cellData) and, for well-known
	// attributes, the receiver-side setter to invoke (e.g. setNormals).
	Location     string `json:"location,omitempty"`
	Registration string `json:"registration,omitempty"`
}

// Range is the numeric range of one array component. The combined entry of
// a multi-component array carries an empty component name.
type Range struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Component string  `json:"component,omitempty"`
}
