package scene

import "encoding/binary"

// CellArray holds cell connectivity in the legacy layout: a flat
// wide-index buffer of [pointCount, id0, id1, ...] runs.
type CellArray struct {
	data *DataArray
}

// NewCellArray creates an empty cell array.
func NewCellArray() *CellArray {
	return &CellArray{data: NewIdTypeArray("", nil)}
}

// Data returns the underlying connectivity buffer.
func (c *CellArray) Data() *DataArray { return c.data }

// InsertNextCell appends one cell given its point ids.
func (c *CellArray) InsertNextCell(pointIDs ...int64) {
	run := append([]int64{int64(len(pointIDs))}, pointIDs...)
	c.data.appendInt64s(run)
}

// NumberOfCells returns the number of cells by scanning the runs.
func (c *CellArray) NumberOfCells() int {
	count := 0
	for i := 0; i < c.data.NumberOfTuples(); {
		n := int(c.data.Int64Value(i))
		if n <= 0 {
			break
		}
		i += n + 1
		count++
	}
	return count
}

// appendInt64s extends a wide-index buffer, bumping the mtime once.
func (a *DataArray) appendInt64s(values []int64) {
	buf := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[8*i:], uint64(v))
	}
	a.data = append(a.data, buf...)
	a.Modified()
}

// FieldData is a container for named attribute arrays attached to points or
// cells, with dedicated slots for the well-known normals and texture
// coordinate attributes.
type FieldData struct {
	arrays  []*DataArray
	normals *DataArray
	tcoords *DataArray
}

// NewFieldData creates an empty attribute container.
func NewFieldData() *FieldData { return &FieldData{} }

// AddArray appends a named attribute array.
func (f *FieldData) AddArray(a *DataArray) {
	if a != nil {
		f.arrays = append(f.arrays, a)
	}
}

// Array returns the attribute array with the given name, or nil.
func (f *FieldData) Array(name string) *DataArray {
	for _, a := range f.arrays {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

// ArrayByIndex returns the i-th attribute array, or nil. Mappers may
// address their color array by index instead of name.
func (f *FieldData) ArrayByIndex(i int) *DataArray {
	if i < 0 || i >= len(f.arrays) {
		return nil
	}
	return f.arrays[i]
}

// NumberOfArrays returns the attribute array count.
func (f *FieldData) NumberOfArrays() int { return len(f.arrays) }

// Normals returns the normals attribute, or nil.
func (f *FieldData) Normals() *DataArray { return f.normals }

// SetNormals assigns the normals attribute.
func (f *FieldData) SetNormals(a *DataArray) { f.normals = a }

// TCoords returns the texture coordinates attribute, or nil.
func (f *FieldData) TCoords() *DataArray { return f.tcoords }

// SetTCoords assigns the texture coordinates attribute.
func (f *FieldData) SetTCoords(a *DataArray) { f.tcoords = a }

// PolyData is a concrete surface dataset: a point buffer plus optional
// vertex, line, polygon, and triangle-strip connectivity, with per-point
// and per-cell attribute data.
type PolyData struct {
	object
	points *DataArray
	verts  *CellArray
	lines  *CellArray
	polys  *CellArray
	strips *CellArray

	pointData *FieldData
	cellData  *FieldData
}

// NewPolyData creates an empty dataset.
func NewPolyData() *PolyData {
	return &PolyData{
		object:    newObject(),
		pointData: NewFieldData(),
		cellData:  NewFieldData(),
	}
}

// ClassName returns the dataset's class tag.
func (p *PolyData) ClassName() string { return "vtkPolyData" }

// IsComposite reports false: a PolyData is a single block.
func (p *PolyData) IsComposite() bool { return false }

// Points returns the point coordinate buffer (3 components per tuple), or
// nil if unset.
func (p *PolyData) Points() *DataArray { return p.points }

// SetPoints assigns the point coordinate buffer.
func (p *PolyData) SetPoints(a *DataArray) { p.points = a }

// Verts returns the vertex cells, or nil.
func (p *PolyData) Verts() *CellArray { return p.verts }

// SetVerts assigns the vertex cells.
func (p *PolyData) SetVerts(c *CellArray) { p.verts = c }

// Lines returns the line cells, or nil.
func (p *PolyData) Lines() *CellArray { return p.lines }

// SetLines assigns the line cells.
func (p *PolyData) SetLines(c *CellArray) { p.lines = c }

// Polys returns the polygon cells, or nil.
func (p *PolyData) Polys() *CellArray { return p.polys }

// SetPolys assigns the polygon cells.
func (p *PolyData) SetPolys(c *CellArray) { p.polys = c }

// Strips returns the triangle-strip cells, or nil.
func (p *PolyData) Strips() *CellArray { return p.strips }

// SetStrips assigns the triangle-strip cells.
func (p *PolyData) SetStrips(c *CellArray) { p.strips = c }

// PointData returns the per-point attribute container (never nil).
func (p *PolyData) PointData() *FieldData { return p.pointData }

// CellData returns the per-cell attribute container (never nil).
func (p *PolyData) CellData() *FieldData { return p.cellData }

// NumberOfPoints returns the point count.
func (p *PolyData) NumberOfPoints() int {
	if p.points == nil {
		return 0
	}
	return p.points.NumberOfTuples()
}
