package scene

import "math"

// NewConePolyData generates a cone surface centered at the origin with its
// axis along +x: one base polygon plus resolution side triangles. The
// resolution is clamped to a minimum of 3.
func NewConePolyData(resolution int, radius, height float64) *PolyData {
	if resolution < 3 {
		resolution = 3
	}

	coords := make([]float32, 0, 3*(resolution+1))
	coords = append(coords, float32(height/2), 0, 0) // apex
	for i := 0; i < resolution; i++ {
		angle := 2 * math.Pi * float64(i) / float64(resolution)
		coords = append(coords,
			float32(-height/2),
			float32(radius*math.Cos(angle)),
			float32(radius*math.Sin(angle)))
	}

	pd := NewPolyData()
	pd.SetPoints(NewFloat32Array("", 3, coords))

	polys := NewCellArray()
	base := make([]int64, resolution)
	for i := range base {
		base[i] = int64(i + 1)
	}
	polys.InsertNextCell(base...)
	for i := 0; i < resolution; i++ {
		next := int64(i+1)%int64(resolution) + 1
		polys.InsertNextCell(0, int64(i+1), next)
	}
	pd.SetPolys(polys)

	return pd
}

// NewPlanePolyData generates a unit quad in the xy plane centered at the
// origin, with per-point normals and texture coordinates.
func NewPlanePolyData() *PolyData {
	pd := NewPolyData()
	pd.SetPoints(NewFloat32Array("", 3, []float32{
		-0.5, -0.5, 0,
		0.5, -0.5, 0,
		0.5, 0.5, 0,
		-0.5, 0.5, 0,
	}))

	polys := NewCellArray()
	polys.InsertNextCell(0, 1, 2, 3)
	pd.SetPolys(polys)

	pd.PointData().SetNormals(NewFloat32Array("Normals", 3, []float32{
		0, 0, 1,
		0, 0, 1,
		0, 0, 1,
		0, 0, 1,
	}))
	pd.PointData().SetTCoords(NewFloat32Array("TCoords", 2, []float32{
		0, 0,
		1, 0,
		1, 1,
		0, 1,
	}))

	return pd
}

// AddElevationScalars attaches a named per-point scalar array holding each
// point's z coordinate, suitable for driving scalar coloring through a
// lookup table.
func AddElevationScalars(pd *PolyData, name string) *DataArray {
	points := pd.Points()
	if points == nil {
		return nil
	}
	tuples := points.NumberOfTuples()
	values := make([]float32, tuples)
	for i := 0; i < tuples; i++ {
		values[i] = float32(points.Value(i*3 + 2))
	}
	arr := NewFloat32Array(name, 1, values)
	pd.PointData().AddArray(arr)
	return arr
}
