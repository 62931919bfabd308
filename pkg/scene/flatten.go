package scene

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrNotComposite is returned by [FlattenComposite] when the argument is
// not a composite container. Asking to flatten a plain dataset is a caller
// contract violation, not transient scene state, so this error is fatal to
// the serialization pass instead of being absorbed as "not ready".
var ErrNotComposite = errors.New("data object is not composite")

// FlattenComposite merges every PolyData block of a composite container
// into one unified surface. Nested composite blocks are flattened
// recursively; blocks that are not PolyData are skipped.
//
// Point coordinates are concatenated and connectivity ids are offset so
// cells keep referencing their own points. Per-point normals and texture
// coordinates survive the merge only when every contributing block carries
// them; named attribute arrays do not survive (the unified surface is a
// rendering artifact, not an analysis dataset).
func FlattenComposite(obj DataObject) (*PolyData, error) {
	if obj == nil || !obj.IsComposite() {
		class := "<nil>"
		if obj != nil {
			class = obj.ClassName()
		}
		return nil, fmt.Errorf("flatten %s: %w", class, ErrNotComposite)
	}

	out := NewPolyData()
	out.SetPoints(NewFloat32Array("", 3, nil))
	m := &merger{out: out, allNormals: true, allTCoords: true}

	if err := m.add(obj); err != nil {
		return nil, err
	}

	if m.blocks > 0 && m.allNormals && m.normals != nil {
		na := NewFloat32Array("", 3, nil)
		na.data = m.normals
		out.PointData().SetNormals(na)
	}
	if m.blocks > 0 && m.allTCoords && m.tcoords != nil {
		ta := NewFloat32Array("", 2, nil)
		ta.data = m.tcoords
		out.PointData().SetTCoords(ta)
	}
	return out, nil
}

type merger struct {
	out    *PolyData
	blocks int

	allNormals bool
	normals    []byte
	allTCoords bool
	tcoords    []byte
}

func (m *merger) add(obj DataObject) error {
	switch d := obj.(type) {
	case *MultiBlockDataSet:
		for i := 0; i < d.NumberOfBlocks(); i++ {
			if err := m.add(d.Block(i)); err != nil {
				return err
			}
		}
		return nil
	case *PolyData:
		m.merge(d)
		return nil
	default:
		// Unknown block types contribute no geometry.
		return nil
	}
}

func (m *merger) merge(p *PolyData) {
	if p.Points() == nil {
		return
	}
	m.blocks++

	offset := int64(m.out.NumberOfPoints())
	dst := m.out.Points()
	for i := 0; i < p.Points().Size(); i++ {
		dst.appendFloat32(p.Points().Value(i))
	}

	m.out.SetVerts(mergeCells(m.out.Verts(), p.Verts(), offset))
	m.out.SetLines(mergeCells(m.out.Lines(), p.Lines(), offset))
	m.out.SetPolys(mergeCells(m.out.Polys(), p.Polys(), offset))
	m.out.SetStrips(mergeCells(m.out.Strips(), p.Strips(), offset))

	if n := p.PointData().Normals(); n != nil {
		m.normals = append(m.normals, n.Bytes()...)
	} else {
		m.allNormals = false
	}
	if t := p.PointData().TCoords(); t != nil {
		m.tcoords = append(m.tcoords, t.Bytes()...)
	} else {
		m.allTCoords = false
	}
}

// mergeCells appends src's cells to dst with point ids shifted by offset.
func mergeCells(dst, src *CellArray, offset int64) *CellArray {
	if src == nil || src.Data().NumberOfTuples() == 0 {
		return dst
	}
	if dst == nil {
		dst = NewCellArray()
	}
	data := src.Data()
	for i := 0; i < data.NumberOfTuples(); {
		n := int(data.Int64Value(i))
		if n <= 0 {
			break
		}
		ids := make([]int64, n)
		for j := 0; j < n; j++ {
			ids[j] = data.Int64Value(i+1+j) + offset
		}
		dst.InsertNextCell(ids...)
		i += n + 1
	}
	return dst
}

// appendFloat32 extends a Float32 buffer by one value, bumping the mtime.
func (a *DataArray) appendFloat32(v float64) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(float32(v)))
	a.data = append(a.data, buf[:]...)
	a.Modified()
}
