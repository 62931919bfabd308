package serializer

import (
	"context"
	"testing"

	"github.com/scenewire/scenewire/pkg/scene"
	"github.com/scenewire/scenewire/pkg/session"
	"github.com/scenewire/scenewire/pkg/wire"
)

func TestHashDataArray(t *testing.T) {
	tests := []struct {
		name string
		arr  *scene.DataArray
		want string
	}{
		{
			name: "float32 values",
			arr:  scene.NewFloat32Array("pts", 1, []float32{1, 2, 3}),
			want: "blXwRGBaSZHxX9RQXYP69A_3f",
		},
		{
			name: "wide index values",
			arr:  scene.NewIdTypeArray("conn", []int64{3, 0, 1, 2}),
			want: "GGxHS1q2jYlW57c4a0eZFA_4L",
		},
		{
			name: "empty float32",
			arr:  scene.NewFloat32Array("empty", 1, nil),
			want: "1B2M2Y8AsgTpgAmY7PhCfg_0f",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HashDataArray(tt.arr); got != tt.want {
				t.Errorf("HashDataArray() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHashDataArrayIsStable(t *testing.T) {
	a := scene.NewFloat32Array("a", 3, []float32{0, 0, 0, 1, 0, 0})
	b := scene.NewFloat32Array("b", 3, []float32{0, 0, 0, 1, 0, 0})

	if HashDataArray(a) != HashDataArray(b) {
		t.Error("identical content should hash identically regardless of name")
	}

	a.SetValue(0, 5)
	if HashDataArray(a) == HashDataArray(b) {
		t.Error("different content should hash differently")
	}
}

func TestDescribeArrayNil(t *testing.T) {
	if desc := DescribeArray(context.Background(), nil, session.NewContext()); desc != nil {
		t.Errorf("DescribeArray(nil) = %v, want nil", desc)
	}
}

func TestDescribeArraySingleComponent(t *testing.T) {
	sess := session.NewContext()
	arr := scene.NewFloat32Array("elevation", 1, []float32{0, 2, 4})

	desc := DescribeArray(context.Background(), arr, sess)
	if desc == nil {
		t.Fatal("DescribeArray returned nil")
	}

	if desc.VTKClass != wire.DataArrayClass {
		t.Errorf("VTKClass = %q, want %q", desc.VTKClass, wire.DataArrayClass)
	}
	if desc.Name != "elevation" {
		t.Errorf("Name = %q, want elevation", desc.Name)
	}
	if desc.DataType != "Float32Array" {
		t.Errorf("DataType = %q, want Float32Array", desc.DataType)
	}
	if desc.NumberOfComponents != 1 {
		t.Errorf("NumberOfComponents = %d, want 1", desc.NumberOfComponents)
	}
	if desc.Size != 3 {
		t.Errorf("Size = %d, want 3", desc.Size)
	}
	if len(desc.Ranges) != 1 {
		t.Fatalf("len(Ranges) = %d, want 1", len(desc.Ranges))
	}
	if desc.Ranges[0].Min != 0 || desc.Ranges[0].Max != 4 {
		t.Errorf("range = [%v, %v], want [0, 4]", desc.Ranges[0].Min, desc.Ranges[0].Max)
	}
	if desc.Ranges[0].Component != "" {
		t.Errorf("Component = %q, want empty", desc.Ranges[0].Component)
	}

	// Registering is a side effect of describing.
	if sess.ArrayCount() != 1 {
		t.Errorf("ArrayCount = %d, want 1", sess.ArrayCount())
	}
	if _, err := sess.CachedArray(context.Background(), desc.Hash, true); err != nil {
		t.Errorf("described array should be fetchable: %v", err)
	}
}

func TestDescribeArrayMultiComponentRanges(t *testing.T) {
	sess := session.NewContext()
	arr := scene.NewFloat32Array("pts", 3, []float32{0, 0, 0, 3, 4, 0})
	arr.SetComponentName(0, "X")

	desc := DescribeArray(context.Background(), arr, sess)
	if desc == nil {
		t.Fatal("DescribeArray returned nil")
	}

	// One range per component plus the combined magnitude range.
	if len(desc.Ranges) != 4 {
		t.Fatalf("len(Ranges) = %d, want 4", len(desc.Ranges))
	}
	if desc.Ranges[0].Component != "X" {
		t.Errorf("Ranges[0].Component = %q, want X", desc.Ranges[0].Component)
	}
	combined := desc.Ranges[3]
	if combined.Component != "" {
		t.Errorf("combined Component = %q, want empty", combined.Component)
	}
	if combined.Min != 0 || combined.Max != 5 {
		t.Errorf("combined range = [%v, %v], want [0, 5]", combined.Min, combined.Max)
	}
	if desc.Size != 6 {
		t.Errorf("Size = %d, want 6", desc.Size)
	}
}

func TestExtractRequiredFields(t *testing.T) {
	sess := session.NewContext()
	ctx := context.Background()

	pd := scene.NewPlanePolyData() // carries normals and texture coordinates
	scene.AddElevationScalars(pd, "elevation")

	mapper := scene.NewMapper()
	mapper.SetInputData(pd)
	mapper.SetColorByArrayName("elevation")
	mapper.SetScalarMode(scene.ScalarModePointFieldData)

	fields := []*wire.ArrayDescriptor{}
	extractRequiredFields(ctx, &fields, mapper, pd, sess)

	if len(fields) != 3 {
		t.Fatalf("len(fields) = %d, want 3 (scalars, normals, tcoords)", len(fields))
	}

	if fields[0].Name != "elevation" || fields[0].Location != "pointData" || fields[0].Registration != "" {
		t.Errorf("scalars field = %+v, want elevation/pointData/no registration", fields[0])
	}
	if fields[1].Location != "pointData" || fields[1].Registration != "setNormals" {
		t.Errorf("normals field = %+v, want pointData/setNormals", fields[1])
	}
	if fields[2].Location != "pointData" || fields[2].Registration != "setTCoords" {
		t.Errorf("tcoords field = %+v, want pointData/setTCoords", fields[2])
	}
}

func TestExtractRequiredFieldsScalarVisibilityOff(t *testing.T) {
	sess := session.NewContext()
	ctx := context.Background()

	pd := scene.NewConePolyData(8, 0.5, 1) // no normals or tcoords
	scene.AddElevationScalars(pd, "elevation")

	mapper := scene.NewMapper()
	mapper.SetColorByArrayName("elevation")
	mapper.SetScalarMode(scene.ScalarModePointFieldData)
	mapper.SetScalarVisibility(false)

	fields := []*wire.ArrayDescriptor{}
	extractRequiredFields(ctx, &fields, mapper, pd, sess)

	if len(fields) != 0 {
		t.Errorf("len(fields) = %d, want 0 with scalar visibility off", len(fields))
	}
}
