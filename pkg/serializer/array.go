package serializer

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/scenewire/scenewire/pkg/scene"
	"github.com/scenewire/scenewire/pkg/session"
	"github.com/scenewire/scenewire/pkg/wire"
)

// HashDataArray computes the content hash an array is cached and fetched
// under: the base64 md5 of the bytes with trailing padding stripped, an
// underscore, the element count, and the single-letter type code. The
// format is a wire contract with the receiver.
func HashDataArray(arr *scene.DataArray) string {
	sum := md5.Sum(arr.Bytes())
	digest := strings.TrimSuffix(base64.StdEncoding.EncodeToString(sum[:]), "==")
	return fmt.Sprintf("%s_%d%c", digest, arr.Size(), arr.DataType().Code())
}

// DescribeArray builds the wire descriptor for arr and registers the array
// in the session's content cache as a side effect. Returns nil for a nil
// array.
func DescribeArray(ctx context.Context, arr *scene.DataArray, sess *session.Context) *wire.ArrayDescriptor {
	if arr == nil {
		return nil
	}

	hash := HashDataArray(arr)
	sess.CacheArray(ctx, hash, arr)

	components := arr.NumberOfComponents()
	desc := &wire.ArrayDescriptor{
		Hash:               hash,
		VTKClass:           wire.DataArrayClass,
		Name:               arr.Name(),
		DataType:           arr.DataType().JSArrayType(),
		NumberOfComponents: components,
		Size:               components * arr.NumberOfTuples(),
	}

	if components > 1 {
		for i := 0; i < components; i++ {
			desc.Ranges = append(desc.Ranges, rangeInfo(arr, i))
		}
		desc.Ranges = append(desc.Ranges, rangeInfo(arr, -1))
	} else {
		desc.Ranges = append(desc.Ranges, rangeInfo(arr, 0))
	}

	return desc
}

// rangeInfo captures the range of one component. Component -1 is the
// combined magnitude range of multi-component arrays.
func rangeInfo(arr *scene.DataArray, component int) wire.Range {
	min, max := arr.Range(component)
	return wire.Range{
		Min:       min,
		Max:       max,
		Component: arr.ComponentName(component),
	}
}

// extractRequiredFields collects the field arrays the receiver needs to
// render dataset under mapper: the active scalar coloring array plus the
// well-known point attributes (normals, texture coordinates) with their
// receiver-side registration setters.
func extractRequiredFields(ctx context.Context, fields *[]*wire.ArrayDescriptor, mapper scene.Object, dataset *scene.PolyData, sess *session.Context) {
	if m, ok := mapper.(*scene.Mapper); ok && m.ScalarVisibility() {
		switch m.ScalarMode() {
		case scene.ScalarModePointFieldData:
			if desc := DescribeArray(ctx, colorArray(dataset.PointData(), m), sess); desc != nil {
				desc.Location = "pointData"
				*fields = append(*fields, desc)
			}
		case scene.ScalarModeCellFieldData:
			if desc := DescribeArray(ctx, colorArray(dataset.CellData(), m), sess); desc != nil {
				desc.Location = "cellData"
				*fields = append(*fields, desc)
			}
		}
	}

	if desc := DescribeArray(ctx, dataset.PointData().Normals(), sess); desc != nil {
		desc.Location = "pointData"
		desc.Registration = "setNormals"
		*fields = append(*fields, desc)
	}

	if desc := DescribeArray(ctx, dataset.PointData().TCoords(), sess); desc != nil {
		desc.Location = "pointData"
		desc.Registration = "setTCoords"
		*fields = append(*fields, desc)
	}
}

// colorArray resolves the mapper's coloring array in fd, by name or by
// index depending on the mapper's access mode.
func colorArray(fd *scene.FieldData, m *scene.Mapper) *scene.DataArray {
	if m.ArrayAccessMode() == scene.ArrayAccessByName {
		return fd.Array(m.ArrayName())
	}
	return fd.ArrayByIndex(m.ArrayID())
}
