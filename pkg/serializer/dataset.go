package serializer

import (
	"context"

	apperrors "github.com/scenewire/scenewire/pkg/errors"
	"github.com/scenewire/scenewire/pkg/scene"
	"github.com/scenewire/scenewire/pkg/session"
	"github.com/scenewire/scenewire/pkg/wire"
)

// serializePolyData emits a geometry node: the point coordinates, the four
// cell connectivity groups, and the field arrays the parent mapper needs.
// A dataset without points is not ready.
//
// All array payloads leave this function as cache registrations plus
// descriptors; the node itself carries no binary data.
func serializePolyData(ctx context.Context, r *Registry, parent, instance scene.Object, id string, sess *session.Context, depth int) (*wire.Node, error) {
	dataset, ok := instance.(*scene.PolyData)
	if !ok {
		return nil, nil
	}

	if dataset.Points() == nil {
		r.logger.Debug("dataset has no points", "id", id)
		return nil, nil
	}

	properties := map[string]any{}

	points := DescribeArray(ctx, dataset.Points(), sess)
	points.VTKClass = wire.PointsClass
	properties["points"] = points

	cellGroups := []struct {
		key   string
		cells *scene.CellArray
	}{
		{"verts", dataset.Verts()},
		{"lines", dataset.Lines()},
		{"polys", dataset.Polys()},
		{"strips", dataset.Strips()},
	}
	for _, group := range cellGroups {
		if group.cells == nil || group.cells.Data() == nil || group.cells.Data().NumberOfTuples() == 0 {
			continue
		}
		desc := DescribeArray(ctx, group.cells.Data(), sess)
		desc.VTKClass = wire.CellArrayClass
		properties[group.key] = desc
	}

	fields := []*wire.ArrayDescriptor{}
	extractRequiredFields(ctx, &fields, parent, dataset, sess)
	properties["fields"] = fields

	return &wire.Node{
		Parent:     refID(parent),
		ID:         id,
		Type:       dataset.ClassName(),
		Properties: properties,
	}, nil
}

// serializeComposite flattens a multi-block dataset into a single geometry
// and emits that under the composite's identity. Handing a non-composite
// object to this handler is a usage violation and fails the whole pass.
func serializeComposite(ctx context.Context, r *Registry, parent, instance scene.Object, id string, sess *session.Context, depth int) (*wire.Node, error) {
	obj, ok := instance.(scene.DataObject)
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodeNotComposite, "%s is not a data object", instance.ClassName())
	}

	flat, err := scene.FlattenComposite(obj)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeNotComposite, err, "flatten %s", instance.ClassName())
	}

	return serializePolyData(ctx, r, parent, flat, id, sess, depth)
}
