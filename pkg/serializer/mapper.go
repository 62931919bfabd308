package serializer

import (
	"context"

	"github.com/scenewire/scenewire/pkg/scene"
	"github.com/scenewire/scenewire/pkg/session"
	"github.com/scenewire/scenewire/pkg/wire"
)

// serializeMapper emits a mapper with its two structural children: the input
// dataset and the lookup table. Both must serialize before the mapper is
// ready; a mapper without either would leave the receiver with nothing to
// draw or no way to color it.
//
// The dataset child gets the derived identity "<mapperId>-dataset" so the
// flattened output of a composite input keeps a stable id across passes.
func serializeMapper(ctx context.Context, r *Registry, parent, instance scene.Object, id string, sess *session.Context, depth int) (*wire.Node, error) {
	mapper, ok := instance.(*scene.Mapper)
	if !ok {
		return nil, nil
	}

	calls := []wire.Call{}
	dependencies := []*wire.Node{}
	var datasetNode, lookupTableNode *wire.Node

	if ip, ok := instance.(scene.InputProvider); ok {
		if dataset := ip.InputDataObject(); dataset != nil {
			datasetID := id + "-dataset"
			node, err := r.Serialize(ctx, instance, dataset, datasetID, sess, depth+1)
			if err != nil {
				return nil, err
			}
			if node != nil {
				datasetNode = node
				dependencies = append(dependencies, node)
				calls = append(calls, wire.NewCall("setInputData", wire.WrapID(datasetID)))
			}
		}
	}

	if lp, ok := instance.(scene.LookupTableProvider); ok {
		if lut := lp.LookupTable(); lut != nil {
			lutID := lut.ReferenceID()
			node, err := r.Serialize(ctx, instance, lut, lutID, sess, depth+1)
			if err != nil {
				return nil, err
			}
			if node != nil {
				lookupTableNode = node
				dependencies = append(dependencies, node)
				calls = append(calls, wire.NewCall("setLookupTable", wire.WrapID(lutID)))
			}
		}
	}

	if datasetNode == nil || lookupTableNode == nil {
		return nil, nil
	}

	var colorByArrayName any = mapper.ArrayID()
	if mapper.ArrayAccessMode() == scene.ArrayAccessByName {
		colorByArrayName = mapper.ArrayName()
	}

	return &wire.Node{
		Parent: refID(parent),
		ID:     id,
		Type:   mapper.ClassName(),
		Properties: map[string]any{
			"scalarRange":                     mapper.ScalarRange(),
			"useLookupTableScalarRange":       mapper.UseLookupTableScalarRange(),
			"scalarVisibility":                mapper.ScalarVisibility(),
			"colorByArrayName":                colorByArrayName,
			"colorMode":                       mapper.ColorMode(),
			"scalarMode":                      mapper.ScalarMode(),
			"interpolateScalarsBeforeMapping": mapper.InterpolateScalarsBeforeMapping(),
		},
		Calls:        calls,
		Dependencies: dependencies,
	}, nil
}
