package serializer

import (
	"context"

	"github.com/scenewire/scenewire/pkg/scene"
	"github.com/scenewire/scenewire/pkg/session"
	"github.com/scenewire/scenewire/pkg/wire"
)

// hueRanger is probed instead of assumed: some color maps (transfer
// functions) have no hue range at all.
type hueRanger interface {
	HueRange() [2]float64
}

// serializeLookupTable emits a leaf lookup table node.
func serializeLookupTable(ctx context.Context, r *Registry, parent, instance scene.Object, id string, sess *session.Context, depth int) (*wire.Node, error) {
	lut, ok := instance.(*scene.LookupTable)
	if !ok {
		return nil, nil
	}

	// Receivers still want a hue range for color maps that cannot provide
	// one; [0.5, 0] is the conventional stand-in.
	hueRange := [2]float64{0.5, 0}
	if hr, ok := instance.(hueRanger); ok {
		hueRange = hr.HueRange()
	}

	return &wire.Node{
		Parent: refID(parent),
		ID:     id,
		Type:   lut.ClassName(),
		Properties: map[string]any{
			"numberOfColors":     lut.NumberOfColors(),
			"valueRange":         lut.Range(),
			"hueRange":           hueRange,
			"saturationRange":    lut.SaturationRange(),
			"nanColor":           lut.NanColor(),
			"belowRangeColor":    lut.BelowRangeColor(),
			"aboveRangeColor":    lut.AboveRangeColor(),
			"useAboveRangeColor": lut.UseAboveRangeColor(),
			"useBelowRangeColor": lut.UseBelowRangeColor(),
			"alpha":              lut.Alpha(),
			"vectorSize":         lut.VectorSize(),
			"vectorComponent":    lut.VectorComponent(),
			"vectorMode":         lut.VectorMode(),
			"indexedLookup":      lut.IndexedLookup(),
		},
	}, nil
}

// serializeColorTransferFunction emits a leaf transfer function node. The
// control points travel as [x, r, g, b, midpoint, sharpness] tuples in
// insertion order.
func serializeColorTransferFunction(ctx context.Context, r *Registry, parent, instance scene.Object, id string, sess *session.Context, depth int) (*wire.Node, error) {
	fn, ok := instance.(*scene.ColorTransferFunction)
	if !ok {
		return nil, nil
	}

	nodes := make([][6]float64, 0, fn.Size())
	for i := 0; i < fn.Size(); i++ {
		nodes = append(nodes, fn.NodeValue(i))
	}

	return &wire.Node{
		Parent: refID(parent),
		ID:     id,
		Type:   fn.ClassName(),
		Properties: map[string]any{
			"clamping":              fn.Clamping(),
			"colorSpace":            fn.ColorSpace(),
			"hSVWrap":               fn.HSVWrap(),
			"allowDuplicateScalars": fn.AllowDuplicateScalars(),
			"alpha":                 fn.Alpha(),
			"vectorComponent":       fn.VectorComponent(),
			"vectorSize":            fn.VectorSize(),
			"vectorMode":            fn.VectorMode(),
			"indexedLookup":         fn.IndexedLookup(),
			"nodes":                 nodes,
		},
	}, nil
}
