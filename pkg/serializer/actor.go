package serializer

import (
	"context"

	"github.com/scenewire/scenewire/pkg/scene"
	"github.com/scenewire/scenewire/pkg/session"
	"github.com/scenewire/scenewire/pkg/wire"
)

// serializeActor emits a view prop together with its two structural
// children, the mapper and the visual property.
//
// An invisible actor is emitted immediately with empty calls and
// dependencies: the receiver must keep the node around to show it again
// later. A visible actor is emitted only once both children serialized;
// until then it is not ready.
func serializeActor(ctx context.Context, r *Registry, parent, instance scene.Object, id string, sess *session.Context, depth int) (*wire.Node, error) {
	actor, ok := instance.(*scene.Actor)
	if !ok {
		return nil, nil
	}

	calls := []wire.Call{}
	dependencies := []*wire.Node{}
	var mapperNode, propertyNode *wire.Node

	if actor.Visibility() {
		if mp, ok := instance.(scene.MapperProvider); ok {
			if mapper := mp.Mapper(); mapper != nil {
				mapperID := mapper.ReferenceID()
				node, err := r.Serialize(ctx, instance, mapper, mapperID, sess, depth+1)
				if err != nil {
					return nil, err
				}
				if node != nil {
					mapperNode = node
					dependencies = append(dependencies, node)
					calls = append(calls, wire.NewCall("setMapper", wire.WrapID(mapperID)))
				}
			}
		}

		if pp, ok := instance.(scene.PropertyProvider); ok {
			if prop := pp.Property(); prop != nil {
				propID := prop.ReferenceID()
				node, err := r.Serialize(ctx, instance, prop, propID, sess, depth+1)
				if err != nil {
					return nil, err
				}
				if node != nil {
					propertyNode = node
					dependencies = append(dependencies, node)
					calls = append(calls, wire.NewCall("setProperty", wire.WrapID(propID)))
				}
			}
		}
	}

	if !actor.Visibility() || (mapperNode != nil && propertyNode != nil) {
		return &wire.Node{
			Parent: refID(parent),
			ID:     id,
			Type:   actor.ClassName(),
			Properties: map[string]any{
				"visibility":       actor.Visibility(),
				"pickable":         actor.Pickable(),
				"dragable":         actor.Dragable(),
				"useBounds":        actor.UseBounds(),
				"origin":           actor.Origin(),
				"position":         actor.Position(),
				"scale":            actor.Scale(),
				"forceOpaque":      actor.ForceOpaque(),
				"forceTranslucent": actor.ForceTranslucent(),
			},
			Calls:        calls,
			Dependencies: dependencies,
		}, nil
	}

	return nil, nil
}

// serializeProperty emits a leaf visual property node.
//
// Wireframe representation colors by the flat color; everything else by the
// diffuse color.
func serializeProperty(ctx context.Context, r *Registry, parent, instance scene.Object, id string, sess *session.Context, depth int) (*wire.Node, error) {
	prop, ok := instance.(*scene.Property)
	if !ok {
		return nil, nil
	}

	diffuse := prop.DiffuseColor()
	if prop.Representation() == scene.RepresentationWireframe {
		diffuse = prop.Color()
	}

	return &wire.Node{
		Parent: refID(parent),
		ID:     id,
		Type:   prop.ClassName(),
		Properties: map[string]any{
			"representation":   prop.Representation(),
			"diffuseColor":     diffuse,
			"color":            prop.Color(),
			"ambientColor":     prop.AmbientColor(),
			"specularColor":    prop.SpecularColor(),
			"edgeColor":        prop.EdgeColor(),
			"ambient":          prop.Ambient(),
			"diffuse":          prop.Diffuse(),
			"specular":         prop.Specular(),
			"specularPower":    prop.SpecularPower(),
			"opacity":          prop.Opacity(),
			"interpolation":    prop.Interpolation(),
			"edgeVisibility":   prop.EdgeVisibility(),
			"backfaceCulling":  prop.BackfaceCulling(),
			"frontfaceCulling": prop.FrontfaceCulling(),
			"pointSize":        prop.PointSize(),
			"lineWidth":        prop.LineWidth(),
			"lighting":         prop.Lighting(),
		},
	}, nil
}
