package serializer

import (
	"context"

	"github.com/scenewire/scenewire/pkg/scene"
	"github.com/scenewire/scenewire/pkg/session"
	"github.com/scenewire/scenewire/pkg/wire"
)

// serializeRenderer emits a viewport with its camera and its two diffed
// collections, view props and lights. Collection membership travels
// exclusively as add/remove calls from the dependency history, never as a
// property.
//
// The renderer is ready only when it has more than one dependency: a camera
// alone renders nothing, and emitting it would churn the remote view.
func serializeRenderer(ctx context.Context, r *Registry, parent, instance scene.Object, id string, sess *session.Context, depth int) (*wire.Node, error) {
	renderer, ok := instance.(*scene.Renderer)
	if !ok {
		return nil, nil
	}

	calls := []wire.Call{}
	dependencies := []*wire.Node{}

	camera := renderer.ActiveCamera()
	cameraID := camera.ReferenceID()
	cameraNode, err := r.Serialize(ctx, instance, camera, cameraID, sess, depth+1)
	if err != nil {
		return nil, err
	}
	if cameraNode != nil {
		dependencies = append(dependencies, cameraNode)
		calls = append(calls, wire.NewCall("setActiveCamera", wire.WrapID(cameraID)))
	}

	propIDs := []string{}
	for _, prop := range renderer.ViewProps() {
		node, err := r.Serialize(ctx, instance, prop, prop.ReferenceID(), sess, depth+1)
		if err != nil {
			return nil, err
		}
		if node != nil {
			dependencies = append(dependencies, node)
			propIDs = append(propIDs, prop.ReferenceID())
		}
	}
	calls = append(calls, sess.BuildDependencyCalls(id+"-props", propIDs, "addViewProp", "removeViewProp")...)

	lightIDs := []string{}
	for _, light := range renderer.Lights() {
		node, err := r.Serialize(ctx, instance, light, light.ReferenceID(), sess, depth+1)
		if err != nil {
			return nil, err
		}
		if node != nil {
			dependencies = append(dependencies, node)
			lightIDs = append(lightIDs, light.ReferenceID())
		}
	}
	calls = append(calls, sess.BuildDependencyCalls(id+"-lights", lightIDs, "addLight", "removeLight")...)

	if len(dependencies) <= 1 {
		return nil, nil
	}

	return &wire.Node{
		Parent: refID(parent),
		ID:     id,
		Type:   renderer.ClassName(),
		Properties: map[string]any{
			"background":                 renderer.Background(),
			"background2":                renderer.Background2(),
			"viewport":                   renderer.Viewport(),
			"twoSidedLighting":           renderer.TwoSidedLighting(),
			"lightFollowCamera":          renderer.LightFollowCamera(),
			"layer":                      renderer.Layer(),
			"preserveColorBuffer":        renderer.PreserveColorBuffer(),
			"preserveDepthBuffer":        renderer.PreserveDepthBuffer(),
			"nearClippingPlaneTolerance": renderer.NearClippingPlaneTolerance(),
			"clippingRangeExpansion":     renderer.ClippingRangeExpansion(),
			"useShadows":                 renderer.UseShadows(),
			"useDepthPeeling":            renderer.UseDepthPeeling(),
			"occlusionRatio":             renderer.OcclusionRatio(),
			"maximumNumberOfPeels":       renderer.MaximumNumberOfPeels(),
		},
		Calls:        calls,
		Dependencies: dependencies,
	}, nil
}

// serializeCamera emits a leaf camera node.
func serializeCamera(ctx context.Context, r *Registry, parent, instance scene.Object, id string, sess *session.Context, depth int) (*wire.Node, error) {
	camera, ok := instance.(*scene.Camera)
	if !ok {
		return nil, nil
	}

	return &wire.Node{
		Parent: refID(parent),
		ID:     id,
		Type:   camera.ClassName(),
		Properties: map[string]any{
			"focalPoint": camera.FocalPoint(),
			"position":   camera.Position(),
			"viewUp":     camera.ViewUp(),
		},
	}, nil
}

// serializeLight emits a leaf light node. The light type travels as its
// string name, not the numeric enum.
func serializeLight(ctx context.Context, r *Registry, parent, instance scene.Object, id string, sess *session.Context, depth int) (*wire.Node, error) {
	light, ok := instance.(*scene.Light)
	if !ok {
		return nil, nil
	}

	return &wire.Node{
		Parent: refID(parent),
		ID:     id,
		Type:   light.ClassName(),
		Properties: map[string]any{
			"switch":            light.Switch(),
			"intensity":         light.Intensity(),
			"color":             light.DiffuseColor(),
			"position":          light.Position(),
			"focalPoint":        light.FocalPoint(),
			"positional":        light.Positional(),
			"exponent":          light.Exponent(),
			"coneAngle":         light.ConeAngle(),
			"attenuationValues": light.AttenuationValues(),
			"lightType":         light.LightType().String(),
			"shadowAttenuation": light.ShadowAttenuation(),
		},
	}, nil
}

// serializeRenderWindow emits the scene root: the diffed renderer
// collection and the layer count. The window node is always emitted, even
// with no renderers, because it is the anchor the remote view attaches to.
func serializeRenderWindow(ctx context.Context, r *Registry, parent, instance scene.Object, id string, sess *session.Context, depth int) (*wire.Node, error) {
	window, ok := instance.(*scene.RenderWindow)
	if !ok {
		return nil, nil
	}

	dependencies := []*wire.Node{}
	rendererIDs := []string{}

	for _, renderer := range window.Renderers() {
		node, err := r.Serialize(ctx, instance, renderer, renderer.ReferenceID(), sess, depth+1)
		if err != nil {
			return nil, err
		}
		if node != nil {
			dependencies = append(dependencies, node)
			rendererIDs = append(rendererIDs, renderer.ReferenceID())
		}
	}

	calls := append([]wire.Call{}, sess.BuildDependencyCalls(id, rendererIDs, "addRenderer", "removeRenderer")...)

	return &wire.Node{
		Parent: refID(parent),
		ID:     id,
		Type:   window.ClassName(),
		Properties: map[string]any{
			"numberOfLayers": window.NumberOfLayers(),
		},
		Calls:        calls,
		Dependencies: dependencies,
	}, nil
}
