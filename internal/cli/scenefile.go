package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	apperrors "github.com/scenewire/scenewire/pkg/errors"
	"github.com/scenewire/scenewire/pkg/scene"
)

// =============================================================================
// Scene File Format
// =============================================================================

// sceneFile is the TOML description of a scene. Every section maps onto one
// scene-graph object; identifiers default to generated UUIDs when omitted,
// which makes repeated passes non-deterministic but still correct.
type sceneFile struct {
	Window    windowSection     `toml:"window"`
	Renderers []rendererSection `toml:"renderers"`
}

type windowSection struct {
	ID     string `toml:"id"`
	Layers int    `toml:"layers"`
}

type rendererSection struct {
	ID         string         `toml:"id"`
	Background []float64      `toml:"background"`
	Camera     *cameraSection `toml:"camera"`
	Actors     []actorSection `toml:"actors"`
	Lights     []lightSection `toml:"lights"`
}

type cameraSection struct {
	ID         string    `toml:"id"`
	Position   []float64 `toml:"position"`
	FocalPoint []float64 `toml:"focal_point"`
	ViewUp     []float64 `toml:"view_up"`
}

type actorSection struct {
	ID             string    `toml:"id"`
	Source         string    `toml:"source"`
	Resolution     int       `toml:"resolution"`
	Radius         float64   `toml:"radius"`
	Height         float64   `toml:"height"`
	Color          []float64 `toml:"color"`
	Opacity        *float64  `toml:"opacity"`
	Representation string    `toml:"representation"`
	Scalars        string    `toml:"scalars"`
	ScalarRange    []float64 `toml:"scalar_range"`
	Visible        *bool     `toml:"visible"`
}

type lightSection struct {
	ID        string    `toml:"id"`
	Type      string    `toml:"type"`
	Intensity *float64  `toml:"intensity"`
	Color     []float64 `toml:"color"`
	Position  []float64 `toml:"position"`
}

// =============================================================================
// Loading
// =============================================================================

// loadSceneFile parses a TOML scene description and builds the scene graph.
func loadSceneFile(path string) (*scene.RenderWindow, error) {
	var f sceneFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "failed to parse scene file %s", path)
	}
	return buildScene(&f)
}

// buildScene materializes scene-graph objects from the parsed description.
func buildScene(f *sceneFile) (*scene.RenderWindow, error) {
	if len(f.Renderers) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidScene, "scene file declares no renderers")
	}

	win := scene.NewRenderWindow()
	if f.Window.ID != "" {
		win.SetReferenceID(f.Window.ID)
	}
	if f.Window.Layers > 0 {
		win.SetNumberOfLayers(f.Window.Layers)
	}

	for i, rs := range f.Renderers {
		ren, err := buildRenderer(&rs)
		if err != nil {
			return nil, fmt.Errorf("renderer %d: %w", i, err)
		}
		win.AddRenderer(ren)
	}
	return win, nil
}

func buildRenderer(rs *rendererSection) (*scene.Renderer, error) {
	ren := scene.NewRenderer()
	if rs.ID != "" {
		ren.SetReferenceID(rs.ID)
	}
	if rs.Background != nil {
		bg, err := vec3(rs.Background, "background")
		if err != nil {
			return nil, err
		}
		ren.SetBackground(bg)
	}

	if rs.Camera != nil {
		if err := applyCamera(ren.ActiveCamera(), rs.Camera); err != nil {
			return nil, err
		}
	}

	for i, as := range rs.Actors {
		actor, err := buildActor(&as)
		if err != nil {
			return nil, fmt.Errorf("actor %d: %w", i, err)
		}
		ren.AddViewProp(actor)
	}

	for i, ls := range rs.Lights {
		light, err := buildLight(&ls)
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		ren.AddLight(light)
	}
	return ren, nil
}

func applyCamera(cam *scene.Camera, cs *cameraSection) error {
	if cs.ID != "" {
		cam.SetReferenceID(cs.ID)
	}
	if cs.Position != nil {
		v, err := vec3(cs.Position, "camera position")
		if err != nil {
			return err
		}
		cam.SetPosition(v)
	}
	if cs.FocalPoint != nil {
		v, err := vec3(cs.FocalPoint, "camera focal_point")
		if err != nil {
			return err
		}
		cam.SetFocalPoint(v)
	}
	if cs.ViewUp != nil {
		v, err := vec3(cs.ViewUp, "camera view_up")
		if err != nil {
			return err
		}
		cam.SetViewUp(v)
	}
	return nil
}

func buildActor(as *actorSection) (*scene.Actor, error) {
	dataset, err := buildSource(as)
	if err != nil {
		return nil, err
	}

	mapper := scene.NewMapper()
	mapper.SetInputData(dataset)

	lut := scene.NewLookupTable()
	mapper.SetLookupTable(lut)

	if as.Scalars != "" {
		arr := scene.AddElevationScalars(dataset, as.Scalars)
		if arr == nil {
			return nil, apperrors.New(apperrors.ErrCodeInvalidScene, "source has no points to derive scalars from")
		}
		mapper.SetScalarVisibility(true)
		mapper.SetScalarMode(scene.ScalarModePointFieldData)
		mapper.SetColorByArrayName(as.Scalars)

		lo, hi := arr.Range(0)
		if len(as.ScalarRange) == 2 {
			lo, hi = as.ScalarRange[0], as.ScalarRange[1]
		}
		mapper.SetScalarRange(lo, hi)
		lut.SetRange(lo, hi)
	}

	actor := scene.NewActor()
	if as.ID != "" {
		actor.SetReferenceID(as.ID)
	}
	actor.SetMapper(mapper)
	if as.Visible != nil {
		actor.SetVisibility(*as.Visible)
	}

	prop := actor.Property()
	if as.Color != nil {
		c, err := vec3(as.Color, "actor color")
		if err != nil {
			return nil, err
		}
		prop.SetColor(c)
	}
	if as.Opacity != nil {
		prop.SetOpacity(*as.Opacity)
	}
	if as.Representation != "" {
		rep, err := parseRepresentation(as.Representation)
		if err != nil {
			return nil, err
		}
		prop.SetRepresentation(rep)
	}
	return actor, nil
}

func buildSource(as *actorSection) (*scene.PolyData, error) {
	switch as.Source {
	case "cone", "":
		resolution := as.Resolution
		if resolution == 0 {
			resolution = 24
		}
		radius := as.Radius
		if radius == 0 {
			radius = 0.5
		}
		height := as.Height
		if height == 0 {
			height = 1.0
		}
		return scene.NewConePolyData(resolution, radius, height), nil
	case "plane":
		return scene.NewPlanePolyData(), nil
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidScene, "unknown source %q (must be 'cone' or 'plane')", as.Source)
	}
}

func buildLight(ls *lightSection) (*scene.Light, error) {
	light := scene.NewLight()
	if ls.ID != "" {
		light.SetReferenceID(ls.ID)
	}
	if ls.Type != "" {
		t, err := parseLightType(ls.Type)
		if err != nil {
			return nil, err
		}
		light.SetLightType(t)
	}
	if ls.Intensity != nil {
		light.SetIntensity(*ls.Intensity)
	}
	if ls.Color != nil {
		c, err := vec3(ls.Color, "light color")
		if err != nil {
			return nil, err
		}
		light.SetDiffuseColor(c)
	}
	if ls.Position != nil {
		v, err := vec3(ls.Position, "light position")
		if err != nil {
			return nil, err
		}
		light.SetPosition(v)
	}
	return light, nil
}

// =============================================================================
// Parsing Helpers
// =============================================================================

func parseRepresentation(s string) (int, error) {
	switch s {
	case "points":
		return scene.RepresentationPoints, nil
	case "wireframe":
		return scene.RepresentationWireframe, nil
	case "surface":
		return scene.RepresentationSurface, nil
	default:
		return 0, apperrors.New(apperrors.ErrCodeInvalidScene, "unknown representation %q (must be 'points', 'wireframe', or 'surface')", s)
	}
}

func parseLightType(s string) (scene.LightType, error) {
	switch s {
	case "scene":
		return scene.SceneLight, nil
	case "head":
		return scene.HeadLight, nil
	case "camera":
		return scene.CameraLight, nil
	default:
		return 0, apperrors.New(apperrors.ErrCodeInvalidScene, "unknown light type %q (must be 'scene', 'head', or 'camera')", s)
	}
}

func vec3(v []float64, field string) ([3]float64, error) {
	if len(v) != 3 {
		return [3]float64{}, apperrors.New(apperrors.ErrCodeInvalidScene, "%s must have exactly 3 components, got %d", field, len(v))
	}
	return [3]float64{v[0], v[1], v[2]}, nil
}
