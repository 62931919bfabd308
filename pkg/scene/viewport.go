package scene

// Renderer owns one viewport of a render window: an active camera, a set
// of drawable view props, and a set of lights. Prop and light membership
// is synchronized to receivers through dependency diffing, never by
// re-sending the full collections.
type Renderer struct {
	object

	activeCamera *Camera
	viewProps    []Object
	lights       []*Light

	background  [3]float64
	background2 [3]float64
	viewport    [4]float64

	twoSidedLighting  bool
	lightFollowCamera bool
	layer             int

	preserveColorBuffer bool
	preserveDepthBuffer bool

	nearClippingPlaneTolerance float64
	clippingRangeExpansion     float64

	useShadows            bool
	useDepthPeeling       bool
	occlusionRatio        float64
	maximumNumberOfPeels  int
}

// NewRenderer creates a renderer covering the full window.
func NewRenderer() *Renderer {
	return &Renderer{
		object:                     newObject(),
		viewport:                   [4]float64{0, 0, 1, 1},
		twoSidedLighting:           true,
		lightFollowCamera:          true,
		nearClippingPlaneTolerance: 0.01,
		clippingRangeExpansion:     0.5,
		maximumNumberOfPeels:       4,
	}
}

// ClassName returns the renderer's class tag.
func (r *Renderer) ClassName() string { return "vtkRenderer" }

// ActiveCamera returns the renderer's camera, creating a default one on
// first access. It is never nil.
func (r *Renderer) ActiveCamera() *Camera {
	if r.activeCamera == nil {
		r.activeCamera = NewCamera()
	}
	return r.activeCamera
}

// SetActiveCamera assigns the renderer's camera.
func (r *Renderer) SetActiveCamera(c *Camera) { r.activeCamera = c }

// AddViewProp appends a drawable prop.
func (r *Renderer) AddViewProp(p Object) {
	if p != nil {
		r.viewProps = append(r.viewProps, p)
	}
}

// RemoveViewProp removes a prop by identity. Unknown props are ignored.
func (r *Renderer) RemoveViewProp(p Object) {
	for i, existing := range r.viewProps {
		if existing == p {
			r.viewProps = append(r.viewProps[:i], r.viewProps[i+1:]...)
			return
		}
	}
}

// ViewProps returns the ordered prop collection as a read-only view.
func (r *Renderer) ViewProps() []Object { return r.viewProps }

// AddLight appends a light.
func (r *Renderer) AddLight(l *Light) {
	if l != nil {
		r.lights = append(r.lights, l)
	}
}

// RemoveLight removes a light by identity. Unknown lights are ignored.
func (r *Renderer) RemoveLight(l *Light) {
	for i, existing := range r.lights {
		if existing == l {
			r.lights = append(r.lights[:i], r.lights[i+1:]...)
			return
		}
	}
}

// Lights returns the ordered light collection as a read-only view.
func (r *Renderer) Lights() []*Light { return r.lights }

// Background returns the primary background color.
func (r *Renderer) Background() [3]float64 { return r.background }

// SetBackground sets the primary background color.
func (r *Renderer) SetBackground(c [3]float64) { r.background = c }

// Background2 returns the secondary (gradient) background color.
func (r *Renderer) Background2() [3]float64 { return r.background2 }

// SetBackground2 sets the secondary background color.
func (r *Renderer) SetBackground2(c [3]float64) { r.background2 = c }

// Viewport returns the normalized viewport rectangle (xmin, ymin, xmax, ymax).
func (r *Renderer) Viewport() [4]float64 { return r.viewport }

// SetViewport sets the normalized viewport rectangle.
func (r *Renderer) SetViewport(v [4]float64) { r.viewport = v }

// TwoSidedLighting reports whether both face sides are lit.
func (r *Renderer) TwoSidedLighting() bool { return r.twoSidedLighting }

// SetTwoSidedLighting toggles two-sided lighting.
func (r *Renderer) SetTwoSidedLighting(v bool) { r.twoSidedLighting = v }

// LightFollowCamera reports whether lights track camera motion.
func (r *Renderer) LightFollowCamera() bool { return r.lightFollowCamera }

// SetLightFollowCamera toggles light tracking.
func (r *Renderer) SetLightFollowCamera(v bool) { r.lightFollowCamera = v }

// Layer returns the window layer index.
func (r *Renderer) Layer() int { return r.layer }

// SetLayer sets the window layer index.
func (r *Renderer) SetLayer(v int) { r.layer = v }

// PreserveColorBuffer reports whether the color buffer is kept between
// layers.
func (r *Renderer) PreserveColorBuffer() bool { return r.preserveColorBuffer }

// SetPreserveColorBuffer toggles color buffer preservation.
func (r *Renderer) SetPreserveColorBuffer(v bool) { r.preserveColorBuffer = v }

// PreserveDepthBuffer reports whether the depth buffer is kept between
// layers.
func (r *Renderer) PreserveDepthBuffer() bool { return r.preserveDepthBuffer }

// SetPreserveDepthBuffer toggles depth buffer preservation.
func (r *Renderer) SetPreserveDepthBuffer(v bool) { r.preserveDepthBuffer = v }

// NearClippingPlaneTolerance returns the near-plane tolerance.
func (r *Renderer) NearClippingPlaneTolerance() float64 { return r.nearClippingPlaneTolerance }

// SetNearClippingPlaneTolerance sets the near-plane tolerance.
func (r *Renderer) SetNearClippingPlaneTolerance(v float64) { r.nearClippingPlaneTolerance = v }

// ClippingRangeExpansion returns the clipping range padding factor.
func (r *Renderer) ClippingRangeExpansion() float64 { return r.clippingRangeExpansion }

// SetClippingRangeExpansion sets the clipping range padding factor.
func (r *Renderer) SetClippingRangeExpansion(v float64) { r.clippingRangeExpansion = v }

// UseShadows reports whether shadow rendering is enabled.
func (r *Renderer) UseShadows() bool { return r.useShadows }

// SetUseShadows toggles shadow rendering.
func (r *Renderer) SetUseShadows(v bool) { r.useShadows = v }

// UseDepthPeeling reports whether depth peeling is used for translucency.
func (r *Renderer) UseDepthPeeling() bool { return r.useDepthPeeling }

// SetUseDepthPeeling toggles depth peeling.
func (r *Renderer) SetUseDepthPeeling(v bool) { r.useDepthPeeling = v }

// OcclusionRatio returns the depth peeling termination ratio.
func (r *Renderer) OcclusionRatio() float64 { return r.occlusionRatio }

// SetOcclusionRatio sets the depth peeling termination ratio.
func (r *Renderer) SetOcclusionRatio(v float64) { r.occlusionRatio = v }

// MaximumNumberOfPeels returns the depth peeling pass limit.
func (r *Renderer) MaximumNumberOfPeels() int { return r.maximumNumberOfPeels }

// SetMaximumNumberOfPeels sets the depth peeling pass limit.
func (r *Renderer) SetMaximumNumberOfPeels(v int) { r.maximumNumberOfPeels = v }

// Camera defines the viewpoint of a renderer.
type Camera struct {
	object

	focalPoint [3]float64
	position   [3]float64
	viewUp     [3]float64
}

// NewCamera creates a camera at the default viewpoint looking down -z.
func NewCamera() *Camera {
	return &Camera{
		object:   newObject(),
		position: [3]float64{0, 0, 1},
		viewUp:   [3]float64{0, 1, 0},
	}
}

// ClassName returns the camera's class tag.
func (c *Camera) ClassName() string { return "vtkCamera" }

// FocalPoint returns the look-at point.
func (c *Camera) FocalPoint() [3]float64 { return c.focalPoint }

// SetFocalPoint sets the look-at point.
func (c *Camera) SetFocalPoint(v [3]float64) { c.focalPoint = v }

// Position returns the camera position.
func (c *Camera) Position() [3]float64 { return c.position }

// SetPosition sets the camera position.
func (c *Camera) SetPosition(v [3]float64) { c.position = v }

// ViewUp returns the camera up vector.
func (c *Camera) ViewUp() [3]float64 { return c.viewUp }

// SetViewUp sets the camera up vector.
func (c *Camera) SetViewUp(v [3]float64) { c.viewUp = v }

// LightType distinguishes how a light is positioned relative to the camera
// and the scene.
type LightType int

const (
	// HeadLight tracks the camera exactly: position at the camera, pointing
	// at the focal point.
	HeadLight LightType = iota + 1
	// CameraLight is specified in a coordinate system fixed to the camera.
	CameraLight
	// SceneLight lives in world coordinates.
	SceneLight
)

// String returns the receiver-side light type tag. Unknown values map to
// SceneLight, matching the receiver's most permissive interpretation.
func (t LightType) String() string {
	switch t {
	case HeadLight:
		return "HeadLight"
	case CameraLight:
		return "CameraLight"
	default:
		return "SceneLight"
	}
}

// Light illuminates a renderer's scene.
type Light struct {
	object

	switchOn  bool
	intensity float64

	diffuseColor [3]float64
	position     [3]float64
	focalPoint   [3]float64

	positional        bool
	exponent          float64
	coneAngle         float64
	attenuation       [3]float64
	lightType         LightType
	shadowAttenuation float64
}

// NewLight creates a white scene light at the default position.
func NewLight() *Light {
	return &Light{
		object:            newObject(),
		switchOn:          true,
		intensity:         1,
		diffuseColor:      [3]float64{1, 1, 1},
		position:          [3]float64{0, 0, 1},
		exponent:          1,
		coneAngle:         30,
		attenuation:       [3]float64{1, 0, 0},
		lightType:         SceneLight,
		shadowAttenuation: 1,
	}
}

// ClassName returns the light's class tag.
func (l *Light) ClassName() string { return "vtkLight" }

// Switch reports whether the light is on.
func (l *Light) Switch() bool { return l.switchOn }

// SetSwitch turns the light on or off.
func (l *Light) SetSwitch(v bool) { l.switchOn = v }

// Intensity returns the light brightness.
func (l *Light) Intensity() float64 { return l.intensity }

// SetIntensity sets the light brightness.
func (l *Light) SetIntensity(v float64) { l.intensity = v }

// DiffuseColor returns the light color.
func (l *Light) DiffuseColor() [3]float64 { return l.diffuseColor }

// SetDiffuseColor sets the light color.
func (l *Light) SetDiffuseColor(c [3]float64) { l.diffuseColor = c }

// Position returns the light position.
func (l *Light) Position() [3]float64 { return l.position }

// SetPosition sets the light position.
func (l *Light) SetPosition(v [3]float64) { l.position = v }

// FocalPoint returns the point the light aims at.
func (l *Light) FocalPoint() [3]float64 { return l.focalPoint }

// SetFocalPoint sets the point the light aims at.
func (l *Light) SetFocalPoint(v [3]float64) { l.focalPoint = v }

// Positional reports whether the light is a point/spot light rather than
// directional.
func (l *Light) Positional() bool { return l.positional }

// SetPositional toggles positional lighting.
func (l *Light) SetPositional(v bool) { l.positional = v }

// Exponent returns the spot light falloff exponent.
func (l *Light) Exponent() float64 { return l.exponent }

// SetExponent sets the spot light falloff exponent.
func (l *Light) SetExponent(v float64) { l.exponent = v }

// ConeAngle returns the spot light cone angle in degrees.
func (l *Light) ConeAngle() float64 { return l.coneAngle }

// SetConeAngle sets the spot light cone angle in degrees.
func (l *Light) SetConeAngle(v float64) { l.coneAngle = v }

// AttenuationValues returns the constant/linear/quadratic attenuation.
func (l *Light) AttenuationValues() [3]float64 { return l.attenuation }

// SetAttenuationValues sets the attenuation coefficients.
func (l *Light) SetAttenuationValues(v [3]float64) { l.attenuation = v }

// LightType returns the positioning mode.
func (l *Light) LightType() LightType { return l.lightType }

// SetLightType sets the positioning mode.
func (l *Light) SetLightType(t LightType) { l.lightType = t }

// ShadowAttenuation returns how much shadowed regions are darkened.
func (l *Light) ShadowAttenuation() float64 { return l.shadowAttenuation }

// SetShadowAttenuation sets the shadow darkening factor.
func (l *Light) SetShadowAttenuation(v float64) { l.shadowAttenuation = v }
