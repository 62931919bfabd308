package scene

// Actor is a drawable view prop: a surface (via its mapper) plus a visual
// property describing how to shade it. Both children are structurally
// required for serialization unless the actor is hidden.
type Actor struct {
	object

	visibility bool
	pickable   bool
	dragable   bool
	useBounds  bool

	origin   [3]float64
	position [3]float64
	scale    [3]float64

	forceOpaque      bool
	forceTranslucent bool

	mapper   *Mapper
	property *Property
}

// NewActor creates a visible actor with identity transform defaults.
func NewActor() *Actor {
	return &Actor{
		object:     newObject(),
		visibility: true,
		pickable:   true,
		dragable:   true,
		useBounds:  true,
		scale:      [3]float64{1, 1, 1},
	}
}

// ClassName returns the actor's class tag.
func (a *Actor) ClassName() string { return "vtkActor" }

// Visibility reports whether the actor is shown.
func (a *Actor) Visibility() bool { return a.visibility }

// SetVisibility shows or hides the actor.
func (a *Actor) SetVisibility(v bool) { a.visibility = v }

// Pickable reports whether the actor participates in picking.
func (a *Actor) Pickable() bool { return a.pickable }

// SetPickable sets pickability.
func (a *Actor) SetPickable(v bool) { a.pickable = v }

// Dragable reports whether the actor can be dragged.
func (a *Actor) Dragable() bool { return a.dragable }

// SetDragable sets dragability.
func (a *Actor) SetDragable(v bool) { a.dragable = v }

// UseBounds reports whether the actor contributes to scene bounds.
func (a *Actor) UseBounds() bool { return a.useBounds }

// SetUseBounds sets bounds participation.
func (a *Actor) SetUseBounds(v bool) { a.useBounds = v }

// Origin returns the rotation/scale origin.
func (a *Actor) Origin() [3]float64 { return a.origin }

// SetOrigin sets the rotation/scale origin.
func (a *Actor) SetOrigin(v [3]float64) { a.origin = v }

// Position returns the translation.
func (a *Actor) Position() [3]float64 { return a.position }

// SetPosition sets the translation.
func (a *Actor) SetPosition(v [3]float64) { a.position = v }

// Scale returns the per-axis scale.
func (a *Actor) Scale() [3]float64 { return a.scale }

// SetScale sets the per-axis scale.
func (a *Actor) SetScale(v [3]float64) { a.scale = v }

// ForceOpaque reports the opaque rendering override.
func (a *Actor) ForceOpaque() bool { return a.forceOpaque }

// SetForceOpaque sets the opaque rendering override.
func (a *Actor) SetForceOpaque(v bool) { a.forceOpaque = v }

// ForceTranslucent reports the translucent rendering override.
func (a *Actor) ForceTranslucent() bool { return a.forceTranslucent }

// SetForceTranslucent sets the translucent rendering override.
func (a *Actor) SetForceTranslucent(v bool) { a.forceTranslucent = v }

// Mapper returns the actor's mapper, or nil if unset.
func (a *Actor) Mapper() *Mapper { return a.mapper }

// SetMapper assigns the actor's mapper.
func (a *Actor) SetMapper(m *Mapper) { a.mapper = m }

// Property returns the actor's visual property, creating a default one on
// first access. It is never nil.
func (a *Actor) Property() *Property {
	if a.property == nil {
		a.property = NewProperty()
	}
	return a.property
}

// SetProperty assigns the actor's visual property.
func (a *Actor) SetProperty(p *Property) { a.property = p }

var (
	_ MapperProvider   = (*Actor)(nil)
	_ PropertyProvider = (*Actor)(nil)
)

// Representation modes for surface drawing.
const (
	RepresentationPoints    = 0
	RepresentationWireframe = 1
	RepresentationSurface   = 2
)

// Interpolation modes for shading.
const (
	InterpolationFlat    = 0
	InterpolationGouraud = 1
	InterpolationPhong   = 2
)

// Property describes how an actor's surface is shaded: colors, lighting
// coefficients, edge rendering, and line/point sizing.
type Property struct {
	object

	representation int
	interpolation  int

	color         [3]float64
	diffuseColor  [3]float64
	ambientColor  [3]float64
	specularColor [3]float64
	edgeColor     [3]float64

	ambient       float64
	diffuse       float64
	specular      float64
	specularPower float64
	opacity       float64

	edgeVisibility   bool
	backfaceCulling  bool
	frontfaceCulling bool
	lighting         bool

	pointSize float64
	lineWidth float64
}

// NewProperty creates a white, opaque surface property.
func NewProperty() *Property {
	white := [3]float64{1, 1, 1}
	return &Property{
		object:         newObject(),
		representation: RepresentationSurface,
		interpolation:  InterpolationGouraud,
		color:          white,
		diffuseColor:   white,
		ambientColor:   white,
		specularColor:  white,
		edgeColor:      [3]float64{0, 0, 0},
		diffuse:        1,
		specularPower:  1,
		opacity:        1,
		lighting:       true,
		pointSize:      1,
		lineWidth:      1,
	}
}

// ClassName returns the property's class tag.
func (p *Property) ClassName() string { return "vtkProperty" }

// Representation returns the drawing mode (points/wireframe/surface).
func (p *Property) Representation() int { return p.representation }

// SetRepresentation sets the drawing mode.
func (p *Property) SetRepresentation(v int) { p.representation = v }

// Interpolation returns the shading mode.
func (p *Property) Interpolation() int { return p.interpolation }

// SetInterpolation sets the shading mode.
func (p *Property) SetInterpolation(v int) { p.interpolation = v }

// Color returns the flat color.
func (p *Property) Color() [3]float64 { return p.color }

// SetColor sets the flat color and the three lighting colors, matching the
// aggregate setter semantics the receiver expects.
func (p *Property) SetColor(v [3]float64) {
	p.color = v
	p.diffuseColor = v
	p.ambientColor = v
	p.specularColor = v
}

// DiffuseColor returns the diffuse lighting color.
func (p *Property) DiffuseColor() [3]float64 { return p.diffuseColor }

// SetDiffuseColor sets the diffuse lighting color.
func (p *Property) SetDiffuseColor(v [3]float64) { p.diffuseColor = v }

// AmbientColor returns the ambient lighting color.
func (p *Property) AmbientColor() [3]float64 { return p.ambientColor }

// SetAmbientColor sets the ambient lighting color.
func (p *Property) SetAmbientColor(v [3]float64) { p.ambientColor = v }

// SpecularColor returns the specular lighting color.
func (p *Property) SpecularColor() [3]float64 { return p.specularColor }

// SetSpecularColor sets the specular lighting color.
func (p *Property) SetSpecularColor(v [3]float64) { p.specularColor = v }

// EdgeColor returns the edge rendering color.
func (p *Property) EdgeColor() [3]float64 { return p.edgeColor }

// SetEdgeColor sets the edge rendering color.
func (p *Property) SetEdgeColor(v [3]float64) { p.edgeColor = v }

// Ambient returns the ambient lighting coefficient.
func (p *Property) Ambient() float64 { return p.ambient }

// SetAmbient sets the ambient lighting coefficient.
func (p *Property) SetAmbient(v float64) { p.ambient = v }

// Diffuse returns the diffuse lighting coefficient.
func (p *Property) Diffuse() float64 { return p.diffuse }

// SetDiffuse sets the diffuse lighting coefficient.
func (p *Property) SetDiffuse(v float64) { p.diffuse = v }

// Specular returns the specular lighting coefficient.
func (p *Property) Specular() float64 { return p.specular }

// SetSpecular sets the specular lighting coefficient.
func (p *Property) SetSpecular(v float64) { p.specular = v }

// SpecularPower returns the specular exponent.
func (p *Property) SpecularPower() float64 { return p.specularPower }

// SetSpecularPower sets the specular exponent.
func (p *Property) SetSpecularPower(v float64) { p.specularPower = v }

// Opacity returns the surface opacity.
func (p *Property) Opacity() float64 { return p.opacity }

// SetOpacity sets the surface opacity.
func (p *Property) SetOpacity(v float64) { p.opacity = v }

// EdgeVisibility reports whether edges are drawn.
func (p *Property) EdgeVisibility() bool { return p.edgeVisibility }

// SetEdgeVisibility sets edge drawing.
func (p *Property) SetEdgeVisibility(v bool) { p.edgeVisibility = v }

// BackfaceCulling reports whether back faces are culled.
func (p *Property) BackfaceCulling() bool { return p.backfaceCulling }

// SetBackfaceCulling sets back-face culling.
func (p *Property) SetBackfaceCulling(v bool) { p.backfaceCulling = v }

// FrontfaceCulling reports whether front faces are culled.
func (p *Property) FrontfaceCulling() bool { return p.frontfaceCulling }

// SetFrontfaceCulling sets front-face culling.
func (p *Property) SetFrontfaceCulling(v bool) { p.frontfaceCulling = v }

// Lighting reports whether lighting is applied.
func (p *Property) Lighting() bool { return p.lighting }

// SetLighting toggles lighting.
func (p *Property) SetLighting(v bool) { p.lighting = v }

// PointSize returns the point rendering size.
func (p *Property) PointSize() float64 { return p.pointSize }

// SetPointSize sets the point rendering size.
func (p *Property) SetPointSize(v float64) { p.pointSize = v }

// LineWidth returns the line rendering width.
func (p *Property) LineWidth() float64 { return p.lineWidth }

// SetLineWidth sets the line rendering width.
func (p *Property) SetLineWidth(v float64) { p.lineWidth = v }
