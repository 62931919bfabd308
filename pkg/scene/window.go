package scene

// RenderWindow is the root of a scene graph: an ordered collection of
// renderers stacked into layers. Renderer membership is synchronized to
// receivers through dependency diffing.
type RenderWindow struct {
	object

	renderers      []*Renderer
	numberOfLayers int
}

// NewRenderWindow creates a single-layer window with no renderers.
func NewRenderWindow() *RenderWindow {
	return &RenderWindow{object: newObject(), numberOfLayers: 1}
}

// ClassName returns the window's class tag.
func (w *RenderWindow) ClassName() string { return "vtkRenderWindow" }

// AddRenderer appends a renderer.
func (w *RenderWindow) AddRenderer(r *Renderer) {
	if r != nil {
		w.renderers = append(w.renderers, r)
	}
}

// RemoveRenderer removes a renderer by identity. Unknown renderers are
// ignored.
func (w *RenderWindow) RemoveRenderer(r *Renderer) {
	for i, existing := range w.renderers {
		if existing == r {
			w.renderers = append(w.renderers[:i], w.renderers[i+1:]...)
			return
		}
	}
}

// Renderers returns the ordered renderer collection as a read-only view.
func (w *RenderWindow) Renderers() []*Renderer { return w.renderers }

// NumberOfLayers returns the layer count.
func (w *RenderWindow) NumberOfLayers() int { return w.numberOfLayers }

// SetNumberOfLayers sets the layer count.
func (w *RenderWindow) SetNumberOfLayers(n int) { w.numberOfLayers = n }
