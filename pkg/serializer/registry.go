// Package serializer converts scene-graph objects into wire node records.
//
// The entry point is the [Registry]: a per-class dispatch table mapping
// class tags to [Handler] functions. Serialization walks the scene graph
// top-down; each handler emits one node record, recursing through the
// registry for its children and registering binary payloads in the session's
// array cache as a side effect.
//
// A handler that cannot emit yet (an actor without a mapper, a dataset
// without points) returns a nil node and no error. The object simply does
// not appear in this pass and is retried on the next one. Errors are
// reserved for usage violations that no later pass can repair.
//
// # Usage
//
//	reg := serializer.NewDefault(serializer.WithLogger(logger))
//	node, err := reg.Serialize(ctx, nil, window, "", nil, 0)
package serializer

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/scenewire/scenewire/pkg/observability"
	"github.com/scenewire/scenewire/pkg/scene"
	"github.com/scenewire/scenewire/pkg/session"
	"github.com/scenewire/scenewire/pkg/wire"
)

// DefaultMaxDepth bounds recursion through the scene graph. Well-formed
// scenes are a handful of levels deep; hitting the bound means a dependency
// cycle or a runaway composite.
const DefaultMaxDepth = 64

// Handler emits the node record for one scene object. Handlers recurse
// through the registry for child objects and return (nil, nil) when the
// object is not ready to be serialized.
type Handler func(ctx context.Context, r *Registry, parent, instance scene.Object, id string, sess *session.Context, depth int) (*wire.Node, error)

// Registry dispatches scene objects to per-class handlers. Construct one
// per synchronization concern; there is no package-level instance.
type Registry struct {
	handlers map[string]Handler
	sess     *session.Context
	logger   *log.Logger
	maxDepth int
}

// Option configures a Registry.
type Option func(*Registry)

// WithSession sets the default synchronization context used when Serialize
// is called without one.
func WithSession(sess *session.Context) Option {
	return func(r *Registry) {
		if sess != nil {
			r.sess = sess
		}
	}
}

// WithLogger sets the logger for dispatch diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMaxDepth overrides the recursion bound.
func WithMaxDepth(depth int) Option {
	return func(r *Registry) {
		if depth > 0 {
			r.maxDepth = depth
		}
	}
}

// New creates an empty registry. Callers register handlers themselves;
// most want [NewDefault] instead.
func New(opts ...Option) *Registry {
	r := &Registry{
		handlers: make(map[string]Handler),
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.sess == nil {
		r.sess = session.NewContext(session.WithLogger(r.logger))
	}
	return r
}

// NewDefault creates a registry with handlers for every built-in scene
// class.
func NewDefault(opts ...Option) *Registry {
	r := New(opts...)

	// View props
	r.Register("vtkActor", serializeActor)

	// Mappers
	r.Register("vtkMapper", serializeMapper)

	// Visual properties
	r.Register("vtkProperty", serializeProperty)

	// Color maps
	r.Register("vtkLookupTable", serializeLookupTable)
	r.Register("vtkColorTransferFunction", serializeColorTransferFunction)

	// Datasets
	r.Register("vtkPolyData", serializePolyData)
	r.Register("vtkMultiBlockDataSet", serializeComposite)

	// Viewports
	r.Register("vtkRenderer", serializeRenderer)
	r.Register("vtkCamera", serializeCamera)
	r.Register("vtkLight", serializeLight)

	// Windows
	r.Register("vtkRenderWindow", serializeRenderWindow)

	return r
}

// Register binds a handler to a class tag. Lookup is by exact match; a
// handler registered for "vtkActor" does not cover subclasses.
func (r *Registry) Register(className string, h Handler) {
	r.handlers[className] = h
}

// Session returns the registry's default synchronization context.
func (r *Registry) Session() *session.Context { return r.sess }

// Serialize emits the node record for instance and, recursively, its
// children. An empty id defaults to the instance's reference identity; a
// nil sess defaults to the registry's own context. The returned node is nil
// when the object is not ready or has no registered handler.
func (r *Registry) Serialize(ctx context.Context, parent, instance scene.Object, id string, sess *session.Context, depth int) (*wire.Node, error) {
	if instance == nil {
		return nil, nil
	}
	if id == "" {
		id = instance.ReferenceID()
	}
	if sess == nil {
		sess = r.sess
	}

	class := instance.ClassName()

	if depth > r.maxDepth {
		r.logger.Debug("max serialization depth exceeded", "type", class, "id", id, "depth", depth)
		observability.Sync().OnNodeSkipped(ctx, class, id, "max depth exceeded")
		return nil, nil
	}

	handler, ok := r.handlers[class]
	if !ok {
		r.logger.Debug("no serializer registered", "type", class, "id", id)
		observability.Sync().OnNodeSkipped(ctx, class, id, "no serializer")
		return nil, nil
	}

	node, err := handler(ctx, r, parent, instance, id, sess, depth)
	if err != nil {
		return nil, err
	}
	if node == nil {
		observability.Sync().OnNodeSkipped(ctx, class, id, "not ready")
		return nil, nil
	}

	observability.Sync().OnNodeSerialized(ctx, class, id)
	return node, nil
}

// SerializePass serializes a whole scene rooted at instance and reports the
// pass to the sync hooks, including the number of nodes emitted and arrays
// registered.
func (r *Registry) SerializePass(ctx context.Context, instance scene.Object, sess *session.Context) (*wire.Node, error) {
	if sess == nil {
		sess = r.sess
	}

	start := time.Now()
	node, err := r.Serialize(ctx, nil, instance, "", sess, 0)
	observability.Sync().OnPassComplete(ctx, node.Walk(nil), sess.ArrayCount(), time.Since(start), err)
	return node, err
}

// refID returns the reference identity of obj, or "" for a nil parent.
func refID(obj scene.Object) string {
	if obj == nil {
		return ""
	}
	return obj.ReferenceID()
}
