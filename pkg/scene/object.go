// Package scene provides the live, mutable scene-graph object model that
// serialization mirrors to remote renderers.
//
// Objects expose the introspection surface the serializer consumes: a class
// tag, a stable reference identity, typed numeric arrays, named sub-objects,
// and ordered child collections. The serializer treats this surface as a
// black box and never reaches into unexported state.
//
// The model is deliberately close to the class tags the receiving renderer
// understands (vtkActor, vtkRenderer, ...) so that node records map onto
// receiver-side constructors without translation.
//
// Objects are not safe for concurrent use. A serialization pass assumes the
// graph is momentarily quiescent; concurrent mutation requires external
// synchronization.
package scene

import "github.com/google/uuid"

// Object is the minimal introspection surface every scene-graph node
// provides.
type Object interface {
	// ClassName returns the concrete class tag used for serializer dispatch
	// and as the wire-level type field.
	ClassName() string

	// ReferenceID returns the stable opaque identity of this object. IDs are
	// assigned at construction and never change.
	ReferenceID() string
}

// DataObject is a geometry container that may or may not be composite
// (multi-block).
type DataObject interface {
	Object

	// IsComposite reports whether the container holds multiple blocks that
	// must be flattened before serialization.
	IsComposite() bool
}

// Capability interfaces for structural roles. Each is resolved once per
// node by the serializer instead of probing individual accessors.

// MapperProvider is implemented by view props that carry a mapper.
type MapperProvider interface {
	Mapper() *Mapper
}

// PropertyProvider is implemented by view props that carry a visual
// property.
type PropertyProvider interface {
	Property() *Property
}

// InputProvider is implemented by mappers that carry an input dataset.
type InputProvider interface {
	InputDataObject() DataObject
}

// LookupTableProvider is implemented by mappers that carry a color map.
type LookupTableProvider interface {
	LookupTable() ScalarsToColors
}

// object is the common base embedded by all concrete scene types. It
// assigns a unique reference identity at construction.
type object struct {
	id string
}

func newObject() object {
	return object{id: uuid.NewString()}
}

// ReferenceID returns the object's stable identity.
func (o *object) ReferenceID() string { return o.id }

// SetReferenceID overrides the generated identity. Callers use this for
// deterministic identities across processes; the id must stay unique within
// the scene.
func (o *object) SetReferenceID(id string) { o.id = id }
