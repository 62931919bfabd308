// Package wire defines the JSON-compatible wire representation consumed by
// remote vtk.js-style renderers.
//
// The unit of exchange is the [Node]: a structured description of one
// scene-graph object, carrying a flat property map, an ordered list of
// mutation calls the receiver must apply, and the child nodes those calls
// reference. Field names are a fixed contract with the receiver and must
// not change.
//
// Binary payloads never travel inside the node tree. Arrays are referenced
// by content hash (see [ArrayDescriptor]) and fetched out of band.
package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Node is the wire unit produced per scene-graph object.
//
// Calls and Dependencies distinguish "absent" from "present but empty":
// a nil slice is omitted from the JSON entirely, while an empty non-nil
// slice is emitted as []. Receivers treat an empty calls list on a known
// node as "exists but hidden", which is a different instruction from the
// field being absent.
type Node struct {
	// Parent is the identity of the enclosing node, empty at the root
	// (serialized as null).
	Parent string

	// ID is the stable opaque identity for this node. It doubles as the
	// wire reference and the diff-tracking key.
	ID string

	// Type is the node's concrete class tag (e.g. "vtkRenderer").
	Type string

	// Properties is the flat attribute map, type-specific.
	Properties map[string]any

	// Calls is the ordered sequence of mutations the receiver must apply.
	Calls []Call

	// Dependencies are child nodes that must be materialized before the
	// calls referencing them are applied.
	Dependencies []*Node
}

// MarshalJSON emits the fixed wire layout. Nil calls/dependencies are
// omitted; empty non-nil slices are emitted as [].
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	buf.WriteString(`"parent":`)
	if n.Parent == "" {
		buf.WriteString("null")
	} else {
		writeJSON(&buf, n.Parent)
	}

	buf.WriteString(`,"id":`)
	writeJSON(&buf, n.ID)

	buf.WriteString(`,"type":`)
	writeJSON(&buf, n.Type)

	buf.WriteString(`,"properties":`)
	props := n.Properties
	if props == nil {
		props = map[string]any{}
	}
	writeJSON(&buf, props)

	if n.Calls != nil {
		buf.WriteString(`,"calls":`)
		writeJSON(&buf, n.Calls)
	}
	if n.Dependencies != nil {
		buf.WriteString(`,"dependencies":`)
		writeJSON(&buf, n.Dependencies)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores a node, preserving the nil/empty distinction for
// calls and dependencies.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw struct {
		Parent       *string        `json:"parent"`
		ID           string         `json:"id"`
		Type         string         `json:"type"`
		Properties   map[string]any `json:"properties"`
		Calls        []Call         `json:"calls"`
		Dependencies []*Node        `json:"dependencies"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	n.Parent = ""
	if raw.Parent != nil {
		n.Parent = *raw.Parent
	}
	n.ID = raw.ID
	n.Type = raw.Type
	n.Properties = raw.Properties
	n.Calls = raw.Calls
	n.Dependencies = raw.Dependencies
	return nil
}

// Walk visits the node and all its dependencies depth-first in emission
// order. It returns the number of nodes visited. Walk is nil-safe.
func (n *Node) Walk(visit func(*Node)) int {
	if n == nil {
		return 0
	}
	count := 1
	if visit != nil {
		visit(n)
	}
	for _, dep := range n.Dependencies {
		count += dep.Walk(visit)
	}
	return count
}

// Call is one mutation the receiving renderer must apply, serialized as a
// 2-element tuple: [methodName, [argument, ...]].
type Call struct {
	Method string
	Args   []any
}

// NewCall creates a call with the given method and arguments.
func NewCall(method string, args ...any) Call {
	if args == nil {
		args = []any{}
	}
	return Call{Method: method, Args: args}
}

// MarshalJSON emits the [method, args] tuple form.
func (c Call) MarshalJSON() ([]byte, error) {
	args := c.Args
	if args == nil {
		args = []any{}
	}
	return json.Marshal([2]any{c.Method, args})
}

// UnmarshalJSON parses the [method, args] tuple form.
func (c *Call) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 2 {
		return fmt.Errorf("call must be a 2-element tuple, got %d elements", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &c.Method); err != nil {
		return fmt.Errorf("call method: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &c.Args); err != nil {
		return fmt.Errorf("call args: %w", err)
	}
	return nil
}

// WrapID wraps a node identity into its wire reference form. All node
// references on the wire use this form, never the bare id.
func WrapID(id string) string {
	return "instance:${" + id + "}"
}

// writeJSON marshals v into buf. Marshal errors are surfaced as a JSON
// null; the only values passed here are maps, slices, and strings, which
// cannot fail.
func writeJSON(buf *bytes.Buffer, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		buf.WriteString("null")
		return
	}
	buf.Write(data)
}
