// Package render turns serialized wire trees into visual diagrams.
//
// The primary output is Graphviz DOT, with SVG rendering on top. Diagrams
// show the node hierarchy with method-call edges, which is the quickest way
// to inspect what a synchronization pass actually sent.
package render

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/scenewire/scenewire/pkg/wire"
)

// Options configures diagram rendering.
type Options struct {
	// Detailed includes property counts and array hashes in node labels.
	// When false, only the class name and id are shown.
	Detailed bool
}

// ToDOT converts a wire tree to Graphviz DOT format. Edges follow the
// dependency hierarchy and are labeled with the method that attaches the
// child, when one exists. The resulting DOT string can be rendered with
// [RenderSVG].
func ToDOT(root *wire.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph scene {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	writeNode(&buf, root, opts)
	buf.WriteString("}\n")
	return buf.String()
}

func writeNode(buf *bytes.Buffer, n *wire.Node, opts Options) {
	if n == nil {
		return
	}

	fmt.Fprintf(buf, "  %q [label=%q];\n", n.ID, fmtLabel(n, opts.Detailed))

	methods := callMethodsByTarget(n)
	for _, dep := range n.Dependencies {
		if dep == nil {
			continue
		}
		if method, ok := methods[dep.ID]; ok {
			fmt.Fprintf(buf, "  %q -> %q [label=%q];\n", n.ID, dep.ID, method)
		} else {
			fmt.Fprintf(buf, "  %q -> %q;\n", n.ID, dep.ID)
		}
		writeNode(buf, dep, opts)
	}
}

func fmtLabel(n *wire.Node, detailed bool) string {
	label := n.Type + "\n" + n.ID
	if !detailed {
		return label
	}

	parts := []string{fmt.Sprintf("props: %d", len(n.Properties))}
	if hashes := arrayHashes(n); len(hashes) > 0 {
		parts = append(parts, fmt.Sprintf("arrays: %d", len(hashes)))
		parts = append(parts, hashes...)
	}
	return label + "\n" + strings.Join(parts, "\n")
}

// arrayHashes collects the content hashes of every array descriptor carried
// in the node's properties, in key order.
func arrayHashes(n *wire.Node) []string {
	var hashes []string
	for _, k := range slices.Sorted(maps.Keys(n.Properties)) {
		switch v := n.Properties[k].(type) {
		case *wire.ArrayDescriptor:
			if v != nil {
				hashes = append(hashes, v.Hash)
			}
		case []*wire.ArrayDescriptor:
			for _, d := range v {
				if d != nil {
					hashes = append(hashes, d.Hash)
				}
			}
		}
	}
	return hashes
}

// callMethodsByTarget maps dependency ids to the method that attaches them.
// Only calls whose first argument is a wrapped instance reference count.
func callMethodsByTarget(n *wire.Node) map[string]string {
	methods := make(map[string]string)
	for _, call := range n.Calls {
		if len(call.Args) == 0 {
			continue
		}
		arg, ok := call.Args[0].(string)
		if !ok || !strings.HasPrefix(arg, "instance:${") || !strings.HasSuffix(arg, "}") {
			continue
		}
		id := arg[len("instance:${") : len(arg)-1]
		if _, seen := methods[id]; !seen {
			methods[id] = call.Method
		}
	}
	return methods
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
