// Package pkg provides the core libraries for Scenewire scene serialization.
//
// # Overview
//
// Scenewire converts VTK-style scene graphs into a JSON wire format that
// remote viewers (such as vtk.js clients) can consume incrementally. Large
// numeric arrays travel out of band through a content-addressed cache, so
// repeated serialization passes only ship what actually changed. The pkg
// directory is organized into three main areas:
//
//  1. Domain model ([scene], [wire]) - scene objects and the wire format
//  2. Serialization ([serializer], [session]) - per-type dispatch and
//     array caching with dependency diffing
//  3. Infrastructure ([mirror], [snapshot], [render]) - orchestration,
//     snapshot stores, and graph visualization
//
// # Architecture
//
// The typical data flow through Scenewire:
//
//	Scene graph (RenderWindow → Renderer → Actor → Mapper → PolyData)
//	         ↓
//	    [serializer] package (per-type dispatch, recursive descent)
//	         ↓
//	    [session] package (content-addressed array cache, dependency diff)
//	         ↓
//	    [wire] package (Node tree, JSON encoding)
//	         ↓
//	    [snapshot] package (memory, file, Redis, or MongoDB publish)
//
// # Quick Start
//
// Serialize a scene and publish a snapshot:
//
//	import (
//	    "context"
//	    "github.com/scenewire/scenewire/pkg/mirror"
//	    "github.com/scenewire/scenewire/pkg/scene"
//	    "github.com/scenewire/scenewire/pkg/snapshot"
//	)
//
//	// 1. Build a scene
//	mapper := scene.NewMapper()
//	mapper.SetInputData(scene.NewConePolyData(24, 0.5, 1.0))
//	mapper.SetLookupTable(scene.NewLookupTable())
//	actor := scene.NewActor()
//	actor.SetMapper(mapper)
//	ren := scene.NewRenderer()
//	ren.AddViewProp(actor)
//	win := scene.NewRenderWindow()
//	win.AddRenderer(ren)
//
//	// 2. Run a serialization pass
//	runner := mirror.NewRunner(nil, snapshot.NewMemoryStore(), nil)
//	result, _ := runner.Synchronize(context.Background(), win, mirror.Options{})
//
//	// 3. Fetch an array payload on demand
//	data, _ := runner.FetchData(context.Background(), hash, true)
//
// # Main Packages
//
// ## Domain Model
//
// [scene] - Scene graph objects mirroring the VTK rendering model: render
// windows, renderers, cameras, lights, actors, mappers, lookup tables, and
// polygonal datasets with typed data arrays.
//
// [wire] - The JSON wire format: Node trees with properties, call lists,
// and dependency lists, plus array descriptors that reference cached
// payloads by content hash.
//
// ## Serialization
//
// [serializer] - Registry of per-type serializer functions. A pass walks
// the scene graph recursively, emitting one wire node per object and
// recording setter calls that rebuild the object remotely.
//
// [session] - Per-session state across passes: the content-addressed
// array cache (hash → payload), reference counting, idle-array sweeping,
// and dependency history used to diff successive passes.
//
// ## Infrastructure
//
// [mirror] - Orchestration of the three-stage pass (serialize, encode,
// publish) with options validation, timing, and structured logging.
//
// [snapshot] - Snapshot stores for published scene state: memory, file,
// Redis, and MongoDB backends behind one Store interface.
//
// [render] - DOT and SVG rendering of wire trees for debugging scene
// structure.
//
// [errors] - Coded errors with user-facing messages and input validation
// helpers (content hashes, paths, snapshot keys).
//
// [observability] - Structured logging setup shared by the CLI and HTTP
// server.
//
// [buildinfo] - Build-time version information set via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...             # All tests
//	go test ./pkg/serializer/...  # Specific package
//	go test -short ./pkg/...      # Skip Graphviz-backed SVG tests
//
// [scene]: https://pkg.go.dev/github.com/scenewire/scenewire/pkg/scene
// [wire]: https://pkg.go.dev/github.com/scenewire/scenewire/pkg/wire
// [serializer]: https://pkg.go.dev/github.com/scenewire/scenewire/pkg/serializer
// [session]: https://pkg.go.dev/github.com/scenewire/scenewire/pkg/session
// [mirror]: https://pkg.go.dev/github.com/scenewire/scenewire/pkg/mirror
// [snapshot]: https://pkg.go.dev/github.com/scenewire/scenewire/pkg/snapshot
// [render]: https://pkg.go.dev/github.com/scenewire/scenewire/pkg/render
// [errors]: https://pkg.go.dev/github.com/scenewire/scenewire/pkg/errors
// [observability]: https://pkg.go.dev/github.com/scenewire/scenewire/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/scenewire/scenewire/pkg/buildinfo
package pkg
