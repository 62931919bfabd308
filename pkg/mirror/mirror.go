// Package mirror keeps a remote copy of a scene graph synchronized.
//
// This package ties the serializer, the per-session array cache, and the
// snapshot store into one synchronization loop that CLI and server
// components share. By centralizing this logic, both entry points publish
// snapshots and serve array payloads the same way.
//
// # Architecture
//
// A synchronization pass has three stages:
//
//  1. Serialize: Walk the scene graph and produce the wire tree, caching
//     every data array under its content hash
//  2. Encode: Marshal the wire tree to JSON
//  3. Publish: Store the encoded tree in the snapshot store under a stable
//     session key
//
// Array payloads are fetched separately through FetchData, mirroring how a
// remote viewer requests binary buffers on demand after receiving the tree.
//
// # Usage
//
// Create a Runner and synchronize:
//
//	runner := mirror.NewRunner(nil, store, logger)
//	opts := mirror.Options{SessionID: "session-1"}
//	result, err := runner.Synchronize(ctx, window, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Key, result.Stats.Nodes)
package mirror

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/scenewire/scenewire/pkg/wire"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultSnapshotTTL is how long published snapshots stay retrievable.
	DefaultSnapshotTTL = 24 * time.Hour

	// DefaultSweepWindow is the idle window after which unreferenced arrays
	// are evicted from the session cache.
	DefaultSweepWindow = 5 * time.Minute
)

// =============================================================================
// Options - Synchronization Configuration
// =============================================================================

// Options contains configuration for a synchronization pass.
// This struct supports JSON serialization for server requests.
type Options struct {
	// SessionID identifies the viewer session. Snapshot keys are derived
	// from it, so passes with the same id overwrite the same snapshot.
	// Defaults to a random UUID.
	SessionID string `json:"session_id,omitempty"`

	// SnapshotTTL bounds how long the published snapshot lives.
	SnapshotTTL time.Duration `json:"snapshot_ttl,omitempty"`

	// IgnoreHistory forces full dependency adds instead of diffs against
	// the previous pass.
	IgnoreHistory bool `json:"ignore_history,omitempty"`

	// SkipPublish serializes without writing to the snapshot store.
	SkipPublish bool `json:"skip_publish,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.SnapshotTTL < 0 {
		return fmt.Errorf("snapshot_ttl must not be negative")
	}
	if o.SessionID == "" {
		o.SessionID = uuid.NewString()
	}
	if o.SnapshotTTL == 0 {
		o.SnapshotTTL = DefaultSnapshotTTL
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// =============================================================================
// Result - Pass Outputs
// =============================================================================

// Result contains the outputs of a synchronization pass.
type Result struct {
	// Root is the serialized wire tree.
	Root *wire.Node

	// Data is the JSON encoding of Root.
	Data []byte

	// Key is the snapshot key the pass was published under. Empty when
	// publishing was skipped.
	Key string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains synchronization statistics.
type Stats struct {
	// Nodes is the number of wire nodes in the tree.
	Nodes int

	// Arrays is the number of data arrays held in the session cache.
	Arrays int

	// Duration is the wall time of the serialize stage.
	Duration time.Duration
}
