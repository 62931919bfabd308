// Package session tracks per-connection synchronization state.
//
// A remote view of a scene graph is kept current by repeatedly serializing
// the scene and shipping only what changed. The Context carries the two
// pieces of state that make that incremental:
//   - A content-addressed array cache. Binary payloads are registered under
//     their content hash during serialization and fetched by the remote end
//     over a separate channel, so unchanged buffers are never retransmitted.
//   - Dependency history. For every tracked collection (a renderer's props,
//     its lights, a window's renderers) the Context remembers the child ids
//     sent last pass and turns the difference into attach/detach calls.
//
// # Usage
//
// Create one Context per remote connection and reuse it across passes:
//
//	sess := session.NewContext(session.WithLogger(logger))
//
//	// Serialization registers arrays as a side effect.
//	node, err := registry.Serialize(ctx, nil, window, "", sess, 0)
//
//	// The data channel serves payloads by hash.
//	data, err := sess.CachedArray(ctx, hash, true)
//
//	// Periodically drop arrays nobody referenced recently.
//	evicted := sess.SweepArrays(ctx, time.Minute)
package session

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/scenewire/scenewire/pkg/errors"
	"github.com/scenewire/scenewire/pkg/observability"
	"github.com/scenewire/scenewire/pkg/scene"
	"github.com/scenewire/scenewire/pkg/wire"
)

// =============================================================================
// Context
// =============================================================================

// entry is one cached array with the bookkeeping needed for staleness
// detection and eviction.
type entry struct {
	array      *scene.DataArray
	mtime      uint64 // modification counter observed at caching time
	accessedAt time.Time
}

// Context holds the synchronization state for one remote connection.
// It is safe for concurrent use.
type Context struct {
	mu            sync.Mutex
	arrays        map[string]*entry
	sent          map[string][]string
	ignoreHistory bool
	debug         bool
	logger        *log.Logger
	now           func() time.Time
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger used for cache diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(c *Context) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDebug enables verbose diagnostics for skipped nodes and cache traffic.
func WithDebug(debug bool) Option {
	return func(c *Context) { c.debug = debug }
}

// withClock overrides the time source. Tests only.
func withClock(now func() time.Time) Option {
	return func(c *Context) { c.now = now }
}

// NewContext creates an empty synchronization context.
func NewContext(opts ...Option) *Context {
	c := &Context{
		arrays: make(map[string]*entry),
		sent:   make(map[string][]string),
		logger: log.NewWithOptions(io.Discard, log.Options{}),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Debug reports whether verbose diagnostics are enabled.
func (c *Context) Debug() bool { return c.debug }

// Logger returns the context's logger.
func (c *Context) Logger() *log.Logger { return c.logger }

// =============================================================================
// Array Cache
// =============================================================================

// CacheArray registers or refreshes an array under its content hash.
// The cache takes its own reference on the array; a replaced array is
// released.
func (c *Context) CacheArray(ctx context.Context, hash string, arr *scene.DataArray) {
	if arr == nil {
		return
	}

	c.mu.Lock()
	if old, ok := c.arrays[hash]; ok && old.array != arr {
		old.array.Release()
		arr.Retain()
	} else if !ok {
		arr.Retain()
	}
	c.arrays[hash] = &entry{
		array:      arr,
		mtime:      arr.MTime(),
		accessedAt: c.now(),
	}
	c.mu.Unlock()

	observability.Cache().OnArrayCached(ctx, hash, len(arr.Bytes()))
}

// CachedArray returns the payload registered under hash. Binary mode returns
// the raw little-endian bytes; otherwise the payload is base64-encoded text.
//
// Wide index arrays are narrowed to 32-bit unsigned values on the way out,
// matching the typed-array tag advertised in the descriptor. Negative
// indices clamp to the maximum value.
//
// A mismatch between the stored modification counter and the live buffer is
// logged and reported to the cache hooks, but the read proceeds: the caller
// already holds a descriptor for these bytes and a refusal here would stall
// the remote view.
func (c *Context) CachedArray(ctx context.Context, hash string, binary bool) ([]byte, error) {
	c.mu.Lock()
	e, ok := c.arrays[hash]
	if !ok {
		c.mu.Unlock()
		return nil, errors.New(errors.ErrCodeArrayNotFound, "no cached array for hash %q", hash)
	}
	arr := e.array
	stale := e.mtime != arr.MTime()
	e.accessedAt = c.now()
	c.mu.Unlock()

	if stale {
		c.logger.Warn("cached array changed since registration", "hash", hash)
		observability.Cache().OnStaleRead(ctx, hash)
	}

	data := narrowForWire(arr)
	if binary {
		return data, nil
	}

	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(data)))
	base64.StdEncoding.Encode(encoded, data)
	return encoded, nil
}

// ArrayCount returns the number of cached arrays.
func (c *Context) ArrayCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.arrays)
}

// Hashes returns the hashes of all cached arrays, in no particular order.
func (c *Context) Hashes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	hashes := make([]string, 0, len(c.arrays))
	for h := range c.arrays {
		hashes = append(hashes, h)
	}
	return hashes
}

// SweepArrays evicts arrays that only the cache still references and that
// have not been accessed within the window. Returns the number evicted.
func (c *Context) SweepArrays(ctx context.Context, window time.Duration) int {
	cutoff := c.now().Add(-window)

	c.mu.Lock()
	var evicted []string
	for hash, e := range c.arrays {
		if e.array.RefCount() == 1 && e.accessedAt.Before(cutoff) {
			e.array.Release()
			delete(c.arrays, hash)
			evicted = append(evicted, hash)
		}
	}
	c.mu.Unlock()

	for _, hash := range evicted {
		observability.Cache().OnArrayEvicted(ctx, hash)
	}
	return len(evicted)
}

// narrowForWire converts the array's buffer to the layout advertised by its
// typed-array tag. Wide index arrays become uint32; everything else ships
// as stored.
func narrowForWire(arr *scene.DataArray) []byte {
	if arr.DataType() != scene.IdType {
		out := make([]byte, len(arr.Bytes()))
		copy(out, arr.Bytes())
		return out
	}

	n := arr.Size()
	out := make([]byte, 4*n)
	for i := 0; i < n; i++ {
		v := arr.Int64Value(i)
		var u uint32
		switch {
		case v < 0:
			u = math.MaxUint32
		case v > math.MaxUint32:
			u = math.MaxUint32
		default:
			u = uint32(v)
		}
		binary.LittleEndian.PutUint32(out[4*i:], u)
	}
	return out
}

// =============================================================================
// Dependency History
// =============================================================================

// BuildDependencyCalls diffs the child ids sent in the previous pass against
// newIDs and returns the calls that bring the remote collection in line:
// one addOp per new child in newIDs order, then one removeOp per vanished
// child in previous-pass order. Additions precede removals so the remote
// collection never passes through an empty state.
//
// The tracked list for key is overwritten with newIDs regardless of whether
// any calls were produced.
func (c *Context) BuildDependencyCalls(key string, newIDs []string, addOp, removeOp string) []wire.Call {
	c.mu.Lock()
	defer c.mu.Unlock()

	var old []string
	if !c.ignoreHistory {
		old = c.sent[key]
	}

	oldSet := make(map[string]struct{}, len(old))
	for _, id := range old {
		oldSet[id] = struct{}{}
	}
	newSet := make(map[string]struct{}, len(newIDs))
	for _, id := range newIDs {
		newSet[id] = struct{}{}
	}

	var calls []wire.Call
	for _, id := range newIDs {
		if _, ok := oldSet[id]; !ok {
			calls = append(calls, wire.NewCall(addOp, wire.WrapID(id)))
		}
	}
	for _, id := range old {
		if _, ok := newSet[id]; !ok {
			calls = append(calls, wire.NewCall(removeOp, wire.WrapID(id)))
		}
	}

	c.sent[key] = append([]string(nil), newIDs...)
	return calls
}

// LastDependencyList returns a copy of the child ids recorded for key.
func (c *Context) LastDependencyList(key string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.sent[key]...)
}

// SetDependencyList overwrites the recorded child ids for key.
func (c *Context) SetDependencyList(key string, ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent[key] = append([]string(nil), ids...)
}

// SetIgnoreLastDependencies controls whether the next diffs treat every
// child as new. Enable it to force a full resend after the remote end
// reconnects with empty state.
func (c *Context) SetIgnoreLastDependencies(ignore bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ignoreHistory = ignore
}
