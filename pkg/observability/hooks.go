// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about serialization passes and
// array cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This keeps the core library free of observability framework imports
// while allowing different backends (OpenTelemetry, Prometheus, ...).
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSyncHooks(&mySyncHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Sync().OnNodeSerialized(ctx, class, id)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Synchronization Hooks
// =============================================================================

// SyncHooks receives events from serialization passes.
type SyncHooks interface {
	// OnNodeSerialized records a successfully emitted node record.
	OnNodeSerialized(ctx context.Context, class, id string)

	// OnNodeSkipped records a suppressed node (not ready or unknown type).
	OnNodeSkipped(ctx context.Context, class, id, reason string)

	// OnPassComplete records a finished serialization pass.
	OnPassComplete(ctx context.Context, nodes, arrays int, duration time.Duration, err error)
}

// =============================================================================
// Array Cache Hooks
// =============================================================================

// CacheHooks receives events from array cache operations.
type CacheHooks interface {
	// OnArrayCached records a cache write or refresh.
	OnArrayCached(ctx context.Context, hash string, size int)

	// OnStaleRead records a read whose stored modification counter no longer
	// matches the live buffer. The read proceeds anyway; this hook is the
	// escalation point for callers wanting stricter behavior.
	OnStaleRead(ctx context.Context, hash string)

	// OnArrayEvicted records an entry removed by an eviction sweep.
	OnArrayEvicted(ctx context.Context, hash string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSyncHooks is a no-op implementation of SyncHooks.
type NoopSyncHooks struct{}

func (NoopSyncHooks) OnNodeSerialized(context.Context, string, string)               {}
func (NoopSyncHooks) OnNodeSkipped(context.Context, string, string, string)          {}
func (NoopSyncHooks) OnPassComplete(context.Context, int, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnArrayCached(context.Context, string, int) {}
func (NoopCacheHooks) OnStaleRead(context.Context, string)        {}
func (NoopCacheHooks) OnArrayEvicted(context.Context, string)     {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	syncHooks  SyncHooks  = NoopSyncHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetSyncHooks registers custom serialization hooks.
// This should be called once at application startup.
func SetSyncHooks(h SyncHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		syncHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Sync returns the registered serialization hooks.
func Sync() SyncHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return syncHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	syncHooks = NoopSyncHooks{}
	cacheHooks = NoopCacheHooks{}
}
