package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Sync hooks
	s := NoopSyncHooks{}
	s.OnNodeSerialized(ctx, "vtkActor", "actor-1")
	s.OnNodeSkipped(ctx, "vtkMapper", "mapper-1", "no input")
	s.OnPassComplete(ctx, 12, 3, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnArrayCached(ctx, "abc123_48f", 48)
	c.OnStaleRead(ctx, "abc123_48f")
	c.OnArrayEvicted(ctx, "abc123_48f")
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Sync().(NoopSyncHooks); !ok {
		t.Error("Sync() should return NoopSyncHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customSync := &testSyncHooks{}
	SetSyncHooks(customSync)
	if Sync() != customSync {
		t.Error("SetSyncHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Sync().(NoopSyncHooks); !ok {
		t.Error("Reset() should restore NoopSyncHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testSyncHooks{}
	SetSyncHooks(custom)

	// Setting nil should be ignored
	SetSyncHooks(nil)

	if Sync() != custom {
		t.Error("SetSyncHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testSyncHooks struct{ NoopSyncHooks }
type testCacheHooks struct{ NoopCacheHooks }
