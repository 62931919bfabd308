package session

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"reflect"
	"testing"
	"time"

	"github.com/scenewire/scenewire/pkg/errors"
	"github.com/scenewire/scenewire/pkg/observability"
	"github.com/scenewire/scenewire/pkg/scene"
	"github.com/scenewire/scenewire/pkg/wire"
)

func TestBuildDependencyCalls(t *testing.T) {
	tests := []struct {
		name     string
		previous []string
		next     []string
		want     []wire.Call
	}{
		{
			name:     "first pass adds everything",
			previous: nil,
			next:     []string{"a", "b"},
			want: []wire.Call{
				wire.NewCall("addViewProp", "instance:${a}"),
				wire.NewCall("addViewProp", "instance:${b}"),
			},
		},
		{
			name:     "adds before removes",
			previous: []string{"a", "b", "c"},
			next:     []string{"b", "c", "d"},
			want: []wire.Call{
				wire.NewCall("addViewProp", "instance:${d}"),
				wire.NewCall("removeViewProp", "instance:${a}"),
			},
		},
		{
			name:     "unchanged list produces no calls",
			previous: []string{"a", "b"},
			next:     []string{"a", "b"},
			want:     nil,
		},
		{
			name:     "emptied list removes in old order",
			previous: []string{"a", "b"},
			next:     nil,
			want: []wire.Call{
				wire.NewCall("removeViewProp", "instance:${a}"),
				wire.NewCall("removeViewProp", "instance:${b}"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := NewContext()
			if tt.previous != nil {
				sess.SetDependencyList("r1-props", tt.previous)
			}

			got := sess.BuildDependencyCalls("r1-props", tt.next, "addViewProp", "removeViewProp")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildDependencyCalls() = %v, want %v", got, tt.want)
			}

			// The tracked list is always overwritten.
			if last := sess.LastDependencyList("r1-props"); !reflect.DeepEqual(last, append([]string(nil), tt.next...)) {
				t.Errorf("LastDependencyList() = %v, want %v", last, tt.next)
			}
		})
	}
}

func TestBuildDependencyCallsKeysAreIndependent(t *testing.T) {
	sess := NewContext()

	sess.BuildDependencyCalls("r1-props", []string{"actor"}, "addViewProp", "removeViewProp")
	calls := sess.BuildDependencyCalls("r1-lights", []string{"light"}, "addLight", "removeLight")

	want := []wire.Call{wire.NewCall("addLight", "instance:${light}")}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
	if got := sess.LastDependencyList("r1-props"); !reflect.DeepEqual(got, []string{"actor"}) {
		t.Errorf("r1-props list = %v, want [actor]", got)
	}
}

func TestBuildDependencyCallsIgnoreHistory(t *testing.T) {
	sess := NewContext()
	sess.SetDependencyList("w1-renderers", []string{"a", "b"})
	sess.SetIgnoreLastDependencies(true)

	calls := sess.BuildDependencyCalls("w1-renderers", []string{"a", "b"}, "addRenderer", "removeRenderer")

	want := []wire.Call{
		wire.NewCall("addRenderer", "instance:${a}"),
		wire.NewCall("addRenderer", "instance:${b}"),
	}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestCacheArrayRetainsAndReleases(t *testing.T) {
	ctx := context.Background()
	sess := NewContext()

	arr := scene.NewFloat32Array("pts", 3, []float32{0, 0, 0})
	sess.CacheArray(ctx, "h1", arr)
	if arr.RefCount() != 2 {
		t.Fatalf("RefCount = %d, want 2 (creator + cache)", arr.RefCount())
	}

	// Refreshing the same array under the same hash does not stack references.
	sess.CacheArray(ctx, "h1", arr)
	if arr.RefCount() != 2 {
		t.Fatalf("RefCount after refresh = %d, want 2", arr.RefCount())
	}

	// A different array under the same hash releases the old one.
	repl := scene.NewFloat32Array("pts", 3, []float32{1, 1, 1})
	sess.CacheArray(ctx, "h1", repl)
	if arr.RefCount() != 1 {
		t.Errorf("replaced RefCount = %d, want 1", arr.RefCount())
	}
	if repl.RefCount() != 2 {
		t.Errorf("replacement RefCount = %d, want 2", repl.RefCount())
	}
}

func TestCachedArrayBinaryAndText(t *testing.T) {
	ctx := context.Background()
	sess := NewContext()

	arr := scene.NewFloat32Array("pts", 1, []float32{1, 2})
	sess.CacheArray(ctx, "h1", arr)

	raw, err := sess.CachedArray(ctx, "h1", true)
	if err != nil {
		t.Fatalf("CachedArray(binary) error = %v", err)
	}
	if !reflect.DeepEqual(raw, arr.Bytes()) {
		t.Errorf("binary payload = %v, want %v", raw, arr.Bytes())
	}

	text, err := sess.CachedArray(ctx, "h1", false)
	if err != nil {
		t.Fatalf("CachedArray(text) error = %v", err)
	}
	want := base64.StdEncoding.EncodeToString(arr.Bytes())
	if string(text) != want {
		t.Errorf("text payload = %q, want %q", text, want)
	}
}

func TestCachedArrayUnknownHash(t *testing.T) {
	sess := NewContext()
	_, err := sess.CachedArray(context.Background(), "nope", true)
	if !errors.Is(err, errors.ErrCodeArrayNotFound) {
		t.Errorf("error = %v, want code %v", err, errors.ErrCodeArrayNotFound)
	}
}

func TestCachedArrayNarrowsWideIndices(t *testing.T) {
	ctx := context.Background()
	sess := NewContext()

	arr := scene.NewIdTypeArray("conn", []int64{3, -1, 70000})
	sess.CacheArray(ctx, "h1", arr)

	raw, err := sess.CachedArray(ctx, "h1", true)
	if err != nil {
		t.Fatalf("CachedArray error = %v", err)
	}
	if len(raw) != 12 {
		t.Fatalf("payload length = %d, want 12", len(raw))
	}

	want := []uint32{3, 0xFFFFFFFF, 70000}
	for i, w := range want {
		if got := binary.LittleEndian.Uint32(raw[4*i:]); got != w {
			t.Errorf("index %d = %d, want %d", i, got, w)
		}
	}
}

type recordingCacheHooks struct {
	observability.NoopCacheHooks
	stale   []string
	evicted []string
}

func (h *recordingCacheHooks) OnStaleRead(_ context.Context, hash string) {
	h.stale = append(h.stale, hash)
}

func (h *recordingCacheHooks) OnArrayEvicted(_ context.Context, hash string) {
	h.evicted = append(h.evicted, hash)
}

func TestCachedArrayStaleReadProceeds(t *testing.T) {
	hooks := &recordingCacheHooks{}
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	ctx := context.Background()
	sess := NewContext()

	arr := scene.NewFloat32Array("pts", 1, []float32{1})
	sess.CacheArray(ctx, "h1", arr)
	arr.SetValue(0, 2) // bumps the modification counter

	raw, err := sess.CachedArray(ctx, "h1", true)
	if err != nil {
		t.Fatalf("stale read should proceed, got error %v", err)
	}
	if len(raw) != 4 {
		t.Errorf("payload length = %d, want 4", len(raw))
	}
	if !reflect.DeepEqual(hooks.stale, []string{"h1"}) {
		t.Errorf("stale hooks = %v, want [h1]", hooks.stale)
	}
}

func TestSweepArrays(t *testing.T) {
	hooks := &recordingCacheHooks{}
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	ctx := context.Background()
	now := time.Now()
	clock := func() time.Time { return now }
	sess := NewContext(withClock(clock))

	idle := scene.NewFloat32Array("idle", 1, []float32{1})
	held := scene.NewFloat32Array("held", 1, []float32{2})
	fresh := scene.NewFloat32Array("fresh", 1, []float32{3})

	sess.CacheArray(ctx, "idle", idle)
	sess.CacheArray(ctx, "held", held)
	idle.Release() // cache holds the last reference
	// held keeps its creator reference

	now = now.Add(2 * time.Minute)
	sess.CacheArray(ctx, "fresh", fresh)
	fresh.Release()

	evicted := sess.SweepArrays(ctx, time.Minute)
	if evicted != 1 {
		t.Fatalf("SweepArrays() = %d, want 1", evicted)
	}
	if !reflect.DeepEqual(hooks.evicted, []string{"idle"}) {
		t.Errorf("evicted hooks = %v, want [idle]", hooks.evicted)
	}
	if sess.ArrayCount() != 2 {
		t.Errorf("ArrayCount = %d, want 2", sess.ArrayCount())
	}
	if _, err := sess.CachedArray(ctx, "idle", true); err == nil {
		t.Error("evicted array should not be readable")
	}
}
