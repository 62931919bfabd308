package mirror

import (
	"bytes"
	"context"
	"testing"
	"time"

	apperrors "github.com/scenewire/scenewire/pkg/errors"
	"github.com/scenewire/scenewire/pkg/scene"
	"github.com/scenewire/scenewire/pkg/snapshot"
)

func testWindow() *scene.RenderWindow {
	lut := scene.NewLookupTable()
	lut.SetReferenceID("lut-1")

	mapper := scene.NewMapper()
	mapper.SetReferenceID("mapper-1")
	mapper.SetInputData(scene.NewConePolyData(8, 0.5, 1.0))
	mapper.SetLookupTable(lut)

	actor := scene.NewActor()
	actor.SetReferenceID("actor-1")
	actor.SetMapper(mapper)

	ren := scene.NewRenderer()
	ren.SetReferenceID("ren-1")
	ren.ActiveCamera().SetReferenceID("cam-1")
	ren.AddViewProp(actor)

	win := scene.NewRenderWindow()
	win.SetReferenceID("win-1")
	win.AddRenderer(ren)
	return win
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults failed: %v", err)
	}
	if opts.SessionID == "" {
		t.Error("expected generated session id")
	}
	if opts.SnapshotTTL != DefaultSnapshotTTL {
		t.Errorf("SnapshotTTL = %v, want %v", opts.SnapshotTTL, DefaultSnapshotTTL)
	}
	if opts.Logger == nil {
		t.Error("expected default logger")
	}

	bad := Options{SnapshotTTL: -time.Second}
	if err := bad.ValidateAndSetDefaults(); err == nil {
		t.Error("expected error for negative ttl")
	}
}

func TestSynchronizePublishesSnapshot(t *testing.T) {
	ctx := context.Background()
	store := snapshot.NewMemoryStore()
	runner := NewRunner(nil, store, nil)
	defer runner.Close()

	result, err := runner.Synchronize(ctx, testWindow(), Options{SessionID: "s1"})
	if err != nil {
		t.Fatalf("Synchronize failed: %v", err)
	}

	if result.Root == nil || result.Root.Type != "vtkRenderWindow" {
		t.Fatalf("unexpected root: %+v", result.Root)
	}
	if result.Stats.Nodes < 5 {
		t.Errorf("Nodes = %d, want at least window/renderer/actor/mapper/dataset", result.Stats.Nodes)
	}
	if result.Stats.Arrays == 0 {
		t.Error("expected cached arrays after pass")
	}
	if result.Key == "" {
		t.Fatal("expected snapshot key")
	}

	stored, ok, err := store.Get(ctx, result.Key)
	if err != nil || !ok {
		t.Fatalf("expected snapshot stored, ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(stored, result.Data) {
		t.Error("stored snapshot differs from result data")
	}
}

func TestSynchronizeSkipPublish(t *testing.T) {
	ctx := context.Background()
	store := snapshot.NewMemoryStore()
	runner := NewRunner(nil, store, nil)

	result, err := runner.Synchronize(ctx, testWindow(), Options{SkipPublish: true})
	if err != nil {
		t.Fatalf("Synchronize failed: %v", err)
	}
	if result.Key != "" {
		t.Errorf("expected empty key, got %q", result.Key)
	}
	if store.Len() != 0 {
		t.Errorf("expected no stored snapshots, got %d", store.Len())
	}
}

func TestSynchronizeNilRoot(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	if _, err := runner.Synchronize(context.Background(), nil, Options{}); err == nil {
		t.Error("expected error for nil root")
	}
}

func TestFetchData(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(nil, nil, nil)

	if _, err := runner.Synchronize(ctx, testWindow(), Options{SkipPublish: true}); err != nil {
		t.Fatalf("Synchronize failed: %v", err)
	}

	hashes := runner.Registry.Session().Hashes()
	if len(hashes) == 0 {
		t.Fatal("expected cached arrays")
	}

	raw, err := runner.FetchData(ctx, hashes[0], true)
	if err != nil {
		t.Fatalf("FetchData failed: %v", err)
	}
	if len(raw) == 0 {
		t.Error("expected binary payload")
	}

	encoded, err := runner.FetchData(ctx, hashes[0], false)
	if err != nil {
		t.Fatalf("FetchData (text) failed: %v", err)
	}
	if len(encoded) <= len(raw)/2 {
		t.Error("expected base64 payload longer than binary")
	}

	if _, err := runner.FetchData(ctx, "not a hash!", true); err == nil {
		t.Error("expected error for malformed hash")
	}
}

func TestFetchSnapshot(t *testing.T) {
	ctx := context.Background()
	store := snapshot.NewMemoryStore()
	runner := NewRunner(nil, store, nil)

	result, err := runner.Synchronize(ctx, testWindow(), Options{SessionID: "s1"})
	if err != nil {
		t.Fatalf("Synchronize failed: %v", err)
	}

	data, err := runner.FetchSnapshot(ctx, result.Key)
	if err != nil {
		t.Fatalf("FetchSnapshot failed: %v", err)
	}
	if !bytes.Equal(data, result.Data) {
		t.Error("fetched snapshot differs from published data")
	}

	if _, err := runner.FetchSnapshot(ctx, snapshot.Key("other", "win-9")); !apperrors.Is(err, apperrors.ErrCodeSnapshotNotFound) {
		t.Errorf("expected snapshot not found, got %v", err)
	}
}

func TestSweepKeepsReferencedArrays(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(nil, nil, nil)

	if _, err := runner.Synchronize(ctx, testWindow(), Options{SkipPublish: true}); err != nil {
		t.Fatalf("Synchronize failed: %v", err)
	}

	// The scene still references every array, so nothing is evictable even
	// with a zero idle window.
	if evicted := runner.Sweep(ctx, time.Nanosecond); evicted != 0 {
		t.Errorf("evicted %d arrays still referenced by the scene", evicted)
	}
}
