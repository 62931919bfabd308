package snapshot

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	if _, ok, err := store.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	data := []byte(`{"id":"win-1"}`)
	if err := store.Set(ctx, "k1", data, 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok, err := store.Get(ctx, "k1")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("got %q, want %q", got, data)
	}

	if err := store.Delete(ctx, "k1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "k1"); ok {
		t.Error("expected miss after delete")
	}
}

func TestMemoryStoreExpiration(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	if err := store.Set(ctx, "short", []byte("x"), time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, ok, _ := store.Get(ctx, "short"); ok {
		t.Error("expected expired entry to miss")
	}
	if store.Len() != 0 {
		t.Errorf("expected expired entry removed, len=%d", store.Len())
	}
}

func TestMemoryStoreCopiesData(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte("original")
	_ = store.Set(ctx, "k", data, 0)
	data[0] = 'X'

	got, _, _ := store.Get(ctx, "k")
	if string(got) != "original" {
		t.Errorf("stored data mutated: %q", got)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	defer store.Close()

	data := []byte(`{"type":"vtkRenderWindow"}`)
	if err := store.Set(ctx, "scene:abc", data, 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok, err := store.Get(ctx, "scene:abc")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("got %q, want %q", got, data)
	}

	if _, ok, _ := store.Get(ctx, "scene:other"); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestFileStoreExpiration(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	if err := store.Set(ctx, "short", []byte("x"), time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, ok, _ := store.Get(ctx, "short"); ok {
		t.Error("expected expired snapshot to miss")
	}
	// Expired files are removed on read.
	if _, ok, _ := store.Get(ctx, "short"); ok {
		t.Error("expected repeated read to miss")
	}
}

func TestFileStoreDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	if err := store.Delete(ctx, "never-stored"); err != nil {
		t.Errorf("deleting missing key should not error: %v", err)
	}

	_ = store.Set(ctx, "a", []byte("1"), 0)
	_ = store.Set(ctx, "b", []byte("2"), 0)
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "a"); ok {
		t.Error("expected miss after clear")
	}
}

func TestFileStoreRequiresDirectory(t *testing.T) {
	if _, err := NewFileStore(""); err == nil {
		t.Error("expected error for empty directory")
	}
}

func TestNullStore(t *testing.T) {
	ctx := context.Background()
	store := NewNullStore()

	if err := store.Set(ctx, "k", []byte("x"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, ok, err := store.Get(ctx, "k"); err != nil || ok {
		t.Errorf("null store should always miss, got ok=%v err=%v", ok, err)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestKey(t *testing.T) {
	k1 := Key("session-1", "win-1")
	k2 := Key("session-1", "win-2")
	k3 := Key("session-1", "win-1")

	if !strings.HasPrefix(k1, "scene:") {
		t.Errorf("key missing prefix: %q", k1)
	}
	if k1 == k2 {
		t.Error("different roots should produce different keys")
	}
	if k1 != k3 {
		t.Error("same inputs should produce identical keys")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("abc"))
	h2 := Hash([]byte("abd"))

	if len(h1) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(h1))
	}
	if h1 == h2 {
		t.Error("different payloads should produce different hashes")
	}
}
