// Package snapshot persists serialized scene snapshots.
//
// A snapshot is the JSON-encoded wire tree of one serialization pass. Stores
// keep snapshots under opaque keys with optional expiration, so a remote
// viewer (or a later process) can pick up the last published state without
// rerunning serialization.
//
// Backends:
//   - memory: In-process storage for tests and single-shot runs
//   - file: Directory-backed storage for CLI usage
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage when snapshots live next to app data
//   - null: Discards everything; disables persistence
//
// All backends implement the same Store interface:
//
//	store, err := snapshot.NewFileStore(dir)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	err = store.Set(ctx, key, data, time.Hour)
//	data, ok, err := store.Get(ctx, key)
package snapshot

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// Store is the interface all snapshot backends implement. Get reports a
// miss as (nil, false, nil); errors are reserved for backend failures.
type Store interface {
	// Get retrieves a snapshot by key.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a snapshot. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a snapshot. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Key derives a stable snapshot key from a session identifier and the root
// node identity. The format is: scene:<sha256(session|root)>.
func Key(sessionID, rootID string) string {
	sum := sha256.Sum256([]byte(sessionID + "|" + rootID))
	return "scene:" + hex.EncodeToString(sum[:])
}

// Hash computes the SHA-256 hex digest of data. Used for content-addressed
// snapshot keys and change detection.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// =============================================================================
// Memory Store
// =============================================================================

// MemoryStore is an in-process snapshot store. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

// Get retrieves a snapshot, honoring expiration.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false, nil
	}
	return entry.data, true, nil
}

// Set stores a snapshot.
func (s *MemoryStore) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := memoryEntry{data: append([]byte(nil), data...)}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry
	s.mu.Unlock()
	return nil
}

// Delete removes a snapshot.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close() error { return nil }

// Len returns the number of stored snapshots, expired entries included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

var _ Store = (*MemoryStore)(nil)
