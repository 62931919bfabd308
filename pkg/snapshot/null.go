package snapshot

import (
	"context"
	"time"
)

// NullStore discards all writes and reports every read as a miss. It is used
// when persistence is disabled so callers never have to branch on a nil
// store.
type NullStore struct{}

// NewNullStore creates a store that persists nothing.
func NewNullStore() *NullStore { return &NullStore{} }

// Get always misses.
func (s *NullStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the snapshot.
func (s *NullStore) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing.
func (s *NullStore) Delete(ctx context.Context, key string) error { return nil }

// Close does nothing.
func (s *NullStore) Close() error { return nil }

var _ Store = (*NullStore)(nil)
