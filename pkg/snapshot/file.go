package snapshot

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	apperrors "github.com/scenewire/scenewire/pkg/errors"
)

// FileStore persists snapshots as JSON files under a base directory. Keys
// are hashed, so arbitrary key strings map to safe filesystem paths.
type FileStore struct {
	baseDir string
}

type fileEntry struct {
	Data      []byte     `json:"data"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// NewFileStore creates a file-backed store rooted at baseDir. The directory
// is created if it does not exist.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidPath, "snapshot directory is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeSnapshotStore, err, "failed to create snapshot directory")
	}
	return &FileStore{baseDir: baseDir}, nil
}

// BaseDir returns the directory snapshots are stored under.
func (s *FileStore) BaseDir() string { return s.baseDir }

// path maps a key to a sharded file path. The first two hex characters form
// a subdirectory to keep directory listings manageable.
func (s *FileStore) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	hash := hex.EncodeToString(sum[:])
	return filepath.Join(s.baseDir, hash[:2], hash[2:]+".json")
}

// Get retrieves a snapshot, honoring expiration. Expired files are removed.
func (s *FileStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrCodeSnapshotStore, err, "failed to read snapshot")
	}

	var entry fileEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrCodeSnapshotStore, err, "failed to decode snapshot")
	}

	if entry.ExpiresAt != nil && time.Now().After(*entry.ExpiresAt) {
		_ = os.Remove(s.path(key))
		return nil, false, nil
	}
	return entry.Data, true, nil
}

// Set stores a snapshot atomically via a temp file rename.
func (s *FileStore) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := fileEntry{Data: data}
	if ttl > 0 {
		t := time.Now().Add(ttl)
		entry.ExpiresAt = &t
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeSnapshotStore, err, "failed to encode snapshot")
	}

	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeSnapshotStore, err, "failed to create snapshot shard")
	}

	tmp := fmt.Sprintf("%s.tmp.%d", path, time.Now().UnixNano())
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeSnapshotStore, err, "failed to write snapshot")
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return apperrors.Wrap(apperrors.ErrCodeSnapshotStore, err, "failed to commit snapshot")
	}
	return nil
}

// Delete removes a snapshot. Missing files are ignored.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return apperrors.Wrap(apperrors.ErrCodeSnapshotStore, err, "failed to delete snapshot")
	}
	return nil
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

// Clear removes all stored snapshots and their shard directories.
func (s *FileStore) Clear() error {
	entries, err := os.ReadDir(s.baseDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeSnapshotStore, err, "failed to list snapshot directory")
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(s.baseDir, e.Name())); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeSnapshotStore, err, "failed to clear snapshots")
		}
	}
	return nil
}

var _ Store = (*FileStore)(nil)
