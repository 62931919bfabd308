package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	apperrors "github.com/scenewire/scenewire/pkg/errors"
	"github.com/scenewire/scenewire/pkg/scene"
	"github.com/scenewire/scenewire/pkg/serializer"
	"github.com/scenewire/scenewire/pkg/snapshot"
)

// Runner executes synchronization passes against one scene.
//
// The Runner holds the registry's session cache between passes, so
// dependency diffs and array deduplication work across calls. It is not
// safe for concurrent passes over the same session.
type Runner struct {
	Registry *serializer.Registry
	Store    snapshot.Store
	Logger   *log.Logger
}

// NewRunner creates a runner with the given registry and snapshot store.
// If registry is nil, a registry with the default handler set is used.
// If store is nil, a NullStore is used (publishing disabled).
func NewRunner(reg *serializer.Registry, store snapshot.Store, logger *log.Logger) *Runner {
	if reg == nil {
		reg = serializer.NewDefault()
	}
	if store == nil {
		store = snapshot.NewNullStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Registry: reg,
		Store:    store,
		Logger:   logger,
	}
}

// Synchronize serializes the scene rooted at root, encodes it, and
// publishes the snapshot.
func (r *Runner) Synchronize(ctx context.Context, root scene.Object, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if root == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidScene, "scene root is required")
	}

	sess := r.Registry.Session()
	sess.SetIgnoreLastDependencies(opts.IgnoreHistory)

	// Stage 1: Serialize
	start := time.Now()
	node, err := r.Registry.SerializePass(ctx, root, sess)
	if err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}
	if node == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidScene, "scene root produced no output")
	}

	result := &Result{Root: node}
	result.Stats.Duration = time.Since(start)
	result.Stats.Nodes = node.Walk(nil)
	result.Stats.Arrays = sess.ArrayCount()

	r.Logger.Info("serialized scene",
		"root", node.ID,
		"nodes", result.Stats.Nodes,
		"arrays", result.Stats.Arrays,
		"duration", result.Stats.Duration)

	// Stage 2: Encode
	data, err := json.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	result.Data = data

	// Stage 3: Publish
	if !opts.SkipPublish {
		key := snapshot.Key(opts.SessionID, node.ID)
		if err := r.Store.Set(ctx, key, data, opts.SnapshotTTL); err != nil {
			return nil, fmt.Errorf("publish: %w", err)
		}
		result.Key = key

		r.Logger.Info("published snapshot", "key", key, "bytes", len(data))
	}

	return result, nil
}

// FetchData returns the payload of a cached data array by its content hash.
// When binary is false the payload is base64 encoded text.
func (r *Runner) FetchData(ctx context.Context, hash string, binary bool) ([]byte, error) {
	if err := apperrors.ValidateContentHash(hash); err != nil {
		return nil, err
	}
	return r.Registry.Session().CachedArray(ctx, hash, binary)
}

// FetchSnapshot retrieves a previously published snapshot.
func (r *Runner) FetchSnapshot(ctx context.Context, key string) ([]byte, error) {
	if err := apperrors.ValidateSnapshotKey(key); err != nil {
		return nil, err
	}
	data, ok, err := r.Store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodeSnapshotNotFound, "snapshot %q not found", key)
	}
	return data, nil
}

// Sweep evicts arrays that have been idle longer than window and are no
// longer referenced by the scene. Returns the number of evicted arrays.
func (r *Runner) Sweep(ctx context.Context, window time.Duration) int {
	if window <= 0 {
		window = DefaultSweepWindow
	}
	evicted := r.Registry.Session().SweepArrays(ctx, window)
	if evicted > 0 {
		r.Logger.Debug("swept array cache", "evicted", evicted)
	}
	return evicted
}

// Close releases resources held by the runner (primarily the snapshot store).
func (r *Runner) Close() error {
	if r.Store != nil {
		return r.Store.Close()
	}
	return nil
}
