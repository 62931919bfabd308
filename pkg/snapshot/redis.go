package snapshot

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/scenewire/scenewire/pkg/errors"
)

// RedisConfig configures a Redis-backed snapshot store.
type RedisConfig struct {
	// Addr is the host:port of the Redis server.
	Addr string

	// Password is optional.
	Password string

	// DB selects the logical database.
	DB int

	// Prefix is prepended to every key, separating snapshot data from other
	// users of the same database. Defaults to "scenewire".
	Prefix string
}

// RedisStore persists snapshots in Redis. Expiration is delegated to Redis
// key TTLs.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	if cfg.Addr == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "redis address is required")
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "scenewire"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, apperrors.Wrap(apperrors.ErrCodeSnapshotStore, err, "failed to connect to redis")
	}
	return &RedisStore{client: client, prefix: cfg.Prefix}, nil
}

func (s *RedisStore) key(key string) string {
	return s.prefix + ":" + key
}

// Get retrieves a snapshot.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrCodeSnapshotStore, err, "failed to read snapshot from redis")
	}
	return data, true, nil
}

// Set stores a snapshot. A ttl of zero stores the key without expiration.
func (s *RedisStore) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(key), data, ttl).Err(); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeSnapshotStore, err, "failed to write snapshot to redis")
	}
	return nil
}

// Delete removes a snapshot.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeSnapshotStore, err, "failed to delete snapshot from redis")
	}
	return nil
}

// Close closes the underlying Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
