package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/knapsack/pkg/item"
	"github.com/matzehuels/knapsack/pkg/observability"
)

// keyPrefix namespaces pack keys so a shared Redis can host other data.
const keyPrefix = "knapsack:pack:"

// RedisConfig configures the Redis-backed store.
type RedisConfig struct {
	// Addr is the Redis server address (host:port).
	Addr string
	// Password is optional.
	Password string
	// DB selects the Redis logical database.
	DB int
	// TTL expires snapshots after the given duration. Zero means no expiry.
	TTL time.Duration
}

// RedisStore persists pack snapshots in Redis for multi-instance server
// deployments. Snapshots are stored as JSON strings under namespaced keys.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Addr, err)
	}
	return &RedisStore{client: client, ttl: cfg.TTL}, nil
}

// Get retrieves and parses the snapshot stored under the pack ID.
func (s *RedisStore) Get(ctx context.Context, id string) (*item.Item, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		observability.Store().OnGet(ctx, "redis", id, false)
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	root, err := item.UnmarshalSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("parse pack %s: %w", id, err)
	}
	observability.Store().OnGet(ctx, "redis", id, true)
	return root, nil
}

// Set stores the pack snapshot, applying the configured TTL.
func (s *RedisStore) Set(ctx context.Context, id string, root *item.Item) error {
	data, err := item.MarshalSnapshot(root)
	if err != nil {
		return fmt.Errorf("marshal pack: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+id, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	observability.Store().OnSet(ctx, "redis", id, len(data))
	return nil
}

// Delete removes the pack key.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	observability.Store().OnDelete(ctx, "redis", id)
	return nil
}

// List scans for all pack keys and returns their IDs.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var (
		ids    []string
		cursor uint64
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("redis scan: %w", err)
		}
		for _, k := range keys {
			ids = append(ids, strings.TrimPrefix(k, keyPrefix))
		}
		if next == 0 {
			return ids, nil
		}
		cursor = next
	}
}

// Close closes the underlying Redis client.
func (s *RedisStore) Close() error { return s.client.Close() }

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
