package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
)

const snapshotPrefix = "snapshot:"

// SnapshotStore persists whole-collection snapshots as single Redis values.
// Each Save is one atomic SET; concurrent processes are last-writer-wins by
// design.
type SnapshotStore struct {
	client *redis.Client
}

// NewSnapshotStore creates a SnapshotStore wrapping the given Redis client.
func NewSnapshotStore(client *redis.Client) *SnapshotStore {
	return &SnapshotStore{client: client}
}

// Save replaces the value under key. Snapshots never expire.
func (s *SnapshotStore) Save(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, snapshotPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("snapshot save %q: %w", key, err)
	}
	return nil
}

// Load returns the value under key, or domain.ErrSnapshotMissing when the key
// has never been written.
func (s *SnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, snapshotPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrSnapshotMissing
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot load %q: %w", key, err)
	}
	return raw, nil
}

// Delete removes the key entirely (not an overwrite with an empty value).
func (s *SnapshotStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, snapshotPrefix+key).Err(); err != nil {
		return fmt.Errorf("snapshot delete %q: %w", key, err)
	}
	return nil
}
