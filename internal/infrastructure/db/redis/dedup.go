package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
)

const dedupTTL = time.Hour

// DedupChecker provides idempotency checks for activity entries backed by
// Redis. Key format: dedup:<entity>:<id>:<action>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact activity entry was already recorded.
func (d *DedupChecker) IsDuplicate(ctx context.Context, event domain.ActivityEvent) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(event)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this entry has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, event domain.ActivityEvent) error {
	return d.client.Set(ctx, d.key(event), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(event domain.ActivityEvent) string {
	return fmt.Sprintf("dedup:%s:%s:%s:%d", event.Entity, event.EntityID, event.Action, event.Timestamp.Unix())
}
