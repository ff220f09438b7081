package redis

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker provides idempotency checks for timeline events backed by
// Redis. The description is hashed to keep keys bounded.
// Key format: dedup:<tracking_number>:<unix_timestamp>:<fnv32(description)>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact event has already been processed.
func (d *DedupChecker) IsDuplicate(ctx context.Context, trackingNumber, description string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(trackingNumber, description, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this event has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, trackingNumber, description string, ts time.Time) error {
	return d.client.Set(ctx, d.key(trackingNumber, description, ts), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(trackingNumber, description string, ts time.Time) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(description))
	return fmt.Sprintf("dedup:%s:%d:%08x", trackingNumber, ts.Unix(), h.Sum32())
}
