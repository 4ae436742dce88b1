package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SvcLearn/service_learning_app/internal/core/domain"
)

const snapshotTTL = 5 * time.Minute

// ProgressCache caches derived progress snapshots in Redis. A nil
// *ProgressCache is valid and behaves as a cache that never hits, so the
// service layer does not need to care whether Redis is configured.
type ProgressCache struct {
	client *redis.Client
}

// NewProgressCache creates a cache backed by the given Redis client.
func NewProgressCache(client *redis.Client) *ProgressCache {
	return &ProgressCache{client: client}
}

func snapshotKey(placementID string) string {
	return fmt.Sprintf("progress:snapshot:%s", placementID)
}

// Get returns a cached snapshot, or nil on miss.
func (c *ProgressCache) Get(ctx context.Context, placementID string) (*domain.ProgressSnapshot, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	data, err := c.client.Get(ctx, snapshotKey(placementID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("progress cache get: %w", err)
	}
	var snapshot domain.ProgressSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("progress cache decode: %w", err)
	}
	return &snapshot, nil
}

// Set stores a snapshot with the cache TTL.
func (c *ProgressCache) Set(ctx context.Context, snapshot *domain.ProgressSnapshot) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("progress cache encode: %w", err)
	}
	if err := c.client.Set(ctx, snapshotKey(snapshot.PlacementID), data, snapshotTTL).Err(); err != nil {
		return fmt.Errorf("progress cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached snapshot for a placement.
func (c *ProgressCache) Invalidate(ctx context.Context, placementID string) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, snapshotKey(placementID)).Err(); err != nil {
		return fmt.Errorf("progress cache invalidate: %w", err)
	}
	return nil
}
