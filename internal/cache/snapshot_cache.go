package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"ferapp_backend/internal/store"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "snap:"

// SnapshotCache caches per-owner collection snapshots in Redis. A nil
// client disables the cache: Get always misses, Set and Invalidate are
// no-ops, so the store stays the single source of truth.
type SnapshotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSnapshotCache(rdb *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{rdb: rdb, ttl: ttl}
}

func key(ownerID int64, collection string) string {
	return keyPrefix + strconv.FormatInt(ownerID, 10) + ":" + collection
}

// Get returns the cached snapshot or nil on miss.
func (c *SnapshotCache) Get(ctx context.Context, ownerID int64, collection string) ([]store.Document, error) {
	if c == nil || c.rdb == nil {
		return nil, nil
	}
	b, err := c.rdb.Get(ctx, key(ownerID, collection)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var docs []store.Document
	if err := json.Unmarshal(b, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Set stores the snapshot with the configured TTL.
func (c *SnapshotCache) Set(ctx context.Context, ownerID int64, collection string, docs []store.Document) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key(ownerID, collection), b, c.ttl).Err()
}

// Invalidate drops the cached snapshot for one collection.
func (c *SnapshotCache) Invalidate(ctx context.Context, ownerID int64, collection string) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, key(ownerID, collection)).Err()
}

// Notify implements store.Notifier: every committed write drops the
// stale snapshot so the next List refills it.
func (c *SnapshotCache) Notify(ownerID int64, collection string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = c.Invalidate(ctx, ownerID, collection)
}
