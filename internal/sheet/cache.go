package sheet

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"rentdesk-backend/internal/logger"
)

// Fetcher retrieves a fresh worksheet snapshot from the remote workbook.
type Fetcher interface {
	FetchRange(ctx context.Context) (*Snapshot, error)
}

// SnapshotCache holds the most recently fetched worksheet snapshot and
// refreshes it when older than the TTL. Concurrent stale callers are
// collapsed into a single upstream fetch; a failed refresh keeps serving the
// last-known-good snapshot instead of failing the request.
type SnapshotCache struct {
	fetcher Fetcher
	ttl     time.Duration

	mu    sync.RWMutex
	snap  *Snapshot
	group singleflight.Group
}

// NewSnapshotCache creates an empty cache. The first Get triggers a fetch.
func NewSnapshotCache(fetcher Fetcher, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		fetcher: fetcher,
		ttl:     ttl,
	}
}

// Get returns the cached snapshot, refreshing it first when it is missing or
// older than the TTL. When a refresh fails and a previous snapshot exists,
// the stale snapshot is returned with no error; only a cold cache propagates
// the fetch failure.
func (c *SnapshotCache) Get(ctx context.Context) (*Snapshot, error) {
	if snap := c.fresh(); snap != nil {
		return snap, nil
	}

	v, err, _ := c.group.Do("snapshot", func() (any, error) {
		// A caller that queued behind a finished refresh sees the fresh
		// snapshot here without another fetch.
		if snap := c.fresh(); snap != nil {
			return snap, nil
		}
		return c.refetch(ctx)
	})
	if err != nil {
		// The stale fallback sits outside the flight so a caller that
		// joined a failing background Refresh still gets the previous
		// snapshot.
		c.mu.RLock()
		prev := c.snap
		c.mu.RUnlock()
		if prev != nil {
			logger.Warn("Snapshot refresh failed, serving stale snapshot",
				"error", err, "fetched_at", prev.FetchedAt)
			return prev, nil
		}
		return nil, err
	}
	return v.(*Snapshot), nil
}

// Refresh fetches a new snapshot regardless of TTL. Used by the background
// warm-refresh job; a failure leaves the current snapshot in place.
func (c *SnapshotCache) Refresh(ctx context.Context) error {
	_, err, _ := c.group.Do("snapshot", func() (any, error) {
		return c.refetch(ctx)
	})
	return err
}

// FetchedAt returns the fetch time of the current snapshot, zero when empty.
func (c *SnapshotCache) FetchedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snap == nil {
		return time.Time{}
	}
	return c.snap.FetchedAt
}

func (c *SnapshotCache) fresh() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snap != nil && time.Since(c.snap.FetchedAt) < c.ttl {
		return c.snap
	}
	return nil
}

func (c *SnapshotCache) refetch(ctx context.Context) (*Snapshot, error) {
	snap, err := c.fetcher.FetchRange(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()
	logger.Debug("Worksheet snapshot refreshed", "rows", len(snap.Rows), "fetched_at", snap.FetchedAt)
	return snap, nil
}
