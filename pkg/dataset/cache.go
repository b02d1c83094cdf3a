package dataset

import (
	"sync"
	"time"
)

type Loader interface {
	Load() (*Snapshot, error)
}

// Cache holds the last loaded snapshot together with its load time and
// reloads it once the TTL has passed. No hidden process-wide state: the
// cache object is wired explicitly into whatever serves reports.
type Cache struct {
	mu       sync.Mutex
	loader   Loader
	ttl      time.Duration
	now      func() time.Time
	snap     *Snapshot
	loadedAt time.Time
}

func NewCache(loader Loader, ttl time.Duration) *Cache {
	return &Cache{loader: loader, ttl: ttl, now: time.Now}
}

// Get returns the cached snapshot, loading or reloading when needed.
// A failed reload keeps the previous snapshot rather than serving nothing.
func (c *Cache) Get() (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snap != nil && c.now().Sub(c.loadedAt) < c.ttl {
		return c.snap, nil
	}
	snap, err := c.loader.Load()
	if err != nil {
		if c.snap != nil {
			return c.snap, nil
		}
		return nil, err
	}
	c.snap = snap
	c.loadedAt = c.now()
	return c.snap, nil
}

// Invalidate drops the cached snapshot so the next Get reloads.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.snap = nil
	c.mu.Unlock()
}

// Peek reports the cached snapshot without triggering a load.
func (c *Cache) Peek() (*Snapshot, time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap, c.loadedAt, c.snap != nil
}
