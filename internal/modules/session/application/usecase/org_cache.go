package usecase

import (
	"sync"
	"time"

	catalog "campusAdmin/internal/modules/catalog/domain"
)

// organizationTTL is how long a cached organization lookup stays fresh.
const organizationTTL = 5 * time.Minute

type orgCacheEntry struct {
	data      catalog.Record
	fetchedAt time.Time
}

// orgCache memoizes organization lookups per user id. Clearing happens in
// place so an in-flight fetch finishing after a login/logout writes into the
// live map instead of resurrecting a replaced one.
type orgCache struct {
	mu      sync.Mutex
	entries map[string]orgCacheEntry
}

func newOrgCache() *orgCache {
	return &orgCache{entries: make(map[string]orgCacheEntry)}
}

func (c *orgCache) get(userID string, now time.Time) (catalog.Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[userID]
	if !ok {
		return nil, false
	}
	if now.Sub(entry.fetchedAt) > organizationTTL {
		delete(c.entries, userID)
		return nil, false
	}
	return entry.data, true
}

func (c *orgCache) set(userID string, data catalog.Record, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[userID] = orgCacheEntry{data: data, fetchedAt: now}
}

func (c *orgCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		delete(c.entries, key)
	}
}
