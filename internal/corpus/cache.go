package corpus

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// documentCache holds parsed documents in memory. Keys include the file's
// mtime, so a changed file simply misses and the stale entry ages out.
type documentCache struct {
	cache *gocache.Cache
}

func newDocumentCache(ttl, cleanupInterval time.Duration) *documentCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if cleanupInterval <= 0 {
		cleanupInterval = 10 * time.Minute
	}
	return &documentCache{cache: gocache.New(ttl, cleanupInterval)}
}

func cacheKey(name string, mtime time.Time) string {
	return fmt.Sprintf("citelint:doc:%s:%d", name, mtime.UnixNano())
}

func (c *documentCache) get(key string) (*Document, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(*Document), true
	}
	return nil, false
}

func (c *documentCache) set(key string, doc *Document) {
	c.cache.Set(key, doc, gocache.DefaultExpiration)
}
