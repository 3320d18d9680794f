package cache

import (
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/courtlens/casefetch/internal/scraper"
)

type Cache interface {
	Get(key string) (*scraper.CaseResult, bool)
	Set(key string, value *scraper.CaseResult)
	Delete(key string)
	Clear()
	Stats() Stats
}

type Stats struct {
	Hits       int64     `json:"hits"`
	Misses     int64     `json:"misses"`
	Size       int       `json:"size"`
	LastAccess time.Time `json:"last_access"`
}

type resultCache struct {
	cache   *gocache.Cache
	mu      sync.Mutex
	stats   Stats
	maxSize int
}

// New creates a TTL cache for search results. Keys are the case triple;
// see Key.
func New(maxSize int, ttl time.Duration) Cache {
	return &resultCache{
		cache:   gocache.New(ttl, ttl*2),
		maxSize: maxSize,
	}
}

func (c *resultCache) Get(key string) (*scraper.CaseResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.LastAccess = time.Now()

	if data, found := c.cache.Get(key); found {
		if result, ok := data.(*scraper.CaseResult); ok {
			c.stats.Hits++
			return result, true
		}
	}

	c.stats.Misses++
	return nil, false
}

func (c *resultCache) Set(key string, value *scraper.CaseResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cache.ItemCount() >= c.maxSize {
		c.removeOldest()
	}

	c.cache.Set(key, value, gocache.DefaultExpiration)
}

func (c *resultCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Delete(key)
}

func (c *resultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Flush()
	c.stats = Stats{}
}

func (c *resultCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Size = c.cache.ItemCount()
	return c.stats
}

func (c *resultCache) removeOldest() {
	items := c.cache.Items()
	if len(items) == 0 {
		return
	}

	var oldestKey string
	var oldestExpiry int64

	for key, item := range items {
		if oldestKey == "" || item.Expiration < oldestExpiry {
			oldestKey = key
			oldestExpiry = item.Expiration
		}
	}

	if oldestKey != "" {
		c.cache.Delete(oldestKey)
	}
}

// Key builds the cache key for a case triple
func Key(req scraper.SearchRequest) string {
	return fmt.Sprintf("case:%s:%s:%s", req.CaseType, req.CaseNumber, req.FilingYear)
}
