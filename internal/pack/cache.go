package pack

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/PackOpener_Go/internal/domain"
)

// poolCache memoizes eligible pools per pack, registry generation and catalog version.
// Reloading either side changes the key, so a late write from an older load is never read.
type poolCache struct {
	lru *expirable.LRU[string, []domain.Card]
}

// newPoolCache creates a cache holding up to size pools for ttl (0 disables expiry)
func newPoolCache(size int, ttl time.Duration) *poolCache {
	if size <= 0 {
		size = DefaultPoolCacheSize
	}
	return &poolCache{
		lru: expirable.NewLRU[string, []domain.Card](size, nil, ttl),
	}
}

func poolKey(packID string, generation, catalogVersion uint64) string {
	return fmt.Sprintf("%s@%d/%d", packID, generation, catalogVersion)
}

func (c *poolCache) Get(packID string, generation, catalogVersion uint64) ([]domain.Card, bool) {
	return c.lru.Get(poolKey(packID, generation, catalogVersion))
}

func (c *poolCache) Set(packID string, generation, catalogVersion uint64, pool []domain.Card) {
	c.lru.Add(poolKey(packID, generation, catalogVersion), pool)
}

func (c *poolCache) Len() int {
	return c.lru.Len()
}

func (c *poolCache) Clear() {
	c.lru.Purge()
}
