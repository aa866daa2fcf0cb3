package scraper

import (
	"fmt"

	gocache "github.com/patrickmn/go-cache"

	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/schedule"
)

// Key identifies one cached timetable fetch.
type Key struct {
	GroupID int
	Week    int
}

func (k Key) String() string {
	return fmt.Sprintf("%d/%d", k.GroupID, k.Week)
}

// Cache stores extracted weeks per (group, week) pair. A past week's
// timetable never changes, so entries never need invalidation; whether they
// ever expire is up to the implementation. Implementations must be safe for
// concurrent use.
type Cache interface {
	Get(key Key) (schedule.Week, bool)
	Set(key Key, week schedule.Week)
}

// memoryCache is the default Cache: an in-process concurrent map with no
// expiration, alive until process exit.
type memoryCache struct {
	c *gocache.Cache
}

// NewMemoryCache creates the default non-expiring in-memory cache.
func NewMemoryCache() Cache {
	return &memoryCache{c: gocache.New(gocache.NoExpiration, 0)}
}

func (m *memoryCache) Get(key Key) (schedule.Week, bool) {
	v, ok := m.c.Get(key.String())
	if !ok {
		return schedule.Week{}, false
	}
	return v.(schedule.Week), true
}

func (m *memoryCache) Set(key Key, week schedule.Week) {
	m.c.Set(key.String(), week, gocache.NoExpiration)
}
