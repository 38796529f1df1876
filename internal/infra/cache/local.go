package cache

import (
	"context"
	"sync"
	"time"

	domainavailability "github.com/BruksfildServices01/boat-rental/internal/domain/availability"
)

// LocalCache keeps calendars in process. It is only correct when a single
// process serves every write, which is the STORAGE=memory setup.
type LocalCache struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	entries  map[uint]localEntry
	versions map[uint]int64
}

type localEntry struct {
	periods []domainavailability.Period
	expires time.Time
}

func NewLocalCache(ttl time.Duration) *LocalCache {
	return &LocalCache{
		ttl:      ttl,
		now:      time.Now,
		entries:  make(map[uint]localEntry),
		versions: make(map[uint]int64),
	}
}

func (c *LocalCache) Get(_ context.Context, boatID uint) ([]domainavailability.Period, int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[boatID]
	if !ok || (c.ttl > 0 && !c.now().Before(e.expires)) {
		delete(c.entries, boatID)
		return nil, c.versions[boatID], false
	}
	return append([]domainavailability.Period(nil), e.periods...), c.versions[boatID], true
}

func (c *LocalCache) Set(_ context.Context, boatID uint, version int64, periods []domainavailability.Period) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.versions[boatID] != version {
		return
	}
	c.entries[boatID] = localEntry{
		periods: append([]domainavailability.Period(nil), periods...),
		expires: c.now().Add(c.ttl),
	}
}

func (c *LocalCache) Invalidate(_ context.Context, boatID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.versions[boatID]++
	delete(c.entries, boatID)
}

var _ domainavailability.Cache = (*LocalCache)(nil)
