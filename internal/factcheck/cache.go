package factcheck

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ReportCache keeps recently aggregated reports keyed by normalized query so
// a burst of identical report requests hits upstream once. Entries expire on
// their own; this is a cost saver, not part of the verdict dedup guarantee.
type ReportCache struct {
	c *gocache.Cache
}

// NewReportCache creates a cache whose entries live for ttl.
func NewReportCache(ttl time.Duration) *ReportCache {
	return &ReportCache{
		c: gocache.New(ttl, 2*ttl),
	}
}

// Get returns the cached report for key if present and unexpired.
func (rc *ReportCache) Get(key string) (Report, bool) {
	v, ok := rc.c.Get(key)
	if !ok {
		return Report{}, false
	}
	return v.(Report), true
}

// Set stores the report under key with the cache's default TTL.
func (rc *ReportCache) Set(key string, report Report) {
	rc.c.SetDefault(key, report)
}
