// Package cache holds the small read-mostly cache in front of the document
// store, mainly the "today's session" value the home screen re-reads on every
// refresh. The timeline sync engine invalidates it after every shift.
package cache

import (
	"encoding/json"
	"time"

	"github.com/coocood/freecache"
)

// TodaySessionKey names the cached "today's session" value for a user. The
// cached payload carries its own date, so the key stays date-free and the
// sync engine can invalidate it without knowing what day was cached.
func TodaySessionKey(userID string) string {
	return "today:" + userID
}

// Cache is the minimal surface the services need.
type Cache interface {
	// Read returns the cached value for key if it is younger than maxAge.
	Read(key string, maxAge time.Duration) ([]byte, bool)
	Write(key string, value []byte)
	Invalidate(key string)
}

// envelope carries the payload together with its write time, so reads can
// enforce a caller-chosen max age independent of the eviction TTL.
type envelope struct {
	StoredAt time.Time       `json:"storedAt"`
	Payload  json.RawMessage `json:"payload"`
}

// SessionCache implements Cache on top of freecache.
type SessionCache struct {
	store *freecache.Cache
	now   func() time.Time
}

const (
	cacheSizeBytes = 10 * 1024 * 1024
	// Entries are evicted after a day regardless of the per-read max age.
	hardExpireSeconds = 24 * 60 * 60
)

var _ Cache = (*SessionCache)(nil)

// NewSessionCache creates a SessionCache with a fixed in-memory budget.
func NewSessionCache() *SessionCache {
	return &SessionCache{
		store: freecache.NewCache(cacheSizeBytes),
		now:   time.Now,
	}
}

func (c *SessionCache) Read(key string, maxAge time.Duration) ([]byte, bool) {
	raw, err := c.store.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// Unreadable entry, drop it.
		c.store.Del([]byte(key))
		return nil, false
	}
	if c.now().Sub(env.StoredAt) > maxAge {
		return nil, false
	}
	return env.Payload, true
}

func (c *SessionCache) Write(key string, value []byte) {
	env := envelope{
		StoredAt: c.now(),
		Payload:  value,
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return
	}
	_ = c.store.Set([]byte(key), raw, hardExpireSeconds)
}

func (c *SessionCache) Invalidate(key string) {
	c.store.Del([]byte(key))
}
