// Package appdate owns the app's notion of "today". The rest of the app reads
// the current date from here; writing it (daily rollover or the admin time
// travel control) is the entry point that triggers timeline synchronization.
package appdate

import (
	"context"
	"sync"

	"pulsefit/fitness-app/internal/cache"
	"pulsefit/fitness-app/internal/dates"
	"pulsefit/fitness-app/internal/refresh"
	"pulsefit/fitness-app/internal/timeline"

	log "github.com/sirupsen/logrus"
)

// Context holds the process-wide current date (YYYY-MM-DD).
type Context struct {
	mu      sync.RWMutex
	current string

	engine       *timeline.Engine
	broadcaster  *refresh.Broadcaster
	sessionCache cache.Cache
}

// NewContext creates a date context initialized to the real current date.
func NewContext(engine *timeline.Engine, broadcaster *refresh.Broadcaster, sessionCache cache.Cache) *Context {
	return &Context{
		current:      dates.Today(),
		engine:       engine,
		broadcaster:  broadcaster,
		sessionCache: sessionCache,
	}
}

// Current returns the app's current date.
func (c *Context) Current() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// SetCurrentDate moves the app's current date for the given user. It runs the
// timeline sync first, clears the user's cached today view, and then fires the
// session-refetch broadcast so listeners re-read fresh data. The visible date
// updates unconditionally afterwards; date advancement is never blocked by a
// sync failure, which is only logged.
func (c *Context) SetCurrentDate(ctx context.Context, userID, newDate string) timeline.SyncResult {
	if _, err := dates.Parse(newDate); err != nil {
		return timeline.SyncResult{Success: false, Message: err.Error()}
	}

	oldDate := c.Current()

	result := c.engine.Sync(ctx, userID, newDate)
	if !result.Success {
		log.WithFields(log.Fields{
			"userId":  userID,
			"oldDate": oldDate,
			"newDate": newDate,
			"message": result.Message,
		}).Warn("timeline sync failed while setting current date")
	}

	c.sessionCache.Invalidate(cache.TodaySessionKey(userID))
	c.broadcaster.TriggerRefetch()

	c.mu.Lock()
	c.current = newDate
	c.mu.Unlock()

	return result
}
