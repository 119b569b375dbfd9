// Package timeline implements the rolling-schedule reconciler: when the
// current date moves forward, incomplete exercise entries left in the past
// are shifted ahead by a uniform delta, preserving the spacing between
// sessions, and a missed-workout notification plus streak reset fire.
package timeline

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"pulsefit/fitness-app/internal/cache"
	"pulsefit/fitness-app/internal/dates"
	"pulsefit/fitness-app/internal/domain"
	"pulsefit/fitness-app/internal/notify"
	"pulsefit/fitness-app/internal/repository"

	log "github.com/sirupsen/logrus"
)

// Result messages surfaced to callers.
const (
	msgNoTimeline   = "No timeline found"
	msgLoadFailed   = "Error loading timeline"
	msgNoIncomplete = "No incomplete exercises"
	msgNoShift      = "No shift needed"
	msgWriteFailed  = "Error updating exercises"
	msgShifted      = "Exercises updated"
)

// SyncResult reports the outcome of one sync pass.
type SyncResult struct {
	Success bool   `json:"success"`
	Shifted bool   `json:"shifted"`
	Message string `json:"message"`
	NewDate string `json:"newDate,omitempty"`
}

// Engine reconciles a user's timeline against a target current date.
// Sync calls for the same user are serialized with a per-user mutex: the
// read-compute-write sequence is not safe to interleave.
type Engine struct {
	timeline repository.TimelineRepository
	streaks  repository.StreakRepository
	notifier notify.Notifier
	cache    cache.Cache

	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

// NewEngine creates a sync engine.
func NewEngine(
	timeline repository.TimelineRepository,
	streaks repository.StreakRepository,
	notifier notify.Notifier,
	sessionCache cache.Cache,
) *Engine {
	return &Engine{
		timeline:  timeline,
		streaks:   streaks,
		notifier:  notifier,
		cache:     sessionCache,
		userLocks: make(map[string]*sync.Mutex),
	}
}

// Sync rolls the user's schedule forward to targetDate.
//
// The shift amount is anchored to the single earliest incomplete entry, so
// every incomplete entry moves by the same delta; completed entries are never
// touched. The pass is idempotent: repeating it with the same target date is
// a no-op once no incomplete entry remains in the past.
//
// Entry writes are applied one by one; the first failure aborts the pass
// without rolling back already-written entries. Unshifted entries keep their
// correct old dates, so a retry recomputes from current state and is safe.
func (e *Engine) Sync(ctx context.Context, userID, targetDate string) SyncResult {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	target, err := dates.Parse(targetDate)
	if err != nil {
		return SyncResult{Success: false, Message: err.Error()}
	}

	entries, err := e.timeline.ListByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return SyncResult{Success: false, Message: msgNoTimeline}
		}
		log.Errorf("timeline sync: list entries for user %s: %s", userID, err)
		return SyncResult{Success: false, Message: msgLoadFailed}
	}

	// One snapshot of non-complete entries drives both the missed check and
	// the shift, so the two can never disagree.
	var incomplete []domain.DatedExerciseEntry
	for _, entry := range entries {
		if entry.Status != domain.StatusComplete {
			incomplete = append(incomplete, entry)
		}
	}
	if len(incomplete) == 0 {
		return SyncResult{Success: true, Shifted: false, Message: msgNoIncomplete}
	}

	// ISO dates sort chronologically as strings.
	sort.Slice(incomplete, func(i, j int) bool {
		return incomplete[i].Date < incomplete[j].Date
	})
	earliest, err := dates.Parse(incomplete[0].Date)
	if err != nil {
		log.Errorf("timeline sync: entry %s has malformed date %q", incomplete[0].ID, incomplete[0].Date)
		return SyncResult{Success: false, Message: msgLoadFailed}
	}

	daysToShift := dates.DaysBetween(earliest, target)
	if daysToShift <= 0 {
		return SyncResult{Success: true, Shifted: false, Message: msgNoShift}
	}

	e.handleMissed(ctx, userID, incomplete, targetDate, target)

	for _, entry := range incomplete {
		newDate, err := dates.AddDays(entry.Date, daysToShift)
		if err != nil {
			log.Errorf("timeline sync: entry %s has malformed date %q", entry.ID, entry.Date)
			return SyncResult{Success: false, Message: msgWriteFailed}
		}
		if err := e.timeline.UpdateDate(ctx, entry.ID, newDate); err != nil {
			log.Errorf("timeline sync: update entry %s for user %s: %s", entry.ID, userID, err)
			return SyncResult{Success: false, Message: msgWriteFailed}
		}
	}

	e.cache.Invalidate(cache.TodaySessionKey(userID))

	log.WithFields(log.Fields{
		"userId":  userID,
		"shifted": len(incomplete),
		"days":    daysToShift,
		"newDate": targetDate,
	}).Info("timeline shifted forward")

	return SyncResult{Success: true, Shifted: true, Message: msgShifted, NewDate: targetDate}
}

// handleMissed fires the notification and streak reset for entries strictly
// before the target date. Both are best-effort: failures are logged and never
// block the shift. An entry dated exactly targetDate is not missed.
func (e *Engine) handleMissed(ctx context.Context, userID string, incomplete []domain.DatedExerciseEntry, targetDate string, target time.Time) {
	var missed []domain.DatedExerciseEntry
	for _, entry := range incomplete {
		if entry.Date < targetDate {
			missed = append(missed, entry)
		}
	}
	if len(missed) == 0 {
		return
	}

	if err := e.notifier.MissedWorkout(ctx, userID, missed[0].Date, len(missed)); err != nil {
		log.Errorf("timeline sync: missed workout notification for user %s: %s", userID, err)
	}

	weekStart := dates.Format(dates.WeekStart(target))
	if err := e.streaks.Reset(ctx, userID, weekStart); err != nil {
		log.Errorf("timeline sync: streak reset for user %s: %s", userID, err)
	}
}

func (e *Engine) userLock(userID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		e.userLocks[userID] = l
	}
	return l
}
