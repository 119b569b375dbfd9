// Package notify delivers the missed-workout notification. Delivery is
// best-effort; the sync engine logs failures and carries on.
package notify

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Notifier is the collaborator the sync engine calls when it detects missed
// workouts while rolling the schedule forward.
type Notifier interface {
	MissedWorkout(ctx context.Context, userID, firstMissedDate string, missedCount int) error
}

// LogNotifier only logs; used when no push backend is configured.
type LogNotifier struct{}

var _ Notifier = (*LogNotifier)(nil)

func (LogNotifier) MissedWorkout(_ context.Context, userID, firstMissedDate string, missedCount int) error {
	log.WithFields(log.Fields{
		"userId":      userID,
		"firstMissed": firstMissedDate,
		"missedCount": missedCount,
	}).Info("missed workout notification (no push backend configured)")
	return nil
}
