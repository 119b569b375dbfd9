package repository

import (
	"context"

	"pulsefit/fitness-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdatePreferences(ctx context.Context, id primitive.ObjectID, prefs domain.Preferences) error
}

// SessionRepository persists the per-day workout session documents.
// Upsert matches on the deterministic session id, so regenerating a plan
// rewrites existing sessions instead of inserting duplicates.
type SessionRepository interface {
	Upsert(ctx context.Context, session *domain.WorkoutSession) error
	GetByID(ctx context.Context, sessionID string) (*domain.WorkoutSession, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.WorkoutSession, error)
}

// TimelineRepository stores the per-user dated exercise entries.
// ListByUser returns ErrNotFound when the user has no timeline at all,
// which the sync engine reports as a non-fatal "no timeline" outcome.
type TimelineRepository interface {
	InsertMany(ctx context.Context, entries []domain.DatedExerciseEntry) error
	ListByUser(ctx context.Context, userID string) ([]domain.DatedExerciseEntry, error)
	GetByID(ctx context.Context, entryID string) (*domain.DatedExerciseEntry, error)
	// UpdateDate rewrites a single entry's date in place, keeping every other
	// field. Fails with ErrNotFound if the entry does not exist.
	UpdateDate(ctx context.Context, entryID, newDate string) error
	SetStatus(ctx context.Context, entryID string, status domain.CompletionStatus) error
	// DeleteIncompleteByUser removes every entry still marked incomplete,
	// leaving completed history in place. Plan regeneration uses it so the
	// new schedule replaces the pending one instead of piling on top.
	DeleteIncompleteByUser(ctx context.Context, userID string) error
}

// StreakRepository stores the per-user workout streak counter.
type StreakRepository interface {
	Get(ctx context.Context, userID string) (*domain.Streak, error)
	// Reset zeroes the counter and records the start of the week in which the
	// reset occurred. Creates the document if absent.
	Reset(ctx context.Context, userID, weekStart string) error
}
