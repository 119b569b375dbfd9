package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"pulsefit/fitness-app/internal/cache"
	"pulsefit/fitness-app/internal/domain"
	"pulsefit/fitness-app/internal/repository"
	"pulsefit/fitness-app/internal/storage"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrEntryNotFound  = errors.New("timeline entry not found")
	ErrEntryForbidden = errors.New("timeline entry belongs to a different user")
)

// todayCacheMaxAge bounds how stale a cached today view may be served.
// Invalidation on writes handles the common paths; the age cap covers the
// rest (e.g. another instance wrote the timeline).
const todayCacheMaxAge = 5 * time.Minute

// TimelineEntryView is a timeline entry decorated with a short-lived media
// URL for the client.
type TimelineEntryView struct {
	domain.DatedExerciseEntry
	MediaURL string `json:"mediaUrl,omitempty"`
}

// TodayView is what the home screen renders: the entries scheduled for the
// app's current date.
type TodayView struct {
	Date    string              `json:"date"`
	Entries []TimelineEntryView `json:"entries"`
}

type SessionService interface {
	// TodaySession returns the timeline entries dated exactly date, served
	// from cache when fresh.
	TodaySession(ctx context.Context, userID, date string) (*TodayView, error)
	// ListSessions returns the user's workout session documents.
	ListSessions(ctx context.Context, userID string) ([]domain.WorkoutSession, error)
	// CompleteExercise marks a timeline entry complete and invalidates the
	// user's cached today view.
	CompleteExercise(ctx context.Context, userID, entryID string) error
}

type sessionService struct {
	sessions     repository.SessionRepository
	timeline     repository.TimelineRepository
	sessionCache cache.Cache
	media        storage.MediaStorage // nil when media serving is not configured
}

func NewSessionService(
	sessions repository.SessionRepository,
	timeline repository.TimelineRepository,
	sessionCache cache.Cache,
	media storage.MediaStorage,
) SessionService {
	return &sessionService{
		sessions:     sessions,
		timeline:     timeline,
		sessionCache: sessionCache,
		media:        media,
	}
}

func (s *sessionService) TodaySession(ctx context.Context, userID, date string) (*TodayView, error) {
	key := cache.TodaySessionKey(userID)
	if raw, ok := s.sessionCache.Read(key, todayCacheMaxAge); ok {
		var view TodayView
		if err := json.Unmarshal(raw, &view); err == nil && view.Date == date {
			return &view, nil
		}
		// Cached view is for another date (or corrupt); fall through and rebuild.
	}

	entries, err := s.timeline.ListByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			entries = nil
		} else {
			return nil, err
		}
	}

	view := &TodayView{Date: date, Entries: []TimelineEntryView{}}
	for _, entry := range entries {
		if entry.Date != date {
			continue
		}
		view.Entries = append(view.Entries, TimelineEntryView{
			DatedExerciseEntry: entry,
			MediaURL:           s.mediaURL(ctx, entry.MediaKey),
		})
	}

	if raw, err := json.Marshal(view); err == nil {
		s.sessionCache.Write(key, raw)
	}
	return view, nil
}

func (s *sessionService) ListSessions(ctx context.Context, userID string) ([]domain.WorkoutSession, error) {
	return s.sessions.GetByUserID(ctx, userID)
}

func (s *sessionService) CompleteExercise(ctx context.Context, userID, entryID string) error {
	entry, err := s.timeline.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEntryNotFound
		}
		return err
	}
	if entry.UserID != userID {
		return ErrEntryForbidden
	}

	if err := s.timeline.SetStatus(ctx, entryID, domain.StatusComplete); err != nil {
		return err
	}
	s.sessionCache.Invalidate(cache.TodaySessionKey(userID))
	return nil
}

// mediaURL presigns the entry's media key. Missing storage or a presign
// failure degrades to an empty URL rather than failing the whole view.
func (s *sessionService) mediaURL(ctx context.Context, key string) string {
	if s.media == nil || key == "" {
		return ""
	}
	url, err := s.media.GeneratePresignedDownloadURL(ctx, key, storage.DefaultPresignedURLExpiry)
	if err != nil {
		log.WithError(err).WithField("mediaKey", key).Warn("failed to presign media URL")
		return ""
	}
	return url
}

func primitiveObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidUserID
	}
	return oid, nil
}
