package planner

import (
	"context"
	"fmt"
	"time"

	"pulsefit/fitness-app/internal/domain"
	"pulsefit/fitness-app/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// CatalogSource supplies the exercise catalog; implemented by the catalog client.
type CatalogSource interface {
	Exercises(ctx context.Context) ([]domain.ExerciseRecord, error)
}

// Service generates a plan and persists its sessions and timeline entries.
type Service interface {
	GeneratePlan(ctx context.Context, userID string, prefs domain.Preferences, startDate time.Time) (*Plan, error)
}

type service struct {
	generator *Generator
	catalog   CatalogSource
	sessions  repository.SessionRepository
	timeline  repository.TimelineRepository
}

// NewService creates a plan service.
func NewService(
	generator *Generator,
	catalog CatalogSource,
	sessions repository.SessionRepository,
	timeline repository.TimelineRepository,
) Service {
	return &service{
		generator: generator,
		catalog:   catalog,
		sessions:  sessions,
		timeline:  timeline,
	}
}

// SessionID derives the stable session document id from the user and the plan
// day-key, so regeneration matches and updates existing sessions.
func SessionID(userID, dayKey string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(userID+"/"+dayKey)).String()
}

// GeneratePlan runs the generator against the current catalog and writes one
// WorkoutSession per day plus one incomplete timeline entry per (date,
// exercise). Session writes are upserts and the user's pending timeline
// entries are replaced wholesale, so regenerating never duplicates either; a
// failure part-way leaves earlier days in place.
func (s *service) GeneratePlan(ctx context.Context, userID string, prefs domain.Preferences, startDate time.Time) (*Plan, error) {
	catalog, err := s.catalog.Exercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("load exercise catalog: %w", err)
	}

	plan, err := s.generator.Generate(prefs, catalog, startDate)
	if err != nil {
		return nil, err
	}

	planID := uuid.NewString()
	// The per-exercise rep target is the middle of the goal's range; for
	// flexibility plans the hold duration stands in for reps.
	reps := (plan.Params.RepsLow + plan.Params.RepsHigh) / 2
	if plan.Params.HoldSeconds > 0 {
		reps = plan.Params.HoldSeconds
	}

	var entries []domain.DatedExerciseEntry
	for _, day := range plan.Days {
		session := &domain.WorkoutSession{
			SessionID:     SessionID(userID, day.DayKey),
			UserID:        userID,
			SessionName:   day.Name,
			WorkoutPlanID: planID,
			DayOfWeek:     day.DayOfWeek,
			Dates:         day.Dates,
		}
		for _, ex := range day.Exercises {
			session.ExerciseIDs = append(session.ExerciseIDs, ex.ID)
			session.ExerciseNames = append(session.ExerciseNames, ex.Name)
		}

		if err := s.sessions.Upsert(ctx, session); err != nil {
			return nil, fmt.Errorf("persist session %s: %w", day.DayKey, err)
		}

		for _, date := range day.Dates {
			for _, ex := range day.Exercises {
				mediaKey := ""
				if len(ex.Images) > 0 {
					mediaKey = ex.Images[0]
				}
				entries = append(entries, domain.DatedExerciseEntry{
					ID:           uuid.NewString(),
					UserID:       userID,
					Date:         date,
					ExerciseName: ex.Name,
					Instructions: domain.EntryInstructions{Sets: plan.Params.Sets, Reps: reps},
					Status:       domain.StatusIncomplete,
					WorkoutTitle: day.Name,
					MediaKey:     mediaKey,
				})
			}
		}
	}

	// Regeneration replaces the pending schedule. Completed entries stay as
	// history; only the incomplete ones are swapped for the new batch.
	if err := s.timeline.DeleteIncompleteByUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("clear pending timeline entries: %w", err)
	}
	if err := s.timeline.InsertMany(ctx, entries); err != nil {
		return nil, fmt.Errorf("persist timeline entries: %w", err)
	}

	log.WithFields(log.Fields{
		"userId":   userID,
		"planName": plan.PlanName,
		"days":     len(plan.Days),
		"entries":  len(entries),
		"warnings": len(plan.Warnings),
	}).Info("workout plan generated")

	return plan, nil
}
