package timeline_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pulsefit/fitness-app/internal/domain"
	"pulsefit/fitness-app/internal/repository"
	"pulsefit/fitness-app/internal/timeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type missedCall struct {
	userID string
	date   string
	count  int
}

type fakeNotifier struct {
	calls []missedCall
	err   error
}

func (f *fakeNotifier) MissedWorkout(_ context.Context, userID, firstMissedDate string, missedCount int) error {
	f.calls = append(f.calls, missedCall{userID: userID, date: firstMissedDate, count: missedCount})
	return f.err
}

type fakeCache struct {
	invalidated []string
}

func (f *fakeCache) Read(string, time.Duration) ([]byte, bool) { return nil, false }
func (f *fakeCache) Write(string, []byte)                      {}
func (f *fakeCache) Invalidate(key string) {
	f.invalidated = append(f.invalidated, key)
}

func entry(id, date string, status domain.CompletionStatus) domain.DatedExerciseEntry {
	return domain.DatedExerciseEntry{
		ID:           id,
		UserID:       "u1",
		Date:         date,
		ExerciseName: "Push-Up",
		Status:       status,
		WorkoutTitle: "Push Day",
	}
}

func TestSync_NoTimeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	timelineRepo := NewMockTimelineRepository(ctrl)
	streakRepo := NewMockStreakRepository(ctrl)
	notifier := &fakeNotifier{}
	sessionCache := &fakeCache{}
	engine := timeline.NewEngine(timelineRepo, streakRepo, notifier, sessionCache)

	timelineRepo.EXPECT().ListByUser(gomock.Any(), "u1").Return(nil, repository.ErrNotFound)

	res := engine.Sync(context.Background(), "u1", "2024-01-05")
	assert.False(t, res.Success)
	assert.False(t, res.Shifted)
	assert.Equal(t, "No timeline found", res.Message)
	assert.Empty(t, notifier.calls)
}

func TestSync_NoIncompleteIsIdempotentNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	timelineRepo := NewMockTimelineRepository(ctrl)
	streakRepo := NewMockStreakRepository(ctrl)
	notifier := &fakeNotifier{}
	sessionCache := &fakeCache{}
	engine := timeline.NewEngine(timelineRepo, streakRepo, notifier, sessionCache)

	entries := []domain.DatedExerciseEntry{
		entry("e1", "2024-01-01", domain.StatusComplete),
		entry("e2", "2024-01-03", domain.StatusComplete),
	}
	timelineRepo.EXPECT().ListByUser(gomock.Any(), "u1").Return(entries, nil).Times(3)

	// Any number of repeated calls never mutates anything.
	for i := 0; i < 3; i++ {
		res := engine.Sync(context.Background(), "u1", "2024-01-10")
		assert.True(t, res.Success)
		assert.False(t, res.Shifted)
	}
	assert.Empty(t, notifier.calls)
	assert.Empty(t, sessionCache.invalidated)
}

func TestSync_UniformShiftAnchoredToEarliestIncomplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	timelineRepo := NewMockTimelineRepository(ctrl)
	streakRepo := NewMockStreakRepository(ctrl)
	notifier := &fakeNotifier{}
	sessionCache := &fakeCache{}
	engine := timeline.NewEngine(timelineRepo, streakRepo, notifier, sessionCache)

	entries := []domain.DatedExerciseEntry{
		entry("e3", "2024-01-03", domain.StatusIncomplete),
		entry("e1", "2024-01-01", domain.StatusIncomplete),
		entry("e2", "2024-01-02", domain.StatusComplete),
	}
	timelineRepo.EXPECT().ListByUser(gomock.Any(), "u1").Return(entries, nil)

	// Delta is 4 days, anchored to the earliest incomplete entry (01-01).
	// Every incomplete entry moves by the same delta; the complete one never.
	timelineRepo.EXPECT().UpdateDate(gomock.Any(), "e1", "2024-01-05").Return(nil)
	timelineRepo.EXPECT().UpdateDate(gomock.Any(), "e3", "2024-01-07").Return(nil)
	streakRepo.EXPECT().Reset(gomock.Any(), "u1", "2023-12-31").Return(nil)

	res := engine.Sync(context.Background(), "u1", "2024-01-05")
	require.True(t, res.Success)
	assert.True(t, res.Shifted)
	assert.Equal(t, "2024-01-05", res.NewDate)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, missedCall{userID: "u1", date: "2024-01-01", count: 2}, notifier.calls[0])
	assert.Equal(t, []string{"today:u1"}, sessionCache.invalidated)
}

func TestSync_NoBackwardOrZeroShift(t *testing.T) {
	ctrl := gomock.NewController(t)
	timelineRepo := NewMockTimelineRepository(ctrl)
	streakRepo := NewMockStreakRepository(ctrl)
	notifier := &fakeNotifier{}
	sessionCache := &fakeCache{}
	engine := timeline.NewEngine(timelineRepo, streakRepo, notifier, sessionCache)

	entries := []domain.DatedExerciseEntry{
		entry("e1", "2024-01-10", domain.StatusIncomplete),
	}
	timelineRepo.EXPECT().ListByUser(gomock.Any(), "u1").Return(entries, nil).Times(2)

	// Target equal to the earliest incomplete date: no-op.
	res := engine.Sync(context.Background(), "u1", "2024-01-10")
	assert.True(t, res.Success)
	assert.False(t, res.Shifted)

	// Target earlier than the earliest incomplete date: also a no-op.
	res = engine.Sync(context.Background(), "u1", "2024-01-08")
	assert.True(t, res.Success)
	assert.False(t, res.Shifted)

	assert.Empty(t, notifier.calls)
	assert.Empty(t, sessionCache.invalidated)
}

func TestSync_MissedBoundaryIsStrictlyBeforeTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	timelineRepo := NewMockTimelineRepository(ctrl)
	streakRepo := NewMockStreakRepository(ctrl)
	notifier := &fakeNotifier{}
	sessionCache := &fakeCache{}
	engine := timeline.NewEngine(timelineRepo, streakRepo, notifier, sessionCache)

	// One entry the day before the target, one exactly on it. Only the first
	// counts as missed; both still shift by the anchored delta of one day.
	entries := []domain.DatedExerciseEntry{
		entry("e1", "2024-01-04", domain.StatusIncomplete),
		entry("e2", "2024-01-05", domain.StatusIncomplete),
	}
	timelineRepo.EXPECT().ListByUser(gomock.Any(), "u1").Return(entries, nil)
	timelineRepo.EXPECT().UpdateDate(gomock.Any(), "e1", "2024-01-05").Return(nil)
	timelineRepo.EXPECT().UpdateDate(gomock.Any(), "e2", "2024-01-06").Return(nil)
	streakRepo.EXPECT().Reset(gomock.Any(), "u1", gomock.Any()).Return(nil)

	res := engine.Sync(context.Background(), "u1", "2024-01-05")
	require.True(t, res.Success)
	assert.True(t, res.Shifted)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, 1, notifier.calls[0].count)
	assert.Equal(t, "2024-01-04", notifier.calls[0].date)
}

func TestSync_WriteFailureAbortsWithoutRollback(t *testing.T) {
	ctrl := gomock.NewController(t)
	timelineRepo := NewMockTimelineRepository(ctrl)
	streakRepo := NewMockStreakRepository(ctrl)
	notifier := &fakeNotifier{}
	sessionCache := &fakeCache{}
	engine := timeline.NewEngine(timelineRepo, streakRepo, notifier, sessionCache)

	entries := []domain.DatedExerciseEntry{
		entry("e1", "2024-01-01", domain.StatusIncomplete),
		entry("e2", "2024-01-03", domain.StatusIncomplete),
	}
	timelineRepo.EXPECT().ListByUser(gomock.Any(), "u1").Return(entries, nil)
	streakRepo.EXPECT().Reset(gomock.Any(), "u1", gomock.Any()).Return(nil)

	// The first write fails; the second must not be attempted.
	timelineRepo.EXPECT().UpdateDate(gomock.Any(), "e1", "2024-01-05").Return(errors.New("store unavailable"))

	res := engine.Sync(context.Background(), "u1", "2024-01-05")
	assert.False(t, res.Success)
	assert.Equal(t, "Error updating exercises", res.Message)
	assert.Empty(t, sessionCache.invalidated)
}

func TestSync_NotificationAndStreakFailuresAreSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	timelineRepo := NewMockTimelineRepository(ctrl)
	streakRepo := NewMockStreakRepository(ctrl)
	notifier := &fakeNotifier{err: errors.New("push backend down")}
	sessionCache := &fakeCache{}
	engine := timeline.NewEngine(timelineRepo, streakRepo, notifier, sessionCache)

	entries := []domain.DatedExerciseEntry{
		entry("e1", "2024-01-01", domain.StatusIncomplete),
	}
	timelineRepo.EXPECT().ListByUser(gomock.Any(), "u1").Return(entries, nil)
	streakRepo.EXPECT().Reset(gomock.Any(), "u1", gomock.Any()).Return(errors.New("store unavailable"))
	timelineRepo.EXPECT().UpdateDate(gomock.Any(), "e1", "2024-01-05").Return(nil)

	res := engine.Sync(context.Background(), "u1", "2024-01-05")
	assert.True(t, res.Success)
	assert.True(t, res.Shifted)
}

func TestSync_InvalidTargetDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	timelineRepo := NewMockTimelineRepository(ctrl)
	streakRepo := NewMockStreakRepository(ctrl)
	engine := timeline.NewEngine(timelineRepo, streakRepo, &fakeNotifier{}, &fakeCache{})

	res := engine.Sync(context.Background(), "u1", "not-a-date")
	assert.False(t, res.Success)
	assert.False(t, res.Shifted)
}
