package mongo

import (
	"context"
	"errors"

	"pulsefit/fitness-app/internal/domain"
	"pulsefit/fitness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const timelineCollectionName = "timeline_entries"

// mongoTimelineRepository implements repository.TimelineRepository
type mongoTimelineRepository struct {
	collection *mongo.Collection
}

// NewMongoTimelineRepository creates a new timeline repository backed by MongoDB.
func NewMongoTimelineRepository(db *mongo.Database) repository.TimelineRepository {
	return &mongoTimelineRepository{
		collection: db.Collection(timelineCollectionName),
	}
}

// InsertMany writes a batch of dated entries, typically during plan generation.
func (r *mongoTimelineRepository) InsertMany(ctx context.Context, entries []domain.DatedExerciseEntry) error {
	if len(entries) == 0 {
		return nil
	}
	docs := make([]interface{}, len(entries))
	for i := range entries {
		if entries[i].ID == "" || entries[i].UserID == "" {
			return errors.New("entry ID and user ID are required")
		}
		docs[i] = entries[i]
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// ListByUser returns every dated entry for the user, in store order.
// Returns ErrNotFound when the user has no timeline at all, so callers can
// distinguish "never generated a plan" from an empty result.
func (r *mongoTimelineRepository) ListByUser(ctx context.Context, userID string) ([]domain.DatedExerciseEntry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []domain.DatedExerciseEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, repository.ErrNotFound
	}
	return entries, nil
}

// GetByID retrieves a single dated entry.
func (r *mongoTimelineRepository) GetByID(ctx context.Context, entryID string) (*domain.DatedExerciseEntry, error) {
	var entry domain.DatedExerciseEntry
	err := r.collection.FindOne(ctx, bson.M{"_id": entryID}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// UpdateDate rewrites the entry's date, leaving every other field intact.
func (r *mongoTimelineRepository) UpdateDate(ctx context.Context, entryID, newDate string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": entryID},
		bson.M{"$set": bson.M{"date": newDate}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// SetStatus updates the completion status of an entry.
func (r *mongoTimelineRepository) SetStatus(ctx context.Context, entryID string, status domain.CompletionStatus) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": entryID},
		bson.M{"$set": bson.M{"completionStatus": status}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteIncompleteByUser removes the user's pending entries; completed ones
// are kept as workout history.
func (r *mongoTimelineRepository) DeleteIncompleteByUser(ctx context.Context, userID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{
		"userId":           userID,
		"completionStatus": domain.StatusIncomplete,
	})
	return err
}

// EnsureTimelineIndexes creates necessary indexes for the timeline collection.
func EnsureTimelineIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
