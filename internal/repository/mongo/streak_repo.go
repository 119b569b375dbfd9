package mongo

import (
	"context"
	"errors"
	"time"

	"pulsefit/fitness-app/internal/domain"
	"pulsefit/fitness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const streakCollectionName = "streaks"

// mongoStreakRepository implements repository.StreakRepository
type mongoStreakRepository struct {
	collection *mongo.Collection
}

// NewMongoStreakRepository creates a new Streak repository backed by MongoDB.
func NewMongoStreakRepository(db *mongo.Database) repository.StreakRepository {
	return &mongoStreakRepository{
		collection: db.Collection(streakCollectionName),
	}
}

// Get retrieves the user's streak document.
func (r *mongoStreakRepository) Get(ctx context.Context, userID string) (*domain.Streak, error) {
	var streak domain.Streak
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&streak)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &streak, nil
}

// Reset zeroes the streak counter, recording the week in which it happened.
// Upserts so a user who never completed a workout still gets a document.
func (r *mongoStreakRepository) Reset(ctx context.Context, userID, weekStart string) error {
	update := bson.M{
		"$set": bson.M{
			"count":           0,
			"streakResetDate": weekStart,
			"updatedAt":       time.Now().UTC(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update, options.Update().SetUpsert(true))
	return err
}
