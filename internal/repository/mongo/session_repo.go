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

const sessionCollectionName = "workout_sessions"

// mongoSessionRepository implements repository.SessionRepository
type mongoSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoSessionRepository creates a new WorkoutSession repository backed by MongoDB.
func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{
		collection: db.Collection(sessionCollectionName),
	}
}

// Upsert writes the session document, matching on the deterministic session id.
// An existing document is updated in place; CreatedAt is only set on insert.
func (r *mongoSessionRepository) Upsert(ctx context.Context, session *domain.WorkoutSession) error {
	if session.SessionID == "" || session.UserID == "" {
		return errors.New("session ID and user ID are required")
	}

	filter := bson.M{"_id": session.SessionID, "userId": session.UserID}
	update := bson.M{
		"$set": bson.M{
			"sessionName":   session.SessionName,
			"exerciseIds":   session.ExerciseIDs,
			"exerciseNames": session.ExerciseNames,
			"workoutPlanId": session.WorkoutPlanID,
			"dayOfWeek":     session.DayOfWeek,
			"dates":         session.Dates,
		},
		"$setOnInsert": bson.M{
			"userId":    session.UserID,
			"createdAt": time.Now().UTC(),
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// GetByID retrieves a session document by its id.
func (r *mongoSessionRepository) GetByID(ctx context.Context, sessionID string) (*domain.WorkoutSession, error) {
	var session domain.WorkoutSession
	err := r.collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// GetByUserID retrieves all session documents for a user, oldest first.
func (r *mongoSessionRepository) GetByUserID(ctx context.Context, userID string) ([]domain.WorkoutSession, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []domain.WorkoutSession
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// EnsureSessionIndexes creates necessary indexes for the sessions collection.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
