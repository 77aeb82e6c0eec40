package mongo

import (
	"context"
	"errors"
	"fmt"

	"webfitpro/backend/internal/domain"
	"webfitpro/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sessionCollectionName = "UserSessions"

// mongoSessionRepository implements repository.SessionRepository using MongoDB.
type mongoSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoSessionRepository creates a new instance of mongoSessionRepository.
func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{
		collection: db.Collection(sessionCollectionName),
	}
}

// Create inserts a fresh session for the user. finished starts true so the
// first open re-initializes the session and assigns videos.
func (r *mongoSessionRepository) Create(ctx context.Context, userName string) error {
	session := domain.WorkoutSession{
		UserName:         userName,
		Videos:           []string{},
		Checks:           make([]bool, domain.SessionSize),
		CompleteSessions: 0,
		OpenedSessions:   0,
		Finished:         true,
	}

	_, err := r.collection.InsertOne(ctx, session)
	return err
}

// GetByUserName retrieves the session document for a user.
func (r *mongoSessionRepository) GetByUserName(ctx context.Context, userName string) (*domain.WorkoutSession, error) {
	var session domain.WorkoutSession
	filter := bson.M{"userName": userName}

	err := r.collection.FindOne(ctx, filter).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// ReplaceVideos swaps the videos array wholesale.
func (r *mongoSessionRepository) ReplaceVideos(ctx context.Context, userName string, urls []string) error {
	return r.setFields(ctx, userName, bson.M{"videos": urls})
}

// SetCheck sets checks[index] to the supplied value using a positional $set.
func (r *mongoSessionRepository) SetCheck(ctx context.Context, userName string, value bool, index int) error {
	field := fmt.Sprintf("checks.%d", index)
	return r.setFields(ctx, userName, bson.M{field: value})
}

// ResetChecks returns the checks array to all-false.
func (r *mongoSessionRepository) ResetChecks(ctx context.Context, userName string) error {
	return r.setFields(ctx, userName, bson.M{"checks": make([]bool, domain.SessionSize)})
}

// SetFinished updates the finished flag.
func (r *mongoSessionRepository) SetFinished(ctx context.Context, userName string, finished bool) error {
	return r.setFields(ctx, userName, bson.M{"finished": finished})
}

// IncrementCompleted atomically adds 1 to completesessions.
func (r *mongoSessionRepository) IncrementCompleted(ctx context.Context, userName string) error {
	return r.incField(ctx, userName, "completesessions")
}

// IncrementOpened atomically adds 1 to openedsessions.
func (r *mongoSessionRepository) IncrementOpened(ctx context.Context, userName string) error {
	return r.incField(ctx, userName, "openedsessions")
}

// Delete removes the session document for a user.
func (r *mongoSessionRepository) Delete(ctx context.Context, userName string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"userName": userName})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoSessionRepository) setFields(ctx context.Context, userName string, fields bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"userName": userName}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoSessionRepository) incField(ctx context.Context, userName string, field string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"userName": userName}, bson.M{"$inc": bson.M{field: 1}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureSessionIndexes creates necessary indexes for the UserSessions collection.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userName", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
