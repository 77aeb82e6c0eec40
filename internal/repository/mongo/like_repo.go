package mongo

import (
	"context"
	"errors"

	"webfitpro/backend/internal/domain"
	"webfitpro/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const likeCollectionName = "UsersLike"

// mongoLikeRepository implements repository.LikeRepository using MongoDB.
type mongoLikeRepository struct {
	collection *mongo.Collection
}

// NewMongoLikeRepository creates a new instance of mongoLikeRepository.
func NewMongoLikeRepository(db *mongo.Database) repository.LikeRepository {
	return &mongoLikeRepository{
		collection: db.Collection(likeCollectionName),
	}
}

// Create inserts an empty like list for the user.
func (r *mongoLikeRepository) Create(ctx context.Context, userName string) error {
	likes := domain.LikeList{
		UserName: userName,
		URLs:     []string{},
	}

	_, err := r.collection.InsertOne(ctx, likes)
	return err
}

// URLsByUser returns every URL the user has liked. A missing document yields
// an empty slice, not an error.
func (r *mongoLikeRepository) URLsByUser(ctx context.Context, userName string) ([]string, error) {
	var likes domain.LikeList
	filter := bson.M{"userName": userName}
	opts := options.FindOne().SetProjection(bson.M{"url": 1, "_id": 0})

	err := r.collection.FindOne(ctx, filter, opts).Decode(&likes)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []string{}, nil
		}
		return nil, err
	}
	return likes.URLs, nil
}

// Contains reports whether the URL is in the user's like set.
func (r *mongoLikeRepository) Contains(ctx context.Context, userName, url string) (bool, error) {
	// Matching a scalar against an array field checks membership.
	filter := bson.M{"userName": userName, "url": url}

	err := r.collection.FindOne(ctx, filter).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// AddURL adds a URL to the user's like set. $addToSet keeps membership unique.
func (r *mongoLikeRepository) AddURL(ctx context.Context, userName, url string) error {
	filter := bson.M{"userName": userName}
	update := bson.M{"$addToSet": bson.M{"url": url}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// RemoveURL removes a URL from the user's like set.
func (r *mongoLikeRepository) RemoveURL(ctx context.Context, userName, url string) error {
	filter := bson.M{"userName": userName}
	update := bson.M{"$pull": bson.M{"url": url}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes the like list for a user.
func (r *mongoLikeRepository) Delete(ctx context.Context, userName string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"userName": userName})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureLikeIndexes creates necessary indexes for the UsersLike collection.
func EnsureLikeIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userName", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
