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

const userCollectionName = "Users"

// mongoUserRepository implements repository.UserRepository using MongoDB.
type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new instance of mongoUserRepository.
// It expects a connected *mongo.Database instance.
func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &mongoUserRepository{
		collection: db.Collection(userCollectionName),
	}
}

// Create inserts a new user document.
func (r *mongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.UserName == "" {
		return errors.New("user name is required")
	}

	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByUserName retrieves a user by their unique userName.
func (r *mongoUserRepository) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	var user domain.User
	filter := bson.M{"userName": userName}

	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateDetails sets the self-service profile fields for a user.
func (r *mongoUserRepository) UpdateDetails(ctx context.Context, userName string, age, height, weight int) error {
	filter := bson.M{"userName": userName}
	update := bson.M{
		"$set": bson.M{
			"age":    age,
			"height": height,
			"weight": weight,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// SetRegistered flips the isRegistered flag to "Y" for a user.
func (r *mongoUserRepository) SetRegistered(ctx context.Context, userName string) error {
	filter := bson.M{"userName": userName}
	update := bson.M{"$set": bson.M{"isRegistered": domain.FlagYes}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a user document by userName.
func (r *mongoUserRepository) Delete(ctx context.Context, userName string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"userName": userName})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// FindPending returns all users awaiting admin approval, projected down to
// the fields the approval screen needs.
func (r *mongoUserRepository) FindPending(ctx context.Context) ([]domain.User, error) {
	filter := bson.M{"isRegistered": domain.FlagNo}
	opts := options.Find().SetProjection(bson.M{"userName": 1, "isRegistered": 1, "_id": 0})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []domain.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindAll returns every user document.
func (r *mongoUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []domain.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// EnsureUserIndexes creates necessary indexes for the Users collection.
// Call this once during application startup.
func EnsureUserIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userName", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "isRegistered", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
