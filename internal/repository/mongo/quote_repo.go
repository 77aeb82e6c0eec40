package mongo

import (
	"context"

	"webfitpro/backend/internal/domain"
	"webfitpro/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const quoteCollectionName = "Quotes"

// mongoQuoteRepository implements repository.QuoteRepository using MongoDB.
type mongoQuoteRepository struct {
	collection *mongo.Collection
}

// NewMongoQuoteRepository creates a new instance of mongoQuoteRepository.
func NewMongoQuoteRepository(db *mongo.Database) repository.QuoteRepository {
	return &mongoQuoteRepository{
		collection: db.Collection(quoteCollectionName),
	}
}

// Create inserts a quote document.
func (r *mongoQuoteRepository) Create(ctx context.Context, quote *domain.Quote) error {
	_, err := r.collection.InsertOne(ctx, quote)
	return err
}

// Random samples one quote uniformly at random from the collection.
func (r *mongoQuoteRepository) Random(ctx context.Context) (*domain.Quote, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sample", Value: bson.M{"size": 1}}},
		bson.D{{Key: "$project", Value: bson.M{"_id": 0}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var quotes []domain.Quote
	if err := cursor.All(ctx, &quotes); err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, repository.ErrNotFound
	}
	return &quotes[0], nil
}
