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

const videoCollectionName = "Videos"

// mongoVideoRepository implements repository.VideoRepository using MongoDB.
type mongoVideoRepository struct {
	collection *mongo.Collection
}

// NewMongoVideoRepository creates a new instance of mongoVideoRepository.
func NewMongoVideoRepository(db *mongo.Database) repository.VideoRepository {
	return &mongoVideoRepository{
		collection: db.Collection(videoCollectionName),
	}
}

// Create inserts a new catalog entry with a zero like count.
func (r *mongoVideoRepository) Create(ctx context.Context, video *domain.Video) error {
	if video.URL == "" {
		return errors.New("video url is required")
	}
	video.LikeCount = 0

	_, err := r.collection.InsertOne(ctx, video)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByURL retrieves a video by its unique URL.
func (r *mongoVideoRepository) GetByURL(ctx context.Context, url string) (*domain.Video, error) {
	var video domain.Video
	filter := bson.M{"url": url}

	err := r.collection.FindOne(ctx, filter).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

// ChangeLikeCount atomically applies delta to likeCount and returns the
// updated document.
func (r *mongoVideoRepository) ChangeLikeCount(ctx context.Context, url string, delta int) (*domain.Video, error) {
	filter := bson.M{"url": url}
	update := bson.M{"$inc": bson.M{"likeCount": delta}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var video domain.Video
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

// SampleByDifficulty picks one video URL uniformly at random from each
// difficulty tier. A tier with no videos is skipped, so the result may hold
// fewer than domain.SessionSize URLs on a sparse catalog.
func (r *mongoVideoRepository) SampleByDifficulty(ctx context.Context) ([]string, error) {
	urls := make([]string, 0, len(domain.DifficultyTiers))

	for _, tier := range domain.DifficultyTiers {
		pipeline := mongo.Pipeline{
			bson.D{{Key: "$match", Value: bson.M{"difficulty": tier}}},
			bson.D{{Key: "$sample", Value: bson.M{"size": 1}}},
			bson.D{{Key: "$project", Value: bson.M{"url": 1, "_id": 0}}},
		}

		cursor, err := r.collection.Aggregate(ctx, pipeline)
		if err != nil {
			return nil, err
		}

		var sampled []domain.Video
		if err := cursor.All(ctx, &sampled); err != nil {
			return nil, err
		}
		if len(sampled) > 0 {
			urls = append(urls, sampled[0].URL)
		}
	}

	return urls, nil
}

// SortedByTitle returns the body-part-filtered catalog ordered by title.
func (r *mongoVideoRepository) SortedByTitle(ctx context.Context, bodyPart string, ascending bool) ([]domain.Video, error) {
	order := -1
	if ascending {
		order = 1
	}
	opts := options.Find().SetSort(bson.D{{Key: "title", Value: order}})
	return r.findVideos(ctx, bson.M{"bodyPart": bodyPart}, opts)
}

// SortedByLikeCount returns the body-part-filtered catalog ordered by likes.
func (r *mongoVideoRepository) SortedByLikeCount(ctx context.Context, bodyPart string, highestFirst bool) ([]domain.Video, error) {
	order := 1
	if highestFirst {
		order = -1
	}
	opts := options.Find().SetSort(bson.D{{Key: "likeCount", Value: order}})
	return r.findVideos(ctx, bson.M{"bodyPart": bodyPart}, opts)
}

// SortedByDifficulty orders videos by the fixed three-tier difficulty
// ordering, optionally reversed. Mongo has no native ordering for the tier
// strings, so the pipeline ranks each document with $indexOfArray first.
func (r *mongoVideoRepository) SortedByDifficulty(ctx context.Context, bodyPart string, beginnerFirst bool) ([]domain.Video, error) {
	tiers := make([]domain.Difficulty, len(domain.DifficultyTiers))
	copy(tiers, domain.DifficultyTiers)
	if !beginnerFirst {
		for i, j := 0, len(tiers)-1; i < j; i, j = i+1, j-1 {
			tiers[i], tiers[j] = tiers[j], tiers[i]
		}
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"bodyPart": bodyPart}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"difficultyOrder": bson.M{"$indexOfArray": bson.A{tiers, "$difficulty"}},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"difficultyOrder": 1}}},
		bson.D{{Key: "$project", Value: bson.M{"difficultyOrder": 0}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	videos := []domain.Video{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// FindByBodyPart returns all videos for a body part in storage order.
func (r *mongoVideoRepository) FindByBodyPart(ctx context.Context, bodyPart string) ([]domain.Video, error) {
	return r.findVideos(ctx, bson.M{"bodyPart": bodyPart}, options.Find())
}

// DeleteByURL removes a video from the catalog.
func (r *mongoVideoRepository) DeleteByURL(ctx context.Context, url string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"url": url})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoVideoRepository) findVideos(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Video, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	videos := []domain.Video{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// EnsureVideoIndexes creates necessary indexes for the Videos collection.
func EnsureVideoIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "url", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "bodyPart", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "difficulty", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
