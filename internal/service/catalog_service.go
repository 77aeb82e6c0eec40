package service

import (
	"context"
	"errors"

	"webfitpro/backend/internal/domain"
	"webfitpro/backend/internal/repository"
)

var ErrQuoteNotFound = errors.New("no quotes available")

// VideoList is a catalog listing paired with the requesting user's like
// status for each entry, index-aligned with Videos.
type VideoList struct {
	Videos []domain.Video `json:"videos"`
	Likes  []bool         `json:"likes"`
}

// CatalogService serves the read-side discovery queries and the homepage
// quote. All listings are filtered by body part and carry a like overlay for
// the requesting user.
type CatalogService interface {
	SortByTitle(ctx context.Context, userName, bodyPart string, ascending bool) (*VideoList, error)
	SortByLikes(ctx context.Context, userName, bodyPart string, highestFirst bool) (*VideoList, error)
	SortByDifficulty(ctx context.Context, userName, bodyPart string, beginnerFirst bool) (*VideoList, error)
	FilterByBodyPart(ctx context.Context, userName, bodyPart string) (*VideoList, error)
	RandomQuote(ctx context.Context) (*domain.Quote, error)
}

// catalogService implements the CatalogService interface.
type catalogService struct {
	videos repository.VideoRepository
	likes  repository.LikeRepository
	quotes repository.QuoteRepository
}

// NewCatalogService creates a new instance of catalogService.
func NewCatalogService(
	videos repository.VideoRepository,
	likes repository.LikeRepository,
	quotes repository.QuoteRepository,
) CatalogService {
	return &catalogService{
		videos: videos,
		likes:  likes,
		quotes: quotes,
	}
}

func (s *catalogService) SortByTitle(ctx context.Context, userName, bodyPart string, ascending bool) (*VideoList, error) {
	videos, err := s.videos.SortedByTitle(ctx, bodyPart, ascending)
	if err != nil {
		return nil, err
	}
	return s.withLikes(ctx, userName, videos)
}

func (s *catalogService) SortByLikes(ctx context.Context, userName, bodyPart string, highestFirst bool) (*VideoList, error) {
	videos, err := s.videos.SortedByLikeCount(ctx, bodyPart, highestFirst)
	if err != nil {
		return nil, err
	}
	return s.withLikes(ctx, userName, videos)
}

func (s *catalogService) SortByDifficulty(ctx context.Context, userName, bodyPart string, beginnerFirst bool) (*VideoList, error) {
	videos, err := s.videos.SortedByDifficulty(ctx, bodyPart, beginnerFirst)
	if err != nil {
		return nil, err
	}
	return s.withLikes(ctx, userName, videos)
}

func (s *catalogService) FilterByBodyPart(ctx context.Context, userName, bodyPart string) (*VideoList, error) {
	videos, err := s.videos.FindByBodyPart(ctx, bodyPart)
	if err != nil {
		return nil, err
	}
	return s.withLikes(ctx, userName, videos)
}

func (s *catalogService) RandomQuote(ctx context.Context) (*domain.Quote, error) {
	quote, err := s.quotes.Random(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, err
	}
	return quote, nil
}

// withLikes attaches the user's like status for each listed video.
func (s *catalogService) withLikes(ctx context.Context, userName string, videos []domain.Video) (*VideoList, error) {
	likes := make([]bool, 0, len(videos))
	for _, video := range videos {
		liked, err := s.likes.Contains(ctx, userName, video.URL)
		if err != nil {
			return nil, err
		}
		likes = append(likes, liked)
	}

	return &VideoList{Videos: videos, Likes: likes}, nil
}
