package repository

import (
	"context"

	"webfitpro/backend/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the accessors for the Users collection.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUserName(ctx context.Context, userName string) (*domain.User, error)
	// UpdateDetails replaces the self-service profile fields only.
	UpdateDetails(ctx context.Context, userName string, age, height, weight int) error
	// SetRegistered flips isRegistered to "Y" (admin approval).
	SetRegistered(ctx context.Context, userName string) error
	Delete(ctx context.Context, userName string) error
	// FindPending returns users with isRegistered="N", projected down to
	// userName and isRegistered.
	FindPending(ctx context.Context) ([]domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
}

// SessionRepository defines the accessors for the UserSessions collection.
type SessionRepository interface {
	// Create inserts a fresh session: no videos, all checks false, zero
	// counters, finished=true so the first open triggers assignment.
	Create(ctx context.Context, userName string) error
	GetByUserName(ctx context.Context, userName string) (*domain.WorkoutSession, error)
	// ReplaceVideos swaps the videos array wholesale; no partial update.
	ReplaceVideos(ctx context.Context, userName string, urls []string) error
	// SetCheck sets checks[index] to the exact value supplied.
	SetCheck(ctx context.Context, userName string, value bool, index int) error
	ResetChecks(ctx context.Context, userName string) error
	SetFinished(ctx context.Context, userName string, finished bool) error
	IncrementCompleted(ctx context.Context, userName string) error
	IncrementOpened(ctx context.Context, userName string) error
	Delete(ctx context.Context, userName string) error
}

// LikeRepository defines the accessors for the UsersLike collection.
type LikeRepository interface {
	Create(ctx context.Context, userName string) error
	URLsByUser(ctx context.Context, userName string) ([]string, error)
	Contains(ctx context.Context, userName, url string) (bool, error)
	AddURL(ctx context.Context, userName, url string) error
	RemoveURL(ctx context.Context, userName, url string) error
	Delete(ctx context.Context, userName string) error
}

// VideoRepository defines the accessors for the Videos collection.
type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) error
	GetByURL(ctx context.Context, url string) (*domain.Video, error)
	// ChangeLikeCount applies an atomic $inc of delta (+1 or -1 from all
	// call sites) and returns the updated document.
	ChangeLikeCount(ctx context.Context, url string, delta int) (*domain.Video, error)
	// SampleByDifficulty picks one video URL uniformly at random from each
	// difficulty tier. Tiers with no videos are omitted, so the result may
	// hold fewer than domain.SessionSize entries.
	SampleByDifficulty(ctx context.Context) ([]string, error)
	SortedByTitle(ctx context.Context, bodyPart string, ascending bool) ([]domain.Video, error)
	SortedByLikeCount(ctx context.Context, bodyPart string, highestFirst bool) ([]domain.Video, error)
	SortedByDifficulty(ctx context.Context, bodyPart string, beginnerFirst bool) ([]domain.Video, error)
	FindByBodyPart(ctx context.Context, bodyPart string) ([]domain.Video, error)
	DeleteByURL(ctx context.Context, url string) error
}

// QuoteRepository defines the accessors for the Quotes collection.
type QuoteRepository interface {
	Create(ctx context.Context, quote *domain.Quote) error
	Random(ctx context.Context) (*domain.Quote, error)
}
