package service

import (
	"context"
	"errors"
	"fmt"

	"webfitpro/backend/internal/domain"
	"webfitpro/backend/internal/repository"
)

// --- Error Definitions ---
var (
	ErrUserExists       = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidPassword  = errors.New("incorrect password")
	ErrLikeListNotFound = errors.New("like list not found")
)

// RegisterInput carries the fields a new account is created from.
type RegisterInput struct {
	UserName string
	Age      int
	Gender   string
	Height   int
	Weight   int
	Password string
}

// AccountService manages accounts: registration, login, profile updates and
// the admin operations (approval, listing, cascading delete).
type AccountService interface {
	// Register creates the User plus its dependent LikeList and
	// WorkoutSession documents as a best-effort sequence. A failed LikeList
	// insert undoes the user insert; a failed session insert has no
	// compensation.
	Register(ctx context.Context, input RegisterInput) error
	Login(ctx context.Context, userName, password string) (*domain.User, error)
	Profile(ctx context.Context, userName string) (*domain.User, error)
	SessionStats(ctx context.Context, userName string) (*domain.WorkoutSession, error)
	UpdateDetails(ctx context.Context, userName string, age, height, weight int) error
	AllUsers(ctx context.Context) ([]domain.User, error)
	PendingUsers(ctx context.Context) ([]domain.User, error)
	Approve(ctx context.Context, userName string) error
	// DeleteAccount removes the user and their dependent documents,
	// decrementing likeCount on every video they had liked. Steps that fail
	// are reported without undoing earlier steps.
	DeleteAccount(ctx context.Context, userName string) error
}

// accountService implements the AccountService interface.
type accountService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	likes    repository.LikeRepository
	videos   repository.VideoRepository
}

// NewAccountService creates a new instance of accountService.
func NewAccountService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	likes repository.LikeRepository,
	videos repository.VideoRepository,
) AccountService {
	return &accountService{
		users:    users,
		sessions: sessions,
		likes:    likes,
		videos:   videos,
	}
}

// Register creates a new account with its dependent documents.
func (s *accountService) Register(ctx context.Context, input RegisterInput) error {
	_, err := s.users.GetByUserName(ctx, input.UserName)
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	user := &domain.User{
		UserName:     input.UserName,
		Age:          input.Age,
		Gender:       input.Gender,
		Height:       input.Height,
		Weight:       input.Weight,
		Password:     input.Password,
		IsAdmin:      domain.FlagNo,
		IsRegistered: domain.FlagNo,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The unique index closes the race between the existence check and
		// the insert.
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrUserExists
		}
		return err
	}

	if err := s.likes.Create(ctx, input.UserName); err != nil {
		// Best-effort undo of the user insert; the delete failure itself is
		// not recoverable here.
		_ = s.users.Delete(ctx, input.UserName)
		return fmt.Errorf("create like list: %w", err)
	}

	if err := s.sessions.Create(ctx, input.UserName); err != nil {
		return fmt.Errorf("create workout session: %w", err)
	}

	return nil
}

// Login verifies the stored password by equality and returns the account.
func (s *accountService) Login(ctx context.Context, userName, password string) (*domain.User, error) {
	user, err := s.users.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.Password != password {
		return nil, ErrInvalidPassword
	}
	return user, nil
}

// Profile returns the account document for a user.
func (s *accountService) Profile(ctx context.Context, userName string) (*domain.User, error) {
	user, err := s.users.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// SessionStats returns the raw session document, counters included.
func (s *accountService) SessionStats(ctx context.Context, userName string) (*domain.WorkoutSession, error) {
	session, err := s.sessions.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// UpdateDetails changes the self-service profile fields.
func (s *accountService) UpdateDetails(ctx context.Context, userName string, age, height, weight int) error {
	err := s.users.UpdateDetails(ctx, userName, age, height, weight)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *accountService) AllUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *accountService) PendingUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.FindPending(ctx)
}

// Approve marks a pending account as registered.
func (s *accountService) Approve(ctx context.Context, userName string) error {
	err := s.users.SetRegistered(ctx, userName)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// DeleteAccount cascades over the user's documents: first give back the like
// counts, then remove the session, the like list and finally the user. Not
// transactional; a failed step leaves earlier steps applied.
func (s *accountService) DeleteAccount(ctx context.Context, userName string) error {
	urls, err := s.likes.URLsByUser(ctx, userName)
	if err != nil {
		return err
	}
	for _, url := range urls {
		if _, err := s.videos.ChangeLikeCount(ctx, url, -1); err != nil {
			// A video removed from the catalog no longer carries a count to
			// correct.
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return err
		}
	}

	if err := s.sessions.Delete(ctx, userName); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	if err := s.likes.Delete(ctx, userName); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLikeListNotFound
		}
		return err
	}
	if err := s.users.Delete(ctx, userName); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return nil
}
