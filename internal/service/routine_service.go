package service

import (
	"context"
	"errors"

	"webfitpro/backend/internal/domain"
	"webfitpro/backend/internal/repository"
)

// --- Error Definitions ---
var (
	ErrSessionNotFound   = errors.New("workout session not found")
	ErrVideoNotFound     = errors.New("video not found")
	ErrInvalidCheckIndex = errors.New("check index out of range")
)

// SessionView is a workout session enriched with the full video documents
// and the user's like status per video, in session order.
type SessionView struct {
	UserName         string         `json:"userName"`
	Videos           []domain.Video `json:"videos"`
	Checks           []bool         `json:"checks"`
	CompleteSessions int            `json:"completesessions"`
	OpenedSessions   int            `json:"openedsessions"`
	Finished         bool           `json:"finished"`
	Likes            []bool         `json:"likes"`
}

// RoutineService drives the workout session state machine: lazy
// re-initialization of finished sessions, per-exercise completion checks,
// submit counting and like toggling.
type RoutineService interface {
	// OpenSession returns the user's current session, re-initializing it
	// first when the previous cycle was finished.
	OpenSession(ctx context.Context, userName string) (*SessionView, error)
	// SubmitSession counts the checked exercises. When all of them are
	// checked it credits a completed session and marks the session finished;
	// otherwise it leaves the session untouched. Returns the check count.
	SubmitSession(ctx context.Context, userName string) (int, error)
	// MarkDone sets checks[index] to the exact value supplied.
	MarkDone(ctx context.Context, userName string, index int, done bool) error
	// ToggleLike moves the user's like state for a video toward the requested
	// state; a request matching the current state is a no-op, which keeps
	// repeated identical requests from double counting.
	ToggleLike(ctx context.Context, userName, url string, like bool) error
}

// routineService implements the RoutineService interface.
type routineService struct {
	sessions repository.SessionRepository
	videos   repository.VideoRepository
	likes    repository.LikeRepository
}

// NewRoutineService creates a new instance of routineService.
func NewRoutineService(
	sessions repository.SessionRepository,
	videos repository.VideoRepository,
	likes repository.LikeRepository,
) RoutineService {
	return &routineService{
		sessions: sessions,
		videos:   videos,
		likes:    likes,
	}
}

// OpenSession retrieves the session, re-initializing it when finished.
//
// Re-initialization is a sequence of independent writes (sample videos,
// replace, reset checks, clear finished, bump openedsessions). There is no
// transaction around them; a crash mid-sequence leaves a mixed state.
func (s *routineService) OpenSession(ctx context.Context, userName string) (*SessionView, error) {
	session, err := s.sessions.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if session.Finished {
		urls, err := s.videos.SampleByDifficulty(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.sessions.ReplaceVideos(ctx, userName, urls); err != nil {
			return nil, err
		}
		if err := s.sessions.ResetChecks(ctx, userName); err != nil {
			return nil, err
		}
		if err := s.sessions.SetFinished(ctx, userName, false); err != nil {
			return nil, err
		}
		if err := s.sessions.IncrementOpened(ctx, userName); err != nil {
			return nil, err
		}

		session, err = s.sessions.GetByUserName(ctx, userName)
		if err != nil {
			return nil, err
		}
	}

	return s.buildView(ctx, session)
}

// SubmitSession applies the completion transition when every check is set.
func (s *routineService) SubmitSession(ctx context.Context, userName string) (int, error) {
	session, err := s.sessions.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrSessionNotFound
		}
		return 0, err
	}

	count := session.CheckedCount()
	if count == domain.SessionSize {
		if err := s.sessions.IncrementCompleted(ctx, userName); err != nil {
			return 0, err
		}
		if err := s.sessions.SetFinished(ctx, userName, true); err != nil {
			return 0, err
		}
	}

	return count, nil
}

// MarkDone sets a single completion check.
func (s *routineService) MarkDone(ctx context.Context, userName string, index int, done bool) error {
	if index < 0 || index >= domain.SessionSize {
		return ErrInvalidCheckIndex
	}

	err := s.sessions.SetCheck(ctx, userName, done, index)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrSessionNotFound
	}
	return err
}

// ToggleLike keeps the user's like set and the video's likeCount in step.
// The two writes are not atomic; concurrent toggles for the same pair can
// still double count.
func (s *routineService) ToggleLike(ctx context.Context, userName, url string, like bool) error {
	liked, err := s.likes.Contains(ctx, userName, url)
	if err != nil {
		return err
	}

	switch {
	case like && !liked:
		if err := s.likes.AddURL(ctx, userName, url); err != nil {
			return err
		}
		if _, err := s.videos.ChangeLikeCount(ctx, url, 1); err != nil {
			return err
		}
	case !like && liked:
		if err := s.likes.RemoveURL(ctx, userName, url); err != nil {
			return err
		}
		if _, err := s.videos.ChangeLikeCount(ctx, url, -1); err != nil {
			return err
		}
	}

	return nil
}

// buildView resolves the session's video URLs to full documents and attaches
// the user's like status for each.
func (s *routineService) buildView(ctx context.Context, session *domain.WorkoutSession) (*SessionView, error) {
	view := &SessionView{
		UserName:         session.UserName,
		Videos:           make([]domain.Video, 0, len(session.Videos)),
		Checks:           session.Checks,
		CompleteSessions: session.CompleteSessions,
		OpenedSessions:   session.OpenedSessions,
		Finished:         session.Finished,
		Likes:            make([]bool, 0, len(session.Videos)),
	}

	for _, url := range session.Videos {
		video, err := s.videos.GetByURL(ctx, url)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrVideoNotFound
			}
			return nil, err
		}
		liked, err := s.likes.Contains(ctx, session.UserName, url)
		if err != nil {
			return nil, err
		}

		view.Videos = append(view.Videos, *video)
		view.Likes = append(view.Likes, liked)
	}

	return view, nil
}
