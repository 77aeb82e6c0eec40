package service

import (
	"context"
	"testing"

	"webfitpro/backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routineFixture(t *testing.T) (RoutineService, *fakeSessionRepo, *fakeVideoRepo, *fakeLikeRepo) {
	t.Helper()

	videos := newFakeVideoRepo(
		domain.Video{URL: "http://v/beginner", Title: "Morning Stretch", Difficulty: domain.DifficultyBeginner, BodyPart: "Full Body"},
		domain.Video{URL: "http://v/intermediate", Title: "HIIT Blast", Difficulty: domain.DifficultyIntermediate, BodyPart: "Full Body"},
		domain.Video{URL: "http://v/advanced", Title: "Abs Circuit", Difficulty: domain.DifficultyAdvanced, BodyPart: "Abs"},
	)
	sessions := newFakeSessionRepo()
	likes := newFakeLikeRepo()

	require.NoError(t, sessions.Create(context.Background(), "alice"))
	require.NoError(t, likes.Create(context.Background(), "alice"))

	return NewRoutineService(sessions, videos, likes), sessions, videos, likes
}

func TestOpenSessionReinitializesFinishedSession(t *testing.T) {
	svc, sessions, _, _ := routineFixture(t)
	ctx := context.Background()

	// A fresh registration starts finished, so the first open assigns videos.
	view, err := svc.OpenSession(ctx, "alice")
	require.NoError(t, err)

	assert.False(t, view.Finished)
	assert.Equal(t, 1, view.OpenedSessions)
	assert.Equal(t, 0, view.CompleteSessions)
	assert.Equal(t, []bool{false, false, false}, view.Checks)
	assert.Equal(t, []bool{false, false, false}, view.Likes)

	require.Len(t, view.Videos, 3)
	seen := map[string]bool{}
	for _, video := range view.Videos {
		assert.False(t, seen[video.URL], "duplicate video %s", video.URL)
		seen[video.URL] = true
	}

	stored := sessions.sessions["alice"]
	assert.False(t, stored.Finished)
	assert.Equal(t, 1, stored.OpenedSessions)
}

func TestOpenSessionActiveSessionUntouched(t *testing.T) {
	svc, sessions, _, _ := routineFixture(t)
	ctx := context.Background()

	_, err := svc.OpenSession(ctx, "alice")
	require.NoError(t, err)
	require.NoError(t, sessions.SetCheck(ctx, "alice", true, 0))

	view, err := svc.OpenSession(ctx, "alice")
	require.NoError(t, err)

	// No re-initialization: counters stay and the check survives.
	assert.Equal(t, 1, view.OpenedSessions)
	assert.Equal(t, []bool{true, false, false}, view.Checks)
}

func TestOpenSessionUnknownUser(t *testing.T) {
	svc, _, _, _ := routineFixture(t)

	_, err := svc.OpenSession(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestOpenSessionMissingVideo(t *testing.T) {
	svc, sessions, _, _ := routineFixture(t)
	ctx := context.Background()

	sessions.sessions["alice"].Finished = false
	sessions.sessions["alice"].Videos = []string{"http://v/deleted"}

	_, err := svc.OpenSession(ctx, "alice")
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestSubmitSessionAllChecked(t *testing.T) {
	svc, sessions, _, _ := routineFixture(t)
	ctx := context.Background()

	_, err := svc.OpenSession(ctx, "alice")
	require.NoError(t, err)
	for i := 0; i < domain.SessionSize; i++ {
		require.NoError(t, svc.MarkDone(ctx, "alice", i, true))
	}

	count, err := svc.SubmitSession(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	stored := sessions.sessions["alice"]
	assert.Equal(t, 1, stored.CompleteSessions)
	assert.True(t, stored.Finished)
}

func TestSubmitSessionPartialLeavesStateUnchanged(t *testing.T) {
	svc, sessions, _, _ := routineFixture(t)
	ctx := context.Background()

	_, err := svc.OpenSession(ctx, "alice")
	require.NoError(t, err)
	require.NoError(t, svc.MarkDone(ctx, "alice", 0, true))
	require.NoError(t, svc.MarkDone(ctx, "alice", 2, true))

	count, err := svc.SubmitSession(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	stored := sessions.sessions["alice"]
	assert.Equal(t, 0, stored.CompleteSessions)
	assert.False(t, stored.Finished)
}

func TestMarkDoneIsIdempotent(t *testing.T) {
	svc, sessions, _, _ := routineFixture(t)
	ctx := context.Background()

	_, err := svc.OpenSession(ctx, "alice")
	require.NoError(t, err)

	require.NoError(t, svc.MarkDone(ctx, "alice", 1, true))
	require.NoError(t, svc.MarkDone(ctx, "alice", 1, true))
	assert.Equal(t, []bool{false, true, false}, sessions.sessions["alice"].Checks)

	require.NoError(t, svc.MarkDone(ctx, "alice", 1, false))
	assert.Equal(t, []bool{false, false, false}, sessions.sessions["alice"].Checks)
}

func TestMarkDoneRejectsOutOfRangeIndex(t *testing.T) {
	svc, _, _, _ := routineFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.MarkDone(ctx, "alice", -1, true), ErrInvalidCheckIndex)
	assert.ErrorIs(t, svc.MarkDone(ctx, "alice", domain.SessionSize, true), ErrInvalidCheckIndex)
}

func TestToggleLike(t *testing.T) {
	svc, _, videos, likes := routineFixture(t)
	ctx := context.Background()
	url := "http://v/beginner"

	// Like: added to the set, count goes up by one.
	require.NoError(t, svc.ToggleLike(ctx, "alice", url, true))
	assert.Equal(t, []string{url}, likes.urls["alice"])
	assert.Equal(t, 1, videos.videos[url].LikeCount)

	// Liking an already liked video is a no-op on both sides.
	require.NoError(t, svc.ToggleLike(ctx, "alice", url, true))
	assert.Equal(t, []string{url}, likes.urls["alice"])
	assert.Equal(t, 1, videos.videos[url].LikeCount)

	// Unlike: removed from the set, count goes back down.
	require.NoError(t, svc.ToggleLike(ctx, "alice", url, false))
	assert.Empty(t, likes.urls["alice"])
	assert.Equal(t, 0, videos.videos[url].LikeCount)

	// Unliking a video that is not liked is a no-op.
	require.NoError(t, svc.ToggleLike(ctx, "alice", url, false))
	assert.Equal(t, 0, videos.videos[url].LikeCount)
}
