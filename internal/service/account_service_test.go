package service

import (
	"context"
	"errors"
	"testing"

	"webfitpro/backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accountFixture() (AccountService, *fakeUserRepo, *fakeSessionRepo, *fakeLikeRepo, *fakeVideoRepo) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	likes := newFakeLikeRepo()
	videos := newFakeVideoRepo(
		domain.Video{URL: "http://v/a", Title: "A", Difficulty: domain.DifficultyBeginner, BodyPart: "Legs"},
		domain.Video{URL: "http://v/b", Title: "B", Difficulty: domain.DifficultyIntermediate, BodyPart: "Legs"},
	)
	return NewAccountService(users, sessions, likes, videos), users, sessions, likes, videos
}

func aliceInput() RegisterInput {
	return RegisterInput{
		UserName: "alice",
		Age:      30,
		Gender:   "F",
		Height:   170,
		Weight:   60,
		Password: "secret",
	}
}

func TestRegisterCreatesDependentDocuments(t *testing.T) {
	svc, users, sessions, likes, _ := accountFixture()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, aliceInput()))

	user := users.users["alice"]
	require.NotNil(t, user)
	assert.Equal(t, domain.FlagNo, user.IsAdmin)
	assert.Equal(t, domain.FlagNo, user.IsRegistered)

	session := sessions.sessions["alice"]
	require.NotNil(t, session)
	assert.True(t, session.Finished)
	assert.Equal(t, make([]bool, domain.SessionSize), session.Checks)
	assert.Equal(t, 0, session.OpenedSessions)
	assert.Equal(t, 0, session.CompleteSessions)

	urls, ok := likes.urls["alice"]
	require.True(t, ok)
	assert.Empty(t, urls)
}

func TestRegisterDuplicateUser(t *testing.T) {
	svc, _, _, _, _ := accountFixture()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, aliceInput()))
	assert.ErrorIs(t, svc.Register(ctx, aliceInput()), ErrUserExists)
}

func TestRegisterUndoesUserOnLikeListFailure(t *testing.T) {
	svc, users, _, likes, _ := accountFixture()
	likes.createErr = errors.New("insert failed")

	err := svc.Register(context.Background(), aliceInput())
	require.Error(t, err)

	// Best-effort undo removed the half-created account.
	_, ok := users.users["alice"]
	assert.False(t, ok)
}

func TestLogin(t *testing.T) {
	svc, _, _, _, _ := accountFixture()
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, aliceInput()))

	user, err := svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.UserName)

	_, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)

	_, err = svc.Login(ctx, "bob", "secret")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateDetailsUnknownUser(t *testing.T) {
	svc, _, _, _, _ := accountFixture()

	err := svc.UpdateDetails(context.Background(), "nobody", 30, 170, 60)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestApprove(t *testing.T) {
	svc, users, _, _, _ := accountFixture()
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, aliceInput()))

	require.NoError(t, svc.Approve(ctx, "alice"))
	assert.Equal(t, domain.FlagYes, users.users["alice"].IsRegistered)

	assert.ErrorIs(t, svc.Approve(ctx, "nobody"), ErrUserNotFound)
}

func TestDeleteAccountCascades(t *testing.T) {
	svc, users, sessions, likes, videos := accountFixture()
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, aliceInput()))

	// alice liked both catalog videos.
	require.NoError(t, likes.AddURL(ctx, "alice", "http://v/a"))
	require.NoError(t, likes.AddURL(ctx, "alice", "http://v/b"))
	videos.videos["http://v/a"].LikeCount = 1
	videos.videos["http://v/b"].LikeCount = 1

	require.NoError(t, svc.DeleteAccount(ctx, "alice"))

	assert.Equal(t, 0, videos.videos["http://v/a"].LikeCount)
	assert.Equal(t, 0, videos.videos["http://v/b"].LikeCount)

	_, hasUser := users.users["alice"]
	_, hasSession := sessions.sessions["alice"]
	_, hasLikes := likes.urls["alice"]
	assert.False(t, hasUser)
	assert.False(t, hasSession)
	assert.False(t, hasLikes)
}

func TestDeleteAccountMissingSession(t *testing.T) {
	svc, users, _, likes, _ := accountFixture()
	ctx := context.Background()

	// A user whose session document is already gone.
	require.NoError(t, users.Create(ctx, &domain.User{UserName: "bob"}))
	require.NoError(t, likes.Create(ctx, "bob"))

	err := svc.DeleteAccount(ctx, "bob")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Earlier steps are not undone and later steps never ran.
	_, hasUser := users.users["bob"]
	assert.True(t, hasUser)
}
