package service

import (
	"context"

	"webfitpro/backend/internal/domain"
	"webfitpro/backend/internal/repository"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.UserName]; ok {
		return repository.ErrDuplicate
	}
	copied := *user
	r.users[user.UserName] = &copied
	return nil
}

func (r *fakeUserRepo) GetByUserName(_ context.Context, userName string) (*domain.User, error) {
	user, ok := r.users[userName]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) UpdateDetails(_ context.Context, userName string, age, height, weight int) error {
	user, ok := r.users[userName]
	if !ok {
		return repository.ErrNotFound
	}
	user.Age, user.Height, user.Weight = age, height, weight
	return nil
}

func (r *fakeUserRepo) SetRegistered(_ context.Context, userName string) error {
	user, ok := r.users[userName]
	if !ok {
		return repository.ErrNotFound
	}
	user.IsRegistered = domain.FlagYes
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, userName string) error {
	if _, ok := r.users[userName]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, userName)
	return nil
}

func (r *fakeUserRepo) FindPending(_ context.Context) ([]domain.User, error) {
	pending := []domain.User{}
	for _, user := range r.users {
		if user.IsRegistered == domain.FlagNo {
			pending = append(pending, domain.User{UserName: user.UserName, IsRegistered: user.IsRegistered})
		}
	}
	return pending, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	all := []domain.User{}
	for _, user := range r.users {
		all = append(all, *user)
	}
	return all, nil
}

type fakeSessionRepo struct {
	sessions map[string]*domain.WorkoutSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*domain.WorkoutSession{}}
}

func (r *fakeSessionRepo) Create(_ context.Context, userName string) error {
	r.sessions[userName] = &domain.WorkoutSession{
		UserName: userName,
		Videos:   []string{},
		Checks:   make([]bool, domain.SessionSize),
		Finished: true,
	}
	return nil
}

func (r *fakeSessionRepo) GetByUserName(_ context.Context, userName string) (*domain.WorkoutSession, error) {
	session, ok := r.sessions[userName]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *session
	copied.Videos = append([]string{}, session.Videos...)
	copied.Checks = append([]bool{}, session.Checks...)
	return &copied, nil
}

func (r *fakeSessionRepo) ReplaceVideos(_ context.Context, userName string, urls []string) error {
	session, ok := r.sessions[userName]
	if !ok {
		return repository.ErrNotFound
	}
	session.Videos = append([]string{}, urls...)
	return nil
}

func (r *fakeSessionRepo) SetCheck(_ context.Context, userName string, value bool, index int) error {
	session, ok := r.sessions[userName]
	if !ok {
		return repository.ErrNotFound
	}
	session.Checks[index] = value
	return nil
}

func (r *fakeSessionRepo) ResetChecks(_ context.Context, userName string) error {
	session, ok := r.sessions[userName]
	if !ok {
		return repository.ErrNotFound
	}
	session.Checks = make([]bool, domain.SessionSize)
	return nil
}

func (r *fakeSessionRepo) SetFinished(_ context.Context, userName string, finished bool) error {
	session, ok := r.sessions[userName]
	if !ok {
		return repository.ErrNotFound
	}
	session.Finished = finished
	return nil
}

func (r *fakeSessionRepo) IncrementCompleted(_ context.Context, userName string) error {
	session, ok := r.sessions[userName]
	if !ok {
		return repository.ErrNotFound
	}
	session.CompleteSessions++
	return nil
}

func (r *fakeSessionRepo) IncrementOpened(_ context.Context, userName string) error {
	session, ok := r.sessions[userName]
	if !ok {
		return repository.ErrNotFound
	}
	session.OpenedSessions++
	return nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, userName string) error {
	if _, ok := r.sessions[userName]; !ok {
		return repository.ErrNotFound
	}
	delete(r.sessions, userName)
	return nil
}

type fakeLikeRepo struct {
	urls      map[string][]string
	createErr error
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{urls: map[string][]string{}}
}

func (r *fakeLikeRepo) Create(_ context.Context, userName string) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.urls[userName] = []string{}
	return nil
}

func (r *fakeLikeRepo) URLsByUser(_ context.Context, userName string) ([]string, error) {
	return append([]string{}, r.urls[userName]...), nil
}

func (r *fakeLikeRepo) Contains(_ context.Context, userName, url string) (bool, error) {
	for _, liked := range r.urls[userName] {
		if liked == url {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLikeRepo) AddURL(_ context.Context, userName, url string) error {
	if _, ok := r.urls[userName]; !ok {
		return repository.ErrNotFound
	}
	for _, liked := range r.urls[userName] {
		if liked == url {
			return nil
		}
	}
	r.urls[userName] = append(r.urls[userName], url)
	return nil
}

func (r *fakeLikeRepo) RemoveURL(_ context.Context, userName, url string) error {
	liked, ok := r.urls[userName]
	if !ok {
		return repository.ErrNotFound
	}
	kept := liked[:0]
	for _, u := range liked {
		if u != url {
			kept = append(kept, u)
		}
	}
	r.urls[userName] = kept
	return nil
}

func (r *fakeLikeRepo) Delete(_ context.Context, userName string) error {
	if _, ok := r.urls[userName]; !ok {
		return repository.ErrNotFound
	}
	delete(r.urls, userName)
	return nil
}

type fakeVideoRepo struct {
	order  []string
	videos map[string]*domain.Video
}

func newFakeVideoRepo(videos ...domain.Video) *fakeVideoRepo {
	repo := &fakeVideoRepo{videos: map[string]*domain.Video{}}
	for _, video := range videos {
		copied := video
		repo.order = append(repo.order, video.URL)
		repo.videos[video.URL] = &copied
	}
	return repo
}

func (r *fakeVideoRepo) Create(_ context.Context, video *domain.Video) error {
	if _, ok := r.videos[video.URL]; ok {
		return repository.ErrDuplicate
	}
	copied := *video
	r.order = append(r.order, video.URL)
	r.videos[video.URL] = &copied
	return nil
}

func (r *fakeVideoRepo) GetByURL(_ context.Context, url string) (*domain.Video, error) {
	video, ok := r.videos[url]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *video
	return &copied, nil
}

func (r *fakeVideoRepo) ChangeLikeCount(_ context.Context, url string, delta int) (*domain.Video, error) {
	video, ok := r.videos[url]
	if !ok {
		return nil, repository.ErrNotFound
	}
	video.LikeCount += delta
	copied := *video
	return &copied, nil
}

// SampleByDifficulty picks the first video per tier in insertion order,
// which keeps the tests deterministic.
func (r *fakeVideoRepo) SampleByDifficulty(_ context.Context) ([]string, error) {
	urls := []string{}
	for _, tier := range domain.DifficultyTiers {
		for _, url := range r.order {
			if r.videos[url].Difficulty == tier {
				urls = append(urls, url)
				break
			}
		}
	}
	return urls, nil
}

func (r *fakeVideoRepo) SortedByTitle(_ context.Context, bodyPart string, _ bool) ([]domain.Video, error) {
	return r.byBodyPart(bodyPart), nil
}

func (r *fakeVideoRepo) SortedByLikeCount(_ context.Context, bodyPart string, _ bool) ([]domain.Video, error) {
	return r.byBodyPart(bodyPart), nil
}

func (r *fakeVideoRepo) SortedByDifficulty(_ context.Context, bodyPart string, _ bool) ([]domain.Video, error) {
	return r.byBodyPart(bodyPart), nil
}

func (r *fakeVideoRepo) FindByBodyPart(_ context.Context, bodyPart string) ([]domain.Video, error) {
	return r.byBodyPart(bodyPart), nil
}

func (r *fakeVideoRepo) DeleteByURL(_ context.Context, url string) error {
	if _, ok := r.videos[url]; !ok {
		return repository.ErrNotFound
	}
	delete(r.videos, url)
	return nil
}

func (r *fakeVideoRepo) byBodyPart(bodyPart string) []domain.Video {
	videos := []domain.Video{}
	for _, url := range r.order {
		video, ok := r.videos[url]
		if ok && video.BodyPart == bodyPart {
			videos = append(videos, *video)
		}
	}
	return videos
}

type fakeQuoteRepo struct {
	quotes []domain.Quote
}

func (r *fakeQuoteRepo) Create(_ context.Context, quote *domain.Quote) error {
	r.quotes = append(r.quotes, *quote)
	return nil
}

func (r *fakeQuoteRepo) Random(_ context.Context) (*domain.Quote, error) {
	if len(r.quotes) == 0 {
		return nil, repository.ErrNotFound
	}
	return &r.quotes[0], nil
}
