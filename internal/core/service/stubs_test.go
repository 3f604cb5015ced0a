package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/devconnector/devconnector-api/internal/core/domain"
	"github.com/devconnector/devconnector-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories. Every write holds the lock across
// read-mutate-write, so each one is atomic like its Mongo counterpart.
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu     sync.Mutex
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[copy.ID] = copy
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubProfileRepo struct {
	mu        sync.Mutex
	byUser    map[string]*domain.Profile
	createErr error
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{byUser: make(map[string]*domain.Profile)}
}

func cloneProfile(p *domain.Profile) *domain.Profile {
	clone := *p
	clone.Skills = append([]string(nil), p.Skills...)
	clone.Experience = append([]domain.Experience(nil), p.Experience...)
	clone.Education = append([]domain.Education(nil), p.Education...)
	return &clone
}

func (r *stubProfileRepo) FindByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byUser[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return cloneProfile(p), nil
}

func (r *stubProfileRepo) List(_ context.Context) ([]*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Profile, 0, len(r.byUser))
	for _, p := range r.byUser {
		out = append(out, cloneProfile(p))
	}
	return out, nil
}

func (r *stubProfileRepo) Create(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, ok := r.byUser[p.User.ID]; ok {
		return nil, domain.ErrProfileExists
	}
	stored := cloneProfile(p)
	stored.ID = "profile-" + p.User.ID
	r.byUser[p.User.ID] = stored
	return cloneProfile(stored), nil
}

func (r *stubProfileRepo) Update(_ context.Context, userID string, mutate ports.ProfileMutation) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byUser[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	work := cloneProfile(p)
	if err := mutate(work); err != nil {
		return nil, err
	}
	work.Version++
	r.byUser[userID] = work
	return cloneProfile(work), nil
}

func (r *stubProfileRepo) AddExperience(ctx context.Context, userID string, e domain.Experience) (*domain.Profile, error) {
	return r.Update(ctx, userID, func(p *domain.Profile) error {
		p.AddExperience(e)
		return nil
	})
}

func (r *stubProfileRepo) RemoveExperience(ctx context.Context, userID, id string) (*domain.Profile, error) {
	return r.Update(ctx, userID, func(p *domain.Profile) error {
		return p.RemoveExperience(id)
	})
}

func (r *stubProfileRepo) AddEducation(ctx context.Context, userID string, e domain.Education) (*domain.Profile, error) {
	return r.Update(ctx, userID, func(p *domain.Profile) error {
		p.AddEducation(e)
		return nil
	})
}

func (r *stubProfileRepo) RemoveEducation(ctx context.Context, userID, id string) (*domain.Profile, error) {
	return r.Update(ctx, userID, func(p *domain.Profile) error {
		return p.RemoveEducation(id)
	})
}

func (r *stubProfileRepo) DeleteByUserID(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byUser[userID]; !ok {
		return domain.ErrProfileNotFound
	}
	delete(r.byUser, userID)
	return nil
}

type stubPostRepo struct {
	mu     sync.Mutex
	posts  map[string]*domain.Post
	nextID int

	createErr error
	// createGate, when set, blocks Create until it is closed.
	createGate chan struct{}
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func clonePost(p *domain.Post) *domain.Post {
	clone := *p
	clone.Likes = append([]domain.Like(nil), p.Likes...)
	clone.Comments = append([]domain.Comment(nil), p.Comments...)
	return &clone
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.Post) (*domain.Post, error) {
	if r.createGate != nil {
		<-r.createGate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	stored := clonePost(p)
	stored.ID = fmt.Sprintf("post-%d", r.nextID)
	r.posts[stored.ID] = stored
	return clonePost(stored), nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return clonePost(p), nil
}

func (r *stubPostRepo) List(_ context.Context) ([]*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, clonePost(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *stubPostRepo) AddLike(_ context.Context, id, userID string) (*domain.Post, error) {
	return r.apply(id, func(p *domain.Post) error { return p.Like(userID) })
}

func (r *stubPostRepo) RemoveLike(_ context.Context, id, userID string) (*domain.Post, error) {
	return r.apply(id, func(p *domain.Post) error { return p.Unlike(userID) })
}

func (r *stubPostRepo) AddComment(_ context.Context, id string, c domain.Comment) (*domain.Post, error) {
	return r.apply(id, func(p *domain.Post) error {
		p.AddComment(c)
		return nil
	})
}

func (r *stubPostRepo) RemoveComment(_ context.Context, id, commentID, requesterID string) (*domain.Post, error) {
	return r.apply(id, func(p *domain.Post) error { return p.RemoveComment(commentID, requesterID) })
}

func (r *stubPostRepo) apply(id string, mutate func(p *domain.Post) error) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	work := clonePost(p)
	if err := mutate(work); err != nil {
		return nil, err
	}
	work.Version++
	r.posts[id] = work
	return clonePost(work), nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *stubPostRepo) DeleteByUser(_ context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, p := range r.posts {
		if p.User == userID {
			delete(r.posts, id)
			n++
		}
	}
	return n, nil
}

const stubPending = "pending"

type stubIdempotency struct {
	mu   sync.Mutex
	keys map[string]string
	err  error
}

func newStubIdempotency() *stubIdempotency {
	return &stubIdempotency{keys: make(map[string]string)}
}

func (s *stubIdempotency) Claim(_ context.Context, scope, key string) (bool, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, "", s.err
	}
	k := scope + ":" + key
	v, ok := s.keys[k]
	if !ok {
		s.keys[k] = stubPending
		return true, "", nil
	}
	if v == stubPending {
		return false, "", nil
	}
	return false, v, nil
}

func (s *stubIdempotency) Complete(_ context.Context, scope, key, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[scope+":"+key] = id
	return nil
}

func (s *stubIdempotency) Release(_ context.Context, scope, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, scope+":"+key)
	return nil
}

type stubFetcher struct {
	repos []domain.Repo
	err   error
}

func (f *stubFetcher) FetchRepos(_ context.Context, _ string) ([]domain.Repo, error) {
	return f.repos, f.err
}
