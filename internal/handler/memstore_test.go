package handler_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"content_manager/internal/access"
	"content_manager/internal/model"
	"content_manager/internal/repository"
)

// memStore backs the repository interfaces with maps for router tests
type memStore struct {
	mu          sync.Mutex
	users       map[int]*model.User
	sessions    map[int]model.Session
	contents    map[int]model.Content
	nextUser    int
	nextContent int
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[int]*model.User{},
		sessions: map[int]model.Session{},
		contents: map[int]model.Content{},
	}
}

type memUsers struct{ *memStore }

func (s memUsers) Create(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEntry
		}
	}
	s.nextUser++
	user.ID = s.nextUser
	user.CreatedAt = time.Now()
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s memUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

func (s memUsers) FindByToken(_ context.Context, token string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token == "" {
		return nil, nil
	}
	for id, sess := range s.sessions {
		if sess.Token == token {
			found := *s.users[id]
			return &found, nil
		}
	}
	return nil, nil
}

func (s memUsers) List(_ context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

type memSessions struct{ *memStore }

func (s memSessions) Upsert(_ context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.UserID] = *session
	return nil
}

func (s memSessions) Clear(_ context.Context, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[userID]; ok {
		sess.Token = ""
		s.sessions[userID] = sess
	}
	return nil
}

type memContents struct{ *memStore }

func (s memContents) Create(_ context.Context, c *model.Content) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextContent++
	c.ID = s.nextContent
	s.contents[c.ID] = *c
	return nil
}

func (s memContents) FindAll(_ context.Context, scope access.Scope) ([]model.Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []model.Content{}
	for _, c := range s.contents {
		if scope.Allows(&c) {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s memContents) FindByID(_ context.Context, id int, scope access.Scope) (*model.Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.contents[id]
	if !ok || !scope.Allows(&c) {
		return nil, nil
	}
	return &c, nil
}

func (s memContents) Update(_ context.Context, c *model.Content, scope access.Scope) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.contents[c.ID]
	if !ok || !scope.Allows(&existing) {
		return false, nil
	}
	existing.Title, existing.Body, existing.Summary = c.Title, c.Body, c.Summary
	s.contents[c.ID] = existing
	return true, nil
}

func (s memContents) Delete(_ context.Context, id int, scope access.Scope) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.contents[id]
	if !ok || !scope.Allows(&existing) {
		return false, nil
	}
	delete(s.contents, id)
	return true, nil
}
