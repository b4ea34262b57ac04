// Package mocks provides testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"content_manager/internal/access"
	"content_manager/internal/model"

	"github.com/stretchr/testify/mock"
)

// UserRepository mocks repository.UserRepository
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *UserRepository) FindByToken(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *UserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

// SessionRepository mocks repository.SessionRepository
type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Upsert(ctx context.Context, session *model.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *SessionRepository) Clear(ctx context.Context, userID int) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// ContentRepository mocks repository.ContentRepository
type ContentRepository struct {
	mock.Mock
}

func (m *ContentRepository) Create(ctx context.Context, content *model.Content) error {
	args := m.Called(ctx, content)
	return args.Error(0)
}

func (m *ContentRepository) FindAll(ctx context.Context, scope access.Scope) ([]model.Content, error) {
	args := m.Called(ctx, scope)
	contents, _ := args.Get(0).([]model.Content)
	return contents, args.Error(1)
}

func (m *ContentRepository) FindByID(ctx context.Context, id int, scope access.Scope) (*model.Content, error) {
	args := m.Called(ctx, id, scope)
	content, _ := args.Get(0).(*model.Content)
	return content, args.Error(1)
}

func (m *ContentRepository) Update(ctx context.Context, content *model.Content, scope access.Scope) (bool, error) {
	args := m.Called(ctx, content, scope)
	return args.Bool(0), args.Error(1)
}

func (m *ContentRepository) Delete(ctx context.Context, id int, scope access.Scope) (bool, error) {
	args := m.Called(ctx, id, scope)
	return args.Bool(0), args.Error(1)
}
