// Package mocks provides testify mocks for the user interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sofa-backend/internal/domains/user"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) Create(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *Repository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *Repository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *Repository) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]user.User)
	return users, args.Error(1)
}

func (m *Repository) SearchByUsername(ctx context.Context, term string) ([]user.User, error) {
	args := m.Called(ctx, term)
	users, _ := args.Get(0).([]user.User)
	return users, args.Error(1)
}

type Service struct {
	mock.Mock
}

func (m *Service) Register(ctx context.Context, req user.RegisterRequest) (*user.User, error) {
	args := m.Called(ctx, req)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *Service) Authenticate(ctx context.Context, username, password string) (*user.User, error) {
	args := m.Called(ctx, username, password)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *Service) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *Service) ListUsers(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]user.User)
	return users, args.Error(1)
}

func (m *Service) SearchByUsername(ctx context.Context, term string) ([]user.User, error) {
	args := m.Called(ctx, term)
	users, _ := args.Get(0).([]user.User)
	return users, args.Error(1)
}
