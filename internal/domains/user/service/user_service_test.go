package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"sofa-backend/internal/domains/user"
	"sofa-backend/internal/domains/user/mocks"
	"sofa-backend/internal/shared/apperr"
)

func validRegistration() user.RegisterRequest {
	return user.RegisterRequest{
		Email:     "Alice@Example.com ",
		Username:  "alice",
		Password:  "secret123",
		FirstName: "Alice",
		LastName:  "Liddell",
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := new(mocks.Repository)
	svc := NewUserService(repo, bcrypt.MinCost)
	ctx := context.Background()

	repo.On("ExistsByUsername", ctx, "alice").Return(false, nil)
	repo.On("ExistsByEmail", ctx, "alice@example.com").Return(false, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*user.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*user.User).ID = 42
	}).Return(nil)

	u, err := svc.Register(ctx, validRegistration())

	require.NoError(t, err)
	assert.Equal(t, int64(42), u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, user.PermissionNone, u.Permissions)
	assert.NotEqual(t, "secret123", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
	repo.AssertExpectations(t)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := new(mocks.Repository)
	svc := NewUserService(repo, bcrypt.MinCost)
	ctx := context.Background()

	repo.On("ExistsByUsername", ctx, "alice").Return(true, nil)

	_, err := svc.Register(ctx, validRegistration())

	assert.ErrorIs(t, err, user.ErrUsernameAlreadyExists)
	assert.ErrorIs(t, err, apperr.ErrConflict)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(mocks.Repository)
	svc := NewUserService(repo, bcrypt.MinCost)
	ctx := context.Background()

	repo.On("ExistsByUsername", ctx, "alice").Return(false, nil)
	repo.On("ExistsByEmail", ctx, "alice@example.com").Return(true, nil)

	_, err := svc.Register(ctx, validRegistration())
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	repo := new(mocks.Repository)
	svc := NewUserService(repo, bcrypt.MinCost)

	cases := map[string]func(r *user.RegisterRequest){
		"missing email":    func(r *user.RegisterRequest) { r.Email = "" },
		"malformed email":  func(r *user.RegisterRequest) { r.Email = "not-an-email" },
		"missing username": func(r *user.RegisterRequest) { r.Username = "" },
		"bad username":     func(r *user.RegisterRequest) { r.Username = "al ice" },
		"short password":   func(r *user.RegisterRequest) { r.Password = "abc" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRegistration()
			mutate(&req)

			_, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	repo := new(mocks.Repository)
	svc := NewUserService(repo, bcrypt.MinCost)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	alice := &user.User{ID: 1, Username: "alice", PasswordHash: string(hash)}

	repo.On("FindByUsername", ctx, "alice").Return(alice, nil)
	repo.On("FindByUsername", ctx, "bob").Return(nil, user.ErrUserNotFound)

	t.Run("correct password", func(t *testing.T) {
		u, err := svc.Authenticate(ctx, "alice", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		u, err := svc.Authenticate(ctx, "alice", "wrong")
		assert.Nil(t, u)
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
		assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "bob", "secret123")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestNewUserService_ClampsCost(t *testing.T) {
	svc := NewUserService(new(mocks.Repository), 99).(*userService)
	assert.Equal(t, bcrypt.DefaultCost, svc.bcryptCost)
}
