package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"sofa-backend/internal/domains/user"
	"sofa-backend/internal/shared/apperr"
	"sofa-backend/pkg/logger"
)

type userService struct {
	repo       user.Repository
	bcryptCost int
}

func NewUserService(repo user.Repository, bcryptCost int) user.Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userService{
		repo:       repo,
		bcryptCost: bcryptCost,
	}
}

func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.User, error) {
	// 1. NORMALIZE + VALIDATE
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Username = strings.TrimSpace(req.Username)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	if err := req.Validate(); err != nil {
		return nil, apperr.Validation(err)
	}

	// 2. CHECK DUPLICATES (unique constraint vẫn là chốt chặn cuối khi race)
	exists, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, user.ErrUsernameAlreadyExists
	}

	exists, err = s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, user.ErrEmailAlreadyExists
	}

	// 3. HASH PASSWORD
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 4. CREATE
	u := &user.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(passwordHash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Permissions:  user.PermissionNone,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	logger.Info("user registered", map[string]interface{}{
		"user_id":  u.ID,
		"username": u.Username,
	})

	return u, nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*user.User, error) {
	u, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}

	// bcrypt.CompareHashAndPassword is constant-time
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}

	return u, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *userService) ListUsers(ctx context.Context) ([]user.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) SearchByUsername(ctx context.Context, term string) ([]user.User, error) {
	return s.repo.SearchByUsername(ctx, term)
}
