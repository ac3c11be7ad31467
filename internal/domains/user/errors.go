package user

import (
	"errors"

	"sofa-backend/internal/shared/apperr"
)

var (
	ErrUserNotFound          = apperr.New(apperr.ErrNotFound, "user not found")
	ErrEmailAlreadyExists    = apperr.New(apperr.ErrConflict, "an account with this email already exists")
	ErrUsernameAlreadyExists = apperr.New(apperr.ErrConflict, "this username is already taken")
	ErrInvalidCredentials    = apperr.New(apperr.ErrInvalidCredentials, "invalid username or password")

	ErrInvalidPermissionValue = errors.New("invalid permission value")
)
