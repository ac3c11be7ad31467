package user

import "context"

// Service defines business logic for accounts
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	// Authenticate trả về ErrUserNotFound nếu username không tồn tại,
	// ErrInvalidCredentials nếu sai password.
	Authenticate(ctx context.Context, username, password string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	SearchByUsername(ctx context.Context, term string) ([]User, error)
}
