package user

import "context"

// Repository defines data access methods for accounts
type Repository interface {
	// Create insert user, set ID và timestamps.
	// Trả về ErrEmailAlreadyExists / ErrUsernameAlreadyExists khi trùng.
	Create(ctx context.Context, u *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]User, error)
	SearchByUsername(ctx context.Context, term string) ([]User, error)
}
