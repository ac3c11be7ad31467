package user

import (
	"context"
	"errors"

	"sofa-backend/internal/shared/session"
)

// Current resolve session identity thành User.
// Anonymous hoặc cookie của account đã bị xoá → nil, nil.
func Current(ctx context.Context, svc Service, id session.Identity) (*User, error) {
	if !id.Authenticated() {
		return nil, nil
	}

	u, err := svc.GetByUsername(ctx, id.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}
