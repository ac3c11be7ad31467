package engagement

import (
	"context"

	"sofa-backend/internal/domains/catalog"
)

// Repository defines data access for favorites and watch progress
type Repository interface {
	// RunLocked chạy fn trong một transaction giữ lock theo cặp (userID, showID).
	// Các thao tác trên cùng cặp được serialize nên check-then-insert không bị race.
	RunLocked(ctx context.Context, userID, showID int64, fn func(store Store) error) error

	IsFavorited(ctx context.Context, userID, showID int64) (bool, error)
	// FindProgress trả về nil, nil khi user chưa có progress cho show
	FindProgress(ctx context.Context, userID, showID int64) (*Progress, error)
	ListFavorites(ctx context.Context, userID int64) ([]catalog.Show, error)
	ListWatching(ctx context.Context, userID int64) ([]WatchingEntry, error)
}

// Store là các thao tác ghi trong phạm vi transaction của RunLocked
type Store interface {
	// AddFavorite trả về false nếu đã favorite từ trước
	AddFavorite(ctx context.Context, userID, showID int64) (bool, error)
	// RemoveFavorite trả về false nếu không có gì để xoá
	RemoveFavorite(ctx context.Context, userID, showID int64) (bool, error)
	FindProgress(ctx context.Context, userID, showID int64) (*Progress, error)
	// CreateProgress tạo progress và link watching cho user
	CreateProgress(ctx context.Context, userID int64, progress *Progress) error
	UpdateProgressStatus(ctx context.Context, progressID int64, status Status) error
}
