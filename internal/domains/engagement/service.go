package engagement

import (
	"context"

	"sofa-backend/internal/domains/catalog"
)

// EpisodeAnchor tìm episode mở đầu (S1E1) khi user bắt đầu xem một show
type EpisodeAnchor interface {
	FirstEpisode(ctx context.Context, showID int64) (*catalog.Episode, error)
}

// Service defines favorites and the watch-progress state machine.
// Các thao tác chuyển trạng thái trả về Status sau khi áp dụng.
type Service interface {
	Favorite(ctx context.Context, userID, showID int64) error
	Unfavorite(ctx context.Context, userID, showID int64) error
	IsFavorited(ctx context.Context, userID, showID int64) (bool, error)

	Start(ctx context.Context, userID, showID int64) (Status, error)
	Pause(ctx context.Context, userID, showID int64) (Status, error)
	Resume(ctx context.Context, userID, showID int64) (Status, error)
	Stop(ctx context.Context, userID, showID int64) (Status, error)
	GetStatus(ctx context.Context, userID, showID int64) (Status, error)

	State(ctx context.Context, userID, showID int64) (*State, error)
	ListFavorites(ctx context.Context, userID int64) ([]catalog.Show, error)
	ListWatching(ctx context.Context, userID int64) ([]WatchingEntry, error)
}
