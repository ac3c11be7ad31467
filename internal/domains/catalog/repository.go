package catalog

import "context"

// Repository defines data access for shows and episodes
type Repository interface {
	CreateShow(ctx context.Context, show *Show) error
	FindShowByPublicID(ctx context.Context, publicID string) (*Show, error)
	ListShows(ctx context.Context) ([]Show, error)
	UpdateShow(ctx context.Context, previousPublicID string, show *Show) error
	// DeleteShow xoá show cùng episodes, favorites, progress trong một transaction
	DeleteShow(ctx context.Context, show *Show) error
	SearchShows(ctx context.Context, term string) ([]Show, error)

	CreateEpisode(ctx context.Context, episode *Episode) error
	// ListEpisodesByShow: order by season, rồi thứ tự insert
	ListEpisodesByShow(ctx context.Context, showID int64) ([]Episode, error)
	FindEpisode(ctx context.Context, showID int64, publicID string) (*Episode, error)
	FindFirstEpisode(ctx context.Context, showID int64, season, number int) (*Episode, error)
	UpdateEpisode(ctx context.Context, episode *Episode) error
	DeleteEpisode(ctx context.Context, episodeID int64) error
	SearchEpisodes(ctx context.Context, term string) ([]EpisodeHit, error)
}
