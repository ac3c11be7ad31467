package catalog

import "context"

// Service defines business logic for the show catalog
type Service interface {
	CreateShow(ctx context.Context, req ShowRequest) (*Show, error)
	GetShow(ctx context.Context, publicID string) (*Show, error)
	GetShowDetails(ctx context.Context, publicID string) (*ShowDetails, error)
	ListShows(ctx context.Context) ([]Show, error)
	UpdateShow(ctx context.Context, publicID string, req ShowRequest) (*Show, error)
	DeleteShow(ctx context.Context, publicID string) error

	CreateEpisode(ctx context.Context, showPublicID string, req EpisodeRequest) (*Episode, error)
	ListEpisodesForShow(ctx context.Context, showID int64) ([]Episode, error)
	GetEpisode(ctx context.Context, showPublicID, episodePublicID string) (*Show, *Episode, error)
	UpdateEpisode(ctx context.Context, showPublicID, episodePublicID string, req EpisodeRequest) (*Episode, error)
	DeleteEpisode(ctx context.Context, showPublicID, episodePublicID string) error

	// FirstEpisode trả về S1E1 của show, nil nếu show chưa có episode đó
	FirstEpisode(ctx context.Context, showID int64) (*Episode, error)

	SearchShows(ctx context.Context, term string) ([]Show, error)
	SearchEpisodes(ctx context.Context, term string) ([]EpisodeHit, error)
}
