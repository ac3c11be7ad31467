package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sofa-backend/internal/domains/catalog"
	"sofa-backend/internal/shared/utils"
	"sofa-backend/pkg/cache"
	"sofa-backend/pkg/database"
	"sofa-backend/pkg/logger"
)

const (
	showColumns    = `id, public_id, title, season_count, description, created_at, updated_at`
	episodeColumns = `id, public_id, title, season, number, description, show_id, created_at, updated_at`
)

type postgresRepository struct {
	pool     *pgxpool.Pool
	cache    cache.Cache
	cacheTTL time.Duration
	guard    cacheGuard
}

// NewPostgresRepository tạo repository instance.
// Show lookup theo public id đi qua cache (cache-aside), update/delete invalidate.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache, cacheTTL time.Duration) catalog.Repository {
	return &postgresRepository{
		pool:     pool,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func showCacheKey(publicID string) string {
	return "show:" + publicID
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShow(row rowScanner) (*catalog.Show, error) {
	var s catalog.Show
	err := row.Scan(
		&s.ID,
		&s.PublicID,
		&s.Title,
		&s.SeasonCount,
		&s.Description,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanEpisode(row rowScanner) (*catalog.Episode, error) {
	var e catalog.Episode
	err := row.Scan(
		&e.ID,
		&e.PublicID,
		&e.Title,
		&e.Season,
		&e.Number,
		&e.Description,
		&e.ShowID,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ========== SHOWS ==========

func (r *postgresRepository) CreateShow(ctx context.Context, show *catalog.Show) error {
	query := `
		INSERT INTO shows (public_id, title, season_count, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		show.PublicID,
		show.Title,
		show.SeasonCount,
		show.Description,
	).Scan(&show.ID, &show.CreatedAt, &show.UpdatedAt)

	if err != nil {
		if _, ok := database.UniqueViolation(err); ok {
			return catalog.ErrShowAlreadyExists
		}
		return fmt.Errorf("failed to create show: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindShowByPublicID(ctx context.Context, publicID string) (*catalog.Show, error) {
	var cached catalog.Show
	found, err := r.cache.Get(ctx, showCacheKey(publicID), &cached)
	if err != nil {
		logger.Warn("show cache get failed", map[string]interface{}{"public_id": publicID, "error": err.Error()})
	}
	if found {
		return &cached, nil
	}

	query := `SELECT ` + showColumns + ` FROM shows WHERE public_id = $1`

	epoch := r.guard.begin()
	show, err := scanShow(r.pool.QueryRow(ctx, query, publicID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrShowNotFound
		}
		return nil, fmt.Errorf("failed to find show: %w", err)
	}

	// Update/delete chạy song song có thể đã invalidate: không ghi lại bản cũ
	r.guard.storeIfCurrent(epoch, func() {
		if err := r.cache.Set(ctx, showCacheKey(publicID), show, r.cacheTTL); err != nil {
			logger.Warn("show cache set failed", map[string]interface{}{"public_id": publicID, "error": err.Error()})
		}
	})

	return show, nil
}

func (r *postgresRepository) ListShows(ctx context.Context) ([]catalog.Show, error) {
	query := `SELECT ` + showColumns + ` FROM shows ORDER BY id`
	return r.queryShows(ctx, query)
}

func (r *postgresRepository) SearchShows(ctx context.Context, term string) ([]catalog.Show, error) {
	query := `SELECT ` + showColumns + ` FROM shows WHERE title ILIKE $1 ORDER BY id`
	return r.queryShows(ctx, query, utils.ContainsPattern(term))
}

func (r *postgresRepository) queryShows(ctx context.Context, query string, args ...any) ([]catalog.Show, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shows: %w", err)
	}
	defer rows.Close()

	shows := make([]catalog.Show, 0)
	for rows.Next() {
		show, err := scanShow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan show: %w", err)
		}
		shows = append(shows, *show)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return shows, nil
}

func (r *postgresRepository) UpdateShow(ctx context.Context, previousPublicID string, show *catalog.Show) error {
	query := `
		UPDATE shows
		SET public_id = $2, title = $3, season_count = $4, description = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		show.ID,
		show.PublicID,
		show.Title,
		show.SeasonCount,
		show.Description,
	).Scan(&show.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.ErrShowNotFound
		}
		if _, ok := database.UniqueViolation(err); ok {
			return catalog.ErrShowAlreadyExists
		}
		return fmt.Errorf("failed to update show: %w", err)
	}

	r.invalidate(ctx, previousPublicID, show.PublicID)
	return nil
}

func (r *postgresRepository) DeleteShow(ctx context.Context, show *catalog.Show) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		statements := []string{
			`DELETE FROM watching WHERE progress_id IN (SELECT id FROM progress WHERE show_id = $1)`,
			`DELETE FROM progress WHERE show_id = $1`,
			`DELETE FROM favorites WHERE show_id = $1`,
			`DELETE FROM episodes WHERE show_id = $1`,
		}
		for _, stmt := range statements {
			if _, err := tx.Exec(ctx, stmt, show.ID); err != nil {
				return fmt.Errorf("failed to delete show dependents: %w", err)
			}
		}

		tag, err := tx.Exec(ctx, `DELETE FROM shows WHERE id = $1`, show.ID)
		if err != nil {
			return fmt.Errorf("failed to delete show: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return catalog.ErrShowNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.invalidate(ctx, show.PublicID)
	return nil
}

func (r *postgresRepository) invalidate(ctx context.Context, publicIDs ...string) {
	keys := make([]string, 0, len(publicIDs))
	for _, id := range publicIDs {
		keys = append(keys, showCacheKey(id))
	}
	r.guard.invalidate(func() {
		if err := r.cache.Delete(ctx, keys...); err != nil {
			logger.Warn("show cache invalidation failed", map[string]interface{}{"keys": keys, "error": err.Error()})
		}
	})
}

// ========== EPISODES ==========

func (r *postgresRepository) CreateEpisode(ctx context.Context, episode *catalog.Episode) error {
	query := `
		INSERT INTO episodes (public_id, title, season, number, description, show_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		episode.PublicID,
		episode.Title,
		episode.Season,
		episode.Number,
		episode.Description,
		episode.ShowID,
	).Scan(&episode.ID, &episode.CreatedAt, &episode.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create episode: %w", err)
	}

	return nil
}

func (r *postgresRepository) ListEpisodesByShow(ctx context.Context, showID int64) ([]catalog.Episode, error) {
	query := `SELECT ` + episodeColumns + ` FROM episodes WHERE show_id = $1 ORDER BY season, id`

	rows, err := r.pool.Query(ctx, query, showID)
	if err != nil {
		return nil, fmt.Errorf("failed to query episodes: %w", err)
	}
	defer rows.Close()

	episodes := make([]catalog.Episode, 0)
	for rows.Next() {
		ep, err := scanEpisode(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan episode: %w", err)
		}
		episodes = append(episodes, *ep)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return episodes, nil
}

func (r *postgresRepository) FindEpisode(ctx context.Context, showID int64, publicID string) (*catalog.Episode, error) {
	query := `
		SELECT ` + episodeColumns + `
		FROM episodes
		WHERE show_id = $1 AND public_id = $2
		ORDER BY id
		LIMIT 1
	`
	return r.findEpisode(ctx, query, showID, publicID)
}

func (r *postgresRepository) FindFirstEpisode(ctx context.Context, showID int64, season, number int) (*catalog.Episode, error) {
	query := `
		SELECT ` + episodeColumns + `
		FROM episodes
		WHERE show_id = $1 AND season = $2 AND number = $3
		ORDER BY id
		LIMIT 1
	`
	return r.findEpisode(ctx, query, showID, season, number)
}

func (r *postgresRepository) findEpisode(ctx context.Context, query string, args ...any) (*catalog.Episode, error) {
	ep, err := scanEpisode(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrEpisodeNotFound
		}
		return nil, fmt.Errorf("failed to find episode: %w", err)
	}
	return ep, nil
}

func (r *postgresRepository) UpdateEpisode(ctx context.Context, episode *catalog.Episode) error {
	query := `
		UPDATE episodes
		SET public_id = $2, title = $3, season = $4, number = $5, description = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		episode.ID,
		episode.PublicID,
		episode.Title,
		episode.Season,
		episode.Number,
		episode.Description,
	).Scan(&episode.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.ErrEpisodeNotFound
		}
		return fmt.Errorf("failed to update episode: %w", err)
	}

	return nil
}

// DeleteEpisode: progress đang trỏ tới episode được set NULL bởi FK
func (r *postgresRepository) DeleteEpisode(ctx context.Context, episodeID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM episodes WHERE id = $1`, episodeID)
	if err != nil {
		return fmt.Errorf("failed to delete episode: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrEpisodeNotFound
	}
	return nil
}

func (r *postgresRepository) SearchEpisodes(ctx context.Context, term string) ([]catalog.EpisodeHit, error) {
	query := `
		SELECT e.id, e.public_id, e.title, e.season, e.number, e.description, e.show_id,
		       e.created_at, e.updated_at, s.public_id, s.title
		FROM episodes e
		JOIN shows s ON s.id = e.show_id
		WHERE e.title ILIKE $1
		ORDER BY s.id, e.season, e.id
	`

	rows, err := r.pool.Query(ctx, query, utils.ContainsPattern(term))
	if err != nil {
		return nil, fmt.Errorf("failed to search episodes: %w", err)
	}
	defer rows.Close()

	hits := make([]catalog.EpisodeHit, 0)
	for rows.Next() {
		var h catalog.EpisodeHit
		if err := rows.Scan(
			&h.ID,
			&h.PublicID,
			&h.Title,
			&h.Season,
			&h.Number,
			&h.Description,
			&h.ShowID,
			&h.CreatedAt,
			&h.UpdatedAt,
			&h.ShowPublicID,
			&h.ShowTitle,
		); err != nil {
			return nil, fmt.Errorf("failed to scan episode: %w", err)
		}
		hits = append(hits, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return hits, nil
}
