package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sofa-backend/internal/domains/catalog"
	"sofa-backend/internal/domains/engagement"
	"sofa-backend/pkg/database"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) engagement.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) RunLocked(ctx context.Context, userID, showID int64, fn func(store engagement.Store) error) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := database.LockPair(ctx, tx, userID, showID); err != nil {
			return err
		}
		return fn(&txStore{tx: tx})
	})
}

func (r *postgresRepository) IsFavorited(ctx context.Context, userID, showID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND show_id = $2)`,
		userID, showID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) FindProgress(ctx context.Context, userID, showID int64) (*engagement.Progress, error) {
	return findProgress(ctx, r.pool, userID, showID)
}

// findProgress chỉ xét progress được link với chính user qua bảng watching
func findProgress(ctx context.Context, q querier, userID, showID int64) (*engagement.Progress, error) {
	query := `
		SELECT p.id, p.show_id, p.episode_id, p.status, p.created_at, p.updated_at
		FROM progress p
		JOIN watching w ON w.progress_id = p.id
		WHERE w.user_id = $1 AND p.show_id = $2
		ORDER BY p.id
		LIMIT 1
	`

	var p engagement.Progress
	err := q.QueryRow(ctx, query, userID, showID).Scan(
		&p.ID,
		&p.ShowID,
		&p.EpisodeID,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find progress: %w", err)
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("progress %d: %w: %d", p.ID, engagement.ErrInvalidStatusValue, int16(p.Status))
	}

	return &p, nil
}

func (r *postgresRepository) ListFavorites(ctx context.Context, userID int64) ([]catalog.Show, error) {
	query := `
		SELECT s.id, s.public_id, s.title, s.season_count, s.description, s.created_at, s.updated_at
		FROM favorites f
		JOIN shows s ON s.id = f.show_id
		WHERE f.user_id = $1
		ORDER BY f.created_at, s.id
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	shows := make([]catalog.Show, 0)
	for rows.Next() {
		var s catalog.Show
		if err := rows.Scan(
			&s.ID,
			&s.PublicID,
			&s.Title,
			&s.SeasonCount,
			&s.Description,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		shows = append(shows, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return shows, nil
}

func (r *postgresRepository) ListWatching(ctx context.Context, userID int64) ([]engagement.WatchingEntry, error) {
	query := `
		SELECT s.id, s.public_id, s.title, s.season_count, s.description, s.created_at, s.updated_at,
		       p.status,
		       e.id, e.public_id, e.title, e.season, e.number
		FROM watching w
		JOIN progress p ON p.id = w.progress_id
		JOIN shows s ON s.id = p.show_id
		LEFT JOIN episodes e ON e.id = p.episode_id
		WHERE w.user_id = $1
		ORDER BY p.updated_at DESC, p.id
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query watching: %w", err)
	}
	defer rows.Close()

	entries := make([]engagement.WatchingEntry, 0)
	for rows.Next() {
		var (
			entry    engagement.WatchingEntry
			epID     *int64
			epPublic *string
			epTitle  *string
			epSeason *int
			epNumber *int
		)
		if err := rows.Scan(
			&entry.Show.ID,
			&entry.Show.PublicID,
			&entry.Show.Title,
			&entry.Show.SeasonCount,
			&entry.Show.Description,
			&entry.Show.CreatedAt,
			&entry.Show.UpdatedAt,
			&entry.Status,
			&epID,
			&epPublic,
			&epTitle,
			&epSeason,
			&epNumber,
		); err != nil {
			return nil, fmt.Errorf("failed to scan watching: %w", err)
		}

		if epID != nil {
			entry.Episode = &catalog.Episode{
				ID:       *epID,
				PublicID: *epPublic,
				Title:    *epTitle,
				Season:   *epSeason,
				Number:   *epNumber,
				ShowID:   entry.Show.ID,
			}
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}

// txStore implements engagement.Store on top of a pgx transaction
type txStore struct {
	tx pgx.Tx
}

func (s *txStore) AddFavorite(ctx context.Context, userID, showID int64) (bool, error) {
	tag, err := s.tx.Exec(ctx,
		`INSERT INTO favorites (user_id, show_id) VALUES ($1, $2) ON CONFLICT (user_id, show_id) DO NOTHING`,
		userID, showID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *txStore) RemoveFavorite(ctx context.Context, userID, showID int64) (bool, error) {
	tag, err := s.tx.Exec(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND show_id = $2`,
		userID, showID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *txStore) FindProgress(ctx context.Context, userID, showID int64) (*engagement.Progress, error) {
	return findProgress(ctx, s.tx, userID, showID)
}

func (s *txStore) CreateProgress(ctx context.Context, userID int64, p *engagement.Progress) error {
	err := s.tx.QueryRow(ctx,
		`INSERT INTO progress (show_id, episode_id, status) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`,
		p.ShowID, p.EpisodeID, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create progress: %w", err)
	}

	if _, err := s.tx.Exec(ctx,
		`INSERT INTO watching (user_id, progress_id) VALUES ($1, $2)`,
		userID, p.ID,
	); err != nil {
		return fmt.Errorf("failed to link progress: %w", err)
	}

	return nil
}

func (s *txStore) UpdateProgressStatus(ctx context.Context, progressID int64, status engagement.Status) error {
	tag, err := s.tx.Exec(ctx,
		`UPDATE progress SET status = $2, updated_at = NOW() WHERE id = $1`,
		progressID, status,
	)
	if err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("progress %d disappeared during update", progressID)
	}
	return nil
}
