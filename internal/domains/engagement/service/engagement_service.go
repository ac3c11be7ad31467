package service

import (
	"context"

	"sofa-backend/internal/domains/catalog"
	"sofa-backend/internal/domains/engagement"
	"sofa-backend/internal/infrastructure/metrics"
	"sofa-backend/pkg/logger"
)

const (
	outcomeApplied = "applied"
	outcomeNoop    = "noop"
	outcomeError   = "error"
)

type engagementService struct {
	repo   engagement.Repository
	anchor engagement.EpisodeAnchor
}

func NewEngagementService(repo engagement.Repository, anchor engagement.EpisodeAnchor) engagement.Service {
	return &engagementService{
		repo:   repo,
		anchor: anchor,
	}
}

func record(action engagement.Action, changed bool, err error) {
	outcome := outcomeNoop
	switch {
	case err != nil:
		outcome = outcomeError
	case changed:
		outcome = outcomeApplied
	}
	metrics.EngagementTransitions.WithLabelValues(string(action), outcome).Inc()
}

// ========== FAVORITES ==========

func (s *engagementService) Favorite(ctx context.Context, userID, showID int64) error {
	var added bool
	err := s.repo.RunLocked(ctx, userID, showID, func(store engagement.Store) error {
		var err error
		added, err = store.AddFavorite(ctx, userID, showID)
		return err
	})
	record(engagement.ActionFavorite, added, err)
	return err
}

func (s *engagementService) Unfavorite(ctx context.Context, userID, showID int64) error {
	var removed bool
	err := s.repo.RunLocked(ctx, userID, showID, func(store engagement.Store) error {
		var err error
		removed, err = store.RemoveFavorite(ctx, userID, showID)
		return err
	})
	record(engagement.ActionUnfavorite, removed, err)
	return err
}

func (s *engagementService) IsFavorited(ctx context.Context, userID, showID int64) (bool, error) {
	return s.repo.IsFavorited(ctx, userID, showID)
}

// ========== WATCH PROGRESS ==========

// Start tạo progress WATCHING neo ở S1E1 nếu user chưa có progress cho show.
// Đã có progress (bất kể status) thì không đổi gì.
func (s *engagementService) Start(ctx context.Context, userID, showID int64) (engagement.Status, error) {
	first, err := s.anchor.FirstEpisode(ctx, showID)
	if err != nil {
		record(engagement.ActionStart, false, err)
		return engagement.StatusNone, err
	}

	return s.transition(ctx, engagement.ActionStart, userID, showID,
		func(store engagement.Store, current *engagement.Progress) (engagement.Status, bool, error) {
			if current != nil {
				return current.Status, false, nil
			}

			progress := &engagement.Progress{
				ShowID: showID,
				Status: engagement.StatusWatching,
			}
			if first != nil {
				progress.EpisodeID = &first.ID
			}

			if err := store.CreateProgress(ctx, userID, progress); err != nil {
				return engagement.StatusNone, false, err
			}
			return progress.Status, true, nil
		})
}

// Pause ghi đè status thành PAUSED. Không có progress thì no-op.
func (s *engagementService) Pause(ctx context.Context, userID, showID int64) (engagement.Status, error) {
	return s.transition(ctx, engagement.ActionPause, userID, showID, setStatus(ctx, engagement.StatusPaused, nil))
}

// Resume chỉ áp dụng cho progress đang PAUSED
func (s *engagementService) Resume(ctx context.Context, userID, showID int64) (engagement.Status, error) {
	onlyPaused := func(current engagement.Status) bool { return current == engagement.StatusPaused }
	return s.transition(ctx, engagement.ActionResume, userID, showID, setStatus(ctx, engagement.StatusWatching, onlyPaused))
}

// Stop đưa progress hiện có về STOPPED. Không có progress thì no-op.
func (s *engagementService) Stop(ctx context.Context, userID, showID int64) (engagement.Status, error) {
	return s.transition(ctx, engagement.ActionStop, userID, showID, setStatus(ctx, engagement.StatusStopped, nil))
}

func (s *engagementService) GetStatus(ctx context.Context, userID, showID int64) (engagement.Status, error) {
	progress, err := s.repo.FindProgress(ctx, userID, showID)
	if err != nil {
		return engagement.StatusNone, err
	}
	if progress == nil {
		return engagement.StatusNone, nil
	}
	return progress.Status, nil
}

type stepFunc func(store engagement.Store, current *engagement.Progress) (engagement.Status, bool, error)

// transition load progress hiện tại trong transaction có lock rồi áp dụng step
func (s *engagementService) transition(ctx context.Context, action engagement.Action, userID, showID int64, step stepFunc) (engagement.Status, error) {
	var (
		result  = engagement.StatusNone
		changed bool
	)

	err := s.repo.RunLocked(ctx, userID, showID, func(store engagement.Store) error {
		current, err := store.FindProgress(ctx, userID, showID)
		if err != nil {
			return err
		}

		result, changed, err = step(store, current)
		return err
	})

	record(action, changed, err)
	if err != nil {
		logger.Error("engagement transition failed", err)
		return engagement.StatusNone, err
	}

	return result, nil
}

// setStatus tạo step chuyển progress hiện có sang target.
// allowed == nil nghĩa là chấp nhận mọi status hiện tại.
func setStatus(ctx context.Context, target engagement.Status, allowed func(engagement.Status) bool) stepFunc {
	return func(store engagement.Store, current *engagement.Progress) (engagement.Status, bool, error) {
		if current == nil {
			return engagement.StatusNone, false, nil
		}
		if allowed != nil && !allowed(current.Status) {
			return current.Status, false, nil
		}
		if current.Status == target {
			return target, false, nil
		}

		if err := store.UpdateProgressStatus(ctx, current.ID, target); err != nil {
			return current.Status, false, err
		}
		return target, true, nil
	}
}

// ========== READ MODELS ==========

func (s *engagementService) State(ctx context.Context, userID, showID int64) (*engagement.State, error) {
	favorited, err := s.repo.IsFavorited(ctx, userID, showID)
	if err != nil {
		return nil, err
	}

	status, err := s.GetStatus(ctx, userID, showID)
	if err != nil {
		return nil, err
	}

	return &engagement.State{Favorited: favorited, Status: status}, nil
}

func (s *engagementService) ListFavorites(ctx context.Context, userID int64) ([]catalog.Show, error) {
	return s.repo.ListFavorites(ctx, userID)
}

func (s *engagementService) ListWatching(ctx context.Context, userID int64) ([]engagement.WatchingEntry, error) {
	return s.repo.ListWatching(ctx, userID)
}
