package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sofa-backend/internal/domains/catalog"
	"sofa-backend/internal/shared/apperr"
	"sofa-backend/internal/shared/utils"
	"sofa-backend/pkg/logger"
)

type catalogService struct {
	repo catalog.Repository
}

func NewCatalogService(repo catalog.Repository) catalog.Service {
	return &catalogService{repo: repo}
}

// ========== SHOWS ==========

func (s *catalogService) CreateShow(ctx context.Context, req catalog.ShowRequest) (*catalog.Show, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := req.Validate(); err != nil {
		return nil, apperr.Validation(err)
	}

	publicID := utils.GeneratePublicID(req.Title)
	if err := catalog.ShowPublicID(publicID); err != nil {
		return nil, err
	}

	show := &catalog.Show{
		PublicID:    publicID,
		Title:       req.Title,
		SeasonCount: req.SeasonCount,
		Description: req.Description,
	}

	if err := s.repo.CreateShow(ctx, show); err != nil {
		return nil, err
	}

	logger.Info("show created", map[string]interface{}{
		"show_id":   show.ID,
		"public_id": show.PublicID,
	})

	return show, nil
}

func (s *catalogService) GetShow(ctx context.Context, publicID string) (*catalog.Show, error) {
	return s.repo.FindShowByPublicID(ctx, publicID)
}

func (s *catalogService) GetShowDetails(ctx context.Context, publicID string) (*catalog.ShowDetails, error) {
	show, err := s.repo.FindShowByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	episodes, err := s.repo.ListEpisodesByShow(ctx, show.ID)
	if err != nil {
		return nil, err
	}

	return &catalog.ShowDetails{
		Show:    show,
		Seasons: catalog.BuildSeasons(episodes),
	}, nil
}

func (s *catalogService) ListShows(ctx context.Context) ([]catalog.Show, error) {
	return s.repo.ListShows(ctx)
}

// UpdateShow: đổi title thì public id được tính lại
func (s *catalogService) UpdateShow(ctx context.Context, publicID string, req catalog.ShowRequest) (*catalog.Show, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := req.Validate(); err != nil {
		return nil, apperr.Validation(err)
	}

	show, err := s.repo.FindShowByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	newPublicID := utils.GeneratePublicID(req.Title)
	if err := catalog.ShowPublicID(newPublicID); err != nil {
		return nil, err
	}

	show.PublicID = newPublicID
	show.Title = req.Title
	show.SeasonCount = req.SeasonCount
	show.Description = req.Description

	if err := s.repo.UpdateShow(ctx, publicID, show); err != nil {
		return nil, err
	}

	return show, nil
}

func (s *catalogService) DeleteShow(ctx context.Context, publicID string) error {
	show, err := s.repo.FindShowByPublicID(ctx, publicID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteShow(ctx, show); err != nil {
		return err
	}

	logger.Info("show deleted", map[string]interface{}{
		"show_id":   show.ID,
		"public_id": show.PublicID,
	})

	return nil
}

func (s *catalogService) SearchShows(ctx context.Context, term string) ([]catalog.Show, error) {
	return s.repo.SearchShows(ctx, term)
}

// ========== EPISODES ==========

func (s *catalogService) CreateEpisode(ctx context.Context, showPublicID string, req catalog.EpisodeRequest) (*catalog.Episode, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := req.Validate(); err != nil {
		return nil, apperr.Validation(err)
	}

	show, err := s.repo.FindShowByPublicID(ctx, showPublicID)
	if err != nil {
		return nil, err
	}

	publicID := utils.GeneratePublicID(req.Title)
	if err := catalog.EpisodePublicID(publicID); err != nil {
		return nil, err
	}

	episode := &catalog.Episode{
		PublicID:    publicID,
		Title:       req.Title,
		Season:      req.Season,
		Number:      req.Number,
		Description: req.Description,
		ShowID:      show.ID,
	}

	if err := s.repo.CreateEpisode(ctx, episode); err != nil {
		return nil, err
	}

	return episode, nil
}

func (s *catalogService) ListEpisodesForShow(ctx context.Context, showID int64) ([]catalog.Episode, error) {
	return s.repo.ListEpisodesByShow(ctx, showID)
}

func (s *catalogService) GetEpisode(ctx context.Context, showPublicID, episodePublicID string) (*catalog.Show, *catalog.Episode, error) {
	show, err := s.repo.FindShowByPublicID(ctx, showPublicID)
	if err != nil {
		return nil, nil, err
	}

	episode, err := s.repo.FindEpisode(ctx, show.ID, episodePublicID)
	if err != nil {
		return nil, nil, err
	}

	return show, episode, nil
}

func (s *catalogService) UpdateEpisode(ctx context.Context, showPublicID, episodePublicID string, req catalog.EpisodeRequest) (*catalog.Episode, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := req.Validate(); err != nil {
		return nil, apperr.Validation(err)
	}

	_, episode, err := s.GetEpisode(ctx, showPublicID, episodePublicID)
	if err != nil {
		return nil, err
	}

	publicID := utils.GeneratePublicID(req.Title)
	if err := catalog.EpisodePublicID(publicID); err != nil {
		return nil, err
	}

	episode.PublicID = publicID
	episode.Title = req.Title
	episode.Season = req.Season
	episode.Number = req.Number
	episode.Description = req.Description

	if err := s.repo.UpdateEpisode(ctx, episode); err != nil {
		return nil, err
	}

	return episode, nil
}

func (s *catalogService) DeleteEpisode(ctx context.Context, showPublicID, episodePublicID string) error {
	_, episode, err := s.GetEpisode(ctx, showPublicID, episodePublicID)
	if err != nil {
		return err
	}
	return s.repo.DeleteEpisode(ctx, episode.ID)
}

func (s *catalogService) FirstEpisode(ctx context.Context, showID int64) (*catalog.Episode, error) {
	episode, err := s.repo.FindFirstEpisode(ctx, showID, 1, 1)
	if err != nil {
		if errors.Is(err, catalog.ErrEpisodeNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find first episode: %w", err)
	}
	return episode, nil
}

func (s *catalogService) SearchEpisodes(ctx context.Context, term string) ([]catalog.EpisodeHit, error) {
	return s.repo.SearchEpisodes(ctx, term)
}
