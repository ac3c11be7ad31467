// Package mocks provides testify mocks for the catalog interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sofa-backend/internal/domains/catalog"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) CreateShow(ctx context.Context, show *catalog.Show) error {
	return m.Called(ctx, show).Error(0)
}

func (m *Repository) FindShowByPublicID(ctx context.Context, publicID string) (*catalog.Show, error) {
	args := m.Called(ctx, publicID)
	show, _ := args.Get(0).(*catalog.Show)
	return show, args.Error(1)
}

func (m *Repository) ListShows(ctx context.Context) ([]catalog.Show, error) {
	args := m.Called(ctx)
	shows, _ := args.Get(0).([]catalog.Show)
	return shows, args.Error(1)
}

func (m *Repository) UpdateShow(ctx context.Context, previousPublicID string, show *catalog.Show) error {
	return m.Called(ctx, previousPublicID, show).Error(0)
}

func (m *Repository) DeleteShow(ctx context.Context, show *catalog.Show) error {
	return m.Called(ctx, show).Error(0)
}

func (m *Repository) SearchShows(ctx context.Context, term string) ([]catalog.Show, error) {
	args := m.Called(ctx, term)
	shows, _ := args.Get(0).([]catalog.Show)
	return shows, args.Error(1)
}

func (m *Repository) CreateEpisode(ctx context.Context, episode *catalog.Episode) error {
	return m.Called(ctx, episode).Error(0)
}

func (m *Repository) ListEpisodesByShow(ctx context.Context, showID int64) ([]catalog.Episode, error) {
	args := m.Called(ctx, showID)
	episodes, _ := args.Get(0).([]catalog.Episode)
	return episodes, args.Error(1)
}

func (m *Repository) FindEpisode(ctx context.Context, showID int64, publicID string) (*catalog.Episode, error) {
	args := m.Called(ctx, showID, publicID)
	ep, _ := args.Get(0).(*catalog.Episode)
	return ep, args.Error(1)
}

func (m *Repository) FindFirstEpisode(ctx context.Context, showID int64, season, number int) (*catalog.Episode, error) {
	args := m.Called(ctx, showID, season, number)
	ep, _ := args.Get(0).(*catalog.Episode)
	return ep, args.Error(1)
}

func (m *Repository) UpdateEpisode(ctx context.Context, episode *catalog.Episode) error {
	return m.Called(ctx, episode).Error(0)
}

func (m *Repository) DeleteEpisode(ctx context.Context, episodeID int64) error {
	return m.Called(ctx, episodeID).Error(0)
}

func (m *Repository) SearchEpisodes(ctx context.Context, term string) ([]catalog.EpisodeHit, error) {
	args := m.Called(ctx, term)
	hits, _ := args.Get(0).([]catalog.EpisodeHit)
	return hits, args.Error(1)
}

type Service struct {
	mock.Mock
}

func (m *Service) CreateShow(ctx context.Context, req catalog.ShowRequest) (*catalog.Show, error) {
	args := m.Called(ctx, req)
	show, _ := args.Get(0).(*catalog.Show)
	return show, args.Error(1)
}

func (m *Service) GetShow(ctx context.Context, publicID string) (*catalog.Show, error) {
	args := m.Called(ctx, publicID)
	show, _ := args.Get(0).(*catalog.Show)
	return show, args.Error(1)
}

func (m *Service) GetShowDetails(ctx context.Context, publicID string) (*catalog.ShowDetails, error) {
	args := m.Called(ctx, publicID)
	details, _ := args.Get(0).(*catalog.ShowDetails)
	return details, args.Error(1)
}

func (m *Service) ListShows(ctx context.Context) ([]catalog.Show, error) {
	args := m.Called(ctx)
	shows, _ := args.Get(0).([]catalog.Show)
	return shows, args.Error(1)
}

func (m *Service) UpdateShow(ctx context.Context, publicID string, req catalog.ShowRequest) (*catalog.Show, error) {
	args := m.Called(ctx, publicID, req)
	show, _ := args.Get(0).(*catalog.Show)
	return show, args.Error(1)
}

func (m *Service) DeleteShow(ctx context.Context, publicID string) error {
	return m.Called(ctx, publicID).Error(0)
}

func (m *Service) CreateEpisode(ctx context.Context, showPublicID string, req catalog.EpisodeRequest) (*catalog.Episode, error) {
	args := m.Called(ctx, showPublicID, req)
	ep, _ := args.Get(0).(*catalog.Episode)
	return ep, args.Error(1)
}

func (m *Service) ListEpisodesForShow(ctx context.Context, showID int64) ([]catalog.Episode, error) {
	args := m.Called(ctx, showID)
	episodes, _ := args.Get(0).([]catalog.Episode)
	return episodes, args.Error(1)
}

func (m *Service) GetEpisode(ctx context.Context, showPublicID, episodePublicID string) (*catalog.Show, *catalog.Episode, error) {
	args := m.Called(ctx, showPublicID, episodePublicID)
	show, _ := args.Get(0).(*catalog.Show)
	ep, _ := args.Get(1).(*catalog.Episode)
	return show, ep, args.Error(2)
}

func (m *Service) UpdateEpisode(ctx context.Context, showPublicID, episodePublicID string, req catalog.EpisodeRequest) (*catalog.Episode, error) {
	args := m.Called(ctx, showPublicID, episodePublicID, req)
	ep, _ := args.Get(0).(*catalog.Episode)
	return ep, args.Error(1)
}

func (m *Service) DeleteEpisode(ctx context.Context, showPublicID, episodePublicID string) error {
	return m.Called(ctx, showPublicID, episodePublicID).Error(0)
}

func (m *Service) FirstEpisode(ctx context.Context, showID int64) (*catalog.Episode, error) {
	args := m.Called(ctx, showID)
	ep, _ := args.Get(0).(*catalog.Episode)
	return ep, args.Error(1)
}

func (m *Service) SearchShows(ctx context.Context, term string) ([]catalog.Show, error) {
	args := m.Called(ctx, term)
	shows, _ := args.Get(0).([]catalog.Show)
	return shows, args.Error(1)
}

func (m *Service) SearchEpisodes(ctx context.Context, term string) ([]catalog.EpisodeHit, error) {
	args := m.Called(ctx, term)
	hits, _ := args.Get(0).([]catalog.EpisodeHit)
	return hits, args.Error(1)
}
