// Package mocks provides testify mocks for the engagement interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sofa-backend/internal/domains/catalog"
	"sofa-backend/internal/domains/engagement"
)

type Service struct {
	mock.Mock
}

func (m *Service) Favorite(ctx context.Context, userID, showID int64) error {
	return m.Called(ctx, userID, showID).Error(0)
}

func (m *Service) Unfavorite(ctx context.Context, userID, showID int64) error {
	return m.Called(ctx, userID, showID).Error(0)
}

func (m *Service) IsFavorited(ctx context.Context, userID, showID int64) (bool, error) {
	args := m.Called(ctx, userID, showID)
	return args.Bool(0), args.Error(1)
}

func (m *Service) Start(ctx context.Context, userID, showID int64) (engagement.Status, error) {
	return m.status(m.Called(ctx, userID, showID))
}

func (m *Service) Pause(ctx context.Context, userID, showID int64) (engagement.Status, error) {
	return m.status(m.Called(ctx, userID, showID))
}

func (m *Service) Resume(ctx context.Context, userID, showID int64) (engagement.Status, error) {
	return m.status(m.Called(ctx, userID, showID))
}

func (m *Service) Stop(ctx context.Context, userID, showID int64) (engagement.Status, error) {
	return m.status(m.Called(ctx, userID, showID))
}

func (m *Service) GetStatus(ctx context.Context, userID, showID int64) (engagement.Status, error) {
	return m.status(m.Called(ctx, userID, showID))
}

func (m *Service) status(args mock.Arguments) (engagement.Status, error) {
	status, _ := args.Get(0).(engagement.Status)
	return status, args.Error(1)
}

func (m *Service) State(ctx context.Context, userID, showID int64) (*engagement.State, error) {
	args := m.Called(ctx, userID, showID)
	state, _ := args.Get(0).(*engagement.State)
	return state, args.Error(1)
}

func (m *Service) ListFavorites(ctx context.Context, userID int64) ([]catalog.Show, error) {
	args := m.Called(ctx, userID)
	shows, _ := args.Get(0).([]catalog.Show)
	return shows, args.Error(1)
}

func (m *Service) ListWatching(ctx context.Context, userID int64) ([]engagement.WatchingEntry, error) {
	args := m.Called(ctx, userID)
	entries, _ := args.Get(0).([]engagement.WatchingEntry)
	return entries, args.Error(1)
}

// EpisodeAnchor mocks engagement.EpisodeAnchor
type EpisodeAnchor struct {
	mock.Mock
}

func (m *EpisodeAnchor) FirstEpisode(ctx context.Context, showID int64) (*catalog.Episode, error) {
	args := m.Called(ctx, showID)
	ep, _ := args.Get(0).(*catalog.Episode)
	return ep, args.Error(1)
}
