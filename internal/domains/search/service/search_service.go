package service

import (
	"context"
	"strings"

	"sofa-backend/internal/domains/catalog"
	"sofa-backend/internal/domains/search"
	"sofa-backend/internal/domains/user"
)

type searchService struct {
	catalog catalog.Service
	users   user.Service
}

func NewSearchService(catalogSvc catalog.Service, users user.Service) search.Service {
	return &searchService{
		catalog: catalogSvc,
		users:   users,
	}
}

func (s *searchService) Search(ctx context.Context, term string) (*search.Results, error) {
	term = strings.TrimSpace(term)
	results := &search.Results{
		Term:     term,
		Shows:    []catalog.Show{},
		Episodes: []catalog.EpisodeHit{},
		Users:    []user.Profile{},
	}
	if term == "" {
		return results, nil
	}

	shows, err := s.catalog.SearchShows(ctx, term)
	if err != nil {
		return nil, err
	}
	results.Shows = shows

	episodes, err := s.catalog.SearchEpisodes(ctx, term)
	if err != nil {
		return nil, err
	}
	results.Episodes = episodes

	users, err := s.users.SearchByUsername(ctx, term)
	if err != nil {
		return nil, err
	}
	for i := range users {
		results.Users = append(results.Users, users[i].ToProfile())
	}

	return results, nil
}
