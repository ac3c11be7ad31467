package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sofa-backend/internal/domains/catalog"
	catalogmocks "sofa-backend/internal/domains/catalog/mocks"
	"sofa-backend/internal/domains/user"
	usermocks "sofa-backend/internal/domains/user/mocks"
)

func TestSearch(t *testing.T) {
	ctx := context.Background()
	cat := new(catalogmocks.Service)
	users := new(usermocks.Service)
	svc := NewSearchService(cat, users)

	cat.On("SearchShows", ctx, "wire").Return([]catalog.Show{{PublicID: "the-wire"}}, nil)
	cat.On("SearchEpisodes", ctx, "wire").Return([]catalog.EpisodeHit{{ShowPublicID: "the-wire"}}, nil)
	users.On("SearchByUsername", ctx, "wire").Return([]user.User{{Username: "wirefan", Email: "w@example.com"}}, nil)

	results, err := svc.Search(ctx, "  wire ")

	require.NoError(t, err)
	assert.Equal(t, "wire", results.Term)
	assert.Equal(t, 3, results.Total())
	assert.Equal(t, "wirefan", results.Users[0].Username)
}

func TestSearch_EmptyTerm(t *testing.T) {
	cat := new(catalogmocks.Service)
	users := new(usermocks.Service)
	svc := NewSearchService(cat, users)

	results, err := svc.Search(context.Background(), "   ")

	require.NoError(t, err)
	assert.Equal(t, 0, results.Total())
	assert.NotNil(t, results.Shows)
	cat.AssertNotCalled(t, "SearchShows", mock.Anything, mock.Anything)
}

func TestSearch_PropagatesErrors(t *testing.T) {
	ctx := context.Background()
	cat := new(catalogmocks.Service)
	svc := NewSearchService(cat, new(usermocks.Service))

	cat.On("SearchShows", ctx, "x").Return(nil, errors.New("timeout"))

	_, err := svc.Search(ctx, "x")
	assert.Error(t, err)
}
