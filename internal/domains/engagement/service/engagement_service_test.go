package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sofa-backend/internal/domains/catalog"
	"sofa-backend/internal/domains/engagement"
	"sofa-backend/internal/domains/engagement/mocks"
)

// memoryRepository is an in-process engagement.Repository.
// RunLocked serializes all callers on one mutex, matching the advisory-lock semantics.
type memoryRepository struct {
	mu        sync.Mutex
	favorites map[[2]int64]bool
	progress  map[[2]int64][]*engagement.Progress
	nextID    int64
	failWith  error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		favorites: make(map[[2]int64]bool),
		progress:  make(map[[2]int64][]*engagement.Progress),
	}
}

func (r *memoryRepository) RunLocked(ctx context.Context, userID, showID int64, fn func(store engagement.Store) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	return fn(memoryStore{r})
}

func (r *memoryRepository) IsFavorited(ctx context.Context, userID, showID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.favorites[[2]int64{userID, showID}], nil
}

func (r *memoryRepository) FindProgress(ctx context.Context, userID, showID int64) (*engagement.Progress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.find(userID, showID), nil
}

func (r *memoryRepository) find(userID, showID int64) *engagement.Progress {
	records := r.progress[[2]int64{userID, showID}]
	if len(records) == 0 {
		return nil
	}
	p := *records[0]
	return &p
}

func (r *memoryRepository) ListFavorites(ctx context.Context, userID int64) ([]catalog.Show, error) {
	return nil, nil
}

func (r *memoryRepository) ListWatching(ctx context.Context, userID int64) ([]engagement.WatchingEntry, error) {
	return nil, nil
}

func (r *memoryRepository) records(userID, showID int64) []*engagement.Progress {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.progress[[2]int64{userID, showID}]
}

type memoryStore struct {
	r *memoryRepository
}

func (s memoryStore) AddFavorite(ctx context.Context, userID, showID int64) (bool, error) {
	key := [2]int64{userID, showID}
	if s.r.favorites[key] {
		return false, nil
	}
	s.r.favorites[key] = true
	return true, nil
}

func (s memoryStore) RemoveFavorite(ctx context.Context, userID, showID int64) (bool, error) {
	key := [2]int64{userID, showID}
	if !s.r.favorites[key] {
		return false, nil
	}
	delete(s.r.favorites, key)
	return true, nil
}

func (s memoryStore) FindProgress(ctx context.Context, userID, showID int64) (*engagement.Progress, error) {
	return s.r.find(userID, showID), nil
}

func (s memoryStore) CreateProgress(ctx context.Context, userID int64, p *engagement.Progress) error {
	s.r.nextID++
	p.ID = s.r.nextID
	stored := *p
	key := [2]int64{userID, p.ShowID}
	s.r.progress[key] = append(s.r.progress[key], &stored)
	return nil
}

func (s memoryStore) UpdateProgressStatus(ctx context.Context, progressID int64, status engagement.Status) error {
	for _, records := range s.r.progress {
		for _, p := range records {
			if p.ID == progressID {
				p.Status = status
				return nil
			}
		}
	}
	return errors.New("progress not found")
}

const (
	alice   int64 = 1
	bob     int64 = 2
	theWire int64 = 10
)

func newTestService(t *testing.T, first *catalog.Episode) (engagement.Service, *memoryRepository) {
	t.Helper()
	repo := newMemoryRepository()
	anchor := new(mocks.EpisodeAnchor)
	anchor.On("FirstEpisode", mock.Anything, theWire).Return(first, nil).Maybe()
	return NewEngagementService(repo, anchor), repo
}

func TestFavorite_Idempotent(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	require.NoError(t, svc.Favorite(ctx, alice, theWire))
	require.NoError(t, svc.Favorite(ctx, alice, theWire))

	favorited, err := svc.IsFavorited(ctx, alice, theWire)
	require.NoError(t, err)
	assert.True(t, favorited)

	require.NoError(t, svc.Unfavorite(ctx, alice, theWire))
	require.NoError(t, svc.Unfavorite(ctx, alice, theWire))

	favorited, err = svc.IsFavorited(ctx, alice, theWire)
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestStart_CreatesSingleRecordAnchoredAtFirstEpisode(t *testing.T) {
	pilot := &catalog.Episode{ID: 100, Season: 1, Number: 1, ShowID: theWire}
	svc, repo := newTestService(t, pilot)
	ctx := context.Background()

	status, err := svc.Start(ctx, alice, theWire)
	require.NoError(t, err)
	assert.Equal(t, engagement.StatusWatching, status)

	status, err = svc.Start(ctx, alice, theWire)
	require.NoError(t, err)
	assert.Equal(t, engagement.StatusWatching, status)

	records := repo.records(alice, theWire)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].EpisodeID)
	assert.Equal(t, int64(100), *records[0].EpisodeID)
}

func TestStart_ShowWithoutEpisodes(t *testing.T) {
	svc, repo := newTestService(t, nil)

	status, err := svc.Start(context.Background(), alice, theWire)

	require.NoError(t, err)
	assert.Equal(t, engagement.StatusWatching, status)
	records := repo.records(alice, theWire)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].EpisodeID)
}

func TestStart_ConcurrentCallsCreateOneRecord(t *testing.T) {
	svc, repo := newTestService(t, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Start(ctx, alice, theWire)
		}()
	}
	wg.Wait()

	assert.Len(t, repo.records(alice, theWire), 1)
}

func TestPauseResume(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	_, err := svc.Start(ctx, alice, theWire)
	require.NoError(t, err)

	status, err := svc.Pause(ctx, alice, theWire)
	require.NoError(t, err)
	assert.Equal(t, engagement.StatusPaused, status)

	status, err = svc.Resume(ctx, alice, theWire)
	require.NoError(t, err)
	assert.Equal(t, engagement.StatusWatching, status)

	got, err := svc.GetStatus(ctx, alice, theWire)
	require.NoError(t, err)
	assert.Equal(t, engagement.StatusWatching, got)
}

func TestPause_WithoutStartIsNoop(t *testing.T) {
	svc, repo := newTestService(t, nil)
	ctx := context.Background()

	status, err := svc.Pause(ctx, alice, theWire)
	require.NoError(t, err)
	assert.Equal(t, engagement.StatusNone, status)

	got, err := svc.GetStatus(ctx, alice, theWire)
	require.NoError(t, err)
	assert.Equal(t, engagement.StatusNone, got)
	assert.Empty(t, repo.records(alice, theWire))
}

func TestResume_OnlyFromPaused(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	status, err := svc.Resume(ctx, alice, theWire)
	require.NoError(t, err)
	assert.Equal(t, engagement.StatusNone, status)

	_, err = svc.Start(ctx, alice, theWire)
	require.NoError(t, err)
	_, err = svc.Stop(ctx, alice, theWire)
	require.NoError(t, err)

	status, err = svc.Resume(ctx, alice, theWire)
	require.NoError(t, err)
	assert.Equal(t, engagement.StatusStopped, status)
}

func TestStop(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	status, err := svc.Stop(ctx, alice, theWire)
	require.NoError(t, err)
	assert.Equal(t, engagement.StatusNone, status)

	_, err = svc.Start(ctx, alice, theWire)
	require.NoError(t, err)

	status, err = svc.Stop(ctx, alice, theWire)
	require.NoError(t, err)
	assert.Equal(t, engagement.StatusStopped, status)

	// start on an existing record keeps it unchanged
	status, err = svc.Start(ctx, alice, theWire)
	require.NoError(t, err)
	assert.Equal(t, engagement.StatusStopped, status)
}

func TestProgress_ScopedPerUser(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	_, err := svc.Start(ctx, alice, theWire)
	require.NoError(t, err)

	status, err := svc.GetStatus(ctx, bob, theWire)
	require.NoError(t, err)
	assert.Equal(t, engagement.StatusNone, status)

	status, err = svc.Pause(ctx, bob, theWire)
	require.NoError(t, err)
	assert.Equal(t, engagement.StatusNone, status)

	status, err = svc.GetStatus(ctx, alice, theWire)
	require.NoError(t, err)
	assert.Equal(t, engagement.StatusWatching, status)
}

func TestState(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	require.NoError(t, svc.Favorite(ctx, alice, theWire))
	_, err := svc.Start(ctx, alice, theWire)
	require.NoError(t, err)
	_, err = svc.Pause(ctx, alice, theWire)
	require.NoError(t, err)

	state, err := svc.State(ctx, alice, theWire)
	require.NoError(t, err)
	assert.Equal(t, &engagement.State{Favorited: true, Status: engagement.StatusPaused}, state)
}

func TestTransition_PropagatesStorageErrors(t *testing.T) {
	svc, repo := newTestService(t, nil)
	repo.failWith = errors.New("connection reset")

	status, err := svc.Pause(context.Background(), alice, theWire)
	assert.Error(t, err)
	assert.Equal(t, engagement.StatusNone, status)

	assert.Error(t, svc.Favorite(context.Background(), alice, theWire))
}

func TestStart_AnchorError(t *testing.T) {
	repo := newMemoryRepository()
	anchor := new(mocks.EpisodeAnchor)
	anchor.On("FirstEpisode", mock.Anything, theWire).Return(nil, errors.New("db down"))
	svc := NewEngagementService(repo, anchor)

	_, err := svc.Start(context.Background(), alice, theWire)
	assert.Error(t, err)
	assert.Empty(t, repo.records(alice, theWire))
}
