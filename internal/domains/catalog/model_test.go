package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupBySeason_PreservesInsertionOrder(t *testing.T) {
	episodes := []Episode{
		{ID: 3, Season: 2, Title: "c"},
		{ID: 1, Season: 1, Title: "a"},
		{ID: 4, Season: 2, Title: "d"},
		{ID: 2, Season: 1, Title: "b"},
	}

	grouped := GroupBySeason(episodes)

	assert.Len(t, grouped, 2)
	assert.Equal(t, []int64{1, 2}, ids(grouped[1]))
	assert.Equal(t, []int64{3, 4}, ids(grouped[2]))
	assert.Equal(t, []int{1, 2}, SortedSeasons(grouped))
}

func TestGroupBySeason_Empty(t *testing.T) {
	assert.Empty(t, GroupBySeason(nil))
	assert.Empty(t, BuildSeasons(nil))
}

func TestBuildSeasons(t *testing.T) {
	seasons := BuildSeasons([]Episode{
		{ID: 5, Season: 3},
		{ID: 1, Season: 1},
	})

	assert.Equal(t, 1, seasons[0].Number)
	assert.Equal(t, 3, seasons[1].Number)
}

func ids(episodes []Episode) []int64 {
	out := make([]int64, 0, len(episodes))
	for _, e := range episodes {
		out = append(out, e.ID)
	}
	return out
}
