package search

import (
	"sofa-backend/internal/domains/catalog"
	"sofa-backend/internal/domains/user"
)

// Results gom kết quả tìm kiếm trên shows, episodes và usernames
type Results struct {
	Term     string               `json:"term"`
	Shows    []catalog.Show       `json:"shows"`
	Episodes []catalog.EpisodeHit `json:"episodes"`
	Users    []user.Profile       `json:"users"`
}

func (r *Results) Total() int {
	return len(r.Shows) + len(r.Episodes) + len(r.Users)
}
