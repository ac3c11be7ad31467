package catalog

import (
	"sort"
	"time"
)

// Show là một TV show trong catalog.
// PublicID được derive từ Title (utils.GeneratePublicID) và dùng trên URL.
type Show struct {
	ID          int64     `json:"id"`
	PublicID    string    `json:"public_id"`
	Title       string    `json:"title"`
	SeasonCount int       `json:"season_count"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Episode thuộc về đúng một Show.
// PublicID không unique: lookup lấy bản ghi đầu tiên trong show.
type Episode struct {
	ID          int64     `json:"id"`
	PublicID    string    `json:"public_id"`
	Title       string    `json:"title"`
	Season      int       `json:"season"`
	Number      int       `json:"number"`
	Description string    `json:"description"`
	ShowID      int64     `json:"show_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EpisodeHit là kết quả search episode kèm show chứa nó
type EpisodeHit struct {
	Episode
	ShowPublicID string `json:"show_public_id"`
	ShowTitle    string `json:"show_title"`
}

// Season là một nhóm episode cùng season number, giữ thứ tự insert
type Season struct {
	Number   int       `json:"number"`
	Episodes []Episode `json:"episodes"`
}

// ShowDetails là view model cho trang chi tiết show
type ShowDetails struct {
	Show    *Show    `json:"show"`
	Seasons []Season `json:"seasons"`
}

// GroupBySeason nhóm episodes theo season number.
// Thứ tự episodes trong mỗi season giữ nguyên thứ tự input.
func GroupBySeason(episodes []Episode) map[int][]Episode {
	grouped := make(map[int][]Episode)
	for _, ep := range episodes {
		grouped[ep.Season] = append(grouped[ep.Season], ep)
	}
	return grouped
}

// SortedSeasons trả về season numbers tăng dần
func SortedSeasons(grouped map[int][]Episode) []int {
	seasons := make([]int, 0, len(grouped))
	for season := range grouped {
		seasons = append(seasons, season)
	}
	sort.Ints(seasons)
	return seasons
}

// BuildSeasons chuyển kết quả GroupBySeason thành slice có thứ tự để render
func BuildSeasons(episodes []Episode) []Season {
	grouped := GroupBySeason(episodes)
	seasons := make([]Season, 0, len(grouped))
	for _, number := range SortedSeasons(grouped) {
		seasons = append(seasons, Season{Number: number, Episodes: grouped[number]})
	}
	return seasons
}
