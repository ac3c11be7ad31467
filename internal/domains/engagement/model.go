package engagement

import (
	"encoding/json"
	"fmt"
	"time"

	"sofa-backend/internal/domains/catalog"
)

// Status là trạng thái xem của một user với một show.
// Giá trị số được lưu trực tiếp vào cột progress.status.
type Status int16

const (
	StatusNone     Status = 0
	StatusWaiting  Status = 1
	StatusWatching Status = 2
	StatusPaused   Status = 4
	StatusStopped  Status = 8
)

func (s Status) IsValid() bool {
	switch s {
	case StatusNone, StatusWaiting, StatusWatching, StatusPaused, StatusStopped:
		return true
	}
	return false
}

func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusWaiting:
		return "waiting"
	case StatusWatching:
		return "watching"
	case StatusPaused:
		return "paused"
	case StatusStopped:
		return "stopped"
	}
	return fmt.Sprintf("Status(%d)", int16(s))
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Action là thao tác của user trên show, dùng làm metrics label và route name
type Action string

const (
	ActionFavorite   Action = "favorite"
	ActionUnfavorite Action = "unfavorite"
	ActionStart      Action = "start"
	ActionPause      Action = "pause"
	ActionResume     Action = "resume"
	ActionStop       Action = "stop"
)

// Progress là tiến độ xem của một user với một show.
// EpisodeID nil khi show chưa có S1E1 lúc start hoặc episode đã bị xoá.
type Progress struct {
	ID        int64     `json:"id"`
	ShowID    int64     `json:"show_id"`
	EpisodeID *int64    `json:"episode_id,omitempty"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// State là trạng thái engagement của user trên trang chi tiết show
type State struct {
	Favorited bool   `json:"favorited"`
	Status    Status `json:"status"`
}

// WatchingEntry là một dòng trong danh sách đang xem của user
type WatchingEntry struct {
	Show    catalog.Show     `json:"show"`
	Status  Status           `json:"status"`
	Episode *catalog.Episode `json:"episode,omitempty"`
}
