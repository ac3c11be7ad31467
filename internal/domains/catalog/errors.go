package catalog

import (
	"errors"

	"sofa-backend/internal/shared/apperr"
)

var (
	ErrShowNotFound      = apperr.New(apperr.ErrNotFound, "show not found")
	ErrEpisodeNotFound   = apperr.New(apperr.ErrNotFound, "episode not found")
	ErrShowAlreadyExists = apperr.New(apperr.ErrConflict, "a show with this title already exists")

	// Title chỉ gồm ký tự bị strip → public id rỗng
	ErrEmptyPublicID = apperr.Validation(errors.New("title must contain at least one letter or digit"))

	// Public id trùng với path segment tĩnh của router
	ErrReservedPublicID = apperr.Validation(errors.New("this title is reserved, please choose another one"))
)

// Path segment tĩnh nằm cùng cấp với :public_id / :episode_id trong router
var (
	reservedShowIDs    = map[string]struct{}{"add": {}}
	reservedEpisodeIDs = map[string]struct{}{"add": {}, "edit": {}, "delete": {}}
)

// ShowPublicID validate public id đã generate cho show
func ShowPublicID(publicID string) error {
	return checkPublicID(publicID, reservedShowIDs)
}

// EpisodePublicID validate public id đã generate cho episode
func EpisodePublicID(publicID string) error {
	return checkPublicID(publicID, reservedEpisodeIDs)
}

func checkPublicID(publicID string, reserved map[string]struct{}) error {
	if publicID == "" {
		return ErrEmptyPublicID
	}
	if _, ok := reserved[publicID]; ok {
		return ErrReservedPublicID
	}
	return nil
}
