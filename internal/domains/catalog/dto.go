package catalog

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ShowRequest là form add/edit show
type ShowRequest struct {
	Title       string `form:"title" json:"title"`
	SeasonCount int    `form:"season_count" json:"season_count"`
	Description string `form:"description" json:"description"`
}

func (r ShowRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.SeasonCount,
			validation.Min(0).Error("season count must not be negative"),
		),
		validation.Field(&r.Description,
			validation.Length(0, 5000),
		),
	)
}

// EpisodeRequest là form add/edit episode
type EpisodeRequest struct {
	Title       string `form:"title" json:"title"`
	Season      int    `form:"season" json:"season"`
	Number      int    `form:"number" json:"number"`
	Description string `form:"description" json:"description"`
}

func (r EpisodeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Season,
			validation.Required.Error("season is required"),
			validation.Min(1).Error("season must be at least 1"),
		),
		validation.Field(&r.Number,
			validation.Required.Error("episode number is required"),
			validation.Min(1).Error("episode number must be at least 1"),
		),
		validation.Field(&r.Description,
			validation.Length(0, 5000),
		),
	)
}
