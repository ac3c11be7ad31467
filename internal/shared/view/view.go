package view

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"sofa-backend/internal/shared/apperr"
	"sofa-backend/internal/shared/response"
)

// Page names. Một HTML renderer sẽ map mỗi tên sang một template.
const (
	PageIndex          = "index"
	PageNotFound       = "404"
	PageError          = "error"
	PageSearchResults  = "search-results"
	PageShows          = "shows"
	PageShowDetails    = "show-details"
	PageShowAdd        = "show-add"
	PageShowEdit       = "show-edit"
	PageEpisodeAdd     = "episode-add"
	PageEpisodeDetails = "episode-details"
	PageEpisodeEdit    = "episode-edit"
	PageUsers          = "users"
	PageUserDetails    = "user-details"
	PageUserSettings   = "user-settings"
	PageLogin          = "login"
	PageRegister       = "register"
)

// Data là view model truyền cho renderer
type Data = gin.H

// Renderer render một page với view model.
// Handlers chỉ phụ thuộc interface này, không biết output là HTML hay JSON.
type Renderer interface {
	Render(c *gin.Context, status int, page string, data Data)
}

// JSONRenderer render page dưới dạng JSON envelope của package response:
// 2xx/3xx → {"success":true,"data":{"view":page,...}}
// 4xx/5xx → {"success":false,"error":{"code","message","details":{"view":page,...}}}
type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

func (JSONRenderer) Render(c *gin.Context, status int, page string, data Data) {
	payload := gin.H{"view": page}
	for k, v := range data {
		payload[k] = v
	}

	if status < http.StatusBadRequest {
		response.Success(c, status, payload)
		return
	}

	message, _ := payload["error"].(string)
	delete(payload, "error")
	if message == "" {
		message = http.StatusText(status)
	}
	response.ErrorWithDetails(c, status, response.CodeForStatus(status), message, payload)
}

// NotFound render trang 404
func NotFound(c *gin.Context, r Renderer) {
	r.Render(c, http.StatusNotFound, PageNotFound, Data{"error": "page not found", "path": c.Request.URL.Path})
}

// InternalError render trang lỗi chung, không lộ chi tiết lỗi cho client
func InternalError(c *gin.Context, r Renderer) {
	r.Render(c, http.StatusInternalServerError, PageError, Data{"error": "internal server error"})
}

// Redirect dùng 303 cho POST (Post/Redirect/Get) và 302 cho GET
func Redirect(c *gin.Context, location string) {
	status := http.StatusFound
	if c.Request.Method == http.MethodPost {
		status = http.StatusSeeOther
	}
	c.Redirect(status, location)
}

// Fail render lỗi từ service layer:
//   - NotFound → trang 404
//   - Validation → 400, render lại page với field errors
//   - Conflict → 409, render lại page với message
//   - còn lại → log + 500
func Fail(c *gin.Context, r Renderer, err error, page string, data Data) {
	status := apperr.HTTPStatus(err)

	switch status {
	case http.StatusNotFound:
		NotFound(c, r)
		return
	case http.StatusBadRequest, http.StatusConflict:
		out := Data{}
		for k, v := range data {
			out[k] = v
		}
		out["error"] = err.Error()

		var fields validation.Errors
		if errors.As(err, &fields) {
			out["error"] = "please correct the highlighted fields"
			out["fields"] = fields
		}
		r.Render(c, status, page, out)
		return
	}

	log.Error().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("path", c.Request.URL.Path).
		Msg("request failed")
	InternalError(c, r)
}
