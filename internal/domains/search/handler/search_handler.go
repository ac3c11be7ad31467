package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sofa-backend/internal/domains/search"
	"sofa-backend/internal/shared/apperr"
	"sofa-backend/internal/shared/view"
)

type SearchHandler struct {
	service  search.Service
	renderer view.Renderer
}

func NewSearchHandler(svc search.Service, renderer view.Renderer) *SearchHandler {
	return &SearchHandler{
		service:  svc,
		renderer: renderer,
	}
}

// GET /search: không có form riêng, về trang chủ
func (h *SearchHandler) Redirect(c *gin.Context) {
	view.Redirect(c, "/")
}

// POST /search
func (h *SearchHandler) Search(c *gin.Context) {
	var req search.Request
	if err := c.ShouldBind(&req); err != nil {
		view.Fail(c, h.renderer, apperr.Validation(err), view.PageSearchResults, nil)
		return
	}
	if err := req.Validate(); err != nil {
		view.Fail(c, h.renderer, apperr.Validation(err), view.PageSearchResults, view.Data{"term": req.Term()})
		return
	}

	term := req.Term()
	results, err := h.service.Search(c.Request.Context(), term)
	if err != nil {
		view.Fail(c, h.renderer, err, view.PageSearchResults, nil)
		return
	}

	h.renderer.Render(c, http.StatusOK, view.PageSearchResults, view.Data{
		"term":    term,
		"results": results,
		"total":   results.Total(),
	})
}
