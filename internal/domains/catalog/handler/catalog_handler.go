package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sofa-backend/internal/domains/catalog"
	"sofa-backend/internal/domains/engagement"
	"sofa-backend/internal/domains/user"
	"sofa-backend/internal/shared/apperr"
	"sofa-backend/internal/shared/session"
	"sofa-backend/internal/shared/view"
	"sofa-backend/pkg/logger"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type CatalogHandler struct {
	service    catalog.Service
	users      user.Service
	engagement engagement.Service
	renderer   view.Renderer
}

func NewCatalogHandler(
	svc catalog.Service,
	users user.Service,
	engagementSvc engagement.Service,
	renderer view.Renderer,
) *CatalogHandler {
	return &CatalogHandler{
		service:    svc,
		users:      users,
		engagement: engagementSvc,
		renderer:   renderer,
	}
}

func showURL(publicID string) string {
	return "/shows/" + publicID
}

func episodeURL(showPublicID, episodePublicID string) string {
	return showURL(showPublicID) + "/episodes/" + episodePublicID
}

// ========== HOME: GET / ==========
func (h *CatalogHandler) Home(c *gin.Context) {
	shows, err := h.service.ListShows(c.Request.Context())
	if err != nil {
		view.Fail(c, h.renderer, err, view.PageIndex, nil)
		return
	}

	h.renderer.Render(c, http.StatusOK, view.PageIndex, view.Data{
		"shows":   shows,
		"session": session.FromContext(c),
	})
}

// ========== LIST: GET /shows ==========
func (h *CatalogHandler) ListShows(c *gin.Context) {
	shows, err := h.service.ListShows(c.Request.Context())
	if err != nil {
		view.Fail(c, h.renderer, err, view.PageShows, nil)
		return
	}

	h.renderer.Render(c, http.StatusOK, view.PageShows, view.Data{"shows": shows})
}

// ========== DETAILS: GET /shows/:public_id ==========
func (h *CatalogHandler) ShowDetails(c *gin.Context) {
	ctx := c.Request.Context()

	details, err := h.service.GetShowDetails(ctx, c.Param("public_id"))
	if err != nil {
		view.Fail(c, h.renderer, err, view.PageShowDetails, nil)
		return
	}

	state := &engagement.State{Status: engagement.StatusNone}
	viewer, err := user.Current(ctx, h.users, session.FromContext(c))
	if err != nil {
		view.Fail(c, h.renderer, err, view.PageShowDetails, nil)
		return
	}
	if viewer != nil {
		state, err = h.engagement.State(ctx, viewer.ID, details.Show.ID)
		if err != nil {
			view.Fail(c, h.renderer, err, view.PageShowDetails, nil)
			return
		}
	}

	h.renderer.Render(c, http.StatusOK, view.PageShowDetails, view.Data{
		"show":       details.Show,
		"seasons":    details.Seasons,
		"engagement": state,
		"logged_in":  viewer != nil,
	})
}

// ========== ADD: GET|POST /shows/add ==========
func (h *CatalogHandler) AddShowForm(c *gin.Context) {
	h.renderer.Render(c, http.StatusOK, view.PageShowAdd, view.Data{"form": catalog.ShowRequest{}})
}

func (h *CatalogHandler) AddShow(c *gin.Context) {
	var req catalog.ShowRequest
	if err := c.ShouldBind(&req); err != nil {
		view.Fail(c, h.renderer, apperr.Validation(err), view.PageShowAdd, view.Data{"form": req})
		return
	}

	show, err := h.service.CreateShow(c.Request.Context(), req)
	if err != nil {
		view.Fail(c, h.renderer, err, view.PageShowAdd, view.Data{"form": req})
		return
	}

	view.Redirect(c, showURL(show.PublicID))
}

// ========== EDIT: GET|POST /shows/:public_id/edit ==========
func (h *CatalogHandler) EditShowForm(c *gin.Context) {
	show, err := h.service.GetShow(c.Request.Context(), c.Param("public_id"))
	if err != nil {
		view.Fail(c, h.renderer, err, view.PageShowEdit, nil)
		return
	}

	h.renderer.Render(c, http.StatusOK, view.PageShowEdit, view.Data{
		"show": show,
		"form": catalog.ShowRequest{
			Title:       show.Title,
			SeasonCount: show.SeasonCount,
			Description: show.Description,
		},
	})
}

func (h *CatalogHandler) EditShow(c *gin.Context) {
	publicID := c.Param("public_id")

	var req catalog.ShowRequest
	if err := c.ShouldBind(&req); err != nil {
		view.Fail(c, h.renderer, apperr.Validation(err), view.PageShowEdit, view.Data{"form": req})
		return
	}

	show, err := h.service.UpdateShow(c.Request.Context(), publicID, req)
	if err != nil {
		view.Fail(c, h.renderer, err, view.PageShowEdit, view.Data{"form": req})
		return
	}

	view.Redirect(c, showURL(show.PublicID))
}

// ========== DELETE: GET /shows/:public_id/delete ==========
func (h *CatalogHandler) DeleteShow(c *gin.Context) {
	publicID := c.Param("public_id")

	if err := h.service.DeleteShow(c.Request.Context(), publicID); err != nil {
		view.Fail(c, h.renderer, err, view.PageShowDetails, nil)
		return
	}

	logger.Info("show deleted via request", map[string]interface{}{
		"public_id":  publicID,
		"request_id": c.GetString("request_id"),
	})
	view.Redirect(c, "/shows")
}

// ========== EPISODES ==========

// GET /shows/:public_id/episodes/add
func (h *CatalogHandler) AddEpisodeForm(c *gin.Context) {
	show, err := h.service.GetShow(c.Request.Context(), c.Param("public_id"))
	if err != nil {
		view.Fail(c, h.renderer, err, view.PageEpisodeAdd, nil)
		return
	}

	h.renderer.Render(c, http.StatusOK, view.PageEpisodeAdd, view.Data{
		"show": show,
		"form": catalog.EpisodeRequest{Season: 1},
	})
}

// POST /shows/:public_id/episodes/add
func (h *CatalogHandler) AddEpisode(c *gin.Context) {
	publicID := c.Param("public_id")

	var req catalog.EpisodeRequest
	if err := c.ShouldBind(&req); err != nil {
		view.Fail(c, h.renderer, apperr.Validation(err), view.PageEpisodeAdd, view.Data{"form": req})
		return
	}

	if _, err := h.service.CreateEpisode(c.Request.Context(), publicID, req); err != nil {
		view.Fail(c, h.renderer, err, view.PageEpisodeAdd, view.Data{"form": req})
		return
	}

	view.Redirect(c, showURL(publicID))
}

// GET /shows/:public_id/episodes/:episode_id
func (h *CatalogHandler) EpisodeDetails(c *gin.Context) {
	show, episode, err := h.service.GetEpisode(c.Request.Context(), c.Param("public_id"), c.Param("episode_id"))
	if err != nil {
		view.Fail(c, h.renderer, err, view.PageEpisodeDetails, nil)
		return
	}

	h.renderer.Render(c, http.StatusOK, view.PageEpisodeDetails, view.Data{
		"show":    show,
		"episode": episode,
	})
}

// GET /shows/:public_id/episodes/:episode_id/edit
func (h *CatalogHandler) EditEpisodeForm(c *gin.Context) {
	show, episode, err := h.service.GetEpisode(c.Request.Context(), c.Param("public_id"), c.Param("episode_id"))
	if err != nil {
		view.Fail(c, h.renderer, err, view.PageEpisodeEdit, nil)
		return
	}

	h.renderer.Render(c, http.StatusOK, view.PageEpisodeEdit, view.Data{
		"show":    show,
		"episode": episode,
		"form": catalog.EpisodeRequest{
			Title:       episode.Title,
			Season:      episode.Season,
			Number:      episode.Number,
			Description: episode.Description,
		},
	})
}

// POST /shows/:public_id/episodes/:episode_id/edit
func (h *CatalogHandler) EditEpisode(c *gin.Context) {
	showID := c.Param("public_id")

	var req catalog.EpisodeRequest
	if err := c.ShouldBind(&req); err != nil {
		view.Fail(c, h.renderer, apperr.Validation(err), view.PageEpisodeEdit, view.Data{"form": req})
		return
	}

	episode, err := h.service.UpdateEpisode(c.Request.Context(), showID, c.Param("episode_id"), req)
	if err != nil {
		view.Fail(c, h.renderer, err, view.PageEpisodeEdit, view.Data{"form": req})
		return
	}

	view.Redirect(c, episodeURL(showID, episode.PublicID))
}

// GET /shows/:public_id/episodes/:episode_id/delete
func (h *CatalogHandler) DeleteEpisode(c *gin.Context) {
	showID := c.Param("public_id")

	if err := h.service.DeleteEpisode(c.Request.Context(), showID, c.Param("episode_id")); err != nil {
		view.Fail(c, h.renderer, err, view.PageEpisodeDetails, nil)
		return
	}

	view.Redirect(c, showURL(showID))
}
