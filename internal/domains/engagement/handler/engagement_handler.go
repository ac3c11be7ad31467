package handler

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"sofa-backend/internal/domains/catalog"
	"sofa-backend/internal/domains/engagement"
	"sofa-backend/internal/domains/user"
	"sofa-backend/internal/shared/session"
	"sofa-backend/internal/shared/view"
)

type EngagementHandler struct {
	service  engagement.Service
	catalog  catalog.Service
	users    user.Service
	renderer view.Renderer
}

func NewEngagementHandler(
	svc engagement.Service,
	catalogSvc catalog.Service,
	users user.Service,
	renderer view.Renderer,
) *EngagementHandler {
	return &EngagementHandler{
		service:  svc,
		catalog:  catalogSvc,
		users:    users,
		renderer: renderer,
	}
}

// GET /shows/:public_id/favorite
func (h *EngagementHandler) Favorite(c *gin.Context) {
	h.apply(c, engagement.ActionFavorite)
}

// GET /shows/:public_id/unfavorite
func (h *EngagementHandler) Unfavorite(c *gin.Context) {
	h.apply(c, engagement.ActionUnfavorite)
}

// GET /shows/:public_id/start
func (h *EngagementHandler) Start(c *gin.Context) {
	h.apply(c, engagement.ActionStart)
}

// GET /shows/:public_id/pause
func (h *EngagementHandler) Pause(c *gin.Context) {
	h.apply(c, engagement.ActionPause)
}

// GET /shows/:public_id/resume
func (h *EngagementHandler) Resume(c *gin.Context) {
	h.apply(c, engagement.ActionResume)
}

// GET /shows/:public_id/stop
func (h *EngagementHandler) Stop(c *gin.Context) {
	h.apply(c, engagement.ActionStop)
}

// apply resolve viewer + show, chạy action rồi redirect về trang show.
// Anonymous viewer: chỉ redirect, không đổi gì.
func (h *EngagementHandler) apply(c *gin.Context, action engagement.Action) {
	ctx := c.Request.Context()
	publicID := c.Param("public_id")
	target := "/shows/" + publicID

	viewer, err := user.Current(ctx, h.users, session.FromContext(c))
	if err != nil {
		view.Fail(c, h.renderer, err, view.PageShowDetails, nil)
		return
	}
	if viewer == nil {
		view.Redirect(c, target)
		return
	}

	show, err := h.catalog.GetShow(ctx, publicID)
	if err != nil {
		view.Fail(c, h.renderer, err, view.PageShowDetails, nil)
		return
	}

	if err := h.run(ctx, action, viewer.ID, show.ID); err != nil {
		view.Fail(c, h.renderer, err, view.PageShowDetails, nil)
		return
	}

	view.Redirect(c, target)
}

func (h *EngagementHandler) run(ctx context.Context, action engagement.Action, userID, showID int64) error {
	var err error
	switch action {
	case engagement.ActionFavorite:
		err = h.service.Favorite(ctx, userID, showID)
	case engagement.ActionUnfavorite:
		err = h.service.Unfavorite(ctx, userID, showID)
	case engagement.ActionStart:
		_, err = h.service.Start(ctx, userID, showID)
	case engagement.ActionPause:
		_, err = h.service.Pause(ctx, userID, showID)
	case engagement.ActionResume:
		_, err = h.service.Resume(ctx, userID, showID)
	case engagement.ActionStop:
		_, err = h.service.Stop(ctx, userID, showID)
	default:
		err = fmt.Errorf("unknown engagement action %q", action)
	}
	return err
}
