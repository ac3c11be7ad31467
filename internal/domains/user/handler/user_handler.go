package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sofa-backend/internal/domains/engagement"
	"sofa-backend/internal/domains/user"
	"sofa-backend/internal/infrastructure/metrics"
	"sofa-backend/internal/shared/apperr"
	"sofa-backend/internal/shared/session"
	"sofa-backend/internal/shared/view"
	"sofa-backend/pkg/logger"
)

type UserHandler struct {
	userService       user.Service
	engagementService engagement.Service
	sessions          *session.Manager
	renderer          view.Renderer
}

func NewUserHandler(
	userService user.Service,
	engagementService engagement.Service,
	sessions *session.Manager,
	renderer view.Renderer,
) *UserHandler {
	return &UserHandler{
		userService:       userService,
		engagementService: engagementService,
		sessions:          sessions,
		renderer:          renderer,
	}
}

func profileURL(username string) string {
	return "/users/" + username
}

// ========== REGISTER: GET|POST /register ==========
func (h *UserHandler) RegisterForm(c *gin.Context) {
	h.renderer.Render(c, http.StatusOK, view.PageRegister, view.Data{"form": user.RegisterRequest{}})
}

func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		view.Fail(c, h.renderer, apperr.Validation(err), view.PageRegister, view.Data{"form": req.Form()})
		return
	}

	if _, err := h.userService.Register(c.Request.Context(), req); err != nil {
		view.Fail(c, h.renderer, err, view.PageRegister, view.Data{"form": req.Form()})
		return
	}

	view.Redirect(c, "/login")
}

// ========== LOGIN: GET|POST /login ==========
func (h *UserHandler) LoginForm(c *gin.Context) {
	h.renderer.Render(c, http.StatusOK, view.PageLogin, view.Data{})
}

// Login: sai username hoặc password đều redirect về /login, không nói field nào sai.
// Session hiện tại giữ nguyên khi login thất bại.
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBind(&req); err != nil || req.Validate() != nil {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		view.Redirect(c, "/login")
		return
	}

	u, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrInvalidCredentials) {
			metrics.LoginAttempts.WithLabelValues("failure").Inc()
			logger.Warn("login failed", map[string]interface{}{
				"request_id": c.GetString("request_id"),
				"ip":         c.GetString("client_ip"),
			})
			view.Redirect(c, "/login")
			return
		}
		view.Fail(c, h.renderer, err, view.PageLogin, nil)
		return
	}

	if err := h.sessions.Establish(c, u.Username); err != nil {
		view.Fail(c, h.renderer, err, view.PageLogin, nil)
		return
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	view.Redirect(c, "/")
}

// ========== LOGOUT: GET /logout ==========
func (h *UserHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	view.Redirect(c, "/")
}

// ========== USERS: GET /users ==========
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		view.Fail(c, h.renderer, err, view.PageUsers, nil)
		return
	}

	profiles := make([]user.Profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].ToProfile())
	}

	h.renderer.Render(c, http.StatusOK, view.PageUsers, view.Data{"users": profiles})
}

// ========== PROFILE: GET /users/:username ==========
func (h *UserHandler) Profile(c *gin.Context) {
	ctx := c.Request.Context()
	username := c.Param("username")

	u, err := h.userService.GetByUsername(ctx, username)
	if err != nil {
		view.Fail(c, h.renderer, err, view.PageUserDetails, nil)
		return
	}

	favorites, err := h.engagementService.ListFavorites(ctx, u.ID)
	if err != nil {
		view.Fail(c, h.renderer, err, view.PageUserDetails, nil)
		return
	}

	watching, err := h.engagementService.ListWatching(ctx, u.ID)
	if err != nil {
		view.Fail(c, h.renderer, err, view.PageUserDetails, nil)
		return
	}

	h.renderer.Render(c, http.StatusOK, view.PageUserDetails, view.Data{
		"user":      u.ToProfile(),
		"favorites": favorites,
		"watching":  watching,
		"is_own":    session.FromContext(c).Is(u.Username),
	})
}

// ========== SETTINGS: GET /users/:username/settings ==========
// Chỉ chủ account xem được, người khác bị redirect về public profile.
func (h *UserHandler) Settings(c *gin.Context) {
	username := c.Param("username")

	if !session.FromContext(c).Is(username) {
		view.Redirect(c, profileURL(username))
		return
	}

	u, err := h.userService.GetByUsername(c.Request.Context(), username)
	if err != nil {
		view.Fail(c, h.renderer, err, view.PageUserSettings, nil)
		return
	}

	h.renderer.Render(c, http.StatusOK, view.PageUserSettings, view.Data{"user": u})
}
