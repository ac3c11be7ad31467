package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sofa-backend/internal/shared/middleware"
	"sofa-backend/internal/shared/view"
	"sofa-backend/pkg/container"
)

func SetupRouter(c *container.Container) (*gin.Engine, error) {
	router := gin.New()

	// Mặc định gin tin mọi proxy, phải set rõ để X-Forwarded-For không bị giả mạo
	if err := router.SetTrustedProxies(c.Config.App.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.Logger(),
		middleware.Metrics(),
		middleware.Session(c.Sessions),
	)

	router.NoRoute(func(ctx *gin.Context) {
		view.NotFound(ctx, c.Renderer)
	})

	// Ops
	router.GET("/health", healthCheckHandler(c))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/", c.CatalogHandler.Home)

	setupShowRoutes(router, c)
	setupUserRoutes(router, c)
	setupAuthRoutes(router, c)
	setupSearchRoutes(router, c)

	return router, nil
}

func setupShowRoutes(r *gin.Engine, c *container.Container) {
	h := c.CatalogHandler
	e := c.EngagementHandler

	shows := r.Group("/shows")
	{
		shows.GET("", h.ListShows)
		shows.GET("/add", h.AddShowForm)
		shows.POST("/add", h.AddShow)

		show := shows.Group("/:public_id")
		{
			show.GET("", h.ShowDetails)
			show.GET("/edit", h.EditShowForm)
			show.POST("/edit", h.EditShow)
			show.GET("/delete", h.DeleteShow)

			// Engagement: luôn redirect về trang show
			show.GET("/favorite", e.Favorite)
			show.GET("/unfavorite", e.Unfavorite)
			show.GET("/start", e.Start)
			show.GET("/pause", e.Pause)
			show.GET("/resume", e.Resume)
			show.GET("/stop", e.Stop)

			show.GET("/episodes/add", h.AddEpisodeForm)
			show.POST("/episodes/add", h.AddEpisode)
			show.GET("/episodes/:episode_id", h.EpisodeDetails)
			show.GET("/episodes/:episode_id/edit", h.EditEpisodeForm)
			show.POST("/episodes/:episode_id/edit", h.EditEpisode)
			show.GET("/episodes/:episode_id/delete", h.DeleteEpisode)
		}
	}
}

func setupUserRoutes(r *gin.Engine, c *container.Container) {
	h := c.UserHandler

	users := r.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.GET("/:username", h.Profile)
		users.GET("/:username/settings", h.Settings)
	}
}

func setupAuthRoutes(r *gin.Engine, c *container.Container) {
	h := c.UserHandler

	r.GET("/login", h.LoginForm)
	r.POST("/login", middleware.LoginRateLimit(c.LoginLimits, c.Renderer), h.Login)
	r.GET("/logout", h.Logout)
	r.GET("/register", h.RegisterForm)
	r.POST("/register", h.Register)
}

func setupSearchRoutes(r *gin.Engine, c *container.Container) {
	h := c.SearchHandler

	r.GET("/search", h.Redirect)
	r.POST("/search", h.Search)
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "ok"
		if err := appCtx.DB.Ping(ctx); err != nil {
			dbStatus = "error: " + err.Error()
			health["status"] = "degraded"
		}
		if stats, err := appCtx.DB.Stats(); err == nil {
			health["pool"] = stats
		}

		cacheStatus := "ok"
		if err := appCtx.Cache.Ping(ctx); err != nil {
			cacheStatus = "error: " + err.Error()
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"cache":    cacheStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
