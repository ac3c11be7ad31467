package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"sofa-backend/internal/config"
	infraCache "sofa-backend/internal/infrastructure/cache"
	"sofa-backend/internal/infrastructure/database"
	"sofa-backend/internal/shared/middleware"
	"sofa-backend/internal/shared/session"
	"sofa-backend/internal/shared/view"
	"sofa-backend/pkg/cache"
	"sofa-backend/pkg/jwt"

	"sofa-backend/internal/domains/catalog"
	catalogHandler "sofa-backend/internal/domains/catalog/handler"
	catalogRepo "sofa-backend/internal/domains/catalog/repository"
	catalogService "sofa-backend/internal/domains/catalog/service"

	"sofa-backend/internal/domains/user"
	userHandler "sofa-backend/internal/domains/user/handler"
	userRepo "sofa-backend/internal/domains/user/repository"
	userService "sofa-backend/internal/domains/user/service"

	"sofa-backend/internal/domains/engagement"
	engagementHandler "sofa-backend/internal/domains/engagement/handler"
	engagementRepo "sofa-backend/internal/domains/engagement/repository"
	engagementService "sofa-backend/internal/domains/engagement/service"

	"sofa-backend/internal/domains/search"
	searchHandler "sofa-backend/internal/domains/search/handler"
	searchService "sofa-backend/internal/domains/search/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa tất cả dependencies của application.
// Lifecycle: singleton, build một lần lúc startup.
type Container struct {
	// INFRASTRUCTURE
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	JWTManager  *jwt.Manager
	Sessions    *session.Manager
	Renderer    view.Renderer
	LoginLimits *middleware.RateLimiter

	// REPOSITORIES
	CatalogRepo    catalog.Repository
	UserRepo       user.Repository
	EngagementRepo engagement.Repository

	// SERVICES
	CatalogService    catalog.Service
	UserService       user.Service
	EngagementService engagement.Service
	SearchService     search.Service

	// HANDLERS
	CatalogHandler    *catalogHandler.CatalogHandler
	UserHandler       *userHandler.UserHandler
	EngagementHandler *engagementHandler.EngagementHandler
	SearchHandler     *searchHandler.SearchHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

func NewContainer() (*Container, error) {
	log.Info().Msg("🔧 Initializing DI Container...")

	c := &Container{}

	// 1. CONFIG
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("✅ Config loaded")

	// 2. DATABASE
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	if cfg.App.AutoMigrate {
		if err := database.Migrate(ctx, db.Pool); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// 3. CACHE
	c.Cache = newCache(ctx, cfg)

	// 4. SESSION + RENDERING
	c.JWTManager = jwt.NewManager(cfg.Session.Secret, cfg.Session.TTL)
	c.Sessions = session.NewManager(c.JWTManager, cfg.Session.CookieName, cfg.Session.CookieSecure)
	c.Renderer = view.NewJSONRenderer()
	c.LoginLimits = middleware.NewRateLimiter(cfg.RateLimit.LoginAttempts, cfg.RateLimit.LoginWindow)
	c.LoginLimits.StartCleanup(10 * time.Minute)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("🎉 DI Container initialized successfully")
	return c, nil
}

// newCache chọn implementation theo CACHE_DRIVER.
// Redis không kết nối được thì fallback sang in-process cache.
func newCache(ctx context.Context, cfg *config.Config) cache.Cache {
	memory := func() cache.Cache {
		return infraCache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	}

	if cfg.Cache.Driver == "memory" {
		log.Info().Msg("✅ Using in-process cache")
		return memory()
	}

	rc := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := rc.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("⚠️  Redis connection failed, falling back to in-process cache")
		_ = rc.Close()
		return memory()
	}

	log.Info().Str("host", cfg.Redis.Host).Msg("✅ Redis connected")
	return rc
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.CatalogRepo = catalogRepo.NewPostgresRepository(pool, c.Cache, c.Config.Cache.TTL)
	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.EngagementRepo = engagementRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.CatalogService = catalogService.NewCatalogService(c.CatalogRepo)
	c.UserService = userService.NewUserService(c.UserRepo, c.Config.Security.BcryptCost)
	c.EngagementService = engagementService.NewEngagementService(c.EngagementRepo, c.CatalogService)
	c.SearchService = searchService.NewSearchService(c.CatalogService, c.UserService)
}

func (c *Container) initHandlers() {
	c.CatalogHandler = catalogHandler.NewCatalogHandler(c.CatalogService, c.UserService, c.EngagementService, c.Renderer)
	c.UserHandler = userHandler.NewUserHandler(c.UserService, c.EngagementService, c.Sessions, c.Renderer)
	c.EngagementHandler = engagementHandler.NewEngagementHandler(c.EngagementService, c.CatalogService, c.UserService, c.Renderer)
	c.SearchHandler = searchHandler.NewSearchHandler(c.SearchService, c.Renderer)
}

// ========================================
// CLEANUP
// ========================================

func (c *Container) Cleanup() {
	log.Info().Msg("🧹 Cleaning up container resources...")

	if c.LoginLimits != nil {
		c.LoginLimits.Stop()
	}

	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Warn().Err(err).Msg("⚠️  Failed to close cache")
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	log.Info().Msg("✅ Container cleanup completed")
}
