package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sweetcrumb/menu-system/internal/api/handler"
	"github.com/sweetcrumb/menu-system/internal/api/middleware"
	"github.com/sweetcrumb/menu-system/internal/core/domain"
	"github.com/sweetcrumb/menu-system/internal/core/ports"
	"github.com/sweetcrumb/menu-system/internal/core/service"
	mongodb "github.com/sweetcrumb/menu-system/internal/infrastructure/db/mongo"
	redisdb "github.com/sweetcrumb/menu-system/internal/infrastructure/db/redis"
	"github.com/sweetcrumb/menu-system/pkg/logger"
)

// RouterConfig carries everything the router needs to assemble the service.
type RouterConfig struct {
	Mongo      *mongo.Database
	Redis      *redis.Client
	Images     ports.ImageStore
	JWTSecret  string
	UploadDir  string // non-empty enables static /uploads serving (disk storage variant)
	RateLimit  int
	RateWindow time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("menu"))

	limiter := redisdb.NewRateLimiter(cfg.Redis, cfg.RateLimit, cfg.RateWindow)
	e.Use(middleware.RateLimit(limiter, log))

	// --- Dependencies ---
	menuRepo := mongodb.NewMenuRepository(cfg.Mongo)
	menuService := service.NewMenuService(menuRepo, cfg.Images, log)
	menuHandler := handler.NewMenuHandler(menuService)

	authRepo := mongodb.NewAuthRepository(cfg.Mongo)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret)
	authHandler := handler.NewAuthHandler(authService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Menu routes ---
	menu := e.Group("/api/menu")
	menu.POST("", menuHandler.Create)
	menu.GET("", menuHandler.List)
	menu.PUT("/:id", menuHandler.Update)
	menu.PATCH("/:id/stock", menuHandler.UpdateStock)
	menu.DELETE("/:id", menuHandler.Delete)

	// --- User routes ---
	users := e.Group("/api/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.GET("/profile", authHandler.Profile, authMiddleware)
	users.GET("", authHandler.ListUsers, authMiddleware, adminOnly)

	// Alias kept for older admin console builds.
	e.GET("/api/admin/users", authHandler.ListUsers, authMiddleware, adminOnly)

	// --- Disk storage variant: serve uploaded images ---
	if cfg.UploadDir != "" {
		e.Static("/uploads", cfg.UploadDir)
	}

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.Mongo, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
