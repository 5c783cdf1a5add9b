package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freelancehub/marketplace-system/internal/api/handler"
	"github.com/freelancehub/marketplace-system/internal/api/middleware"
	"github.com/freelancehub/marketplace-system/internal/api/routes"
	"github.com/freelancehub/marketplace-system/internal/core/auth"
	"github.com/freelancehub/marketplace-system/internal/core/ports"
	"github.com/freelancehub/marketplace-system/internal/core/service"
	mongorepo "github.com/freelancehub/marketplace-system/internal/infrastructure/db/mongo"
)

// RouterConfig carries everything NewRouter needs to assemble the API.
type RouterConfig struct {
	JWTSecret      string
	TokenTTL       time.Duration
	TokenClockSkew time.Duration

	DB      *mongo.Database
	Redis   *redis.Client
	Limiter ports.AttemptLimiter
	Queue   ports.NotificationQueue
	Logger  zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Access table ---
	// Everything is protected unless marked here. Endpoint marks override
	// group marks.
	table := routes.NewTable()
	table.MarkGroup("/auth", routes.Public)
	table.MarkGroup("/health", routes.Public)
	table.Mark(http.MethodGet, "/metrics", routes.Public)

	codec := auth.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL, cfg.TokenClockSkew)
	e.Use(middleware.Auth(codec, table, cfg.Logger))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(cfg.DB)
	projectRepo := mongorepo.NewProjectRepository(cfg.DB)
	messageRepo := mongorepo.NewMessageRepository(cfg.DB)
	bidRepo := mongorepo.NewBidRepository(cfg.DB)

	passwords := auth.NewPasswordVerifier(0)
	authService := service.NewAuthService(userRepo, passwords, codec, cfg.Logger)
	projectService := service.NewProjectService(projectRepo, cfg.Logger)
	messageService := service.NewMessageService(messageRepo, projectRepo, userRepo, cfg.Queue, cfg.Logger)
	bidService := service.NewBidService(bidRepo, projectRepo, cfg.Logger)

	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	messageHandler := handler.NewMessageHandler(messageService)
	bidHandler := handler.NewBidHandler(bidService)

	// --- Auth routes (rate limited before the gate sees them) ---
	authGroup := e.Group("/auth", middleware.RateLimit(cfg.Limiter, cfg.Logger))
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	// --- Projects ---
	e.POST("/projects", projectHandler.Create)
	e.GET("/projects", projectHandler.List)
	e.GET("/projects/:id", projectHandler.Get)
	e.PATCH("/projects/:id", projectHandler.Update)
	e.DELETE("/projects/:id", projectHandler.Delete)

	// --- Messages ---
	e.POST("/messages", messageHandler.Create)
	e.GET("/projects/:id/messages", messageHandler.ListByProject)
	e.GET("/messages/:id", messageHandler.Get)
	e.PATCH("/messages/:id", messageHandler.Update)
	e.DELETE("/messages/:id", messageHandler.Delete)

	// --- Bids ---
	e.POST("/bids", bidHandler.Create)
	e.GET("/projects/:id/bids", bidHandler.ListByProject)
	e.GET("/bids/:id", bidHandler.Get)
	e.PATCH("/bids/:id", bidHandler.Update)
	e.DELETE("/bids/:id", bidHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(cfg.DB, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
