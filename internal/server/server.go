// Package server assembles the HTTP server: routes, middleware and the
// service graph behind them.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pantrycook/pantrycook/backend/config"
	"github.com/pantrycook/pantrycook/backend/internal/api"
	"github.com/pantrycook/pantrycook/backend/internal/database"
	"github.com/pantrycook/pantrycook/backend/internal/middleware"
	"github.com/pantrycook/pantrycook/backend/internal/service"
	"github.com/pantrycook/pantrycook/backend/internal/store"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
	redis  *redis.Client
	logger *zap.Logger
}

// NewServer wires the store, services, handlers and middleware into a gin
// engine. images may be nil when S3 is not configured.
func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, images *service.ImageService, logger *zap.Logger) *Server {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	recipeStore := store.New(db)
	recipeService := service.NewRecipeService(recipeStore, cfg.MatchPoolSize)
	authService := service.NewAuthService(cfg.JWTSecret, cfg.AdminPasswordHash)

	recipeHandler := api.NewRecipeHandler(recipeService, images, logger)
	authHandler := api.NewAuthHandler(authService)

	v1 := router.Group("/api/v1")
	if redisClient != nil {
		limiter := middleware.NewSearchRateLimiter(redisClient, cfg.SearchRateLimit, cfg.SearchRateWindow)
		v1.Use(limiter.RateLimitMiddleware())
	}

	recipeHandler.RegisterRoutes(v1, middleware.AuthMiddleware(authService))
	authHandler.RegisterRoutes(v1)

	srv := &Server{
		router: router,
		db:     db,
		redis:  redisClient,
		logger: logger,
	}
	router.GET("/health", srv.health)

	srv.http = &http.Server{
		Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
		Handler: router,
	}
	return srv
}

// Start runs the server until it is shut down.
func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{"database": "ok", "redis": "ok"}

	if err := database.HealthCheck(ctx, s.db); err != nil {
		checks["database"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			checks["redis"] = err.Error()
			status = http.StatusServiceUnavailable
		}
	} else {
		checks["redis"] = "not configured"
	}

	c.JSON(status, checks)
}
