// Package api hosts the HTTP surface: thin gin handlers wiring the external
// collaborators to the pure analytics core.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/selivandex/team-pulse/internal/adapters/config"
	"github.com/selivandex/team-pulse/pkg/logger"
)

// HealthCheck probes one dependency
type HealthCheck func() error

// Server is the HTTP API server
type Server struct {
	router    *gin.Engine
	srv       *http.Server
	checks    map[string]HealthCheck
	startTime time.Time
}

// NewServer creates new API server
func NewServer(cfg *config.ServerConfig, checks map[string]HealthCheck) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &Server{
		router:    router,
		srv:       srv,
		checks:    checks,
		startTime: time.Now(),
	}
}

// SetupRoutes registers all routes
func (s *Server) SetupRoutes(h *Handlers) {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/ready", s.handleReadiness)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/analytics", h.Analytics)
		v1.POST("/sentiment", h.Sentiment)
		v1.POST("/recommendations", h.Recommendations)
	}
}

// Start runs the server until the listener fails or Shutdown is called
func (s *Server) Start() error {
	logger.Info("api server starting", zap.String("addr", s.srv.Addr))

	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("stopping api server...")
	return s.srv.Shutdown(ctx)
}

// handleHealth is the liveness probe: 200 as long as the process is up
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(s.startTime).Round(time.Second).String(),
	})
}

// handleReadiness is the readiness probe: 200 only when dependencies answer
func (s *Server) handleReadiness(c *gin.Context) {
	results := make(map[string]string, len(s.checks))
	ready := true

	for name, check := range s.checks {
		if err := check(); err != nil {
			results[name] = "unhealthy: " + err.Error()
			ready = false
		} else {
			results[name] = "healthy"
		}
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"ready":     ready,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    results,
	})
}

// requestLogger logs one line per request through the shared zap logger
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
