package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ridwanfathin/invoice-dashboard/internal/config"
	"github.com/ridwanfathin/invoice-dashboard/internal/handler"
	"github.com/ridwanfathin/invoice-dashboard/internal/metrics"
	"github.com/ridwanfathin/invoice-dashboard/internal/middleware"
	"github.com/ridwanfathin/invoice-dashboard/internal/model"
	"github.com/ridwanfathin/invoice-dashboard/internal/service"
	"github.com/ridwanfathin/invoice-dashboard/internal/ui"
)

// Pinger reports whether the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server represents the HTTP server for the invoice dashboard
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     *config.Config
	logger     zerolog.Logger
	db         Pinger
	metrics    *metrics.Metrics
}

// NewServer creates and configures a new server instance
func NewServer(cfg *config.Config, logger zerolog.Logger, db Pinger, invoices service.InvoiceService) (*Server, error) {
	tmpl, err := ui.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	var m *metrics.Metrics
	if cfg.EnableMetrics {
		m = metrics.New()
		router.Use(m.Middleware())
	}

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestResponseLogger(logger))
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(middleware.ErrorBoundary(logger))

	server := &Server{
		router:  router,
		config:  cfg,
		logger:  logger,
		db:      db,
		metrics: m,
		httpServer: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}

	server.setupRoutes()
	handler.NewDashboardHandler(invoices, m, logger).RegisterRoutes(router)
	handler.NewInvoiceHandler(invoices, m, logger).RegisterRoutes(router)

	return server, nil
}

// GetRouter returns the gin router instance
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// setupRoutes configures the operational routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.health)

	// API documentation endpoints
	// Access the Swagger UI at http://localhost:8080/api-docs/index.html
	swaggerHandler := ginSwagger.WrapHandler(swaggerFiles.Handler)
	s.router.GET("/api-docs/*any", swaggerHandler)

	s.router.GET("/api-docs", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/api-docs/index.html")
	})

	if s.metrics != nil {
		s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}
}

// health handles the GET /health endpoint
// @Summary Health check
// @Description Reports service and database status
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse "Service healthy"
// @Failure 503 {object} model.HealthResponse "Database unreachable"
// @Router /health [get]
func (s *Server) health(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, model.HealthResponse{Status: "ok", Database: "not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("database ping failed")
		c.JSON(http.StatusServiceUnavailable, model.HealthResponse{Status: "degraded", Database: "unreachable"})
		return
	}

	c.JSON(http.StatusOK, model.HealthResponse{Status: "ok", Database: "ok"})
}

// Start begins listening for requests and handles graceful shutdown
func (s *Server) Start() error {
	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.httpServer.Addr).Msg("server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}
	s.logger.Info().Msg("shutting down server")

	if err := s.Shutdown(); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.logger.Info().Msg("server exited gracefully")
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}
