package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voicemap/internal/api/errors"
	"voicemap/internal/api/middleware"
	"voicemap/internal/api/routes"
	"voicemap/internal/config"
)

// multipartOverhead is the slack allowed above the upload limit for form boundaries and headers
const multipartOverhead = 1 << 20

// Server represents the API server
type Server struct {
	config     *config.Config
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
	errCh      chan error
}

// NewServer creates a new API server
func NewServer(cfg *config.Config, container *routes.ServiceContainer, logger *zap.Logger) *Server {
	// Set Gin mode based on environment
	switch {
	case cfg.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	case cfg.Environment == "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes()
	router.HandleMethodNotAllowed = true

	// Apply global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics(container.Metrics))
	router.Use(middleware.StructuredLogging(logger))
	router.Use(middleware.ErrorHandler(logger, errors.NewStatusMapper(cfg.LanguageErrorStatus)))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	router.Use(middleware.BodyLimit(cfg.MaxUploadBytes() + multipartOverhead))

	routes.RegisterRoutes(router, container)

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  2 * time.Minute,
	}

	return &Server{
		config:     cfg,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
		errCh:      make(chan error, 1),
	}
}

// Start binds the listen address and serves in the background.
// Serve failures after a successful bind are reported on Errors.
func (s *Server) Start() error {
	s.logger.Info("Starting API server",
		zap.String("address", s.httpServer.Addr),
		zap.String("environment", s.config.Environment),
	)

	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Server stopped unexpectedly", zap.Error(err))
			s.errCh <- err
		}
		close(s.errCh)
	}()

	s.logger.Info("API server started successfully", zap.String("address", listener.Addr().String()))
	return nil
}

// Errors delivers a serve failure, if any. It is closed when serving stops.
func (s *Server) Errors() <-chan error {
	return s.errCh
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("API server shutdown complete")
	return nil
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
