package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/api/mcpserver"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/api/middleware"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/fetch"
	httpapi "github.com/GriffinCanCode/AgentOS/toolbox/internal/http"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/infrastructure/config"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/providers/api"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/providers/data"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/providers/scraper"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/service"
)

// Version is reported by / and announced to MCP clients
const Version = "1.0.0"

// ShutdownTimeout bounds graceful shutdown
const ShutdownTimeout = 10 * time.Second

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// NewRegistry builds a registry with every provider registered, sharing one
// fetch client. metrics may be nil.
func NewRegistry(cfg *config.Config, logger *logging.Logger, metrics *monitoring.Metrics) (*service.Registry, error) {
	fetchOpts := fetch.Options{
		Timeout:      cfg.Fetch.Timeout.Std(),
		UserAgent:    cfg.Fetch.UserAgent,
		MaxBodyBytes: cfg.Fetch.MaxBodyBytes,
	}
	if metrics != nil {
		fetchOpts.Observe = metrics.RecordFetch
	}
	client := fetch.NewClient(fetchOpts)

	registry := service.NewRegistry(
		service.WithLogger(logger),
		service.WithMetrics(metrics),
	)

	providers := []service.Provider{
		scraper.NewProvider(client, cfg.Search.Endpoint),
		data.NewProvider(),
		api.NewProvider(client, api.Endpoints{
			Weather: cfg.API.WeatherEndpoint,
			News:    cfg.API.NewsEndpoint,
			Crypto:  cfg.API.CryptoEndpoint,
			IPInfo:  cfg.API.IPInfoEndpoint,
		}),
	}
	for _, p := range providers {
		if err := registry.Register(p); err != nil {
			return nil, fmt.Errorf("failed to register %s provider: %w", p.Definition().ID, err)
		}
	}

	return registry, nil
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger.Info("Initializing toolbox server",
		zap.String("addr", cfg.Server.Addr()),
		zap.Bool("mcp", cfg.MCP.Enabled),
		zap.Bool("metrics", cfg.Metrics.Enabled),
	)

	var metrics *monitoring.Metrics
	if cfg.Metrics.Enabled {
		metrics = monitoring.NewMetrics()
	}

	registry, err := NewRegistry(cfg, logger, metrics)
	if err != nil {
		return nil, err
	}

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(logger))
	if metrics != nil {
		router.Use(monitoring.Middleware(metrics))
	}
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	handlers := httpapi.NewHandlers(registry, Version)

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Service management
	router.GET("/services", handlers.ListServices)
	router.GET("/tools", handlers.ListTools)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	if cfg.MCP.Enabled {
		mcpHandler := gin.WrapH(mcpserver.NewServer(registry, Version).Handler())
		router.Any(cfg.MCP.Path, mcpHandler)
		logger.Info("MCP endpoint mounted", zap.String("path", cfg.MCP.Path))
	}

	logger.Info("Server initialized successfully", zap.Int("tools", len(registry.Tools())))

	return &Server{
		router:   router,
		registry: registry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Handler returns the router
func (s *Server) Handler() http.Handler {
	return s.router
}

// Registry returns the service registry
func (s *Server) Registry() *service.Registry {
	return s.registry
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	addr := s.config.Server.Addr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}

// Close flushes the logger
func (s *Server) Close() error {
	_ = s.logger.Sync()
	return nil
}
