// Package server wires configuration, storage, the app catalog, and the
// domain managers into the portal's HTTP surface.
package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/facgure/launchpad/internal/api/http"
	"github.com/facgure/launchpad/internal/api/middleware"
	"github.com/facgure/launchpad/internal/api/ws"
	"github.com/facgure/launchpad/internal/domain/catalog"
	"github.com/facgure/launchpad/internal/domain/events"
	"github.com/facgure/launchpad/internal/domain/prefs"
	"github.com/facgure/launchpad/internal/domain/session"
	"github.com/facgure/launchpad/internal/domain/workspace"
	"github.com/facgure/launchpad/internal/infrastructure/config"
	"github.com/facgure/launchpad/internal/infrastructure/logging"
	"github.com/facgure/launchpad/internal/infrastructure/monitoring"
	"github.com/facgure/launchpad/internal/infrastructure/storage"
)

// Server wraps the HTTP router and its dependencies
type Server struct {
	router     *gin.Engine
	sessions   *session.Manager
	workspaces *workspace.Manager
	catalog    *catalog.Registry
	simulator  *events.Simulator
	logger     *logging.Logger
	config     *config.Config
	metrics    *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize logger
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing Launchpad Server",
		zap.String("port", cfg.Server.Port),
		zap.String("data_dir", cfg.Storage.DataDir),
	)

	// Initialize metrics first (needed by other components)
	metrics := monitoring.NewMetrics()

	// Persistence backend
	store, err := storage.NewFSStore(cfg.Storage.DataDir)
	if err != nil {
		return nil, err
	}

	// App directory: embedded manifests plus operator-supplied extras
	registry, err := catalog.Load()
	if err != nil {
		return nil, err
	}
	if cfg.Catalog.ExtraManifestDir != "" {
		seeder := catalog.NewSeeder(registry, cfg.Catalog.ExtraManifestDir, logger.Logger)
		if err := seeder.Seed(); err != nil {
			return nil, err
		}
	}
	logger.Info("App directory loaded", zap.Int("apps", registry.Len()))

	// Credential table and verification chain
	users, err := session.NewUserStore(store)
	if err != nil {
		return nil, err
	}
	var verifier session.Verifier = session.NewStaticVerifier(users)
	if cfg.Auth.AllowDemoFallback {
		logger.Info("Demo credential fallback enabled",
			zap.Int("min_password_len", cfg.Auth.MinPasswordLen),
		)
		verifier = session.NewDemoVerifier(verifier, cfg.Auth.MinPasswordLen)
	}

	sessions := session.NewManager(verifier, users, session.Config{
		Secret:        []byte(cfg.Auth.Secret),
		TTL:           time.Duration(cfg.Auth.SessionTTLHours) * time.Hour,
		ProviderDelay: time.Duration(cfg.Auth.ProviderDelayMS) * time.Millisecond,
		DemoOTP:       cfg.Auth.DemoOTP,
	}).WithMetrics(metrics)

	workspaces := workspace.NewManager(registry, store).WithMetrics(metrics)
	preferences := prefs.NewManager(store)

	// Optional background event feed
	var simulator *events.Simulator
	if cfg.Events.SimulateEvents {
		simulator = events.NewSimulator(workspaces, logger.Logger)
		if err := simulator.Start(cfg.Events.Schedule); err != nil {
			return nil, err
		}
		logger.Info("Event simulator started", zap.String("schedule", cfg.Events.Schedule))
	}

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	// Create handlers
	handlers := apihttp.NewHandlers(sessions, workspaces, registry, preferences, logger)
	wsHandler := ws.NewHandler(logger).WithMetrics(metrics)

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Authentication
	auth := router.Group("/auth")
	{
		auth.POST("/login", handlers.Login)
		auth.POST("/login/google", handlers.LoginWithGoogle)
		auth.POST("/login/microsoft", handlers.LoginWithMicrosoft)
		auth.POST("/forgot-password", handlers.ForgotPassword)
		auth.POST("/verify-otp", handlers.VerifyOTP)
		auth.POST("/reset-password", handlers.ResetPassword)

		auth.POST("/logout", middleware.RequireSession(sessions), handlers.Logout)
		auth.GET("/me", middleware.RequireSession(sessions), handlers.Me)
	}

	// App directory (read-only, public)
	router.GET("/catalog/apps", handlers.ListApps)
	router.GET("/catalog/apps/:id", handlers.GetApp)

	// Per-user launchpad grid
	wsp := router.Group("/workspace", middleware.RequireSession(sessions))
	{
		wsp.GET("/apps", handlers.InstalledApps)
		wsp.GET("/available", handlers.AvailableApps)
		wsp.POST("/apps", handlers.InstallApp)
		wsp.DELETE("/apps/:id", handlers.UninstallApp)
		wsp.GET("/notifications", handlers.Notifications)
		wsp.DELETE("/notifications/:id", handlers.DismissNotification)
		wsp.DELETE("/notifications", handlers.ClearNotifications)
	}

	// Preferences
	pref := router.Group("/prefs", middleware.RequireSession(sessions))
	{
		pref.GET("/theme", handlers.Theme)
		pref.PUT("/theme", handlers.SetTheme)
		pref.DELETE("/theme", handlers.ResetTheme)
	}

	// Admin operations
	admin := router.Group("/admin", middleware.RequireSession(sessions), middleware.RequireAdmin())
	{
		admin.GET("/workspaces", handlers.ActiveWorkspaces)
	}

	// Assistant widget
	router.GET("/chat", wsHandler.HandleConnection)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:     router,
		sessions:   sessions,
		workspaces: workspaces,
		catalog:    registry,
		simulator:  simulator,
		logger:     logger,
		config:     cfg,
		metrics:    metrics,
	}, nil
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")
	if s.simulator != nil {
		s.simulator.Stop()
	}
	return s.logger.Sync()
}
