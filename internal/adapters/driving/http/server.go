package http

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/custodia-labs/insight-core/internal/core/ports/driving"
)

// Pinger is a simple health check interface
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	router     *http.ServeMux
	version    string

	// Limits
	maxBodyBytes int64

	// Services
	narrativeService driving.NarrativeService
	authService      driving.AuthService

	// Infrastructure
	db    Pinger // PostgreSQL archive health check (optional)
	cache Pinger // Redis cache health check (optional)

	authDisabled bool
	corsOrigins  []string
	logger       *slog.Logger
}

// Config holds server configuration
type Config struct {
	Host    string
	Port    int
	Version string

	// MaxBodyBytes caps request bodies; zero means DefaultMaxBodyBytes
	MaxBodyBytes int64

	// AuthDisabled skips token validation and treats every caller as a local admin.
	// Intended for development only.
	AuthDisabled bool

	// CORSOrigins lists allowed browser origins ("*" for any); empty disables CORS headers
	CORSOrigins []string

	Logger *slog.Logger
}

// DefaultMaxBodyBytes caps request bodies (2 MiB)
const DefaultMaxBodyBytes = 2 << 20

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Host:         "0.0.0.0",
		Port:         8080,
		Version:      "dev",
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

// NewServer creates a new HTTP server.
// db and cache may be nil when the archive or Redis are not configured.
func NewServer(
	cfg Config,
	narrativeService driving.NarrativeService,
	authService driving.AuthService,
	db Pinger,
	cache Pinger,
) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}

	s := &Server{
		router:           http.NewServeMux(),
		version:          cfg.Version,
		maxBodyBytes:     cfg.MaxBodyBytes,
		narrativeService: narrativeService,
		authService:      authService,
		db:               db,
		cache:            cache,
		authDisabled:     cfg.AuthDisabled,
		corsOrigins:      cfg.CORSOrigins,
		logger:           logger,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.setupRoutes()
	return s
}

// Handler returns the router wrapped in the global middleware chain
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.router
	h = NewCORSMiddleware(s.corsOrigins).Handler(h)
	h = NewLoggingMiddleware(s.logger).Handler(h)
	h = NewRecoveryMiddleware(s.logger).Handler(h)
	return h
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	authMiddleware := NewAuthMiddleware(s.authService, s.authDisabled)
	authed := func(h http.HandlerFunc) http.Handler {
		return authMiddleware.Authenticate(h)
	}
	admin := func(h http.HandlerFunc) http.Handler {
		return authMiddleware.Authenticate(authMiddleware.RequireAdmin(h))
	}

	// Health endpoints (no auth)
	s.router.HandleFunc("GET /health", s.handleHealth)
	s.router.HandleFunc("GET /ready", s.handleReady)
	s.router.HandleFunc("GET /version", s.handleVersion)

	// API description (no auth)
	s.router.HandleFunc("GET /swagger/doc.json", s.handleSwaggerDoc)
	s.router.HandleFunc("GET /api/v1/schema/annotation", s.handleAnnotationSchema)

	// Annotation endpoints (authenticated)
	s.router.Handle("POST /api/v1/annotate", authed(s.handleAnnotate))
	s.router.Handle("POST /api/v1/sections", authed(s.handleSplitSections))
	s.router.Handle("POST /api/v1/direct-answer", authed(s.handleDirectAnswer))
	s.router.Handle("POST /api/v1/timeline", authed(s.handleTimeline))
	s.router.Handle("POST /api/v1/lines/decompose", authed(s.handleDecomposeLine))
	s.router.Handle("POST /api/v1/tokens/classify", authed(s.handleClassifyTokens))
	s.router.Handle("POST /api/v1/citations/present", authed(s.handlePresentCitations))
	s.router.Handle("POST /api/v1/evidence/timeline", authed(s.handleEvidenceTimeline))

	// Narrative archive (authenticated, deletion admin-only)
	s.router.Handle("POST /api/v1/narratives", authed(s.handleArchiveNarrative))
	s.router.Handle("GET /api/v1/narratives", authed(s.handleListNarratives))
	s.router.Handle("GET /api/v1/narratives/{id}", authed(s.handleGetNarrative))
	s.router.Handle("DELETE /api/v1/narratives/{id}", admin(s.handleDeleteNarrative))
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
