// Package gateway exposes the roster, digest composer, and mail delivery
// over a small HTTP JSON API for local UI shells.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/beofficial/commandcenter/internal/config"
	"github.com/beofficial/commandcenter/internal/export"
	"github.com/beofficial/commandcenter/internal/logging"
	"github.com/beofficial/commandcenter/internal/mail"
	"github.com/beofficial/commandcenter/internal/roster"
	"github.com/beofficial/commandcenter/internal/version"
)

// Server is the command center HTTP server. It shares one roster store
// across all handlers; the store's own locking keeps field writes atomic.
type Server struct {
	cfg     config.Config
	log     *logging.Logger
	store   *roster.Store
	mailer  *mail.Mailer
	encoder *export.Encoder
	version string

	startedAt  time.Time
	httpServer *http.Server
}

// New creates a server around the given roster store and mailer.
func New(cfg config.Config, store *roster.Store, mailer *mail.Mailer, log *logging.Logger) *Server {
	return &Server{
		cfg:     cfg,
		log:     log.Sub("gateway"),
		store:   store,
		mailer:  mailer,
		encoder: export.NewEncoder(),
		version: version.Version,
	}
}

// registerRoutes sets up all HTTP routes on the server mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/agents", s.handleAgentList)
	mux.HandleFunc("GET /api/agents/{codename}", s.handleAgentGet)
	mux.HandleFunc("PATCH /api/agents/{codename}", s.handleAgentUpdate)
	mux.HandleFunc("GET /api/export", s.handleExport)
	mux.HandleFunc("POST /api/digest/preview", s.handleDigestPreview)
	mux.HandleFunc("POST /api/digest/send", s.handleDigestSend)

	// Catch-all for unknown routes
	mux.HandleFunc("/", handleNotFound)
}

// resolveBindAddr computes the listen address from config.
func resolveBindAddr(cfg config.ServerConfig) string {
	switch cfg.Bind {
	case "lan":
		return fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	case "custom":
		host := cfg.CustomBindHost
		if host == "" {
			host = "0.0.0.0"
		}
		return fmt.Sprintf("%s:%d", host, cfg.Port)
	default:
		return fmt.Sprintf("127.0.0.1:%d", cfg.Port)
	}
}

// Start begins listening for HTTP connections. It blocks until the context
// is cancelled or an error occurs.
func (s *Server) Start(ctx context.Context) error {
	addr := resolveBindAddr(s.cfg.Server)

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	handler := withMiddleware(mux, s.log, s.cfg.Server.AllowedOrigins)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		BaseContext:  func(l net.Listener) context.Context { return ctx },
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.startedAt = time.Now()

	s.log.Info().
		Str("addr", ln.Addr().String()).
		Str("bind", s.cfg.Server.Bind).
		Int("agents", s.store.Len()).
		Msg("command center server ready")

	// Shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		s.log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx)
	}()

	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Addr returns the server's listen address, or empty string if not started.
func (s *Server) Addr() string {
	if s.httpServer != nil {
		return s.httpServer.Addr
	}
	return ""
}
