// Package webview serves the dashboard view models as JSON for a local browser front end.
package webview

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Veraticus/wardrobe/internal/model"
	"github.com/Veraticus/wardrobe/internal/viewmodel"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Controller is the part of page.Controller the web view drives.
type Controller interface {
	Refresh(ctx context.Context) error
	GenerateRecommendations(ctx context.Context) ([]model.RecommendationResult, error)
	Dashboard(group string) viewmodel.Dashboard
}

// NewRouter constructs the gin engine with middleware and routes registered.
func NewRouter(ctrl Controller, logger *slog.Logger) *gin.Engine {
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(
		RequestID(),
		Logging(logger),
		Recovery(logger),
	)

	h := &handlers{controller: ctrl, logger: logger}

	r.GET("/healthz", h.health)

	view := r.Group("/view")
	view.GET("/dashboard", h.dashboard)
	view.GET("/tips", h.tips)
	view.GET("/recommendations", h.recommendations)

	actions := r.Group("/actions")
	actions.POST("/refresh", h.refresh)
	actions.POST("/recommendations", h.generate)

	return r
}

// Server runs the web view until its context ends.
type Server struct {
	handler   http.Handler
	logger    *slog.Logger
	tlsConfig *tls.Config
	addr      string
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithTLS serves HTTPS with cfg instead of plain HTTP.
func WithTLS(cfg *tls.Config) ServerOption {
	return func(s *Server) {
		s.tlsConfig = cfg
	}
}

// NewServer creates a server listening on addr.
func NewServer(addr string, ctrl Controller, logger *slog.Logger, opts ...ServerOption) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		addr:    addr,
		handler: NewRouter(ctrl, logger),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		TLSConfig:         s.tlsConfig,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("web view listening", "addr", s.addr, "tls", s.tlsConfig != nil)
		if s.tlsConfig != nil {
			errCh <- srv.ListenAndServeTLS("", "")
			return
		}
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve web view: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down web view: %w", err)
	}
	s.logger.Info("web view stopped")
	return nil
}
