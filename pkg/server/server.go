// Package server provides the HTTP server for the string analyzer.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Toluwaa-o/string-analyzer/pkg/api/handlers"
	"github.com/Toluwaa-o/string-analyzer/pkg/api/middleware"
	"github.com/Toluwaa-o/string-analyzer/pkg/config"
	"github.com/Toluwaa-o/string-analyzer/pkg/store"
	"github.com/Toluwaa-o/string-analyzer/pkg/telemetry/metrics"
)

// Server is the HTTP server serving the string analysis API.
type Server struct {
	config       *config.Config
	store        *store.Store
	collector    *metrics.Collector
	httpServer   *http.Server
	shutdownChan chan struct{}
	stopOnce     sync.Once
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// NewServer creates a server over the given store. The collector may be
// nil when metrics are disabled.
func NewServer(cfg *config.Config, s *store.Store, collector *metrics.Collector) *Server {
	return &Server{
		config:       cfg,
		store:        s,
		collector:    collector,
		shutdownChan: make(chan struct{}),
	}
}

// Start starts the HTTP server and blocks until shutdown.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	handler := s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:           s.config.Server.ListenAddress,
		Handler:        handler,
		ReadTimeout:    s.config.Server.ReadTimeout,
		WriteTimeout:   s.config.Server.WriteTimeout,
		IdleTimeout:    s.config.Server.IdleTimeout,
		MaxHeaderBytes: s.config.Server.MaxHeaderBytes,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting server", "address", s.config.Server.ListenAddress)

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		slog.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		slog.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	case <-s.shutdownChan:
		slog.Info("shutdown requested")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server, waiting for in-flight
// requests up to the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		slog.Info("initiating graceful shutdown",
			"timeout", s.config.Server.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				slog.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		slog.Info("server stopped")
	})

	return shutdownErr
}

// Stop requests a shutdown from another goroutine.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		close(s.shutdownChan)
	})
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Handler returns the configured HTTP handler, routes plus middleware.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}

// setupRoutes configures HTTP routes and the middleware chain.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	var analysisMetrics *metrics.AnalysisMetrics
	if s.collector != nil {
		analysisMetrics = s.collector.Analysis()
	}
	stringsHandler := handlers.NewStringsHandler(s.store, analysisMetrics,
		s.config.Analysis.MaxValueBytes)

	// The literal filter-by-natural-language segment takes precedence
	// over the {value} wildcard per ServeMux specificity rules.
	mux.HandleFunc("POST /strings", stringsHandler.Create)
	mux.HandleFunc("GET /strings", stringsHandler.List)
	mux.HandleFunc("GET /strings/filter-by-natural-language", stringsHandler.Query)
	mux.HandleFunc("GET /strings/{value}", stringsHandler.Get)
	mux.HandleFunc("DELETE /strings/{value}", stringsHandler.Delete)

	mux.Handle("GET /health", handlers.NewHealthHandler())
	mux.Handle("GET /ready", handlers.NewReadyHandler(s.store))

	if s.collector != nil {
		mux.Handle("GET "+s.config.Telemetry.Metrics.Path, s.collector.Handler())
	}

	// Middleware chain, applied innermost first so Recovery ends up
	// outermost.
	var handler http.Handler = mux

	handler = middleware.Timeout(s.config.Server.WriteTimeout)(handler)
	handler = middleware.CORS(s.config.Server.CORS)(handler)
	if s.collector != nil {
		handler = middleware.Metrics(s.collector.Request())(handler)
	}
	handler = middleware.Logging(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(handler)

	return handler
}
