// Package web is the HTTP transport over the analysis and aggregation
// engine. It holds a read-only snapshot of the dataset and serves JSON;
// all computation happens in the analyzer and insights packages.
package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/analyzer"
	"github.com/jonathan-long-lin/prompt-analyzer/internal/domain"
	"github.com/jonathan-long-lin/prompt-analyzer/internal/insights"
	"github.com/jonathan-long-lin/prompt-analyzer/internal/telemetry"
)

type Server struct {
	addr     string
	router   *http.ServeMux
	analyzer *analyzer.Analyzer
	records  []domain.PromptRecord
	bands    []insights.QualityBand
	metrics  telemetry.Metrics
	logger   *slog.Logger
}

func NewServer(
	addr string,
	a *analyzer.Analyzer,
	records []domain.PromptRecord,
	bands []insights.QualityBand,
	metrics telemetry.Metrics,
	logger *slog.Logger,
) *Server {
	if metrics == nil {
		metrics = telemetry.NewNoOpMetrics()
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		addr:     addr,
		router:   http.NewServeMux(),
		analyzer: a,
		records:  records,
		bands:    bands,
		metrics:  metrics,
		logger:   logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Analysis
	s.router.HandleFunc("POST /api/analyze", s.handleAnalyze)

	// Analytics views
	s.router.HandleFunc("GET /api/analytics/overview", s.handleOverview)
	s.router.HandleFunc("GET /api/analytics/users", s.handleUsers)
	s.router.HandleFunc("GET /api/analytics/temporal", s.handleTemporal)
	s.router.HandleFunc("GET /api/analytics/models", s.handleModels)
	s.router.HandleFunc("GET /api/analytics/categories", s.handleCategories)
	s.router.HandleFunc("GET /api/analytics/quality", s.handleQuality)
}

// Handler returns the server's routing tree wrapped with middleware.
// Exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.withRequestLogging(s.router)
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting server", "addr", s.addr)

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(fmt.Sprintf("server shutdown error: %v", err))
		}
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil // Graceful shutdown
	}
	return err
}
