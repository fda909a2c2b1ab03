package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/pathlab/metrics"
	"github.com/katalvlaran/pathlab/report"
)

// Server wires the handlers to their collaborators.
type Server struct {
	cfg      Config
	log      *slog.Logger
	csv      *report.CSVLog
	registry *prometheus.Registry
	metrics  *metrics.Recorder

	rngMu sync.Mutex
	rng   *rand.Rand
}

// New builds a Server with its own Prometheus registry. A nil logger uses
// slog.Default().
func New(cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &Server{
		cfg:      cfg,
		log:      logger,
		csv:      report.NewCSVLog(cfg.CSVPath()),
		registry: reg,
		metrics:  metrics.NewRecorder(reg),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Config returns the effective configuration.
func (s *Server) Config() Config { return s.cfg }

// Handler returns the routed, logged and CORS-wrapped API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /generate", s.handleGenerate)
	mux.HandleFunc("POST /solve", s.handleSolve)
	mux.HandleFunc("POST /compare", s.handleCompare)
	mux.HandleFunc("GET /download-csv", s.handleDownloadCSV)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return requestLogger(s.log, cors(s.cfg.AllowOrigin, mux))
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.cfg.Addr, "csv", s.csv.Path(), "version", s.cfg.Version)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}

	return nil
}

// seed returns a fresh seed for a generated maze.
func (s *Server) seed() int64 {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()

	return s.rng.Int63()
}
