// Package server exposes the allometry tool surface over HTTP.
//
// Endpoints:
//
//	POST /tool    execute a tool call
//	GET  /schema  tool schema for agent registration
//	GET  /health  liveness check
//	GET  /metrics Prometheus metrics
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/njchilds90/allometry"
	"github.com/njchilds90/allometry/internal/config"
)

const requestIDHeader = "X-Request-ID"

// Server serves tool calls against a frozen registry.
type Server struct {
	registry *allometry.Registry
	logger   *zap.Logger
	metrics  *metrics
	gatherer prometheus.Gatherer
	maxBody  int64
}

// New builds a server with its own metrics registry. The registry must be
// frozen; handlers read it concurrently.
func New(reg *allometry.Registry, logger *zap.Logger, maxBodyBytes int64) (*Server, error) {
	if !reg.Frozen() {
		return nil, errors.New("server: registry must be frozen before serving")
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = 1 << 20
	}
	promReg := prometheus.NewRegistry()
	promReg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Server{
		registry: reg,
		logger:   logger,
		metrics:  newMetrics(promReg),
		gatherer: promReg,
		maxBody:  maxBodyBytes,
	}, nil
}

// Handler returns the routed, instrumented handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/tool", s.handleTool)
	mux.HandleFunc("/schema", s.handleSchema)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return s.withRequestLog(mux)
}

// Run listens on cfg.Addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, cfg config.ServerConfig) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Addr, err)
	}
	return s.Serve(ctx, ln, cfg)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within cfg.ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener, cfg config.ServerConfig) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: config.GetDuration(cfg.ReadHeaderTimeout, 5*time.Second),
		ReadTimeout:       config.GetDuration(cfg.ReadTimeout, 15*time.Second),
		WriteTimeout:      config.GetDuration(cfg.WriteTimeout, 15*time.Second),
		IdleTimeout:       config.GetDuration(cfg.IdleTimeout, 60*time.Second),
	}

	s.logger.Info("allometry server listening", zap.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.ShutdownTimeout, 10*time.Second))
	defer cancel()
	s.logger.Info("allometry server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ============================================================
// Handlers
// ============================================================

func (s *Server) handleTool(w http.ResponseWriter, r *http.Request) {
	id := w.Header().Get(requestIDHeader)
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("tool call panicked",
				zap.Any("panic", rec),
				zap.ByteString("stack", debug.Stack()),
				zap.String("request_id", id))
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, err := s.decodeToolRequest(w, r)
	if err != nil {
		s.metrics.decodeErrors.Inc()
		writeJSON(w, http.StatusBadRequest, allometry.ToolResponse{Error: err.Error(), Kind: "request"})
		return
	}

	start := time.Now()
	resp := s.registry.HandleToolCall(req)
	s.metrics.observe(req.Tool, resp.Kind, time.Since(start))

	if resp.Error != "" {
		s.logger.Debug("tool call failed",
			zap.String("tool", req.Tool),
			zap.String("kind", resp.Kind),
			zap.String("error", resp.Error),
			zap.String("request_id", id))
	}
	writeJSON(w, http.StatusOK, resp)
}

// decodeToolRequest reads exactly one JSON ToolRequest of at most maxBody
// bytes with no unknown fields.
func (s *Server) decodeToolRequest(w http.ResponseWriter, r *http.Request) (allometry.ToolRequest, error) {
	var req allometry.ToolRequest
	body := http.MaxBytesReader(w, r.Body, s.maxBody)
	defer body.Close()

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit)
		}
		return req, fmt.Errorf("invalid tool request: %w", err)
	}
	if dec.More() {
		return req, errors.New("invalid tool request: trailing data after JSON object")
	}
	return req, nil
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, allometry.ToolSpec())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"species": len(s.registry.Codes()),
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ============================================================
// Request logging
// ============================================================

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		s.metrics.requests.WithLabelValues(routeLabel(r.URL.Path), fmt.Sprint(rec.status)).Inc()
		s.logger.Info("request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

func routeLabel(path string) string {
	switch path {
	case "/tool", "/schema", "/health", "/metrics":
		return path
	}
	return "other"
}
