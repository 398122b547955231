package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/loom-ui/loom/pkg/dom"
)

// Server serves a Loom app over HTTP: the initial page render on "/"
// and the live patch session on "/ws".
type Server struct {
	cfg      *Config
	newApp   func() App
	logger   *slog.Logger
	metrics  *metrics
	tracer   trace.Tracer
	upgrader websocket.Upgrader
	router   chi.Router

	nextSessionID atomic.Uint64
	httpServer    *http.Server
}

// New creates a server. newApp is called once per session so every
// client gets its own app state.
func New(newApp func() App, cfg *Config) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.normalize()

	s := &Server{
		cfg:     cfg,
		newApp:  newApp,
		logger:  cfg.Logger.With("component", "server"),
		metrics: newMetrics(cfg.Registry),
		tracer:  otel.Tracer("loom"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     cfg.CheckOrigin,
		},
	}
	s.router = s.routes()
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWebSocket)
	r.Get("/healthz", s.handleHealthz)

	if gatherer, ok := s.cfg.Registry.(prometheus.Gatherer); ok {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// handleIndex renders the current view of a fresh app instance as a
// plain HTML page. The page carries no client script; interactive
// clients open their own session on /ws.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	view := s.newApp()()
	live := dom.Renderer{}.CreateNode(view).(*dom.Node)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<!DOCTYPE html>\n<html><head><title>loom</title></head><body>%s</body></html>\n",
		dom.RenderHTML(live))
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handleWebSocket upgrades the connection and runs the session's read
// loop until the client goes away.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	id := s.nextSessionID.Add(1)
	sess := newSession(id, s.newApp(), conn, s.cfg, s.metrics, s.tracer)

	s.metrics.activeSessions.Inc()
	defer s.metrics.activeSessions.Dec()

	s.logger.Info("session started", "session_id", id, "remote", r.RemoteAddr)
	sess.readLoop(r.Context())
	s.logger.Info("session closed", "session_id", id)
}

// ListenAndServe runs the server until ctx is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
