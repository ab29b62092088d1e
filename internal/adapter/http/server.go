// Package http serves the embedded single-page frontend, the JSON view API,
// and the health/readiness/metrics endpoints.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/coastal-vuln-viewer/internal/observability"
	"github.com/couchcryptid/coastal-vuln-viewer/internal/store"
	"github.com/couchcryptid/coastal-vuln-viewer/internal/viewer"
)

// EventPublisher publishes selection events to the analytics stream. A nil
// publisher disables publishing.
type EventPublisher interface {
	Publish(ctx context.Context, event viewer.Event) error
}

// Server exposes the viewer frontend and API.
type Server struct {
	httpServer *http.Server
	dataset    *store.Dataset
	session    *viewer.Session
	publisher  EventPublisher
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer wires the routes: the embedded static frontend at /, the view
// API under /api/, and the health/metrics endpoints.
func NewServer(addr string, ds *store.Dataset, session *viewer.Session, publisher EventPublisher,
	staticFS fs.FS, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      withLogging(withRecovery(mux, logger), logger),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		dataset:   ds,
		session:   session,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}

	mux.HandleFunc("GET /api/landmarks", s.handleLandmarks)
	mux.HandleFunc("GET /api/view", s.handleView)
	mux.HandleFunc("POST /api/select", s.handleSelect)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ds))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /", http.FileServerFS(staticFS))

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// viewResponse bundles everything the frontend needs for one render cycle.
type viewResponse struct {
	Selection string               `json:"selection"`
	Map       viewer.MapView       `json:"map"`
	Panel     viewer.PanelView     `json:"panel"`
	Legend    []viewer.LegendEntry `json:"legend"`
}

func (s *Server) handleLandmarks(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"landmarks": s.dataset.Names()})
}

// handleView renders the full view for a selection. The selection comes from
// the ?selected query parameter when present, otherwise from the session.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	selection := s.session.Selection()
	if q := r.URL.Query(); q.Has("selected") {
		selection = q.Get("selected")
	}
	s.renderView(w, selection)
}

// handleSelect updates the session selection and responds with the view for
// the new state. An empty name clears the selection.
func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	changed, err := s.session.Select(req.Name)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if changed {
		s.metrics.SelectionChanges.Inc()
		s.publishSelection(r.Context(), req.Name)
	}

	s.renderView(w, s.session.Selection())
}

// renderView builds the map and panel for the given selection and writes the
// combined response. Render is a pure function of (dataset, selection).
func (s *Server) renderView(w http.ResponseWriter, selection string) {
	start := time.Now()

	mapView, err := viewer.BuildMapView(s.dataset, selection)
	if err != nil {
		s.renderError(w, selection, err)
		return
	}
	s.metrics.ViewRenders.WithLabelValues("map").Inc()

	panelView, err := viewer.BuildPanelView(s.dataset, selection)
	if err != nil {
		s.renderError(w, selection, err)
		return
	}
	s.metrics.ViewRenders.WithLabelValues("panel").Inc()

	s.metrics.RenderDuration.Observe(time.Since(start).Seconds())
	writeJSON(w, http.StatusOK, viewResponse{
		Selection: selection,
		Map:       mapView,
		Panel:     panelView,
		Legend:    viewer.Legend(),
	})
}

func (s *Server) renderError(w http.ResponseWriter, selection string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	s.logger.Error("render failed", "selection", selection, "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "render failed"})
}

// publishSelection sends the selection event when a publisher is configured.
// Publishing is best-effort; a failure never fails the render.
func (s *Server) publishSelection(ctx context.Context, name string) {
	if s.publisher == nil {
		return
	}

	event := viewer.NewSelectionEvent(s.session.ID(), nil)
	if name != "" {
		l, err := s.dataset.Landmark(name)
		if err != nil {
			s.logger.Error("selection event lookup failed", "landmark", name, "error", err)
			return
		}
		event = viewer.NewSelectionEvent(s.session.ID(), &l)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.publisher.Publish(pubCtx, event); err != nil {
		s.metrics.EventPublishErrors.Inc()
		s.logger.Warn("selection event publish failed", "landmark", name, "error", err)
		return
	}
	s.metrics.EventsPublished.Inc()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func withLogging(next http.Handler, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start).Round(time.Millisecond))
	})
}

func withRecovery(next http.Handler, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic", "path", r.URL.Path, "error", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response body
}
