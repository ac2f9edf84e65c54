// Package server exposes display item lists over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	storeerrors "github.com/lepinkainen/storeview/internal/errors"
	"github.com/lepinkainen/storeview/internal/metrics"
	"github.com/lepinkainen/storeview/internal/service"
	"github.com/lepinkainen/storeview/internal/storeapi"
)

const (
	requestTimeout  = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

// AppLoader loads the display list for one app.
type AppLoader interface {
	Load(ctx context.Context, appID int) (*service.Result, error)
}

// Server serves the item list API.
type Server struct {
	loader AppLoader
	router chi.Router
}

type errorResponse struct {
	Error string `json:"error"`
}

// New creates a Server backed by loader.
func New(loader AppLoader) *Server {
	s := &Server{loader: loader}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metrics.InstrumentHandler)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/api/apps/{appID}/items", s.handleItems)

	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      requestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "appID")
	appID, err := strconv.Atoi(raw)
	if err != nil || appID <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorMessage})
		return
	}

	result, err := s.loader.Load(r.Context(), appID)
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Error: errorMessage})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// errorMessage is the only failure detail sent to clients; the cause is logged.
const errorMessage = "Unable to load store app"

func statusFor(err error) int {
	switch {
	case errors.Is(err, storeapi.ErrInvalidAppID):
		return http.StatusBadRequest
	case storeerrors.IsNotSuccessfulError(err):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		slog.Warn("Failed to write response", "error", err)
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		slog.Debug("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
