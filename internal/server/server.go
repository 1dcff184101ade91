// Package server exposes packs over an HTTP API.
//
// The API stores pack snapshots in a [store.Store] backend and runs queries
// and removals against them:
//
//	GET    /healthz            liveness probe
//	GET    /packs              list stored pack IDs
//	GET    /packs/{id}         fetch a pack snapshot
//	PUT    /packs/{id}         store a pack snapshot
//	DELETE /packs/{id}         delete a pack
//	POST   /packs/{id}/query   run has/find/parents against a pack
//	POST   /packs/{id}/remove  remove matching items and persist the rest
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	kserr "github.com/matzehuels/knapsack/pkg/errors"
	"github.com/matzehuels/knapsack/pkg/store"
)

// Server serves the pack API backed by a snapshot store.
type Server struct {
	store  store.Store
	logger *log.Logger
}

// New creates a server backed by st. A nil logger falls back to the default.
func New(st store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{store: st, logger: logger}
}

// Router builds the chi router with all API routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/packs", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Put("/", s.handlePut)
			r.Delete("/", s.handleDelete)
			r.Post("/query", s.handleQuery)
			r.Post("/remove", s.handleRemove)
		})
	})

	return r
}

// ListenAndServe runs the API on addr until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Infof("Listening on %s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		s.logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// logRequests logs each request with its status and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debugf("%s %s %d (%s)", r.Method, r.URL.Path, ww.Status(), time.Since(start).Round(time.Millisecond))
	})
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the JSON shape of all error responses.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps an error to an HTTP status and a structured body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := kserr.GetCode(err)
	if errors.Is(err, store.ErrNotFound) {
		code = kserr.ErrCodePackNotFound
	}
	if code == "" {
		code = kserr.ErrCodeInternal
	}

	status := statusForCode(code)
	if status >= http.StatusInternalServerError {
		s.logger.Errorf("Request failed: %v", err)
	}
	writeJSON(w, status, errorBody{Code: string(code), Message: kserr.UserMessage(err)})
}

// statusForCode maps error codes to HTTP status codes.
func statusForCode(code kserr.Code) int {
	switch code {
	case kserr.ErrCodeInvalidManifest, kserr.ErrCodeInvalidQuery,
		kserr.ErrCodeInvalidFormat, kserr.ErrCodeInvalidPath,
		kserr.ErrCodeUnsupported:
		return http.StatusBadRequest
	case kserr.ErrCodeNotFound, kserr.ErrCodeItemNotFound, kserr.ErrCodePackNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
