// Package server exposes the picking session over HTTP: an embedded
// single-page dashboard plus a JSON API mirroring the session's inbound
// events. The session itself is single-threaded; the server serialises
// all access with a mutex.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/go-hclog"

	"github.com/ahuang11/colordropper/internal/session"
)

// Server hosts the dashboard for a single picking session.
type Server struct {
	logger hclog.Logger
	sess   *session.Session
	mu     sync.Mutex

	router *chi.Mux
	http   *http.Server
}

// New creates a Server around an existing session.
func New(logger hclog.Logger, sess *session.Session) *Server {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	s := &Server{
		logger: logger,
		sess:   sess,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleIndex)
	r.Get("/image.png", s.handleImage)
	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Post("/image", s.handleLoadImage)
		r.Post("/click", s.handleClick)
		r.Post("/add", s.handleAdd)
		r.Post("/remove", s.handleRemove)
		r.Post("/undo", s.handleUndo)
		r.Post("/clear", s.handleClear)
		r.Post("/text", s.handleText)
		r.Post("/config", s.handleConfig)
		r.Post("/pixelate", s.handlePixelate)
		r.Post("/suggest", s.handleSuggest)
	})
	s.router = r

	return s
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins serving on addr and blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.logger.Info("dashboard listening", "addr", addr)
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	s.logger.Info("shutting down dashboard")
	return s.http.Shutdown(ctx)
}

// requestLogger logs each request at debug level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
