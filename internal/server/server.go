// Package server exposes the catalog and progress store over HTTP,
// for the browser front end that will eventually replace the TUI as
// the primary surface.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nandinis/edudeck/internal/catalog"
	"github.com/nandinis/edudeck/internal/store"
)

// Server wires the HTTP API over the catalog and store.
type Server struct {
	cat *catalog.Service
	st  *store.Store
}

// New creates a Server.
func New(cat *catalog.Service, st *store.Store) *Server {
	return &Server{cat: cat, st: st}
}

// Handler builds the routed handler with logging, panic recovery, and
// permissive CORS for local front-end development.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/games", s.handleGames)
		r.Get("/games/featured", s.handleFeatured)
		r.Get("/games/{id}", s.handleGame)
		r.Post("/games/{id}/play", s.handlePlay)
		r.Get("/progress/{gameID}", s.handleProgress)
		r.Get("/sessions", s.handleSessions)
	})

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	case err := <-errc:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGames lists games; ?q= searches, ?category= filters.
func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var (
		games []catalog.Game
		err   error
	)
	switch {
	case r.URL.Query().Get("q") != "":
		games, err = s.cat.Search(ctx, r.URL.Query().Get("q"))
	case r.URL.Query().Get("category") != "":
		games, err = s.cat.ByCategory(ctx, r.URL.Query().Get("category"))
	default:
		games, err = s.cat.All(ctx)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, games)
}

func (s *Server) handleFeatured(w http.ResponseWriter, r *http.Request) {
	games, err := s.cat.Featured(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, games)
}

func (s *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	game, err := s.cat.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	game, err := s.cat.IncrementPlayCount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	p, err := s.st.ProgressRepo().Load(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	recs, err := s.st.EventRepo().RecentSessions(r.Context(), 20)
	if err != nil {
		writeError(w, err)
		return
	}
	if recs == nil {
		recs = []store.SessionRecord{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, catalog.ErrNotFound) {
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
