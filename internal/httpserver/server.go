// internal/httpserver/server.go
//
// Read-only HTTP surface for the score leaderboard.
// Responsibilities:
//   - Router + middleware (panic recovery, timeouts, request IDs).
//   - GET /health: liveness probe.
//   - GET /scores: top-K leaderboard as JSON, ?limit= up to a cap.
//
// The server exposes no write operations and no auth: scores are only
// ever written by a local game session.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/popguess/internal/scores"
)

const maxLimit = 50

// Leaderboard is the slice of the score store the server needs.
type Leaderboard interface {
	Top(ctx context.Context, k int) ([]scores.Entry, error)
}

// Server bundles the router and the leaderboard source.
type Server struct {
	r            *chi.Mux
	board        Leaderboard
	defaultLimit int
}

// New constructs a Server, installs middleware, and registers routes.
func New(board Leaderboard, defaultLimit int) *Server {
	if defaultLimit <= 0 {
		defaultLimit = 5
	}
	s := &Server{r: chi.NewRouter(), board: board, defaultLimit: defaultLimit}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))

	s.r.Get("/health", s.handleHealth)
	s.r.Get("/scores", s.handleScores)
	return s
}

// Start blocks serving HTTP on addr.
func (s *Server) Start(addr string) error {
	log.Info().Str("addr", addr).Msg("leaderboard server listening")
	return http.ListenAndServe(addr, s.r)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.r }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	limit := s.defaultLimit
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	top, err := s.board.Top(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("leaderboard query failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "score storage unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"scores": top})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
