// apps/go-server/internal/httpserver/server.go
//
// HTTP server wiring for the hangman backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health".
//   - Game endpoints: POST /games, GET /games/{id}, POST /games/{id}/guesses.
//   - History endpoints: GET /stats, GET /history.
//   - Debug counters: /debug/words, /debug/games.
//
// Notes:
//   - Games live in the injected store; finished games are handed to the
//     history recorder on a best-effort basis.
//   - Errors are JSON bodies of the form {"error":"<code>"}.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/apps/go-server/internal/game"
	"github.com/robalobadob/hangman/apps/go-server/internal/history"
	"github.com/robalobadob/hangman/apps/go-server/internal/store"
)

// Options tunes the server; zero values fall back to defaults.
type Options struct {
	ClientOrigin   string        // CORS origin, default http://localhost:5173
	RequestTimeout time.Duration // per-request bound, default 10s
	WordCount      int           // reported by /debug/words
	Logger         *zerolog.Logger
}

// Server bundles router, game store, and history recorder.
type Server struct {
	r     *chi.Mux
	store store.Store
	rec   history.Recorder
	opts  Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, rec history.Recorder, opts Options) *Server {
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = &log.Logger
	}
	s := &Server{r: chi.NewRouter(), store: st, rec: rec, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                    // add X-Request-ID
	s.r.Use(chimw.RealIP)                       // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(*opts.Logger))      // request-scoped logger
	s.r.Use(hlog.AccessHandler(accessLog))      // one line per request
	s.r.Use(chimw.Recoverer)                    // recover from panics
	s.r.Use(chimw.Timeout(opts.RequestTimeout)) // bound handler time
	s.r.Use(jsonContentType)                    // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))            // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"hangman-go","endpoints":["/health","POST /games","GET /games/{id}","POST /games/{id}/guesses","/stats","/history"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Route("/games", func(r chi.Router) {
		r.Post("/", s.handleNewGame)
		r.Get("/{id}", s.handleGetGame)
		r.Post("/{id}/guesses", s.handleGuess)
	})

	s.r.Get("/stats", s.handleStats)
	s.r.Get("/history", s.handleHistory)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"words": s.opts.WordCount})
	})
	s.r.Get("/debug/games", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"games": s.store.Len()})
	})

	return s
}

// Handler exposes the router as an http.Handler.
func (s *Server) Handler() http.Handler { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func accessLog(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Str("request_id", chimw.GetReqID(r.Context())).
		Msg("request")
}

// ------------------------------ GAME ---------------------------------------

type newGameRes struct {
	ID string `json:"id"`
}

// handleNewGame creates a game with a word from the configured supplier.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	id := s.store.Create(r.Context())
	hlog.FromRequest(r).Debug().Str("gameId", id).Msg("game created")
	w.Header().Set("Location", "/games/"+id)
	writeJSON(w, http.StatusCreated, newGameRes{ID: id})
}

// handleGetGame returns the current snapshot without mutating the game.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, g.Snapshot())
}

// maxGuessBody bounds the guess payload; a single letter needs a few bytes.
const maxGuessBody = 1 << 10

// guessReq is the POST /games/{id}/guesses payload. Letter is required.
type guessReq struct {
	Letter *string `json:"letter"`
}

// handleGuess applies one letter and, when the game ends, records the result.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	g, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}

	var req guessReq
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxGuessBody))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	// exactly one JSON object, nothing after it
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Letter == nil {
		writeError(w, http.StatusBadRequest, "missing_letter")
		return
	}

	snap, err := g.ApplyGuess(*req.Letter)
	switch {
	case errors.Is(err, game.ErrInvalidGuess):
		writeError(w, http.StatusBadRequest, "invalid_guess")
		return
	case errors.Is(err, game.ErrDuplicateGuess):
		writeError(w, http.StatusConflict, "duplicate_guess")
		return
	case errors.Is(err, game.ErrGameOver):
		writeError(w, http.StatusConflict, "game_over")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "guess_failed")
		return
	}

	if snap.Status != game.StatusInProgress {
		hlog.FromRequest(r).Info().Str("gameId", g.ID).Str("status", string(snap.Status)).Msg("game finished")
		res := history.Result{
			GameID:            g.ID,
			Word:              g.Word,
			Status:            string(snap.Status),
			IncorrectGuesses:  snap.IncorrectGuesses,
			RemainingAttempts: snap.RemainingAttempts,
		}
		// Best effort, the game itself is already settled. Detached from the
		// request so a disconnect or timeout cannot drop the only chance to record.
		if err := s.rec.Record(context.WithoutCancel(r.Context()), res); err != nil {
			hlog.FromRequest(r).Warn().Err(err).Str("gameId", g.ID).Msg("record finished game")
		}
	}

	writeJSON(w, http.StatusOK, snap)
}

// ----------------------------- HISTORY -------------------------------------

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.rec.Stats(r.Context())
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("load stats")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// handleHistory returns recently finished games (?limit=n, default 20).
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid_limit")
			return
		}
		limit = n
	}
	rows, err := s.rec.Recent(r.Context(), limit)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("load history")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"games": rows})
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
