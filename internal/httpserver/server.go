// internal/httpserver/server.go
//
// HTTP server wiring for the Mastermind companion server.
// Responsibilities:
//   - Router + middleware (JSON, request IDs, timeouts, panic recovery, request logs).
//   - Public endpoints: "/", "/health".
//   - Game endpoints (API key when configured): POST /game, POST /guess, DELETE /game/{id}.
//
// Notes:
//   - The API key is accepted either as "Authorization: Bearer <key>" or "X-API-Key".
//   - Guesses must be Length distinct digits within the rules' range.
//   - Games live in the Store only; there is no on-disk persistence.

package httpserver

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/guess"
	"github.com/robalobadob/mastermind/internal/secret"
	"github.com/robalobadob/mastermind/internal/store"
)

// Options tune game creation and access control.
type Options struct {
	APIKey      string           // Empty disables the key check.
	Rules       game.Rules       // Zero value means game.DefaultRules.
	MaxAttempts int              // Per-game cap; <= 0 is unlimited.
	Generator   secret.Generator // Nil means system entropy.
}

// Server bundles router, game store and options.
type Server struct {
	r     *chi.Mux
	store store.Store
	opts  Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, opts Options) *Server {
	if opts.Rules == (game.Rules{}) {
		opts.Rules = game.DefaultRules
	}
	if opts.Generator == nil {
		opts.Generator = secret.System()
	}
	s := &Server{r: chi.NewRouter(), store: st, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // one log line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"mastermind","endpoints":["/health","POST /game","POST /guess","DELETE /game/{id}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Game endpoints
	s.r.Group(func(r chi.Router) {
		r.Use(s.requireAPIKey)
		r.Post("/game", s.handleNewGame)
		r.Post("/guess", s.handleGuess)
		r.Delete("/game/{id}", s.handleDeleteGame)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Info().
			Str("reqId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("dur", time.Since(start)).
			Msg("http")
	})
}

// requireAPIKey enforces the shared key when one is configured.
func (s *Server) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.opts.APIKey == "" {
			next.ServeHTTP(w, r)
			return
		}
		got := r.Header.Get("X-API-Key")
		if a := r.Header.Get("Authorization"); got == "" && strings.HasPrefix(strings.ToLower(a), "bearer ") {
			got = strings.TrimSpace(a[7:])
		}
		if subtle.ConstantTimeCompare([]byte(got), []byte(s.opts.APIKey)) != 1 {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameRes is the POST /game reply. Both id spellings are sent for older clients.
type newGameRes struct {
	GameID string `json:"game_id"`
	ID     string `json:"id"`
}

// handleNewGame creates a new in-memory game with a fresh secret.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	g := game.NewHosted(id, s.opts.Generator.Generate(s.opts.Rules), s.opts.Rules, s.opts.MaxAttempts)
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "save_failed"})
		return
	}
	log.Debug().Str("gameId", id).Msg("game created")
	writeJSON(w, http.StatusCreated, newGameRes{GameID: id, ID: id})
}

// guessReq accepts every id spelling the clients send.
type guessReq struct {
	Guess   string `json:"guess"`
	SnakeID string `json:"game_id"`
	CamelID string `json:"gameId"`
	UpperID string `json:"gameID"`
}

func (q guessReq) id() string {
	for _, v := range []string{q.SnakeID, q.CamelID, q.UpperID} {
		if v != "" {
			return v
		}
	}
	return ""
}

type guessRes struct {
	Black    int    `json:"black"`
	White    int    `json:"white"`
	Result   string `json:"result"`
	Status   string `json:"status"` // "playing" | "won" | "lost"
	Attempts int    `json:"attempts"`
}

// handleGuess validates and scores a guess against a stored game.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_json"})
		return
	}
	g, err := s.store.Get(r.Context(), req.id())
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "invalid game"})
		return
	}

	code, err := guess.Parse(req.Guess, g.Rules())
	if err == nil {
		err = guess.Distinct(code)
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	fb, state, attempts, err := g.Apply(code)
	if errors.Is(err, game.ErrFinished) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error(), "status": state})
		return
	}
	writeJSON(w, http.StatusOK, guessRes{
		Black:    fb.Exact,
		White:    fb.Partial,
		Result:   fb.String(),
		Status:   state,
		Attempts: attempts,
	})
}

// handleDeleteGame drops a game from the store.
func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "invalid game"})
			return
		}
		log.Error().Err(err).Str("gameId", id).Msg("delete game")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "delete_failed"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ------------------------------- small util --------------------------------

// writeJSON encodes v with status code.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
