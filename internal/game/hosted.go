// internal/game/hosted.go
//
// Hosted is a server-side game: a Session plus the bookkeeping a server
// needs to answer clients (identifier, attempt cap, terminal flags).
//
// State transitions:
//   - exact == Length                → Finished, Won
//   - attempts reach MaxAttempts > 0 → Finished (loss)
package game

import (
	"errors"
	"sync"
)

// ErrFinished is returned when a guess arrives after the game ended.
var ErrFinished = errors.New("game finished")

// Game states as reported to clients.
const (
	StatePlaying = "playing"
	StateWon     = "won"
	StateLost    = "lost"
)

// Hosted holds one server-side game.
type Hosted struct {
	ID          string
	MaxAttempts int // <= 0 means unlimited.

	mu       sync.Mutex
	session  *Session
	finished bool
	won      bool
}

// NewHosted wraps a secret in a server-side game.
func NewHosted(id string, secret Code, rules Rules, maxAttempts int) *Hosted {
	return &Hosted{ID: id, MaxAttempts: maxAttempts, session: NewSession(secret, rules)}
}

// Apply scores a validated guess and advances the game state.
// Returns the feedback, the new state, and the attempt count.
func (h *Hosted) Apply(g Code) (Feedback, string, int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.finished {
		return Feedback{}, h.state(), h.session.Attempts(), ErrFinished
	}
	fb := h.session.Submit(g)
	if fb.Won(h.session.Rules().Length) {
		h.finished, h.won = true, true
	} else if h.MaxAttempts > 0 && h.session.Attempts() >= h.MaxAttempts {
		h.finished = true
	}
	return fb, h.state(), h.session.Attempts(), nil
}

// Rules returns the game's rules.
func (h *Hosted) Rules() Rules { return h.session.Rules() }

// State reports "playing", "won" or "lost".
func (h *Hosted) State() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state()
}

func (h *Hosted) state() string {
	if h.finished {
		if h.won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}
