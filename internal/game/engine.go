// internal/game/engine.go
//
// Core game engine for a single Mastermind session.
// Responsibilities:
//   - Score guesses with the two-pass exact/partial algorithm.
//   - Track the attempt counter of a local session.
//
// Notes:
//   - Guesses are validated by the guess package before they get here.
//   - Win and attempt-limit detection belong to the command loop.
package game

import "fmt"

// NewSession starts a local game around secret.
// The secret is copied so later changes by the caller cannot leak in.
func NewSession(secret Code, rules Rules) *Session {
	s := make(Code, len(secret))
	copy(s, secret)
	return &Session{secret: s, rules: rules}
}

// Submit records one attempt and scores guess against the secret.
func (s *Session) Submit(guess Code) Feedback {
	s.attempts++
	return Score(guess, s.secret)
}

// Attempts reports how many guesses have been submitted.
func (s *Session) Attempts() int { return s.attempts }

// Rules returns the rules the session was created with.
func (s *Session) Rules() Rules { return s.rules }

// Secret returns a copy of the hidden code.
func (s *Session) Secret() Code {
	out := make(Code, len(s.secret))
	copy(out, s.secret)
	return out
}

// Score implements the two-pass Mastermind scoring algorithm.
//
// Pass 1:
//   - Count positions where guess and secret agree as exact.
//   - Collect the remaining secret and guess digits in order.
//
// Pass 2:
//   - Build a frequency table over the unused secret digits.
//   - For each unused guess digit with remaining count, add a partial and
//     consume one.
//
// Lengths must match; a mismatch is a caller bug and panics.
func Score(guess, secret Code) Feedback {
	if len(guess) != len(secret) {
		panic(fmt.Sprintf("game: score length mismatch: guess %d, secret %d", len(guess), len(secret)))
	}

	var fb Feedback
	unusedSecret := make([]int, 0, len(secret))
	unusedGuess := make([]int, 0, len(guess))

	// First pass: exact matches.
	for i := range guess {
		if guess[i] == secret[i] {
			fb.Exact++
			continue
		}
		unusedSecret = append(unusedSecret, secret[i])
		unusedGuess = append(unusedGuess, guess[i])
	}

	counts := make(map[int]int, len(unusedSecret))
	for _, d := range unusedSecret {
		counts[d]++
	}

	// Second pass: each secret digit may satisfy at most one guess digit.
	for _, d := range unusedGuess {
		if counts[d] > 0 {
			fb.Partial++
			counts[d]--
		}
	}
	return fb
}
