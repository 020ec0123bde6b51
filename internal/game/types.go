// internal/game/types.go
//
// Core type definitions for the Mastermind game engine.
// Defines:
//   - Rules:    code length and inclusive digit range.
//   - Code:     an ordered digit sequence (secret or guess).
//   - Feedback: exact/partial match counts for one guess.
//   - Session:  local-mode state for a single game.

package game

import (
	"strconv"
	"strings"
)

// Rules describes the shape of a valid code.
type Rules struct {
	Length int // Number of digits per code (classic: 4).
	Min    int // Smallest allowed digit, inclusive.
	Max    int // Largest allowed digit, inclusive.
}

// DefaultRules is the classic 4-digit, 1..6 game.
var DefaultRules = Rules{Length: 4, Min: 1, Max: 6}

// InRange reports whether d is an allowed digit.
func (r Rules) InRange(d int) bool { return d >= r.Min && d <= r.Max }

// Code is an ordered sequence of digits.
type Code []int

// String renders the code as a compact digit string ("1234").
func (c Code) String() string {
	var b strings.Builder
	for _, d := range c {
		b.WriteString(strconv.Itoa(d))
	}
	return b.String()
}

// Equal reports whether two codes hold the same digits in the same order.
func (c Code) Equal(o Code) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}
	return true
}

// Feedback is the result of scoring a guess.
//   - Exact:   digit correct in value and position ("B", black peg).
//   - Partial: digit correct in value, wrong position ("W", white peg).
type Feedback struct {
	Exact   int
	Partial int
}

// String renders the feedback as pegs, exact first: "BBW".
func (f Feedback) String() string {
	return strings.Repeat("B", f.Exact) + strings.Repeat("W", f.Partial)
}

// Won reports whether every position matched.
func (f Feedback) Won(length int) bool { return f.Exact == length }

// Session holds the state of a single local game.
type Session struct {
	secret   Code // Hidden code, immutable after creation.
	rules    Rules
	attempts int // Accepted guesses so far; only ever increases.
}
