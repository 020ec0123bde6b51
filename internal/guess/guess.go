// internal/guess/guess.go
//
// Normalizes and validates raw guess text.
// Validation runs in a fixed order:
//   1. whitespace stripped, then empty / wrong length  → ErrInvalidLength
//   2. any non-decimal-digit character                 → ErrInvalidCharacters
//   3. any digit outside the rules' range              → ErrOutOfRange
//
// Distinct is a separate check used only when playing against a server.
package guess

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/robalobadob/mastermind/internal/game"
)

var (
	ErrInvalidLength     = errors.New("invalid length")
	ErrInvalidCharacters = errors.New("invalid characters")
	ErrOutOfRange        = errors.New("digit out of range")
	ErrRepeatedDigit     = errors.New("repeated digit")
)

// Parse turns user input like "1234" or "1 2 3 4" into a Code.
func Parse(raw string, rules game.Rules) (game.Code, error) {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	chars := []rune(s)
	if len(chars) == 0 {
		return nil, fmt.Errorf("%w: enter %d digits", ErrInvalidLength, rules.Length)
	}
	if len(chars) != rules.Length {
		return nil, fmt.Errorf("%w: got %d characters, want %d", ErrInvalidLength, len(chars), rules.Length)
	}
	for _, r := range chars {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q is not a digit", ErrInvalidCharacters, r)
		}
	}

	code := make(game.Code, len(chars))
	for i, r := range chars {
		d := int(r - '0')
		if !rules.InRange(d) {
			return nil, fmt.Errorf("%w: %d not in %d..%d", ErrOutOfRange, d, rules.Min, rules.Max)
		}
		code[i] = d
	}
	return code, nil
}

// Distinct rejects codes that repeat a digit.
func Distinct(code game.Code) error {
	seen := make(map[int]struct{}, len(code))
	for _, d := range code {
		if _, dup := seen[d]; dup {
			return fmt.Errorf("%w: %d appears more than once", ErrRepeatedDigit, d)
		}
		seen[d] = struct{}{}
	}
	return nil
}
