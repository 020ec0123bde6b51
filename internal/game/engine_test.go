package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	cases := []struct {
		name   string
		secret Code
		guess  Code
		want   Feedback
	}{
		{"exact plus two partials", Code{1, 2, 3, 4}, Code{1, 3, 2, 5}, Feedback{1, 2}},
		{"repeated guess digit exhausted by exact", Code{1, 1, 2, 3}, Code{1, 1, 1, 1}, Feedback{2, 0}},
		{"all correct", Code{5, 4, 3, 2}, Code{5, 4, 3, 2}, Feedback{4, 0}},
		{"nothing shared", Code{1, 1, 1, 1}, Code{2, 2, 2, 2}, Feedback{0, 0}},
		{"full permutation", Code{1, 1, 2, 2}, Code{2, 2, 1, 1}, Feedback{0, 4}},
		{"reversed", Code{5, 4, 3, 2}, Code{4, 3, 2, 1}, Feedback{0, 3}},
		{"three exact", Code{5, 4, 3, 2}, Code{5, 4, 3, 1}, Feedback{3, 0}},
		{"duplicate in secret single in guess", Code{2, 2, 3, 4}, Code{1, 5, 2, 6}, Feedback{0, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Score(tc.guess, tc.secret))
		})
	}
}

// allCodes enumerates every code under r.
func allCodes(r Rules) []Code {
	var out []Code
	var walk func(prefix Code)
	walk = func(prefix Code) {
		if len(prefix) == r.Length {
			c := make(Code, len(prefix))
			copy(c, prefix)
			out = append(out, c)
			return
		}
		for d := r.Min; d <= r.Max; d++ {
			walk(append(prefix, d))
		}
	}
	walk(Code{})
	return out
}

func TestScoreProperties(t *testing.T) {
	r := Rules{Length: 4, Min: 1, Max: 3}
	codes := allCodes(r)
	require.Len(t, codes, 81)

	for _, s := range codes {
		self := Score(s, s)
		require.Equal(t, Feedback{Exact: r.Length}, self, "self score of %s", s)

		for _, g := range codes {
			fwd := Score(g, s)
			rev := Score(s, g)
			require.LessOrEqual(t, fwd.Exact+fwd.Partial, r.Length)
			require.Equal(t, fwd.Exact, rev.Exact, "exact symmetry %s/%s", g, s)
			require.Equal(t, fwd.Partial, rev.Partial, "partial symmetry %s/%s", g, s)
		}
	}
}

func TestScoreLengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { Score(Code{1, 2, 3}, Code{1, 2, 3, 4}) })
}

func TestSessionSubmit(t *testing.T) {
	secret := Code{1, 2, 3, 4}
	s := NewSession(secret, DefaultRules)
	secret[0] = 6 // caller mutation must not reach the session

	assert.Equal(t, 0, s.Attempts())
	fb := s.Submit(Code{1, 3, 2, 5})
	assert.Equal(t, Feedback{1, 2}, fb)
	assert.Equal(t, 1, s.Attempts())

	fb = s.Submit(Code{1, 2, 3, 4})
	assert.True(t, fb.Won(DefaultRules.Length))
	assert.Equal(t, 2, s.Attempts())
	assert.Equal(t, Code{1, 2, 3, 4}, s.Secret())
}

func TestFeedbackAndCodeString(t *testing.T) {
	assert.Equal(t, "BWW", Feedback{1, 2}.String())
	assert.Equal(t, "", Feedback{}.String())
	assert.Equal(t, "1326", Code{1, 3, 2, 6}.String())
	assert.True(t, Code{1, 2}.Equal(Code{1, 2}))
	assert.False(t, Code{1, 2}.Equal(Code{2, 1}))
	assert.False(t, Code{1}.Equal(Code{1, 1}))
}
