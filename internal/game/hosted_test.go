package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostedWin(t *testing.T) {
	h := NewHosted("g1", Code{1, 2, 3, 4}, DefaultRules, 5)
	assert.Equal(t, StatePlaying, h.State())

	fb, state, n, err := h.Apply(Code{4, 3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, Feedback{Exact: 0, Partial: 4}, fb)
	assert.Equal(t, StatePlaying, state)
	assert.Equal(t, 1, n)

	_, state, n, err = h.Apply(Code{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, StateWon, state)
	assert.Equal(t, 2, n)

	_, state, _, err = h.Apply(Code{1, 2, 3, 4})
	assert.ErrorIs(t, err, ErrFinished)
	assert.Equal(t, StateWon, state)
}

func TestHostedLoss(t *testing.T) {
	h := NewHosted("g2", Code{1, 2, 3, 4}, DefaultRules, 2)
	_, _, _, err := h.Apply(Code{5, 5, 5, 5})
	require.NoError(t, err)
	_, state, _, err := h.Apply(Code{6, 6, 6, 6})
	require.NoError(t, err)
	assert.Equal(t, StateLost, state)

	_, _, _, err = h.Apply(Code{1, 2, 3, 4})
	assert.ErrorIs(t, err, ErrFinished)
}
