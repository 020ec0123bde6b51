package remote

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/mastermind/internal/game"
)

func TestDecodeGuessShapes(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		want   game.Feedback
		status string
	}{
		{"strict counts", `{"black":4,"white":0}`, game.Feedback{Exact: 4}, ""},
		{"strict counts with status", `{"black":1,"white":2,"status":"playing"}`, game.Feedback{Exact: 1, Partial: 2}, "playing"},
		{"result string", `{"result":"BWW","state":"won"}`, game.Feedback{Exact: 1, Partial: 2}, "won"},
		{"counts win over result", `{"black":2,"white":0,"result":"BBBB"}`, game.Feedback{Exact: 2}, ""},
		{"numeric strings", `{"black":"2","white":"1"}`, game.Feedback{Exact: 2, Partial: 1}, ""},
		{"floats", `{"black":3.0,"white":"0","status":"playing"}`, game.Feedback{Exact: 3}, "playing"},
		{"loose result", `{"black":"x","result":"BBW"}`, game.Feedback{Exact: 2, Partial: 1}, ""},
		{"raw pegs", "BBW\n", game.Feedback{Exact: 2, Partial: 1}, ""},
		{"raw pegs with blanks", "B W - -", game.Feedback{Exact: 1, Partial: 1}, ""},
		{"quoted pegs", `"BBWW"`, game.Feedback{Exact: 2, Partial: 2}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := decodeGuess([]byte(tc.body))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Feedback)
			assert.Equal(t, tc.status, res.Status)
		})
	}
}

func TestDecodeGuessErrorField(t *testing.T) {
	_, err := decodeGuess([]byte(`{"error":"invalid game"}`))
	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, 400, he.Code)
	assert.Equal(t, "invalid game", he.Body)
}

func TestDecodeGuessUnrecognized(t *testing.T) {
	for _, body := range []string{``, `{}`, `{"error":""}`, `[1,2]`, `hello`, `{"black":1}`} {
		_, err := decodeGuess([]byte(body))
		assert.ErrorIs(t, err, ErrInvalidResponse, "body %q", body)
	}
}

func TestResultCheckRejectsImpossibleCounts(t *testing.T) {
	for _, body := range []string{`{"black":-3,"white":9}`, `{"black":9,"white":0}`, `{"black":2,"white":3}`, `{"result":"BBBBB"}`} {
		res, err := decodeGuess([]byte(body))
		require.NoError(t, err, body)
		assert.ErrorIs(t, res.Check(4), ErrInvalidResponse, "body %q", body)
	}

	for _, body := range []string{`{"black":4,"white":0}`, `{"black":0,"white":4}`, `{"black":0,"white":0}`, `{"black":1,"white":3}`} {
		res, err := decodeGuess([]byte(body))
		require.NoError(t, err, body)
		assert.NoError(t, res.Check(4), body)
	}
}

func TestResultLost(t *testing.T) {
	assert.True(t, Result{Status: "lost"}.Lost())
	assert.True(t, Result{Status: " LOST "}.Lost())
	assert.False(t, Result{Status: "playing"}.Lost())
	assert.False(t, Result{Status: "won"}.Lost())
}

func TestResultWon(t *testing.T) {
	assert.True(t, Result{Status: "WON"}.Won())
	assert.True(t, Result{Status: " solved "}.Won())
	assert.False(t, Result{Status: "playing"}.Won())
	assert.False(t, Result{}.Won())
}

func TestDecodeGameID(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`{"game_id":"abc"}`, "abc"},
		{`{"gameId":"camel"}`, "camel"},
		{`{"gameID":"upper"}`, "upper"},
		{`{"GameId":"mixed"}`, "mixed"},
		{`{"id":42}`, "42"},
		{`{"id":"x","game_id":"preferred"}`, "preferred"},
		{`"quoted-id"`, "quoted-id"},
		{"  raw-id-123\n", "raw-id-123"},
		{"17\n", "17"},
	}
	for _, tc := range cases {
		got, err := decodeGameID([]byte(tc.body))
		require.NoError(t, err, tc.body)
		assert.Equal(t, tc.want, got, tc.body)
	}
}

func TestDecodeGameIDMissing(t *testing.T) {
	for _, body := range []string{``, `   `, `{}`, `{"game_id":""}`, `{"status":"ok"}`, `""`, `[1,2]`, `true`, `null`, `{"id":[1]}`} {
		_, err := decodeGameID([]byte(body))
		assert.ErrorIs(t, err, ErrInvalidResponse, "body %q", body)
	}
}
