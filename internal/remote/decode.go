// internal/remote/decode.go
//
// Guess responses come in several shapes depending on the server build.
// decodeGuess tries each shape in priority order and returns the first hit:
//
//   1. {"black": 1, "white": 2}           strict integers
//   2. {"result": "BWW"}                  peg string
//   3. {"error": "invalid game"}          explicit failure (HTTP 400 equivalent)
//   4. {"black": "1", "white": 2.0}       loose map, numbers as strings/floats
//   5. BWW or "BWW"                        raw or JSON-quoted body of pegs
//
// Counts are not range-checked here; callers that know the code length use
// Result.Check.
package remote

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/robalobadob/mastermind/internal/game"
)

// Result is a normalized guess reply.
type Result struct {
	Feedback game.Feedback
	Status   string // Optional server-reported state ("playing", "won", ...).
}

// Won reports whether the server's status string signals a solved game.
func (r Result) Won() bool {
	switch strings.ToLower(strings.TrimSpace(r.Status)) {
	case "won", "win", "solved", "success":
		return true
	}
	return false
}

// Lost reports whether the server's status string signals the game is over
// without a win.
func (r Result) Lost() bool {
	switch strings.ToLower(strings.TrimSpace(r.Status)) {
	case "lost", "lose", "loss", "failed", "game_over":
		return true
	}
	return false
}

// Check rejects counts no scoring of a length-digit code can produce.
func (r Result) Check(length int) error {
	fb := r.Feedback
	if fb.Exact < 0 || fb.Partial < 0 || fb.Exact+fb.Partial > length {
		return fmt.Errorf("%w: impossible feedback %d black %d white for %d digits",
			ErrInvalidResponse, fb.Exact, fb.Partial, length)
	}
	return nil
}

// decoder inspects a body; ok=false means "not my shape, try the next one".
type decoder func(body []byte) (res Result, ok bool, err error)

var guessDecoders = []decoder{
	decodeStrictCounts,
	decodeStrictResult,
	decodeErrorField,
	decodeLooseMap,
	decodeRawPegs,
}

func decodeGuess(body []byte) (Result, error) {
	for _, d := range guessDecoders {
		res, ok, err := d(body)
		if err != nil {
			return Result{}, err
		}
		if ok {
			return res, nil
		}
	}
	return Result{}, fmt.Errorf("%w: %s", ErrInvalidResponse, truncate(string(body), 120))
}

// guessPayload is the strict view of a JSON guess reply.
type guessPayload struct {
	Black  *int    `json:"black"`
	White  *int    `json:"white"`
	Result *string `json:"result"`
	Error  string  `json:"error"`
	Status string  `json:"status"`
	State  string  `json:"state"`
}

func (p guessPayload) status() string {
	if p.Status != "" {
		return p.Status
	}
	return p.State
}

func strict(body []byte) (guessPayload, bool) {
	var p guessPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return p, false
	}
	return p, true
}

func decodeStrictCounts(body []byte) (Result, bool, error) {
	p, ok := strict(body)
	if !ok || p.Black == nil || p.White == nil {
		return Result{}, false, nil
	}
	return Result{Feedback: game.Feedback{Exact: *p.Black, Partial: *p.White}, Status: p.status()}, true, nil
}

func decodeStrictResult(body []byte) (Result, bool, error) {
	p, ok := strict(body)
	if !ok || p.Result == nil {
		return Result{}, false, nil
	}
	return Result{Feedback: countPegs(*p.Result), Status: p.status()}, true, nil
}

func decodeErrorField(body []byte) (Result, bool, error) {
	var p struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &p); err != nil || strings.TrimSpace(p.Error) == "" {
		return Result{}, false, nil
	}
	return Result{}, false, &HTTPError{Code: 400, Body: p.Error}
}

func decodeLooseMap(body []byte) (Result, bool, error) {
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		return Result{}, false, nil
	}
	status, _ := m["status"].(string)
	if status == "" {
		status, _ = m["state"].(string)
	}
	black, bok := looseInt(m["black"])
	white, wok := looseInt(m["white"])
	if bok && wok {
		return Result{Feedback: game.Feedback{Exact: black, Partial: white}, Status: status}, true, nil
	}
	if s, ok := m["result"].(string); ok {
		return Result{Feedback: countPegs(s), Status: status}, true, nil
	}
	return Result{}, false, nil
}

func decodeRawPegs(body []byte) (Result, bool, error) {
	s := strings.TrimSpace(string(body))
	var quoted string
	if err := json.Unmarshal(body, &quoted); err == nil {
		s = strings.TrimSpace(quoted)
	}
	if s == "" {
		return Result{}, false, nil
	}
	for _, r := range s {
		switch r {
		case 'B', 'W', '-', '.', '_', ' ':
		default:
			return Result{}, false, nil
		}
	}
	return Result{Feedback: countPegs(s)}, true, nil
}

func countPegs(s string) game.Feedback {
	return game.Feedback{Exact: strings.Count(s, "B"), Partial: strings.Count(s, "W")}
}

// looseInt accepts JSON numbers and numeric strings holding whole values.
func looseInt(v any) (int, bool) {
	switch x := v.(type) {
	case float64:
		if x != math.Trunc(x) || x < 0 {
			return 0, false
		}
		return int(x), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil || n < 0 {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// decodeGameID extracts the id from a POST /game reply.
func decodeGameID(body []byte) (string, error) {
	trimmed := strings.TrimSpace(string(body))

	var m map[string]any
	if err := json.Unmarshal(body, &m); err == nil {
		for _, want := range []string{"game_id", "gameid", "id"} {
			for k, v := range m {
				if normalizeKey(k) != want {
					continue
				}
				if id := idString(v); id != "" {
					return id, nil
				}
			}
		}
		return "", fmt.Errorf("%w: no game id in %s", ErrInvalidResponse, truncate(trimmed, 120))
	}

	// Bare JSON strings and numbers are ids; any other JSON value is not.
	var v any
	if err := json.Unmarshal(body, &v); err == nil {
		if id := idString(v); id != "" {
			return id, nil
		}
		return "", fmt.Errorf("%w: no game id in %s", ErrInvalidResponse, truncate(trimmed, 120))
	}
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty game id", ErrInvalidResponse)
	}
	return trimmed, nil
}

// normalizeKey folds gameId/gameID/GAME_ID to gameid or game_id.
func normalizeKey(k string) string {
	k = strings.ToLower(k)
	if k == "game-id" {
		return "game_id"
	}
	return k
}

func idString(v any) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
