// internal/remote/client.go
//
// HTTP client for a remote Mastermind server.
// Endpoints:
//   - POST   {base}/game        → create a game, returns its id
//   - POST   {base}/guess       → score a guess for a game
//   - DELETE {base}/game/{id}   → best-effort cleanup
//
// Notes:
//   - The game id is sent under game_id, gameId and gameID for server compatibility.
//   - An API key, when set, travels as both a bearer token and X-API-Key.
//   - Every request is bounded by the http.Client timeout; expiry is a NetworkError.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/mastermind/internal/game"
)

// DefaultTimeout bounds each request when Options.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// maxBody caps how much of a response we read.
const maxBody = 1 << 20

// Options configures a Client.
type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// HTTPClient overrides the default client; its Timeout is left untouched.
	HTTPClient *http.Client
	// Logger receives per-request debug lines; nil discards them.
	Logger *zerolog.Logger
}

// Client talks to one remote game server.
type Client struct {
	base   string
	apiKey string
	http   *http.Client
	log    zerolog.Logger
}

// New builds a Client for opts.BaseURL.
func New(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Client{
		base:   strings.TrimRight(opts.BaseURL, "/"),
		apiKey: opts.APIKey,
		http:   hc,
		log:    logger,
	}
}

// CreateGame starts a new remote game and returns its identifier.
func (c *Client) CreateGame(ctx context.Context) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/game", struct{}{})
	if err != nil {
		return "", err
	}
	return decodeGameID(body)
}

// guessReq carries the id under every spelling servers have been seen to expect.
type guessReq struct {
	Guess   string `json:"guess"`
	SnakeID string `json:"game_id"`
	CamelID string `json:"gameId"`
	UpperID string `json:"gameID"`
}

// Guess submits code for game id and returns normalized feedback.
func (c *Client) Guess(ctx context.Context, id string, code game.Code) (Result, error) {
	body, err := c.do(ctx, http.MethodPost, "/guess", guessReq{
		Guess:   code.String(),
		SnakeID: id,
		CamelID: id,
		UpperID: id,
	})
	if err != nil {
		return Result{}, err
	}
	return decodeGuess(body)
}

// DeleteGame removes game id on the server. Callers treat failures as non-fatal.
func (c *Client) DeleteGame(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/game/"+url.PathEscape(id), nil)
	return err
}

// do performs one request and returns the body of a 2xx reply.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	op := method + " " + path

	var rd io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request: %w", op, err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("X-API-Key", c.apiKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("url", req.URL.String()).Msg("request failed")
		return nil, &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	c.log.Debug().
		Str("method", method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("dur", time.Since(start)).
		Str("body", truncate(string(body), 200)).
		Msg("http")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return body, nil
}
