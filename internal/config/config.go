// internal/config/config.go
//
// Runtime configuration for the mastermind CLI.
// Precedence for the API settings: explicit flag > environment > default.
// A .env file in the working directory is loaded into the environment first
// (existing variables win, as with godotenv.Load).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Environment variables read by the CLI.
const (
	EnvAPIURL   = "MASTERMIND_API_URL"
	EnvAPIKey   = "MASTERMIND_API_KEY"
	EnvLogLevel = "LOG_LEVEL"
)

const (
	ModeLocal = "local"
	ModeAPI   = "api"

	DefaultAPIURL      = "http://localhost:8080"
	DefaultMaxAttempts = 10
	DefaultTimeout     = 10 * time.Second
)

// Config is the resolved set of play options.
type Config struct {
	Mode        string
	Seed        *int64
	Cheat       bool
	MaxAttempts int
	APIURL      string
	APIKey      string
	Verbose     bool
	Cleanup     bool
	Timeout     time.Duration
	LogLevel    zerolog.Level
}

// LoadDotEnv reads .env if present. A missing file is not an error.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// Getenv returns the value of k or def if unset/empty.
func Getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Resolve fills API settings left unset by flags from the environment.
// urlSet/keySet report whether the flag was given explicitly.
func (c *Config) Resolve(urlSet, keySet bool) {
	if !urlSet {
		c.APIURL = Getenv(EnvAPIURL, c.APIURL)
	}
	if !keySet {
		c.APIKey = Getenv(EnvAPIKey, c.APIKey)
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}

	c.LogLevel = zerolog.WarnLevel
	if lvl, err := zerolog.ParseLevel(Getenv(EnvLogLevel, "warn")); err == nil {
		c.LogLevel = lvl
	}
	if c.Verbose {
		c.LogLevel = zerolog.DebugLevel
	}
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	switch c.Mode {
	case ModeLocal, ModeAPI:
	default:
		return fmt.Errorf("unknown mode %q (want %s or %s)", c.Mode, ModeLocal, ModeAPI)
	}
	if c.Mode == ModeAPI && c.APIURL == "" {
		return errors.New("api mode needs a base URL")
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}
