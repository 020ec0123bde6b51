package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnvFillsUnsetFlags(t *testing.T) {
	t.Setenv(EnvAPIURL, "http://env:9000")
	t.Setenv(EnvAPIKey, "env-key")

	c := Config{APIURL: DefaultAPIURL}
	c.Resolve(false, false)
	assert.Equal(t, "http://env:9000", c.APIURL)
	assert.Equal(t, "env-key", c.APIKey)
}

func TestResolveFlagsBeatEnv(t *testing.T) {
	t.Setenv(EnvAPIURL, "http://env:9000")
	t.Setenv(EnvAPIKey, "env-key")

	c := Config{APIURL: "http://flag:1", APIKey: "flag-key"}
	c.Resolve(true, true)
	assert.Equal(t, "http://flag:1", c.APIURL)
	assert.Equal(t, "flag-key", c.APIKey)
}

func TestResolveDefaults(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvLogLevel, "")

	c := Config{}
	c.Resolve(false, false)
	assert.Equal(t, DefaultAPIURL, c.APIURL)
	assert.Empty(t, c.APIKey)
	assert.Equal(t, zerolog.WarnLevel, c.LogLevel)

	c.Verbose = true
	c.Resolve(false, false)
	assert.Equal(t, zerolog.DebugLevel, c.LogLevel)
}

func TestValidate(t *testing.T) {
	c := Config{Mode: " API ", APIURL: "http://x"}
	require.NoError(t, c.Validate())
	assert.Equal(t, ModeAPI, c.Mode)
	assert.Equal(t, DefaultTimeout, c.Timeout)

	c = Config{Mode: "remote"}
	assert.Error(t, c.Validate())
}
