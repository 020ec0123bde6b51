package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/secret"
)

func runCLI(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestHelpExitsCleanly(t *testing.T) {
	out, err := runCLI(t, "", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "--max-attempts")
	assert.Contains(t, out, "MASTERMIND_API_URL")
}

func TestSeededLocalGameWithCheat(t *testing.T) {
	want := secret.Seeded(1234).Generate(game.DefaultRules)

	out, err := runCLI(t, want.String()+"\n", "--seed", "1234", "--cheat")
	require.NoError(t, err)
	assert.Contains(t, out, "secret: "+want.String())
	assert.Contains(t, out, "You cracked the code in 1 attempt!")
}

func TestLocalGameExit(t *testing.T) {
	out, err := runCLI(t, "exit\n", "--mode", "local")
	require.NoError(t, err)
	assert.Contains(t, out, "Bye!")
}

func TestAPIStartupFailureStillExitsNormally(t *testing.T) {
	// Port 1 on loopback refuses connections.
	out, err := runCLI(t, "1234\n", "--mode", "api", "--api-url", "http://127.0.0.1:1", "--timeout", "500ms")
	require.NoError(t, err)
	assert.Contains(t, out, "network error")
}

func TestUnknownModeIsRejected(t *testing.T) {
	_, err := runCLI(t, "", "--mode", "carrier-pigeon")
	assert.Error(t, err)
}
