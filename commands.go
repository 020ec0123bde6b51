package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/mastermind/internal/config"
	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/httpserver"
	"github.com/robalobadob/mastermind/internal/play"
	"github.com/robalobadob/mastermind/internal/remote"
	"github.com/robalobadob/mastermind/internal/secret"
	"github.com/robalobadob/mastermind/internal/store"
	"github.com/robalobadob/mastermind/internal/ui"
)

// newRootCmd builds the play command; `serve` hangs off it.
func newRootCmd() *cobra.Command {
	var (
		cfg  config.Config
		seed int64
	)

	cmd := &cobra.Command{
		Use:   "mastermind",
		Short: "Crack a hidden 4-digit code, locally or against a game server",
		Long: `mastermind is a terminal code-breaking game.

Each guess is answered with B (right digit, right place) and
W (right digit, wrong place) pegs. Play against a secret generated
in-process (--mode local) or against a remote server (--mode api).

Environment:
  MASTERMIND_API_URL  base URL used when --api-url is not given
  MASTERMIND_API_KEY  API key used when --api-key is not given
  LOG_LEVEL           zerolog level (default warn; --verbose forces debug)`,
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("seed") {
				cfg.Seed = &seed
			}
			cfg.Resolve(cmd.Flags().Changed("api-url"), cmd.Flags().Changed("api-key"))
			if err := cfg.Validate(); err != nil {
				return err
			}
			zerolog.SetGlobalLevel(cfg.LogLevel)
			runPlay(cmd, cfg)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfg.Mode, "mode", "m", config.ModeLocal, "game mode: local|api")
	f.Int64Var(&seed, "seed", 0, "fixed seed for the local secret (reproducible games)")
	f.BoolVar(&cfg.Cheat, "cheat", false, "print the secret at the start (local mode)")
	f.IntVar(&cfg.MaxAttempts, "max-attempts", config.DefaultMaxAttempts, "maximum guesses before the game ends (0 = unlimited)")
	f.StringVar(&cfg.APIURL, "api-url", config.DefaultAPIURL, "base URL of the game server (api mode)")
	f.StringVar(&cfg.APIKey, "api-key", "", "API key sent as bearer token and X-API-Key")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log every HTTP request and response")
	f.BoolVar(&cfg.Cleanup, "cleanup", false, "delete the remote game when the session ends")
	f.DurationVar(&cfg.Timeout, "timeout", config.DefaultTimeout, "per-request timeout in api mode")

	cmd.AddCommand(newServeCmd())
	return cmd
}

// runPlay runs one game in the configured mode. Every outcome, including a
// failed API startup, ends normally.
func runPlay(cmd *cobra.Command, cfg config.Config) {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	opts := play.Options{
		Rules:       game.DefaultRules,
		MaxAttempts: cfg.MaxAttempts,
		In:          in,
		Out:         ui.NewPrinter(out),
		Prompt:      interactive(in),
		Logger:      log.Logger,
	}

	var outcome play.Outcome
	switch cfg.Mode {
	case config.ModeAPI:
		client := remote.New(remote.Options{
			BaseURL: cfg.APIURL,
			APIKey:  cfg.APIKey,
			Timeout: cfg.Timeout,
			Logger:  &log.Logger,
		})
		outcome = play.RunRemote(cmd.Context(), play.RemoteOptions{
			Options: opts,
			Client:  client,
			Cheat:   cfg.Cheat,
			Cleanup: cfg.Cleanup,
		})
	default:
		outcome = play.RunLocal(cmd.Context(), play.LocalOptions{
			Options:   opts,
			Generator: secret.New(cfg.Seed),
			Cheat:     cfg.Cheat,
		})
	}
	if outcome.State == play.UserExited {
		fmt.Fprintln(out, "Bye!")
	}
	log.Debug().Str("mode", cfg.Mode).Str("state", outcome.State.String()).Int("attempts", outcome.Attempts).Msg("session ended")
}

// interactive reports whether r is a terminal a human is typing into.
func interactive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newServeCmd runs the companion game server.
func newServeCmd() *cobra.Command {
	var (
		addr        string
		apiKey      string
		maxAttempts int
		seed        int64
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a Mastermind game server speaking the api-mode protocol",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lvl, err := zerolog.ParseLevel(config.Getenv(config.EnvLogLevel, "info")); err == nil {
				zerolog.SetGlobalLevel(lvl)
			}
			if !cmd.Flags().Changed("api-key") {
				apiKey = config.Getenv(config.EnvAPIKey, "")
			}
			var s *int64
			if cmd.Flags().Changed("seed") {
				s = &seed
			}

			srv := httpserver.New(store.NewMemoryStore(), httpserver.Options{
				APIKey:      apiKey,
				Rules:       game.DefaultRules,
				MaxAttempts: maxAttempts,
				Generator:   secret.New(s),
			})
			log.Info().Str("addr", addr).Bool("auth", apiKey != "").Int("maxAttempts", maxAttempts).Msg("starting mastermind server")
			return srv.Start(addr)
		},
	}
	f := cmd.Flags()
	f.StringVar(&addr, "addr", ":"+config.Getenv("PORT", "8080"), "listen address")
	f.StringVar(&apiKey, "api-key", "", "require this key on game endpoints (default $MASTERMIND_API_KEY)")
	f.IntVar(&maxAttempts, "max-attempts", 10, "guesses allowed per game (0 = unlimited)")
	f.Int64Var(&seed, "seed", 0, "seed secrets for reproducible server games")
	return cmd
}
