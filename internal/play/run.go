package play

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/secret"
	"github.com/robalobadob/mastermind/internal/ui"
)

// cleanupTimeout bounds the end-of-run DELETE, independent of the caller's context.
const cleanupTimeout = 5 * time.Second

// Options are shared by both modes.
type Options struct {
	Rules       game.Rules
	MaxAttempts int
	In          io.Reader
	Out         *ui.Printer
	Prompt      bool
	Logger      zerolog.Logger
}

// LocalOptions configures an in-process game.
type LocalOptions struct {
	Options
	Generator secret.Generator
	Cheat     bool
}

// RunLocal plays one game against a locally generated secret.
func RunLocal(ctx context.Context, o LocalOptions) Outcome {
	code := o.Generator.Generate(o.Rules)
	sess := game.NewSession(code, o.Rules)

	o.Out.Banner("local", o.Rules, o.MaxAttempts)
	if o.Cheat {
		o.Out.Secret("secret:", sess.Secret())
	}

	loop := &Loop{
		Rules:       o.Rules,
		MaxAttempts: o.MaxAttempts,
		Eval:        LocalEvaluator{Session: sess},
		In:          o.In,
		Out:         o.Out,
		Prompt:      o.Prompt,
	}
	out := loop.Run(ctx)
	if out.State == AttemptLimitReached {
		o.Out.Secret("the code was", sess.Secret())
	}
	o.Logger.Debug().Str("state", out.State.String()).Int("attempts", sess.Attempts()).Msg("local game finished")
	return out
}

// RemoteOptions configures a server-backed game.
type RemoteOptions struct {
	Options
	Client  RemoteGame
	Cheat   bool
	Cleanup bool // Delete the remote game once the loop ends.
}

// RunRemote creates a game on the server and plays it.
// A creation failure is reported and ends the run as Aborted.
func RunRemote(ctx context.Context, o RemoteOptions) Outcome {
	o.Out.Banner("api", o.Rules, o.MaxAttempts)

	id, err := o.Client.CreateGame(ctx)
	if err != nil {
		o.Out.Error(err)
		o.Logger.Debug().Err(err).Msg("create game failed")
		return Outcome{State: Aborted}
	}
	o.Logger.Debug().Str("gameId", id).Msg("remote game created")

	if o.Cleanup {
		defer deleteGame(ctx, o.Client, id, o.Logger)
	}
	if o.Cheat {
		o.Out.Info("cheat is not available in api mode: the server keeps the secret")
	}

	loop := &Loop{
		Rules:           o.Rules,
		MaxAttempts:     o.MaxAttempts,
		RequireDistinct: true,
		Eval:            RemoteEvaluator{Client: o.Client, GameID: id, Length: o.Rules.Length},
		In:              o.In,
		Out:             o.Out,
		Prompt:          o.Prompt,
	}
	out := loop.Run(ctx)
	o.Logger.Debug().Str("gameId", id).Str("state", out.State.String()).Int("attempts", out.Attempts).Msg("remote game finished")
	return out
}

// deleteGame is best effort; failures only show up in verbose logs.
func deleteGame(ctx context.Context, c RemoteGame, id string, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()
	if err := c.DeleteGame(ctx, id); err != nil {
		log.Debug().Err(err).Str("gameId", id).Msg("cleanup failed")
		return
	}
	log.Debug().Str("gameId", id).Msg("remote game deleted")
}
