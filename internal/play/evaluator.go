package play

import (
	"context"

	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/remote"
)

// Verdict is one evaluated guess.
type Verdict struct {
	Feedback game.Feedback
	Won      bool
	Lost     bool // The evaluator has no guesses left to give.
}

// Evaluator scores guesses. The loop never needs to know which kind it holds.
type Evaluator interface {
	Evaluate(ctx context.Context, g game.Code) (Verdict, error)
}

// LocalEvaluator scores against an in-process session.
type LocalEvaluator struct {
	Session *game.Session
}

func (e LocalEvaluator) Evaluate(_ context.Context, g game.Code) (Verdict, error) {
	fb := e.Session.Submit(g)
	return Verdict{Feedback: fb, Won: fb.Won(e.Session.Rules().Length)}, nil
}

// RemoteGame is the subset of the remote client the loop relies on.
type RemoteGame interface {
	CreateGame(ctx context.Context) (string, error)
	Guess(ctx context.Context, id string, g game.Code) (remote.Result, error)
	DeleteGame(ctx context.Context, id string) error
}

// RemoteEvaluator scores by asking a server about one game.
type RemoteEvaluator struct {
	Client RemoteGame
	GameID string
	Length int
}

func (e RemoteEvaluator) Evaluate(ctx context.Context, g game.Code) (Verdict, error) {
	res, err := e.Client.Guess(ctx, e.GameID, g)
	if err != nil {
		return Verdict{}, err
	}
	if err := res.Check(e.Length); err != nil {
		return Verdict{}, err
	}
	won := res.Feedback.Won(e.Length) || res.Won()
	return Verdict{Feedback: res.Feedback, Won: won, Lost: !won && res.Lost()}, nil
}
