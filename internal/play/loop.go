// internal/play/loop.go
//
// The command loop: read a guess, validate it, hand it to an Evaluator,
// print the feedback, and stop on a win, the attempt limit, or "exit".
//
// State transitions:
//   Active --exit / EOF / read error----> UserExited
//   Active --invalid input--------------> Active (no attempt used)
//   Active --attempts >= max------------> AttemptLimitReached (checked before each prompt)
//   Active --evaluator says lost--------> AttemptLimitReached
//   Active --evaluator says won---------> Won
//   Active --evaluator error------------> Active (reported, no attempt used)
package play

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/guess"
	"github.com/robalobadob/mastermind/internal/ui"
)

// State is where a loop run stands.
type State int

const (
	Active State = iota
	Won
	AttemptLimitReached
	UserExited
	Aborted
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Won:
		return "won"
	case AttemptLimitReached:
		return "attempt_limit_reached"
	case UserExited:
		return "user_exited"
	case Aborted:
		return "aborted"
	}
	return "unknown"
}

// Outcome summarizes a finished run.
type Outcome struct {
	State    State
	Attempts int
}

// Loop drives one game against an Evaluator.
type Loop struct {
	Rules           game.Rules
	MaxAttempts     int  // <= 0 means unlimited.
	RequireDistinct bool // Server games reject repeated digits.
	Eval            Evaluator
	In              io.Reader
	Out             *ui.Printer
	Prompt          bool // Print a prompt before each read.
}

// maxLine caps one line of input; anything longer is rejected as a guess.
const maxLine = 4096

var errLineTooLong = fmt.Errorf("%w: line longer than %d characters", guess.ErrInvalidLength, maxLine)

// readLine returns the next line without its terminator. An overlong line is
// consumed in full and reported as errLineTooLong.
func readLine(r *bufio.Reader) (string, error) {
	var (
		buf  []byte
		long bool
	)
	for {
		frag, more, err := r.ReadLine()
		if err != nil {
			return "", err
		}
		if !long {
			buf = append(buf, frag...)
			if len(buf) > maxLine {
				long, buf = true, nil
			}
		}
		if !more {
			break
		}
	}
	if long {
		return "", errLineTooLong
	}
	return string(buf), nil
}

// isExit reports whether a line is the quit sentinel.
func isExit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit":
		return true
	}
	return false
}

// Run plays until a terminal state is reached.
func (l *Loop) Run(ctx context.Context) Outcome {
	rd := bufio.NewReader(l.In)
	attempts := 0

	for {
		if l.MaxAttempts > 0 && attempts >= l.MaxAttempts {
			l.Out.OutOfAttempts(attempts)
			return Outcome{State: AttemptLimitReached, Attempts: attempts}
		}
		if ctx.Err() != nil {
			return Outcome{State: UserExited, Attempts: attempts}
		}

		if l.Prompt {
			l.Out.Prompt(attempts+1, l.MaxAttempts)
		}
		line, err := readLine(rd)
		if errors.Is(err, errLineTooLong) {
			l.Out.Error(err)
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				l.Out.Error(fmt.Errorf("read input: %w", err))
			}
			return Outcome{State: UserExited, Attempts: attempts}
		}
		if isExit(line) {
			return Outcome{State: UserExited, Attempts: attempts}
		}

		code, err := guess.Parse(line, l.Rules)
		if err == nil && l.RequireDistinct {
			err = guess.Distinct(code)
		}
		if err != nil {
			l.Out.Error(err)
			continue
		}

		v, err := l.Eval.Evaluate(ctx, code)
		if err != nil {
			l.Out.Error(err)
			continue
		}
		attempts++
		l.Out.Feedback(code, v.Feedback, l.Rules.Length)

		if v.Won {
			l.Out.Won(attempts)
			return Outcome{State: Won, Attempts: attempts}
		}
		if v.Lost {
			l.Out.OutOfAttempts(attempts)
			return Outcome{State: AttemptLimitReached, Attempts: attempts}
		}
	}
}
