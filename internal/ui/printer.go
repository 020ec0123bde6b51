// internal/ui/printer.go
//
// Terminal output for the game loop.
// Colors come from a lipgloss renderer bound to the output writer, so piping
// to a file or running under tests yields plain text.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/mastermind/internal/game"
)

// Printer writes game messages to one output.
type Printer struct {
	out io.Writer

	title lipgloss.Style
	exact lipgloss.Style
	part  lipgloss.Style
	miss  lipgloss.Style
	warn  lipgloss.Style
	good  lipgloss.Style
	dim   lipgloss.Style
}

// NewPrinter builds a Printer for out.
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:   out,
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		exact: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		part:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		miss:  r.NewStyle().Foreground(lipgloss.Color("8")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("9")),
		good:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		dim:   r.NewStyle().Faint(true),
	}
}

// Banner introduces a game.
func (p *Printer) Banner(mode string, rules game.Rules, maxAttempts int) {
	fmt.Fprintln(p.out, p.title.Render("MASTERMIND")+p.dim.Render(" ("+mode+" mode)"))
	limit := "unlimited attempts"
	if maxAttempts > 0 {
		limit = fmt.Sprintf("%d attempts", maxAttempts)
	}
	fmt.Fprintf(p.out, "Guess the %d-digit code, digits %d-%d, %s. Type 'exit' to quit.\n",
		rules.Length, rules.Min, rules.Max, limit)
	fmt.Fprintln(p.out, "B = right digit, right place   W = right digit, wrong place")
}

// Prompt asks for the next guess.
func (p *Printer) Prompt(attempt, maxAttempts int) {
	if maxAttempts > 0 {
		fmt.Fprintf(p.out, "[%d/%d] guess> ", attempt, maxAttempts)
		return
	}
	fmt.Fprintf(p.out, "[%d] guess> ", attempt)
}

// Feedback prints one scored guess as colored pegs plus counts.
func (p *Printer) Feedback(g game.Code, fb game.Feedback, length int) {
	var pegs strings.Builder
	pegs.WriteString(p.exact.Render(strings.Repeat("B", fb.Exact)))
	pegs.WriteString(p.part.Render(strings.Repeat("W", fb.Partial)))
	if rest := length - fb.Exact - fb.Partial; rest > 0 {
		pegs.WriteString(p.miss.Render(strings.Repeat("-", rest)))
	}
	fmt.Fprintf(p.out, "%s  %s  (%d exact, %d partial)\n", g, pegs.String(), fb.Exact, fb.Partial)
}

// Error reports a recoverable problem with the current turn.
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.out, p.warn.Render("error: "+err.Error()))
}

// Info prints a plain line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Secret reveals the code, used by --cheat and after a loss.
func (p *Printer) Secret(label string, c game.Code) {
	fmt.Fprintf(p.out, "%s %s\n", p.dim.Render(label), c)
}

// Won announces a solved code.
func (p *Printer) Won(attempts int) {
	noun := "attempts"
	if attempts == 1 {
		noun = "attempt"
	}
	fmt.Fprintln(p.out, p.good.Render(fmt.Sprintf("You cracked the code in %d %s!", attempts, noun)))
}

// OutOfAttempts announces the attempt limit.
func (p *Printer) OutOfAttempts(maxAttempts int) {
	fmt.Fprintln(p.out, p.warn.Render(fmt.Sprintf("Out of attempts (%d used).", maxAttempts)))
}
