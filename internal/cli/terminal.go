package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/vijay-prabhu/jobfit/internal/evaluator"
	"github.com/vijay-prabhu/jobfit/internal/scoring"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorGray   = "\033[90m"
)

// Spinner frames for animated progress
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Terminal provides terminal-aware output utilities
type Terminal struct {
	IsTerminal bool
	UseColor   bool
	out        io.Writer
}

// NewTerminal creates a Terminal for stderr, where progress is drawn
func NewTerminal() *Terminal {
	isTerminal := term.IsTerminal(int(os.Stderr.Fd()))
	return &Terminal{
		IsTerminal: isTerminal,
		UseColor:   isTerminal, // Only use color in terminal
		out:        os.Stderr,
	}
}

// Color wraps text in ANSI color codes (terminal only)
func (t *Terminal) Color(color, text string) string {
	if !t.UseColor {
		return text
	}
	return color + text + ColorReset
}

// Spin draws a spinner with a message until the returned stop func is called.
// Outside a terminal it does nothing.
func (t *Terminal) Spin(message string) (stop func()) {
	if !t.IsTerminal {
		return func() {}
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i = (i + 1) % len(spinnerFrames) {
			fmt.Fprintf(t.out, "\r\033[K%s %s", t.Color(ColorCyan, spinnerFrames[i]), message)
			select {
			case <-done:
				fmt.Fprint(t.out, "\r\033[K")
				return
			case <-ticker.C:
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
		})
	}
}

// DecisionColor returns the color for a decision tier
func DecisionColor(d scoring.Decision) string {
	switch d {
	case scoring.DecisionPriority:
		return ColorGreen
	case scoring.DecisionApply:
		return ColorYellow
	case scoring.DecisionSkip:
		return ColorGray
	default:
		return ColorRed
	}
}

// Summary returns a one-line tier count, colored in a terminal
func (t *Terminal) Summary(s evaluator.Stats) string {
	return fmt.Sprintf("%s, %s, %s",
		t.Color(DecisionColor(scoring.DecisionPriority), fmt.Sprintf("%d %s", s.Priority, scoring.DecisionPriority)),
		t.Color(DecisionColor(scoring.DecisionApply), fmt.Sprintf("%d %s", s.Apply, scoring.DecisionApply)),
		t.Color(DecisionColor(scoring.DecisionSkip), fmt.Sprintf("%d %s", s.Skip, scoring.DecisionSkip)),
	)
}
