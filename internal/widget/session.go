package widget

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/askstorm/internal/render"
	"github.com/dshills/askstorm/internal/style"
	"github.com/dshills/askstorm/internal/term"
)

// Widget errors.
var (
	// ErrCancelled reports that the user aborted the prompt (Ctrl-C or a
	// cancelled context). The terminal is always restored before it is
	// returned.
	ErrCancelled = errors.New("prompt cancelled")

	// ErrEmptyOptions reports a choice widget configured with no options.
	// A required selection over zero candidates can never succeed, so it
	// fails immediately instead of re-prompting forever.
	ErrEmptyOptions = errors.New("no options to choose from")

	// ErrInvalidConfig reports an internally inconsistent configuration
	// (a minimum above its maximum, a negative step). Caught before the
	// widget renders anything.
	ErrInvalidConfig = errors.New("invalid prompt configuration")
)

// Session bundles the terminal, render surface and theme one widget runs
// against. A session is owned by exactly one driving loop at a time.
type Session struct {
	Term  *term.Terminal
	Surf  *render.Surface
	Theme *style.Theme
}

// status is a machine's verdict on one key event.
type status int

const (
	statusContinue status = iota
	statusSubmit
)

// machine is one prompt kind's state machine.
type machine interface {
	// View renders the current state as the widget's live lines.
	View() []string

	// Handle consumes one key event. Returning statusSubmit ends the
	// loop; validation failures set inline state and keep continuing.
	Handle(ev term.Event) status

	// Summary renders the lines committed permanently after submission.
	Summary() []string
}

// run drives a machine to submission or cancellation. On any non-submit
// exit the live region is cleared, so no partial paint survives.
func (s *Session) run(ctx context.Context, m machine) error {
	s.Surf.HideCursor()
	defer s.Surf.ShowCursor()

	for {
		s.Surf.Paint(m.View())

		ev, err := s.Term.ReadKey(ctx)
		if err != nil {
			s.Surf.Clear()
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("%w: %w", ErrCancelled, err)
			}
			return err
		}
		if ev.Key == term.KeyCtrlC {
			s.Surf.Clear()
			return ErrCancelled
		}

		if m.Handle(ev) == statusSubmit {
			s.Surf.Commit(m.Summary())
			return nil
		}
	}
}

// titleLine renders the standard first line of an active prompt.
func (s *Session) titleLine(message, value string) string {
	t := s.Theme
	var b strings.Builder
	b.WriteString(t.Prompt.Render(t.PromptGlyph))
	b.WriteString(" ")
	b.WriteString(t.Message.Render(message))
	if value != "" {
		b.WriteString(" ")
		b.WriteString(value)
	}
	return b.String()
}

// summaryLine renders the standard committed line for a finished prompt.
func (s *Session) summaryLine(message, value string) string {
	t := s.Theme
	var b strings.Builder
	b.WriteString(t.Prompt.Render(t.DoneGlyph))
	b.WriteString(" ")
	b.WriteString(t.Message.Render(message))
	if value != "" {
		b.WriteString(" ")
		b.WriteString(t.Done.Render(value))
	}
	return b.String()
}

// errorLine renders an inline validation message.
func (s *Session) errorLine(msg string) string {
	t := s.Theme
	return t.Error.Render(t.ErrorGlyph+" ") + t.Error.Render(msg)
}
