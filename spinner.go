package askstorm

import (
	"sync"
	"time"

	"github.com/dshills/askstorm/internal/render"
	"github.com/dshills/askstorm/internal/style"
	"github.com/dshills/askstorm/internal/term"
)

// Spinner is an animated progress line repainted on a steady interval.
// It consumes no keyboard input. All methods are safe for concurrent use;
// after the first terminal transition (Succeed, Fail or Stop) every
// further call is a no-op.
type Spinner struct {
	mu      sync.Mutex
	surf    *render.Surface
	theme   *style.Theme
	message string
	frame   int
	stopped bool
	quit    chan struct{}
}

// Spinner starts an animated progress line with the given message.
func (p *Prompter) Spinner(message string) *Spinner {
	s := &Spinner{
		surf:    render.New(p.out),
		theme:   p.theme,
		message: message,
		quit:    make(chan struct{}),
	}
	s.surf.SetWidth(term.WidthOf(p.out, defaultWidth))
	s.surf.HideCursor()
	s.paint()
	go s.loop()
	return s
}

// StartSpinner starts an animated progress line on the default streams.
func StartSpinner(message string) *Spinner {
	return Default.Spinner(message)
}

func (s *Spinner) loop() {
	ticker := time.NewTicker(s.theme.SpinnerInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.advance()
		case <-s.quit:
			return
		}
	}
}

func (s *Spinner) advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.frame++
	s.paint()
}

// SetMessage replaces the running message.
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.message = message
	s.paint()
}

// paint redraws the live line. Callers hold s.mu (or own the spinner
// exclusively during construction).
func (s *Spinner) paint() {
	t := s.theme
	frame := t.SpinnerFrames[s.frame%len(t.SpinnerFrames)]
	s.surf.Paint([]string{t.Spinner.Render(frame) + " " + t.Message.Render(s.message)})
}

// Succeed stops the animation and commits a success line.
func (s *Spinner) Succeed(message string) {
	t := s.theme
	s.finish(t.Prompt.Render(t.DoneGlyph) + " " + t.Message.Render(message))
}

// Fail stops the animation and commits a failure line.
func (s *Spinner) Fail(message string) {
	t := s.theme
	s.finish(t.Error.Render(t.ErrorGlyph) + " " + t.Message.Render(message))
}

// Stop stops the animation and commits a neutral line.
func (s *Spinner) Stop(message string) {
	t := s.theme
	s.finish(t.Hint.Render("•") + " " + t.Message.Render(message))
}

// finish performs the single terminal transition.
func (s *Spinner) finish(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	close(s.quit)
	s.surf.Commit([]string{line})
	s.surf.ShowCursor()
}
