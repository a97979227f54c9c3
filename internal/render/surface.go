package render

import (
	"io"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Surface is the live repaintable region of the terminal.
// The zero value is not usable; construct with New.
type Surface struct {
	mu    sync.Mutex
	out   *termenv.Output
	width int
	live  int
}

// New creates a surface writing to w.
func New(w io.Writer) *Surface {
	return &Surface{out: termenv.NewOutput(w)}
}

// SetWidth sets the terminal width in columns. Painted lines are truncated
// to this width so the recorded line count always matches the physical
// line count. Zero disables truncation.
func (s *Surface) SetWidth(width int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
}

// LiveLines reports the current size of the live region.
func (s *Surface) LiveLines() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live
}

// Paint replaces the live region with lines. The cursor is moved up over
// the previous region, each stale line is cleared and overwritten, and any
// leftover lines from a taller previous region are blanked.
func (s *Surface) Paint(lines []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paint(lines)
	s.live = len(lines)
}

// Commit paints lines and makes them permanent: the next Paint begins a
// new live region below the committed content.
func (s *Surface) Commit(lines []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paint(lines)
	s.live = 0
}

// Clear erases the live region entirely.
func (s *Surface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paint(nil)
	s.live = 0
}

// UpdateLine repaints line i of the live region in place, leaving every
// sibling line untouched. Out-of-range indexes are ignored.
func (s *Surface) UpdateLine(i int, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= s.live {
		return
	}
	up := s.live - i
	s.out.CursorUp(up)
	s.out.WriteString("\r")
	s.out.ClearLine()
	s.out.WriteString(s.fit(text))
	s.out.CursorDown(up)
	s.out.WriteString("\r")
}

// ExtendLive grows the live region by one blank line and returns the new
// line's index. Used by Draft to append lines to an existing region.
func (s *Surface) ExtendLive(text string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out.WriteString("\r")
	s.out.ClearLine()
	s.out.WriteString(s.fit(text))
	s.out.WriteString("\r\n")
	s.live++
	return s.live - 1
}

// HideCursor hides the terminal cursor.
func (s *Surface) HideCursor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out.HideCursor()
}

// ShowCursor restores the terminal cursor.
func (s *Surface) ShowCursor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out.ShowCursor()
}

// paint writes lines over the previous region. Callers hold s.mu.
func (s *Surface) paint(lines []string) {
	if s.live > 0 {
		s.out.CursorUp(s.live)
	}
	for _, line := range lines {
		s.out.WriteString("\r")
		s.out.ClearLine()
		s.out.WriteString(s.fit(line))
		s.out.WriteString("\r\n")
	}
	if extra := s.live - len(lines); extra > 0 {
		for i := 0; i < extra; i++ {
			s.out.WriteString("\r")
			s.out.ClearLine()
			s.out.CursorDown(1)
		}
		s.out.CursorUp(extra)
	}
}

// fit truncates a (possibly styled) line to the terminal width.
func (s *Surface) fit(line string) string {
	if s.width <= 0 {
		return line
	}
	return ansi.Truncate(line, s.width, "")
}
