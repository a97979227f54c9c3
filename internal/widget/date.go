package widget

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/askstorm/internal/term"
)

// DateConfig configures a calendar date prompt.
type DateConfig struct {
	Message string

	// Default is the initially selected day; today when zero.
	Default time.Time

	// Min and Max bound the selectable range when non-zero. Moves that
	// would leave the range are rejected with an inline hint, and enter
	// on an out-of-range day does not submit.
	Min time.Time
	Max time.Time

	// Format renders the committed value; "2006-01-02" when empty.
	Format string
}

// Date runs a calendar prompt: left/right move by day, up/down by week,
// page-up/page-down by month; enter submits the selected date.
func Date(ctx context.Context, s *Session, cfg DateConfig) (time.Time, error) {
	if !cfg.Min.IsZero() && !cfg.Max.IsZero() && midnight(cfg.Min).After(midnight(cfg.Max)) {
		return time.Time{}, fmt.Errorf("%w: min date after max date", ErrInvalidConfig)
	}
	if cfg.Format == "" {
		cfg.Format = "2006-01-02"
	}
	sel := cfg.Default
	if sel.IsZero() {
		sel = time.Now()
	}
	sel = midnight(sel)

	m := &dateModel{s: s, cfg: cfg, sel: sel}
	if err := s.run(ctx, m); err != nil {
		return time.Time{}, err
	}
	return m.sel, nil
}

type dateModel struct {
	s    *Session
	cfg  DateConfig
	sel  time.Time
	hint string
}

// move applies a day offset (or month offset when months is set),
// rejecting targets outside the configured bounds.
func (m *dateModel) move(days, months int) {
	target := m.sel.AddDate(0, months, days)
	if !m.inBounds(target) {
		m.hint = "Date must be between " + m.boundsLabel()
		return
	}
	m.sel = target
}

func (m *dateModel) inBounds(d time.Time) bool {
	if !m.cfg.Min.IsZero() && d.Before(midnight(m.cfg.Min)) {
		return false
	}
	if !m.cfg.Max.IsZero() && d.After(midnight(m.cfg.Max)) {
		return false
	}
	return true
}

func (m *dateModel) boundsLabel() string {
	minLabel, maxLabel := "-", "-"
	if !m.cfg.Min.IsZero() {
		minLabel = m.cfg.Min.Format(m.cfg.Format)
	}
	if !m.cfg.Max.IsZero() {
		maxLabel = m.cfg.Max.Format(m.cfg.Format)
	}
	return minLabel + " and " + maxLabel
}

func (m *dateModel) Handle(ev term.Event) status {
	m.hint = ""
	switch ev.Key {
	case term.KeyLeft:
		m.move(-1, 0)
	case term.KeyRight:
		m.move(1, 0)
	case term.KeyUp:
		m.move(-7, 0)
	case term.KeyDown:
		m.move(7, 0)
	case term.KeyPageUp:
		m.move(0, -1)
	case term.KeyPageDown:
		m.move(0, 1)
	case term.KeyRune:
		switch ev.Rune {
		case 'h':
			m.move(-1, 0)
		case 'l':
			m.move(1, 0)
		case 'k':
			m.move(-7, 0)
		case 'j':
			m.move(7, 0)
		}
	case term.KeyEnter:
		if !m.inBounds(m.sel) {
			m.hint = "Date must be between " + m.boundsLabel()
			return statusContinue
		}
		return statusSubmit
	}
	return statusContinue
}

func (m *dateModel) View() []string {
	t := m.s.Theme
	lines := []string{m.s.titleLine(m.cfg.Message, t.Hint.Render(m.sel.Format(m.cfg.Format)))}

	header := m.sel.Format("January 2006")
	lines = append(lines, "  "+t.Message.Render(center(header, 20)))
	lines = append(lines, "  "+t.Hint.Render("Su Mo Tu We Th Fr Sa"))

	first := time.Date(m.sel.Year(), m.sel.Month(), 1, 0, 0, 0, 0, m.sel.Location())
	daysIn := first.AddDate(0, 1, -1).Day()

	week := make([]string, 7)
	for i := range week {
		week[i] = "  "
	}
	weekday := int(first.Weekday())
	var rows []string
	for day := 1; day <= daysIn; day++ {
		cell := fmt.Sprintf("%2d", day)
		current := time.Date(m.sel.Year(), m.sel.Month(), day, 0, 0, 0, 0, m.sel.Location())
		switch {
		case day == m.sel.Day():
			cell = t.Selected.Render(cell)
		case !m.inBounds(current):
			cell = t.Placeholder.Render(cell)
		}
		week[weekday] = cell
		weekday++
		if weekday == 7 || day == daysIn {
			rows = append(rows, "  "+strings.Join(week, " "))
			for i := range week {
				week[i] = "  "
			}
			weekday = 0
		}
	}
	lines = append(lines, rows...)

	if m.hint != "" {
		lines = append(lines, m.s.errorLine(m.hint))
	}
	return lines
}

func (m *dateModel) Summary() []string {
	return []string{m.s.summaryLine(m.cfg.Message, m.sel.Format(m.cfg.Format))}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// center pads s to width, accounting for display width.
func center(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
