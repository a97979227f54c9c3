package widget

import (
	"context"

	"github.com/dshills/askstorm/internal/term"
)

// AutocompleteConfig configures a fuzzy-filtered choice prompt.
type AutocompleteConfig[V comparable] struct {
	Message string
	Options []Option[V]

	// Filter overrides the default match. The default accepts an option
	// when the input is a case-folded substring or in-order subsequence
	// of its label; empty input matches everything.
	Filter func(input string, opt Option[V]) bool

	// MaxVisible caps the rendered option rows; 7 when zero. Filtering
	// still runs over the full set, and the highlight wraps within the
	// visible rows only.
	MaxVisible int
}

// Autocomplete runs an editable filter over the option list. Every
// keystroke re-filters; the highlight resets to the top match whenever the
// filtered set changes; enter submits the highlighted match, or re-prompts
// if nothing matches.
func Autocomplete[V comparable](ctx context.Context, s *Session, cfg AutocompleteConfig[V]) (V, error) {
	var zero V
	if len(cfg.Options) == 0 {
		return zero, ErrEmptyOptions
	}
	if cfg.MaxVisible <= 0 {
		cfg.MaxVisible = 7
	}
	m := &autocompleteModel[V]{s: s, cfg: cfg}
	m.refilter()
	if err := s.run(ctx, m); err != nil {
		return zero, err
	}
	return m.result, nil
}

type autocompleteModel[V comparable] struct {
	s         *Session
	cfg       AutocompleteConfig[V]
	buf       buffer
	filtered  []int // option indexes, display order
	highlight int   // position within filtered
	errMsg    string
	result    V
}

func (m *autocompleteModel[V]) match(input string, opt Option[V]) bool {
	if m.cfg.Filter != nil {
		return m.cfg.Filter(input, opt)
	}
	return fuzzyMatch(input, opt.Label)
}

// refilter recomputes the visible set from the current buffer.
func (m *autocompleteModel[V]) refilter() {
	input := m.buf.String()
	var matched []int
	for i, opt := range m.cfg.Options {
		if m.match(input, opt) {
			matched = append(matched, i)
		}
	}
	ranked := rankMatches(input, m.cfg.Options, matched)
	if !sameIndexes(ranked, m.filtered) {
		m.highlight = 0
	}
	m.filtered = ranked
}

func (m *autocompleteModel[V]) Handle(ev term.Event) status {
	m.errMsg = ""
	switch ev.Key {
	case term.KeyRune:
		m.buf.Insert(ev.Rune)
		m.refilter()
	case term.KeyBackspace:
		m.buf.Backspace()
		m.refilter()
	case term.KeyDelete:
		m.buf.Delete()
		m.refilter()
	case term.KeyLeft:
		m.buf.Left()
	case term.KeyRight:
		m.buf.Right()
	case term.KeyHome:
		m.buf.Home()
	case term.KeyEnd:
		m.buf.End()
	case term.KeyUp:
		if n := m.visibleCount(); n > 0 {
			m.highlight = (m.highlight - 1 + n) % n
		}
	case term.KeyDown, term.KeyTab:
		if n := m.visibleCount(); n > 0 {
			m.highlight = (m.highlight + 1) % n
		}
	case term.KeyEnter:
		if len(m.filtered) == 0 {
			m.errMsg = "No matching option"
			return statusContinue
		}
		m.result = m.cfg.Options[m.filtered[m.highlight]].Value
		return statusSubmit
	}
	return statusContinue
}

// visibleCount is the number of matched rows the option window shows.
// The highlight never leaves it; an invisible option must not be
// selectable.
func (m *autocompleteModel[V]) visibleCount() int {
	if len(m.filtered) > m.cfg.MaxVisible {
		return m.cfg.MaxVisible
	}
	return len(m.filtered)
}

func (m *autocompleteModel[V]) View() []string {
	t := m.s.Theme
	lines := []string{m.s.titleLine(m.cfg.Message, m.buf.Render(t.Input, t.Cursor))}

	visible := m.filtered
	if len(visible) > m.cfg.MaxVisible {
		visible = visible[:m.cfg.MaxVisible]
	}
	for pos, idx := range visible {
		opt := m.cfg.Options[idx]
		lines = append(lines, m.s.optionLine(opt.Label, opt.Hint, pos == m.highlight, false, false))
	}
	if len(m.filtered) == 0 {
		lines = append(lines, t.Hint.Render("  no matches"))
	}
	if m.errMsg != "" {
		lines = append(lines, m.s.errorLine(m.errMsg))
	}
	return lines
}

func (m *autocompleteModel[V]) Summary() []string {
	label := ""
	if len(m.filtered) > 0 {
		label = m.cfg.Options[m.filtered[m.highlight]].Label
	}
	return []string{m.s.summaryLine(m.cfg.Message, label)}
}

func sameIndexes(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
