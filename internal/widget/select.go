package widget

import (
	"context"
	"strings"

	"github.com/dshills/askstorm/internal/term"
)

// SelectConfig configures a single-choice prompt.
type SelectConfig[V comparable] struct {
	Message string
	Options []Option[V]

	// Default sets the initial highlight to the option holding this
	// value, when present.
	Default *V
}

// Select runs a single-choice prompt. Up/down move the highlight with
// wraparound; enter returns the highlighted option's value.
func Select[V comparable](ctx context.Context, s *Session, cfg SelectConfig[V]) (V, error) {
	var zero V
	if len(cfg.Options) == 0 {
		return zero, ErrEmptyOptions
	}
	m := &selectModel[V]{s: s, cfg: cfg}
	if cfg.Default != nil {
		if i := indexOfValue(cfg.Options, *cfg.Default); i >= 0 {
			m.index = i
		}
	}
	if err := s.run(ctx, m); err != nil {
		return zero, err
	}
	return cfg.Options[m.index].Value, nil
}

type selectModel[V comparable] struct {
	s     *Session
	cfg   SelectConfig[V]
	index int
}

func (m *selectModel[V]) Handle(ev term.Event) status {
	n := len(m.cfg.Options)
	switch ev.Key {
	case term.KeyUp:
		m.index = (m.index - 1 + n) % n
	case term.KeyDown:
		m.index = (m.index + 1) % n
	case term.KeyHome:
		m.index = 0
	case term.KeyEnd:
		m.index = n - 1
	case term.KeyRune:
		switch ev.Rune {
		case 'k':
			m.index = (m.index - 1 + n) % n
		case 'j':
			m.index = (m.index + 1) % n
		}
	case term.KeyEnter:
		return statusSubmit
	}
	return statusContinue
}

func (m *selectModel[V]) View() []string {
	lines := []string{m.s.titleLine(m.cfg.Message, "")}
	for i, opt := range m.cfg.Options {
		lines = append(lines, m.s.optionLine(opt.Label, opt.Hint, i == m.index, false, false))
	}
	return lines
}

func (m *selectModel[V]) Summary() []string {
	return []string{m.s.summaryLine(m.cfg.Message, m.cfg.Options[m.index].Label)}
}

// optionLine renders one row of an option list.
func (s *Session) optionLine(label, hint string, highlighted, checkable, checked bool) string {
	t := s.Theme
	var b strings.Builder
	if highlighted {
		b.WriteString(t.Selected.Render(t.PointerGlyph))
	} else {
		b.WriteString(" ")
	}
	b.WriteString(" ")
	if checkable {
		glyph := t.UncheckedGlyph
		if checked {
			glyph = t.CheckedGlyph
		}
		if checked {
			b.WriteString(t.Selected.Render(glyph))
		} else {
			b.WriteString(t.Option.Render(glyph))
		}
		b.WriteString(" ")
	}
	if highlighted {
		b.WriteString(t.Selected.Render(label))
	} else {
		b.WriteString(t.Option.Render(label))
	}
	if hint != "" {
		b.WriteString(" ")
		b.WriteString(t.Hint.Render("(" + hint + ")"))
	}
	return b.String()
}
