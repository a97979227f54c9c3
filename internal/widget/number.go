package widget

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dshills/askstorm/internal/term"
	"github.com/dshills/askstorm/validate"
)

// NumberConfig configures a numeric prompt.
type NumberConfig struct {
	Message string

	// Default is submitted on an empty buffer when set.
	Default *float64

	// Min and Max bound the accepted value when set. Violations re-prompt
	// with an inline message.
	Min *float64
	Max *float64

	// Step snaps the submitted value to the nearest increment counted
	// from Min (or from zero when Min is unset). Zero disables snapping.
	Step float64

	// Decimal permits a fractional part. When false the input grammar is
	// integer-only.
	Decimal bool

	// Validate runs after bounds and step are applied.
	Validate validate.NumberValidator
}

// Number runs a numeric prompt and returns the parsed value.
func Number(ctx context.Context, s *Session, cfg NumberConfig) (float64, error) {
	if cfg.Min != nil && cfg.Max != nil && *cfg.Min > *cfg.Max {
		return 0, fmt.Errorf("%w: min %s above max %s", ErrInvalidConfig,
			formatFloat(*cfg.Min), formatFloat(*cfg.Max))
	}
	if cfg.Step < 0 {
		return 0, fmt.Errorf("%w: negative step", ErrInvalidConfig)
	}
	m := &numberModel{s: s, cfg: cfg}
	if err := s.run(ctx, m); err != nil {
		return 0, err
	}
	return m.result, nil
}

type numberModel struct {
	s      *Session
	cfg    NumberConfig
	buf    buffer
	errMsg string
	result float64
}

func (m *numberModel) Handle(ev term.Event) status {
	m.errMsg = ""
	switch ev.Key {
	case term.KeyRune:
		// Characters that would break the numeric grammar are ignored,
		// not inserted.
		candidate := m.buf.String()[:m.buf.cursor] + string(ev.Rune) + m.buf.String()[m.buf.cursor:]
		if numberPrefix(candidate, m.cfg.Decimal) {
			m.buf.Insert(ev.Rune)
		}
	case term.KeyBackspace:
		m.buf.Backspace()
	case term.KeyDelete:
		m.buf.Delete()
	case term.KeyLeft:
		m.buf.Left()
	case term.KeyRight:
		m.buf.Right()
	case term.KeyHome:
		m.buf.Home()
	case term.KeyEnd:
		m.buf.End()
	case term.KeyEnter:
		return m.submit()
	}
	return statusContinue
}

func (m *numberModel) submit() status {
	raw := m.buf.String()
	var value float64
	switch {
	case raw == "" && m.cfg.Default != nil:
		value = *m.cfg.Default
	default:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			m.errMsg = "Enter a number"
			return statusContinue
		}
		value = v
	}

	if m.cfg.Step > 0 {
		origin := 0.0
		if m.cfg.Min != nil {
			origin = *m.cfg.Min
		}
		value = origin + math.Round((value-origin)/m.cfg.Step)*m.cfg.Step
	}
	if m.cfg.Min != nil && value < *m.cfg.Min {
		m.errMsg = "Must be at least " + formatFloat(*m.cfg.Min)
		return statusContinue
	}
	if m.cfg.Max != nil && value > *m.cfg.Max {
		m.errMsg = "Must be at most " + formatFloat(*m.cfg.Max)
		return statusContinue
	}
	if err := m.cfg.Validate.Validate(value); err != nil {
		m.errMsg = err.Error()
		return statusContinue
	}
	m.result = value
	return statusSubmit
}

func (m *numberModel) View() []string {
	t := m.s.Theme
	var value string
	if m.buf.Empty() && m.cfg.Default != nil {
		value = t.Cursor.Render(" ") + t.Placeholder.Render(formatFloat(*m.cfg.Default))
	} else {
		value = m.buf.Render(t.Input, t.Cursor)
	}
	lines := []string{m.s.titleLine(m.cfg.Message, value)}
	if m.errMsg != "" {
		lines = append(lines, m.s.errorLine(m.errMsg))
	}
	return lines
}

func (m *numberModel) Summary() []string {
	return []string{m.s.summaryLine(m.cfg.Message, formatFloat(m.result))}
}

// numberPrefix reports whether s is a valid prefix of a number in the
// configured grammar: optional leading minus, digits, and at most one
// decimal point when decimals are allowed.
func numberPrefix(s string, decimal bool) bool {
	if s == "" {
		return true
	}
	if s[0] == '-' {
		s = s[1:]
	}
	dots := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' && decimal:
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ListConfig configures a delimited-list prompt.
type ListConfig struct {
	Message string

	// Separator splits the submitted buffer; "," when empty.
	Separator string

	// MinItems and MaxItems bound the item count at submit time.
	// Zero means unbounded.
	MinItems int
	MaxItems int

	// Validate runs against every parsed item.
	Validate validate.StringValidator
}

// List runs a delimited-list prompt: the buffer is split on the separator,
// items are trimmed, empties dropped, and count bounds enforced at submit.
func List(ctx context.Context, s *Session, cfg ListConfig) ([]string, error) {
	if cfg.MinItems > 0 && cfg.MaxItems > 0 && cfg.MinItems > cfg.MaxItems {
		return nil, fmt.Errorf("%w: min items %d above max %d", ErrInvalidConfig,
			cfg.MinItems, cfg.MaxItems)
	}
	if cfg.Separator == "" {
		cfg.Separator = ","
	}
	m := &listModel{s: s, cfg: cfg}
	if err := s.run(ctx, m); err != nil {
		return nil, err
	}
	return m.result, nil
}

type listModel struct {
	s      *Session
	cfg    ListConfig
	buf    buffer
	errMsg string
	result []string
}

func (m *listModel) Handle(ev term.Event) status {
	m.errMsg = ""
	switch ev.Key {
	case term.KeyRune:
		m.buf.Insert(ev.Rune)
	case term.KeyBackspace:
		m.buf.Backspace()
	case term.KeyDelete:
		m.buf.Delete()
	case term.KeyLeft:
		m.buf.Left()
	case term.KeyRight:
		m.buf.Right()
	case term.KeyHome:
		m.buf.Home()
	case term.KeyEnd:
		m.buf.End()
	case term.KeyEnter:
		items := splitList(m.buf.String(), m.cfg.Separator)
		if m.cfg.MinItems > 0 && len(items) < m.cfg.MinItems {
			m.errMsg = "Enter at least " + strconv.Itoa(m.cfg.MinItems) + " items"
			return statusContinue
		}
		if m.cfg.MaxItems > 0 && len(items) > m.cfg.MaxItems {
			m.errMsg = "Enter at most " + strconv.Itoa(m.cfg.MaxItems) + " items"
			return statusContinue
		}
		for _, item := range items {
			if err := m.cfg.Validate.Validate(item); err != nil {
				m.errMsg = item + ": " + err.Error()
				return statusContinue
			}
		}
		m.result = items
		return statusSubmit
	}
	return statusContinue
}

func (m *listModel) View() []string {
	t := m.s.Theme
	value := m.buf.Render(t.Input, t.Cursor)
	lines := []string{m.s.titleLine(m.cfg.Message, value)}
	if m.errMsg != "" {
		lines = append(lines, m.s.errorLine(m.errMsg))
	}
	return lines
}

func (m *listModel) Summary() []string {
	return []string{m.s.summaryLine(m.cfg.Message, strings.Join(m.result, ", "))}
}

// splitList parses a buffer into trimmed, non-empty items.
func splitList(s, sep string) []string {
	var items []string
	for _, part := range strings.Split(s, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}
