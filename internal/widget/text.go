package widget

import (
	"context"

	"github.com/dshills/askstorm/internal/term"
	"github.com/dshills/askstorm/validate"
)

// TextConfig configures a free-text prompt.
type TextConfig struct {
	// Message is the prompt question.
	Message string

	// Placeholder is shown dimmed while the buffer is empty.
	Placeholder string

	// Default is submitted when the user presses enter on an empty buffer.
	Default string

	// Validate gates submission; failures re-prompt with an inline message.
	Validate validate.StringValidator
}

// Text runs a free-text prompt and returns the submitted string.
func Text(ctx context.Context, s *Session, cfg TextConfig) (string, error) {
	m := &textModel{s: s, cfg: cfg}
	if err := s.run(ctx, m); err != nil {
		return "", err
	}
	return m.result, nil
}

type textModel struct {
	s      *Session
	cfg    TextConfig
	buf    buffer
	errMsg string
	result string
}

func (m *textModel) Handle(ev term.Event) status {
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
		value := m.buf.String()
		if value == "" && m.cfg.Default != "" {
			value = m.cfg.Default
		}
		if err := m.cfg.Validate.Validate(value); err != nil {
			m.errMsg = err.Error()
			return statusContinue
		}
		m.result = value
		return statusSubmit
	}
	return statusContinue
}

func (m *textModel) View() []string {
	t := m.s.Theme
	var value string
	switch {
	case m.buf.Empty() && m.cfg.Placeholder != "":
		value = t.Cursor.Render(" ") + t.Placeholder.Render(m.cfg.Placeholder)
	default:
		value = m.buf.Render(t.Input, t.Cursor)
	}
	lines := []string{m.s.titleLine(m.cfg.Message, value)}
	if m.errMsg != "" {
		lines = append(lines, m.s.errorLine(m.errMsg))
	}
	return lines
}

func (m *textModel) Summary() []string {
	return []string{m.s.summaryLine(m.cfg.Message, m.result)}
}

// PasswordConfig configures a masked text prompt.
type PasswordConfig struct {
	Message string

	// Mask is the glyph rendered per typed character; '•' when zero.
	Mask rune

	Validate validate.StringValidator
}

// Password runs a masked prompt. The real content is kept in the buffer;
// only the rendering is masked.
func Password(ctx context.Context, s *Session, cfg PasswordConfig) (string, error) {
	if cfg.Mask == 0 {
		cfg.Mask = '•'
	}
	m := &passwordModel{s: s, cfg: cfg}
	if err := s.run(ctx, m); err != nil {
		return "", err
	}
	return m.result, nil
}

type passwordModel struct {
	s      *Session
	cfg    PasswordConfig
	buf    buffer
	errMsg string
	result string
}

func (m *passwordModel) Handle(ev term.Event) status {
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
		value := m.buf.String()
		if err := m.cfg.Validate.Validate(value); err != nil {
			m.errMsg = err.Error()
			return statusContinue
		}
		m.result = value
		return statusSubmit
	}
	return statusContinue
}

func (m *passwordModel) View() []string {
	t := m.s.Theme
	value := m.buf.RenderMasked(m.cfg.Mask, t.Input, t.Cursor)
	lines := []string{m.s.titleLine(m.cfg.Message, value)}
	if m.errMsg != "" {
		lines = append(lines, m.s.errorLine(m.errMsg))
	}
	return lines
}

func (m *passwordModel) Summary() []string {
	masked := ""
	if m.result != "" {
		masked = "••••••"
	}
	return []string{m.s.summaryLine(m.cfg.Message, masked)}
}
