package widget

import (
	"context"

	"github.com/dshills/askstorm/internal/term"
)

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Message string

	// Default is the initial state, submitted by a bare enter.
	Default bool
}

// Confirm runs a yes/no prompt. Arrows and y/n toggle the state; enter
// submits it.
func Confirm(ctx context.Context, s *Session, cfg ConfirmConfig) (bool, error) {
	m := &binaryModel{
		s:       s,
		message: cfg.Message,
		state:   cfg.Default,
		onLabel: "Yes",
		offLabel: "No",
	}
	if err := s.run(ctx, m); err != nil {
		return false, err
	}
	return m.state, nil
}

// ToggleConfig configures an on/off prompt with custom labels.
type ToggleConfig struct {
	Message string

	// OnLabel and OffLabel default to "On" and "Off".
	OnLabel  string
	OffLabel string

	Default bool
}

// Toggle runs an on/off prompt and returns the final state.
func Toggle(ctx context.Context, s *Session, cfg ToggleConfig) (bool, error) {
	if cfg.OnLabel == "" {
		cfg.OnLabel = "On"
	}
	if cfg.OffLabel == "" {
		cfg.OffLabel = "Off"
	}
	m := &binaryModel{
		s:        s,
		message:  cfg.Message,
		state:    cfg.Default,
		onLabel:  cfg.OnLabel,
		offLabel: cfg.OffLabel,
	}
	if err := s.run(ctx, m); err != nil {
		return false, err
	}
	return m.state, nil
}

// binaryModel backs both confirm and toggle: a boolean flipped by arrows
// or shortcut keys, submitted by enter.
type binaryModel struct {
	s        *Session
	message  string
	state    bool
	onLabel  string
	offLabel string
}

func (m *binaryModel) Handle(ev term.Event) status {
	switch ev.Key {
	case term.KeyLeft, term.KeyRight, term.KeyUp, term.KeyDown, term.KeyTab:
		m.state = !m.state
	case term.KeyRune:
		switch ev.Rune {
		case 'y', 'Y', 'h', 'H':
			m.state = true
		case 'n', 'N', 'l', 'L':
			m.state = false
		case ' ':
			m.state = !m.state
		}
	case term.KeyEnter:
		return statusSubmit
	}
	return statusContinue
}

func (m *binaryModel) View() []string {
	t := m.s.Theme
	on, off := t.Option.Render(m.onLabel), t.Option.Render(m.offLabel)
	if m.state {
		on = t.Selected.Render(t.PointerGlyph + " " + m.onLabel)
	} else {
		off = t.Selected.Render(t.PointerGlyph + " " + m.offLabel)
	}
	return []string{m.s.titleLine(m.message, on+t.Hint.Render(" / ")+off)}
}

func (m *binaryModel) Summary() []string {
	label := m.offLabel
	if m.state {
		label = m.onLabel
	}
	return []string{m.s.summaryLine(m.message, label)}
}
