package widget

import (
	"context"
	"strconv"

	"github.com/dshills/askstorm/internal/term"
)

// MultiSelectConfig configures a multiple-choice prompt.
type MultiSelectConfig[V comparable] struct {
	Message string
	Options []Option[V]

	// Initial pre-checks the options holding these values.
	Initial []V

	// Required refuses submission with nothing checked.
	Required bool
}

// MultiSelect runs a multiple-choice prompt. Space or tab toggles the
// highlighted option; enter returns the checked values in option
// declaration order, regardless of the order they were checked.
func MultiSelect[V comparable](ctx context.Context, s *Session, cfg MultiSelectConfig[V]) ([]V, error) {
	if len(cfg.Options) == 0 {
		// A required empty choice can never be satisfied; failing here
		// beats an unwinnable re-prompt loop.
		return nil, ErrEmptyOptions
	}
	m := &multiSelectModel[V]{
		s:       s,
		cfg:     cfg,
		checked: make(map[int]bool, len(cfg.Options)),
	}
	for _, v := range cfg.Initial {
		if i := indexOfValue(cfg.Options, v); i >= 0 {
			m.checked[i] = true
		}
	}
	if err := s.run(ctx, m); err != nil {
		return nil, err
	}
	return m.result, nil
}

type multiSelectModel[V comparable] struct {
	s       *Session
	cfg     MultiSelectConfig[V]
	index   int
	checked map[int]bool
	errMsg  string
	result  []V
}

func (m *multiSelectModel[V]) Handle(ev term.Event) status {
	m.errMsg = ""
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
	case term.KeyTab:
		m.checked[m.index] = !m.checked[m.index]
	case term.KeyRune:
		switch ev.Rune {
		case ' ':
			m.checked[m.index] = !m.checked[m.index]
		case 'k':
			m.index = (m.index - 1 + n) % n
		case 'j':
			m.index = (m.index + 1) % n
		case 'a':
			for i := 0; i < n; i++ {
				m.checked[i] = true
			}
		}
	case term.KeyEnter:
		return m.submit()
	}
	return statusContinue
}

// submit collects checked values in declaration order.
func (m *multiSelectModel[V]) submit() status {
	var values []V
	for i, opt := range m.cfg.Options {
		if m.checked[i] {
			values = append(values, opt.Value)
		}
	}
	if m.cfg.Required && len(values) == 0 {
		m.errMsg = "Select at least one option"
		return statusContinue
	}
	m.result = values
	return statusSubmit
}

func (m *multiSelectModel[V]) View() []string {
	lines := []string{m.s.titleLine(m.cfg.Message, "")}
	for i, opt := range m.cfg.Options {
		lines = append(lines, m.s.optionLine(opt.Label, opt.Hint, i == m.index, true, m.checked[i]))
	}
	if m.errMsg != "" {
		lines = append(lines, m.s.errorLine(m.errMsg))
	}
	return lines
}

func (m *multiSelectModel[V]) Summary() []string {
	count := 0
	var labels []string
	for i, opt := range m.cfg.Options {
		if m.checked[i] {
			count++
			if len(labels) < 3 {
				labels = append(labels, opt.Label)
			}
		}
	}
	value := ""
	switch {
	case count == 0:
		value = "none"
	case count <= 3:
		value = join(labels)
	default:
		value = join(labels) + " (+" + strconv.Itoa(count-3) + ")"
	}
	return []string{m.s.summaryLine(m.cfg.Message, value)}
}

func join(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}
