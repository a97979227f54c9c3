package widget

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/askstorm/internal/term"
	"github.com/dshills/askstorm/validate"
)

// FilePathConfig configures a path prompt with completion.
type FilePathConfig struct {
	Message string

	// Initial seeds the edit buffer, typically a directory to start from.
	Initial string

	// DirOnly restricts completion candidates to directories and appends
	// a path separator on completion.
	DirOnly bool

	Validate validate.StringValidator
}

// FilePath runs a path prompt. Tab or arrow-down cycles completion
// candidates computed from the directory portion of the buffer and the
// remaining segment prefix; any edit resets the candidate cycle.
func FilePath(ctx context.Context, s *Session, cfg FilePathConfig) (string, error) {
	m := &filePathModel{s: s, cfg: cfg}
	m.buf.Set(cfg.Initial)
	if err := s.run(ctx, m); err != nil {
		return "", err
	}
	return m.result, nil
}

type filePathModel struct {
	s   *Session
	cfg FilePathConfig
	buf buffer

	candidates []string // completions for the current buffer prefix
	cycle      int      // next candidate to apply, -1 when stale
	errMsg     string
	result     string
}

func (m *filePathModel) Handle(ev term.Event) status {
	m.errMsg = ""
	switch ev.Key {
	case term.KeyRune:
		m.buf.Insert(ev.Rune)
		m.invalidate()
	case term.KeyBackspace:
		m.buf.Backspace()
		m.invalidate()
	case term.KeyDelete:
		m.buf.Delete()
		m.invalidate()
	case term.KeyLeft:
		m.buf.Left()
	case term.KeyRight:
		m.buf.Right()
	case term.KeyHome:
		m.buf.Home()
	case term.KeyEnd:
		m.buf.End()
	case term.KeyTab, term.KeyDown:
		m.complete()
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

// invalidate marks the candidate list stale after any edit.
func (m *filePathModel) invalidate() {
	m.candidates = nil
	m.cycle = 0
}

// complete applies the next completion candidate, computing the candidate
// list from the current buffer on the first press.
func (m *filePathModel) complete() {
	if m.candidates == nil {
		m.candidates = m.computeCandidates(m.buf.String())
	}
	if len(m.candidates) == 0 {
		return
	}
	m.buf.Set(m.candidates[m.cycle%len(m.candidates)])
	m.cycle++
}

// computeCandidates lists the directory portion of input and keeps entries
// whose names start with the remaining segment prefix.
func (m *filePathModel) computeCandidates(input string) []string {
	dir, prefix := splitPathPrefix(input)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if m.cfg.DirOnly && !e.IsDir() {
			continue
		}
		full := filepath.Join(dir, name)
		if e.IsDir() {
			full += string(filepath.Separator)
		}
		out = append(out, full)
	}
	return out
}

// splitPathPrefix separates input into the directory to list and the
// name prefix to filter by.
func splitPathPrefix(input string) (dir, prefix string) {
	if input == "" {
		return ".", ""
	}
	if strings.HasSuffix(input, string(filepath.Separator)) {
		return filepath.Clean(input), ""
	}
	return filepath.Dir(input), filepath.Base(input)
}

func (m *filePathModel) View() []string {
	t := m.s.Theme
	lines := []string{m.s.titleLine(m.cfg.Message, m.buf.Render(t.Input, t.Cursor))}
	if m.errMsg != "" {
		lines = append(lines, m.s.errorLine(m.errMsg))
	}
	return lines
}

func (m *filePathModel) Summary() []string {
	return []string{m.s.summaryLine(m.cfg.Message, m.result)}
}
