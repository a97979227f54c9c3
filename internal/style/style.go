// Package style defines the visual theme shared by every widget: lipgloss
// styles for each rendered element plus the glyph set and spinner frames.
package style

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme controls how widgets and live primitives render.
type Theme struct {
	Prompt      lipgloss.Style // prefix glyph of an active prompt
	Message     lipgloss.Style // the prompt message text
	Input       lipgloss.Style // typed input
	Cursor      lipgloss.Style // the character cell under the edit cursor
	Placeholder lipgloss.Style // placeholder shown for an empty buffer
	Error       lipgloss.Style // inline validation errors
	Hint        lipgloss.Style // option hints and help text
	Option      lipgloss.Style // non-highlighted options
	Selected    lipgloss.Style // highlighted option
	Done        lipgloss.Style // committed summary line value
	Spinner     lipgloss.Style // spinner animation glyph

	PromptGlyph    string
	DoneGlyph      string
	ErrorGlyph     string
	PointerGlyph   string
	CheckedGlyph   string
	UncheckedGlyph string

	SpinnerFrames   []string
	SpinnerInterval time.Duration
}

// Default returns the stock theme. The hint shade is derived from the
// accent color rather than hard-coded, so accent overrides keep a
// consistent ramp.
func Default() *Theme {
	const accent = "#5f87ff"
	hint := dim(accent, 0.55)

	return &Theme{
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(accent)),
		Message:     lipgloss.NewStyle().Bold(true),
		Input:       lipgloss.NewStyle(),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("#d75f5f")),
		Hint:        lipgloss.NewStyle().Foreground(lipgloss.Color(hint)),
		Option:      lipgloss.NewStyle(),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		Done:        lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Spinner:     lipgloss.NewStyle().Foreground(lipgloss.Color(accent)),

		PromptGlyph:    "?",
		DoneGlyph:      "✔",
		ErrorGlyph:     "✖",
		PointerGlyph:   "❯",
		CheckedGlyph:   "◉",
		UncheckedGlyph: "◯",

		SpinnerFrames:   []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		SpinnerInterval: 80 * time.Millisecond,
	}
}

// dim blends a hex color toward black in Luv space and returns the result
// as a hex string.
func dim(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	black := colorful.Color{}
	return c.BlendLuv(black, amount).Hex()
}
