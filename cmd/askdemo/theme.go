package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/askstorm"
)

// themeFile is the TOML shape accepted by -theme. Every field is optional;
// unset fields keep the stock theme's values.
type themeFile struct {
	Accent     string `toml:"accent"`
	ErrorColor string `toml:"error_color"`

	Glyphs struct {
		Prompt    string `toml:"prompt"`
		Done      string `toml:"done"`
		Error     string `toml:"error"`
		Pointer   string `toml:"pointer"`
		Checked   string `toml:"checked"`
		Unchecked string `toml:"unchecked"`
	} `toml:"glyphs"`

	Spinner struct {
		Frames     []string `toml:"frames"`
		IntervalMS int      `toml:"interval_ms"`
	} `toml:"spinner"`
}

// applyThemeFile overlays a TOML theme file onto theme.
func applyThemeFile(theme *askstorm.Theme, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var tf themeFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if tf.Accent != "" {
		accent := lipgloss.Color(tf.Accent)
		theme.Prompt = theme.Prompt.Foreground(accent)
		theme.Selected = theme.Selected.Foreground(accent)
		theme.Spinner = theme.Spinner.Foreground(accent)
	}
	if tf.ErrorColor != "" {
		theme.Error = theme.Error.Foreground(lipgloss.Color(tf.ErrorColor))
	}

	g := tf.Glyphs
	if g.Prompt != "" {
		theme.PromptGlyph = g.Prompt
	}
	if g.Done != "" {
		theme.DoneGlyph = g.Done
	}
	if g.Error != "" {
		theme.ErrorGlyph = g.Error
	}
	if g.Pointer != "" {
		theme.PointerGlyph = g.Pointer
	}
	if g.Checked != "" {
		theme.CheckedGlyph = g.Checked
	}
	if g.Unchecked != "" {
		theme.UncheckedGlyph = g.Unchecked
	}

	if len(tf.Spinner.Frames) > 0 {
		theme.SpinnerFrames = tf.Spinner.Frames
	}
	if tf.Spinner.IntervalMS > 0 {
		theme.SpinnerInterval = time.Duration(tf.Spinner.IntervalMS) * time.Millisecond
	}
	return nil
}
