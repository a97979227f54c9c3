package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/askstorm"
)

func TestApplyThemeFile(t *testing.T) {
	src := `
accent = "#ff8700"

[glyphs]
prompt = ">"
done = "+"

[spinner]
frames = ["-", "\\", "|", "/"]
interval_ms = 120
`
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	theme := askstorm.DefaultTheme()
	if err := applyThemeFile(theme, path); err != nil {
		t.Fatalf("applyThemeFile() error = %v", err)
	}

	if theme.PromptGlyph != ">" {
		t.Errorf("PromptGlyph = %q, want >", theme.PromptGlyph)
	}
	if theme.DoneGlyph != "+" {
		t.Errorf("DoneGlyph = %q, want +", theme.DoneGlyph)
	}
	if theme.ErrorGlyph == "" || theme.PointerGlyph == "" {
		t.Errorf("unset glyphs lost their stock values")
	}
	if len(theme.SpinnerFrames) != 4 {
		t.Errorf("SpinnerFrames = %v, want 4 custom frames", theme.SpinnerFrames)
	}
	if theme.SpinnerInterval != 120*time.Millisecond {
		t.Errorf("SpinnerInterval = %v, want 120ms", theme.SpinnerInterval)
	}
}

func TestApplyThemeFileBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("accent = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := applyThemeFile(askstorm.DefaultTheme(), path); err == nil {
		t.Fatal("applyThemeFile() = nil error on malformed file")
	}
}

func TestApplyThemeFileMissing(t *testing.T) {
	if err := applyThemeFile(askstorm.DefaultTheme(), "/nonexistent/theme.toml"); err == nil {
		t.Fatal("applyThemeFile() = nil error on missing file")
	}
}
