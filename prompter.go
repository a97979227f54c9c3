package askstorm

import (
	"context"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/dshills/askstorm/internal/render"
	"github.com/dshills/askstorm/internal/style"
	"github.com/dshills/askstorm/internal/term"
	"github.com/dshills/askstorm/internal/widget"
)

// defaultWidth is used when the output is not a sizable terminal.
const defaultWidth = 80

// Options configures a Prompter. The zero value prompts on stdin/stdout
// with the stock theme.
type Options struct {
	// In is the key input stream; os.Stdin when nil. An *os.File must be
	// an interactive terminal.
	In io.Reader

	// Out receives all rendering; os.Stdout when nil.
	Out io.Writer

	// Theme overrides colors and glyphs.
	Theme *Theme

	// EscDelay is the window for assembling escape sequences after a
	// lone ESC byte; term.DefaultEscDelay when zero.
	EscDelay time.Duration
}

// Prompter runs prompts against one pair of streams. Methods may be
// called sequentially; no two prompts run at once.
//
// The terminal is acquired on the first prompt and held across prompts
// with raw mode suspended in between, so type-ahead entered between
// prompts is not lost. Close releases it.
type Prompter struct {
	in       io.Reader
	out      io.Writer
	theme    *style.Theme
	escDelay time.Duration
	term     *term.Terminal
}

// New builds a Prompter, filling unset options with defaults.
func New(opts Options) *Prompter {
	p := &Prompter{
		in:       opts.In,
		out:      opts.Out,
		theme:    opts.Theme,
		escDelay: opts.EscDelay,
	}
	if p.in == nil {
		p.in = os.Stdin
	}
	if p.out == nil {
		p.out = os.Stdout
	}
	if p.theme == nil {
		p.theme = style.Default()
	}
	return p
}

// Default prompts on stdin/stdout with the stock theme. The package-level
// prompt functions delegate to it.
var Default = New(Options{})

// acquire raws the terminal, opening it on the first prompt and resuming
// the held one afterwards.
func (p *Prompter) acquire() (*term.Terminal, error) {
	if p.term != nil {
		if err := p.term.Resume(); err != nil {
			return nil, err
		}
		return p.term, nil
	}
	tm, err := term.OpenWithDelay(p.in, p.escDelay)
	if err != nil {
		return nil, err
	}
	p.term = tm
	return tm, nil
}

// open acquires the terminal for one prompt. The returned context is
// additionally cancelled by SIGINT; the release func restores the
// terminal mode.
func (p *Prompter) open(ctx context.Context) (*widget.Session, context.Context, func(), error) {
	tm, err := p.acquire()
	if err != nil {
		return nil, nil, nil, err
	}
	surf := render.New(p.out)
	surf.SetWidth(tm.Width(defaultWidth))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	s := &widget.Session{Term: tm, Surf: surf, Theme: p.theme}
	return s, ctx, func() {
		stop()
		_ = tm.Suspend()
	}, nil
}

// Close releases the held terminal. Further prompts reacquire it.
func (p *Prompter) Close() error {
	if p.term == nil {
		return nil
	}
	err := p.term.Close()
	p.term = nil
	return err
}

// Text prompts for a line of text.
func (p *Prompter) Text(ctx context.Context, cfg TextConfig) (string, error) {
	s, ctx, done, err := p.open(ctx)
	if err != nil {
		return "", err
	}
	defer done()
	return widget.Text(ctx, s, cfg)
}

// Password prompts for a line of text rendered masked.
func (p *Prompter) Password(ctx context.Context, cfg PasswordConfig) (string, error) {
	s, ctx, done, err := p.open(ctx)
	if err != nil {
		return "", err
	}
	defer done()
	return widget.Password(ctx, s, cfg)
}

// Number prompts for a numeric value.
func (p *Prompter) Number(ctx context.Context, cfg NumberConfig) (float64, error) {
	s, ctx, done, err := p.open(ctx)
	if err != nil {
		return 0, err
	}
	defer done()
	return widget.Number(ctx, s, cfg)
}

// List prompts for a separator-delimited list of items.
func (p *Prompter) List(ctx context.Context, cfg ListConfig) ([]string, error) {
	s, ctx, done, err := p.open(ctx)
	if err != nil {
		return nil, err
	}
	defer done()
	return widget.List(ctx, s, cfg)
}

// Confirm prompts for a yes/no answer.
func (p *Prompter) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	s, ctx, done, err := p.open(ctx)
	if err != nil {
		return false, err
	}
	defer done()
	return widget.Confirm(ctx, s, cfg)
}

// Toggle prompts for an on/off state with custom labels.
func (p *Prompter) Toggle(ctx context.Context, cfg ToggleConfig) (bool, error) {
	s, ctx, done, err := p.open(ctx)
	if err != nil {
		return false, err
	}
	defer done()
	return widget.Toggle(ctx, s, cfg)
}

// FilePath prompts for a filesystem path with tab completion.
func (p *Prompter) FilePath(ctx context.Context, cfg FilePathConfig) (string, error) {
	s, ctx, done, err := p.open(ctx)
	if err != nil {
		return "", err
	}
	defer done()
	return widget.FilePath(ctx, s, cfg)
}

// Editor captures multi-line content through the user's external editor.
func (p *Prompter) Editor(ctx context.Context, cfg EditorConfig) (string, error) {
	s, ctx, done, err := p.open(ctx)
	if err != nil {
		return "", err
	}
	defer done()
	return widget.Editor(ctx, s, cfg)
}

// Date prompts for a calendar date.
func (p *Prompter) Date(ctx context.Context, cfg DateConfig) (time.Time, error) {
	s, ctx, done, err := p.open(ctx)
	if err != nil {
		return time.Time{}, err
	}
	defer done()
	return widget.Date(ctx, s, cfg)
}

// Form presents a sequence of fields and returns name→value, or nothing
// at all on cancellation.
func (p *Prompter) Form(ctx context.Context, cfg FormConfig) (map[string]any, error) {
	s, ctx, done, err := p.open(ctx)
	if err != nil {
		return nil, err
	}
	defer done()
	return widget.Form(ctx, s, cfg)
}

// Select prompts for one choice. A nil Prompter uses Default.
// Methods cannot carry their own type parameters, so the generic prompt
// kinds are package functions taking the Prompter explicitly.
func Select[V comparable](ctx context.Context, p *Prompter, cfg SelectConfig[V]) (V, error) {
	var zero V
	if p == nil {
		p = Default
	}
	s, ctx, done, err := p.open(ctx)
	if err != nil {
		return zero, err
	}
	defer done()
	return widget.Select(ctx, s, cfg)
}

// MultiSelect prompts for any number of choices, returned in option
// declaration order. A nil Prompter uses Default.
func MultiSelect[V comparable](ctx context.Context, p *Prompter, cfg MultiSelectConfig[V]) ([]V, error) {
	if p == nil {
		p = Default
	}
	s, ctx, done, err := p.open(ctx)
	if err != nil {
		return nil, err
	}
	defer done()
	return widget.MultiSelect(ctx, s, cfg)
}

// Autocomplete prompts for one choice through a fuzzy-filtered list.
// A nil Prompter uses Default.
func Autocomplete[V comparable](ctx context.Context, p *Prompter, cfg AutocompleteConfig[V]) (V, error) {
	var zero V
	if p == nil {
		p = Default
	}
	s, ctx, done, err := p.open(ctx)
	if err != nil {
		return zero, err
	}
	defer done()
	return widget.Autocomplete(ctx, s, cfg)
}

// Package-level prompts on stdin/stdout.

// Text prompts for a line of text on the default streams.
func Text(ctx context.Context, cfg TextConfig) (string, error) {
	return Default.Text(ctx, cfg)
}

// Password prompts for masked text on the default streams.
func Password(ctx context.Context, cfg PasswordConfig) (string, error) {
	return Default.Password(ctx, cfg)
}

// Number prompts for a numeric value on the default streams.
func Number(ctx context.Context, cfg NumberConfig) (float64, error) {
	return Default.Number(ctx, cfg)
}

// List prompts for a delimited list on the default streams.
func List(ctx context.Context, cfg ListConfig) ([]string, error) {
	return Default.List(ctx, cfg)
}

// Confirm prompts for a yes/no answer on the default streams.
func Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	return Default.Confirm(ctx, cfg)
}

// Toggle prompts for an on/off state on the default streams.
func Toggle(ctx context.Context, cfg ToggleConfig) (bool, error) {
	return Default.Toggle(ctx, cfg)
}

// FilePath prompts for a path on the default streams.
func FilePath(ctx context.Context, cfg FilePathConfig) (string, error) {
	return Default.FilePath(ctx, cfg)
}

// Editor captures editor content on the default streams.
func Editor(ctx context.Context, cfg EditorConfig) (string, error) {
	return Default.Editor(ctx, cfg)
}

// Date prompts for a calendar date on the default streams.
func Date(ctx context.Context, cfg DateConfig) (time.Time, error) {
	return Default.Date(ctx, cfg)
}

// Form runs a field sequence on the default streams.
func Form(ctx context.Context, cfg FormConfig) (map[string]any, error) {
	return Default.Form(ctx, cfg)
}
