package askstorm

import (
	"github.com/dshills/askstorm/internal/style"
	"github.com/dshills/askstorm/internal/term"
	"github.com/dshills/askstorm/internal/widget"
)

// Errors surfaced by prompt operations.
var (
	// ErrCancelled reports that the user aborted (Ctrl-C, SIGINT or a
	// cancelled context). The terminal is restored before it is returned.
	ErrCancelled = widget.ErrCancelled

	// ErrNotTerminal reports that the input stream is not an interactive
	// terminal.
	ErrNotTerminal = term.ErrNotTerminal

	// ErrEmptyOptions reports a choice prompt configured with no options.
	ErrEmptyOptions = widget.ErrEmptyOptions

	// ErrInvalidConfig reports an internally inconsistent configuration,
	// such as a minimum above its maximum.
	ErrInvalidConfig = widget.ErrInvalidConfig
)

// Theme controls colors and glyphs; see DefaultTheme for the stock values.
type Theme = style.Theme

// DefaultTheme returns the stock theme.
func DefaultTheme() *Theme { return style.Default() }

// Per-kind configuration records.
type (
	TextConfig     = widget.TextConfig
	PasswordConfig = widget.PasswordConfig
	NumberConfig   = widget.NumberConfig
	ListConfig     = widget.ListConfig
	ConfirmConfig  = widget.ConfirmConfig
	ToggleConfig   = widget.ToggleConfig
	FilePathConfig = widget.FilePathConfig
	EditorConfig   = widget.EditorConfig
	DateConfig     = widget.DateConfig
	FormConfig     = widget.FormConfig
	Field          = widget.Field
	FieldKind      = widget.FieldKind
)

// Field kinds for FormConfig.
const (
	FieldText     = widget.FieldText
	FieldPassword = widget.FieldPassword
	FieldNumber   = widget.FieldNumber
	FieldConfirm  = widget.FieldConfirm
	FieldSelect   = widget.FieldSelect
)

// Option is one entry of a choice prompt. Values are compared by
// equality for selection tracking; labels are purely cosmetic.
type Option[V comparable] = widget.Option[V]

type (
	SelectConfig[V comparable]       = widget.SelectConfig[V]
	MultiSelectConfig[V comparable]  = widget.MultiSelectConfig[V]
	AutocompleteConfig[V comparable] = widget.AutocompleteConfig[V]
)

// Choices builds string options whose label and value are the same.
func Choices(labels ...string) []Option[string] {
	return widget.Choices(labels...)
}
