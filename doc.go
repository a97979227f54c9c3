// Package askstorm is an interactive terminal prompt toolkit: a set of
// line-oriented widgets (text, password, number, list, confirm, toggle,
// select, multiselect, autocomplete, filepath, editor, date, form) plus
// two live output primitives (Spinner, Draft) that repaint without
// consuming keyboard input.
//
// Architecture:
//
//	askstorm (façade)
//	  ├── internal/term    raw mode + key event decoding
//	  ├── internal/render  cursor-up repaint surface
//	  ├── internal/style   lipgloss theme and glyph set
//	  ├── internal/widget  one state machine per prompt kind
//	  └── validate         chainable, immutable validation rules
//
// Every prompt operation takes a context.Context, blocks the calling
// goroutine until submission, and returns a typed result. Ctrl-C, context
// cancellation and SIGINT all abort with ErrCancelled after the terminal
// mode has been restored. Prompts run one at a time; Spinner and Draft
// may be updated from concurrent goroutines.
//
// Package-level functions prompt on stdin/stdout with the stock theme.
// Construct a Prompter to change streams, theme or escape timing:
//
//	p := askstorm.New(askstorm.Options{Theme: myTheme})
//	name, err := p.Text(ctx, askstorm.TextConfig{Message: "Project name"})
package askstorm
