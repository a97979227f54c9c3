package widget

import (
	"context"

	"github.com/dshills/askstorm/validate"
)

// FieldKind selects the widget used for one form field.
type FieldKind int

const (
	// FieldText is the default kind.
	FieldText FieldKind = iota
	FieldPassword
	FieldNumber
	FieldConfirm
	FieldSelect
)

// Field is one entry of a form.
type Field struct {
	// Name keys the field's value in the form result.
	Name string

	// Message is the prompt question; Name is used when empty.
	Message string

	// Kind selects the widget; FieldText when unset.
	Kind FieldKind

	// Required refuses an empty submission on text kinds.
	Required bool

	// Default seeds text kinds and, parsed, select kinds.
	Default string

	// Options is the choice list for FieldSelect.
	Options []Option[string]

	// Validate gates text, password and select values.
	Validate validate.StringValidator

	// ValidateNumber gates FieldNumber values.
	ValidateNumber validate.NumberValidator
}

// FormConfig configures a multi-field form.
type FormConfig struct {
	Message string
	Fields  []Field
}

// Form presents fields one at a time in declaration order and returns a
// mapping from field name to submitted value (string, float64 or bool by
// kind). Cancellation at any field discards the whole form; no partial
// result is ever returned.
func Form(ctx context.Context, s *Session, cfg FormConfig) (map[string]any, error) {
	values := make(map[string]any, len(cfg.Fields))

	for _, f := range cfg.Fields {
		message := f.Message
		if message == "" {
			message = f.Name
		}
		validateStr := f.Validate
		if f.Required {
			validateStr = requiredFirst(validateStr)
		}

		var (
			value any
			err   error
		)
		switch f.Kind {
		case FieldPassword:
			value, err = Password(ctx, s, PasswordConfig{
				Message:  message,
				Validate: validateStr,
			})
		case FieldNumber:
			value, err = Number(ctx, s, NumberConfig{
				Message:  message,
				Decimal:  true,
				Validate: f.ValidateNumber,
			})
		case FieldConfirm:
			value, err = Confirm(ctx, s, ConfirmConfig{
				Message: message,
				Default: f.Default == "true" || f.Default == "yes",
			})
		case FieldSelect:
			cfg := SelectConfig[string]{Message: message, Options: f.Options}
			if f.Default != "" {
				d := f.Default
				cfg.Default = &d
			}
			value, err = Select(ctx, s, cfg)
		default:
			value, err = Text(ctx, s, TextConfig{
				Message:  message,
				Default:  f.Default,
				Validate: validateStr,
			})
		}
		if err != nil {
			return nil, err
		}
		values[f.Name] = value
	}
	return values, nil
}

// requiredFirst prepends a non-empty check so "Required" fires before any
// configured rules.
func requiredFirst(v validate.StringValidator) validate.StringValidator {
	return validate.String().
		Rule(func(s string) bool { return s != "" }, "Required").
		Refine(func(s string) error { return v.Validate(s) })
}
