package validate

import "errors"

// Rule is a single validation step: it returns nil to accept a value or an
// error carrying the failure message.
type Rule[T any] func(T) error

// NewRule builds a rule from a boolean predicate and a fixed message.
func NewRule[T any](check func(T) bool, message string) Rule[T] {
	return func(x T) error {
		if check(x) {
			return nil
		}
		return errors.New(message)
	}
}

// Validator is an ordered, immutable rule chain over values of type T.
// The zero value accepts everything.
type Validator[T any] struct {
	rules []Rule[T]
}

// Custom builds a validator from an explicit rule list. This is the escape
// hatch for rule sets the built-in families do not cover.
func Custom[T any](rules ...Rule[T]) Validator[T] {
	return Validator[T]{rules: rules}
}

// Rule returns a new validator with a predicate rule appended. The receiver
// is left unchanged, so derived validators never affect their parent.
func (v Validator[T]) Rule(check func(T) bool, message string) Validator[T] {
	return v.append(NewRule(check, message))
}

// Refine appends a rule that reports its own message: fn returns nil to
// accept the value or an error to reject it.
func (v Validator[T]) Refine(fn Rule[T]) Validator[T] {
	return v.append(fn)
}

// Len reports the number of rules in the chain.
func (v Validator[T]) Len() int { return len(v.rules) }

// Validate runs the rules in chain order and returns nil if all pass, or
// the first failing rule's error.
func (v Validator[T]) Validate(x T) error {
	for _, r := range v.rules {
		if err := r(x); err != nil {
			return err
		}
	}
	return nil
}

// append copies the rule slice so the receiver's chain is never shared
// with the result's growth.
func (v Validator[T]) append(r Rule[T]) Validator[T] {
	rules := make([]Rule[T], len(v.rules), len(v.rules)+1)
	copy(rules, v.rules)
	return Validator[T]{rules: append(rules, r)}
}

// override returns the caller-supplied message when present, otherwise the
// canonical one.
func override(canonical string, msg []string) string {
	if len(msg) > 0 && msg[0] != "" {
		return msg[0]
	}
	return canonical
}
