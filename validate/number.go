package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NumberValidator is a rule chain over float64 values.
type NumberValidator struct {
	Validator[float64]
}

// Number returns an empty number validator.
func Number() NumberValidator {
	return NumberValidator{}
}

// Min requires value >= n.
func (v NumberValidator) Min(n float64, msg ...string) NumberValidator {
	return v.num(NewRule(func(x float64) bool {
		return x >= n
	}, override(fmt.Sprintf("Must be at least %s", formatNumber(n)), msg)))
}

// Max requires value <= n.
func (v NumberValidator) Max(n float64, msg ...string) NumberValidator {
	return v.num(NewRule(func(x float64) bool {
		return x <= n
	}, override(fmt.Sprintf("Must be at most %s", formatNumber(n)), msg)))
}

// Integer requires an exact integer; the test is exactness, not truncation,
// so 3.0 passes and 3.14 fails.
func (v NumberValidator) Integer(msg ...string) NumberValidator {
	return v.num(NewRule(func(x float64) bool {
		return x == math.Trunc(x) && !math.IsInf(x, 0) && !math.IsNaN(x)
	}, override("Must be an integer", msg)))
}

// Positive requires value > 0.
func (v NumberValidator) Positive(msg ...string) NumberValidator {
	return v.num(NewRule(func(x float64) bool {
		return x > 0
	}, override("Must be positive", msg)))
}

// Negative requires value < 0.
func (v NumberValidator) Negative(msg ...string) NumberValidator {
	return v.num(NewRule(func(x float64) bool {
		return x < 0
	}, override("Must be negative", msg)))
}

// OneOf requires the value to equal one of allowed.
func (v NumberValidator) OneOf(allowed []float64, msg ...string) NumberValidator {
	return v.num(NewRule(func(x float64) bool {
		for _, a := range allowed {
			if x == a {
				return true
			}
		}
		return false
	}, override(fmt.Sprintf("Must be one of: %s", joinNumbers(allowed)), msg)))
}

// Rule appends a predicate rule and keeps the number-typed chain.
func (v NumberValidator) Rule(check func(float64) bool, message string) NumberValidator {
	return NumberValidator{v.Validator.Rule(check, message)}
}

// Refine appends a rule that reports its own message.
func (v NumberValidator) Refine(fn Rule[float64]) NumberValidator {
	return NumberValidator{v.Validator.Refine(fn)}
}

func (v NumberValidator) num(r Rule[float64]) NumberValidator {
	return NumberValidator{v.Validator.append(r)}
}

// formatNumber renders a float without a trailing ".0" for whole values,
// matching the messages users expect for integer bounds.
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func joinNumbers(ns []float64) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = formatNumber(n)
	}
	return strings.Join(parts, ", ")
}
