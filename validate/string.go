package validate

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

// StringValidator is a rule chain over string values.
type StringValidator struct {
	Validator[string]
}

// String returns an empty string validator.
func String() StringValidator {
	return StringValidator{}
}

// Email requires the value to be a valid RFC 5322 address.
func (v StringValidator) Email(msg ...string) StringValidator {
	return v.str(NewRule(func(s string) bool {
		_, err := mail.ParseAddress(s)
		return err == nil
	}, override("Must be a valid email address", msg)))
}

// URL requires the value to parse as an absolute URL.
func (v StringValidator) URL(msg ...string) StringValidator {
	return v.str(NewRule(func(s string) bool {
		u, err := url.Parse(s)
		return err == nil && u.Scheme != "" && u.Host != ""
	}, override("Must be a valid URL", msg)))
}

// Regex requires the value to match pattern. An invalid pattern produces a
// rule that always fails, surfacing the mistake at the prompt rather than
// silently accepting everything.
func (v StringValidator) Regex(pattern string, msg ...string) StringValidator {
	re, err := regexp.Compile(pattern)
	message := override(fmt.Sprintf("Must match pattern %s", pattern), msg)
	if err != nil {
		return v.str(NewRule(func(string) bool { return false },
			fmt.Sprintf("Invalid pattern %s", pattern)))
	}
	return v.str(NewRule(re.MatchString, message))
}

// MinLength requires at least n characters (runes, not bytes).
func (v StringValidator) MinLength(n int, msg ...string) StringValidator {
	return v.str(NewRule(func(s string) bool {
		return len([]rune(s)) >= n
	}, override(fmt.Sprintf("Must be at least %d characters", n), msg)))
}

// MaxLength allows at most n characters (runes, not bytes).
func (v StringValidator) MaxLength(n int, msg ...string) StringValidator {
	return v.str(NewRule(func(s string) bool {
		return len([]rune(s)) <= n
	}, override(fmt.Sprintf("Must be at most %d characters", n), msg)))
}

// OneOf requires the value to equal one of allowed.
func (v StringValidator) OneOf(allowed []string, msg ...string) StringValidator {
	return v.str(NewRule(func(s string) bool {
		for _, a := range allowed {
			if s == a {
				return true
			}
		}
		return false
	}, override(fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")), msg)))
}

// Rule appends a predicate rule and keeps the string-typed chain.
func (v StringValidator) Rule(check func(string) bool, message string) StringValidator {
	return StringValidator{v.Validator.Rule(check, message)}
}

// Refine appends a rule that reports its own message.
func (v StringValidator) Refine(fn Rule[string]) StringValidator {
	return StringValidator{v.Validator.Refine(fn)}
}

func (v StringValidator) str(r Rule[string]) StringValidator {
	return StringValidator{v.Validator.append(r)}
}
