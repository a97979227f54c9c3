package validate

import (
	"errors"
	"testing"
)

func TestZeroRulesAlwaysValid(t *testing.T) {
	if err := String().Validate("anything"); err != nil {
		t.Errorf("empty string validator rejected %v", err)
	}
	if err := Number().Validate(-999.5); err != nil {
		t.Errorf("empty number validator rejected %v", err)
	}
	if err := Bool().Validate(false); err != nil {
		t.Errorf("empty bool validator rejected %v", err)
	}
}

func TestFirstFailureWins(t *testing.T) {
	v := String().MinLength(3, "too short").MaxLength(5, "too long").Email("not email")

	tests := []struct {
		in   string
		want string
	}{
		{"ab", "too short"},
		{"abcdef", "too long"},
		{"abcd", "not email"},
	}
	for _, tt := range tests {
		err := v.Validate(tt.in)
		if err == nil || err.Error() != tt.want {
			t.Errorf("Validate(%q) = %v, want %q", tt.in, err, tt.want)
		}
	}
}

func TestChainingIsNonDestructive(t *testing.T) {
	a := Number().Min(10)
	b := a.Max(20)

	// a must be unaffected by b's existence.
	if err := a.Validate(100); err != nil {
		t.Errorf("parent validator gained child's rule: %v", err)
	}
	if err := b.Validate(100); err == nil {
		t.Error("derived validator missing its own rule")
	}
	if a.Len() != 1 || b.Len() != 2 {
		t.Errorf("rule counts = %d,%d, want 1,2", a.Len(), b.Len())
	}
}

func TestBranchingFromSharedPrefix(t *testing.T) {
	base := String().MinLength(2, "short")
	left := base.MaxLength(4, "long")
	right := base.Email("email")

	if err := left.Validate("abc"); err != nil {
		t.Errorf("left branch rejected valid value: %v", err)
	}
	if err := right.Validate("abc"); err == nil || err.Error() != "email" {
		t.Errorf("right branch = %v, want email failure", err)
	}
	// Appending to left must not have leaked into right or base.
	if err := base.Validate("abcdefgh"); err != nil {
		t.Errorf("base validator mutated: %v", err)
	}
}

func TestPortChain(t *testing.T) {
	v := Number().Integer().Min(1).Max(65535)

	if err := v.Validate(8080); err != nil {
		t.Errorf("Validate(8080) = %v, want valid", err)
	}
	if err := v.Validate(70000); err == nil || err.Error() != "Must be at most 65535" {
		t.Errorf("Validate(70000) = %v, want %q", err, "Must be at most 65535")
	}
	if err := v.Validate(3.14); err == nil || err.Error() != "Must be an integer" {
		t.Errorf("Validate(3.14) = %v, want %q", err, "Must be an integer")
	}
}

func TestStringRules(t *testing.T) {
	tests := []struct {
		name  string
		v     StringValidator
		in    string
		valid bool
	}{
		{"email ok", String().Email(), "dev@example.com", true},
		{"email bad", String().Email(), "not-an-email", false},
		{"url ok", String().URL(), "https://example.com/x", true},
		{"url bad", String().URL(), "example", false},
		{"regex ok", String().Regex(`^\d+$`), "12345", true},
		{"regex bad", String().Regex(`^\d+$`), "12a45", false},
		{"minlen runes", String().MinLength(3), "日本語", true},
		{"minlen short", String().MinLength(4), "日本語", false},
		{"maxlen ok", String().MaxLength(3), "abc", true},
		{"maxlen over", String().MaxLength(3), "abcd", false},
		{"oneof ok", String().OneOf([]string{"a", "b"}), "b", true},
		{"oneof miss", String().OneOf([]string{"a", "b"}), "c", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate(tt.in)
			if (err == nil) != tt.valid {
				t.Errorf("Validate(%q) = %v, want valid=%t", tt.in, err, tt.valid)
			}
		})
	}
}

func TestNumberRules(t *testing.T) {
	tests := []struct {
		name  string
		v     NumberValidator
		in    float64
		valid bool
	}{
		{"min equal", Number().Min(5), 5, true},
		{"min below", Number().Min(5), 4.999, false},
		{"min negative", Number().Min(-10), -9.5, true},
		{"max equal", Number().Max(5), 5, true},
		{"max above", Number().Max(5), 5.001, false},
		{"integer whole", Number().Integer(), -42, true},
		{"integer fraction", Number().Integer(), 0.5, false},
		{"positive", Number().Positive(), 0.001, true},
		{"positive zero", Number().Positive(), 0, false},
		{"negative", Number().Negative(), -0.001, true},
		{"negative zero", Number().Negative(), 0, false},
		{"oneof ok", Number().OneOf([]float64{1.5, 2}), 1.5, true},
		{"oneof miss", Number().OneOf([]float64{1.5, 2}), 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate(tt.in)
			if (err == nil) != tt.valid {
				t.Errorf("Validate(%v) = %v, want valid=%t", tt.in, err, tt.valid)
			}
		})
	}
}

func TestRefineReportsOwnMessage(t *testing.T) {
	v := Bool().Refine(func(b bool) error {
		if !b {
			return errors.New("you must agree to continue")
		}
		return nil
	})
	if err := v.Validate(true); err != nil {
		t.Errorf("Validate(true) = %v, want valid", err)
	}
	if err := v.Validate(false); err == nil || err.Error() != "you must agree to continue" {
		t.Errorf("Validate(false) = %v, want refine message", err)
	}
}

func TestCustomRuleSet(t *testing.T) {
	even := Custom(NewRule(func(n int) bool { return n%2 == 0 }, "Must be even"))
	if err := even.Validate(4); err != nil {
		t.Errorf("Validate(4) = %v, want valid", err)
	}
	if err := even.Validate(3); err == nil || err.Error() != "Must be even" {
		t.Errorf("Validate(3) = %v, want must-be-even", err)
	}
}

func TestMessageOverride(t *testing.T) {
	v := Number().Max(10, "keep it under ten")
	if err := v.Validate(11); err == nil || err.Error() != "keep it under ten" {
		t.Errorf("Validate(11) = %v, want override message", err)
	}
}
