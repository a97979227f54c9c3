package widget

import (
	"errors"
	"testing"

	"github.com/dshills/askstorm/validate"
)

func TestNumberBasicEntry(t *testing.T) {
	s := newTestSession(t, "42"+keyEnter)
	got, err := Number(testCtx(t), s, NumberConfig{Message: "count"})
	if err != nil {
		t.Fatalf("Number() error = %v", err)
	}
	if got != 42 {
		t.Errorf("Number() = %v, want 42", got)
	}
}

func TestNumberGrammarGate(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		decimal bool
		want    float64
	}{
		{"letters ignored", "4abc2" + keyEnter, false, 42},
		{"dot ignored in integer mode", "3.5" + keyEnter, false, 35},
		{"dot accepted in decimal mode", "3.5" + keyEnter, true, 3.5},
		{"second dot ignored", "1.2.5" + keyEnter, true, 1.25},
		{"leading minus", "-7" + keyEnter, false, -7},
		{"minus only at start", "1-2" + keyEnter, false, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, tt.script)
			got, err := Number(testCtx(t), s, NumberConfig{Message: "n", Decimal: tt.decimal})
			if err != nil {
				t.Fatalf("Number() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Number() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNumberDefaultOnEmpty(t *testing.T) {
	def := 8080.0
	s := newTestSession(t, keyEnter)
	got, err := Number(testCtx(t), s, NumberConfig{Message: "port", Default: &def})
	if err != nil {
		t.Fatalf("Number() error = %v", err)
	}
	if got != 8080 {
		t.Errorf("Number() = %v, want 8080", got)
	}
}

func TestNumberEmptyWithoutDefaultReprompts(t *testing.T) {
	s := newTestSession(t, keyEnter+"5"+keyEnter)
	got, err := Number(testCtx(t), s, NumberConfig{Message: "n"})
	if err != nil {
		t.Fatalf("Number() error = %v", err)
	}
	if got != 5 {
		t.Errorf("Number() = %v, want 5", got)
	}
}

func TestNumberStepSnapping(t *testing.T) {
	min := 0.0
	tests := []struct {
		name   string
		script string
		step   float64
		want   float64
	}{
		{"snaps down", "12" + keyEnter, 5, 10},
		{"snaps up", "13" + keyEnter, 5, 15},
		{"exact multiple unchanged", "15" + keyEnter, 5, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, tt.script)
			got, err := Number(testCtx(t), s, NumberConfig{
				Message: "n", Min: &min, Step: tt.step,
			})
			if err != nil {
				t.Fatalf("Number() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Number() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNumberStepOriginFromMin(t *testing.T) {
	min := 1.0
	s := newTestSession(t, "4"+keyEnter)
	got, err := Number(testCtx(t), s, NumberConfig{Message: "n", Min: &min, Step: 2})
	if err != nil {
		t.Fatalf("Number() error = %v", err)
	}
	// Increments count from min: 1, 3, 5. 4 rounds to 5.
	if got != 5 {
		t.Errorf("Number() = %v, want 5", got)
	}
}

func TestNumberBoundsReprompt(t *testing.T) {
	min, max := 1.0, 10.0
	s := newTestSession(t, "99"+keyEnter+keyBS+keyBS+"7"+keyEnter)
	got, err := Number(testCtx(t), s, NumberConfig{Message: "n", Min: &min, Max: &max})
	if err != nil {
		t.Fatalf("Number() error = %v", err)
	}
	if got != 7 {
		t.Errorf("Number() = %v, want 7", got)
	}
}

func TestNumberValidatorReprompt(t *testing.T) {
	v := validate.Number().Max(65535).Integer()
	s := newTestSession(t, "70000"+keyEnter+keyBS+keyBS+keyBS+keyBS+keyBS+"8080"+keyEnter)
	got, err := Number(testCtx(t), s, NumberConfig{Message: "port", Validate: v})
	if err != nil {
		t.Fatalf("Number() error = %v", err)
	}
	if got != 8080 {
		t.Errorf("Number() = %v, want 8080", got)
	}
}

func TestListSplitsAndTrims(t *testing.T) {
	s := newTestSession(t, "red, green , ,blue"+keyEnter)
	got, err := List(testCtx(t), s, ListConfig{Message: "colors"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"red", "green", "blue"}
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestListCustomSeparator(t *testing.T) {
	s := newTestSession(t, "a;b;c"+keyEnter)
	got, err := List(testCtx(t), s, ListConfig{Message: "items", Separator: ";"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Errorf("List() = %v, want [a b c]", got)
	}
}

func TestListMinItemsReprompts(t *testing.T) {
	s := newTestSession(t, "one"+keyEnter+",two"+keyEnter)
	got, err := List(testCtx(t), s, ListConfig{Message: "items", MinItems: 2})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("List() = %v, want two items", got)
	}
}

func TestListPerItemValidation(t *testing.T) {
	v := validate.String().MinLength(2)
	s := newTestSession(t, "ab,c"+keyEnter+"d"+keyEnter)
	got, err := List(testCtx(t), s, ListConfig{Message: "items", Validate: v})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 || got[1] != "cd" {
		t.Errorf("List() = %v, want [ab cd]", got)
	}
}

func TestNumberInvalidConfig(t *testing.T) {
	min, max := 10.0, 1.0
	s := newTestSession(t, "")
	_, err := Number(testCtx(t), s, NumberConfig{Message: "n", Min: &min, Max: &max})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Number() error = %v, want ErrInvalidConfig", err)
	}

	s = newTestSession(t, "")
	_, err = Number(testCtx(t), s, NumberConfig{Message: "n", Step: -1})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Number() error = %v, want ErrInvalidConfig for negative step", err)
	}
}

func TestListInvalidConfig(t *testing.T) {
	s := newTestSession(t, "")
	_, err := List(testCtx(t), s, ListConfig{Message: "x", MinItems: 5, MaxItems: 2})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("List() error = %v, want ErrInvalidConfig", err)
	}
}
