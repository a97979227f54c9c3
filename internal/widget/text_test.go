package widget

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/askstorm/validate"
)

func TestTextSubmitsBuffer(t *testing.T) {
	s := newTestSession(t, "hello"+keyEnter)
	got, err := Text(testCtx(t), s, TextConfig{Message: "Say something"})
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if got != "hello" {
		t.Errorf("Text() = %q, want hello", got)
	}
}

func TestTextEditingKeys(t *testing.T) {
	// Type "helo", move left once, insert the missing l.
	s := newTestSession(t, "helo"+keyLeft+"l"+keyEnter)
	got, err := Text(testCtx(t), s, TextConfig{Message: "q"})
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if got != "hello" {
		t.Errorf("Text() = %q, want hello", got)
	}
}

func TestTextBackspace(t *testing.T) {
	s := newTestSession(t, "abx"+keyBS+"c"+keyEnter)
	got, err := Text(testCtx(t), s, TextConfig{Message: "q"})
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if got != "abc" {
		t.Errorf("Text() = %q, want abc", got)
	}
}

func TestTextDefaultOnEmptyEnter(t *testing.T) {
	s := newTestSession(t, keyEnter)
	got, err := Text(testCtx(t), s, TextConfig{Message: "q", Default: "fallback"})
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if got != "fallback" {
		t.Errorf("Text() = %q, want fallback", got)
	}
}

func TestTextValidationRepromptsThenAccepts(t *testing.T) {
	// First enter fails MinLength(3) and must not submit; typing more
	// and entering again succeeds.
	s := newTestSession(t, "ab"+keyEnter+"c"+keyEnter)
	got, err := Text(testCtx(t), s, TextConfig{
		Message:  "q",
		Validate: validate.String().MinLength(3),
	})
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if got != "abc" {
		t.Errorf("Text() = %q, want abc", got)
	}
}

func TestTextCtrlCCancels(t *testing.T) {
	s := newTestSession(t, "abc"+keyCtrlC)
	_, err := Text(testCtx(t), s, TextConfig{Message: "q"})
	if !errors.Is(err, ErrCancelled) {
		t.Errorf("Text() error = %v, want ErrCancelled", err)
	}
}

func TestPasswordKeepsRealContent(t *testing.T) {
	s := newTestSession(t, "s3cret"+keyEnter)
	got, err := Password(testCtx(t), s, PasswordConfig{Message: "pw"})
	if err != nil {
		t.Fatalf("Password() error = %v", err)
	}
	if got != "s3cret" {
		t.Errorf("Password() = %q, want s3cret", got)
	}
}

func TestPasswordMaskedRender(t *testing.T) {
	s := newTestSession(t, "")
	m := &passwordModel{s: s, cfg: PasswordConfig{Message: "pw", Mask: '*'}}
	m.buf.Set("abc")
	view := m.View()[0]
	if strings.Contains(view, "abc") {
		t.Errorf("masked view leaked the buffer: %q", view)
	}
	if !strings.Contains(view, "***") {
		t.Errorf("masked view missing mask glyphs: %q", view)
	}
}
