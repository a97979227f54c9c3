package widget

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dshills/askstorm/internal/render"
	"github.com/dshills/askstorm/internal/style"
	"github.com/dshills/askstorm/internal/term"
)

// Key sequences used by scripted interactions.
const (
	keyUp       = "\x1b[A"
	keyDown     = "\x1b[B"
	keyRight    = "\x1b[C"
	keyLeft     = "\x1b[D"
	keyEnter    = "\r"
	keyBS       = "\x7f"
	keyTab      = "\t"
	keyCtrlC    = "\x03"
	keyPageUp   = "\x1b[5~"
	keyPageDown = "\x1b[6~"
)

// newTestSession builds a session over scripted input and a discarded
// render target.
func newTestSession(t *testing.T, input string) *Session {
	t.Helper()
	tm, err := term.Open(strings.NewReader(input))
	if err != nil {
		t.Fatalf("term.Open() error = %v", err)
	}
	t.Cleanup(func() { tm.Close() })

	var out bytes.Buffer
	return &Session{
		Term:  tm,
		Surf:  render.New(&out),
		Theme: style.Default(),
	}
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}
