package term

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/muesli/cancelreader"
	"golang.org/x/term"
)

// Terminal errors.
var (
	// ErrNotTerminal is returned when the input stream is a file that is
	// not an interactive terminal. No widget can function without raw
	// keystroke delivery, so this is fatal for the caller.
	ErrNotTerminal = errors.New("input is not an interactive terminal")

	// ErrClosed is returned from reads after the terminal has been closed.
	ErrClosed = errors.New("terminal closed")
)

// DefaultEscDelay is the window after a lone ESC byte during which the
// decoder waits for the rest of a CSI sequence before emitting Escape.
const DefaultEscDelay = 10 * time.Millisecond

// Terminal reads decoded key events from an input stream.
//
// When the input is an *os.File it must be an interactive terminal; Open
// places it into raw mode and Close restores the prior state. Any other
// io.Reader (scripted input in tests, for instance) is read as-is with no
// mode switching.
type Terminal struct {
	in       io.Reader
	file     *os.File
	prior    *term.State
	reader   cancelreader.CancelReader
	bytes    chan byte
	quit     chan struct{}
	pending  []byte // type-ahead preserved across Suspend/Resume
	readErr  error  // set before bytes is closed
	escDelay time.Duration
	closed   bool
}

// Open acquires the terminal for raw keystroke input.
func Open(in io.Reader) (*Terminal, error) {
	return OpenWithDelay(in, DefaultEscDelay)
}

// OpenWithDelay acquires the terminal with a custom escape-sequence window.
func OpenWithDelay(in io.Reader, escDelay time.Duration) (*Terminal, error) {
	if escDelay <= 0 {
		escDelay = DefaultEscDelay
	}
	t := &Terminal{in: in, escDelay: escDelay}

	if f, ok := in.(*os.File); ok {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			return nil, ErrNotTerminal
		}
		prior, err := term.MakeRaw(fd)
		if err != nil {
			return nil, err
		}
		t.file = f
		t.prior = prior
	}

	if err := t.startReader(); err != nil {
		t.restore()
		return nil, err
	}
	return t, nil
}

// startReader wraps the input in a cancelable reader and begins pumping
// bytes into the decode channel.
func (t *Terminal) startReader() error {
	r, err := cancelreader.NewReader(t.in)
	if err != nil {
		return err
	}
	t.reader = r
	t.bytes = make(chan byte, 64)
	t.quit = make(chan struct{})

	go func(r cancelreader.CancelReader, ch chan byte, quit chan struct{}) {
		buf := make([]byte, 128)
		for {
			n, err := r.Read(buf)
			for _, b := range buf[:n] {
				select {
				case ch <- b:
				case <-quit:
					return
				}
			}
			if err != nil {
				if !errors.Is(err, cancelreader.ErrCanceled) {
					t.readErr = err
				}
				close(ch)
				return
			}
		}
	}(r, t.bytes, t.quit)
	return nil
}

// stopReader cancels the pump goroutine and detaches from the input.
// Bytes already pumped but not yet consumed are kept as type-ahead.
//
// The drain must not wait for the channel to close: cancelreader falls
// back to a non-interruptible reader for inputs that are not files, and a
// pump blocked in such a Read only exits when that Read returns. Anything
// it reads after this point is discarded via the quit channel.
func (t *Terminal) stopReader() {
	if t.reader == nil {
		return
	}
	t.reader.Cancel()
	_ = t.reader.Close()
	t.reader = nil
	close(t.quit)
	for {
		select {
		case b, ok := <-t.bytes:
			if !ok {
				return
			}
			t.pending = append(t.pending, b)
		default:
			return
		}
	}
}

// Suspend restores the prior terminal mode and releases the input stream,
// allowing a child process to own the terminal. The caller must pair it
// with Resume.
func (t *Terminal) Suspend() error {
	t.stopReader()
	return t.restore()
}

// Resume reacquires raw mode and restarts keystroke decoding after Suspend.
func (t *Terminal) Resume() error {
	if t.file != nil {
		prior, err := term.MakeRaw(int(t.file.Fd()))
		if err != nil {
			return err
		}
		t.prior = prior
	}
	return t.startReader()
}

// Close restores the prior terminal mode and releases the reader.
// It is safe to call more than once.
func (t *Terminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	t.stopReader()
	return t.restore()
}

func (t *Terminal) restore() error {
	if t.file == nil || t.prior == nil {
		return nil
	}
	prior := t.prior
	t.prior = nil
	return term.Restore(int(t.file.Fd()), prior)
}

// Width reports the terminal width in columns, or fallback when the input
// is not a terminal or the size cannot be determined.
func (t *Terminal) Width(fallback int) int {
	if t.file == nil {
		return fallback
	}
	w, _, err := term.GetSize(int(t.file.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// WidthOf reports the column width of w when it is an interactive
// terminal, or fallback otherwise. It lets output-only primitives size
// themselves without acquiring the input stream.
func WidthOf(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// next blocks until one byte is available or the context is done.
// Type-ahead preserved across a Suspend/Resume cycle is delivered first.
func (t *Terminal) next(ctx context.Context) (byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(t.pending) > 0 {
		b := t.pending[0]
		t.pending = t.pending[1:]
		return b, nil
	}
	select {
	case b, ok := <-t.bytes:
		if !ok {
			if t.readErr != nil {
				return 0, t.readErr
			}
			return 0, io.EOF
		}
		return b, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// nextWithin returns the next byte if one arrives within d.
// The second result is false on timeout.
func (t *Terminal) nextWithin(d time.Duration) (byte, bool, error) {
	if len(t.pending) > 0 {
		b := t.pending[0]
		t.pending = t.pending[1:]
		return b, true, nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case b, ok := <-t.bytes:
		if !ok {
			if t.readErr != nil {
				return 0, false, t.readErr
			}
			return 0, false, io.EOF
		}
		return b, true, nil
	case <-timer.C:
		return 0, false, nil
	}
}
