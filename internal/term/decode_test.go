package term

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"
)

// openScript opens a terminal over scripted input bytes.
func openScript(t *testing.T, input string) *Terminal {
	t.Helper()
	tm, err := Open(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { tm.Close() })
	return tm
}

func readAll(t *testing.T, tm *Terminal) []Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var events []Event
	for {
		ev, err := tm.ReadKey(ctx)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.Fatalf("ReadKey() error = %v", err)
			}
			return events
		}
		events = append(events, ev)
	}
}

func TestReadKeyDecoding(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Event
	}{
		{"printable", "ab", []Event{RuneEvent('a'), RuneEvent('b')}},
		{"enter cr", "\r", []Event{SpecialEvent(KeyEnter)}},
		{"enter lf", "\n", []Event{SpecialEvent(KeyEnter)}},
		{"tab", "\t", []Event{SpecialEvent(KeyTab)}},
		{"backspace del", "\x7f", []Event{SpecialEvent(KeyBackspace)}},
		{"backspace bs", "\x08", []Event{SpecialEvent(KeyBackspace)}},
		{"ctrl-c", "\x03", []Event{SpecialEvent(KeyCtrlC)}},
		{"arrow up", "\x1b[A", []Event{SpecialEvent(KeyUp)}},
		{"arrow down", "\x1b[B", []Event{SpecialEvent(KeyDown)}},
		{"arrow right", "\x1b[C", []Event{SpecialEvent(KeyRight)}},
		{"arrow left", "\x1b[D", []Event{SpecialEvent(KeyLeft)}},
		{"home", "\x1b[H", []Event{SpecialEvent(KeyHome)}},
		{"end", "\x1b[F", []Event{SpecialEvent(KeyEnd)}},
		{"home tilde", "\x1b[1~", []Event{SpecialEvent(KeyHome)}},
		{"end tilde", "\x1b[4~", []Event{SpecialEvent(KeyEnd)}},
		{"delete", "\x1b[3~", []Event{SpecialEvent(KeyDelete)}},
		{"page up", "\x1b[5~", []Event{SpecialEvent(KeyPageUp)}},
		{"page down", "\x1b[6~", []Event{SpecialEvent(KeyPageDown)}},
		{"ss3 up", "\x1bOA", []Event{SpecialEvent(KeyUp)}},
		{"ss3 end", "\x1bOF", []Event{SpecialEvent(KeyEnd)}},
		{"bare escape", "\x1b", []Event{SpecialEvent(KeyEscape)}},
		{"utf8 two byte", "é", []Event{RuneEvent('é')}},
		{"utf8 three byte", "日", []Event{RuneEvent('日')}},
		{"utf8 four byte", "🚀", []Event{RuneEvent('🚀')}},
		{"unknown csi dropped", "\x1b[9~a", []Event{RuneEvent('a')}},
		{"stray control dropped", "\x01a", []Event{RuneEvent('a')}},
		{"mixed sequence", "hi\x1b[B\r", []Event{
			RuneEvent('h'), RuneEvent('i'),
			SpecialEvent(KeyDown), SpecialEvent(KeyEnter),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := openScript(t, tt.input)
			got := readAll(t, tm)
			if len(got) != len(tt.want) {
				t.Fatalf("decoded %d events %v, want %d %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestReadKeyContextCancel(t *testing.T) {
	// A reader that never delivers data keeps ReadKey blocked until the
	// context is canceled.
	r, w := io.Pipe()
	defer w.Close()

	tm, err := Open(r)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer tm.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := tm.ReadKey(ctx)
		errCh <- err
	}()

	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("ReadKey() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ReadKey did not observe cancellation")
	}
}

func TestWidthOfFallsBack(t *testing.T) {
	var sb strings.Builder
	if got := WidthOf(&sb, 80); got != 80 {
		t.Errorf("WidthOf(non-file) = %d, want 80", got)
	}

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if got := WidthOf(f, 72); got != 72 {
		t.Errorf("WidthOf(plain file) = %d, want 72", got)
	}
}

func TestCloseUnblocksStuckReader(t *testing.T) {
	// Over a non-file input cancelreader cannot interrupt an in-progress
	// Read, so the pump may still be blocked when Close runs. Close must
	// not wait for it.
	r, w := io.Pipe()
	defer w.Close()

	tm, err := Open(r)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- tm.Close() }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Close() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Close blocked on a reader stuck mid-read")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	tm := openScript(t, "")
	if err := tm.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := tm.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
}

func TestCtrlCNeverARune(t *testing.T) {
	tm := openScript(t, "a\x03b")
	events := readAll(t, tm)
	for _, ev := range events {
		if ev.Key == KeyRune && ev.Rune == 0x03 {
			t.Fatalf("ctrl-c leaked through as a rune event")
		}
	}
	if len(events) != 3 || events[1].Key != KeyCtrlC {
		t.Fatalf("events = %v, want [Rune(a) Ctrl+C Rune(b)]", events)
	}
}

func TestSuspendResumeKeepsTypeAhead(t *testing.T) {
	tm := openScript(t, "ab")

	// Give the pump time to buffer both bytes before suspending.
	time.Sleep(20 * time.Millisecond)
	if err := tm.Suspend(); err != nil {
		t.Fatalf("Suspend() error = %v", err)
	}
	if err := tm.Resume(); err != nil {
		t.Fatalf("Resume() error = %v", err)
	}

	events := readAll(t, tm)
	if len(events) != 2 || events[0].Rune != 'a' || events[1].Rune != 'b' {
		t.Fatalf("events = %v, want type-ahead a then b", events)
	}
}
