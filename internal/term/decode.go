package term

import (
	"context"
	"unicode/utf8"
)

// Control bytes recognized outside escape sequences.
const (
	byteCtrlC     = 0x03
	byteTab       = 0x09
	byteLF        = 0x0a
	byteCR        = 0x0d
	byteEsc       = 0x1b
	byteBackspace = 0x08
	byteDEL       = 0x7f
)

// ReadKey blocks until one key event has been decoded, the context is done,
// or the input stream ends. Bytes that do not form a recognized event
// (stray control characters, unknown escape sequences, malformed UTF-8) are
// dropped and reading continues.
func (t *Terminal) ReadKey(ctx context.Context) (Event, error) {
	for {
		b, err := t.next(ctx)
		if err != nil {
			return Event{}, err
		}

		switch {
		case b == byteCtrlC:
			return SpecialEvent(KeyCtrlC), nil
		case b == byteCR || b == byteLF:
			return SpecialEvent(KeyEnter), nil
		case b == byteTab:
			return SpecialEvent(KeyTab), nil
		case b == byteBackspace || b == byteDEL:
			return SpecialEvent(KeyBackspace), nil
		case b == byteEsc:
			ev, ok := t.readEscape()
			if ok {
				return ev, nil
			}
			// Unrecognized sequence, dropped.
		case b < 0x20:
			// Other control characters are ignored.
		case b < utf8.RuneSelf:
			return RuneEvent(rune(b)), nil
		default:
			ev, ok := t.readRune(b)
			if ok {
				return ev, nil
			}
		}
	}
}

// readEscape decodes the remainder of an escape sequence after a leading
// ESC byte. If no byte arrives within the escape window the ESC stands
// alone and Escape is emitted.
func (t *Terminal) readEscape() (Event, bool) {
	b, ok, err := t.nextWithin(t.escDelay)
	if err != nil || !ok {
		return SpecialEvent(KeyEscape), true
	}

	switch b {
	case '[':
		return t.readCSI()
	case 'O':
		// SS3 sequences, sent for arrows/Home/End in application mode.
		fin, ok, err := t.nextWithin(t.escDelay)
		if err != nil || !ok {
			return Event{}, false
		}
		return csiFinal(fin, "")
	default:
		// Alt-modified key; not part of the event model.
		return Event{}, false
	}
}

// readCSI assembles a CSI sequence: parameter bytes followed by a single
// final byte in the 0x40-0x7e range.
func (t *Terminal) readCSI() (Event, bool) {
	var params []byte
	for {
		b, ok, err := t.nextWithin(t.escDelay)
		if err != nil || !ok {
			return Event{}, false
		}
		if b >= 0x40 && b <= 0x7e {
			return csiFinal(b, string(params))
		}
		params = append(params, b)
		if len(params) > 8 {
			return Event{}, false
		}
	}
}

// csiFinal maps a CSI (or SS3) final byte plus parameters to a key event.
func csiFinal(final byte, params string) (Event, bool) {
	switch final {
	case 'A':
		return SpecialEvent(KeyUp), true
	case 'B':
		return SpecialEvent(KeyDown), true
	case 'C':
		return SpecialEvent(KeyRight), true
	case 'D':
		return SpecialEvent(KeyLeft), true
	case 'H':
		return SpecialEvent(KeyHome), true
	case 'F':
		return SpecialEvent(KeyEnd), true
	case '~':
		switch params {
		case "1", "7":
			return SpecialEvent(KeyHome), true
		case "3":
			return SpecialEvent(KeyDelete), true
		case "4", "8":
			return SpecialEvent(KeyEnd), true
		case "5":
			return SpecialEvent(KeyPageUp), true
		case "6":
			return SpecialEvent(KeyPageDown), true
		}
	}
	return Event{}, false
}

// readRune assembles a multi-byte UTF-8 character whose first byte has
// already been consumed.
func (t *Terminal) readRune(first byte) (Event, bool) {
	buf := []byte{first}
	want := utf8SeqLen(first)
	if want < 2 {
		return Event{}, false
	}
	for len(buf) < want {
		b, ok, err := t.nextWithin(t.escDelay)
		if err != nil || !ok {
			return Event{}, false
		}
		buf = append(buf, b)
	}
	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size <= 1 {
		return Event{}, false
	}
	return RuneEvent(r), true
}

// utf8SeqLen returns the expected byte length of a UTF-8 sequence from its
// leading byte, or 0 if the byte cannot start a sequence.
func utf8SeqLen(b byte) int {
	switch {
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	default:
		return 0
	}
}
