package term

import "fmt"

// Key identifies a keyboard key.
// For character keys, use KeyRune and read the Rune field of the Event.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// KeyRune is used for printable characters; the character itself is
	// stored in Event.Rune.
	KeyRune

	// Control keys
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyCtrlC

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyRune:
		return "Rune"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyCtrlC:
		return "Ctrl+C"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	default:
		return fmt.Sprintf("Key(%d)", uint8(k))
	}
}

// Event represents a single decoded key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune
}

// RuneEvent creates an event for a printable character.
func RuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// SpecialEvent creates an event for a non-character key.
func SpecialEvent(k Key) Event {
	return Event{Key: k}
}

// IsRune reports whether this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// String returns a human-readable description of the event.
func (e Event) String() string {
	if e.Key == KeyRune {
		return fmt.Sprintf("Rune(%q)", e.Rune)
	}
	return e.Key.String()
}
