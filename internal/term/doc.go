// Package term owns the terminal during an interactive prompt.
//
// It places the input stream into raw, non-canonical mode, decodes the raw
// byte stream into normalized key events, and guarantees that the previous
// terminal state is restored on every exit path.
//
// The decoder understands:
//
//   - Printable characters, including multi-byte UTF-8 sequences
//   - Control keys: Enter, Tab, Backspace, Ctrl-C
//   - CSI escape sequences for arrows, Home/End, Delete, PageUp/PageDown
//   - A bare Escape, disambiguated from CSI introducers by a short timed
//     window after the leading ESC byte
//
// Unrecognized escape sequences are dropped silently; they never surface as
// character input. Ctrl-C is always decoded as KeyCtrlC and never passed
// through as a rune, making it the universal cancellation trigger.
//
// Reads are cancelable: ReadKey unblocks when its context is done, and
// Close releases the underlying reader so no goroutine is left behind.
package term
