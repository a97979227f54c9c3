// Package render maintains the live prompt region on the terminal.
//
// A Surface tracks how many lines the active widget last wrote and repaints
// by moving the cursor up over that region and overwriting it in place.
// There is never a full-screen clear; everything above the live region is
// untouched scrollback.
//
// Two write modes exist:
//
//   - Paint replaces the live region and leaves it repaintable.
//   - Commit replaces the live region and makes it permanent: the next
//     Paint starts a fresh region below it. Completed prompts and finished
//     draft lines are committed.
//
// UpdateLine repaints a single line of the live region without touching its
// siblings, which is what lets several concurrent tasks drive independent
// draft lines. All methods are safe for concurrent use.
package render
