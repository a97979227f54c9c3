// Package widget implements the per-kind prompt state machines.
//
// Every widget is a small state machine behind a common interface: it
// renders its current view as a block of lines, consumes one key event at a
// time, and reports when the interaction is finished. A shared Session owns
// the driving loop:
//
//	read key -> handle -> repaint
//
// The loop is single-threaded and cooperative; the only suspension points
// are the key reads. Ctrl-C cancels any widget uniformly, and validation
// failures never escape as errors: the widget repaints with an inline
// message and keeps prompting.
//
// When a widget submits, its summary lines are committed to the terminal as
// permanent output and the session's live region is released for whatever
// runs next.
package widget
