package askstorm

import (
	"sync"
	"sync/atomic"

	"github.com/dshills/askstorm/internal/render"
	"github.com/dshills/askstorm/internal/style"
	"github.com/dshills/askstorm/internal/term"
)

// Draft is a growable block of independently-updatable live lines, meant
// for concurrent tasks each reporting progress on its own line. AddLine
// returns a handle; each handle carries its own lock, so goroutines
// updating distinct lines never block each other. The block commits and
// stops repainting once every line is done, or when Stop is called.
type Draft struct {
	mu      sync.Mutex // guards lines and the commit transition
	stopped atomic.Bool
	surf    *render.Surface
	theme   *style.Theme
	lines   []*DraftLine
}

// DraftLine is a handle to one line of a Draft. Its position never
// changes; its text is mutable until Done freezes it. Concurrent writes
// through the same handle race with last-write-wins semantics.
type DraftLine struct {
	mu    sync.Mutex
	d     *Draft
	index int
	text  string
	done  bool
}

// Draft starts an empty live block.
func (p *Prompter) Draft() *Draft {
	d := &Draft{
		surf:  render.New(p.out),
		theme: p.theme,
	}
	d.surf.SetWidth(term.WidthOf(p.out, defaultWidth))
	return d
}

// StartDraft starts an empty live block on the default streams.
func StartDraft() *Draft {
	return Default.Draft()
}

// AddLine appends a live line and returns its handle. A line added after
// the draft has committed is inert.
func (d *Draft) AddLine(text string) *DraftLine {
	d.mu.Lock()
	defer d.mu.Unlock()
	line := &DraftLine{d: d, text: text}
	if d.stopped.Load() {
		line.done = true
		return line
	}
	line.index = d.surf.ExtendLive(d.render(text, false))
	d.lines = append(d.lines, line)
	return line
}

// Stop commits the block as it stands. Lines not yet done are frozen.
func (d *Draft) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped.Load() {
		return
	}
	for _, line := range d.lines {
		line.mu.Lock()
		line.done = true
		line.mu.Unlock()
	}
	d.commit()
}

// maybeCommit commits once every line reports done.
func (d *Draft) maybeCommit() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped.Load() {
		return
	}
	for _, line := range d.lines {
		line.mu.Lock()
		done := line.done
		line.mu.Unlock()
		if !done {
			return
		}
	}
	d.commit()
}

// commit makes the block permanent. Callers hold d.mu and have frozen (or
// verified) every line.
func (d *Draft) commit() {
	d.stopped.Store(true)
	final := make([]string, len(d.lines))
	for i, line := range d.lines {
		line.mu.Lock()
		final[i] = d.render(line.text, true)
		line.mu.Unlock()
	}
	d.surf.Commit(final)
}

// render styles one line by state.
func (d *Draft) render(text string, done bool) string {
	if done {
		return d.theme.Done.Render(text)
	}
	return d.theme.Option.Render(text)
}

// Update replaces the line's text and repaints only that line, leaving
// sibling lines untouched. It is a no-op once the line is done.
func (l *DraftLine) Update(text string) {
	if l.d.stopped.Load() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done {
		return
	}
	l.text = text
	l.d.surf.UpdateLine(l.index, l.d.render(text, false))
}

// Done freezes the line with its final text. When every line of the
// draft is done the whole block commits.
func (l *DraftLine) Done(text string) {
	l.mu.Lock()
	if l.done {
		l.mu.Unlock()
		return
	}
	l.text = text
	l.done = true
	if !l.d.stopped.Load() {
		l.d.surf.UpdateLine(l.index, l.d.render(text, true))
	}
	l.mu.Unlock()

	l.d.maybeCommit()
}

// Text reports the line's current text.
func (l *DraftLine) Text() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.text
}
