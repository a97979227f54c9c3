package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

// buffer is a single-line edit buffer. The cursor is a byte offset that
// always lies on a grapheme-cluster boundary: arrows, backspace and delete
// operate on whole clusters, never on bytes or lone code points.
type buffer struct {
	text   string
	cursor int
}

func (b *buffer) String() string { return b.text }

func (b *buffer) Empty() bool { return b.text == "" }

// Set replaces the content and moves the cursor to the end.
func (b *buffer) Set(s string) {
	b.text = s
	b.cursor = len(s)
}

// Insert places r at the cursor.
func (b *buffer) Insert(r rune) {
	s := string(r)
	b.text = b.text[:b.cursor] + s + b.text[b.cursor:]
	b.cursor += len(s)
}

// Backspace removes the grapheme cluster before the cursor.
func (b *buffer) Backspace() {
	if b.cursor == 0 {
		return
	}
	start := b.prevBoundary(b.cursor)
	b.text = b.text[:start] + b.text[b.cursor:]
	b.cursor = start
}

// Delete removes the grapheme cluster at the cursor.
func (b *buffer) Delete() {
	if b.cursor >= len(b.text) {
		return
	}
	end := b.nextBoundary(b.cursor)
	b.text = b.text[:b.cursor] + b.text[end:]
}

// Left moves the cursor one cluster left.
func (b *buffer) Left() {
	if b.cursor > 0 {
		b.cursor = b.prevBoundary(b.cursor)
	}
}

// Right moves the cursor one cluster right.
func (b *buffer) Right() {
	if b.cursor < len(b.text) {
		b.cursor = b.nextBoundary(b.cursor)
	}
}

func (b *buffer) Home() { b.cursor = 0 }

func (b *buffer) End() { b.cursor = len(b.text) }

// prevBoundary returns the cluster boundary immediately before offset.
func (b *buffer) prevBoundary(offset int) int {
	pos, prev := 0, 0
	state := -1
	rest := b.text
	for len(rest) > 0 && pos < offset {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		prev = pos
		pos += len(cluster)
	}
	return prev
}

// nextBoundary returns the cluster boundary immediately after offset.
func (b *buffer) nextBoundary(offset int) int {
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(b.text[offset:], -1)
	return offset + len(cluster)
}

// Render paints the buffer with a visible cursor cell. The cluster under
// the cursor is drawn with cursorStyle; at end-of-line the cursor is a
// styled space appended to the text.
func (b *buffer) Render(input, cursorStyle lipgloss.Style) string {
	if b.cursor >= len(b.text) {
		return input.Render(b.text) + cursorStyle.Render(" ")
	}
	end := b.nextBoundary(b.cursor)
	var out strings.Builder
	out.WriteString(input.Render(b.text[:b.cursor]))
	out.WriteString(cursorStyle.Render(b.text[b.cursor:end]))
	out.WriteString(input.Render(b.text[end:]))
	return out.String()
}

// RenderMasked paints one mask glyph per cluster, with the cursor cell at
// the end position.
func (b *buffer) RenderMasked(mask rune, input, cursorStyle lipgloss.Style) string {
	n := uniseg.GraphemeClusterCount(b.text)
	return input.Render(strings.Repeat(string(mask), n)) + cursorStyle.Render(" ")
}
