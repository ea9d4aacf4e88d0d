package chipedit

import (
	"errors"
	"strings"
)

// ErrEmptySeparator is returned when a List or Model is constructed with an
// empty separator string.
var ErrEmptySeparator = errors.New("separator cannot be empty")

// List is the edit model behind the chip widget: an ordered sequence of chip
// texts plus a gap cursor. The cursor addresses the gaps between chips, so it
// ranges over 0..len inclusive; 0 is before the first chip and len is after
// the last.
//
// All index-taking operations clamp or no-op on out-of-range input instead of
// returning errors. UI event streams routinely deliver stale indices (a
// delete arriving after the list already shrank earlier in the same frame),
// and the model must stay usable through that.
//
// List is not safe for concurrent use; it expects to be driven sequentially
// from a single Update loop.
type List struct {
	separator string
	keepEmpty bool

	chips  []string
	cursor int

	// Drag gesture state. The committed order only changes on EndDrag;
	// dragFrom/dragTo exist so the widget can render a reorder preview.
	dragging bool
	dragFrom int
	dragTo   int
}

// NewList builds a List holding the given texts in order, cursor at 0.
// The separator is used by InsertText to split pasted or typed text into
// multiple chips and must be non-empty.
func NewList(separator string, texts ...string) (List, error) {
	if separator == "" {
		return List{}, ErrEmptySeparator
	}
	l := List{separator: separator}
	l.chips = append(l.chips, texts...)
	return l, nil
}

// Separator returns the configured separator string.
func (l List) Separator() string {
	return l.separator
}

// SetKeepEmpty controls whether InsertText keeps empty segments produced by
// splitting (e.g. "a,,b" yielding an empty middle chip). Default is to drop
// them.
func (l *List) SetKeepEmpty(keep bool) {
	l.keepEmpty = keep
}

// Texts returns a copy of the chip texts in display order.
func (l List) Texts() []string {
	out := make([]string, len(l.chips))
	copy(out, l.chips)
	return out
}

// Len returns the number of chips.
func (l List) Len() int {
	return len(l.chips)
}

// Cursor returns the gap cursor position, always in 0..Len.
func (l List) Cursor() int {
	return l.cursor
}

// SetCursor moves the cursor, clamping into 0..Len.
func (l *List) SetCursor(i int) {
	l.cursor = clamp(i, 0, len(l.chips))
}

// CursorLeft moves the cursor one gap to the left, stopping at 0.
func (l *List) CursorLeft() {
	l.SetCursor(l.cursor - 1)
}

// CursorRight moves the cursor one gap to the right, stopping at Len.
func (l *List) CursorRight() {
	l.SetCursor(l.cursor + 1)
}

// SetTexts replaces the whole chip list. The cursor is clamped into the new
// range and any drag in progress is cancelled.
func (l *List) SetTexts(texts ...string) {
	l.chips = append(l.chips[:0:0], texts...)
	l.cursor = clamp(l.cursor, 0, len(l.chips))
	l.CancelDrag()
}

// DeleteAt removes the chip at index i and reports whether anything was
// removed. Out-of-range indices are a no-op; the cursor is clamped afterward.
func (l *List) DeleteAt(i int) bool {
	if i < 0 || i >= len(l.chips) {
		return false
	}
	l.chips = append(l.chips[:i], l.chips[i+1:]...)
	l.cursor = clamp(l.cursor, 0, len(l.chips))
	return true
}

// DeleteBeforeCursor removes the chip immediately left of the cursor and
// moves the cursor onto the freed gap. Backspace semantics: a no-op at
// cursor 0.
func (l *List) DeleteBeforeCursor() bool {
	if l.cursor == 0 {
		return false
	}
	i := l.cursor - 1
	l.chips = append(l.chips[:i], l.chips[i+1:]...)
	l.cursor = i
	return true
}

// DeleteAtCursor removes the chip immediately right of the cursor, leaving
// the cursor in place. Delete-key semantics: a no-op when the cursor sits
// after the last chip.
func (l *List) DeleteAtCursor() bool {
	if l.cursor >= len(l.chips) {
		return false
	}
	l.chips = append(l.chips[:l.cursor], l.chips[l.cursor+1:]...)
	return true
}

// Move removes the chip at from and reinserts it at to, where to is an index
// into the shortened list. It reports whether the order actually changed.
// An out-of-range from is a no-op; to is clamped.
func (l *List) Move(from, to int) bool {
	if from < 0 || from >= len(l.chips) {
		return false
	}
	chip := l.chips[from]
	rest := append(l.chips[:from], l.chips[from+1:]...)
	to = clamp(to, 0, len(rest))
	l.chips = append(rest[:to:to], append([]string{chip}, rest[to:]...)...)
	return to != from
}

// InsertText splits text on the separator and inserts the resulting chips as
// a contiguous run starting at index at (clamped into 0..Len). The cursor
// lands just after the run. Returns the number of chips inserted; empty
// segments are dropped unless SetKeepEmpty(true) was called.
func (l *List) InsertText(text string, at int) int {
	segs := l.split(text)
	if len(segs) == 0 {
		return 0
	}
	at = clamp(at, 0, len(l.chips))
	l.chips = append(l.chips[:at:at], append(segs, l.chips[at:]...)...)
	l.cursor = at + len(segs)
	return len(segs)
}

func (l List) split(text string) []string {
	var segs []string
	for _, s := range strings.Split(text, l.separator) {
		if s == "" && !l.keepEmpty {
			continue
		}
		segs = append(segs, s)
	}
	return segs
}

// StartDrag begins a reorder gesture on the chip at index i. It reports
// whether the gesture started; an out-of-range index leaves the model Idle.
// Starting while already dragging restarts the gesture on the new chip.
func (l *List) StartDrag(i int) bool {
	if i < 0 || i >= len(l.chips) {
		return false
	}
	l.dragging = true
	l.dragFrom = i
	l.dragTo = i
	return true
}

// UpdateDrag moves the drop target, clamped into the valid chip range. The
// committed list is untouched until EndDrag. A no-op while Idle.
func (l *List) UpdateDrag(target int) {
	if !l.dragging {
		return
	}
	l.dragTo = clamp(target, 0, len(l.chips)-1)
}

// EndDrag commits the gesture by moving the grabbed chip to the drop target
// and returns to Idle. It reports whether the order changed.
func (l *List) EndDrag() bool {
	if !l.dragging {
		return false
	}
	from, to := l.dragFrom, l.dragTo
	l.CancelDrag()
	return l.Move(from, to)
}

// CancelDrag abandons any gesture in progress without touching the list.
func (l *List) CancelDrag() {
	l.dragging = false
	l.dragFrom = 0
	l.dragTo = 0
}

// Drag exposes the gesture state for rendering a drop indicator. source and
// target are only meaningful while dragging is true.
func (l List) Drag() (source, target int, dragging bool) {
	return l.dragFrom, l.dragTo, l.dragging
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
