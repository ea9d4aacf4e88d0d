// Package chipedit provides a chip editor component for bubbletea programs:
// a horizontal row of removable, reorderable text tokens with a text entry
// point between them. Typing the configured separator turns the pending text
// into a chip; backspace and delete remove chips around the cursor; chips
// can be reordered with a keyboard grab/drop gesture or by mouse drag.
//
// The editing rules live in List, which carries no rendering state and can
// be driven directly by hosts that do their own drawing. Model wraps a List
// with focus handling, key bindings, and a lipgloss view.
package chipedit

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the chip editor widget. Create one with New; the zero value is
// not usable because the separator would be empty.
type Model struct {
	// KeyMap and Styles may be reassigned after New to rebind keys or
	// restyle the widget.
	KeyMap KeyMap
	Styles Styles

	list        List
	pending     string // typed text not yet committed to a chip
	icon        rune   // 0 = no icon
	frame       bool
	width       int
	placeholder string
	focused     bool
}

// Focus gives the widget keyboard focus. Key and mouse messages are ignored
// while blurred.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes keyboard focus and abandons any drag in progress.
func (m *Model) Blur() {
	m.focused = false
	m.list.CancelDrag()
}

// Focused reports whether the widget has keyboard focus.
func (m Model) Focused() bool {
	return m.focused
}

// SetWidth fixes the rendered width. Zero means natural width.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// Texts returns the committed chip texts in display order. The pending
// (still being typed) segment is not included.
func (m Model) Texts() []string {
	return m.list.Texts()
}

// Value returns the chips joined by the separator, ready to store wherever
// the original delimited string came from.
func (m Model) Value() string {
	return strings.Join(m.list.Texts(), m.list.Separator())
}

// SetTexts replaces the chips, discarding the pending segment.
func (m *Model) SetTexts(texts ...string) {
	m.list.SetTexts(texts...)
	m.pending = ""
}

// Cursor returns the gap cursor position.
func (m Model) Cursor() int {
	return m.list.Cursor()
}

// Pending returns the typed-but-uncommitted text at the cursor.
func (m Model) Pending() string {
	return m.pending
}

// Dragging reports whether a reorder gesture is in progress.
func (m Model) Dragging() bool {
	_, _, dragging := m.list.Drag()
	return dragging
}

// Update handles key and mouse messages. Messages are ignored while the
// widget is blurred.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.Dragging() {
		switch {
		case key.Matches(msg, m.KeyMap.Cancel):
			m.list.CancelDrag()
		case key.Matches(msg, m.KeyMap.Drop), key.Matches(msg, m.KeyMap.Grab):
			return m.dropChip()
		case key.Matches(msg, m.KeyMap.Left):
			_, target, _ := m.list.Drag()
			m.list.UpdateDrag(target - 1)
		case key.Matches(msg, m.KeyMap.Right):
			_, target, _ := m.list.Drag()
			m.list.UpdateDrag(target + 1)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.KeyMap.Backspace):
		if m.pending != "" {
			m.pending = trimLastRune(m.pending)
			return m, nil
		}
		if m.list.DeleteBeforeCursor() {
			return m, m.changedCmd()
		}

	case key.Matches(msg, m.KeyMap.Delete):
		if m.list.DeleteAtCursor() {
			return m, m.changedCmd()
		}

	case key.Matches(msg, m.KeyMap.Left):
		cmd := m.commitPending()
		m.list.CursorLeft()
		return m, cmd

	case key.Matches(msg, m.KeyMap.Right):
		cmd := m.commitPending()
		m.list.CursorRight()
		return m, cmd

	case key.Matches(msg, m.KeyMap.Grab):
		cmd := m.commitPending()
		i := m.list.Cursor()
		if i >= m.list.Len() {
			i = m.list.Len() - 1
		}
		m.list.StartDrag(i)
		return m, cmd

	case key.Matches(msg, m.KeyMap.Commit):
		return m, m.commitPending()

	default:
		switch msg.Type {
		case tea.KeyRunes:
			m.pending += string(msg.Runes)
			return m, m.flushPending()
		case tea.KeySpace:
			m.pending += " "
			return m, m.flushPending()
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		cmd := m.commitPending()
		if i, ok := m.chipAt(msg.X); ok {
			m.list.StartDrag(i)
		}
		return m, cmd

	case msg.Action == tea.MouseActionMotion:
		if m.Dragging() {
			m.list.UpdateDrag(m.nearestChip(msg.X))
		}

	case msg.Action == tea.MouseActionRelease:
		if m.Dragging() {
			return m.dropChip()
		}
	}
	return m, nil
}

// dropChip commits the drag gesture and emits reorder/change messages when
// the order actually changed.
func (m Model) dropChip() (Model, tea.Cmd) {
	from, to, _ := m.list.Drag()
	if !m.list.EndDrag() {
		return m, nil
	}
	reorder := func() tea.Msg { return ReorderedMsg{From: from, To: to} }
	return m, tea.Batch(reorder, m.changedCmd())
}

// commitPending turns the pending segment into chips at the cursor.
func (m *Model) commitPending() tea.Cmd {
	if m.pending == "" {
		return nil
	}
	text := m.pending
	m.pending = ""
	if m.list.InsertText(text, m.list.Cursor()) > 0 {
		return m.changedCmd()
	}
	return nil
}

// flushPending commits every completed segment of the pending text, keeping
// whatever follows the last separator as the new pending text. Typing "a,"
// with separator "," produces the chip "a" and leaves the entry empty.
func (m *Model) flushPending() tea.Cmd {
	sep := m.list.Separator()
	i := strings.LastIndex(m.pending, sep)
	if i < 0 {
		return nil
	}
	complete := m.pending[:i]
	m.pending = m.pending[i+len(sep):]
	if m.list.InsertText(complete, m.list.Cursor()) > 0 {
		return m.changedCmd()
	}
	return nil
}

func (m Model) changedCmd() tea.Cmd {
	texts := m.list.Texts()
	return func() tea.Msg { return ChangedMsg{Texts: texts} }
}

// View renders the chip row. While dragging, the row shows the preview
// order with the grabbed chip highlighted at its drop position; the
// committed list is untouched until the drop.
func (m Model) View() string {
	cells, _ := m.cells()
	row := strings.Join(cells, " ")
	if row == "" {
		row = m.Styles.Placeholder.Render(m.placeholder)
	}
	if !m.frame {
		return row
	}
	frame := m.Styles.Frame
	if m.width > 0 {
		frame = frame.Width(m.width)
	}
	return frame.Render(row)
}

// cells returns the rendered cells of the row in display order plus a
// parallel slice mapping each cell to its chip display index (-1 for the
// pending/cursor cell). The mapping feeds mouse hit-testing so spans always
// match what View draws.
func (m Model) cells() ([]string, []int) {
	texts, grabbed := m.displayTexts()
	cur := m.list.Cursor()
	showGap := m.focused && grabbed < 0

	var cells []string
	var chips []int
	for i := 0; i <= len(texts); i++ {
		if showGap && i == cur {
			cells = append(cells, m.gapCell())
			chips = append(chips, -1)
		}
		if i < len(texts) {
			st := m.Styles.Chip
			switch {
			case i == grabbed:
				st = m.Styles.GrabbedChip
			case showGap && i == cur:
				st = m.Styles.FocusedChip
			}
			cells = append(cells, st.Render(m.chipLabel(texts[i])))
			chips = append(chips, i)
		}
	}
	return cells, chips
}

// displayTexts returns the texts in render order and the display index of
// the grabbed chip, or -1 when idle.
func (m Model) displayTexts() ([]string, int) {
	texts := m.list.Texts()
	from, to, dragging := m.list.Drag()
	if !dragging {
		return texts, -1
	}
	scratch := m.list
	scratch.chips = texts // already a copy; Move must not touch the committed slice
	scratch.Move(from, to)
	return scratch.chips, to
}

func (m Model) gapCell() string {
	if m.pending != "" {
		return m.Styles.Pending.Render(m.pending) + m.Styles.Cursor.Render("│")
	}
	return m.Styles.Cursor.Render("│")
}

func (m Model) chipLabel(text string) string {
	if m.icon != 0 {
		return string(m.icon) + " " + text
	}
	return text
}

// spans returns the horizontal extent of each displayed chip, in screen
// cells, matching what View draws. Used for mouse hit-testing.
func (m Model) spans() [][2]int {
	cells, chips := m.cells()
	x := 0
	if m.frame {
		x = 2 // border plus padding
	}
	var spans [][2]int
	for i, cell := range cells {
		w := lipgloss.Width(cell)
		if chips[i] >= 0 {
			spans = append(spans, [2]int{x, x + w})
		}
		x += w + 1
	}
	return spans
}

// chipAt returns the display index of the chip under screen column x.
func (m Model) chipAt(x int) (int, bool) {
	for i, s := range m.spans() {
		if x >= s[0] && x < s[1] {
			return i, true
		}
	}
	return 0, false
}

// nearestChip returns the display index closest to screen column x, for
// tracking a drag outside chip boundaries.
func (m Model) nearestChip(x int) int {
	spans := m.spans()
	if len(spans) == 0 {
		return 0
	}
	for i, s := range spans {
		if x < s[1] {
			return i
		}
	}
	return len(spans) - 1
}

func trimLastRune(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
