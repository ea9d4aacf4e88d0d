package chipedit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestEditor(t *testing.T, texts ...string) Model {
	t.Helper()
	m, err := New(",", WithTexts(texts...))
	require.NoError(t, err)
	m.Focus()
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collectMsgs runs a command and flattens any batch into plain messages.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestNewEmptySeparator(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrEmptySeparator)
}

func TestWithIconValidation(t *testing.T) {
	_, err := New(",", WithIcon("ab"))
	assert.ErrorIs(t, err, ErrIconNotSingleRune)

	m, err := New(",", WithIcon("★"), WithTexts("a"))
	require.NoError(t, err)
	assert.Contains(t, m.View(), "★ a")
}

func TestTypingSeparatorCreatesChip(t *testing.T) {
	m := newTestEditor(t)

	m, _ = m.Update(keyRunes("a"))
	m, _ = m.Update(keyRunes("b"))
	assert.Equal(t, "ab", m.Pending())
	assert.Empty(t, m.Texts())

	var cmd tea.Cmd
	m, cmd = m.Update(keyRunes(","))
	assert.Equal(t, []string{"ab"}, m.Texts())
	assert.Equal(t, "", m.Pending())

	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, ChangedMsg{Texts: []string{"ab"}}, msgs[0])
}

func TestTypingSeparatorAlone(t *testing.T) {
	m := newTestEditor(t)

	var cmd tea.Cmd
	m, cmd = m.Update(keyRunes(","))
	assert.Empty(t, m.Texts())
	assert.Equal(t, "", m.Pending())
	assert.Nil(t, cmd)
}

func TestEnterCommitsPending(t *testing.T) {
	m := newTestEditor(t, "a")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})

	m, _ = m.Update(keyRunes("b"))
	var cmd tea.Cmd
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"a", "b"}, m.Texts())
	assert.Equal(t, 2, m.Cursor())
	assert.NotNil(t, cmd)
}

func TestPendingWithSpaces(t *testing.T) {
	m := newTestEditor(t)
	m, _ = m.Update(keyRunes("a"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m, _ = m.Update(keyRunes("b"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"a b"}, m.Texts())
}

func TestBackspaceEditsPendingFirst(t *testing.T) {
	m := newTestEditor(t, "a")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(keyRunes("x"))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "", m.Pending())
	assert.Equal(t, []string{"a"}, m.Texts())

	// Now the pending text is gone, backspace removes the chip.
	var cmd tea.Cmd
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Empty(t, m.Texts())
	assert.NotNil(t, cmd)
}

func TestBackspaceAtStartIsNoop(t *testing.T) {
	m := newTestEditor(t, "a", "b")

	var cmd tea.Cmd
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, []string{"a", "b"}, m.Texts())
	assert.Equal(t, 0, m.Cursor())
	assert.Nil(t, cmd)
}

func TestDeleteKeyRemovesChipAtCursor(t *testing.T) {
	m := newTestEditor(t, "a", "b")

	var cmd tea.Cmd
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	assert.Equal(t, []string{"b"}, m.Texts())
	assert.Equal(t, 0, m.Cursor())
	assert.NotNil(t, cmd)
}

func TestArrowsMoveCursor(t *testing.T) {
	m := newTestEditor(t, "a", "b")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Cursor())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.Cursor())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.Cursor())
}

func TestGrabMoveDrop(t *testing.T) {
	m := newTestEditor(t, "a", "b", "c")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.True(t, m.Dragging())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, []string{"a", "b", "c"}, m.Texts()) // preview only

	var cmd tea.Cmd
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Dragging())
	assert.Equal(t, []string{"b", "a", "c"}, m.Texts())

	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 2)
	assert.Equal(t, ReorderedMsg{From: 0, To: 1}, msgs[0])
	assert.Equal(t, ChangedMsg{Texts: []string{"b", "a", "c"}}, msgs[1])
}

func TestGrabAtEndFallsBackToLastChip(t *testing.T) {
	m := newTestEditor(t, "a", "b")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 2, m.Cursor())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.True(t, m.Dragging())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"b", "a"}, m.Texts())
}

func TestEscCancelsDrag(t *testing.T) {
	m := newTestEditor(t, "a", "b", "c")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.Dragging())
	assert.Equal(t, []string{"a", "b", "c"}, m.Texts())
}

func TestDropWithoutMoveEmitsNothing(t *testing.T) {
	m := newTestEditor(t, "a", "b")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	var cmd tea.Cmd
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.Dragging())
	assert.Equal(t, []string{"a", "b"}, m.Texts())
	assert.Nil(t, cmd)
}

func TestGrabOnEmptyListIsNoop(t *testing.T) {
	m := newTestEditor(t)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.False(t, m.Dragging())
}

func TestBlurredIgnoresInput(t *testing.T) {
	m := newTestEditor(t, "a")
	m.Blur()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, []string{"a"}, m.Texts())
	assert.Nil(t, cmd)
}

func TestBlurCancelsDrag(t *testing.T) {
	m := newTestEditor(t, "a", "b")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	require.True(t, m.Dragging())

	m.Blur()
	assert.False(t, m.Dragging())
}

func TestMouseDragReorders(t *testing.T) {
	m := newTestEditor(t, "a", "b", "c")

	// With the default frame and the cursor marker at gap 0, the first chip
	// starts at column 4 and each chip cell is 3 columns wide.
	m, _ = m.Update(tea.MouseMsg{X: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, m.Dragging())

	// While dragging there is no cursor cell; chips sit at 2, 6, and 10.
	m, _ = m.Update(tea.MouseMsg{X: 7, Action: tea.MouseActionMotion})

	var cmd tea.Cmd
	m, cmd = m.Update(tea.MouseMsg{X: 7, Action: tea.MouseActionRelease})
	assert.False(t, m.Dragging())
	assert.Equal(t, []string{"b", "a", "c"}, m.Texts())
	assert.NotNil(t, cmd)
}

func TestMousePressOutsideChips(t *testing.T) {
	m := newTestEditor(t, "a")
	m, _ = m.Update(tea.MouseMsg{X: 70, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, m.Dragging())
}

func TestValueJoinsBySeparator(t *testing.T) {
	m := newTestEditor(t, "a", "b", "c")
	assert.Equal(t, "a,b,c", m.Value())
}

func TestSetTextsDiscardsPending(t *testing.T) {
	m := newTestEditor(t)
	m, _ = m.Update(keyRunes("x"))
	require.Equal(t, "x", m.Pending())

	m.SetTexts("a", "b")
	assert.Equal(t, "", m.Pending())
	assert.Equal(t, []string{"a", "b"}, m.Texts())
}

func TestViewShowsChips(t *testing.T) {
	m := newTestEditor(t, "alpha", "beta")
	view := m.View()
	assert.Contains(t, view, "alpha")
	assert.Contains(t, view, "beta")
}

func TestViewShowsPending(t *testing.T) {
	m := newTestEditor(t)
	m, _ = m.Update(keyRunes("hal"))
	assert.Contains(t, m.View(), "hal")
}

func TestViewPlaceholder(t *testing.T) {
	m, err := New(",", WithPlaceholder("add tags"))
	require.NoError(t, err)
	assert.Contains(t, m.View(), "add tags")
}

func TestViewPreviewDuringDrag(t *testing.T) {
	m := newTestEditor(t, "a", "b")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})

	// The view shows b before a while the committed order is unchanged.
	view := m.View()
	assert.Less(t, strings.Index(view, "b"), strings.Index(view, "a"))
	assert.Equal(t, []string{"a", "b"}, m.Texts())
}

func TestKeepEmptyOption(t *testing.T) {
	m, err := New(",", WithKeepEmpty())
	require.NoError(t, err)
	m.Focus()

	m, _ = m.Update(keyRunes("a"))
	m, _ = m.Update(keyRunes(","))
	m, _ = m.Update(keyRunes(","))
	assert.Equal(t, []string{"a", ""}, m.Texts())
}
