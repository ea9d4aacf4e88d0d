package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ruminaider/chipedit"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	statusStyle  = lipgloss.NewStyle().Faint(true)
	helpKeyStyle = lipgloss.NewStyle().Bold(true)
)

// app is the root bubbletea model hosting the chip editor.
type app struct {
	editor chipedit.Model
	status string
	width  int
}

func newApp(editor chipedit.Model) app {
	editor.Focus()
	return app{editor: editor}
}

func (a app) Init() tea.Cmd {
	return nil
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.editor.SetWidth(min(msg.Width-2, 72))
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "esc":
			// Esc cancels a drag inside the editor; otherwise it quits.
			if !a.editor.Dragging() {
				return a, tea.Quit
			}
		}

	case chipedit.ChangedMsg:
		a.status = fmt.Sprintf("%d tags", len(msg.Texts))

	case chipedit.ReorderedMsg:
		a.status = fmt.Sprintf("moved tag %d to %d", msg.From, msg.To)
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("chipdemo"))
	b.WriteString("\n\n")
	b.WriteString(a.editor.View())
	b.WriteString("\n\n")
	if a.status != "" {
		b.WriteString(statusStyle.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString(helpLine(a.editor.KeyMap))
	b.WriteString("\n")
	return b.String()
}

// helpLine renders the editor's short help plus the quit key.
func helpLine(km chipedit.KeyMap) string {
	var parts []string
	for _, b := range km.ShortHelp() {
		h := b.Help()
		parts = append(parts, helpKeyStyle.Render(h.Key)+" "+statusStyle.Render(h.Desc))
	}
	parts = append(parts, helpKeyStyle.Render("esc")+" "+statusStyle.Render("quit"))
	return strings.Join(parts, "  ")
}
