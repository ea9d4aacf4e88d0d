package chipedit

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

// Color constants extracted from the Mocha palette for convenience.
var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorPeach    = lipgloss.Color(flavor.Peach().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Styles groups the lipgloss styles used to render the widget. Zero-value
// styles render unstyled text, so a partially filled Styles is fine.
type Styles struct {
	// Chip is the base style for a rendered chip.
	Chip lipgloss.Style

	// FocusedChip is applied to the chip right of the cursor while the
	// widget has focus.
	FocusedChip lipgloss.Style

	// GrabbedChip is applied to the chip being dragged, at its preview
	// position.
	GrabbedChip lipgloss.Style

	// Pending renders the not-yet-committed text segment at the cursor.
	Pending lipgloss.Style

	// Cursor renders the gap cursor marker.
	Cursor lipgloss.Style

	// Placeholder is shown when the list and the pending segment are both
	// empty.
	Placeholder lipgloss.Style

	// Frame wraps the whole row when the frame is enabled.
	Frame lipgloss.Style
}

// DefaultStyles returns the Mocha-based default look.
func DefaultStyles() Styles {
	return Styles{
		Chip: lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface0).
			Padding(0, 1),
		FocusedChip: lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorBlue).
			Padding(0, 1).
			Bold(true),
		GrabbedChip: lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorPeach).
			Padding(0, 1).
			Bold(true),
		Pending: lipgloss.NewStyle().
			Foreground(colorMauve),
		Cursor: lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true),
		Placeholder: lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Italic(true),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1),
	}
}
