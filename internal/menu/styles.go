package menu

import "github.com/charmbracelet/lipgloss"

var (
	// titleStyle renders the menu title line above the grid.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
			MarginBottom(1)

	// cellStyle is the default rendering for an unselected cell.
	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#E0E0E0"})

	// selectedStyle marks the cell under the cursor.
	selectedStyle = lipgloss.NewStyle().
			Reverse(true).
			Bold(true)

	// currentStyle marks the "current" value (e.g. the active kube
	// context) when the cursor is elsewhere.
	currentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0000CC", Dark: "#58A6FF"}).
			Bold(true)

	// helpStyle renders the one-line key hint under the grid.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#606060", Dark: "#909090"}).
			MarginTop(1)
)
