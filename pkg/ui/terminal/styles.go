package terminal

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

var (
	headingColor = lipgloss.AdaptiveColor{Light: "#1A5FB4", Dark: "#99C1F1"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#5E5C64", Dark: "#9A9996"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#C01C28", Dark: "#F66151"}

	titleStyle = lipgloss.NewStyle().
			Foreground(headingColor).
			Bold(true)

	keyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)

// kindStyle colors a table row by its file type name, as ls does.
func kindStyle(kind string) *pterm.Style {
	switch kind {
	case "directory":
		return pterm.NewStyle(pterm.FgBlue, pterm.Bold)
	case "symlink":
		return pterm.NewStyle(pterm.FgCyan)
	case "block", "character":
		return pterm.NewStyle(pterm.FgYellow)
	case "fifo", "socket":
		return pterm.NewStyle(pterm.FgMagenta)
	case "not_found":
		return pterm.NewStyle(pterm.FgRed)
	default:
		return nil
	}
}
