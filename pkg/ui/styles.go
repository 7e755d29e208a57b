package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var errorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"})

// PrintError writes "Error: <err>" to w, styled when color is set
func PrintError(w io.Writer, err error, color bool) {
	msg := fmt.Sprintf("Error: %v", err)
	if color {
		msg = errorStyle.Render(msg)
	}
	fmt.Fprintln(w, msg)
}
