package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/labforge-dev/labforge/internal/config"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	pathStyle = lipgloss.NewStyle().
			Bold(true)
)

// render applies a style unless the user disabled color.
func render(style lipgloss.Style, s string) string {
	if !config.GetBool(config.KeyColor) {
		return s
	}
	return style.Render(s)
}
