// Package cli provides theme formatting helpers.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/rivnakm/chcolors/internal/theme"
)

var (
	activeStyle = lipgloss.NewStyle().Bold(true)
	lightStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D29922"))
	darkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F85149")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8B9AAE"))
)

// palette applies styles only when the writer supports them.
type palette struct {
	enabled bool
}

func newPalette(w io.Writer) palette {
	return palette{enabled: colorEnabled(w)}
}

func (p palette) render(style lipgloss.Style, text string) string {
	if !p.enabled {
		return text
	}
	return style.Render(text)
}

func (p palette) active(text string) string {
	return p.render(activeStyle, text)
}

func (p palette) error(text string) string {
	return p.render(errorStyle, text)
}

func (p palette) muted(text string) string {
	return p.render(mutedStyle, text)
}

func (p palette) themeType(t theme.ThemeType) string {
	label := fmt.Sprintf("[%s]", t)
	switch t {
	case theme.Light:
		return p.render(lightStyle, label)
	case theme.Dark:
		return p.render(darkStyle, label)
	default:
		return label
	}
}
