package view

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// titleStyle for bold red headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160"))

	// dimStyle for muted metadata text and tree guides
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// errorStyle for error indicators
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	// tagStyle for element names
	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	// attrStyle for attribute names
	attrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// boxStyle for the summary box with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 1)
)

// palette applies the styles above, or nothing when color is off.
type palette struct {
	plain bool
}

func (p palette) render(s lipgloss.Style, text string) string {
	if p.plain {
		return text
	}
	return s.Render(text)
}

func (p palette) title(s string) string   { return p.render(titleStyle, s) }
func (p palette) dim(s string) string     { return p.render(dimStyle, s) }
func (p palette) success(s string) string { return p.render(successStyle, s) }
func (p palette) failure(s string) string { return p.render(errorStyle, s) }
func (p palette) tag(s string) string     { return p.render(tagStyle, s) }
func (p palette) attr(s string) string    { return p.render(attrStyle, s) }

func (p palette) box(s string) string {
	if p.plain {
		return s
	}
	return boxStyle.Render(s)
}
