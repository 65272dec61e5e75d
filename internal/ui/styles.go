package ui

import "github.com/charmbracelet/lipgloss"

// Palette colors for lipgloss-rendered blocks.
var (
	accentColor  = lipgloss.Color("#FF8C00")
	successColor = lipgloss.Color("#9ece6a")
	dimColor     = lipgloss.Color("#666666")
)

// SectionTitle renders a section heading such as "--- Comparison Summary ---".
// Colors are dropped when the current theme is the no-color theme.
func SectionTitle(title string) string {
	style := lipgloss.NewStyle().Bold(true)
	if IsColorEnabled() {
		style = style.Foreground(accentColor)
	}
	return style.Render("--- " + title + " ---")
}

// ResultLine renders the final "label = value" line of verbose output.
func ResultLine(label, value string) string {
	labelStyle := lipgloss.NewStyle()
	valueStyle := lipgloss.NewStyle().Bold(true)
	if IsColorEnabled() {
		labelStyle = labelStyle.Foreground(dimColor)
		valueStyle = valueStyle.Foreground(successColor)
	}
	return labelStyle.Render(label+" = ") + valueStyle.Render(value)
}
