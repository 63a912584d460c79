package tui

import (
	"adcopy/preview"
	"adcopy/types"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
const (
	colorPrimary   = "#1877F2"
	colorSuccess   = "#04B575"
	colorError     = "#FF0000"
	colorInfo      = "#626262"
	colorHighlight = "#FAFAFA"
	colorBorder    = "#DDDFE2"
)

// Styles for the TUI application
var (
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorPrimary)).
		MarginTop(1).
		MarginBottom(1)

	StatusStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorSuccess))

	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorError))

	InfoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorInfo))

	BoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorBorder)).
		Padding(0, 1)

	HighlightStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorHighlight)).
		Background(lipgloss.Color(colorPrimary)).
		Padding(0, 1)

	FocusStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorPrimary))

	HookStyle = lipgloss.NewStyle().Bold(true)
)

// BadgeStyle colours an angle badge the way the web preview does
func BadgeStyle(a types.Angle) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorHighlight)).
		Background(lipgloss.Color(preview.AngleColor(a))).
		Padding(0, 1)
}
