package tui

import "github.com/charmbracelet/lipgloss"

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#667EEA")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#1976D2")).
			Padding(0, 1).
			Width(26)

	fanficCardStyle = cardStyle.
			BorderForeground(lipgloss.Color("#764BA2"))

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1976D2")).
			Background(lipgloss.Color("#E3F2FD")).
			Padding(0, 1)

	mutedChipStyle = chipStyle.
			Foreground(lipgloss.Color("#9E9E9E")).
			Background(lipgloss.Color("#F5F5F5"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#667EEA"))

	storyStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color("#1976D2")).
			PaddingLeft(2)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500")).
			MarginTop(1)
)
