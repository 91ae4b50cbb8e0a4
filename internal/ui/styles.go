package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorBlue   = lipgloss.Color("#4EA8DE")
	colorPurple = lipgloss.Color("#8284FA")
	colorMuted  = lipgloss.Color("#808080")
	colorDanger = lipgloss.Color("#E25858")
	colorText   = lipgloss.Color("#F2F2F2")

	logoToStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	logoDoStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPurple)

	buttonStyle         = lipgloss.NewStyle().Bold(true).Foreground(colorText).Background(lipgloss.Color("#1E6F9F")).Padding(0, 1)
	buttonDisabledStyle = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	validationStyle     = lipgloss.NewStyle().Foreground(colorDanger)

	createdLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	doneLabelStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorPurple)
	counterStyle      = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	checkedTextStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(colorMuted)
	selectedStyle    = lipgloss.NewStyle().Bold(true)
	deleteStyle      = lipgloss.NewStyle().Foreground(colorMuted)

	emptyTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorMuted)
	emptyTextStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	helpStyle       = lipgloss.NewStyle().Foreground(colorMuted)
)
