package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	activeTabStyle   = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	onlineStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	offlineStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	completedStyle   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	cursorStyle      = lipgloss.NewStyle().Bold(true)
)
