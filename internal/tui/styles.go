package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	pageStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	focusedPageStyle = pageStyle.BorderForeground(lipgloss.Color("12"))
	pageTitleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	pageMetaStyle    = lipgloss.NewStyle().Faint(true).Italic(true)
	turningStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)
