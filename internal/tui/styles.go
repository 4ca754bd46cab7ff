package tui

import "github.com/charmbracelet/lipgloss"

var (
	mutedColor  = lipgloss.Color("#94a3b8")
	borderColor = lipgloss.Color("#334155")

	sidebarStyle = lipgloss.NewStyle().
			Width(sidebarWidth).
			Padding(1, 2).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(borderColor)

	brandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#a78bfa"))

	statBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1).
			Width(sidebarWidth - 4)

	statLabelStyle = lipgloss.NewStyle().Foreground(mutedColor)
	statValueStyle = lipgloss.NewStyle().Bold(true)

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e2e8f0"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().Bold(true)
	counterStyle   = lipgloss.NewStyle().Foreground(mutedColor)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(IdleAccent)).
			Padding(0, 2)

	buttonDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#64748b")).
				Background(lipgloss.Color("#1e293b")).
				Padding(0, 2)

	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(IdleAccent))

	labelStyle = lipgloss.NewStyle().Foreground(mutedColor)

	emptyStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(1, 0).
			Align(lipgloss.Center)

	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#ef4444")).
			Padding(1, 3)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
