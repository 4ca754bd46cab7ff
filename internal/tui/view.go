package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type modelStat struct {
	icon  string
	label string
	value string
}

// 侧边栏展示的模型信息
var modelStats = []modelStat{
	{"🎯", "ACCURACY", "87.2%"},
	{"🧠", "MODEL", "LSTM RNN"},
	{"📊", "TRAINED ON", "50k+ Data"},
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.alert != "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.alertView())
	}

	content := m.mainView()
	if m.width < sidebarMinWidth {
		return content
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), content)
}

func (m Model) sidebarView() string {
	var sb strings.Builder
	sb.WriteString(brandStyle.Render("✨ Sentix"))
	sb.WriteString("\n\n")

	for _, s := range modelStats {
		box := statLabelStyle.Render(s.icon+" "+s.label) + "\n" + statValueStyle.Render(s.value)
		sb.WriteString(statBoxStyle.Render(box))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(statLabelStyle.Render("AI-Powered Sentiment Analysis"))
	if Version != "" {
		sb.WriteString("\n")
		sb.WriteString(statLabelStyle.Render(Version))
	}

	height := m.height
	if height < 1 {
		height = 1
	}
	return sidebarStyle.Height(height - 1).Render(sb.String())
}

func (m Model) mainView() string {
	width := m.mainWidth() - 2
	if width < 24 {
		width = 24
	}

	sections := []string{
		titleStyle.Render("Sentiment Analysis"),
		subtitleStyle.Render("Advanced NLP-powered sentiment detection in real-time"),
		"",
		m.inputCardView(width),
		m.resultSectionView(width),
		m.helpView(),
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) inputCardView(width int) string {
	title := cardTitleStyle.Render("📝 Analyze Text")
	counter := counterStyle.Render(m.state.Input.Counter())
	gap := width - 4 - lipgloss.Width(title) - lipgloss.Width(counter)
	if gap < 1 {
		gap = 1
	}
	header := title + strings.Repeat(" ", gap) + counter

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.textarea.View(),
		"",
		m.buttonView(),
	)
	return cardStyle.Width(width - 2).Render(body)
}

func (m Model) buttonView() string {
	if m.state.Phase == PhaseInFlight {
		return buttonDisabledStyle.Render(m.spinner.View() + " Processing...")
	}
	if !m.state.CanAnalyze() {
		return buttonDisabledStyle.Render("✨ Analyze Sentiment")
	}
	return buttonStyle.Render("✨ Analyze Sentiment")
}

func (m Model) resultSectionView(width int) string {
	v := RenderResult(m.state.Phase, m.state.Result)

	switch v.Kind {
	case ViewResult:
		return m.resultCardView(v, width)
	case ViewLoading:
		// 请求进行中仍显示上一次的结果，进度由按钮展示
		if m.state.Result != nil {
			return m.resultCardView(RenderResult(PhaseIdle, m.state.Result), width)
		}
		return ""
	default:
		return emptyStyle.Width(width - 2).Render("💭\nAnalyze text to see sentiment results")
	}
}

func (m Model) resultCardView(v ResultView, width int) string {
	accent := lipgloss.Color(v.Palette.Color)

	badge := lipgloss.NewStyle().
		Background(accent).
		Padding(0, 1).
		Render(v.Palette.Glyph)
	sentiment := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("SENTIMENT"),
		lipgloss.NewStyle().Bold(true).Foreground(accent).Render(v.Sentiment),
	)

	bar := m.bar
	bar.FullColor = v.Palette.Color
	confidence := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("CONFIDENCE SCORE"),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(IdleAccent)).Render(FormatConfidence(v.Confidence)),
		bar.ViewAs(v.BarPercent),
	)

	row := lipgloss.JoinHorizontal(lipgloss.Center, badge, "  ", sentiment, "      ", confidence)
	return cardStyle.
		Width(width - 2).
		BorderForeground(accent).
		Render(row)
}

func (m Model) alertView() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Render("⚠️  "+m.alert),
		"",
		helpStyle.Render("Press any key to dismiss"),
	)
	return alertStyle.Render(body)
}

func (m Model) helpView() string {
	help := "Enter: analyze • Ctrl+J: new line • Ctrl+C: quit"
	if m.state.Phase == PhaseInFlight {
		help = "Analyzing... • Ctrl+C: quit"
	}
	return helpStyle.Render(help)
}
