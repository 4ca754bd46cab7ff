package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Version 由 main 包设置
var Version = "dev"

const (
	// 低于该宽度时隐藏侧边栏
	sidebarMinWidth = 100
	sidebarWidth    = 30
	defaultWidth    = 80
)

type Model struct {
	state      State
	textarea   textarea.Model
	spinner    spinner.Model
	bar        progress.Model
	dispatcher *Dispatcher
	notifier   Notifier
	// alert 非空时显示阻塞式弹窗
	alert  string
	width  int
	height int
	ready  bool
}

// InitialModel 创建界面模型，notifier 为 nil 时只记录日志
func InitialModel(dispatcher *Dispatcher, notifier Notifier) Model {
	ta := textarea.New()
	ta.Placeholder = "Enter your text, review, or comment here..."
	ta.Focus()
	// textarea 的 CharLimit 按显示宽度计数，宽字符会算两次，长度限制由 Update 按 rune 执行
	ta.CharLimit = 0
	ta.SetWidth(defaultWidth - 4)
	ta.SetHeight(6)
	ta.ShowLineNumbers = false
	// Enter 用来触发分析，换行改为 Ctrl+J
	ta.KeyMap.InsertNewline.SetKeys("ctrl+j")

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	bar := progress.New(
		progress.WithSolidFill(IdleAccent),
		progress.WithoutPercentage(),
		progress.WithWidth(defaultWidth/2),
	)

	if notifier == nil {
		notifier = logNotifier{}
	}

	return Model{
		textarea:   ta,
		spinner:    sp,
		bar:        bar,
		dispatcher: dispatcher,
		notifier:   notifier,
		width:      defaultWidth,
	}
}

// State 返回当前可观察状态
func (m Model) State() State {
	return m.state
}

// Alert 返回当前弹窗内容，没有弹窗时为空
func (m Model) Alert() string {
	return m.alert
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		// 弹窗是阻塞的：任意键关闭，按键不进入输入框
		if m.alert != "" {
			m.alert = ""
			return m, nil
		}
		if msg.Type == tea.KeyEnter {
			return m.requestAnalysis()
		}
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			remaining := MaxInputChars - m.state.Input.Length()
			if remaining <= 0 {
				return m, nil
			}
			if len(msg.Runes) > remaining {
				msg.Runes = msg.Runes[:remaining]
			}
		}
		return m.updateEditor(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.state.Phase != PhaseInFlight {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case AnalyzeSucceededMsg:
		m.state = m.state.Apply(AnalyzeSucceeded{Result: msg.Result})
		return m, nil

	case AnalyzeFailedMsg:
		m.state = m.state.Apply(AnalyzeFailed{Err: msg.Error})
		m.alert = UnreachableNotice
		m.notifier.Notify(UnreachableNotice)
		return m, nil
	}

	return m.updateEditor(msg)
}

// updateEditor 把消息交给输入框，超出 MaxInputChars 的部分被截掉
func (m Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	m.state = m.state.Apply(TextChanged{Text: m.textarea.Value()})
	if m.textarea.Value() != m.state.Input.Text() {
		m.textarea.SetValue(m.state.Input.Text())
	}
	return m, cmd
}

// requestAnalysis 只有在按钮可用时才发起请求
func (m Model) requestAnalysis() (tea.Model, tea.Cmd) {
	if !m.state.CanAnalyze() || m.dispatcher == nil {
		return m, nil
	}

	cmd := m.dispatcher.Analyze(m.state.Input.Text())
	if cmd == nil {
		return m, nil
	}

	m.state = m.state.Apply(AnalyzeRequested{})
	return m, tea.Batch(cmd, m.spinner.Tick)
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.width = width
	m.height = height
	m.ready = true

	inner := m.mainWidth() - 8
	if inner < 20 {
		inner = 20
	}
	m.textarea.SetWidth(inner)
	m.bar.Width = inner / 2
}

// mainWidth 主内容区宽度
func (m Model) mainWidth() int {
	if m.width >= sidebarMinWidth {
		return m.width - sidebarWidth
	}
	return m.width
}
