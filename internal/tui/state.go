package tui

import (
	"github.com/Zacy-Sokach/Sentix/internal/api"
)

// RequestPhase 请求阶段
type RequestPhase int

const (
	PhaseIdle RequestPhase = iota
	PhaseInFlight
)

func (p RequestPhase) String() string {
	switch p {
	case PhaseInFlight:
		return "in_flight"
	default:
		return "idle"
	}
}

// Event 驱动 State 变化的事件
type Event interface {
	isEvent()
}

// TextChanged 输入框内容变化
type TextChanged struct {
	Text string
}

// AnalyzeRequested 用户触发分析
type AnalyzeRequested struct{}

// AnalyzeSucceeded 远程调用成功
type AnalyzeSucceeded struct {
	Result api.AnalysisResult
}

// AnalyzeFailed 远程调用失败，不区分失败原因
type AnalyzeFailed struct {
	Err error
}

func (TextChanged) isEvent()      {}
func (AnalyzeRequested) isEvent() {}
func (AnalyzeSucceeded) isEvent() {}
func (AnalyzeFailed) isEvent()    {}

// State 界面的全部可观察状态
// Result 为 nil 表示还没有成功的分析
type State struct {
	Input  InputState
	Phase  RequestPhase
	Result *api.AnalysisResult
}

// Apply 纯函数：根据事件返回新的状态
func (s State) Apply(e Event) State {
	switch e := e.(type) {
	case TextChanged:
		// 编辑文本不会清除已有结果
		s.Input = s.Input.Update(e.Text)
	case AnalyzeRequested:
		if s.Input.Blank() {
			return s
		}
		s.Phase = PhaseInFlight
	case AnalyzeSucceeded:
		result := e.Result
		s.Result = &result
		s.Phase = PhaseIdle
	case AnalyzeFailed:
		s.Phase = PhaseIdle
	}
	return s
}

// CanAnalyze 触发按钮是否可用
func (s State) CanAnalyze() bool {
	return s.Phase == PhaseIdle && !s.Input.Blank()
}
