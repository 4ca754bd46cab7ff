package tui

import (
	"github.com/Zacy-Sokach/Sentix/internal/api"
)

// Message types for tea.Model

// AnalyzeSucceededMsg 预测服务返回了可解析的结果
type AnalyzeSucceededMsg struct {
	Result api.AnalysisResult
}

// AnalyzeFailedMsg 网络错误、非 2xx 或无法解析的响应
type AnalyzeFailedMsg struct {
	Error error
}
