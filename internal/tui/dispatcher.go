package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Zacy-Sokach/Sentix/internal/api"
	tea "github.com/charmbracelet/bubbletea"
)

// Predictor 远程情感预测，*api.Client 实现了它
type Predictor interface {
	Predict(ctx context.Context, text string) (*api.AnalysisResult, error)
}

// Dispatcher 把一次分析请求变成 tea.Cmd
// 不做去重和取消：按钮在请求进行中是禁用的
type Dispatcher struct {
	predictor Predictor
}

func NewDispatcher(predictor Predictor) *Dispatcher {
	return &Dispatcher{predictor: predictor}
}

// Analyze 文本去掉首尾空白后为空时返回 nil，不发请求
// 否则返回的命令恰好产生一个 AnalyzeSucceededMsg 或 AnalyzeFailedMsg
func (d *Dispatcher) Analyze(text string) tea.Cmd {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	return func() tea.Msg {
		return d.run(context.Background(), text)
	}
}

func (d *Dispatcher) run(ctx context.Context, text string) tea.Msg {
	start := time.Now()
	slog.Info("[Dispatcher] Sending text for analysis",
		slog.Int("chars", utf8.RuneCountInString(text)))

	result, err := d.predictor.Predict(ctx, text)
	if err == nil && result == nil {
		err = errors.New("预测服务返回了空结果")
	}
	if err != nil {
		slog.Warn("[Dispatcher] Remote call failed",
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return AnalyzeFailedMsg{Error: err}
	}

	slog.Info("[Dispatcher] Analysis received",
		slog.String("sentiment", result.Sentiment),
		slog.Float64("confidence", result.Confidence),
		slog.Duration("elapsed", time.Since(start)))
	return AnalyzeSucceededMsg{Result: *result}
}
