package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Zacy-Sokach/Sentix/internal/api"
)

// ViewKind 结果区域的三种显示状态
type ViewKind int

const (
	ViewEmpty ViewKind = iota
	ViewLoading
	ViewResult
)

// Palette 某个情感类别的强调色和表情
type Palette struct {
	Color string
	Glyph string
}

const (
	// IdleAccent 没有结果时的强调色
	IdleAccent = "#3b82f6"
)

var (
	sentimentPalettes = map[string]Palette{
		api.SentimentPositive: {Color: "#10b981", Glyph: "😊"},
		api.SentimentNegative: {Color: "#ef4444", Glyph: "😞"},
		api.SentimentNeutral:  {Color: "#f59e0b", Glyph: "😐"},
	}

	// 未知类别统一回退到中性色
	fallbackPalette = Palette{Color: "#f59e0b", Glyph: "😐"}
)

// PaletteFor 查表得到类别对应的颜色和表情，未知类别返回回退值
func PaletteFor(sentiment string) Palette {
	if p, ok := sentimentPalettes[sentiment]; ok {
		return p
	}
	return fallbackPalette
}

// ResultView 结果区域的渲染描述
type ResultView struct {
	Kind       ViewKind
	Sentiment  string
	Confidence float64
	Palette    Palette
	// BarPercent 置信度条的填充比例，0-1
	BarPercent float64
	// TriggerEnabled 只反映阶段，文本是否为空由 State.CanAnalyze 再判断
	TriggerEnabled bool
}

// RenderResult 根据阶段和最近一次成功结果决定显示内容
func RenderResult(phase RequestPhase, result *api.AnalysisResult) ResultView {
	if phase == PhaseInFlight {
		return ResultView{Kind: ViewLoading, Palette: Palette{Color: IdleAccent}}
	}
	if result == nil {
		return ResultView{Kind: ViewEmpty, Palette: Palette{Color: IdleAccent}, TriggerEnabled: true}
	}
	return ResultView{
		Kind:           ViewResult,
		Sentiment:      result.Sentiment,
		Confidence:     result.Confidence,
		Palette:        PaletteFor(result.Sentiment),
		BarPercent:     barPercent(result.Confidence),
		TriggerEnabled: true,
	}
}

// barPercent 将 0-100 线性映射到 0-1，超出范围或 NaN 时夹紧
func barPercent(confidence float64) float64 {
	if math.IsNaN(confidence) || confidence <= 0 {
		return 0
	}
	if confidence >= 100 {
		return 1
	}
	return confidence / 100
}

// FormatConfidence 按服务返回的精度显示，如 "73%"、"87.25%"
func FormatConfidence(confidence float64) string {
	return strconv.FormatFloat(confidence, 'f', -1, 64) + "%"
}

// RenderBar 纯文本置信度条，填充格数 = round(percent*width)
func RenderBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Round(percent * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// RenderPlain 无颜色的单行文本渲染，供非交互模式使用
func RenderPlain(v ResultView, barWidth int) string {
	switch v.Kind {
	case ViewLoading:
		return "⚙️ Processing..."
	case ViewResult:
		return fmt.Sprintf("%s %s  %s  %s",
			v.Palette.Glyph, v.Sentiment, RenderBar(v.BarPercent, barWidth), FormatConfidence(v.Confidence))
	default:
		return "💭 Analyze text to see sentiment results"
	}
}
