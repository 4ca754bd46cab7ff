package api

// PredictRequest 发送给预测服务的请求体
type PredictRequest struct {
	Text string `json:"text"`
}

// AnalysisResult 预测服务返回的情感分析结果
// Confidence 为 0-100 的百分比
type AnalysisResult struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}

// 已知的情感类别
const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
)
