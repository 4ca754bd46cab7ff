package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/Zacy-Sokach/Sentix/internal/utils"
)

const (
	// DefaultEndpoint 默认的远程情感预测接口
	DefaultEndpoint = "https://sentiment-api.onrender.com/predict"

	defaultTimeout = 60 * time.Second
)

// APIError 表示预测服务返回了非 2xx 状态码
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("预测服务请求失败 (状态码: %d): %s", e.StatusCode, e.Message)
}

// 全局共享的HTTP客户端，实现连接池化
var (
	sharedHTTPClient *http.Client
	httpClientOnce   sync.Once
)

// getSharedHTTPClient 返回共享的HTTP客户端实例
func getSharedHTTPClient() *http.Client {
	httpClientOnce.Do(func() {
		sharedHTTPClient = newHTTPClient(defaultTimeout)
	})
	return sharedHTTPClient
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		// 超时由传输层决定，本客户端不做重试
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			MaxIdleConns:          10,
			MaxIdleConnsPerHost:   2,
			IdleConnTimeout:       90 * time.Second,
			ResponseHeaderTimeout: 30 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
		},
	}
}

type Client struct {
	endpoint string
	client   utils.Doer
}

// Option 配置 Client
type Option func(*Client)

// WithDoer 替换底层的 HTTP 执行器，主要用于测试
func WithDoer(d utils.Doer) Option {
	return func(c *Client) {
		c.client = d
	}
}

// WithTimeout 使用独立超时的HTTP客户端，而不是共享实例
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.client = newHTTPClient(timeout)
		}
	}
}

// NewClient 创建预测服务客户端
// endpoint 为空时使用 DefaultEndpoint
func NewClient(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint: endpoint,
		client:   getSharedHTTPClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint 返回当前使用的接口地址
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Predict 将文本提交给预测服务，返回其结果
// 响应体按原样解析，不校验类别和取值范围
func (c *Client) Predict(ctx context.Context, text string) (*AnalysisResult, error) {
	body, err := json.Marshal(PredictRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("序列化请求失败: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(bodyBytes),
		}
	}

	var result AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("解析响应失败: %w", err)
	}

	return &result, nil
}
