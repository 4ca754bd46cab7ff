package utils

import "net/http"

// Doer 接口，*http.Client 和测试替身都满足
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// DoerFunc 让普通函数实现 Doer
type DoerFunc func(*http.Request) (*http.Response, error)

func (f DoerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}
