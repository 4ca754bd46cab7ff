package tui

import (
	"log/slog"
)

// UnreachableNotice 远程调用失败时展示给用户的唯一提示
const UnreachableNotice = "Backend not responding. Check the prediction service!"

// Notifier 向用户展示阻塞式提示
type Notifier interface {
	Notify(message string)
}

// logNotifier 只记录日志，界面上的弹窗由 Model 自己负责
type logNotifier struct{}

func (logNotifier) Notify(message string) {
	slog.Warn("[Notifier] alert shown", slog.String("message", message))
}
