package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxInputChars 输入框允许的最大字符数
const MaxInputChars = 1000

// InputState 当前输入文本，长度总是由文本推导
type InputState struct {
	text string
}

// Update 接受新文本，超出 MaxInputChars 的部分被截断
func (s InputState) Update(text string) InputState {
	if utf8.RuneCountInString(text) > MaxInputChars {
		runes := []rune(text)
		text = string(runes[:MaxInputChars])
	}
	return InputState{text: text}
}

func (s InputState) Text() string {
	return s.text
}

// Length 按字符（rune）计数
func (s InputState) Length() int {
	return utf8.RuneCountInString(s.text)
}

func (s InputState) Trimmed() string {
	return strings.TrimSpace(s.text)
}

// Blank 去掉首尾空白后是否为空
func (s InputState) Blank() bool {
	return s.Trimmed() == ""
}

// Counter 形如 "42 / 1000"
func (s InputState) Counter() string {
	return fmt.Sprintf("%d / %d", s.Length(), MaxInputChars)
}
