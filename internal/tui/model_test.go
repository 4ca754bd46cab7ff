package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/Zacy-Sokach/Sentix/internal/api"
	tea "github.com/charmbracelet/bubbletea"
)

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(message string) {
	r.messages = append(r.messages, message)
}

func newTestModel(t *testing.T, predictor Predictor) (Model, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	m := InitialModel(NewDispatcher(predictor), notifier)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model), notifier
}

func typeText(m Model, text string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(Model)
}

func pressEnter(m Model) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

// runCmd 执行命令（展开 Batch），把产生的消息依次送回模型
func runCmd(m Model, cmd tea.Cmd) Model {
	if cmd == nil {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = runCmd(m, c)
		}
		return m
	}
	switch msg.(type) {
	case AnalyzeSucceededMsg, AnalyzeFailedMsg:
		next, _ := m.Update(msg)
		return next.(Model)
	}
	return m
}

func TestModel_TypingUpdatesInput(t *testing.T) {
	m, _ := newTestModel(t, &fakePredictor{})
	m = typeText(m, "hello")

	if m.State().Input.Text() != "hello" {
		t.Errorf("Input = %q, want %q", m.State().Input.Text(), "hello")
	}
	if m.State().Input.Length() != 5 {
		t.Errorf("Length = %d, want 5", m.State().Input.Length())
	}
}

func TestModel_InputLimitedAtEditBoundary(t *testing.T) {
	m, _ := newTestModel(t, &fakePredictor{})
	m = typeText(m, strings.Repeat("a", MaxInputChars+200))

	if m.State().Input.Length() != MaxInputChars {
		t.Errorf("Length = %d, want %d", m.State().Input.Length(), MaxInputChars)
	}
}

func TestModel_WideCharsTypedOneByOne(t *testing.T) {
	m, _ := newTestModel(t, &fakePredictor{})
	for i := 0; i < MaxInputChars; i++ {
		m = typeText(m, "好")
	}

	if m.State().Input.Length() != MaxInputChars {
		t.Fatalf("Length = %d, want %d", m.State().Input.Length(), MaxInputChars)
	}
	if m.State().Input.Counter() != "1000 / 1000" {
		t.Errorf("Counter = %q", m.State().Input.Counter())
	}

	m = typeText(m, "😊")
	if m.State().Input.Length() != MaxInputChars {
		t.Errorf("Length after extra keystroke = %d, want %d", m.State().Input.Length(), MaxInputChars)
	}
	if strings.Contains(m.State().Input.Text(), "😊") {
		t.Error("keystroke past the limit should be rejected")
	}
}

func TestModel_PasteTruncatedToRemainingBudget(t *testing.T) {
	m, _ := newTestModel(t, &fakePredictor{})
	m = typeText(m, strings.Repeat("好", MaxInputChars-2))
	m = typeText(m, "😊😊😊😊")

	if m.State().Input.Length() != MaxInputChars {
		t.Fatalf("Length = %d, want %d", m.State().Input.Length(), MaxInputChars)
	}
	if !strings.HasSuffix(m.State().Input.Text(), "好😊😊") {
		t.Errorf("expected the first two pasted runes to be kept")
	}
}

func TestModel_EnterOnBlankDoesNothing(t *testing.T) {
	predictor := &fakePredictor{}
	m, _ := newTestModel(t, predictor)
	m = typeText(m, "   ")

	m, cmd := pressEnter(m)
	if cmd != nil {
		t.Error("Enter on blank text should not produce a command")
	}
	if m.State().Phase != PhaseIdle {
		t.Errorf("Phase = %v, want idle", m.State().Phase)
	}
	if predictor.calls != 0 {
		t.Errorf("Predictor called %d times", predictor.calls)
	}
}

func TestModel_AnalyzeSuccess(t *testing.T) {
	predictor := &fakePredictor{
		results: []*api.AnalysisResult{{Sentiment: "Positive", Confidence: 73}},
	}
	m, notifier := newTestModel(t, predictor)
	m = typeText(m, "what a film")

	m, cmd := pressEnter(m)
	if m.State().Phase != PhaseInFlight {
		t.Fatalf("Phase = %v, want in_flight", m.State().Phase)
	}
	if cmd == nil {
		t.Fatal("Enter should dispatch a request")
	}

	// 请求进行中再次按 Enter 不会发起第二个请求
	m, second := pressEnter(m)
	if second != nil {
		t.Error("trigger should be disabled while in flight")
	}

	m = runCmd(m, cmd)
	if m.State().Phase != PhaseIdle {
		t.Errorf("Phase = %v, want idle", m.State().Phase)
	}
	if r := m.State().Result; r == nil || r.Sentiment != "Positive" || r.Confidence != 73 {
		t.Errorf("Unexpected result %+v", r)
	}
	if len(notifier.messages) != 0 {
		t.Errorf("No notification expected, got %v", notifier.messages)
	}
	if predictor.calls != 1 {
		t.Errorf("Predictor called %d times, want 1", predictor.calls)
	}
}

func TestModel_FailureNotifiesOnceAndKeepsResult(t *testing.T) {
	m, notifier := newTestModel(t, &fakePredictor{})
	next, _ := m.Update(AnalyzeSucceededMsg{Result: api.AnalysisResult{Sentiment: "Neutral", Confidence: 51}})
	m = typeText(next.(Model), "hello")

	m, _ = pressEnter(m)
	next, _ = m.Update(AnalyzeFailedMsg{Error: errors.New("connection refused")})
	m = next.(Model)

	if m.State().Phase != PhaseIdle {
		t.Errorf("Phase = %v, want idle", m.State().Phase)
	}
	if r := m.State().Result; r == nil || r.Sentiment != "Neutral" || r.Confidence != 51 {
		t.Errorf("Previous result should be unchanged, got %+v", r)
	}
	if len(notifier.messages) != 1 || notifier.messages[0] != UnreachableNotice {
		t.Errorf("Expected exactly one notice, got %v", notifier.messages)
	}
	if m.Alert() != UnreachableNotice {
		t.Errorf("Alert = %q, want %q", m.Alert(), UnreachableNotice)
	}
	if !strings.Contains(m.View(), UnreachableNotice) {
		t.Error("alert should be visible")
	}
}

func TestModel_AlertBlocksInputUntilDismissed(t *testing.T) {
	m, _ := newTestModel(t, &fakePredictor{})
	m = typeText(m, "hi")
	next, _ := m.Update(AnalyzeFailedMsg{Error: errors.New("down")})
	m = next.(Model)

	m = typeText(m, "x")
	if m.Alert() != "" {
		t.Error("any key should dismiss the alert")
	}
	if m.State().Input.Text() != "hi" {
		t.Errorf("dismissing key must not reach the editor, input = %q", m.State().Input.Text())
	}

	m = typeText(m, "!")
	if m.State().Input.Text() != "hi!" {
		t.Errorf("input after dismissal = %q, want %q", m.State().Input.Text(), "hi!")
	}
}

func TestModel_FailureThenSuccess(t *testing.T) {
	predictor := &fakePredictor{
		results: []*api.AnalysisResult{nil, {Sentiment: "Negative", Confidence: 40}},
		errs:    []error{errors.New("timeout"), nil},
	}
	m, notifier := newTestModel(t, predictor)
	m = typeText(m, "hello")

	m, cmd := pressEnter(m)
	m = runCmd(m, cmd)
	m = typeText(m, " ") // 关闭弹窗

	m, cmd = pressEnter(m)
	m = runCmd(m, cmd)

	if r := m.State().Result; r == nil || *r != (api.AnalysisResult{Sentiment: "Negative", Confidence: 40}) {
		t.Errorf("Final result = %+v, want Negative/40", r)
	}
	if len(notifier.messages) != 1 {
		t.Errorf("Expected one notification, got %d", len(notifier.messages))
	}
}

func TestModel_ViewStates(t *testing.T) {
	m, _ := newTestModel(t, &fakePredictor{})

	view := m.View()
	for _, want := range []string{"Sentix", "Sentiment Analysis", "0 / 1000", "Analyze text to see sentiment results"} {
		if !strings.Contains(view, want) {
			t.Errorf("empty view missing %q", want)
		}
	}

	next, _ := m.Update(AnalyzeSucceededMsg{Result: api.AnalysisResult{Sentiment: "Positive", Confidence: 73}})
	view = next.(Model).View()
	for _, want := range []string{"Positive", "73%", "😊"} {
		if !strings.Contains(view, want) {
			t.Errorf("result view missing %q", want)
		}
	}
	if strings.Contains(view, "Analyze text to see sentiment results") {
		t.Error("placeholder should be hidden once a result exists")
	}
}

func TestModel_NarrowWindowHidesSidebar(t *testing.T) {
	m, _ := newTestModel(t, &fakePredictor{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 70, Height: 30})

	if strings.Contains(next.(Model).View(), "LSTM RNN") {
		t.Error("sidebar should be hidden on narrow terminals")
	}
}

func TestModel_NotReadyBeforeWindowSize(t *testing.T) {
	m := InitialModel(NewDispatcher(&fakePredictor{}), nil)
	if m.View() != "Initializing..." {
		t.Errorf("View() = %q before first resize", m.View())
	}
}
