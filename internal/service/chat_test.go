package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sahaayak/internal/model"
	"sahaayak/internal/oracle"
	"sahaayak/internal/service"
)

func TestSendChatMessagePersistsBothSides(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	resp, err := svc.SendChatMessage(context.Background(), service.ChatRequest{
		UserID: "user_1",
		Text:   "hi, rough week",
	})
	if err != nil {
		t.Fatalf("SendChatMessage() error = %v", err)
	}
	if resp.Message.Sender != model.SenderAssistant || resp.Message.Text == "" {
		t.Fatalf("unexpected assistant message %+v", resp.Message)
	}

	history, err := svc.ChatHistory("user_1")
	if err != nil {
		t.Fatalf("ChatHistory() error = %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(history))
	}
	if history[0].Sender != model.SenderUser || history[1].Sender != model.SenderAssistant {
		t.Fatalf("unexpected ordering %+v", history)
	}
}

func TestSendChatMessageCrisisFlagsTurn(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	resp, err := svc.SendChatMessage(context.Background(), service.ChatRequest{
		UserID: "user_1",
		Text:   "I want to end my life",
	})
	if err != nil {
		t.Fatalf("SendChatMessage() error = %v", err)
	}
	if !resp.Message.Crisis {
		t.Fatalf("expected crisis flag on assistant message")
	}
	if resp.Message.Text == "[CRISIS_RESPONSE]" {
		t.Fatalf("sentinel must not be stored as display text")
	}
	if resp.Message.Persona != model.PersonaEmpathetic {
		t.Fatalf("expected empathetic persona, got %q", resp.Message.Persona)
	}
}

func TestSendChatMessageClearsEarlierQuickReplies(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	if _, err := svc.SendChatMessage(context.Background(), service.ChatRequest{UserID: "user_1", Text: "hello"}); err != nil {
		t.Fatalf("SendChatMessage() error = %v", err)
	}
	history, err := svc.ChatHistory("user_1")
	if err != nil {
		t.Fatalf("ChatHistory() error = %v", err)
	}
	if len(history[1].QuickReplies) == 0 {
		t.Fatalf("expected quick replies on first assistant turn")
	}

	if _, err := svc.SendChatMessage(context.Background(), service.ChatRequest{UserID: "user_1", Text: "another thing"}); err != nil {
		t.Fatalf("SendChatMessage() error = %v", err)
	}
	history, err = svc.ChatHistory("user_1")
	if err != nil {
		t.Fatalf("ChatHistory() error = %v", err)
	}
	if len(history) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(history))
	}
	if len(history[1].QuickReplies) != 0 {
		t.Fatalf("expected earlier quick replies cleared, got %v", history[1].QuickReplies)
	}
}

func TestSendChatMessageEmptyTextRejected(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	if _, err := svc.SendChatMessage(context.Background(), service.ChatRequest{UserID: "user_1", Text: "   "}); err != service.ErrMessageEmpty {
		t.Fatalf("expected ErrMessageEmpty, got %v", err)
	}
}

func TestSendChatMessageWithPlaylistDirective(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		var content string
		if calls == 1 {
			content = "none"
		} else {
			content = "This might soothe you. [PLAYLIST:Rainy Lo-fi|https://example.com/lofi]"
		}
		payload, _ := json.Marshal(content)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":` + string(payload) + `}}]}`))
	}))
	defer server.Close()

	client, err := oracle.NewClient(oracle.Config{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	svc.SetOracleClient(client)

	resp, err := svc.SendChatMessage(context.Background(), service.ChatRequest{
		UserID: "user_1",
		Text:   "any music for studying?",
	})
	if err != nil {
		t.Fatalf("SendChatMessage() error = %v", err)
	}
	if resp.Playlist == nil || resp.Playlist.Title != "Rainy Lo-fi" {
		t.Fatalf("expected playlist suggestion, got %+v", resp.Playlist)
	}
	if resp.Message.Text != "This might soothe you." {
		t.Fatalf("expected directive stripped from text, got %q", resp.Message.Text)
	}
}

func TestAnalyzeWellnessWithoutOracleSurfacesCrisisSignal(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	if _, err := svc.AddJournalEntry("user_1", model.JournalEntry{Content: "I feel hopeless and alone"}); err != nil {
		t.Fatalf("AddJournalEntry() error = %v", err)
	}

	insight, err := svc.AnalyzeWellness(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("AnalyzeWellness() error = %v", err)
	}
	if insight.CrisisLevel != model.RiskHigh {
		t.Fatalf("expected high crisis level, got %v", insight.CrisisLevel)
	}
	if insight.Insight == "" {
		t.Fatalf("expected non-empty insight")
	}
}

func TestProactiveSuggestionFallback(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	suggestion, err := svc.ProactiveSuggestion(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("ProactiveSuggestion() error = %v", err)
	}
	if suggestion.Suggestion == "" {
		t.Fatalf("expected fallback suggestion")
	}
}

func TestRecordHelplineTap(t *testing.T) {
	t.Parallel()
	svc, st := newTestService(t)

	event, err := svc.RecordHelplineTap("user_1")
	if err != nil {
		t.Fatalf("RecordHelplineTap() error = %v", err)
	}
	if event.Action != service.HelplineTapAction {
		t.Fatalf("unexpected action %q", event.Action)
	}

	events, err := st.ListEmergencyEvents("user_1")
	if err != nil {
		t.Fatalf("ListEmergencyEvents() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
}
