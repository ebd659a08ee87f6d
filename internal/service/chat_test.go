package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/madiparts/chat-backend/internal/domain"
	"github.com/madiparts/chat-backend/internal/llm"
	"github.com/madiparts/chat-backend/internal/store"
)

const testPrompt = "ты эксперт по автозапчастям"

func TestChatSuccess(t *testing.T) {
	sessions := store.NewMemoryStore(testPrompt)
	mock := &llm.MockClient{Reply: "**Колодки** подходят"}
	svc := New(sessions, mock)

	resp, err := svc.Chat(context.Background(), domain.ChatRequest{Message: "подбери колодки", SessionID: "s1"})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if resp.Reply != "Колодки подходят" {
		t.Fatalf("expected sanitized reply, got %q", resp.Reply)
	}
	if resp.SessionID != "s1" {
		t.Fatalf("unexpected session id: %q", resp.SessionID)
	}

	messages := sessions.Messages("s1")
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	if messages[0].Role != domain.RoleSystem || messages[0].Content != testPrompt {
		t.Fatalf("unexpected system message: %+v", messages[0])
	}
	if messages[1].Role != domain.RoleUser || messages[1].Content != "подбери колодки" {
		t.Fatalf("unexpected user message: %+v", messages[1])
	}
	if messages[2].Role != domain.RoleAssistant || messages[2].Content != "Колодки подходят" {
		t.Fatalf("unexpected assistant message: %+v", messages[2])
	}
}

func TestChatMintsSessionID(t *testing.T) {
	sessions := store.NewMemoryStore(testPrompt)
	svc := New(sessions, llm.NewMockClient())

	resp, err := svc.Chat(context.Background(), domain.ChatRequest{Message: "привет"})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if resp.SessionID == "" {
		t.Fatalf("expected minted session id")
	}
	if _, err := uuid.Parse(resp.SessionID); err != nil {
		t.Fatalf("minted session id is not a UUID: %q", resp.SessionID)
	}
	if got := sessions.Messages(resp.SessionID); len(got) != 3 {
		t.Fatalf("expected history under minted id, got %+v", got)
	}
}

func TestChatEmptyMessage(t *testing.T) {
	sessions := store.NewMemoryStore(testPrompt)
	mock := llm.NewMockClient()
	svc := New(sessions, mock)

	for _, message := range []string{"", "   ", "\n\t "} {
		_, err := svc.Chat(context.Background(), domain.ChatRequest{Message: message, SessionID: "s1"})
		if !errors.Is(err, domain.ErrEmptyMessage) {
			t.Fatalf("Chat(%q) = %v, want ErrEmptyMessage", message, err)
		}
	}
	if sessions.Len() != 0 {
		t.Fatalf("rejected requests must not create sessions, got %d", sessions.Len())
	}
	if len(mock.Calls) != 0 {
		t.Fatalf("rejected requests must not reach the provider, got %d calls", len(mock.Calls))
	}
}

func TestChatTrimsMessage(t *testing.T) {
	sessions := store.NewMemoryStore(testPrompt)
	mock := &llm.MockClient{Reply: "ок"}
	svc := New(sessions, mock)

	if _, err := svc.Chat(context.Background(), domain.ChatRequest{Message: "  привет  ", SessionID: "s1"}); err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if len(mock.Calls) != 1 || mock.Calls[0] != "привет" {
		t.Fatalf("expected trimmed message forwarded, got %+v", mock.Calls)
	}
	if messages := sessions.Messages("s1"); messages[1].Content != "привет" {
		t.Fatalf("expected trimmed message stored, got %q", messages[1].Content)
	}
}

func TestChatProviderFailure(t *testing.T) {
	sessions := store.NewMemoryStore(testPrompt)
	mock := &llm.MockClient{Err: &llm.ProviderError{Op: "send request", Err: errors.New("connection refused")}}
	svc := New(sessions, mock)

	_, err := svc.Chat(context.Background(), domain.ChatRequest{Message: "привет", SessionID: "s1"})
	if err == nil {
		t.Fatalf("expected error")
	}
	var perr *llm.ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected wrapped *ProviderError, got %v", err)
	}

	// The user message is already committed when the provider call fails.
	messages := sessions.Messages("s1")
	if len(messages) != 2 {
		t.Fatalf("expected system and user messages only, got %d", len(messages))
	}
	if messages[1].Role != domain.RoleUser {
		t.Fatalf("unexpected trailing message: %+v", messages[1])
	}
}

func TestChatSequentialTurns(t *testing.T) {
	sessions := store.NewMemoryStore(testPrompt)
	mock := &llm.MockClient{Reply: "ответ"}
	svc := New(sessions, mock)

	for _, message := range []string{"первый вопрос", "второй вопрос"} {
		if _, err := svc.Chat(context.Background(), domain.ChatRequest{Message: message, SessionID: "s1"}); err != nil {
			t.Fatalf("Chat(%q) failed: %v", message, err)
		}
	}

	messages := sessions.Messages("s1")
	if len(messages) != 5 {
		t.Fatalf("expected 5 messages, got %d", len(messages))
	}
	wantRoles := []string{domain.RoleSystem, domain.RoleUser, domain.RoleAssistant, domain.RoleUser, domain.RoleAssistant}
	for i, role := range wantRoles {
		if messages[i].Role != role {
			t.Fatalf("message %d role = %q, want %q", i, messages[i].Role, role)
		}
	}
	if messages[1].Content != "первый вопрос" || messages[3].Content != "второй вопрос" {
		t.Fatalf("user messages out of order: %+v", messages)
	}
}
