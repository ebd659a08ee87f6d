package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/madiparts/chat-backend/internal/domain"
	"github.com/madiparts/chat-backend/internal/sanitize"
)

// Chat handles a single chat turn.
func (s *Service) Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		// No session is created or touched for rejected requests.
		return nil, domain.ErrEmptyMessage
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	s.store.GetOrCreate(sessionID)
	s.store.Append(sessionID, domain.RoleUser, message)

	// Only the newest message goes to the provider; the stored history is
	// bookkeeping and is not replayed.
	raw, err := s.llmClient.Complete(ctx, message)
	if err != nil {
		// The user message stays in the history; the turn has no reply.
		return nil, fmt.Errorf("completion request failed: %w", err)
	}

	reply := sanitize.Clean(raw)
	s.store.Append(sessionID, domain.RoleAssistant, reply)

	return &domain.ChatResponse{Reply: reply, SessionID: sessionID}, nil
}
