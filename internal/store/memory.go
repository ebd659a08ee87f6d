package store

import (
	"sync"
	"time"

	"github.com/madiparts/chat-backend/internal/domain"
)

// MemoryStore keeps sessions in process memory. Sessions are never evicted;
// a restart loses everything.
type MemoryStore struct {
	mu           sync.RWMutex
	sessions     map[string]*domain.Session
	systemPrompt string
}

// NewMemoryStore creates an empty store. New sessions are seeded with
// systemPrompt as their first message.
func NewMemoryStore(systemPrompt string) *MemoryStore {
	return &MemoryStore{
		sessions:     make(map[string]*domain.Session),
		systemPrompt: systemPrompt,
	}
}

// Ensure MemoryStore implements Store interface.
var _ Store = (*MemoryStore)(nil)

// GetOrCreate returns a snapshot of the session, creating it when unseen.
func (s *MemoryStore) GetOrCreate(sessionID string) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.getOrCreateLocked(sessionID))
}

// Append adds a message to the session history. The append is atomic with
// respect to other store calls, so concurrent turns cannot corrupt a history.
func (s *MemoryStore) Append(sessionID, role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session := s.getOrCreateLocked(sessionID)
	session.Messages = append(session.Messages, domain.Message{
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	})
}

// Messages returns a copy of the session history, or nil for unseen ids.
func (s *MemoryStore) Messages(sessionID string) []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	return append([]domain.Message(nil), session.Messages...)
}

// Len returns the number of sessions in the store.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// getOrCreateLocked returns the live session record. Callers must hold mu.
func (s *MemoryStore) getOrCreateLocked(sessionID string) *domain.Session {
	if session, ok := s.sessions[sessionID]; ok {
		return session
	}
	now := time.Now()
	session := &domain.Session{
		SessionID: sessionID,
		CreatedAt: now,
		Messages: []domain.Message{{
			Role:      domain.RoleSystem,
			Content:   s.systemPrompt,
			CreatedAt: now,
		}},
	}
	s.sessions[sessionID] = session
	return session
}

// snapshot copies a session so callers never share the live record.
func snapshot(session *domain.Session) *domain.Session {
	copied := *session
	copied.Messages = append([]domain.Message(nil), session.Messages...)
	return &copied
}
