// Package store defines the session storage interface and implementations.
package store

import "github.com/madiparts/chat-backend/internal/domain"

// Store defines the interface for session storage.
type Store interface {
	// GetOrCreate returns a snapshot of the session with the given id,
	// creating it first when the id is unseen. A new session starts with a
	// single system message. Total over any id, including the empty string.
	GetOrCreate(sessionID string) *domain.Session

	// Append adds a message to the session history, creating the session if
	// it does not exist yet.
	Append(sessionID, role, content string)

	// Messages returns a copy of the session history, or nil when the
	// session does not exist.
	Messages(sessionID string) []domain.Message
}
