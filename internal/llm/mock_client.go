package llm

import (
	"context"
	"fmt"
)

// MockClient is a mock implementation of Completer for testing.
type MockClient struct {
	// Reply is returned verbatim when set.
	Reply string
	// Err is returned instead of a reply when set.
	Err error
	// Calls records the messages passed to Complete.
	Calls []string
}

// NewMockClient creates a new mock completion client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements Completer interface.
var _ Completer = (*MockClient)(nil)

// Complete returns the configured reply or error.
func (m *MockClient) Complete(ctx context.Context, message string) (string, error) {
	m.Calls = append(m.Calls, message)
	if m.Err != nil {
		return "", m.Err
	}
	if m.Reply != "" {
		return m.Reply, nil
	}
	return fmt.Sprintf("[MOCK] Received your message: %q. This is a mock response.", truncate(message, 100)), nil
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
