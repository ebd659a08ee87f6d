package llm

import "context"

// Completer defines the interface for completion operations.
type Completer interface {
	// Complete sends a single user message and returns the assistant reply.
	Complete(ctx context.Context, message string) (string, error)
}

// Ensure Client implements Completer interface.
var _ Completer = (*Client)(nil)
