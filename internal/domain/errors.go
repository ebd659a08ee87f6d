package domain

import "errors"

// ErrEmptyMessage reports a chat request whose message is empty after
// trimming. It maps to a client error, not a server fault.
var ErrEmptyMessage = errors.New("empty message")
