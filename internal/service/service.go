// Package service implements the chat orchestration logic.
package service

import (
	"github.com/madiparts/chat-backend/internal/llm"
	"github.com/madiparts/chat-backend/internal/store"
)

type Service struct {
	store     store.Store
	llmClient llm.Completer
}

func New(store store.Store, llmClient llm.Completer) *Service {
	return &Service{
		store:     store,
		llmClient: llmClient,
	}
}
