package app

import (
	"context"
	"sync/atomic"

	"tokpee/ai"
	"tokpee/domain/chat"
	apperrors "tokpee/internal/errors"
	"tokpee/internal/session"
)

// AssistantService runs the session's product research conversation
type AssistantService struct {
	assistant *ai.Assistant
	state     *session.AppState
	busy      atomic.Bool
}

// NewAssistantService creates an assistant service bound to state
func NewAssistantService(assistant *ai.Assistant, state *session.AppState) *AssistantService {
	return &AssistantService{assistant: assistant, state: state}
}

// Send adds input to the conversation and waits for the reply. Only one
// message may be in flight per session.
func (s *AssistantService) Send(ctx context.Context, input string) ([]chat.Message, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, apperrors.InvalidInput("assistant is still replying")
	}
	defer s.busy.Store(false)

	s.state.SetLoading(true)
	defer s.state.SetLoading(false)

	history, err := s.assistant.Reply(ctx, s.state.History(), input)
	if err != nil {
		return nil, err
	}
	s.state.SetHistory(history)
	return history, nil
}

// History returns the conversation so far
func (s *AssistantService) History() []chat.Message {
	return s.state.History()
}
