package app

import (
	"context"
	"strings"

	"github.com/Akarsh-2004/Bagragi/internal/domain"
)

const systemPrompt = "You are a helpful travel assistant for Bagragi, a travel platform. " +
	"You help users with trip planning, hotel recommendations, destination info, travel tips, and general travel questions. " +
	"Be friendly, concise, and practical in responses."

// ChatService forwards one user message plus the fixed system prompt to the
// hosted completion model. Stateless: no history is kept between calls.
type ChatService struct {
	completer domain.ChatCompleter
}

func NewChatService(completer domain.ChatCompleter) *ChatService {
	return &ChatService{completer: completer}
}

func (s *ChatService) Chat(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", domain.ErrEmptyMessage
	}
	if !s.completer.Configured() {
		return "", domain.ErrChatUnavailable
	}
	return s.completer.Complete(ctx, systemPrompt, message)
}
