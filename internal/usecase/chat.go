package usecase

import (
	"errors"
	"log/slog"
	"time"

	"github.com/careerpath-labs/career-compass/internal/adapter/observability"
	"github.com/careerpath-labs/career-compass/internal/assistant"
	"github.com/careerpath-labs/career-compass/internal/domain"
)

// User-facing strings for LLM failure modes; the underlying errors are
// logged, never shown.
const (
	msgAIUnavailable = "I'm sorry, but the AI service is currently unavailable. Please check your API configuration."
	msgAIBusy        = "The AI service is currently experiencing high demand. Please try again in a few moments."
	msgAITrouble     = "I'm experiencing technical difficulties. Please try again later."
)

// ChatService answers free-form chat messages with the LLM when it is
// available and falls back to the rule-based assistant otherwise, so the
// chat widget always answers. Exchanges are persisted best-effort.
type ChatService struct {
	AI            domain.ChatClient
	Assistant     assistant.Responder
	Conversations domain.ConversationRepository
	HistoryLimit  int
}

// NewChatService constructs a ChatService.
func NewChatService(ai domain.ChatClient, asst assistant.Responder, conv domain.ConversationRepository, historyLimit int) ChatService {
	if historyLimit <= 0 {
		historyLimit = 20
	}
	return ChatService{AI: ai, Assistant: asst, Conversations: conv, HistoryLimit: historyLimit}
}

// Reply produces the chat answer for userID. Every path returns a string.
func (s ChatService) Reply(ctx domain.Context, userID, message string) string {
	start := time.Now()
	backend := "llm"
	reply := s.generate(ctx, userID, message, &backend)

	observability.ChatRequestsTotal.WithLabelValues(backend).Inc()
	observability.ChatRequestDuration.WithLabelValues(backend).Observe(time.Since(start).Seconds())

	s.persist(ctx, userID, message, reply)
	return reply
}

func (s ChatService) generate(ctx domain.Context, userID, message string, backend *string) string {
	if s.AI == nil || !s.AI.Available() {
		*backend = "fallback"
		return s.Assistant.Reply(ctx, userID, message)
	}

	history := s.history(ctx, userID)
	reply, err := s.AI.Reply(ctx, message, history)
	if err == nil {
		return reply
	}

	slog.Warn("llm chat failed", slog.String("user_id", userID), slog.Any("error", err))
	*backend = "llm_error"
	switch {
	case errors.Is(err, domain.ErrUnavailable):
		return msgAIUnavailable
	case errors.Is(err, domain.ErrUpstreamRateLimit):
		return msgAIBusy
	default:
		return msgAITrouble
	}
}

func (s ChatService) history(ctx domain.Context, userID string) []domain.Message {
	if s.Conversations == nil {
		return nil
	}
	history, err := s.Conversations.History(ctx, userID, s.HistoryLimit)
	if err != nil {
		slog.Warn("chat history fetch failed", slog.String("user_id", userID), slog.Any("error", err))
		return nil
	}
	return history
}

// persist stores the exchange; storage failures never affect the reply.
func (s ChatService) persist(ctx domain.Context, userID, message, reply string) {
	if s.Conversations == nil {
		return
	}
	if _, err := s.Conversations.Append(ctx, domain.Message{UserID: userID, Role: domain.RoleUser, Content: message}); err != nil {
		slog.Warn("conversation append failed", slog.String("user_id", userID), slog.Any("error", err))
		return
	}
	if _, err := s.Conversations.Append(ctx, domain.Message{UserID: userID, Role: domain.RoleAssistant, Content: reply}); err != nil {
		slog.Warn("conversation append failed", slog.String("user_id", userID), slog.Any("error", err))
	}
}
