package chat

import (
	"context"
	"strings"
	"time"

	chatlogRepo "atelier/database/repository/chatlog"
	"atelier/models"
	"atelier/utils"

	"go.uber.org/zap"
)

// maxContextTurns caps how much history is replayed into the prompt.
const maxContextTurns = 10

// fallbackReply is served when the generator is unavailable. The exchange is
// still logged so the admin sees what was asked.
const fallbackReply = "Thanks for reaching out! I can't answer right now, " +
	"but you can book a consultation from the calendar page and we'll talk it through."

// ChatService answers visitor questions and records every exchange.
type ChatService interface {
	Respond(ctx context.Context, visitorID, message string) (string, error)
	ListRecent(ctx context.Context, limit int64) ([]models.Conversation, error)
	GetTranscript(ctx context.Context, visitorID string) (*models.Conversation, error)
}

// DefaultChatService is the Gemini-backed concierge.
type DefaultChatService struct {
	Gen        Generator
	Context    ContextStore
	Log        chatlogRepo.ChatLogRepository
	SitePrompt string
}

// Respond generates a reply grounded in the site prompt and the visitor's
// recent context, then appends the exchange to the durable transcript.
func (s *DefaultChatService) Respond(ctx context.Context, visitorID, message string) (string, error) {
	logger := utils.GetLogger()

	chatCtx, err := s.Context.Get(ctx, visitorID)
	if err != nil {
		logger.Warn("chat: failed to load context, starting fresh", zap.Error(err))
		chatCtx = &models.ChatContext{}
	}

	reply, err := s.Gen.GenerateContent(ctx, s.buildPrompt(chatCtx, message))
	if err != nil {
		logger.Error("chat: generation failed, serving fallback", zap.Error(err))
		reply = fallbackReply
	}

	now := time.Now()
	visitorMsg := models.ChatMessage{Role: "visitor", Text: message, At: now}
	assistantMsg := models.ChatMessage{Role: "assistant", Text: reply, At: now}

	chatCtx.Messages = append(chatCtx.Messages, visitorMsg, assistantMsg)
	if len(chatCtx.Messages) > maxContextTurns*2 {
		chatCtx.Messages = chatCtx.Messages[len(chatCtx.Messages)-maxContextTurns*2:]
	}
	if err := s.Context.Set(ctx, visitorID, chatCtx); err != nil {
		logger.Warn("chat: failed to save context", zap.Error(err))
	}

	if err := s.Log.AppendExchange(ctx, visitorID, visitorMsg, assistantMsg); err != nil {
		logger.Error("chat: failed to log exchange", zap.String("visitorId", visitorID), zap.Error(err))
	}

	return reply, nil
}

// ListRecent returns the most recently active transcripts for admin review.
func (s *DefaultChatService) ListRecent(ctx context.Context, limit int64) ([]models.Conversation, error) {
	return s.Log.ListRecent(ctx, limit)
}

// GetTranscript returns a single visitor's transcript.
func (s *DefaultChatService) GetTranscript(ctx context.Context, visitorID string) (*models.Conversation, error) {
	return s.Log.GetConversation(ctx, visitorID)
}

func (s *DefaultChatService) buildPrompt(chatCtx *models.ChatContext, message string) string {
	var sb strings.Builder
	sb.WriteString(s.SitePrompt)
	sb.WriteString("\n\nConversation so far:\n")
	for _, m := range chatCtx.Messages {
		sb.WriteString(m.Role)
		sb.WriteString(": ")
		sb.WriteString(m.Text)
		sb.WriteString("\n")
	}
	sb.WriteString("visitor: ")
	sb.WriteString(message)
	sb.WriteString("\nassistant:")
	return sb.String()
}
