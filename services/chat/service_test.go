package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"atelier/models"
)

type scriptedGenerator struct {
	reply string
	err   error
	// last prompt seen, for assertions on context replay.
	prompt string
}

func (g *scriptedGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.reply, g.err
}

type memContextStore struct {
	contexts map[string]*models.ChatContext
}

func newMemContextStore() *memContextStore {
	return &memContextStore{contexts: make(map[string]*models.ChatContext)}
}

func (s *memContextStore) Get(ctx context.Context, visitorID string) (*models.ChatContext, error) {
	if c, ok := s.contexts[visitorID]; ok {
		return c, nil
	}
	return &models.ChatContext{}, nil
}

func (s *memContextStore) Set(ctx context.Context, visitorID string, c *models.ChatContext) error {
	s.contexts[visitorID] = c
	return nil
}

func (s *memContextStore) Clear(ctx context.Context, visitorID string) error {
	delete(s.contexts, visitorID)
	return nil
}

type memChatLog struct {
	exchanges map[string][]models.ChatMessage
}

func newMemChatLog() *memChatLog {
	return &memChatLog{exchanges: make(map[string][]models.ChatMessage)}
}

func (l *memChatLog) AppendExchange(ctx context.Context, visitorID string, visitor, assistant models.ChatMessage) error {
	l.exchanges[visitorID] = append(l.exchanges[visitorID], visitor, assistant)
	return nil
}

func (l *memChatLog) GetConversation(ctx context.Context, visitorID string) (*models.Conversation, error) {
	return &models.Conversation{VisitorID: visitorID, Messages: l.exchanges[visitorID]}, nil
}

func (l *memChatLog) ListRecent(ctx context.Context, limit int64) ([]models.Conversation, error) {
	var out []models.Conversation
	for id, msgs := range l.exchanges {
		out = append(out, models.Conversation{VisitorID: id, Messages: msgs})
	}
	return out, nil
}

func newTestChatService(gen *scriptedGenerator) (*DefaultChatService, *memChatLog) {
	log := newMemChatLog()
	return &DefaultChatService{
		Gen:        gen,
		Context:    newMemContextStore(),
		Log:        log,
		SitePrompt: "You answer questions about the studio.",
	}, log
}

func TestRespond_LogsExchange(t *testing.T) {
	gen := &scriptedGenerator{reply: "We offer brand and web design."}
	svc, log := newTestChatService(gen)

	reply, err := svc.Respond(context.Background(), "visitor-1", "What do you do?")
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if reply != gen.reply {
		t.Fatalf("expected generated reply, got %q", reply)
	}

	msgs := log.exchanges["visitor-1"]
	if len(msgs) != 2 {
		t.Fatalf("expected visitor+assistant pair in the log, got %d messages", len(msgs))
	}
	if msgs[0].Role != "visitor" || msgs[0].Text != "What do you do?" {
		t.Fatalf("unexpected visitor message: %+v", msgs[0])
	}
	if msgs[1].Role != "assistant" || msgs[1].Text != gen.reply {
		t.Fatalf("unexpected assistant message: %+v", msgs[1])
	}
}

func TestRespond_FallsBackWhenGeneratorFails(t *testing.T) {
	gen := &scriptedGenerator{err: errors.New("model unavailable")}
	svc, log := newTestChatService(gen)

	reply, err := svc.Respond(context.Background(), "visitor-1", "Are you free Tuesday?")
	if err != nil {
		t.Fatalf("respond should not surface generator failures: %v", err)
	}
	if reply != fallbackReply {
		t.Fatalf("expected fallback reply, got %q", reply)
	}
	if len(log.exchanges["visitor-1"]) != 2 {
		t.Fatal("the exchange should be logged even on fallback")
	}
}

func TestRespond_ReplaysContextIntoPrompt(t *testing.T) {
	gen := &scriptedGenerator{reply: "Sure."}
	svc, _ := newTestChatService(gen)
	ctx := context.Background()

	if _, err := svc.Respond(ctx, "visitor-1", "Do you build web shops?"); err != nil {
		t.Fatalf("respond: %v", err)
	}
	if _, err := svc.Respond(ctx, "visitor-1", "How much?"); err != nil {
		t.Fatalf("respond: %v", err)
	}

	if want := "visitor: Do you build web shops?"; !strings.Contains(gen.prompt, want) {
		t.Fatalf("second prompt should replay earlier turns, got:\n%s", gen.prompt)
	}
}

func TestRespond_TrimsContext(t *testing.T) {
	gen := &scriptedGenerator{reply: "ok"}
	store := newMemContextStore()
	svc := &DefaultChatService{
		Gen:        gen,
		Context:    store,
		Log:        newMemChatLog(),
		SitePrompt: "prompt",
	}
	ctx := context.Background()

	for i := 0; i < maxContextTurns+5; i++ {
		if _, err := svc.Respond(ctx, "visitor-1", fmt.Sprintf("question %d", i)); err != nil {
			t.Fatalf("respond %d: %v", i, err)
		}
	}

	got := len(store.contexts["visitor-1"].Messages)
	if got != maxContextTurns*2 {
		t.Fatalf("context should be trimmed to %d messages, got %d", maxContextTurns*2, got)
	}
}
