package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tejavira2023/fitverse/internal/models"
)

type stubAssistantMessageStore struct {
	nextID   int64
	created  []models.AssistantMessage
	cleared  bool
	listed   []models.AssistantMessage
	total    int
	lastPage struct {
		limit  int
		offset int
	}
}

func (s *stubAssistantMessageStore) Create(_ context.Context, userID int64, role string, content string) (*models.AssistantMessage, error) {
	s.nextID++
	message := models.AssistantMessage{
		ID:        s.nextID,
		UserID:    userID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
	}
	s.created = append(s.created, message)
	return &message, nil
}

func (s *stubAssistantMessageStore) ListByUser(_ context.Context, _ int64, limit int, offset int) ([]models.AssistantMessage, int, error) {
	s.lastPage.limit = limit
	s.lastPage.offset = offset
	return s.listed, s.total, nil
}

func (s *stubAssistantMessageStore) DeleteByUser(_ context.Context, _ int64) error {
	s.cleared = true
	return nil
}

type stubProfileReader struct {
	profile *models.UserProfile
	err     error
}

func (s *stubProfileReader) GetByUserID(_ context.Context, _ int64) (*models.UserProfile, error) {
	return s.profile, s.err
}

func newTestAssistantService(store *stubAssistantMessageStore, goal string) *AssistantService {
	profiles := &stubProfileReader{err: pgx.ErrNoRows}
	if goal != "" {
		profiles = &stubProfileReader{profile: &models.UserProfile{Goal: &goal}}
	}
	service := NewAssistantService(store, profiles, 0)
	service.SetPick(func(int) int { return 0 })
	return service
}

func TestSendMessageDietQuestionUsesGoalPlan(t *testing.T) {
	store := &stubAssistantMessageStore{}
	service := newTestAssistantService(store, "weight-gain")

	exchange, err := service.SendMessage(context.Background(), 42, "What should I eat today?")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	reply := exchange.AssistantMessage.Content
	if !strings.HasPrefix(reply, "Here's a personalized diet plan") {
		t.Fatalf("expected diet plan reply, got %q", reply)
	}
	if !strings.Contains(reply, "**Breakfast:** Oatmeal with banana, peanut butter, and protein powder") {
		t.Fatalf("expected weight-gain plan, got %q", reply)
	}
	if !strings.HasSuffix(reply, "Would you like me to customize this further based on any dietary restrictions?") {
		t.Fatalf("expected diet follow-up question, got %q", reply)
	}
	if len(store.created) != 2 {
		t.Fatalf("expected user and assistant messages stored, got %d", len(store.created))
	}
	if store.created[0].Role != models.AssistantRoleUser || store.created[1].Role != models.AssistantRoleAssistant {
		t.Fatalf("unexpected stored roles: %q %q", store.created[0].Role, store.created[1].Role)
	}
}

func TestSendMessageStressWorkoutGetsMeditationExercises(t *testing.T) {
	store := &stubAssistantMessageStore{}
	service := newTestAssistantService(store, "")

	exchange, err := service.SendMessage(context.Background(), 42, "I feel so stressed, need a workout")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	reply := exchange.AssistantMessage.Content
	if !strings.HasPrefix(reply, "Based on your goals, here are some exercise recommendations") {
		t.Fatalf("expected exercise reply, got %q", reply)
	}
	if !strings.Contains(reply, "Gentle yoga or tai chi for mind-body connection") {
		t.Fatalf("expected meditation recommendations, got %q", reply)
	}
}

func TestSendMessageProgressQuestionReturnsTrackingTips(t *testing.T) {
	store := &stubAssistantMessageStore{}
	service := newTestAssistantService(store, "weight-loss")

	exchange, err := service.SendMessage(context.Background(), 42, "How do I track my progress?")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	if !strings.Contains(exchange.AssistantMessage.Content, "Take weekly measurements and photos") {
		t.Fatalf("expected progress tips, got %q", exchange.AssistantMessage.Content)
	}
}

func TestSendMessageFallsBackToGenericResponse(t *testing.T) {
	store := &stubAssistantMessageStore{}
	service := newTestAssistantService(store, "")
	service.SetPick(func(n int) int { return n - 1 })

	exchange, err := service.SendMessage(context.Background(), 42, "Hello there")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	reply := exchange.AssistantMessage.Content
	found := false
	for _, generic := range genericResponses {
		if reply == generic {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected one of the generic responses, got %q", reply)
	}
}

func TestSendMessageRejectsBlankContent(t *testing.T) {
	store := &stubAssistantMessageStore{}
	service := newTestAssistantService(store, "")

	if _, err := service.SendMessage(context.Background(), 42, "   "); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(store.created) != 0 {
		t.Fatalf("expected nothing stored, got %d messages", len(store.created))
	}
}

func TestGenerateReplyHonorsContextCancellation(t *testing.T) {
	store := &stubAssistantMessageStore{}
	profiles := &stubProfileReader{err: pgx.ErrNoRows}
	service := NewAssistantService(store, profiles, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := service.GenerateReply(ctx, "What should I eat?", ""); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestHistoryTranslatesPageToOffset(t *testing.T) {
	store := &stubAssistantMessageStore{total: 25}
	service := newTestAssistantService(store, "")

	if _, _, err := service.History(context.Background(), 42, 3, 10); err != nil {
		t.Fatalf("History: %v", err)
	}
	if store.lastPage.limit != 10 || store.lastPage.offset != 20 {
		t.Fatalf("expected limit 10 offset 20, got %+v", store.lastPage)
	}

	if _, _, err := service.History(context.Background(), 42, 0, 10); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for page 0, got %v", err)
	}
}

func TestClearHistoryDeletesConversation(t *testing.T) {
	store := &stubAssistantMessageStore{}
	service := newTestAssistantService(store, "")

	if err := service.ClearHistory(context.Background(), 42); err != nil {
		t.Fatalf("ClearHistory: %v", err)
	}
	if !store.cleared {
		t.Fatal("expected conversation cleared")
	}
}
