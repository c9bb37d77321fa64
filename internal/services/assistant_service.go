package services

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tejavira2023/fitverse/internal/models"
)

type assistantMessageStore interface {
	Create(ctx context.Context, userID int64, role string, content string) (*models.AssistantMessage, error)
	ListByUser(ctx context.Context, userID int64, limit int, offset int) ([]models.AssistantMessage, int, error)
	DeleteByUser(ctx context.Context, userID int64) error
}

type profileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.UserProfile, error)
}

// AssistantService is the rule-based chat assistant: keyword-matched
// canned replies, shaped by the user's goal, behind a configurable
// "thinking" delay.
type AssistantService struct {
	messageRepo assistantMessageStore
	profileRepo profileReader
	delay       time.Duration
	pick        func(n int) int
}

func NewAssistantService(
	messageRepo assistantMessageStore,
	profileRepo profileReader,
	delay time.Duration,
) *AssistantService {
	return &AssistantService{
		messageRepo: messageRepo,
		profileRepo: profileRepo,
		delay:       delay,
		pick:        rand.Intn,
	}
}

// SetPick overrides the fallback-response selector. Tests only.
func (s *AssistantService) SetPick(pick func(n int) int) {
	s.pick = pick
}

// AssistantExchange is one round trip: the stored user message and the
// stored assistant reply.
type AssistantExchange struct {
	UserMessage      *models.AssistantMessage `json:"user_message"`
	AssistantMessage *models.AssistantMessage `json:"assistant_message"`
}

// SendMessage stores the user's message, generates the reply and stores
// it too. The reply is generated after the configured delay.
func (s *AssistantService) SendMessage(ctx context.Context, userID int64, content string) (*AssistantExchange, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, ErrInvalidInput
	}

	goal := ""
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err == nil {
		goal = profile.GoalValue()
	}

	userMessage, err := s.messageRepo.Create(ctx, userID, models.AssistantRoleUser, trimmed)
	if err != nil {
		return nil, err
	}

	reply, err := s.GenerateReply(ctx, trimmed, goal)
	if err != nil {
		return nil, err
	}

	assistantMessage, err := s.messageRepo.Create(ctx, userID, models.AssistantRoleAssistant, reply)
	if err != nil {
		return nil, err
	}

	return &AssistantExchange{
		UserMessage:      userMessage,
		AssistantMessage: assistantMessage,
	}, nil
}

// History returns the user's conversation page plus the total count.
func (s *AssistantService) History(ctx context.Context, userID int64, page int, limit int) ([]models.AssistantMessage, int, error) {
	if page <= 0 || limit <= 0 {
		return nil, 0, ErrInvalidInput
	}
	return s.messageRepo.ListByUser(ctx, userID, limit, (page-1)*limit)
}

// ClearHistory wipes the conversation so the client can start over from
// the welcome message.
func (s *AssistantService) ClearHistory(ctx context.Context, userID int64) error {
	return s.messageRepo.DeleteByUser(ctx, userID)
}

// GenerateReply classifies the message and renders the matching canned
// response. Classification is first-match-wins: diet, then exercise,
// then progress, then a random generic fallback.
func (s *AssistantService) GenerateReply(ctx context.Context, message string, goal string) (string, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	lowerMessage := strings.ToLower(message)
	lowerGoal := strings.ToLower(goal)

	switch {
	case containsAny(lowerMessage, dietKeywords):
		plan := dietPlans[planKeyFor(lowerMessage, lowerGoal)]
		return "Here's a personalized diet plan that might help you achieve your goals:\n\n" +
			strings.Join(plan, "\n\n") +
			"\n\nWould you like me to customize this further based on any dietary restrictions?", nil
	case containsAny(lowerMessage, exerciseKeywords):
		recommendations := exerciseRecommendations[planKeyFor(lowerMessage, lowerGoal)]
		return "Based on your goals, here are some exercise recommendations:\n\n" +
			strings.Join(recommendations, "\n\n") +
			"\n\nWould you like more specific guidance on any of these exercises?", nil
	case containsAny(lowerMessage, progressKeywords):
		return progressTips, nil
	default:
		return genericResponses[s.pick(len(genericResponses))], nil
	}
}

// planKeyFor picks which plan table entry fits the user. The goal wins
// for gain/figure wording; yoga and meditation can also be triggered by
// the message itself; everything else falls back to weight loss.
func planKeyFor(lowerMessage, lowerGoal string) string {
	switch {
	case strings.Contains(lowerGoal, "gain"):
		return "weight-gain"
	case strings.Contains(lowerGoal, "tone"),
		strings.Contains(lowerGoal, "shape"),
		strings.Contains(lowerGoal, "figure"):
		return "figure-management"
	case strings.Contains(lowerMessage, "yoga"),
		strings.Contains(lowerGoal, "yoga"):
		return "yoga"
	case strings.Contains(lowerMessage, "meditation"),
		strings.Contains(lowerMessage, "stress"),
		strings.Contains(lowerMessage, "relax"),
		strings.Contains(lowerGoal, "meditation"):
		return "meditation"
	default:
		return "weight-loss"
	}
}

// FormatMessageTimestamp renders message times the way the client
// expects them on the wire.
func FormatMessageTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
