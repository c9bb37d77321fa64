package services

import (
	"context"
	"testing"
	"time"

	"github.com/tejavira2023/fitverse/internal/models"
)

type stubRewardsProfileStore struct {
	profile    *models.UserProfile
	coins      int
	lastAmount int
}

func (s *stubRewardsProfileStore) GetByUserID(_ context.Context, _ int64) (*models.UserProfile, error) {
	return s.profile, nil
}

func (s *stubRewardsProfileStore) AddCoins(_ context.Context, _ int64, amount int) (int, error) {
	s.lastAmount = amount
	s.coins += amount
	return s.coins, nil
}

func TestBuildAchievementsThresholds(t *testing.T) {
	achievements := buildAchievements(7, 55)

	byID := make(map[string]Achievement, len(achievements))
	for _, a := range achievements {
		byID[a.ID] = a
	}
	if len(byID) != 5 {
		t.Fatalf("expected 5 achievements, got %d", len(byID))
	}

	if a := byID["streak-3"]; !a.Completed || a.Progress != 100 {
		t.Fatalf("expected streak-3 complete, got %+v", a)
	}
	if a := byID["streak-7"]; !a.Completed || a.Title != "7-Day Streak" {
		t.Fatalf("expected streak-7 complete, got %+v", a)
	}
	if a := byID["streak-30"]; a.Completed || a.Progress != 7*100/30 {
		t.Fatalf("expected streak-30 partial, got %+v", a)
	}
	if a := byID["coins-50"]; !a.Completed || a.Description != "Earn 50 coins through workouts and quizzes" {
		t.Fatalf("expected coins-50 complete, got %+v", a)
	}
	if a := byID["coins-100"]; a.Completed || a.Progress != 55 {
		t.Fatalf("expected coins-100 at 55%%, got %+v", a)
	}
}

func TestBuildAchievementsCapsProgressAtHundred(t *testing.T) {
	achievements := buildAchievements(90, 500)
	for _, a := range achievements {
		if a.Progress > 100 {
			t.Fatalf("achievement %s progress exceeds 100: %d", a.ID, a.Progress)
		}
		if !a.Completed {
			t.Fatalf("expected %s complete, got %+v", a.ID, a)
		}
	}
}

func TestCurrentStreakZeroWhenChainBroken(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	lastWeek := now.AddDate(0, 0, -7)
	if got := currentStreak(&models.UserProfile{Streak: 9, LastCompletedDay: &lastWeek}, now); got != 0 {
		t.Fatalf("expected broken chain to read 0, got %d", got)
	}

	yesterday := now.AddDate(0, 0, -1)
	if got := currentStreak(&models.UserProfile{Streak: 9, LastCompletedDay: &yesterday}, now); got != 9 {
		t.Fatalf("expected intact chain to read 9, got %d", got)
	}

	if got := currentStreak(&models.UserProfile{Streak: 9}, now); got != 0 {
		t.Fatalf("expected no completions to read 0, got %d", got)
	}
}

func TestAddCoinsPassesAmountThrough(t *testing.T) {
	store := &stubRewardsProfileStore{coins: 10}
	service := NewRewardsService(store)

	coins, err := service.AddCoins(context.Background(), 42, 0)
	if err != nil {
		t.Fatalf("AddCoins: %v", err)
	}
	if coins != 10 {
		t.Fatalf("expected zero adjustment to report balance 10, got %d", coins)
	}

	coins, err = service.AddCoins(context.Background(), 42, -4)
	if err != nil {
		t.Fatalf("AddCoins: %v", err)
	}
	if coins != 6 || store.lastAmount != -4 {
		t.Fatalf("expected balance 6 after spend, got %d (amount %d)", coins, store.lastAmount)
	}
}

func TestSummaryReportsEffectiveStreak(t *testing.T) {
	stale := time.Now().AddDate(0, 0, -5)
	store := &stubRewardsProfileStore{profile: &models.UserProfile{Coins: 60, Streak: 4, LastCompletedDay: &stale}}
	service := NewRewardsService(store)

	summary, err := service.Summary(context.Background(), 42)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.Coins != 60 {
		t.Fatalf("expected 60 coins, got %d", summary.Coins)
	}
	if summary.Streak != 0 {
		t.Fatalf("expected effective streak 0 for stale chain, got %d", summary.Streak)
	}
	if len(summary.Achievements) != 5 {
		t.Fatalf("expected 5 achievements, got %d", len(summary.Achievements))
	}
}
