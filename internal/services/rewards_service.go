package services

import (
	"context"
	"time"

	"github.com/tejavira2023/fitverse/internal/models"
)

type rewardsProfileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.UserProfile, error)
	AddCoins(ctx context.Context, userID int64, amount int) (int, error)
}

// RewardsService exposes the coin balance and the achievement board
// derived from it. Achievements are computed, never stored.
type RewardsService struct {
	profileRepo rewardsProfileStore
}

func NewRewardsService(profileRepo rewardsProfileStore) *RewardsService {
	return &RewardsService{profileRepo: profileRepo}
}

type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
	Completed   bool   `json:"completed"`
}

type RewardsSummary struct {
	Coins        int           `json:"coins"`
	Streak       int           `json:"streak"`
	Achievements []Achievement `json:"achievements"`
}

// AddCoins adjusts the balance by amount and returns the new total.
// Negative amounts spend coins; zero is a no-op that still reports the
// current balance.
func (s *RewardsService) AddCoins(ctx context.Context, userID int64, amount int) (int, error) {
	return s.profileRepo.AddCoins(ctx, userID, amount)
}

func (s *RewardsService) Summary(ctx context.Context, userID int64) (*RewardsSummary, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	streak := currentStreak(profile, time.Now())
	return &RewardsSummary{
		Coins:        profile.Coins,
		Streak:       streak,
		Achievements: buildAchievements(streak, profile.Coins),
	}, nil
}

// currentStreak reports the streak the user sees: the stored counter,
// unless the last completion is older than yesterday, in which case the
// chain is broken and the effective streak is zero.
func currentStreak(profile *models.UserProfile, now time.Time) int {
	if profile.LastCompletedDay == nil {
		return 0
	}
	today := civilDate(now)
	last := civilDate(*profile.LastCompletedDay)
	if last.Before(today.AddDate(0, 0, -1)) {
		return 0
	}
	return profile.Streak
}

type achievementRule struct {
	id          string
	title       string
	description string
	threshold   int
	metric      func(streak, coins int) int
}

var achievementRules = []achievementRule{
	{
		id:          "streak-3",
		title:       "3-Day Streak",
		description: "Complete workouts for 3 consecutive days",
		threshold:   3,
		metric:      func(streak, _ int) int { return streak },
	},
	{
		id:          "streak-7",
		title:       "7-Day Streak",
		description: "Complete workouts for 7 consecutive days",
		threshold:   7,
		metric:      func(streak, _ int) int { return streak },
	},
	{
		id:          "streak-30",
		title:       "30-Day Streak",
		description: "Complete workouts for 30 consecutive days",
		threshold:   30,
		metric:      func(streak, _ int) int { return streak },
	},
	{
		id:          "coins-50",
		title:       "Coin Collector",
		description: "Earn 50 coins through workouts and quizzes",
		threshold:   50,
		metric:      func(_, coins int) int { return coins },
	},
	{
		id:          "coins-100",
		title:       "Fitness Fortune",
		description: "Earn 100 coins through workouts and quizzes",
		threshold:   100,
		metric:      func(_, coins int) int { return coins },
	},
}

func buildAchievements(streak, coins int) []Achievement {
	achievements := make([]Achievement, 0, len(achievementRules))
	for _, rule := range achievementRules {
		value := rule.metric(streak, coins)
		progress := value * 100 / rule.threshold
		if progress > 100 {
			progress = 100
		}
		achievements = append(achievements, Achievement{
			ID:          rule.id,
			Title:       rule.title,
			Description: rule.description,
			Progress:    progress,
			Completed:   value >= rule.threshold,
		})
	}
	return achievements
}
