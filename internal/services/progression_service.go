package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tejavira2023/fitverse/internal/catalog"
	"github.com/tejavira2023/fitverse/internal/models"
	"github.com/tejavira2023/fitverse/internal/repository"
)

// LevelRewardCoins is the fixed reward for finishing a level for the
// first time.
const LevelRewardCoins = 5

// ProgressionService owns the level-gating state machine: which level a
// user may open today, recording completions, streaks and coin rewards.
type ProgressionService struct {
	db           *pgxpool.Pool
	progressRepo *repository.ProgressRepository
	profileRepo  *repository.UserProfileRepository
	now          func() time.Time
}

func NewProgressionService(
	db *pgxpool.Pool,
	progressRepo *repository.ProgressRepository,
	profileRepo *repository.UserProfileRepository,
) *ProgressionService {
	return &ProgressionService{
		db:           db,
		progressRepo: progressRepo,
		profileRepo:  profileRepo,
		now:          time.Now,
	}
}

// SetNow overrides the clock. Tests only.
func (s *ProgressionService) SetNow(now func() time.Time) {
	s.now = now
}

// CanAccessLevel answers whether the user may open the level at
// levelIndex of categoryID today.
func (s *ProgressionService) CanAccessLevel(
	ctx context.Context,
	userID int64,
	categoryID string,
	levelIndex int,
) (bool, error) {
	daily, err := s.currentDaily(ctx, s.progressRepo, userID)
	if err != nil {
		return false, err
	}

	completed, err := s.completedSet(ctx, s.progressRepo, userID)
	if err != nil {
		return false, err
	}

	return levelAccessible(categoryID, levelIndex, completed, daily), nil
}

// LevelView is a catalog level annotated with the caller's gating state.
type LevelView struct {
	catalog.Level
	Accessible bool `json:"accessible"`
	Completed  bool `json:"completed"`
}

// CategoryView is a catalog category with its levels annotated for the
// caller.
type CategoryView struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Color       string      `json:"color"`
	Icon        string      `json:"icon"`
	Levels      []LevelView `json:"levels"`
}

// CategoryOverview annotates the whole catalog with the user's current
// access and completion state using a single state load.
func (s *ProgressionService) CategoryOverview(ctx context.Context, userID int64) ([]CategoryView, error) {
	daily, err := s.currentDaily(ctx, s.progressRepo, userID)
	if err != nil {
		return nil, err
	}

	completed, err := s.completedSet(ctx, s.progressRepo, userID)
	if err != nil {
		return nil, err
	}

	source := catalog.Categories()
	views := make([]CategoryView, 0, len(source))
	for _, category := range source {
		view := CategoryView{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
			Color:       category.Color,
			Icon:        category.Icon,
			Levels:      make([]LevelView, 0, len(category.Levels)),
		}
		for i, level := range category.Levels {
			view.Levels = append(view.Levels, LevelView{
				Level:      level,
				Accessible: levelAccessible(category.ID, i, completed, daily),
				Completed:  completed[level.ID],
			})
		}
		views = append(views, view)
	}
	return views, nil
}

// CategoryDetail annotates a single category for the user.
func (s *ProgressionService) CategoryDetail(ctx context.Context, userID int64, categoryID string) (*CategoryView, error) {
	if _, ok := catalog.CategoryByID(categoryID); !ok {
		return nil, ErrCategoryNotFound
	}

	views, err := s.CategoryOverview(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range views {
		if views[i].ID == categoryID {
			return &views[i], nil
		}
	}
	return nil, ErrCategoryNotFound
}

// Snapshot returns everything the client needs to render progress:
// completed level ids, today's gate and the profile counters.
func (s *ProgressionService) Snapshot(ctx context.Context, userID int64) (*models.ProgressSnapshot, error) {
	daily, err := s.currentDaily(ctx, s.progressRepo, userID)
	if err != nil {
		return nil, err
	}

	levelIDs, err := s.progressRepo.ListCompleted(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.ProgressSnapshot{
		CompletedLevels: levelIDs,
		TodaysProgress:  *daily,
		Streak:          profile.Streak,
		Coins:           profile.Coins,
	}, nil
}

// CompleteLevel records a finished level: the completed set grows (once),
// today's progress locks to the owning category, the streak advances and
// coins are awarded on first completion. All of it commits atomically.
//
// The gate in CanAccessLevel is not re-validated here; recording is
// unconditional once the client reaches this call.
func (s *ProgressionService) CompleteLevel(
	ctx context.Context,
	userID int64,
	levelID string,
) (*models.CompletionResult, error) {
	category, _, _, ok := catalog.FindLevel(levelID)
	if !ok {
		return nil, ErrLevelNotFound
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txProgressRepo := repository.NewProgressRepository(tx)
	txProfileRepo := repository.NewUserProfileRepository(tx)

	if _, err := s.currentDaily(ctx, txProgressRepo, userID); err != nil {
		return nil, err
	}

	newlyCompleted, err := txProgressRepo.InsertCompleted(ctx, userID, levelID)
	if err != nil {
		return nil, err
	}

	today := civilDate(s.now())
	if err := txProgressRepo.SetDaily(ctx, userID, category.ID, levelID, today); err != nil {
		return nil, err
	}

	profile, err := txProfileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	streak, changed := streakAfterCompletion(profile.Streak, profile.LastCompletedDay, today)
	if changed {
		if err := txProfileRepo.UpdateStreak(ctx, userID, streak, today); err != nil {
			return nil, err
		}
	}

	coinsAwarded := 0
	if newlyCompleted {
		if _, err := txProfileRepo.AddCoins(ctx, userID, LevelRewardCoins); err != nil {
			return nil, err
		}
		coinsAwarded = LevelRewardCoins
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	categoryID := category.ID
	completedLevelID := levelID
	return &models.CompletionResult{
		LevelID:        levelID,
		CategoryID:     category.ID,
		NewlyCompleted: newlyCompleted,
		CoinsAwarded:   coinsAwarded,
		Streak:         streak,
		TodaysProgress: models.DailyProgress{
			CategoryID: &categoryID,
			LevelID:    &completedLevelID,
			Completed:  true,
		},
	}, nil
}

// currentDaily loads today's progress, lazily resetting it when the
// stored row belongs to an earlier day.
func (s *ProgressionService) currentDaily(
	ctx context.Context,
	repo *repository.ProgressRepository,
	userID int64,
) (*models.DailyProgress, error) {
	today := civilDate(s.now())

	daily, err := repo.GetDaily(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if sameDay(daily.LastResetDay, today) {
		return daily, nil
	}

	if err := repo.ResetDailyIfStale(ctx, userID, today); err != nil {
		return nil, err
	}
	return &models.DailyProgress{LastResetDay: today}, nil
}

func (s *ProgressionService) completedSet(
	ctx context.Context,
	repo *repository.ProgressRepository,
	userID int64,
) (map[string]bool, error) {
	levelIDs, err := repo.ListCompleted(ctx, userID)
	if err != nil {
		return nil, err
	}

	completed := make(map[string]bool, len(levelIDs))
	for _, levelID := range levelIDs {
		completed[levelID] = true
	}
	return completed, nil
}

// levelAccessible applies the gating rules in order: the first level of
// any chain is free; a completion today locks other categories out;
// already-completed levels stay reviewable; otherwise the previous level
// in the chain must be done.
func levelAccessible(
	categoryID string,
	levelIndex int,
	completed map[string]bool,
	daily *models.DailyProgress,
) bool {
	if levelIndex == 0 {
		return true
	}

	if daily.Completed && stringValue(daily.CategoryID) != categoryID {
		return false
	}

	category, ok := catalog.CategoryByID(categoryID)
	if !ok {
		return false
	}
	if levelIndex < 0 || levelIndex >= len(category.Levels) {
		return false
	}

	if completed[category.Levels[levelIndex].ID] {
		return true
	}

	return completed[category.Levels[levelIndex-1].ID]
}

// streakAfterCompletion computes the streak for a completion happening on
// today: unchanged when already credited today, +1 when yesterday was the
// last completed day, otherwise back to 1.
func streakAfterCompletion(current int, lastCompletedDay *time.Time, today time.Time) (int, bool) {
	if lastCompletedDay != nil && sameDay(*lastCompletedDay, today) {
		return current, false
	}

	yesterday := today.AddDate(0, 0, -1)
	if lastCompletedDay != nil && sameDay(*lastCompletedDay, yesterday) {
		return current + 1, true
	}
	return 1, true
}

// civilDate strips the time of day, keeping the local calendar date.
func civilDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
