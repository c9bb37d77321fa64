package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/tejavira2023/fitverse/internal/models"
	"github.com/tejavira2023/fitverse/internal/repository"
)

var (
	testDBOnce sync.Once
	testDBPool *pgxpool.Pool
	testDBErr  error
)

func TestProgressionCompleteLevelAwardsCoinsOnce(t *testing.T) {
	ctx := context.Background()
	pool := integrationTestPool(t)
	service := newIntegrationProgressionService(pool)

	userID := createTestUser(t, ctx, pool)
	t.Cleanup(func() { cleanupTestUsers(t, ctx, pool, userID) })

	first, err := service.CompleteLevel(ctx, userID, "weight-loss-1")
	if err != nil {
		t.Fatalf("CompleteLevel: %v", err)
	}
	if !first.NewlyCompleted || first.CoinsAwarded != LevelRewardCoins {
		t.Fatalf("expected first completion to award %d coins, got %+v", LevelRewardCoins, first)
	}
	if first.Streak != 1 {
		t.Fatalf("expected streak 1, got %d", first.Streak)
	}

	second, err := service.CompleteLevel(ctx, userID, "weight-loss-1")
	if err != nil {
		t.Fatalf("repeat CompleteLevel: %v", err)
	}
	if second.NewlyCompleted || second.CoinsAwarded != 0 {
		t.Fatalf("expected repeat completion to award nothing, got %+v", second)
	}
	if second.Streak != 1 {
		t.Fatalf("expected streak unchanged on same day, got %d", second.Streak)
	}

	snapshot, err := service.Snapshot(ctx, userID)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snapshot.Coins != LevelRewardCoins {
		t.Fatalf("expected %d coins total, got %d", LevelRewardCoins, snapshot.Coins)
	}
	if len(snapshot.CompletedLevels) != 1 || snapshot.CompletedLevels[0] != "weight-loss-1" {
		t.Fatalf("unexpected completed set: %v", snapshot.CompletedLevels)
	}
}

func TestProgressionDailyCompletionLocksOtherCategories(t *testing.T) {
	ctx := context.Background()
	pool := integrationTestPool(t)
	service := newIntegrationProgressionService(pool)

	userID := createTestUser(t, ctx, pool)
	t.Cleanup(func() { cleanupTestUsers(t, ctx, pool, userID) })

	if _, err := service.CompleteLevel(ctx, userID, "yoga-1"); err != nil {
		t.Fatalf("CompleteLevel: %v", err)
	}

	accessible, err := service.CanAccessLevel(ctx, userID, "yoga", 1)
	if err != nil {
		t.Fatalf("CanAccessLevel same category: %v", err)
	}
	if !accessible {
		t.Fatal("expected next level in completed category to open")
	}

	locked, err := service.CanAccessLevel(ctx, userID, "meditation", 1)
	if err != nil {
		t.Fatalf("CanAccessLevel other category: %v", err)
	}
	if locked {
		t.Fatal("expected other categories to be locked for the rest of the day")
	}

	open, err := service.CanAccessLevel(ctx, userID, "meditation", 0)
	if err != nil {
		t.Fatalf("CanAccessLevel first level: %v", err)
	}
	if !open {
		t.Fatal("expected first levels to stay open despite the lockout")
	}
}

func TestProgressionDailyStateResetsNextDay(t *testing.T) {
	ctx := context.Background()
	pool := integrationTestPool(t)
	service := newIntegrationProgressionService(pool)

	userID := createTestUser(t, ctx, pool)
	t.Cleanup(func() { cleanupTestUsers(t, ctx, pool, userID) })

	day1 := time.Date(2030, 5, 1, 8, 0, 0, 0, time.UTC)
	service.SetNow(func() time.Time { return day1 })

	result, err := service.CompleteLevel(ctx, userID, "meditation-1")
	if err != nil {
		t.Fatalf("CompleteLevel day 1: %v", err)
	}
	if result.Streak != 1 {
		t.Fatalf("expected streak 1 on day 1, got %d", result.Streak)
	}

	day2 := day1.AddDate(0, 0, 1)
	service.SetNow(func() time.Time { return day2 })

	snapshot, err := service.Snapshot(ctx, userID)
	if err != nil {
		t.Fatalf("Snapshot day 2: %v", err)
	}
	if snapshot.TodaysProgress.Completed {
		t.Fatalf("expected day 2 to start fresh, got %+v", snapshot.TodaysProgress)
	}
	if snapshot.TodaysProgress.CategoryID != nil || snapshot.TodaysProgress.LevelID != nil {
		t.Fatalf("expected cleared daily state, got %+v", snapshot.TodaysProgress)
	}

	next, err := service.CompleteLevel(ctx, userID, "meditation-2")
	if err != nil {
		t.Fatalf("CompleteLevel day 2: %v", err)
	}
	if next.Streak != 2 {
		t.Fatalf("expected streak 2 after consecutive days, got %d", next.Streak)
	}
}

func TestConsultationBookingConflicts(t *testing.T) {
	ctx := context.Background()
	pool := integrationTestPool(t)
	service := NewConsultationService(pool, repository.NewConsultationRepository(pool))

	firstUserID := createTestUser(t, ctx, pool)
	secondUserID := createTestUser(t, ctx, pool)
	t.Cleanup(func() { cleanupTestUsers(t, ctx, pool, firstUserID, secondUserID) })

	scheduledAt := time.Now().Add(48 * time.Hour).Truncate(time.Hour)
	booked, err := service.Book(ctx, firstUserID, BookConsultationInput{
		ConsultantID:    "c1",
		ScheduledAt:     scheduledAt,
		DurationMinutes: 60,
		Notes:           "Initial nutrition consultation",
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if booked.Status != "pending" || booked.Reference == "" {
		t.Fatalf("unexpected booking: %+v", booked)
	}

	if _, err := service.Book(ctx, secondUserID, BookConsultationInput{
		ConsultantID:    "c1",
		ScheduledAt:     scheduledAt.Add(30 * time.Minute),
		DurationMinutes: 45,
		Notes:           "Overlapping request",
	}); err != ErrConflict {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	cancelled, err := service.Cancel(ctx, firstUserID, booked.ID)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if cancelled.Status != "cancelled" {
		t.Fatalf("expected cancelled status, got %q", cancelled.Status)
	}

	if _, err := service.Cancel(ctx, firstUserID, booked.ID); err != ErrInvalidStateTransition {
		t.Fatalf("expected ErrInvalidStateTransition on repeat cancel, got %v", err)
	}
}

func integrationTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	testDBOnce.Do(func() {
		_ = godotenv.Load(".env")
		_ = godotenv.Load(filepath.Join("..", "..", ".env"))

		dbURL := os.Getenv("DB_URL")
		if dbURL == "" {
			testDBErr = fmt.Errorf("DB_URL is not set")
			return
		}

		cfg, err := pgxpool.ParseConfig(dbURL)
		if err != nil {
			testDBErr = err
			return
		}

		testDBPool, testDBErr = pgxpool.NewWithConfig(context.Background(), cfg)
		if testDBErr != nil {
			return
		}
		testDBErr = testDBPool.Ping(context.Background())
	})

	if testDBErr != nil {
		t.Skipf("skipping integration test: %v", testDBErr)
	}
	return testDBPool
}

func newIntegrationProgressionService(pool *pgxpool.Pool) *ProgressionService {
	return NewProgressionService(
		pool,
		repository.NewProgressRepository(pool),
		repository.NewUserProfileRepository(pool),
	)
}

func createTestUser(t *testing.T, ctx context.Context, pool *pgxpool.Pool) int64 {
	t.Helper()

	userRepo := repository.NewUserRepository(pool)
	user := &models.User{
		Email:        fmt.Sprintf("progression-test-%d@example.com", time.Now().UnixNano()),
		PasswordHash: "test-hash",
	}
	if err := userRepo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	userProfileRepo := repository.NewUserProfileRepository(pool)
	if err := userProfileRepo.CreateEmpty(ctx, user.ID); err != nil {
		t.Fatalf("CreateEmpty user profile: %v", err)
	}
	return user.ID
}

func cleanupTestUsers(t *testing.T, ctx context.Context, pool *pgxpool.Pool, userIDs ...int64) {
	t.Helper()

	if len(userIDs) == 0 {
		return
	}
	if _, err := pool.Exec(ctx, "DELETE FROM users WHERE id = ANY($1)", userIDs); err != nil {
		t.Fatalf("cleanup users: %v", err)
	}
}
