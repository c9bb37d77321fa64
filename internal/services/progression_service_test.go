package services

import (
	"testing"
	"time"

	"github.com/tejavira2023/fitverse/internal/models"
)

func dailyWith(categoryID, levelID string, completed bool) *models.DailyProgress {
	daily := &models.DailyProgress{Completed: completed}
	if categoryID != "" {
		daily.CategoryID = &categoryID
	}
	if levelID != "" {
		daily.LevelID = &levelID
	}
	return daily
}

func TestLevelAccessibleFirstLevelAlwaysOpen(t *testing.T) {
	daily := dailyWith("weight-loss", "weight-loss-1", true)

	if !levelAccessible("yoga", 0, map[string]bool{}, daily) {
		t.Fatal("expected first level to stay open even after completing another category today")
	}
	if !levelAccessible("no-such-category", 0, map[string]bool{}, daily) {
		t.Fatal("expected index 0 to be open regardless of category lookup")
	}
}

func TestLevelAccessibleLocksOtherCategoriesAfterDailyCompletion(t *testing.T) {
	completed := map[string]bool{"weight-loss-1": true, "yoga-1": true}
	daily := dailyWith("weight-loss", "weight-loss-1", true)

	if levelAccessible("yoga", 1, completed, daily) {
		t.Fatal("expected other categories to be locked after today's completion")
	}
	if !levelAccessible("weight-loss", 1, completed, daily) {
		t.Fatal("expected the completed category to stay open")
	}
}

func TestLevelAccessibleRequiresPreviousLevel(t *testing.T) {
	daily := dailyWith("", "", false)

	if levelAccessible("yoga", 1, map[string]bool{}, daily) {
		t.Fatal("expected level 2 to be locked without level 1 done")
	}
	if !levelAccessible("yoga", 1, map[string]bool{"yoga-1": true}, daily) {
		t.Fatal("expected level 2 to open after level 1")
	}
	if levelAccessible("yoga", 2, map[string]bool{"yoga-1": true}, daily) {
		t.Fatal("expected level 3 to be locked without level 2 done")
	}
}

func TestLevelAccessibleCompletedLevelsStayReviewable(t *testing.T) {
	completed := map[string]bool{"yoga-1": true, "yoga-2": true}
	daily := dailyWith("yoga", "yoga-2", true)

	if !levelAccessible("yoga", 1, completed, daily) {
		t.Fatal("expected a completed level to stay reviewable")
	}
}

func TestLevelAccessibleRejectsUnknownCategoryAndIndex(t *testing.T) {
	daily := dailyWith("", "", false)

	if levelAccessible("no-such-category", 1, map[string]bool{}, daily) {
		t.Fatal("expected unknown category to be inaccessible")
	}
	if levelAccessible("yoga", 7, map[string]bool{}, daily) {
		t.Fatal("expected out-of-range index to be inaccessible")
	}
	if levelAccessible("yoga", -1, map[string]bool{}, daily) {
		t.Fatal("expected negative index to be inaccessible")
	}
}

func TestStreakAfterCompletionSameDayIsNoop(t *testing.T) {
	today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	last := today

	streak, changed := streakAfterCompletion(4, &last, today)
	if changed || streak != 4 {
		t.Fatalf("expected unchanged streak 4, got %d (changed=%v)", streak, changed)
	}
}

func TestStreakAfterCompletionConsecutiveDayIncrements(t *testing.T) {
	today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	streak, changed := streakAfterCompletion(4, &yesterday, today)
	if !changed || streak != 5 {
		t.Fatalf("expected streak 5, got %d (changed=%v)", streak, changed)
	}
}

func TestStreakAfterCompletionGapResetsToOne(t *testing.T) {
	today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	lastWeek := today.AddDate(0, 0, -7)

	streak, changed := streakAfterCompletion(12, &lastWeek, today)
	if !changed || streak != 1 {
		t.Fatalf("expected streak reset to 1, got %d (changed=%v)", streak, changed)
	}

	streak, changed = streakAfterCompletion(0, nil, today)
	if !changed || streak != 1 {
		t.Fatalf("expected first-ever completion streak 1, got %d (changed=%v)", streak, changed)
	}
}

func TestCivilDateStripsTimeOfDay(t *testing.T) {
	late := time.Date(2026, 8, 29, 23, 59, 59, 0, time.Local)
	early := time.Date(2026, 8, 29, 0, 0, 1, 0, time.Local)

	if !sameDay(civilDate(late), civilDate(early)) {
		t.Fatal("expected both times to map to the same civil date")
	}
	if sameDay(civilDate(late), civilDate(late.AddDate(0, 0, 1))) {
		t.Fatal("expected consecutive dates to differ")
	}
}
