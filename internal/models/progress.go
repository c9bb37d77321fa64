package models

import "time"

// DailyProgress is the per-user single-category-per-day gate. Completed
// implies CategoryID and LevelID point at the most recently finished level.
type DailyProgress struct {
	CategoryID   *string   `json:"category_id"`
	LevelID      *string   `json:"level_id"`
	Completed    bool      `json:"completed"`
	LastResetDay time.Time `json:"-"`
}

// ProgressSnapshot is the fitness view the client renders: everything the
// user ever finished plus where today's chain stands.
type ProgressSnapshot struct {
	CompletedLevels []string      `json:"completed_levels"`
	TodaysProgress  DailyProgress `json:"todays_progress"`
	Streak          int           `json:"streak"`
	Coins           int           `json:"coins"`
}

// CompletionResult is what finishing a level yields. CoinsAwarded is zero
// when the level had been completed before.
type CompletionResult struct {
	LevelID        string        `json:"level_id"`
	CategoryID     string        `json:"category_id"`
	NewlyCompleted bool          `json:"newly_completed"`
	CoinsAwarded   int           `json:"coins_awarded"`
	Streak         int           `json:"streak"`
	TodaysProgress DailyProgress `json:"todays_progress"`
}
