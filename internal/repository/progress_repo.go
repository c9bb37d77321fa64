package repository

import (
	"context"
	"time"

	"github.com/tejavira2023/fitverse/internal/models"
)

type ProgressRepository struct {
	db DBTX
}

func NewProgressRepository(db DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// InsertCompleted records a level completion. Returns false when the level
// was already in the user's completed set.
func (r *ProgressRepository) InsertCompleted(ctx context.Context, userID int64, levelID string) (bool, error) {
	query := `
		INSERT INTO completed_levels (user_id, level_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, level_id) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, userID, levelID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ProgressRepository) ListCompleted(ctx context.Context, userID int64) ([]string, error) {
	query := `
		SELECT level_id
		FROM completed_levels
		WHERE user_id = $1
		ORDER BY completed_at, level_id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	levelIDs := make([]string, 0)
	for rows.Next() {
		var levelID string
		if err := rows.Scan(&levelID); err != nil {
			return nil, err
		}
		levelIDs = append(levelIDs, levelID)
	}
	return levelIDs, rows.Err()
}

func (r *ProgressRepository) IsCompleted(ctx context.Context, userID int64, levelID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM completed_levels WHERE user_id = $1 AND level_id = $2
		)
	`
	var completed bool
	if err := r.db.QueryRow(ctx, query, userID, levelID).Scan(&completed); err != nil {
		return false, err
	}
	return completed, nil
}

// GetDaily returns today's progress row, creating an empty one stamped
// with the given day when the user has none yet.
func (r *ProgressRepository) GetDaily(ctx context.Context, userID int64, day time.Time) (*models.DailyProgress, error) {
	query := `
		INSERT INTO daily_progress (user_id, last_reset_day)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET user_id = daily_progress.user_id
		RETURNING category_id, level_id, completed, last_reset_day
	`
	var progress models.DailyProgress
	err := r.db.QueryRow(ctx, query, userID, day).Scan(
		&progress.CategoryID,
		&progress.LevelID,
		&progress.Completed,
		&progress.LastResetDay,
	)
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// ResetDailyIfStale clears the row back to {none, none, false} when its
// last reset day differs from the given day. The WHERE guard makes the
// reset fire exactly once per day boundary however often it runs.
func (r *ProgressRepository) ResetDailyIfStale(ctx context.Context, userID int64, day time.Time) error {
	query := `
		UPDATE daily_progress
		SET category_id = NULL,
			level_id = NULL,
			completed = FALSE,
			last_reset_day = $2
		WHERE user_id = $1 AND last_reset_day <> $2
	`
	_, err := r.db.Exec(ctx, query, userID, day)
	return err
}

// SetDaily overwrites today's progress with a completion. Overwrites any
// prior same-day record unconditionally.
func (r *ProgressRepository) SetDaily(ctx context.Context, userID int64, categoryID, levelID string, day time.Time) error {
	query := `
		INSERT INTO daily_progress (user_id, category_id, level_id, completed, last_reset_day)
		VALUES ($1, $2, $3, TRUE, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET category_id = EXCLUDED.category_id,
			level_id = EXCLUDED.level_id,
			completed = TRUE,
			last_reset_day = EXCLUDED.last_reset_day
	`
	_, err := r.db.Exec(ctx, query, userID, categoryID, levelID, day)
	return err
}
