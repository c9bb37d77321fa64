package repository

import (
	"context"
	"time"

	"github.com/tejavira2023/fitverse/internal/models"
)

type ConsultationRepository struct {
	db DBTX
}

func NewConsultationRepository(db DBTX) *ConsultationRepository {
	return &ConsultationRepository{db: db}
}

type CreateConsultationInput struct {
	Reference       string
	UserID          int64
	ConsultantID    string
	ScheduledAt     time.Time
	DurationMinutes int
	Notes           string
}

func (r *ConsultationRepository) Create(ctx context.Context, input CreateConsultationInput) (*models.Consultation, error) {
	query := `
		INSERT INTO consultations (reference, user_id, consultant_id, scheduled_at, duration_minutes, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending')
		RETURNING id, reference, user_id, consultant_id, scheduled_at, duration_minutes, notes, status, created_at, updated_at
	`
	var consultation models.Consultation
	err := r.db.QueryRow(ctx, query,
		input.Reference,
		input.UserID,
		input.ConsultantID,
		input.ScheduledAt,
		input.DurationMinutes,
		input.Notes,
	).Scan(
		&consultation.ID,
		&consultation.Reference,
		&consultation.UserID,
		&consultation.ConsultantID,
		&consultation.ScheduledAt,
		&consultation.DurationMinutes,
		&consultation.Notes,
		&consultation.Status,
		&consultation.CreatedAt,
		&consultation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &consultation, nil
}

// HasConflict reports whether a pending booking for the consultant
// overlaps the requested window.
func (r *ConsultationRepository) HasConflict(
	ctx context.Context,
	consultantID string,
	scheduledAt time.Time,
	durationMinutes int,
) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM consultations
			WHERE consultant_id = $1
			  AND status = 'pending'
			  AND scheduled_at < $2 + ($3 * INTERVAL '1 minute')
			  AND scheduled_at + (duration_minutes * INTERVAL '1 minute') > $2
		)
	`
	var conflict bool
	if err := r.db.QueryRow(ctx, query, consultantID, scheduledAt, durationMinutes).Scan(&conflict); err != nil {
		return false, err
	}
	return conflict, nil
}

func (r *ConsultationRepository) GetByID(ctx context.Context, id int64) (*models.Consultation, error) {
	query := `
		SELECT id, reference, user_id, consultant_id, scheduled_at, duration_minutes, notes, status, created_at, updated_at
		FROM consultations
		WHERE id = $1
	`
	var consultation models.Consultation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&consultation.ID,
		&consultation.Reference,
		&consultation.UserID,
		&consultation.ConsultantID,
		&consultation.ScheduledAt,
		&consultation.DurationMinutes,
		&consultation.Notes,
		&consultation.Status,
		&consultation.CreatedAt,
		&consultation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &consultation, nil
}

func (r *ConsultationRepository) ListByUser(ctx context.Context, userID int64) ([]models.Consultation, error) {
	query := `
		SELECT id, reference, user_id, consultant_id, scheduled_at, duration_minutes, notes, status, created_at, updated_at
		FROM consultations
		WHERE user_id = $1
		ORDER BY scheduled_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	consultations := make([]models.Consultation, 0)
	for rows.Next() {
		var consultation models.Consultation
		if err := rows.Scan(
			&consultation.ID,
			&consultation.Reference,
			&consultation.UserID,
			&consultation.ConsultantID,
			&consultation.ScheduledAt,
			&consultation.DurationMinutes,
			&consultation.Notes,
			&consultation.Status,
			&consultation.CreatedAt,
			&consultation.UpdatedAt,
		); err != nil {
			return nil, err
		}
		consultations = append(consultations, consultation)
	}

	return consultations, rows.Err()
}

// UpdateStatusIfCurrent transitions the status only when the current value
// still matches, guarding against concurrent updates.
func (r *ConsultationRepository) UpdateStatusIfCurrent(
	ctx context.Context,
	id int64,
	currentStatus string,
	nextStatus string,
) (*models.Consultation, error) {
	query := `
		UPDATE consultations
		SET status = $1,
			updated_at = NOW()
		WHERE id = $2 AND status = $3
		RETURNING id, reference, user_id, consultant_id, scheduled_at, duration_minutes, notes, status, created_at, updated_at
	`
	var consultation models.Consultation
	err := r.db.QueryRow(ctx, query, nextStatus, id, currentStatus).Scan(
		&consultation.ID,
		&consultation.Reference,
		&consultation.UserID,
		&consultation.ConsultantID,
		&consultation.ScheduledAt,
		&consultation.DurationMinutes,
		&consultation.Notes,
		&consultation.Status,
		&consultation.CreatedAt,
		&consultation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &consultation, nil
}
