package services

import (
	"context"
	"errors"
	"hash/fnv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tejavira2023/fitverse/internal/catalog"
	"github.com/tejavira2023/fitverse/internal/models"
	"github.com/tejavira2023/fitverse/internal/repository"
)

// ConsultationService books mock consultations against the static
// consultant roster. There is no payment leg.
type ConsultationService struct {
	db               *pgxpool.Pool
	consultationRepo *repository.ConsultationRepository
	now              func() time.Time
	newReference     func() string
}

func NewConsultationService(db *pgxpool.Pool, consultationRepo *repository.ConsultationRepository) *ConsultationService {
	return &ConsultationService{
		db:               db,
		consultationRepo: consultationRepo,
		now:              time.Now,
		newReference:     uuid.NewString,
	}
}

type BookConsultationInput struct {
	ConsultantID    string
	ScheduledAt     time.Time
	DurationMinutes int
	Notes           string
}

func (s *ConsultationService) Book(
	ctx context.Context,
	userID int64,
	input BookConsultationInput,
) (*models.Consultation, error) {
	if _, ok := catalog.ConsultantByID(input.ConsultantID); !ok {
		return nil, ErrConsultantNotFound
	}
	if input.DurationMinutes <= 0 {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(input.Notes) == "" {
		return nil, ErrInvalidInput
	}
	if input.ScheduledAt.Before(s.now().Add(-1 * time.Minute)) {
		return nil, ErrInvalidInput
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txConsultationRepo := repository.NewConsultationRepository(tx)

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", consultantLockKey(input.ConsultantID)); err != nil {
		return nil, err
	}

	hasConflict, err := txConsultationRepo.HasConflict(
		ctx,
		input.ConsultantID,
		input.ScheduledAt.UTC(),
		input.DurationMinutes,
	)
	if err != nil {
		return nil, err
	}
	if hasConflict {
		return nil, ErrConflict
	}

	consultation, err := txConsultationRepo.Create(ctx, repository.CreateConsultationInput{
		Reference:       s.newReference(),
		UserID:          userID,
		ConsultantID:    input.ConsultantID,
		ScheduledAt:     input.ScheduledAt.UTC(),
		DurationMinutes: input.DurationMinutes,
		Notes:           strings.TrimSpace(input.Notes),
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return consultation, nil
}

func (s *ConsultationService) List(ctx context.Context, userID int64) ([]models.Consultation, error) {
	return s.consultationRepo.ListByUser(ctx, userID)
}

func (s *ConsultationService) Cancel(ctx context.Context, userID int64, consultationID int64) (*models.Consultation, error) {
	consultation, err := s.consultationRepo.GetByID(ctx, consultationID)
	if err != nil {
		return nil, err
	}
	if consultation.UserID != userID {
		return nil, ErrForbidden
	}
	if consultation.Status != "pending" {
		return nil, ErrInvalidStateTransition
	}

	updated, err := s.consultationRepo.UpdateStatusIfCurrent(ctx, consultationID, "pending", "cancelled")
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidStateTransition
		}
		return nil, err
	}
	return updated, nil
}

// consultantLockKey hashes the consultant id into the advisory-lock key
// space so concurrent bookings for one consultant serialize.
func consultantLockKey(consultantID string) int64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(consultantID))
	return int64(h.Sum32())
}
