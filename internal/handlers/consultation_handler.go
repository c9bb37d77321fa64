package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/tejavira2023/fitverse/internal/catalog"
	"github.com/tejavira2023/fitverse/internal/models"
	"github.com/tejavira2023/fitverse/internal/services"
)

type consultationApplicationService interface {
	Book(ctx context.Context, userID int64, input services.BookConsultationInput) (*models.Consultation, error)
	List(ctx context.Context, userID int64) ([]models.Consultation, error)
	Cancel(ctx context.Context, userID int64, consultationID int64) (*models.Consultation, error)
}

type consultationProfileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.UserProfile, error)
}

type recommender interface {
	RecommendedConsultants(ctx context.Context, profile *models.UserProfile, limit int) []services.ConsultantWithScore
}

type ConsultationHandler struct {
	service        consultationApplicationService
	recommendation recommender
	profileRepo    consultationProfileStore
}

func NewConsultationHandler(
	service consultationApplicationService,
	recommendation recommender,
	profileRepo consultationProfileStore,
) *ConsultationHandler {
	return &ConsultationHandler{
		service:        service,
		recommendation: recommendation,
		profileRepo:    profileRepo,
	}
}

type bookConsultationRequest struct {
	ConsultantID    string `json:"consultant_id"`
	ScheduledAt     string `json:"scheduled_at"`
	DurationMinutes int    `json:"duration_minutes"`
	Notes           string `json:"notes"`
}

func (h *ConsultationHandler) ListConsultants(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"consultants": catalog.Consultants()})
}

func (h *ConsultationHandler) GetConsultant(c *fiber.Ctx) error {
	consultantID := strings.TrimSpace(c.Params("id"))
	consultant, ok := catalog.ConsultantByID(consultantID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Consultant not found"})
	}
	return c.JSON(fiber.Map{"consultant": consultant})
}

func (h *ConsultationHandler) RecommendedConsultants(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	limit := parsePositiveInt(c.Query("limit"), len(catalog.Consultants()))

	profile, err := h.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}

	consultants := h.recommendation.RecommendedConsultants(c.Context(), profile, limit)
	return c.JSON(fiber.Map{"consultants": consultants})
}

func (h *ConsultationHandler) Book(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req bookConsultationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	scheduledAt, err := time.Parse(time.RFC3339, strings.TrimSpace(req.ScheduledAt))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "scheduled_at must be a valid RFC3339 timestamp"})
	}

	consultation, err := h.service.Book(c.Context(), userID, services.BookConsultationInput{
		ConsultantID:    strings.TrimSpace(req.ConsultantID),
		ScheduledAt:     scheduledAt,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	})
	if err != nil {
		return mapConsultationError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"consultation": consultation})
}

func (h *ConsultationHandler) List(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	consultations, err := h.service.List(c.Context(), userID)
	if err != nil {
		return mapConsultationError(c, err)
	}

	return c.JSON(fiber.Map{"consultations": consultations})
}

func (h *ConsultationHandler) Cancel(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	consultationID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || consultationID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid consultation id"})
	}

	consultation, err := h.service.Cancel(c.Context(), userID, consultationID)
	if err != nil {
		return mapConsultationError(c, err)
	}

	return c.JSON(fiber.Map{"consultation": consultation})
}

func mapConsultationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid consultation request"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	case errors.Is(err, services.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Requested time conflicts with another consultation"})
	case errors.Is(err, services.ErrInvalidStateTransition):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Consultation cannot be cancelled"})
	case errors.Is(err, services.ErrConsultantNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Consultant not found"})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Consultation not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process consultation request"})
	}
}
