package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/tejavira2023/fitverse/internal/models"
	"github.com/tejavira2023/fitverse/internal/services"
)

type progressionApplicationService interface {
	CategoryOverview(ctx context.Context, userID int64) ([]services.CategoryView, error)
	CategoryDetail(ctx context.Context, userID int64, categoryID string) (*services.CategoryView, error)
	Snapshot(ctx context.Context, userID int64) (*models.ProgressSnapshot, error)
	CompleteLevel(ctx context.Context, userID int64, levelID string) (*models.CompletionResult, error)
}

type FitnessHandler struct {
	service progressionApplicationService
}

func NewFitnessHandler(service progressionApplicationService) *FitnessHandler {
	return &FitnessHandler{service: service}
}

type completeLevelRequest struct {
	LevelID string `json:"level_id"`
}

func (h *FitnessHandler) ListCategories(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	categories, err := h.service.CategoryOverview(c.Context(), userID)
	if err != nil {
		return mapFitnessError(c, err)
	}

	return c.JSON(fiber.Map{"categories": categories})
}

func (h *FitnessHandler) GetCategory(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	categoryID := strings.TrimSpace(c.Params("id"))
	if categoryID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category id"})
	}

	category, err := h.service.CategoryDetail(c.Context(), userID, categoryID)
	if err != nil {
		return mapFitnessError(c, err)
	}

	return c.JSON(fiber.Map{"category": category})
}

func (h *FitnessHandler) GetProgress(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	snapshot, err := h.service.Snapshot(c.Context(), userID)
	if err != nil {
		return mapFitnessError(c, err)
	}

	return c.JSON(fiber.Map{"progress": snapshot})
}

func (h *FitnessHandler) CompleteLevel(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req completeLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(req.LevelID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "level_id is required"})
	}

	result, err := h.service.CompleteLevel(c.Context(), userID, strings.TrimSpace(req.LevelID))
	if err != nil {
		return mapFitnessError(c, err)
	}

	return c.JSON(fiber.Map{"result": result})
}

func mapFitnessError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	case errors.Is(err, services.ErrLevelNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Level not found"})
	case errors.Is(err, services.ErrCategoryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process fitness request"})
	}
}
