package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/tejavira2023/fitverse/internal/services"
)

type rewardsApplicationService interface {
	Summary(ctx context.Context, userID int64) (*services.RewardsSummary, error)
	AddCoins(ctx context.Context, userID int64, amount int) (int, error)
}

type RewardsHandler struct {
	service rewardsApplicationService
}

func NewRewardsHandler(service rewardsApplicationService) *RewardsHandler {
	return &RewardsHandler{service: service}
}

type adjustCoinsRequest struct {
	Amount int `json:"amount"`
}

func (h *RewardsHandler) GetSummary(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	summary, err := h.service.Summary(c.Context(), userID)
	if err != nil {
		return mapRewardsError(c, err)
	}

	return c.JSON(fiber.Map{"rewards": summary})
}

func (h *RewardsHandler) AdjustCoins(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req adjustCoinsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	coins, err := h.service.AddCoins(c.Context(), userID, req.Amount)
	if err != nil {
		return mapRewardsError(c, err)
	}

	return c.JSON(fiber.Map{"coins": coins})
}

func mapRewardsError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process rewards request"})
	}
}
