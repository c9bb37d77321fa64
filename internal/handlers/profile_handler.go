package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/tejavira2023/fitverse/internal/models"
	"github.com/tejavira2023/fitverse/internal/repository"
)

type profileApplicationService interface {
	Get(ctx context.Context, userID int64) (*models.UserProfile, error)
	Update(ctx context.Context, userID int64, input repository.UpdateUserProfileInput) (*models.UserProfile, error)
}

type ProfileHandler struct {
	profileService profileApplicationService
}

func NewProfileHandler(profileService profileApplicationService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type updateProfileRequest struct {
	FullName     *string  `json:"full_name"`
	Age          *int     `json:"age"`
	Gender       *string  `json:"gender"`
	WeightKG     *float64 `json:"weight_kg"`
	HeightCM     *float64 `json:"height_cm"`
	FitnessLevel *string  `json:"fitness_level"`
	Goal         *string  `json:"goal"`
	HealthNotes  *string  `json:"health_notes"`
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	profile, err := h.profileService.Get(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}

	return c.JSON(fiber.Map{
		"profile":             profile,
		"onboarding_complete": profile.OnboardingComplete,
	})
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateProfileUpdateRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	profile, err := h.profileService.Update(c.Context(), userID, repository.UpdateUserProfileInput{
		FullName:     req.FullName,
		Age:          req.Age,
		Gender:       req.Gender,
		WeightKG:     req.WeightKG,
		HeightCM:     req.HeightCM,
		FitnessLevel: req.FitnessLevel,
		Goal:         req.Goal,
		HealthNotes:  req.HealthNotes,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{
		"profile":             profile,
		"onboarding_complete": profile.OnboardingComplete,
	})
}
