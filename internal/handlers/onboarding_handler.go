package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/tejavira2023/fitverse/internal/models"
	"github.com/tejavira2023/fitverse/internal/repository"
)

type onboardingProfileService interface {
	CompleteSetup(ctx context.Context, userID int64, input repository.AccountSetupInput) (*models.UserProfile, error)
}

type OnboardingHandler struct {
	profileService onboardingProfileService
}

func NewOnboardingHandler(profileService onboardingProfileService) *OnboardingHandler {
	return &OnboardingHandler{profileService: profileService}
}

type accountSetupRequest struct {
	FullName     string  `json:"full_name"`
	Age          int     `json:"age"`
	Gender       string  `json:"gender"`
	WeightKG     float64 `json:"weight_kg"`
	HeightCM     float64 `json:"height_cm"`
	FitnessLevel string  `json:"fitness_level"`
	Goal         string  `json:"goal"`
	HealthNotes  *string `json:"health_notes"`
}

func (h *OnboardingHandler) AccountSetup(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req accountSetupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateAccountSetupRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	profile, err := h.profileService.CompleteSetup(c.Context(), userID, repository.AccountSetupInput{
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
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{
		"profile":             profile,
		"onboarding_complete": profile.OnboardingComplete,
	})
}
