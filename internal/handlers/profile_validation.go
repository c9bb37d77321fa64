package handlers

import (
	"strings"
)

var allowedGenders = map[string]struct{}{
	"male":              {},
	"female":            {},
	"non-binary":        {},
	"prefer-not-to-say": {},
}

var allowedFitnessLevels = map[string]struct{}{
	"beginner":     {},
	"intermediate": {},
	"advanced":     {},
}

var allowedGoals = map[string]struct{}{
	"weight-loss":         {},
	"weight-gain":         {},
	"figure-management":   {},
	"yoga":                {},
	"meditation":          {},
	"build-muscle":        {},
	"improve-flexibility": {},
	"reduce-stress":       {},
	"general-fitness":     {},
}

func validateAccountSetupRequest(req accountSetupRequest) string {
	if strings.TrimSpace(req.FullName) == "" {
		return "full_name is required"
	}
	if req.Age <= 0 || req.Age > 120 {
		return "age must be between 1 and 120"
	}
	if err := validateGender(req.Gender); err != "" {
		return err
	}
	if req.HeightCM <= 0 {
		return "height_cm must be greater than 0"
	}
	if req.WeightKG <= 0 {
		return "weight_kg must be greater than 0"
	}
	if err := validateFitnessLevel(req.FitnessLevel); err != "" {
		return err
	}
	if err := validateGoal(req.Goal); err != "" {
		return err
	}
	return ""
}

func validateProfileUpdateRequest(req updateProfileRequest) string {
	if req.FullName != nil && strings.TrimSpace(*req.FullName) == "" {
		return "full_name must not be empty"
	}
	if req.Age != nil && (*req.Age <= 0 || *req.Age > 120) {
		return "age must be between 1 and 120"
	}
	if req.Gender != nil {
		if err := validateGender(*req.Gender); err != "" {
			return err
		}
	}
	if req.HeightCM != nil && *req.HeightCM <= 0 {
		return "height_cm must be greater than 0"
	}
	if req.WeightKG != nil && *req.WeightKG <= 0 {
		return "weight_kg must be greater than 0"
	}
	if req.FitnessLevel != nil {
		if err := validateFitnessLevel(*req.FitnessLevel); err != "" {
			return err
		}
	}
	if req.Goal != nil {
		if err := validateGoal(*req.Goal); err != "" {
			return err
		}
	}
	if req.HealthNotes != nil && strings.TrimSpace(*req.HealthNotes) == "" {
		return "health_notes must not be empty"
	}
	return ""
}

func validateGender(gender string) string {
	if _, ok := allowedGenders[strings.TrimSpace(gender)]; !ok {
		return "gender must be one of: male, female, non-binary, prefer-not-to-say"
	}
	return ""
}

func validateFitnessLevel(level string) string {
	if _, ok := allowedFitnessLevels[strings.TrimSpace(level)]; !ok {
		return "fitness_level must be one of: beginner, intermediate, advanced"
	}
	return ""
}

func validateGoal(goal string) string {
	if _, ok := allowedGoals[strings.TrimSpace(goal)]; !ok {
		return "goal must be one of: weight-loss, weight-gain, figure-management, yoga, meditation, build-muscle, improve-flexibility, reduce-stress, general-fitness"
	}
	return ""
}
