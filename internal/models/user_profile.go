package models

import "time"

type UserProfile struct {
	ID                 int64      `json:"id"`
	UserID             int64      `json:"user_id"`
	FullName           *string    `json:"full_name"`
	Age                *int       `json:"age"`
	Gender             *string    `json:"gender"`
	WeightKG           *float64   `json:"weight_kg"`
	HeightCM           *float64   `json:"height_cm"`
	FitnessLevel       *string    `json:"fitness_level"`
	Goal               *string    `json:"goal"`
	HealthNotes        *string    `json:"health_notes"`
	Coins              int        `json:"coins"`
	Streak             int        `json:"streak"`
	LastCompletedDay   *time.Time `json:"last_completed_day"`
	OnboardingComplete bool       `json:"onboarding_complete"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// GoalValue returns the profile's goal or "" when the profile is nil or the
// goal is unset.
func (p *UserProfile) GoalValue() string {
	if p == nil || p.Goal == nil {
		return ""
	}
	return *p.Goal
}
