package models

import "time"

type Consultation struct {
	ID              int64     `json:"id"`
	Reference       string    `json:"reference"`
	UserID          int64     `json:"user_id"`
	ConsultantID    string    `json:"consultant_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `json:"notes"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
