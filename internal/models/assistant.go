package models

import "time"

const (
	AssistantRoleUser      = "user"
	AssistantRoleAssistant = "assistant"
)

type AssistantMessage struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
