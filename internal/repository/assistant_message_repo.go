package repository

import (
	"context"

	"github.com/tejavira2023/fitverse/internal/models"
)

type AssistantMessageRepository struct {
	db DBTX
}

func NewAssistantMessageRepository(db DBTX) *AssistantMessageRepository {
	return &AssistantMessageRepository{db: db}
}

func (r *AssistantMessageRepository) Create(
	ctx context.Context,
	userID int64,
	role string,
	content string,
) (*models.AssistantMessage, error) {
	query := `
		INSERT INTO assistant_messages (user_id, role, content)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, role, content, created_at
	`

	var message models.AssistantMessage
	err := r.db.QueryRow(ctx, query, userID, role, content).Scan(
		&message.ID,
		&message.UserID,
		&message.Role,
		&message.Content,
		&message.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &message, nil
}

func (r *AssistantMessageRepository) ListByUser(
	ctx context.Context,
	userID int64,
	limit int,
	offset int,
) ([]models.AssistantMessage, int, error) {
	totalQuery := `
		SELECT COUNT(*)
		FROM assistant_messages
		WHERE user_id = $1
	`

	var total int
	if err := r.db.QueryRow(ctx, totalQuery, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, user_id, role, content, created_at
		FROM assistant_messages
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	messages := make([]models.AssistantMessage, 0)
	for rows.Next() {
		var message models.AssistantMessage
		if err := rows.Scan(
			&message.ID,
			&message.UserID,
			&message.Role,
			&message.Content,
			&message.CreatedAt,
		); err != nil {
			return nil, 0, err
		}

		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

func (r *AssistantMessageRepository) DeleteByUser(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM assistant_messages
		WHERE user_id = $1
	`, userID)
	return err
}
