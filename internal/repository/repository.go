package repository

import (
	"context"

	"rentdesk-backend/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	ListByUser(ctx context.Context, userID string, limit, offset int32) ([]domain.Message, error)
}
