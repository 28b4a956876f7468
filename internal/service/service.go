package service

import (
	"context"

	"rentdesk-backend/internal/domain"
)

type LookupService interface {
	// LookupByPhone finds the active rental for a phone number. A record
	// with all nil fields means no active rental, which is a success.
	LookupByPhone(ctx context.Context, phone string) (*domain.RentalRecord, error)
}

type MessageService interface {
	SaveMessage(ctx context.Context, userID, sender, content string) (*domain.Message, error)
	ListMessages(ctx context.Context, userID string, limit, offset int32) ([]domain.Message, error)
}
