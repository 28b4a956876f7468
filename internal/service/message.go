package service

import (
	"context"
	"errors"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"
)

const defaultMessagePageSize = 50

type messageService struct {
	messageRepo repository.MessageRepository
}

func NewMessageService(messageRepo repository.MessageRepository) MessageService {
	return &messageService{messageRepo: messageRepo}
}

func (s *messageService) SaveMessage(ctx context.Context, userID, sender, content string) (*domain.Message, error) {
	if userID == "" {
		return nil, errors.New("user_id is required")
	}
	if content == "" {
		return nil, errors.New("content is required")
	}

	msg := &domain.Message{
		UserID:  userID,
		Sender:  sender,
		Content: content,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *messageService) ListMessages(ctx context.Context, userID string, limit, offset int32) ([]domain.Message, error) {
	if userID == "" {
		return nil, errors.New("user_id is required")
	}
	if limit <= 0 {
		limit = defaultMessagePageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.messageRepo.ListByUser(ctx, userID, limit, offset)
}
