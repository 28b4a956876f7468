package service

import (
	"context"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/sheet"
)

type lookupService struct {
	cache *sheet.SnapshotCache
}

func NewLookupService(cache *sheet.SnapshotCache) LookupService {
	return &lookupService{cache: cache}
}

func (s *lookupService) LookupByPhone(ctx context.Context, phone string) (*domain.RentalRecord, error) {
	logger.EnterMethod("lookupService.LookupByPhone")

	snap, err := s.cache.Get(ctx)
	if err != nil {
		logger.ExitMethodWithError("lookupService.LookupByPhone", err, "reason", "snapshot unavailable")
		return nil, err
	}

	record, err := sheet.Resolve(snap, phone)
	if err != nil {
		logger.ExitMethodWithError("lookupService.LookupByPhone", err, "reason", "resolve failed")
		return nil, err
	}

	logger.ExitMethod("lookupService.LookupByPhone", "found", record.Found())
	return record, nil
}
