package service

import (
	"context"
	"fmt"

	"github.com/bgocumlu/menu/internal/domain"
	"github.com/bgocumlu/menu/internal/repo"
	"go.uber.org/zap"
)

type MenuSaveAuditService struct {
	auditRepo repo.MenuSaveAuditRepository
	logger    *zap.SugaredLogger
}

func NewMenuSaveAuditService(auditRepo repo.MenuSaveAuditRepository, logger *zap.SugaredLogger) *MenuSaveAuditService {
	return &MenuSaveAuditService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

func (s *MenuSaveAuditService) ProcessMenuSavedEvent(ctx context.Context, event domain.MenuSavedEvent) error {
	audit := &domain.MenuSaveAudit{
		RestaurantID:   event.RestaurantID,
		SessionID:      event.SessionID,
		CategoryCounts: event.CategoryCounts,
		ItemCounts:     event.ItemCounts,
		Timestamp:      event.Timestamp,
	}

	if err := s.auditRepo.Create(ctx, audit); err != nil {
		s.logger.Errorw("failed to create menu save audit", "restaurant_id", event.RestaurantID, "error", err)
		return fmt.Errorf("failed to create menu save audit: %w", err)
	}

	s.logger.Infow("menu save audit created", "restaurant_id", event.RestaurantID, "session_id", event.SessionID)

	return nil
}

func (s *MenuSaveAuditService) History(ctx context.Context, restaurantID string, limit int) ([]domain.MenuSaveAudit, error) {
	audits, err := s.auditRepo.GetByRestaurantID(ctx, restaurantID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu save history: %w", err)
	}

	return audits, nil
}
