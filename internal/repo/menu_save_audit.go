package repo

import (
	"context"

	"github.com/bgocumlu/menu/internal/domain"
)

type MenuSaveAuditRepository interface {
	Create(ctx context.Context, audit *domain.MenuSaveAudit) error
	GetByRestaurantID(ctx context.Context, restaurantID string, limit int) ([]domain.MenuSaveAudit, error)
}
