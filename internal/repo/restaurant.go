package repo

import (
	"context"

	"github.com/bgocumlu/menu/internal/domain"
)

// RestaurantRepository persists the single restaurant document.
type RestaurantRepository interface {
	GetCurrent(ctx context.Context) (*domain.Restaurant, error)
	ReplaceCurrent(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error)
}
