package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bgocumlu/menu/internal/domain"
	"github.com/bgocumlu/menu/internal/queue"
	"github.com/bgocumlu/menu/internal/repo"
	"go.uber.org/zap"
)

// RestaurantService is the document store boundary: fetch the current
// document, or replace it in full. A successful replace is announced on the
// menu-saved queue when a broker is configured.
type RestaurantService struct {
	restaurantRepo repo.RestaurantRepository
	broker         queue.Broker
	logger         *zap.SugaredLogger
	now            func() time.Time
}

func NewRestaurantService(
	restaurantRepo repo.RestaurantRepository,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *RestaurantService {
	return &RestaurantService{
		restaurantRepo: restaurantRepo,
		broker:         broker,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *RestaurantService) Current(ctx context.Context) (*domain.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetCurrent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	return restaurant, nil
}

// Replace persists restaurant and returns the stored value. sessionID is
// recorded in the save audit; it may be empty for direct writes.
func (s *RestaurantService) Replace(ctx context.Context, restaurant *domain.Restaurant, sessionID string) (*domain.Restaurant, error) {
	saved, err := s.restaurantRepo.ReplaceCurrent(ctx, restaurant)
	if err != nil {
		s.logger.Errorw("failed to replace restaurant", "restaurant_id", restaurant.ID, "error", err)
		return nil, fmt.Errorf("failed to replace restaurant: %w", err)
	}

	s.logger.Infow("restaurant replaced", "restaurant_id", saved.ID, "session_id", sessionID)

	// the document is committed; a lost event only costs an audit record
	s.publishSaved(ctx, saved, sessionID)

	return saved, nil
}

func (s *RestaurantService) publishSaved(ctx context.Context, restaurant *domain.Restaurant, sessionID string) {
	if s.broker == nil {
		return
	}

	event := domain.NewMenuSavedEvent(restaurant, sessionID, s.now())
	eventBytes, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorw("failed to marshal menu saved event", "restaurant_id", restaurant.ID, "error", err)
		return
	}

	if err := s.broker.Publish(ctx, queue.QueueMenuSaved, eventBytes); err != nil {
		s.logger.Errorw("failed to publish menu saved event", "restaurant_id", restaurant.ID, "error", err)
	}
}
