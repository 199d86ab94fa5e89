package service

import (
	"context"

	"github.com/bgocumlu/menu/internal/domain"
	"github.com/bgocumlu/menu/internal/queue"
	"github.com/stretchr/testify/mock"
)

type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) GetCurrent(ctx context.Context) (*domain.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) ReplaceCurrent(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	args := m.Called(ctx, restaurant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

type MockCredentialRepository struct {
	mock.Mock
}

func (m *MockCredentialRepository) Get(ctx context.Context) (*domain.Credential, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credential), args.Error(1)
}

func (m *MockCredentialRepository) Create(ctx context.Context, credential *domain.Credential) error {
	args := m.Called(ctx, credential)
	return args.Error(0)
}

type MockMenuSaveAuditRepository struct {
	mock.Mock
}

func (m *MockMenuSaveAuditRepository) Create(ctx context.Context, audit *domain.MenuSaveAudit) error {
	args := m.Called(ctx, audit)
	return args.Error(0)
}

func (m *MockMenuSaveAuditRepository) GetByRestaurantID(ctx context.Context, restaurantID string, limit int) ([]domain.MenuSaveAudit, error) {
	args := m.Called(ctx, restaurantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuSaveAudit), args.Error(1)
}

type MockBroker struct {
	mock.Mock
}

func (m *MockBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	args := m.Called(ctx, queueName, message)
	return args.Error(0)
}

func (m *MockBroker) Subscribe(ctx context.Context, queueName string, handler queue.MessageHandler) error {
	args := m.Called(ctx, queueName, handler)
	return args.Error(0)
}

func (m *MockBroker) Close() error {
	args := m.Called()
	return args.Error(0)
}
