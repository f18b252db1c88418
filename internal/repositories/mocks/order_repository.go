package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/wholesalekart/storefront-api/internal/models"
)

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateOrder(ctx context.Context, order *models.OrderRecord) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *OrderRepository) ExistsForCheckout(ctx context.Context, checkoutID string, lineIndex int) (bool, error) {
	args := m.Called(ctx, checkoutID, lineIndex)

	return args.Bool(0), args.Error(1)
}

func (m *OrderRepository) GetOrderByID(ctx context.Context, orderID string) (*models.OrderRecord, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.OrderRecord), args.Error(1)
}

func (m *OrderRepository) ListOrdersByUser(ctx context.Context, userID string, page, size int) ([]models.OrderRecord, int, error) {
	args := m.Called(ctx, userID, page, size)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}

	return args.Get(0).([]models.OrderRecord), args.Int(1), args.Error(2)
}

func (m *OrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	args := m.Called(ctx, orderID, status)

	return args.Error(0)
}
