package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/wholesalekart/storefront-api/internal/models"
)

type OrderService struct {
	mock.Mock
}

func (m *OrderService) PlaceOrder(ctx context.Context, claims *models.Claims, req *models.PlaceOrderRequest) (*models.CheckoutResult, error) {
	args := m.Called(ctx, claims, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CheckoutResult), args.Error(1)
}

func (m *OrderService) GetOrderByID(ctx context.Context, orderID string) (*models.OrderRecord, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.OrderRecord), args.Error(1)
}

func (m *OrderService) ListOrdersByUser(ctx context.Context, userID string, page, size int) ([]models.OrderRecord, int, error) {
	args := m.Called(ctx, userID, page, size)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}

	return args.Get(0).([]models.OrderRecord), args.Int(1), args.Error(2)
}

func (m *OrderService) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.OrderRecord, error) {
	args := m.Called(ctx, orderID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.OrderRecord), args.Error(1)
}
