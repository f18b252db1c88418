package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/wholesalekart/storefront-api/internal/models"
)

type CartService struct {
	mock.Mock
}

func (m *CartService) GetCart(ctx context.Context, userID string) *models.CartView {
	args := m.Called(ctx, userID)

	return args.Get(0).(*models.CartView)
}

func (m *CartService) AddItem(ctx context.Context, userID string, req *models.AddItemRequest) (*models.CartView, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CartView), args.Error(1)
}

func (m *CartService) IncrementItem(ctx context.Context, userID string, ref *models.CartLineRef) *models.CartView {
	args := m.Called(ctx, userID, ref)

	return args.Get(0).(*models.CartView)
}

func (m *CartService) DecrementItem(ctx context.Context, userID string, ref *models.CartLineRef) *models.CartView {
	args := m.Called(ctx, userID, ref)

	return args.Get(0).(*models.CartView)
}

func (m *CartService) RemoveItem(ctx context.Context, userID string, ref *models.CartLineRef) *models.CartView {
	args := m.Called(ctx, userID, ref)

	return args.Get(0).(*models.CartView)
}

func (m *CartService) ClearCart(ctx context.Context, userID string) {
	m.Called(ctx, userID)
}
