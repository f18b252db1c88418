package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/wholesalekart/storefront-api/internal/models"
)

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) GetProductByName(ctx context.Context, name string) (*models.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *ProductRepository) ListBySubcategory(ctx context.Context, subcategory string, page, size int) ([]*models.Product, int, error) {
	args := m.Called(ctx, subcategory, page, size)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}

	return args.Get(0).([]*models.Product), args.Int(1), args.Error(2)
}
