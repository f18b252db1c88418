package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/wholesalekart/storefront-api/internal/models"
)

type AddressService struct {
	mock.Mock
}

func (m *AddressService) CreateAddress(ctx context.Context, userID string, req *models.CreateAddressRequest) (*models.Address, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Address), args.Error(1)
}

func (m *AddressService) ListAddresses(ctx context.Context, userID string) ([]models.Address, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Address), args.Error(1)
}

func (m *AddressService) UpdateAddress(ctx context.Context, userID string, id uuid.UUID, req *models.UpdateAddressRequest) (*models.Address, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Address), args.Error(1)
}

func (m *AddressService) DeleteAddress(ctx context.Context, userID string, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)

	return args.Error(0)
}
