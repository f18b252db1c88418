package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/wholesalekart/storefront-api/internal/models"
)

type AddressRepository struct {
	mock.Mock
}

func (m *AddressRepository) CreateAddress(ctx context.Context, address *models.Address) error {
	args := m.Called(ctx, address)

	return args.Error(0)
}

func (m *AddressRepository) GetAddressByID(ctx context.Context, id uuid.UUID) (*models.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Address), args.Error(1)
}

func (m *AddressRepository) ListAddressesByUser(ctx context.Context, userID string) ([]models.Address, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Address), args.Error(1)
}

func (m *AddressRepository) UpdateAddress(ctx context.Context, address *models.Address) error {
	args := m.Called(ctx, address)

	return args.Error(0)
}

func (m *AddressRepository) DeleteAddress(ctx context.Context, id uuid.UUID, userID string) error {
	args := m.Called(ctx, id, userID)

	return args.Error(0)
}
