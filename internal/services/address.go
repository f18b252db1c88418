package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	appErrors "github.com/wholesalekart/storefront-api/internal/errors"
	"github.com/wholesalekart/storefront-api/internal/models"
	repository "github.com/wholesalekart/storefront-api/internal/repositories"
)

type AddressService interface {
	CreateAddress(ctx context.Context, userID string, req *models.CreateAddressRequest) (*models.Address, error)
	ListAddresses(ctx context.Context, userID string) ([]models.Address, error)
	UpdateAddress(ctx context.Context, userID string, id uuid.UUID, req *models.UpdateAddressRequest) (*models.Address, error)
	DeleteAddress(ctx context.Context, userID string, id uuid.UUID) error
}

type addressService struct {
	repo repository.AddressRepository
}

func NewAddressService(repo repository.AddressRepository) AddressService {
	return &addressService{repo: repo}
}

func (s *addressService) CreateAddress(ctx context.Context, userID string, req *models.CreateAddressRequest) (*models.Address, error) {

	address := &models.Address{
		ID:           uuid.New(),
		UserID:       userID,
		FullName:     req.FullName,
		Mobile:       req.Mobile,
		Pincode:      req.Pincode,
		State:        req.State,
		City:         req.City,
		Locality:     req.Locality,
		FlatBuilding: req.FlatBuilding,
		Landmark:     req.Landmark,
		AddressType:  req.AddressType,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}

	if err := s.repo.CreateAddress(ctx, address); err != nil {
		return nil, appErrors.DatabaseError("Failed to save address").WithError(err)
	}

	return address, nil
}

func (s *addressService) ListAddresses(ctx context.Context, userID string) ([]models.Address, error) {

	addresses, err := s.repo.ListAddressesByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch addresses").WithError(err)
	}

	return addresses, nil
}

func (s *addressService) UpdateAddress(ctx context.Context, userID string, id uuid.UUID, req *models.UpdateAddressRequest) (*models.Address, error) {

	address, err := s.repo.GetAddressByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Address not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch address").WithError(err)
	}

	if address.UserID != userID {
		return nil, appErrors.ForbiddenError("Address belongs to another user")
	}

	if req.FullName != nil {
		address.FullName = *req.FullName
	}
	if req.Mobile != nil {
		address.Mobile = *req.Mobile
	}
	if req.Pincode != nil {
		address.Pincode = *req.Pincode
	}
	if req.State != nil {
		address.State = *req.State
	}
	if req.City != nil {
		address.City = *req.City
	}
	if req.Locality != nil {
		address.Locality = *req.Locality
	}
	if req.FlatBuilding != nil {
		address.FlatBuilding = *req.FlatBuilding
	}
	if req.Landmark != nil {
		address.Landmark = *req.Landmark
	}
	if req.AddressType != nil {
		address.AddressType = *req.AddressType
	}
	if req.Latitude != nil {
		address.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		address.Longitude = *req.Longitude
	}

	if err := s.repo.UpdateAddress(ctx, address); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Address not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to update address").WithError(err)
	}

	return address, nil
}

func (s *addressService) DeleteAddress(ctx context.Context, userID string, id uuid.UUID) error {

	if err := s.repo.DeleteAddress(ctx, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Address not found").WithError(err)
		}

		return appErrors.DatabaseError("Failed to delete address").WithError(err)
	}

	return nil
}
