package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wholesalekart/storefront-api/internal/models"
	"github.com/wholesalekart/storefront-api/internal/utils"
)

type AddressRepository interface {
	CreateAddress(ctx context.Context, address *models.Address) error
	GetAddressByID(ctx context.Context, id uuid.UUID) (*models.Address, error)
	ListAddressesByUser(ctx context.Context, userID string) ([]models.Address, error)
	UpdateAddress(ctx context.Context, address *models.Address) error
	DeleteAddress(ctx context.Context, id uuid.UUID, userID string) error
}

type addressRepository struct {
	DB *sql.DB
}

func NewAddressRepo(db *sql.DB) AddressRepository {
	return &addressRepository{DB: db}
}

const addressColumns = `id, user_id, full_name, mobile, pincode, state, city, locality, flat_building, landmark, address_type, latitude, longitude, created_at, updated_at`

func (r *addressRepository) CreateAddress(ctx context.Context, address *models.Address) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO addresses (id, user_id, full_name, mobile, pincode, state, city, locality, flat_building, landmark, address_type, latitude, longitude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, address.ID, address.UserID, address.FullName, address.Mobile, address.Pincode, address.State, address.City, address.Locality, address.FlatBuilding, address.Landmark, address.AddressType, address.Latitude, address.Longitude).Scan(&address.CreatedAt, &address.UpdatedAt)
}

func (r *addressRepository) GetAddressByID(ctx context.Context, id uuid.UUID) (*models.Address, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1`

	address := &models.Address{}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&address.ID, &address.UserID, &address.FullName, &address.Mobile, &address.Pincode, &address.State, &address.City, &address.Locality, &address.FlatBuilding, &address.Landmark, &address.AddressType, &address.Latitude, &address.Longitude, &address.CreatedAt, &address.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return address, nil
}

func (r *addressRepository) ListAddressesByUser(ctx context.Context, userID string) ([]models.Address, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + addressColumns + ` FROM addresses WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	defer rows.Close()

	var addresses []models.Address

	for rows.Next() {

		var address models.Address

		err := rows.Scan(&address.ID, &address.UserID, &address.FullName, &address.Mobile, &address.Pincode, &address.State, &address.City, &address.Locality, &address.FlatBuilding, &address.Landmark, &address.AddressType, &address.Latitude, &address.Longitude, &address.CreatedAt, &address.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}

		addresses = append(addresses, address)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return addresses, nil
}

func (r *addressRepository) UpdateAddress(ctx context.Context, address *models.Address) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE addresses
		SET full_name = $1, mobile = $2, pincode = $3, state = $4, city = $5, locality = $6, flat_building = $7, landmark = $8, address_type = $9, latitude = $10, longitude = $11, updated_at = $12
		WHERE id = $13 AND user_id = $14
	`

	result, err := r.DB.ExecContext(dbCtx, query, address.FullName, address.Mobile, address.Pincode, address.State, address.City, address.Locality, address.FlatBuilding, address.Landmark, address.AddressType, address.Latitude, address.Longitude, time.Now(), address.ID, address.UserID)
	if err != nil {
		return fmt.Errorf("failed to update the address: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *addressRepository) DeleteAddress(ctx context.Context, id uuid.UUID, userID string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM addresses WHERE id = $1 AND user_id = $2`

	result, err := r.DB.ExecContext(dbCtx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete the address: %w", err)
	}

	deletedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deletedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
