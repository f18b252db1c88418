package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wholesalekart/storefront-api/internal/models"
	"github.com/wholesalekart/storefront-api/internal/utils"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.OrderRecord) error
	ExistsForCheckout(ctx context.Context, checkoutID string, lineIndex int) (bool, error)
	GetOrderByID(ctx context.Context, orderID string) (*models.OrderRecord, error)
	ListOrdersByUser(ctx context.Context, userID string, page, size int) ([]models.OrderRecord, int, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

const orderColumns = `order_id, user_id, checkout_id, line_index, item, size, variant_index, unit_price, quantity, total, gst_rate, delivery_fee, delivery_address, status, created_at`

func (r *orderRepository) CreateOrder(ctx context.Context, order *models.OrderRecord) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	addressJSON, err := json.Marshal(order.DeliveryAddress)
	if err != nil {
		return fmt.Errorf("failed to marshal delivery address: %w", err)
	}

	query := `
		INSERT INTO orders (order_id, user_id, checkout_id, line_index, item, size, variant_index, unit_price, quantity, total, gst_rate, delivery_fee, delivery_address, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err = r.DB.ExecContext(dbCtx, query, order.OrderID, order.UserID, order.CheckoutID, order.LineIndex, order.Item, order.Size, order.VariantIndex, order.UnitPrice, order.Quantity, order.Total, order.GSTRate, order.DeliveryFee, addressJSON, order.Status, order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

// ExistsForCheckout reports whether a record for this (checkout, cart line)
// pair has already been persisted by an earlier attempt.
func (r *orderRepository) ExistsForCheckout(ctx context.Context, checkoutID string, lineIndex int) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT EXISTS (SELECT 1 FROM orders WHERE checkout_id = $1 AND line_index = $2)`

	var exists bool

	if err := r.DB.QueryRowContext(dbCtx, query, checkoutID, lineIndex).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check checkout line: %w", err)
	}

	return exists, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, orderID string) (*models.OrderRecord, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`

	order := &models.OrderRecord{}

	var addressJSON []byte

	err := r.DB.QueryRowContext(dbCtx, query, orderID).Scan(&order.OrderID, &order.UserID, &order.CheckoutID, &order.LineIndex, &order.Item, &order.Size, &order.VariantIndex, &order.UnitPrice, &order.Quantity, &order.Total, &order.GSTRate, &order.DeliveryFee, &addressJSON, &order.Status, &order.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("failed to get the order: %w", err)
	}

	if err := json.Unmarshal(addressJSON, &order.DeliveryAddress); err != nil {
		return nil, fmt.Errorf("failed to unmarshal delivery address: %w", err)
	}

	return order, nil
}

func (r *orderRepository) ListOrdersByUser(ctx context.Context, userID string, page, size int) ([]models.OrderRecord, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM orders WHERE user_id = $1`

	err := r.DB.QueryRowContext(dbCtx, countQuery, userID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	// Offset
	offset := (page - 1) * size

	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.DB.QueryContext(dbCtx, query, userID, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	defer rows.Close()

	var orders []models.OrderRecord

	for rows.Next() {

		var order models.OrderRecord

		var addressJSON []byte

		err := rows.Scan(&order.OrderID, &order.UserID, &order.CheckoutID, &order.LineIndex, &order.Item, &order.Size, &order.VariantIndex, &order.UnitPrice, &order.Quantity, &order.Total, &order.GSTRate, &order.DeliveryFee, &addressJSON, &order.Status, &order.CreatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan the orders: %w", err)
		}

		if err := json.Unmarshal(addressJSON, &order.DeliveryAddress); err != nil {
			return nil, 0, fmt.Errorf("failed to unmarshal delivery address: %w", err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE orders SET status = $1, updated_at = $2 WHERE order_id = $3`

	result, err := r.DB.ExecContext(dbCtx, query, status, time.Now(), orderID)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
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
