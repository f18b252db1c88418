package repository_test

import (
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wholesalekart/storefront-api/internal/models"
	repository "github.com/wholesalekart/storefront-api/internal/repositories"
)

const orderColumnList = "order_id, user_id, checkout_id, line_index, item, size, variant_index, unit_price, quantity, total, gst_rate, delivery_fee, delivery_address, status, created_at"

var orderRows = []string{"order_id", "user_id", "checkout_id", "line_index", "item", "size", "variant_index", "unit_price", "quantity", "total", "gst_rate", "delivery_fee", "delivery_address", "status", "created_at"}

func sampleOrder() *models.OrderRecord {
	return &models.OrderRecord{
		OrderID:      "ORD-1700000000000-00042",
		UserID:       "user-1",
		CheckoutID:   uuid.NewString(),
		LineIndex:    0,
		Item:         "toor dal",
		Size:         "1kg",
		VariantIndex: 0,
		UnitPrice:    decimal.NewFromInt(90),
		Quantity:     5,
		Total:        decimal.NewFromInt(450),
		GSTRate:      18,
		DeliveryFee:  decimal.NewFromInt(20),
		DeliveryAddress: models.Address{
			ID:          uuid.New(),
			UserID:      "user-1",
			FullName:    "Test Buyer",
			Mobile:      "9876543210",
			Pincode:     "110001",
			State:       "Delhi",
			City:        "New Delhi",
			Locality:    "Connaught Place",
			AddressType: models.AddressTypeHome,
		},
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

func TestOrderRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewOrderRepo(db)
	ctx := t.Context()

	t.Run("CreateOrder", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			order := sampleOrder()
			addressJSON, err := json.Marshal(order.DeliveryAddress)
			require.NoError(t, err)

			expectedSQL := regexp.QuoteMeta(`INSERT INTO orders (` + orderColumnList + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`)

			mock.ExpectExec(expectedSQL).
				WithArgs(order.OrderID, order.UserID, order.CheckoutID, order.LineIndex, order.Item, order.Size, order.VariantIndex, order.UnitPrice, order.Quantity, order.Total, order.GSTRate, order.DeliveryFee, addressJSON, order.Status, order.CreatedAt).
				WillReturnResult(sqlmock.NewResult(0, 1))

			// Act
			err = repo.CreateOrder(ctx, order)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			// Arrange
			order := sampleOrder()
			dbError := errors.New("insert failed")

			mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO orders`)).
				WillReturnError(dbError)

			// Act
			err := repo.CreateOrder(ctx, order)

			// Assert
			assert.ErrorIs(t, err, dbError)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("ExistsForCheckout", func(t *testing.T) {
		t.Run("Exists", func(t *testing.T) {
			// Arrange
			checkoutID := uuid.NewString()
			expectedSQL := regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM orders WHERE checkout_id = $1 AND line_index = $2)`)

			mock.ExpectQuery(expectedSQL).
				WithArgs(checkoutID, 2).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

			// Act
			exists, err := repo.ExistsForCheckout(ctx, checkoutID, 2)

			// Assert
			require.NoError(t, err)
			assert.True(t, exists)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Missing", func(t *testing.T) {
			// Arrange
			checkoutID := uuid.NewString()

			mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
				WithArgs(checkoutID, 0).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

			// Act
			exists, err := repo.ExistsForCheckout(ctx, checkoutID, 0)

			// Assert
			require.NoError(t, err)
			assert.False(t, exists)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetOrderByID", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			order := sampleOrder()
			addressJSON, err := json.Marshal(order.DeliveryAddress)
			require.NoError(t, err)

			expectedSQL := regexp.QuoteMeta(`SELECT ` + orderColumnList + ` FROM orders WHERE order_id = $1`)

			mock.ExpectQuery(expectedSQL).
				WithArgs(order.OrderID).
				WillReturnRows(sqlmock.NewRows(orderRows).
					AddRow(order.OrderID, order.UserID, order.CheckoutID, order.LineIndex, order.Item, order.Size, order.VariantIndex, "90", order.Quantity, "450", order.GSTRate, "20", addressJSON, order.Status, order.CreatedAt))

			// Act
			got, err := repo.GetOrderByID(ctx, order.OrderID)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, order.OrderID, got.OrderID)
			assert.Equal(t, order.DeliveryAddress.ID, got.DeliveryAddress.ID)
			assert.True(t, decimal.NewFromInt(450).Equal(got.Total))
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + orderColumnList + ` FROM orders WHERE order_id = $1`)).
				WithArgs("ORD-missing").
				WillReturnRows(sqlmock.NewRows(orderRows))

			// Act
			got, err := repo.GetOrderByID(ctx, "ORD-missing")

			// Assert
			assert.Nil(t, got)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("ListOrdersByUser", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			order := sampleOrder()
			addressJSON, err := json.Marshal(order.DeliveryAddress)
			require.NoError(t, err)

			mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM orders WHERE user_id = $1`)).
				WithArgs("user-1").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

			mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+orderColumnList+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`)).
				WithArgs("user-1", 10, 0).
				WillReturnRows(sqlmock.NewRows(orderRows).
					AddRow(order.OrderID, order.UserID, order.CheckoutID, order.LineIndex, order.Item, order.Size, order.VariantIndex, "90", order.Quantity, "450", order.GSTRate, "20", addressJSON, order.Status, order.CreatedAt))

			// Act
			orders, total, err := repo.ListOrdersByUser(ctx, "user-1", 1, 10)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, 1, total)
			require.Len(t, orders, 1)
			assert.Equal(t, order.OrderID, orders[0].OrderID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("UpdateOrderStatus", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			expectedSQL := regexp.QuoteMeta(`UPDATE orders SET status = $1, updated_at = $2 WHERE order_id = $3`)

			mock.ExpectExec(expectedSQL).
				WithArgs(models.OrderStatusConfirmed, sqlmock.AnyArg(), "ORD-1").
				WillReturnResult(sqlmock.NewResult(0, 1))

			// Act
			err := repo.UpdateOrderStatus(ctx, "ORD-1", models.OrderStatusConfirmed)

			// Assert
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NoRowsUpdated", func(t *testing.T) {
			// Arrange
			mock.ExpectExec(regexp.QuoteMeta(`UPDATE orders SET status`)).
				WithArgs(models.OrderStatusConfirmed, sqlmock.AnyArg(), "ORD-missing").
				WillReturnResult(sqlmock.NewResult(0, 0))

			// Act
			err := repo.UpdateOrderStatus(ctx, "ORD-missing", models.OrderStatusConfirmed)

			// Assert
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})
}
