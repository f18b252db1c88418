package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wholesalekart/storefront-api/internal/cart"
	"github.com/wholesalekart/storefront-api/internal/config"
	appErrors "github.com/wholesalekart/storefront-api/internal/errors"
	"github.com/wholesalekart/storefront-api/internal/metrics"
	"github.com/wholesalekart/storefront-api/internal/models"
	repository "github.com/wholesalekart/storefront-api/internal/repositories"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, claims *models.Claims, req *models.PlaceOrderRequest) (*models.CheckoutResult, error)
	GetOrderByID(ctx context.Context, orderID string) (*models.OrderRecord, error)
	ListOrdersByUser(ctx context.Context, userID string, page, size int) ([]models.OrderRecord, int, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.OrderRecord, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	addressRepo repository.AddressRepository
	store       *cart.Store
	notifier    NotificationService
	checkout    config.Checkout
}

func NewOrderService(orderRepo repository.OrderRepository, addressRepo repository.AddressRepository, store *cart.Store, notifier NotificationService, checkout config.Checkout) OrderService {
	return &orderService{orderRepo: orderRepo, addressRepo: addressRepo, store: store, notifier: notifier, checkout: checkout}
}

// PlaceOrder fans the user's cart out into one order record per line. Writes
// go out sequentially; a failure partway leaves the already-written records
// in place and keeps the cart intact, so the same checkout id can be
// resubmitted; lines persisted by the earlier attempt are skipped.
func (s *orderService) PlaceOrder(ctx context.Context, claims *models.Claims, req *models.PlaceOrderRequest) (*models.CheckoutResult, error) {

	if claims == nil || claims.UserID == "" {
		return nil, appErrors.UnauthorizedError("Sign in to place an order")
	}

	lines := s.store.Lines(claims.UserID)
	if len(lines) == 0 {
		return nil, appErrors.BadRequestError("Cannot place an order with an empty cart")
	}

	addressID, err := uuid.Parse(req.AddressID)
	if err != nil {
		return nil, appErrors.BadRequestError("Invalid address id").WithError(err)
	}

	address, err := s.addressRepo.GetAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Delivery address not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to load delivery address").WithError(err)
	}

	if address.UserID != claims.UserID {
		return nil, appErrors.ForbiddenError("Address belongs to another user")
	}

	checkoutID := req.CheckoutID
	if checkoutID == "" {
		checkoutID = uuid.NewString()
	}

	result := &models.CheckoutResult{CheckoutID: checkoutID, Total: decimal.Zero}

	// One record per line, written strictly in cart order. Record i+1 is not
	// started until record i's write has resolved.
	for i, line := range lines {

		exists, err := s.orderRepo.ExistsForCheckout(ctx, checkoutID, i)
		if err != nil {
			metrics.IncCheckoutFailure()
			return nil, appErrors.DatabaseError("Failed to place order").WithError(err)
		}

		if exists {
			slog.Info("Skipping already-persisted checkout line",
				slog.String("checkoutId", checkoutID), slog.Int("lineIndex", i))
			continue
		}

		record := &models.OrderRecord{
			OrderID:         newOrderID(),
			UserID:          claims.UserID,
			CheckoutID:      checkoutID,
			LineIndex:       i,
			Item:            line.Product.Name,
			Size:            line.Variant().Size,
			VariantIndex:    line.VariantIndex,
			UnitPrice:       line.UnitPrice,
			Quantity:        line.Quantity,
			Total:           line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
			GSTRate:         s.checkout.GSTRate,
			DeliveryFee:     decimal.NewFromFloat(s.checkout.DeliveryFee),
			DeliveryAddress: *address,
			Status:          models.OrderStatusPending,
			CreatedAt:       time.Now().UTC(),
		}

		if err := s.orderRepo.CreateOrder(ctx, record); err != nil {
			metrics.IncCheckoutFailure()

			// No compensating delete: records written so far stay, the cart
			// stays untouched.
			return nil, appErrors.DatabaseError("Failed to place order").WithError(err)
		}

		result.OrderIDs = append(result.OrderIDs, record.OrderID)
		result.Total = result.Total.Add(record.Total)
	}

	metrics.AddOrdersEmitted(len(result.OrderIDs))

	// Every write succeeded: only now is the cart cleared.
	s.store.Clear(claims.UserID)

	if s.notifier != nil && claims.Email != "" {
		if err := s.notifier.SendOrderConfirmation(ctx, claims.Email, result, lines); err != nil {
			slog.Warn("Failed to send order confirmation email",
				slog.String("checkoutId", checkoutID), slog.Any("error", err))
		}
	}

	return result, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (*models.OrderRecord, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	return order, nil
}

func (s *orderService) ListOrdersByUser(ctx context.Context, userID string, page, size int) ([]models.OrderRecord, int, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 50 {
		size = 10
	}

	orders, total, err := s.orderRepo.ListOrdersByUser(ctx, userID, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, total, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.OrderRecord, error) {

	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to update order status").WithError(err)
	}

	return s.GetOrderByID(ctx, orderID)
}

// Uniqueness is best-effort: a millisecond timestamp plus a random suffix,
// not backed by a store constraint.
func newOrderID() string {
	return fmt.Sprintf("ORD-%d-%05d", time.Now().UnixMilli(), rand.IntN(100000))
}
