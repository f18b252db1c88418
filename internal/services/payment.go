package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appErrors "github.com/wholesalekart/storefront-api/internal/errors"
	"github.com/wholesalekart/storefront-api/internal/models"
	repository "github.com/wholesalekart/storefront-api/internal/repositories"
	"github.com/wholesalekart/storefront-api/pkg/stripe"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, userID string, req *models.CreatePaymentRequest) (*models.PaymentResponse, error)
	GetPayment(ctx context.Context, userID string, id uuid.UUID) (*models.Payment, error)
	HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	stripe      stripe.Client
	currency    string
}

func NewPaymentService(paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository, stripeClient stripe.Client, currency string) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, orderRepo: orderRepo, stripe: stripeClient, currency: currency}
}

// CreatePayment opens a payment intent for an existing order. The amount
// charged is the order total converted to the currency's smallest unit.
func (s *paymentService) CreatePayment(ctx context.Context, userID string, req *models.CreatePaymentRequest) (*models.PaymentResponse, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	if order.UserID != userID {
		return nil, appErrors.ForbiddenError("Order belongs to another user")
	}

	amount := order.Total.Add(order.DeliveryFee)
	minorUnits := amount.Mul(decimal.NewFromInt(100)).IntPart()

	intent, err := s.stripe.CreatePaymentIntent(minorUnits, s.currency, "Payment for order "+order.OrderID)
	if err != nil {
		return nil, appErrors.ThirdPartyError("Failed to initiate payment").WithError(err)
	}

	payment := &models.Payment{
		ID:              uuid.New(),
		OrderID:         order.OrderID,
		UserID:          userID,
		Amount:          amount,
		Currency:        s.currency,
		Status:          models.PaymentStatusPending,
		PaymentIntentID: intent.ID,
	}

	if err := s.paymentRepo.CreatePayment(ctx, payment); err != nil {
		return nil, appErrors.DatabaseError("Failed to save payment").WithError(err)
	}

	return &models.PaymentResponse{Payment: payment, ClientSecret: intent.ClientSecret}, nil
}

func (s *paymentService) GetPayment(ctx context.Context, userID string, id uuid.UUID) (*models.Payment, error) {

	payment, err := s.paymentRepo.GetPaymentByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Payment not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch payment").WithError(err)
	}

	if payment.UserID != userID {
		return nil, appErrors.ForbiddenError("Payment belongs to another user")
	}

	return payment, nil
}

// HandleWebhookEvent verifies and applies a Stripe event. Unrecognised event
// types are acknowledged without side effects so Stripe does not retry them.
func (s *paymentService) HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error {

	event, err := s.stripe.VerifyWebhookSignature(payload, signature)
	if err != nil {
		return appErrors.UnauthorizedError("Invalid webhook signature").WithError(err)
	}

	var status models.PaymentStatus

	switch event.Type {
	case "payment_intent.succeeded":
		status = models.PaymentStatusPaid
	case "payment_intent.payment_failed":
		status = models.PaymentStatusFailed
	default:
		slog.Debug("Ignoring webhook event", slog.String("type", string(event.Type)))

		return nil
	}

	intentID, ok := event.Data.Object["id"].(string)
	if !ok || intentID == "" {
		return appErrors.BadRequestError("Webhook event missing payment intent id")
	}

	if err := s.paymentRepo.UpdatePaymentStatusByIntent(ctx, intentID, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Payment not found for intent").WithError(err)
		}

		return appErrors.DatabaseError("Failed to update payment status").WithError(err)
	}

	return nil
}
