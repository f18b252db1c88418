package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/wholesalekart/storefront-api/internal/api/middleware"
	"github.com/wholesalekart/storefront-api/internal/errors"
	"github.com/wholesalekart/storefront-api/internal/models"
	service "github.com/wholesalekart/storefront-api/internal/services"
	"github.com/wholesalekart/storefront-api/internal/utils"
	"github.com/wholesalekart/storefront-api/internal/utils/response"
)

const maxWebhookBodyBytes = int64(65536)

type PaymentHandler struct {
	paymentService service.PaymentService
	validator      *validator.Validate
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, validator: validator.New()}
}

// CreatePayment godoc
//	@Summary		Create a payment for an order
//	@Description	Opens a payment intent for one of the user's orders and returns the client secret.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			payment	body		models.CreatePaymentRequest	true	"Order to pay for"
//	@Success		201		{object}	models.PaymentResponse		"Created payment"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse		"Order belongs to another user"
//	@Failure		404		{object}	response.ErrorResponse		"Order not found"
//	@Security		BearerAuth
//	@Router			/payments [post]
func (h *PaymentHandler) CreatePayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized payment creation attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CreatePaymentRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid payment input")
			return
		}

		payment, err := h.paymentService.CreatePayment(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to create payment",
				slog.String("orderId", req.OrderID),
				slog.Any("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Payment created successfully",
			slog.String("paymentId", payment.Payment.ID.String()),
			slog.String("orderId", req.OrderID))
		response.Success(w, http.StatusCreated, payment)
	}
}

// GetPayment godoc
//	@Summary		Get a payment by ID
//	@Description	Retrieves one of the user's payments.
//	@Tags			Payments
//	@Produce		json
//	@Param			id	path		string					true	"Payment ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Payment			"Payment"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Payment not found"
//	@Security		BearerAuth
//	@Router			/payments/{id} [get]
func (h *PaymentHandler) GetPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized payment access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid payment id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		payment, err := h.paymentService.GetPayment(r.Context(), claims.UserID, id)
		if err != nil {
			logger.Error("Failed to get payment",
				slog.String("paymentId", id.String()),
				slog.Any("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, payment)
	}
}

// HandleWebhook godoc
//	@Summary		Stripe webhook endpoint
//	@Description	Applies payment intent events to stored payments. Authenticated by signature, not by bearer token.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Success		200	"Event processed"
//	@Failure		400	{object}	response.ErrorResponse	"Unreadable payload"
//	@Failure		401	{object}	response.ErrorResponse	"Invalid signature"
//	@Router			/payments/webhook [post]
func (h *PaymentHandler) HandleWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
		if err != nil {
			logger.Error("Failed to read webhook payload", slog.Any("error", err.Error()))
			response.Error(w, errors.BadRequestError("Could not read webhook payload"))
			return
		}
		defer r.Body.Close()

		signature := r.Header.Get("Stripe-Signature")
		if signature == "" {
			logger.Warn("Webhook request without signature")
			response.Error(w, errors.UnauthorizedError("Missing webhook signature"))
			return
		}

		if err := h.paymentService.HandleWebhookEvent(r.Context(), payload, signature); err != nil {
			logger.Error("Failed to process webhook event", slog.Any("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Webhook event processed")
		response.Success(w, http.StatusOK, nil)
	}
}
