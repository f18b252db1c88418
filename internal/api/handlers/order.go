package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/wholesalekart/storefront-api/internal/api/middleware"
	"github.com/wholesalekart/storefront-api/internal/errors"
	"github.com/wholesalekart/storefront-api/internal/models"
	repository "github.com/wholesalekart/storefront-api/internal/repositories"
	service "github.com/wholesalekart/storefront-api/internal/services"
	"github.com/wholesalekart/storefront-api/internal/utils"
	"github.com/wholesalekart/storefront-api/internal/utils/response"
)

type OrderHandler struct {
	orderService service.OrderService
	rateLimiter  repository.RateLimitRepository
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService, rateLimiter repository.RateLimitRepository) *OrderHandler {
	return &OrderHandler{orderService: orderService, rateLimiter: rateLimiter, validator: validator.New()}
}

// PlaceOrder godoc
//	@Summary		Place an order from the cart
//	@Description	Emits one order record per cart line, clears the cart on success and returns the generated order ids. Resubmitting the same checkout_id after a partial failure skips already-persisted lines.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		models.PlaceOrderRequest	true	"Delivery address and optional idempotency key"
//	@Success		201		{object}	models.CheckoutResult		"Orders placed"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error or empty cart"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse		"Address belongs to another user"
//	@Failure		429		{object}	response.ErrorResponse		"Too many checkout attempts"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/orders [post]
func (h *OrderHandler) PlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized checkout attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		if h.rateLimiter != nil {
			allowed, remaining, retryAfter, err := h.rateLimiter.CheckCheckoutRateLimit(r.Context(), claims.UserID)
			if err != nil {
				logger.Error("Checkout rate limit check failed", slog.Any("error", err.Error()))
				response.Error(w, errors.InternalError("Could not process checkout"))
				return
			}

			if !allowed {
				logger.Warn("Checkout rate limit exceeded", slog.Int("retryAfterSeconds", retryAfter))
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				response.Error(w, errors.TooManyRequestsError("Too many checkout attempts").
					WithDetail(fmt.Sprintf("Try again in %d seconds", retryAfter)))
				return
			}

			logger = logger.With(slog.Int("checkoutAttemptsLeft", remaining))
		}

		var req models.PlaceOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		result, err := h.orderService.PlaceOrder(r.Context(), claims, &req)
		if err != nil {
			logger.Error("Failed to place order", slog.Any("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Orders placed successfully",
			slog.String("checkoutId", result.CheckoutID),
			slog.Int("orders", len(result.OrderIDs)))
		response.Success(w, http.StatusCreated, result)
	}
}

// GetOrder godoc
//	@Summary		Get an order by ID
//	@Description	Retrieves one of the authenticated user's order records.
//	@Tags			Orders
//	@Produce		json
//	@Param			orderId	path		string					true	"Order ID"
//	@Success		200		{object}	models.OrderRecord		"Successfully retrieved order"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse	"Order belongs to another user"
//	@Failure		404		{object}	response.ErrorResponse	"Order not found"
//	@Security		BearerAuth
//	@Router			/orders/{orderId} [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized order access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		orderID := r.PathValue("orderId")
		if orderID == "" {
			response.Error(w, errors.BadRequestError("Order ID is required"))
			return
		}

		logger = logger.With(slog.String("orderId", orderID))

		order, err := h.orderService.GetOrderByID(r.Context(), orderID)
		if err != nil {
			logger.Error("Failed to get order", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if order.UserID != claims.UserID {
			logger.Warn("Attempted to access another user's order")
			response.Error(w, errors.ForbiddenError("You do not have permission to view this order"))
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// ListOrders godoc
//	@Summary		List the user's orders
//	@Description	Returns the authenticated user's order records, newest first.
//	@Tags			Orders
//	@Produce		json
//	@Param			page		query		int							false	"Page number"
//	@Param			pageSize	query		int							false	"Page size"
//	@Success		200			{object}	models.PaginatedResponse	"Successfully listed orders"
//	@Failure		401			{object}	response.ErrorResponse		"Authentication required"
//	@Security		BearerAuth
//	@Router			/orders [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized order access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 {
			page = 1
		}
		pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
		if err != nil || pageSize < 1 || pageSize > 50 {
			pageSize = 10
		}

		orders, total, err := h.orderService.ListOrdersByUser(r.Context(), claims.UserID, page, pageSize)
		if err != nil {
			logger.Error("Failed to list orders", slog.Any("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Orders listed successfully", slog.Int("count", len(orders)), slog.Int("total", total))
		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     orders,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

// UpdateOrderStatus godoc
//	@Summary		Update an order's status
//	@Description	Moves an order along the fulfilment lifecycle.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			orderId	path		string							true	"Order ID"
//	@Param			status	body		models.UpdateOrderStatusRequest	true	"New status"
//	@Success		200		{object}	models.OrderRecord				"Updated order"
//	@Failure		400		{object}	response.ErrorResponse			"Invalid status"
//	@Failure		401		{object}	response.ErrorResponse			"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse			"Order not found"
//	@Security		BearerAuth
//	@Router			/orders/{orderId}/status [patch]
func (h *OrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized order status update attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		orderID := r.PathValue("orderId")
		if orderID == "" {
			response.Error(w, errors.BadRequestError("Order ID is required"))
			return
		}

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid order status input")
			return
		}

		existing, err := h.orderService.GetOrderByID(r.Context(), orderID)
		if err != nil {
			response.Error(w, err)
			return
		}

		if existing.UserID != claims.UserID {
			logger.Warn("Attempted to update another user's order", slog.String("orderId", orderID))
			response.Error(w, errors.ForbiddenError("You do not have permission to update this order"))
			return
		}

		order, err := h.orderService.UpdateOrderStatus(r.Context(), orderID, req.Status)
		if err != nil {
			logger.Error("Failed to update order status",
				slog.String("orderId", orderID),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Order status updated",
			slog.String("orderId", orderID),
			slog.String("status", string(req.Status)))
		response.Success(w, http.StatusOK, order)
	}
}
