package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/wholesalekart/storefront-api/internal/api/middleware"
	"github.com/wholesalekart/storefront-api/internal/errors"
	"github.com/wholesalekart/storefront-api/internal/metrics"
	"github.com/wholesalekart/storefront-api/internal/models"
	service "github.com/wholesalekart/storefront-api/internal/services"
	"github.com/wholesalekart/storefront-api/internal/utils"
	"github.com/wholesalekart/storefront-api/internal/utils/response"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//	@Summary		Get the current cart
//	@Description	Returns the authenticated user's cart lines and recomputed total.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartView			"Current cart"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		cart := h.cartService.GetCart(r.Context(), claims.UserID)

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//	@Summary		Add an item to the cart
//	@Description	Adds a product variant at the given quantity. Adding an existing line again merges the quantities and reprices the line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddItemRequest	true	"Item to add"
//	@Success		200		{object}	models.CartView			"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or unknown variant"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Failure		422		{object}	response.ErrorResponse	"No price tier covers the quantity"
//	@Security		BearerAuth
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart mutation attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to add item to cart",
				slog.String("product", req.ProductName),
				slog.Any("error", err.Error()))
			response.Error(w, err)
			return
		}

		metrics.IncCartMutation("add")
		logger.Info("Item added to cart", slog.String("product", req.ProductName), slog.Int("lines", len(cart.Lines)))
		response.Success(w, http.StatusOK, cart)
	}
}

// IncrementItem godoc
//	@Summary		Increment a cart line
//	@Description	Raises the line's quantity by one and reprices it. A missing line or an uncovered new quantity leaves the cart unchanged.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.CartLineRef		true	"Line to increment"
//	@Success		200		{object}	models.CartView			"Updated cart"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/cart/items/increment [post]
func (h *CartHandler) IncrementItem() http.HandlerFunc {
	return h.adjustItem("increment", func(r *http.Request, userID string, ref *models.CartLineRef) *models.CartView {
		return h.cartService.IncrementItem(r.Context(), userID, ref)
	})
}

// DecrementItem godoc
//	@Summary		Decrement a cart line
//	@Description	Lowers the line's quantity by one, never below one, and reprices it.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.CartLineRef		true	"Line to decrement"
//	@Success		200		{object}	models.CartView			"Updated cart"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/cart/items/decrement [post]
func (h *CartHandler) DecrementItem() http.HandlerFunc {
	return h.adjustItem("decrement", func(r *http.Request, userID string, ref *models.CartLineRef) *models.CartView {
		return h.cartService.DecrementItem(r.Context(), userID, ref)
	})
}

// RemoveItem godoc
//	@Summary		Remove a cart line
//	@Description	Deletes the line outright regardless of its quantity.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.CartLineRef		true	"Line to remove"
//	@Success		200		{object}	models.CartView			"Updated cart"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/cart/items [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return h.adjustItem("remove", func(r *http.Request, userID string, ref *models.CartLineRef) *models.CartView {
		return h.cartService.RemoveItem(r.Context(), userID, ref)
	})
}

// ClearCart godoc
//	@Summary		Clear the cart
//	@Description	Removes every line from the authenticated user's cart.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartView			"Emptied cart"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart mutation attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		h.cartService.ClearCart(r.Context(), claims.UserID)

		metrics.IncCartMutation("clear")
		logger.Info("Cart cleared")
		response.Success(w, http.StatusOK, h.cartService.GetCart(r.Context(), claims.UserID))
	}
}

func (h *CartHandler) adjustItem(op string, apply func(r *http.Request, userID string, ref *models.CartLineRef) *models.CartView) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart mutation attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var ref models.CartLineRef
		if !utils.ParseAndValidate(r, w, &ref, h.validator) {
			logger.Warn("Invalid cart line reference")
			return
		}

		cart := apply(r, claims.UserID, &ref)

		metrics.IncCartMutation(op)
		logger.Info("Cart line adjusted",
			slog.String("op", op),
			slog.String("product", ref.ProductName),
			slog.Int("variantIndex", ref.VariantIndex))
		response.Success(w, http.StatusOK, cart)
	}
}
