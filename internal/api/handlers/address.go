package handlers

import (
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

type AddressHandler struct {
	addressService service.AddressService
	validator      *validator.Validate
}

func NewAddressHandler(addressService service.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService, validator: validator.New()}
}

// CreateAddress godoc
//	@Summary		Create a delivery address
//	@Description	Saves a new delivery address for the authenticated user.
//	@Tags			Addresses
//	@Accept			json
//	@Produce		json
//	@Param			address	body		models.CreateAddressRequest	true	"Address details"
//	@Success		201		{object}	models.Address				"Created address"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Security		BearerAuth
//	@Router			/addresses [post]
func (h *AddressHandler) CreateAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized address creation attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CreateAddressRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid address input")
			return
		}

		address, err := h.addressService.CreateAddress(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to create address", slog.Any("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Address created successfully", slog.String("addressId", address.ID.String()))
		response.Success(w, http.StatusCreated, address)
	}
}

// ListAddresses godoc
//	@Summary		List delivery addresses
//	@Description	Returns all of the authenticated user's saved addresses.
//	@Tags			Addresses
//	@Produce		json
//	@Success		200	{array}		models.Address			"Saved addresses"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/addresses [get]
func (h *AddressHandler) ListAddresses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized address access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		addresses, err := h.addressService.ListAddresses(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to list addresses", slog.Any("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, addresses)
	}
}

// UpdateAddress godoc
//	@Summary		Update a delivery address
//	@Description	Applies a partial update to one of the user's addresses.
//	@Tags			Addresses
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Address ID (UUID)"	Format(uuid)
//	@Param			address	body		models.UpdateAddressRequest	true	"Fields to update"
//	@Success		200		{object}	models.Address				"Updated address"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse		"Address belongs to another user"
//	@Failure		404		{object}	response.ErrorResponse		"Address not found"
//	@Security		BearerAuth
//	@Router			/addresses/{id} [put]
func (h *AddressHandler) UpdateAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized address update attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid address id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.UpdateAddressRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid address update input")
			return
		}

		address, err := h.addressService.UpdateAddress(r.Context(), claims.UserID, id, &req)
		if err != nil {
			logger.Error("Failed to update address",
				slog.String("addressId", id.String()),
				slog.Any("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Address updated successfully", slog.String("addressId", id.String()))
		response.Success(w, http.StatusOK, address)
	}
}

// DeleteAddress godoc
//	@Summary		Delete a delivery address
//	@Description	Removes one of the user's addresses.
//	@Tags			Addresses
//	@Produce		json
//	@Param			id	path		string					true	"Address ID (UUID)"	Format(uuid)
//	@Success		204	"Address deleted"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Address not found"
//	@Security		BearerAuth
//	@Router			/addresses/{id} [delete]
func (h *AddressHandler) DeleteAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized address delete attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid address id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := h.addressService.DeleteAddress(r.Context(), claims.UserID, id); err != nil {
			logger.Error("Failed to delete address",
				slog.String("addressId", id.String()),
				slog.Any("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Address deleted successfully", slog.String("addressId", id.String()))
		w.WriteHeader(http.StatusNoContent)
	}
}
