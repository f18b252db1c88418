package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/wholesalekart/storefront-api/internal/api/middleware"
	"github.com/wholesalekart/storefront-api/internal/errors"
	"github.com/wholesalekart/storefront-api/internal/models"
	service "github.com/wholesalekart/storefront-api/internal/services"
	"github.com/wholesalekart/storefront-api/internal/utils/response"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GetProduct godoc
//	@Summary		Get a product by name
//	@Description	Retrieves a product with its variants and price tiers.
//	@Tags			Products
//	@Produce		json
//	@Param			name	path		string					true	"Product name"
//	@Success		200		{object}	models.Product			"Successfully retrieved product"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/products/{name} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		name := r.PathValue("name")
		if name == "" {
			response.Error(w, errors.BadRequestError("Product name is required"))
			return
		}

		product, err := h.productService.GetProductByName(r.Context(), name)
		if err != nil {
			logger.Error("Failed to get product",
				slog.String("name", name),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// ListProducts godoc
//	@Summary		List products by subcategory
//	@Description	Returns a paginated list of products within a subcategory.
//	@Tags			Products
//	@Produce		json
//	@Param			subcategory	query		string						true	"Subcategory name"
//	@Param			page		query		int							false	"Page number"
//	@Param			pageSize	query		int							false	"Page size"
//	@Success		200			{object}	models.PaginatedResponse	"Successfully listed products"
//	@Failure		400			{object}	response.ErrorResponse		"Missing subcategory"
//	@Failure		500			{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		subcategory := r.URL.Query().Get("subcategory")
		if subcategory == "" {
			response.Error(w, errors.BadRequestError("Subcategory is required"))
			return
		}

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 {
			page = 1
		}
		pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
		if err != nil || pageSize < 1 || pageSize > 50 {
			pageSize = 20
		}

		logger = logger.With(slog.String("subcategory", subcategory), slog.Int("page", page))

		products, total, err := h.productService.ListBySubcategory(r.Context(), subcategory, page, pageSize)
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Products listed successfully", slog.Int("count", len(products)), slog.Int("total", total))
		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     products,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}
