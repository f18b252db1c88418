package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wholesalekart/storefront-api/internal/api/handlers"
	appErrors "github.com/wholesalekart/storefront-api/internal/errors"
	"github.com/wholesalekart/storefront-api/internal/models"
	repoMocks "github.com/wholesalekart/storefront-api/internal/repositories/mocks"
	"github.com/wholesalekart/storefront-api/internal/services/mocks"
	"github.com/wholesalekart/storefront-api/internal/testutils"
	"github.com/wholesalekart/storefront-api/internal/utils/response"
)

// setupOrderTest -> creates common test dependencies. The rate limiter is
// optional; handlers built without one skip the checkout throttle.
func setupOrderTest(rateLimiter *repoMocks.RateLimitRepository) (*mocks.OrderService, *handlers.OrderHandler) {
	mockOrderService := new(mocks.OrderService)

	if rateLimiter != nil {
		return mockOrderService, handlers.NewOrderHandler(mockOrderService, rateLimiter)
	}

	return mockOrderService, handlers.NewOrderHandler(mockOrderService, nil)
}

func sampleOrderRecord(userID string) *models.OrderRecord {
	return &models.OrderRecord{
		OrderID:      "ORD-1756700921000-04821",
		UserID:       userID,
		CheckoutID:   uuid.NewString(),
		LineIndex:    0,
		Item:         "Toor Dal",
		Size:         "1kg",
		VariantIndex: 0,
		UnitPrice:    decimal.NewFromInt(90),
		Quantity:     5,
		Total:        decimal.NewFromInt(450),
		GSTRate:      18,
		DeliveryFee:  decimal.NewFromInt(20),
		Status:       models.OrderStatusPending,
	}
}

func TestPlaceOrder(t *testing.T) {
	placeOrderRequest := models.PlaceOrderRequest{AddressID: uuid.NewString()}

	t.Run("Success - Orders Placed", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest(nil)
		requestBody, _ := json.Marshal(placeOrderRequest)

		req := testutils.CreateTestRequestWithContext("POST", "/api/v1/orders", bytes.NewBuffer(requestBody), testUserID, nil)
		recorder := httptest.NewRecorder()

		result := &models.CheckoutResult{
			CheckoutID: uuid.NewString(),
			OrderIDs:   []string{"ORD-1756700921000-04821", "ORD-1756700921000-73205"},
			Total:      decimal.NewFromInt(750),
		}

		mockOrderService.On("PlaceOrder", mock.Anything, mock.MatchedBy(func(c *models.Claims) bool {
			return c.UserID == testUserID
		}), mock.MatchedBy(func(r *models.PlaceOrderRequest) bool {
			return r.AddressID == placeOrderRequest.AddressID
		})).Return(result, nil).Once()

		// Act
		handler := orderHandler.PlaceOrder()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		mockOrderService.AssertExpectations(t)
	})

	t.Run("Success - Rate Limit Allows Checkout", func(t *testing.T) {
		// Arrange
		mockRateLimiter := new(repoMocks.RateLimitRepository)
		mockOrderService, orderHandler := setupOrderTest(mockRateLimiter)
		requestBody, _ := json.Marshal(placeOrderRequest)

		req := testutils.CreateTestRequestWithContext("POST", "/api/v1/orders", bytes.NewBuffer(requestBody), testUserID, nil)
		recorder := httptest.NewRecorder()

		mockRateLimiter.On("CheckCheckoutRateLimit", mock.Anything, testUserID).Return(true, 4, 0, nil).Once()

		result := &models.CheckoutResult{
			CheckoutID: uuid.NewString(),
			OrderIDs:   []string{"ORD-1756700921000-04821"},
			Total:      decimal.NewFromInt(450),
		}
		mockOrderService.On("PlaceOrder", mock.Anything, mock.Anything, mock.Anything).Return(result, nil).Once()

		// Act
		handler := orderHandler.PlaceOrder()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)

		mockRateLimiter.AssertExpectations(t)
		mockOrderService.AssertExpectations(t)
	})

	t.Run("Failure - Rate Limit Exceeded", func(t *testing.T) {
		// Arrange
		mockRateLimiter := new(repoMocks.RateLimitRepository)
		mockOrderService, orderHandler := setupOrderTest(mockRateLimiter)
		requestBody, _ := json.Marshal(placeOrderRequest)

		req := testutils.CreateTestRequestWithContext("POST", "/api/v1/orders", bytes.NewBuffer(requestBody), testUserID, nil)
		recorder := httptest.NewRecorder()

		mockRateLimiter.On("CheckCheckoutRateLimit", mock.Anything, testUserID).Return(false, 0, 42, nil).Once()

		// Act
		handler := orderHandler.PlaceOrder()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
		assert.Equal(t, "42", recorder.Header().Get("Retry-After"))

		mockRateLimiter.AssertExpectations(t)
		mockOrderService.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Rate Limiter Error", func(t *testing.T) {
		// Arrange
		mockRateLimiter := new(repoMocks.RateLimitRepository)
		_, orderHandler := setupOrderTest(mockRateLimiter)
		requestBody, _ := json.Marshal(placeOrderRequest)

		req := testutils.CreateTestRequestWithContext("POST", "/api/v1/orders", bytes.NewBuffer(requestBody), testUserID, nil)
		recorder := httptest.NewRecorder()

		mockRateLimiter.On("CheckCheckoutRateLimit", mock.Anything, testUserID).
			Return(false, 0, 0, assert.AnError).Once()

		// Act
		handler := orderHandler.PlaceOrder()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)

		mockRateLimiter.AssertExpectations(t)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		_, orderHandler := setupOrderTest(nil)
		requestBody, _ := json.Marshal(placeOrderRequest)

		req := testutils.CreateTestRequestWithoutContext("POST", "/api/v1/orders", bytes.NewBuffer(requestBody), nil)
		recorder := httptest.NewRecorder()

		// Act
		handler := orderHandler.PlaceOrder()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Failure - Invalid Address ID", func(t *testing.T) {
		// Arrange
		_, orderHandler := setupOrderTest(nil)
		requestBody, _ := json.Marshal(models.PlaceOrderRequest{AddressID: "not-a-uuid"})

		req := testutils.CreateTestRequestWithContext("POST", "/api/v1/orders", bytes.NewBuffer(requestBody), testUserID, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler := orderHandler.PlaceOrder()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest(nil)
		requestBody, _ := json.Marshal(placeOrderRequest)

		req := testutils.CreateTestRequestWithContext("POST", "/api/v1/orders", bytes.NewBuffer(requestBody), testUserID, nil)
		recorder := httptest.NewRecorder()

		mockError := appErrors.BadRequestError("Cannot place an order from an empty cart")
		mockOrderService.On("PlaceOrder", mock.Anything, mock.Anything, mock.Anything).Return(nil, mockError).Once()

		// Act
		handler := orderHandler.PlaceOrder()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		mockOrderService.AssertExpectations(t)
	})
}

func TestGetOrder(t *testing.T) {
	t.Run("Success - Retrieve Order", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest(nil)
		order := sampleOrderRecord(testUserID)

		req := testutils.CreateTestRequestWithContext("GET", "/api/v1/orders/"+order.OrderID, nil, testUserID,
			map[string]string{"orderId": order.OrderID})
		recorder := httptest.NewRecorder()

		mockOrderService.On("GetOrderByID", mock.Anything, order.OrderID).Return(order, nil).Once()

		// Act
		handler := orderHandler.GetOrder()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		mockOrderService.AssertExpectations(t)
	})

	t.Run("Failure - Order Belongs To Another User", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest(nil)
		order := sampleOrderRecord("someone-else")

		req := testutils.CreateTestRequestWithContext("GET", "/api/v1/orders/"+order.OrderID, nil, testUserID,
			map[string]string{"orderId": order.OrderID})
		recorder := httptest.NewRecorder()

		mockOrderService.On("GetOrderByID", mock.Anything, order.OrderID).Return(order, nil).Once()

		// Act
		handler := orderHandler.GetOrder()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, recorder.Code)

		mockOrderService.AssertExpectations(t)
	})

	t.Run("Failure - Order Not Found", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest(nil)

		req := testutils.CreateTestRequestWithContext("GET", "/api/v1/orders/ORD-missing", nil, testUserID,
			map[string]string{"orderId": "ORD-missing"})
		recorder := httptest.NewRecorder()

		mockError := appErrors.NotFoundError("Order not found")
		mockOrderService.On("GetOrderByID", mock.Anything, "ORD-missing").Return(nil, mockError).Once()

		// Act
		handler := orderHandler.GetOrder()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		mockOrderService.AssertExpectations(t)
	})

	t.Run("Failure - Missing Order ID", func(t *testing.T) {
		// Arrange
		_, orderHandler := setupOrderTest(nil)

		req := testutils.CreateTestRequestWithContext("GET", "/api/v1/orders/", nil, testUserID, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler := orderHandler.GetOrder()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestListOrders(t *testing.T) {
	t.Run("Success - Default Pagination", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest(nil)

		req := testutils.CreateTestRequestWithContext("GET", "/api/v1/orders", nil, testUserID, nil)
		recorder := httptest.NewRecorder()

		orders := []models.OrderRecord{*sampleOrderRecord(testUserID)}
		mockOrderService.On("ListOrdersByUser", mock.Anything, testUserID, 1, 10).Return(orders, 1, nil).Once()

		// Act
		handler := orderHandler.ListOrders()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		mockOrderService.AssertExpectations(t)
	})

	t.Run("Success - Out Of Range Page Size Falls Back", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest(nil)

		req := testutils.CreateTestRequestWithContext("GET", "/api/v1/orders?page=2&pageSize=900", nil, testUserID, nil)
		recorder := httptest.NewRecorder()

		mockOrderService.On("ListOrdersByUser", mock.Anything, testUserID, 2, 10).
			Return([]models.OrderRecord{}, 0, nil).Once()

		// Act
		handler := orderHandler.ListOrders()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		mockOrderService.AssertExpectations(t)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	statusRequest := models.UpdateOrderStatusRequest{Status: models.OrderStatusConfirmed}

	t.Run("Success - Update Status", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest(nil)
		order := sampleOrderRecord(testUserID)
		requestBody, _ := json.Marshal(statusRequest)

		req := testutils.CreateTestRequestWithContext("PATCH", "/api/v1/orders/"+order.OrderID+"/status",
			bytes.NewBuffer(requestBody), testUserID, map[string]string{"orderId": order.OrderID})
		recorder := httptest.NewRecorder()

		updated := *order
		updated.Status = models.OrderStatusConfirmed

		mockOrderService.On("GetOrderByID", mock.Anything, order.OrderID).Return(order, nil).Once()
		mockOrderService.On("UpdateOrderStatus", mock.Anything, order.OrderID, models.OrderStatusConfirmed).
			Return(&updated, nil).Once()

		// Act
		handler := orderHandler.UpdateOrderStatus()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		mockOrderService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Status Value", func(t *testing.T) {
		// Arrange
		_, orderHandler := setupOrderTest(nil)
		requestBody := []byte(`{"status": "teleported"}`)

		req := testutils.CreateTestRequestWithContext("PATCH", "/api/v1/orders/ORD-1/status",
			bytes.NewBuffer(requestBody), testUserID, map[string]string{"orderId": "ORD-1"})
		recorder := httptest.NewRecorder()

		// Act
		handler := orderHandler.UpdateOrderStatus()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Failure - Order Belongs To Another User", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest(nil)
		order := sampleOrderRecord("someone-else")
		requestBody, _ := json.Marshal(statusRequest)

		req := testutils.CreateTestRequestWithContext("PATCH", "/api/v1/orders/"+order.OrderID+"/status",
			bytes.NewBuffer(requestBody), testUserID, map[string]string{"orderId": order.OrderID})
		recorder := httptest.NewRecorder()

		mockOrderService.On("GetOrderByID", mock.Anything, order.OrderID).Return(order, nil).Once()

		// Act
		handler := orderHandler.UpdateOrderStatus()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, recorder.Code)

		mockOrderService.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
		mockOrderService.AssertExpectations(t)
	})
}
