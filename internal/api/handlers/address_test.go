package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wholesalekart/storefront-api/internal/api/handlers"
	appErrors "github.com/wholesalekart/storefront-api/internal/errors"
	"github.com/wholesalekart/storefront-api/internal/models"
	"github.com/wholesalekart/storefront-api/internal/services/mocks"
	"github.com/wholesalekart/storefront-api/internal/testutils"
	"github.com/wholesalekart/storefront-api/internal/utils/response"
)

// setupAddressTest -> creates common test dependencies
func setupAddressTest() (*mocks.AddressService, *handlers.AddressHandler) {
	mockAddressService := new(mocks.AddressService)
	addressHandler := handlers.NewAddressHandler(mockAddressService)

	return mockAddressService, addressHandler
}

func validCreateAddressRequest() *models.CreateAddressRequest {
	return &models.CreateAddressRequest{
		FullName:     "Ramesh Traders",
		Mobile:       "9876543210",
		Pincode:      "400001",
		State:        "Maharashtra",
		City:         "Mumbai",
		Locality:     "Fort",
		FlatBuilding: "Shop 12, Heritage Building",
		AddressType:  models.AddressTypeOffice,
	}
}

func TestCreateAddress(t *testing.T) {
	t.Run("Success - Create Address", func(t *testing.T) {
		// Arrange
		mockAddressService, addressHandler := setupAddressTest()
		createReq := validCreateAddressRequest()
		body, _ := json.Marshal(createReq)

		req := testutils.CreateTestRequestWithContext("POST", "/api/v1/addresses", bytes.NewReader(body), testUserID, nil)
		recorder := httptest.NewRecorder()

		created := &models.Address{
			ID:       uuid.New(),
			UserID:   testUserID,
			FullName: createReq.FullName,
			City:     createReq.City,
		}
		mockAddressService.On("CreateAddress", mock.Anything, testUserID, createReq).Return(created, nil).Once()

		// Act
		handler := addressHandler.CreateAddress()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		mockAddressService.AssertExpectations(t)
	})

	t.Run("Failure - Validation Error", func(t *testing.T) {
		// Arrange
		mockAddressService, addressHandler := setupAddressTest()
		createReq := validCreateAddressRequest()
		createReq.Pincode = "40"
		body, _ := json.Marshal(createReq)

		req := testutils.CreateTestRequestWithContext("POST", "/api/v1/addresses", bytes.NewReader(body), testUserID, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler := addressHandler.CreateAddress()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		mockAddressService.AssertNotCalled(t, "CreateAddress", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		_, addressHandler := setupAddressTest()
		body, _ := json.Marshal(validCreateAddressRequest())

		req := testutils.CreateTestRequestWithoutContext("POST", "/api/v1/addresses", bytes.NewReader(body), nil)
		recorder := httptest.NewRecorder()

		// Act
		handler := addressHandler.CreateAddress()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestListAddresses(t *testing.T) {
	t.Run("Success - List Addresses", func(t *testing.T) {
		// Arrange
		mockAddressService, addressHandler := setupAddressTest()

		req := testutils.CreateTestRequestWithContext("GET", "/api/v1/addresses", nil, testUserID, nil)
		recorder := httptest.NewRecorder()

		addresses := []models.Address{{ID: uuid.New(), UserID: testUserID, FullName: "Ramesh Traders"}}
		mockAddressService.On("ListAddresses", mock.Anything, testUserID).Return(addresses, nil).Once()

		// Act
		handler := addressHandler.ListAddresses()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		mockAddressService.AssertExpectations(t)
	})

	t.Run("Failure - Service Error", func(t *testing.T) {
		// Arrange
		mockAddressService, addressHandler := setupAddressTest()

		req := testutils.CreateTestRequestWithContext("GET", "/api/v1/addresses", nil, testUserID, nil)
		recorder := httptest.NewRecorder()

		mockError := appErrors.DatabaseError("Failed to list addresses")
		mockAddressService.On("ListAddresses", mock.Anything, testUserID).Return(nil, mockError).Once()

		// Act
		handler := addressHandler.ListAddresses()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)

		mockAddressService.AssertExpectations(t)
	})
}

func TestUpdateAddress(t *testing.T) {
	t.Run("Success - Update Address", func(t *testing.T) {
		// Arrange
		mockAddressService, addressHandler := setupAddressTest()
		addressID := uuid.New()
		newCity := "Pune"
		updateReq := &models.UpdateAddressRequest{City: &newCity}
		body, _ := json.Marshal(updateReq)

		req := testutils.CreateTestRequestWithContext("PUT", "/api/v1/addresses/"+addressID.String(), bytes.NewReader(body), testUserID,
			map[string]string{"id": addressID.String()})
		recorder := httptest.NewRecorder()

		updated := &models.Address{ID: addressID, UserID: testUserID, City: newCity}
		mockAddressService.On("UpdateAddress", mock.Anything, testUserID, addressID, updateReq).Return(updated, nil).Once()

		// Act
		handler := addressHandler.UpdateAddress()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		mockAddressService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Address ID", func(t *testing.T) {
		// Arrange
		mockAddressService, addressHandler := setupAddressTest()
		body, _ := json.Marshal(&models.UpdateAddressRequest{})

		req := testutils.CreateTestRequestWithContext("PUT", "/api/v1/addresses/not-a-uuid", bytes.NewReader(body), testUserID,
			map[string]string{"id": "not-a-uuid"})
		recorder := httptest.NewRecorder()

		// Act
		handler := addressHandler.UpdateAddress()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		mockAddressService.AssertNotCalled(t, "UpdateAddress", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Address Belongs To Another User", func(t *testing.T) {
		// Arrange
		mockAddressService, addressHandler := setupAddressTest()
		addressID := uuid.New()
		newCity := "Pune"
		updateReq := &models.UpdateAddressRequest{City: &newCity}
		body, _ := json.Marshal(updateReq)

		req := testutils.CreateTestRequestWithContext("PUT", "/api/v1/addresses/"+addressID.String(), bytes.NewReader(body), testUserID,
			map[string]string{"id": addressID.String()})
		recorder := httptest.NewRecorder()

		mockError := appErrors.ForbiddenError("Address belongs to another user")
		mockAddressService.On("UpdateAddress", mock.Anything, testUserID, addressID, updateReq).Return(nil, mockError).Once()

		// Act
		handler := addressHandler.UpdateAddress()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, recorder.Code)

		mockAddressService.AssertExpectations(t)
	})
}

func TestDeleteAddress(t *testing.T) {
	t.Run("Success - Delete Address", func(t *testing.T) {
		// Arrange
		mockAddressService, addressHandler := setupAddressTest()
		addressID := uuid.New()

		req := testutils.CreateTestRequestWithContext("DELETE", "/api/v1/addresses/"+addressID.String(), nil, testUserID,
			map[string]string{"id": addressID.String()})
		recorder := httptest.NewRecorder()

		mockAddressService.On("DeleteAddress", mock.Anything, testUserID, addressID).Return(nil).Once()

		// Act
		handler := addressHandler.DeleteAddress()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.String())

		mockAddressService.AssertExpectations(t)
	})

	t.Run("Failure - Address Not Found", func(t *testing.T) {
		// Arrange
		mockAddressService, addressHandler := setupAddressTest()
		addressID := uuid.New()

		req := testutils.CreateTestRequestWithContext("DELETE", "/api/v1/addresses/"+addressID.String(), nil, testUserID,
			map[string]string{"id": addressID.String()})
		recorder := httptest.NewRecorder()

		mockError := appErrors.NotFoundError("Address not found")
		mockAddressService.On("DeleteAddress", mock.Anything, testUserID, addressID).Return(mockError).Once()

		// Act
		handler := addressHandler.DeleteAddress()
		handler(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		mockAddressService.AssertExpectations(t)
	})
}
