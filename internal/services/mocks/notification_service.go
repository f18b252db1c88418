package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/wholesalekart/storefront-api/internal/models"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) SendOrderConfirmation(ctx context.Context, email string, result *models.CheckoutResult, lines []models.CartLine) error {
	args := m.Called(ctx, email, result, lines)

	return args.Error(0)
}
