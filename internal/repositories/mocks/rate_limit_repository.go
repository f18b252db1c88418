package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type RateLimitRepository struct {
	mock.Mock
}

func (m *RateLimitRepository) CheckCheckoutRateLimit(ctx context.Context, userID string) (bool, int, int, error) {
	args := m.Called(ctx, userID)

	return args.Bool(0), args.Int(1), args.Int(2), args.Error(3)
}
