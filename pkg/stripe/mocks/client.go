package mocks

import (
	"github.com/stretchr/testify/mock"
	stripesdk "github.com/stripe/stripe-go/v81"

	"github.com/wholesalekart/storefront-api/pkg/stripe"
)

type Client struct {
	mock.Mock
}

func (m *Client) CreatePaymentIntent(amount int64, currency string, description string) (*stripesdk.PaymentIntent, error) {
	args := m.Called(amount, currency, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*stripesdk.PaymentIntent), args.Error(1)
}

func (m *Client) ConfirmPaymentIntent(paymentIntentID string) (*stripesdk.PaymentIntent, error) {
	args := m.Called(paymentIntentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*stripesdk.PaymentIntent), args.Error(1)
}

func (m *Client) VerifyWebhookSignature(payload []byte, signature string) (stripe.Event, error) {
	args := m.Called(payload, signature)

	return args.Get(0).(stripe.Event), args.Error(1)
}
