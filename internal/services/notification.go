package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wholesalekart/storefront-api/internal/models"
	"github.com/wholesalekart/storefront-api/pkg/sendgrid"
)

type NotificationService interface {
	SendOrderConfirmation(ctx context.Context, email string, result *models.CheckoutResult, lines []models.CartLine) error
}

type notificationService struct {
	email sendgrid.EmailService
}

func NewNotificationService(email sendgrid.EmailService) NotificationService {
	return &notificationService{email: email}
}

// SendOrderConfirmation implements NotificationService.
func (s *notificationService) SendOrderConfirmation(ctx context.Context, email string, result *models.CheckoutResult, lines []models.CartLine) error {

	var body strings.Builder

	body.WriteString("Thank you for your order!\n\n")

	for i, line := range lines {
		variant := line.Variant()
		fmt.Fprintf(&body, "%d. %s (%s) x%d - Rs. %s\n", i+1, line.Product.Name, variant.Size, line.Quantity, line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))).StringFixed(2))
	}

	fmt.Fprintf(&body, "\nTotal: Rs. %s\n", result.Total.StringFixed(2))
	fmt.Fprintf(&body, "Order reference(s): %s\n", strings.Join(result.OrderIDs, ", "))

	req := &models.EmailNotificationRequest{
		To:      email,
		Subject: fmt.Sprintf("Order confirmed - %d item(s)", len(lines)),
		Content: body.String(),
	}

	return s.email.Send(ctx, req)
}
