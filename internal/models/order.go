package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipping  OrderStatus = "shipping"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderRecord is one persisted order per cart line. A checkout of N distinct
// lines emits N independent records; CheckoutID plus LineIndex tie the
// records of one attempt together and make retries idempotent.
type OrderRecord struct {
	OrderID         string          `json:"order_id"`
	UserID          string          `json:"user_id"`
	CheckoutID      string          `json:"checkout_id"`
	LineIndex       int             `json:"line_index"`
	Item            string          `json:"item"`
	Size            string          `json:"size"`
	VariantIndex    int             `json:"variant_index"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Quantity        int             `json:"quantity"`
	Total           decimal.Decimal `json:"total"`
	GSTRate         int             `json:"gst_rate"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	DeliveryAddress Address         `json:"delivery_address"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

type PlaceOrderRequest struct {
	AddressID string `json:"address_id" validate:"required,uuid4"`
	// Optional idempotency key. Resubmitting the same checkout after a
	// partial failure skips already-persisted lines.
	CheckoutID string `json:"checkout_id,omitempty" validate:"omitempty,uuid4"`
}

type CheckoutResult struct {
	CheckoutID string          `json:"checkout_id"`
	OrderIDs   []string        `json:"order_ids"`
	Total      decimal.Decimal `json:"total"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=pending confirmed shipping delivered cancelled"`
}

type PaginatedResponse struct {
	Data     any `json:"data"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}
