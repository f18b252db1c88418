package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CartLine identity is the (Product.Name, VariantIndex) pair; two additions
// of the same pair merge into one line. UnitPrice is a cached value,
// recomputed by the store on every quantity change.
type CartLine struct {
	Product      Product         `json:"product"`
	VariantIndex int             `json:"variant_index"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

// Variant resolves the line's variant. An out-of-range index is a programmer
// error, not a runtime condition, so it fails loudly.
func (l CartLine) Variant() Variant {
	if l.VariantIndex < 0 || l.VariantIndex >= len(l.Product.Variants) {
		panic(fmt.Sprintf("cart line %q references variant %d of %d", l.Product.Name, l.VariantIndex, len(l.Product.Variants)))
	}

	return l.Product.Variants[l.VariantIndex]
}

// CartView is the read model returned to the API layer. Total is always
// recomputed from the price tiers, never summed from cached unit prices.
type CartView struct {
	Lines []CartLine      `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

type AddItemRequest struct {
	ProductName  string `json:"product_name" validate:"required"`
	VariantIndex int    `json:"variant_index" validate:"gte=0"`
	Quantity     int    `json:"quantity" validate:"omitempty,min=1"`
}

// CartLineRef identifies an existing line for increment/decrement/remove.
type CartLineRef struct {
	ProductName  string `json:"product_name" validate:"required"`
	VariantIndex int    `json:"variant_index" validate:"gte=0"`
}
