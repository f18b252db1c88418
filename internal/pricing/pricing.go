// Package pricing resolves quantity-tiered unit prices. A variant carries an
// ordered tier table ("buy more, pay less per unit"); the first tier whose
// range contains the quantity decides the price.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/wholesalekart/storefront-api/internal/models"
)

// UnitPrice returns the per-unit price for the quantity. ok is false when no
// tier covers the quantity (a gap in the table, a quantity above every tier,
// or an empty table); the returned price is zero in that case, which is what
// the legacy storefront silently charged. Callers must check ok instead of
// selling at zero.
func UnitPrice(variant models.Variant, quantity int) (decimal.Decimal, bool) {

	for _, tier := range variant.PriceTiers {
		if tier.Contains(quantity) {
			return tier.Price, true
		}
	}

	return decimal.Zero, false
}

// LineTotal is UnitPrice multiplied by the quantity, zero for uncovered
// quantities.
func LineTotal(variant models.Variant, quantity int) decimal.Decimal {

	price, _ := UnitPrice(variant, quantity)

	return price.Mul(decimal.NewFromInt(int64(quantity)))
}
