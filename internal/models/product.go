package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PriceTier says: if the quantity falls inside [Min, Max], the unit price is
// Price. Tiers of a variant are kept in their stored order; the first match
// wins.
type PriceTier struct {
	Min   int             `json:"min"`
	Max   int             `json:"max"`
	Price decimal.Decimal `json:"price"`
}

// Contains reports whether the quantity falls inside the tier's range.
func (t PriceTier) Contains(quantity int) bool {
	return quantity >= t.Min && quantity <= t.Max
}

type Variant struct {
	Size       string      `json:"size"`
	PriceTiers []PriceTier `json:"price_tiers"`
}

type Product struct {
	Name             string          `json:"name"`
	SubcategoryName  string          `json:"subcategory_name"`
	Image            string          `json:"image"`
	BestSellingPrice decimal.Decimal `json:"best_selling_price"`
	Variants         []Variant       `json:"variants"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Loose shapes of the stored variant documents. Field presence is not
// guaranteed in the backing store, so everything is a pointer until
// ParseVariants has checked it.
type variantDoc struct {
	Size       *string   `json:"size"`
	PriceTiers []tierDoc `json:"price_tiers"`
}

type tierDoc struct {
	Min   *int             `json:"min"`
	Max   *int             `json:"max"`
	Price *decimal.Decimal `json:"price"`
}

// ParseVariants turns the raw variants document of a product row into typed
// Variants, failing fast on any malformed or missing field instead of letting
// a partial value reach the pricing code.
func ParseVariants(data []byte) ([]Variant, error) {

	var docs []variantDoc

	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("invalid variants document: %w", err)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("product has no variants")
	}

	variants := make([]Variant, 0, len(docs))

	for i, doc := range docs {

		if doc.Size == nil || *doc.Size == "" {
			return nil, fmt.Errorf("variant %d: missing size", i)
		}

		variant := Variant{Size: *doc.Size, PriceTiers: make([]PriceTier, 0, len(doc.PriceTiers))}

		for j, tier := range doc.PriceTiers {

			switch {
			case tier.Min == nil || tier.Max == nil || tier.Price == nil:
				return nil, fmt.Errorf("variant %q: tier %d: missing field", variant.Size, j)
			case *tier.Min < 0:
				return nil, fmt.Errorf("variant %q: tier %d: negative min", variant.Size, j)
			case *tier.Max < *tier.Min:
				return nil, fmt.Errorf("variant %q: tier %d: max below min", variant.Size, j)
			case tier.Price.IsNegative():
				return nil, fmt.Errorf("variant %q: tier %d: negative price", variant.Size, j)
			}

			variant.PriceTiers = append(variant.PriceTiers, PriceTier{Min: *tier.Min, Max: *tier.Max, Price: *tier.Price})
		}

		variants = append(variants, variant)
	}

	return variants, nil
}
