// Package cart owns the in-memory cart state. The store is the only place
// cart lines are mutated; services hold an injected *Store instance rather
// than reaching for ambient state.
package cart

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/wholesalekart/storefront-api/internal/models"
	"github.com/wholesalekart/storefront-api/internal/pricing"
)

// ErrNoPriceTier is returned when an addition would land on a quantity no
// price tier covers. The cart is left unchanged.
var ErrNoPriceTier = errors.New("no price tier covers the requested quantity")

// Store keeps one insertion-ordered line slice per user. Line identity is the
// (product name, variant index) pair; every line holds quantity >= 1.
type Store struct {
	mu    sync.Mutex
	carts map[string][]models.CartLine
}

func NewStore() *Store {
	return &Store{carts: make(map[string][]models.CartLine)}
}

// Add appends a new line, or merges into an existing one with the same
// (product name, variant index) identity. The unit price is always resolved
// against the cumulative quantity of the line, not the increment.
func (s *Store) Add(userID string, product models.Product, variantIndex, quantity int) error {

	if quantity < 1 {
		quantity = 1
	}

	line := models.CartLine{Product: product, VariantIndex: variantIndex, Quantity: quantity}
	variant := line.Variant()

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]

	for i := range lines {
		if lines[i].Product.Name == product.Name && lines[i].VariantIndex == variantIndex {

			newQuantity := lines[i].Quantity + quantity

			price, ok := pricing.UnitPrice(variant, newQuantity)
			if !ok {
				return ErrNoPriceTier
			}

			lines[i].Quantity = newQuantity
			lines[i].UnitPrice = price

			return nil
		}
	}

	price, ok := pricing.UnitPrice(variant, quantity)
	if !ok {
		return ErrNoPriceTier
	}

	line.UnitPrice = price
	s.carts[userID] = append(lines, line)

	return nil
}

// Increment raises the matching line's quantity by one and reprices it.
// Missing line, or a new quantity outside every tier, is a no-op.
func (s *Store) Increment(userID, productName string, variantIndex int) {
	s.adjust(userID, productName, variantIndex, +1)
}

// Decrement lowers the matching line's quantity by one, floored at 1. The
// line never leaves the cart through this path; Remove does that.
func (s *Store) Decrement(userID, productName string, variantIndex int) {
	s.adjust(userID, productName, variantIndex, -1)
}

func (s *Store) adjust(userID, productName string, variantIndex, delta int) {

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]

	for i := range lines {
		if lines[i].Product.Name != productName || lines[i].VariantIndex != variantIndex {
			continue
		}

		newQuantity := lines[i].Quantity + delta
		if newQuantity < 1 {
			newQuantity = 1
		}

		price, ok := pricing.UnitPrice(lines[i].Variant(), newQuantity)
		if !ok {
			return
		}

		lines[i].Quantity = newQuantity
		lines[i].UnitPrice = price

		return
	}
}

// Remove deletes the matching line outright, regardless of quantity.
func (s *Store) Remove(userID, productName string, variantIndex int) {

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]

	for i := range lines {
		if lines[i].Product.Name == productName && lines[i].VariantIndex == variantIndex {
			s.carts[userID] = append(lines[:i], lines[i+1:]...)

			return
		}
	}
}

func (s *Store) Clear(userID string) {

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
}

// Lines returns a snapshot copy in insertion order.
func (s *Store) Lines(userID string) []models.CartLine {

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]

	snapshot := make([]models.CartLine, len(lines))
	copy(snapshot, lines)

	return snapshot
}

// Total recomputes every line from the tier table instead of trusting the
// cached unit prices, so the sum cannot drift even if a caller bypassed the
// mutators.
func (s *Store) Total(userID string) decimal.Decimal {

	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero

	for _, line := range s.carts[userID] {
		total = total.Add(pricing.LineTotal(line.Variant(), line.Quantity))
	}

	return total
}
