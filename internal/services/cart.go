package service

import (
	"context"
	"fmt"

	"github.com/wholesalekart/storefront-api/internal/cart"
	appErrors "github.com/wholesalekart/storefront-api/internal/errors"
	"github.com/wholesalekart/storefront-api/internal/models"
)

type CartService interface {
	GetCart(ctx context.Context, userID string) *models.CartView
	AddItem(ctx context.Context, userID string, req *models.AddItemRequest) (*models.CartView, error)
	IncrementItem(ctx context.Context, userID string, ref *models.CartLineRef) *models.CartView
	DecrementItem(ctx context.Context, userID string, ref *models.CartLineRef) *models.CartView
	RemoveItem(ctx context.Context, userID string, ref *models.CartLineRef) *models.CartView
	ClearCart(ctx context.Context, userID string)
}

// cartService owns the injected store and is the only component allowed to
// mutate it. Product data is resolved through the catalog so a line always
// carries the full tier table it will be repriced against.
type cartService struct {
	store    *cart.Store
	products ProductService
}

func NewCartService(store *cart.Store, products ProductService) CartService {
	return &cartService{store: store, products: products}
}

func (s *cartService) GetCart(ctx context.Context, userID string) *models.CartView {
	return s.view(userID)
}

func (s *cartService) AddItem(ctx context.Context, userID string, req *models.AddItemRequest) (*models.CartView, error) {

	product, err := s.products.GetProductByName(ctx, req.ProductName)
	if err != nil {
		return nil, err
	}

	if req.VariantIndex < 0 || req.VariantIndex >= len(product.Variants) {
		return nil, appErrors.BadRequestError(fmt.Sprintf("Product %q has no variant %d", product.Name, req.VariantIndex))
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	if err := s.store.Add(userID, *product, req.VariantIndex, quantity); err != nil {
		return nil, appErrors.PricingGapError("No price tier covers the requested quantity").WithError(err)
	}

	return s.view(userID), nil
}

func (s *cartService) IncrementItem(ctx context.Context, userID string, ref *models.CartLineRef) *models.CartView {
	s.store.Increment(userID, ref.ProductName, ref.VariantIndex)

	return s.view(userID)
}

func (s *cartService) DecrementItem(ctx context.Context, userID string, ref *models.CartLineRef) *models.CartView {
	s.store.Decrement(userID, ref.ProductName, ref.VariantIndex)

	return s.view(userID)
}

func (s *cartService) RemoveItem(ctx context.Context, userID string, ref *models.CartLineRef) *models.CartView {
	s.store.Remove(userID, ref.ProductName, ref.VariantIndex)

	return s.view(userID)
}

func (s *cartService) ClearCart(ctx context.Context, userID string) {
	s.store.Clear(userID)
}

func (s *cartService) view(userID string) *models.CartView {
	return &models.CartView{
		Lines: s.store.Lines(userID),
		Total: s.store.Total(userID),
	}
}
