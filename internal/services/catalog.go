package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/wholesalekart/storefront-api/internal/cache"
	appErrors "github.com/wholesalekart/storefront-api/internal/errors"
	"github.com/wholesalekart/storefront-api/internal/models"
	repository "github.com/wholesalekart/storefront-api/internal/repositories"
)

type ProductService interface {
	GetProductByName(ctx context.Context, name string) (*models.Product, error)
	ListBySubcategory(ctx context.Context, subcategory string, page, size int) ([]*models.Product, int, error)
}

type productService struct {
	repo  repository.ProductRepository
	cache cache.Cache
}

func NewProductService(repo repository.ProductRepository, productCache cache.Cache) ProductService {
	return &productService{repo: repo, cache: productCache}
}

func (s *productService) GetProductByName(ctx context.Context, name string) (*models.Product, error) {

	cacheKey := cache.Key(cache.ProductKeyPrefix, name)

	var cached models.Product

	if s.cache != nil {
		found, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			slog.Warn("Cache read failed", slog.String("key", cacheKey), slog.Any("error", err))
		} else if found {
			return &cached, nil
		}
	}

	product, err := s.repo.GetProductByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		if strings.Contains(err.Error(), "variant") {
			return nil, appErrors.MalformedDocError("Product document is malformed").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, product, 0); err != nil {
			slog.Warn("Cache write failed", slog.String("key", cacheKey), slog.Any("error", err))
		}
	}

	return product, nil
}

func (s *productService) ListBySubcategory(ctx context.Context, subcategory string, page, size int) ([]*models.Product, int, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 50 {
		size = 20
	}

	products, total, err := s.repo.ListBySubcategory(ctx, subcategory, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to list products").WithError(err)
	}

	return products, total, nil
}
