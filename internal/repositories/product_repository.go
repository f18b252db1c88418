package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wholesalekart/storefront-api/internal/models"
	"github.com/wholesalekart/storefront-api/internal/utils"
)

type ProductRepository interface {
	GetProductByName(ctx context.Context, name string) (*models.Product, error)
	ListBySubcategory(ctx context.Context, subcategory string, page, size int) ([]*models.Product, int, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

// The variants column is a JSONB document written by the catalog tooling;
// field presence is not guaranteed, so every read goes through
// models.ParseVariants before the product reaches pricing code.
func (r *productRepository) GetProductByName(ctx context.Context, name string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT name, subcategory_name, image, best_selling_price, variants, created_at, updated_at
		FROM products
		WHERE name = $1
	`

	product := &models.Product{}

	var variantsJSON []byte

	err := r.DB.QueryRowContext(dbCtx, query, name).Scan(&product.Name, &product.SubcategoryName, &product.Image, &product.BestSellingPrice, &variantsJSON, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	product.Variants, err = models.ParseVariants(variantsJSON)
	if err != nil {
		return nil, fmt.Errorf("product %q: %w", name, err)
	}

	return product, nil
}

func (r *productRepository) ListBySubcategory(ctx context.Context, subcategory string, page, size int) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM products WHERE subcategory_name = $1`

	err := r.DB.QueryRowContext(dbCtx, countQuery, subcategory).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	// Offset
	offset := (page - 1) * size

	query := `
		SELECT name, subcategory_name, image, best_selling_price, variants, created_at, updated_at
		FROM products
		WHERE subcategory_name = $1
		ORDER BY name
		LIMIT $2 OFFSET $3
	`

	rows, err := r.DB.QueryContext(dbCtx, query, subcategory, size, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product := &models.Product{}

		var variantsJSON []byte

		err := rows.Scan(&product.Name, &product.SubcategoryName, &product.Image, &product.BestSellingPrice, &variantsJSON, &product.CreatedAt, &product.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}

		product.Variants, err = models.ParseVariants(variantsJSON)
		if err != nil {
			return nil, 0, fmt.Errorf("product %q: %w", product.Name, err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}
