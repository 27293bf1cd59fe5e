package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shoppy/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindBySKU finds a product by its SKU
	FindBySKU(ctx context.Context, sku string) (*Product, error)

	// FindBySKUs finds multiple products by their SKUs
	FindBySKUs(ctx context.Context, skus []string) ([]Product, error)

	// FindAll finds all products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// FindByCategory finds all products in a category, in insertion order
	FindByCategory(ctx context.Context, category Category) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// AdjustStock applies a signed stock delta as a single atomic
	// conditional update. Returns ErrInsufficientStock when the delta
	// would drive the quantity negative, ErrNotFound for unknown SKUs.
	AdjustStock(ctx context.Context, sku string, delta int) error

	// Delete deletes a product
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll deletes every product and returns the number removed
	DeleteAll(ctx context.Context) (int64, error)

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByCategory counts products per category
	CountByCategory(ctx context.Context) (map[Category]int64, error)

	// ExistsBySKU checks if a product with the given SKU exists
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
}
