package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shoppy/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// UpsertProductRequest represents a request to create a product if its SKU
// is not already taken
type UpsertProductRequest struct {
	SKU           string          `json:"sku" validate:"required,min=1,max=50"`
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description" validate:"max=2000"`
	Category      string          `json:"category" validate:"required"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	StockQuantity int             `json:"stock_quantity" validate:"min=0"`
	ImageURL      string          `json:"image_url" validate:"omitempty,max=500"`
}

// UpdateProductRequest represents a request to update a product's details
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price"`
	Cost        *decimal.Decimal `json:"cost"`
}

// AdjustStockRequest represents a signed stock adjustment for a SKU
type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// ProductListFilter represents filter options for product listing
type ProductListFilter struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	InStock  *bool  `form:"in_stock"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	StockQuantity int             `json:"stock_quantity"`
	InStock       bool            `json:"in_stock"`
	ImageURL      string          `json:"image_url"`
	ProfitMargin  decimal.Decimal `json:"profit_margin"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int             `json:"version"`
}

// UpsertProductResult reports the outcome of an upsert: the stored product
// and whether this call created it
type UpsertProductResult struct {
	Product ProductResponse `json:"product"`
	Created bool            `json:"created"`
}

// CategorySummary reports per-category product counts
type CategorySummary struct {
	Counts map[string]int64 `json:"counts"`
	Total  int64            `json:"total"`
}

// toProductResponse converts a domain product to a response DTO
func toProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category.String(),
		Price:         p.Price,
		Cost:          p.Cost,
		StockQuantity: p.StockQuantity,
		InStock:       p.InStock(),
		ImageURL:      p.ImageURL,
		ProfitMargin:  p.GetProfitMargin(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Version:       p.GetVersion(),
	}
}
