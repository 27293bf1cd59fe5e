package catalog

import (
	"strings"
	"time"

	"github.com/shoppy/backend/internal/domain/shared"
	"github.com/shoppy/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog, identified by its SKU.
// It is the aggregate root for catalog operations.
type Product struct {
	shared.BaseAggregateRoot
	SKU           string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name          string          `gorm:"type:varchar(200);not null"`
	Description   string          `gorm:"type:text"`
	Category      Category        `gorm:"type:varchar(50);not null;index"`
	Price         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"` // Selling price
	Cost          decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"` // Unit cost
	StockQuantity int             `gorm:"not null;default:0"`
	ImageURL      string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(sku, name, description string, category Category, price, cost valueobject.Money, stockQuantity int, imageURL string) (*Product, error) {
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category is not part of the catalog set")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if cost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Cost cannot be negative")
	}
	if stockQuantity < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SKU:               strings.ToUpper(sku),
		Name:              name,
		Description:       description,
		Category:          category,
		Price:             price.Amount(),
		Cost:              cost.Amount(),
		StockQuantity:     stockQuantity,
		ImageURL:          imageURL,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetPrices sets both selling price and unit cost
func (p *Product) SetPrices(price, cost valueobject.Money) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if cost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Cost cannot be negative")
	}

	p.Price = price.Amount()
	p.Cost = cost.Amount()
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// AdjustStock applies a signed stock delta.
// Fails with ErrInsufficientStock if the resulting quantity would be negative.
// Persistence must apply the same check atomically; this method covers the
// in-memory aggregate.
func (p *Product) AdjustStock(delta int) error {
	result := p.StockQuantity + delta
	if result < 0 {
		return shared.ErrInsufficientStock
	}

	old := p.StockQuantity
	p.StockQuantity = result
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductStockAdjustedEvent(p, old, result, delta))

	return nil
}

// CanFulfill returns true if the stock quantity can cover the requested quantity
func (p *Product) CanFulfill(quantity int) bool {
	return p.StockQuantity >= quantity
}

// InStock returns true if there is any stock available
func (p *Product) InStock() bool {
	return p.StockQuantity > 0
}

// GetPriceMoney returns the selling price as Money value object
func (p *Product) GetPriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.Price)
}

// GetCostMoney returns the unit cost as Money value object
func (p *Product) GetCostMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.Cost)
}

// GetProfitMargin returns the profit margin percentage
// Returns 0 if cost is zero
func (p *Product) GetProfitMargin() decimal.Decimal {
	if p.Cost.IsZero() {
		return decimal.Zero
	}
	profit := p.Price.Sub(p.Cost)
	return profit.Div(p.Cost).Mul(decimal.NewFromInt(100))
}

// validateSKU validates the product SKU
func validateSKU(sku string) error {
	if sku == "" {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if len(sku) > 50 {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 50 characters")
	}
	// SKU should be alphanumeric with underscores and hyphens
	for _, r := range sku {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_SKU", "SKU can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
