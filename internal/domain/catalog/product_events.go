package catalog

import (
	"github.com/google/uuid"
	"github.com/shoppy/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeProduct = "Product"

// Event type constants
const (
	EventTypeProductCreated       = "ProductCreated"
	EventTypeProductStockAdjusted = "ProductStockAdjusted"
)

// ProductCreatedEvent is published when a new product is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		SKU:             product.SKU,
		Name:            product.Name,
		Category:        product.Category,
	}
}

// ProductStockAdjustedEvent is published when a product's stock quantity changes
type ProductStockAdjustedEvent struct {
	shared.BaseDomainEvent
	ProductID   uuid.UUID `json:"product_id"`
	SKU         string    `json:"sku"`
	OldQuantity int       `json:"old_quantity"`
	NewQuantity int       `json:"new_quantity"`
	Delta       int       `json:"delta"`
}

// NewProductStockAdjustedEvent creates a new ProductStockAdjustedEvent
func NewProductStockAdjustedEvent(product *Product, oldQuantity, newQuantity, delta int) *ProductStockAdjustedEvent {
	return &ProductStockAdjustedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductStockAdjusted, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		SKU:             product.SKU,
		OldQuantity:     oldQuantity,
		NewQuantity:     newQuantity,
		Delta:           delta,
	}
}
