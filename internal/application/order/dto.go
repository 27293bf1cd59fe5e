package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shoppy/backend/internal/domain/order"
	"github.com/shopspring/decimal"
)

// OrderItemRequest is one product-quantity pairing in a create request
type OrderItemRequest struct {
	SKU      string `json:"sku" validate:"required,min=1,max=50"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest represents a request to place a new order
type CreateOrderRequest struct {
	PaymentMethod string             `json:"payment_method" validate:"required"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// TransitionRequest asks for a status change on an existing order
type TransitionRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderListFilter represents filter options for order listing
type OrderListFilter struct {
	Status   string `form:"status"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// OrderItemResponse represents a line item in API responses
type OrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	SKU         string          `json:"sku"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	OrderNumber   string              `json:"order_number"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"payment_method"`
	Items         []OrderItemResponse `json:"items"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Tax           decimal.Decimal     `json:"tax"`
	Shipping      decimal.Decimal     `json:"shipping"`
	Total         decimal.Decimal     `json:"total"`
	ProcessedAt   *time.Time          `json:"processed_at,omitempty"`
	ShippedAt     *time.Time          `json:"shipped_at,omitempty"`
	DeliveredAt   *time.Time          `json:"delivered_at,omitempty"`
	CancelledAt   *time.Time          `json:"cancelled_at,omitempty"`
	RefundedAt    *time.Time          `json:"refunded_at,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	Version       int                 `json:"version"`
}

// StatusCountResponse reports how many orders sit in each status
type StatusCountResponse struct {
	Counts map[string]int64 `json:"counts"`
	Total  int64            `json:"total"`
}

// toOrderResponse converts a domain order to a response DTO
func toOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ID:          item.ID,
			SKU:         item.SKU,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Amount:      item.Amount,
		}
	}

	return OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		Status:        o.Status.String(),
		PaymentMethod: o.PaymentMethod.String(),
		Items:         items,
		Subtotal:      o.Subtotal,
		Tax:           o.Tax,
		Shipping:      o.Shipping,
		Total:         o.Total,
		ProcessedAt:   o.ProcessedAt,
		ShippedAt:     o.ShippedAt,
		DeliveredAt:   o.DeliveredAt,
		CancelledAt:   o.CancelledAt,
		RefundedAt:    o.RefundedAt,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		Version:       o.GetVersion(),
	}
}
