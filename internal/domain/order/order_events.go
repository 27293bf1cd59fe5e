package order

import (
	"github.com/google/uuid"
	"github.com/shoppy/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeOrder = "Order"

// Event type constants
const (
	EventTypeOrderCreated       = "OrderCreated"
	EventTypeOrderStatusChanged = "OrderStatusChanged"
)

// CreatedEvent is published when a new order is placed
type CreatedEvent struct {
	shared.BaseDomainEvent
	OrderID       uuid.UUID     `json:"order_id"`
	OrderNumber   string        `json:"order_number"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// NewOrderCreatedEvent creates a new CreatedEvent
func NewOrderCreatedEvent(o *Order) *CreatedEvent {
	return &CreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCreated, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		OrderNumber:     o.OrderNumber,
		PaymentMethod:   o.PaymentMethod,
	}
}

// StatusChangedEvent is published on every order status transition
type StatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderID       uuid.UUID       `json:"order_id"`
	OrderNumber   string          `json:"order_number"`
	FromStatus    Status          `json:"from_status"`
	ToStatus      Status          `json:"to_status"`
	Total         decimal.Decimal `json:"total"`
	ReleasedStock bool            `json:"released_stock"`
}

// NewOrderStatusChangedEvent creates a new StatusChangedEvent
func NewOrderStatusChangedEvent(o *Order, from, to Status) *StatusChangedEvent {
	return &StatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderStatusChanged, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		OrderNumber:     o.OrderNumber,
		FromStatus:      from,
		ToStatus:        to,
		Total:           o.Total,
		ReleasedStock:   to.ReleasesStock(),
	}
}
