package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shoppy/backend/internal/domain/shared"
	"github.com/shoppy/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Status represents the status of an order
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

// IsValid checks if the status is a valid order Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsTerminal returns true if no further transition is permitted from s
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusRefunded:
		return true
	case StatusDelivered:
		// delivered still allows the refund exit
		return false
	}
	return false
}

// CanTransitionTo checks if the status can transition to the target status.
// Forward lifecycle: pending -> processing -> shipped -> delivered.
// cancelled exits from any non-terminal, pre-delivery state; refunded
// presupposes a shipment and is only reachable from shipped or delivered.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusProcessing || target == StatusCancelled
	case StatusProcessing:
		return target == StatusShipped || target == StatusCancelled
	case StatusShipped:
		return target == StatusDelivered || target == StatusCancelled || target == StatusRefunded
	case StatusDelivered:
		return target == StatusRefunded
	case StatusCancelled, StatusRefunded:
		return false
	}
	return false
}

// ReleasesStock returns true if entering this status returns reserved
// stock to the catalog
func (s Status) ReleasesStock() bool {
	return s == StatusCancelled || s == StatusRefunded
}

// Item represents a line item in an order.
// Name and unit price are snapshots taken at order-creation time; later
// catalog changes do not affect them.
type Item struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	SKU         string          `gorm:"type:varchar(50);not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Quantity    int             `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "order_items"
}

// NewItem creates a new order line item
func NewItem(orderID uuid.UUID, sku, productName string, unitPrice valueobject.Money, quantity int) (*Item, error) {
	if sku == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "Item SKU cannot be empty")
	}
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Item product name cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	now := time.Now()
	return &Item{
		ID:          uuid.New(),
		OrderID:     orderID,
		SKU:         sku,
		ProductName: productName,
		UnitPrice:   unitPrice.Amount(),
		Quantity:    quantity,
		Amount:      unitPrice.Amount().Mul(decimal.NewFromInt(int64(quantity))),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// GetUnitPriceMoney returns the unit price as Money value object
func (i *Item) GetUnitPriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(i.UnitPrice)
}

// GetAmountMoney returns the line amount as Money value object
func (i *Item) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(i.Amount)
}

// Order represents a customer order aggregate root.
// It manages the order's lifecycle from placement to delivery, with
// cancellation and refund as explicit exits.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber   string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Items         []Item          `gorm:"foreignKey:OrderID;references:ID"`
	Status        Status          `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(30);not null"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Tax           decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Shipping      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Total         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ProcessedAt   *time.Time
	ShippedAt     *time.Time
	DeliveredAt   *time.Time
	CancelledAt   *time.Time
	RefundedAt    *time.Time
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new order in pending status
func NewOrder(orderNumber string, paymentMethod PaymentMethod) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if !paymentMethod.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", fmt.Sprintf("Unknown payment method %q", paymentMethod))
	}

	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		Items:             make([]Item, 0),
		Status:            StatusPending,
		PaymentMethod:     paymentMethod,
		Subtotal:          decimal.Zero,
		Tax:               decimal.Zero,
		Shipping:          decimal.Zero,
		Total:             decimal.Zero,
	}

	o.AddDomainEvent(NewOrderCreatedEvent(o))

	return o, nil
}

// AddItem adds a line item with a price snapshot.
// Only allowed while the order is pending.
func (o *Order) AddItem(sku, productName string, unitPrice valueobject.Money, quantity int) (*Item, error) {
	if o.Status != StatusPending {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a non-pending order")
	}

	for _, item := range o.Items {
		if item.SKU == sku {
			return nil, shared.NewDomainError("DUPLICATE_SKU", "SKU already present in order")
		}
	}

	item, err := NewItem(o.ID, sku, productName, unitPrice, quantity)
	if err != nil {
		return nil, err
	}

	o.Items = append(o.Items, *item)
	o.UpdatedAt = time.Now()

	return item, nil
}

// SetTotals records the priced totals for the order.
// Only allowed while the order is pending; once the order moves on, the
// grand total is immutable.
func (o *Order) SetTotals(subtotal, tax, shipping, total valueobject.Money) error {
	if o.Status != StatusPending {
		return shared.NewDomainError("INVALID_STATE", "Totals are immutable once the order is no longer pending")
	}

	o.Subtotal = subtotal.Amount()
	o.Tax = tax.Amount()
	o.Shipping = shipping.Amount()
	o.Total = total.Amount()
	o.UpdatedAt = time.Now()

	return nil
}

// TransitionTo moves the order to the target status.
// Fails with ErrInvalidTransition if the target is not reachable from the
// current status. Stock effects of cancellation/refund are applied by the
// application service in the same transaction.
func (o *Order) TransitionTo(target Status) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", target))
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.ErrInvalidTransition
	}

	from := o.Status
	now := time.Now()
	o.Status = target
	o.UpdatedAt = now

	switch target {
	case StatusProcessing:
		o.ProcessedAt = &now
	case StatusShipped:
		o.ShippedAt = &now
	case StatusDelivered:
		o.DeliveredAt = &now
	case StatusCancelled:
		o.CancelledAt = &now
	case StatusRefunded:
		o.RefundedAt = &now
	}

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, from, target))

	return nil
}

// ItemCount returns the number of line items in the order
func (o *Order) ItemCount() int {
	return len(o.Items)
}

// TotalQuantity returns the sum of all item quantities
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// GetItemBySKU returns an item by product SKU
func (o *Order) GetItemBySKU(sku string) *Item {
	for idx := range o.Items {
		if o.Items[idx].SKU == sku {
			return &o.Items[idx]
		}
	}
	return nil
}

// GetSubtotalMoney returns the subtotal as Money
func (o *Order) GetSubtotalMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.Subtotal)
}

// GetTaxMoney returns the tax as Money
func (o *Order) GetTaxMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.Tax)
}

// GetShippingMoney returns the shipping charge as Money
func (o *Order) GetShippingMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.Shipping)
}

// GetTotalMoney returns the grand total as Money
func (o *Order) GetTotalMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.Total)
}

// IsPending returns true if the order is pending
func (o *Order) IsPending() bool {
	return o.Status == StatusPending
}

// IsCancelled returns true if the order is cancelled
func (o *Order) IsCancelled() bool {
	return o.Status == StatusCancelled
}

// IsRefunded returns true if the order is refunded
func (o *Order) IsRefunded() bool {
	return o.Status == StatusRefunded
}

// IsDelivered returns true if the order is delivered
func (o *Order) IsDelivered() bool {
	return o.Status == StatusDelivered
}
