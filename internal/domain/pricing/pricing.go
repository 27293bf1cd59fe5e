// Package pricing computes order totals from line-item price snapshots and
// the business configuration (tax rate, shipping rate, free-shipping
// threshold). All amounts are settled at currency precision with half-up
// rounding.
package pricing

import (
	"github.com/shoppy/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Rules holds the pricing constants applied to every order
type Rules struct {
	TaxRate               decimal.Decimal // e.g. 0.08 for 8%
	ShippingRate          decimal.Decimal // flat shipping charge
	FreeShippingThreshold decimal.Decimal // subtotal at which shipping is waived
}

// LineItem is a priced product-quantity pairing. UnitPrice is the price
// captured at order-creation time, not the live catalog price.
type LineItem struct {
	SKU       string
	UnitPrice decimal.Decimal
	Quantity  int
}

// OrderTotals is the result of pricing an order
type OrderTotals struct {
	Subtotal valueobject.Money
	Tax      valueobject.Money
	Shipping valueobject.Money
	Total    valueobject.Money
}

// Engine computes order totals from configured rules.
// It is stateless and safe for concurrent use.
type Engine struct {
	rules Rules
}

// NewEngine creates a pricing engine with the given rules
func NewEngine(rules Rules) *Engine {
	return &Engine{rules: rules}
}

// ComputeOrderTotals prices the given line items.
// Subtotal is the sum of unit price times quantity. Tax is subtotal times
// the tax rate, rounded half-up to currency precision. Shipping is zero
// when the subtotal reaches the free-shipping threshold, otherwise the
// flat shipping rate. An empty item list yields all-zero totals.
func (e *Engine) ComputeOrderTotals(items []LineItem) OrderTotals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	subtotal = subtotal.Round(valueobject.CurrencyPrecision)

	tax := subtotal.Mul(e.rules.TaxRate).Round(valueobject.CurrencyPrecision)

	shipping := decimal.Zero
	if len(items) > 0 && subtotal.LessThan(e.rules.FreeShippingThreshold) {
		shipping = e.rules.ShippingRate.Round(valueobject.CurrencyPrecision)
	}

	total := subtotal.Add(tax).Add(shipping)

	return OrderTotals{
		Subtotal: valueobject.NewMoneyUSD(subtotal),
		Tax:      valueobject.NewMoneyUSD(tax),
		Shipping: valueobject.NewMoneyUSD(shipping),
		Total:    valueobject.NewMoneyUSD(total),
	}
}
