package order

import (
	"fmt"
	"testing"

	"github.com/shoppy/backend/internal/domain/shared"
	"github.com/shoppy/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *Order {
	t.Helper()
	o, err := NewOrder("ORD-2026-00001", PaymentMethodCreditCard)
	require.NoError(t, err)
	return o
}

// orderInStatus walks a fresh order forward along valid transitions until
// it reaches the requested status.
func orderInStatus(t *testing.T, status Status) *Order {
	t.Helper()
	o := newTestOrder(t)

	paths := map[Status][]Status{
		StatusPending:    {},
		StatusProcessing: {StatusProcessing},
		StatusShipped:    {StatusProcessing, StatusShipped},
		StatusDelivered:  {StatusProcessing, StatusShipped, StatusDelivered},
		StatusCancelled:  {StatusCancelled},
		StatusRefunded:   {StatusProcessing, StatusShipped, StatusRefunded},
	}

	for _, step := range paths[status] {
		require.NoError(t, o.TransitionTo(step))
	}
	require.Equal(t, status, o.Status)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order in pending status", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, "ORD-2026-00001", o.OrderNumber)
		assert.Equal(t, StatusPending, o.Status)
		assert.Equal(t, PaymentMethodCreditCard, o.PaymentMethod)
		assert.Empty(t, o.Items)
		assert.True(t, o.Subtotal.IsZero())
		assert.True(t, o.Total.IsZero())
		assert.Equal(t, 1, o.GetVersion())
	})

	t.Run("publishes OrderCreated event", func(t *testing.T) {
		o := newTestOrder(t)

		events := o.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeOrderCreated, events[0].EventType())
	})

	t.Run("fails with empty order number", func(t *testing.T) {
		_, err := NewOrder("", PaymentMethodCreditCard)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Order number cannot be empty")
	})

	t.Run("fails with unknown payment method", func(t *testing.T) {
		_, err := NewOrder("ORD-2026-00001", PaymentMethod("iou"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "payment method")
	})
}

func TestOrderAddItem(t *testing.T) {
	t.Run("adds item with price snapshot", func(t *testing.T) {
		o := newTestOrder(t)

		item, err := o.AddItem("LAPTOP-001", "UltraBook Pro 15", valueobject.NewMoneyUSDFromFloat(149.99), 2)

		require.NoError(t, err)
		assert.Equal(t, "LAPTOP-001", item.SKU)
		assert.Equal(t, 2, item.Quantity)
		assert.Equal(t, "299.98", item.Amount.StringFixed(2))
		assert.Equal(t, 1, o.ItemCount())
		assert.Equal(t, 2, o.TotalQuantity())
	})

	t.Run("rejects duplicate SKU", func(t *testing.T) {
		o := newTestOrder(t)
		_, err := o.AddItem("LAPTOP-001", "UltraBook Pro 15", valueobject.NewMoneyUSDFromFloat(149.99), 1)
		require.NoError(t, err)

		_, err = o.AddItem("LAPTOP-001", "UltraBook Pro 15", valueobject.NewMoneyUSDFromFloat(149.99), 1)

		require.Error(t, err)
		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DUPLICATE_SKU", domainErr.Code)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.AddItem("LAPTOP-001", "UltraBook Pro 15", valueobject.NewMoneyUSDFromFloat(149.99), 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Quantity must be positive")
	})

	t.Run("rejects items once order left pending", func(t *testing.T) {
		o := orderInStatus(t, StatusProcessing)

		_, err := o.AddItem("LAPTOP-001", "UltraBook Pro 15", valueobject.NewMoneyUSDFromFloat(149.99), 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-pending")
	})
}

func TestOrderSetTotals(t *testing.T) {
	t.Run("records totals while pending", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.SetTotals(
			valueobject.NewMoneyUSDFromFloat(299.98),
			valueobject.NewMoneyUSDFromFloat(24.00),
			valueobject.ZeroUSD(),
			valueobject.NewMoneyUSDFromFloat(323.98),
		)

		require.NoError(t, err)
		assert.Equal(t, "299.98", o.Subtotal.StringFixed(2))
		assert.Equal(t, "24.00", o.Tax.StringFixed(2))
		assert.Equal(t, "0.00", o.Shipping.StringFixed(2))
		assert.Equal(t, "323.98", o.Total.StringFixed(2))
	})

	t.Run("totals are immutable after pending", func(t *testing.T) {
		o := orderInStatus(t, StatusProcessing)

		err := o.SetTotals(
			valueobject.NewMoneyUSDFromFloat(1),
			valueobject.ZeroUSD(),
			valueobject.ZeroUSD(),
			valueobject.NewMoneyUSDFromFloat(1),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "immutable")
	})
}

// TestStatusTransitionTable exercises every ordered pair of statuses
// against the lifecycle rules.
func TestStatusTransitionTable(t *testing.T) {
	allStatuses := []Status{
		StatusPending, StatusProcessing, StatusShipped,
		StatusDelivered, StatusCancelled, StatusRefunded,
	}

	allowed := map[Status]map[Status]bool{
		StatusPending:    {StatusProcessing: true, StatusCancelled: true},
		StatusProcessing: {StatusShipped: true, StatusCancelled: true},
		StatusShipped:    {StatusDelivered: true, StatusCancelled: true, StatusRefunded: true},
		StatusDelivered:  {StatusRefunded: true},
		StatusCancelled:  {},
		StatusRefunded:   {},
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			name := fmt.Sprintf("%s_to_%s", from, to)
			t.Run(name, func(t *testing.T) {
				assert.Equal(t, allowed[from][to], from.CanTransitionTo(to))
			})
		}
	}
}

func TestOrderTransitionTo(t *testing.T) {
	t.Run("full forward lifecycle", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.TransitionTo(StatusProcessing))
		assert.NotNil(t, o.ProcessedAt)

		require.NoError(t, o.TransitionTo(StatusShipped))
		assert.NotNil(t, o.ShippedAt)

		require.NoError(t, o.TransitionTo(StatusDelivered))
		assert.NotNil(t, o.DeliveredAt)
		assert.True(t, o.IsDelivered())
	})

	t.Run("rejects invalid transition with sentinel", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.TransitionTo(StatusShipped)

		assert.ErrorIs(t, err, shared.ErrInvalidTransition)
		assert.Equal(t, StatusPending, o.Status)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.TransitionTo(Status("archived"))

		require.Error(t, err)
		assert.NotErrorIs(t, err, shared.ErrInvalidTransition)
	})

	t.Run("terminal states accept no exits", func(t *testing.T) {
		for _, terminal := range []Status{StatusCancelled, StatusRefunded} {
			o := orderInStatus(t, terminal)
			for _, target := range []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled, StatusRefunded} {
				assert.ErrorIs(t, o.TransitionTo(target), shared.ErrInvalidTransition)
			}
		}
	})

	t.Run("delivered only allows refund", func(t *testing.T) {
		o := orderInStatus(t, StatusDelivered)

		assert.ErrorIs(t, o.TransitionTo(StatusCancelled), shared.ErrInvalidTransition)
		assert.NoError(t, o.TransitionTo(StatusRefunded))
		assert.True(t, o.IsRefunded())
		assert.NotNil(t, o.RefundedAt)
	})

	t.Run("publishes StatusChanged event with stock release flag", func(t *testing.T) {
		o := orderInStatus(t, StatusShipped)
		o.ClearDomainEvents()

		require.NoError(t, o.TransitionTo(StatusRefunded))

		events := o.GetDomainEvents()
		require.Len(t, events, 1)

		event, ok := events[0].(*StatusChangedEvent)
		require.True(t, ok)
		assert.Equal(t, StatusShipped, event.FromStatus)
		assert.Equal(t, StatusRefunded, event.ToStatus)
		assert.True(t, event.ReleasedStock)
	})
}

func TestStatusReleasesStock(t *testing.T) {
	assert.True(t, StatusCancelled.ReleasesStock())
	assert.True(t, StatusRefunded.ReleasesStock())
	assert.False(t, StatusPending.ReleasesStock())
	assert.False(t, StatusProcessing.ReleasesStock())
	assert.False(t, StatusShipped.ReleasesStock())
	assert.False(t, StatusDelivered.ReleasesStock())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusRefunded.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusDelivered.IsTerminal())
}

func TestPaymentMethod(t *testing.T) {
	valid := []PaymentMethod{
		PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPayPal,
		PaymentMethodCashOnDelivery, PaymentMethodBankTransfer,
	}
	for _, pm := range valid {
		assert.True(t, pm.IsValid(), pm.String())
	}
	assert.False(t, PaymentMethod("iou").IsValid())
}
