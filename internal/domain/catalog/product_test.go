package catalog

import (
	"testing"

	"github.com/shoppy/backend/internal/domain/shared"
	"github.com/shoppy/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T) *Product {
	t.Helper()
	product, err := NewProduct(
		"LAPTOP-001", "UltraBook Pro 15", "Thin and light laptop",
		CategoryElectronics,
		valueobject.NewMoneyUSDFromFloat(1299.99),
		valueobject.NewMoneyUSDFromFloat(900.00),
		25, "https://img.example.com/laptop-001.jpg",
	)
	require.NoError(t, err)
	return product
}

func TestNewProduct(t *testing.T) {
	t.Run("creates product with valid inputs", func(t *testing.T) {
		product := newTestProduct(t)

		assert.Equal(t, "LAPTOP-001", product.SKU)
		assert.Equal(t, "UltraBook Pro 15", product.Name)
		assert.Equal(t, CategoryElectronics, product.Category)
		assert.Equal(t, 25, product.StockQuantity)
		assert.NotEmpty(t, product.ID)
		assert.Equal(t, 1, product.GetVersion())
	})

	t.Run("converts SKU to uppercase", func(t *testing.T) {
		product, err := NewProduct(
			"laptop-002", "Laptop", "",
			CategoryElectronics,
			valueobject.NewMoneyUSDFromFloat(999.99),
			valueobject.ZeroUSD(),
			1, "",
		)
		require.NoError(t, err)
		assert.Equal(t, "LAPTOP-002", product.SKU)
	})

	t.Run("publishes ProductCreated event", func(t *testing.T) {
		product := newTestProduct(t)

		events := product.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeProductCreated, events[0].EventType())

		event, ok := events[0].(*ProductCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, product.ID, event.ProductID)
		assert.Equal(t, product.SKU, event.SKU)
		assert.Equal(t, product.Category, event.Category)
	})

	t.Run("fails with empty SKU", func(t *testing.T) {
		_, err := NewProduct("", "Laptop", "", CategoryElectronics,
			valueobject.ZeroUSD(), valueobject.ZeroUSD(), 0, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SKU cannot be empty")
	})

	t.Run("fails with invalid SKU characters", func(t *testing.T) {
		_, err := NewProduct("SKU@001", "Laptop", "", CategoryElectronics,
			valueobject.ZeroUSD(), valueobject.ZeroUSD(), 0, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "can only contain letters")
	})

	t.Run("fails with unknown category", func(t *testing.T) {
		_, err := NewProduct("SKU-001", "Laptop", "", Category("gadgets"),
			valueobject.ZeroUSD(), valueobject.ZeroUSD(), 0, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Category")
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewProduct("SKU-001", "Laptop", "", CategoryElectronics,
			valueobject.NewMoneyUSDFromFloat(-1), valueobject.ZeroUSD(), 0, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Price cannot be negative")
	})

	t.Run("fails with negative stock", func(t *testing.T) {
		_, err := NewProduct("SKU-001", "Laptop", "", CategoryElectronics,
			valueobject.ZeroUSD(), valueobject.ZeroUSD(), -1, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Stock quantity")
	})
}

func TestProductAdjustStock(t *testing.T) {
	t.Run("applies positive delta", func(t *testing.T) {
		product := newTestProduct(t)

		err := product.AdjustStock(10)

		require.NoError(t, err)
		assert.Equal(t, 35, product.StockQuantity)
	})

	t.Run("applies negative delta", func(t *testing.T) {
		product := newTestProduct(t)

		err := product.AdjustStock(-25)

		require.NoError(t, err)
		assert.Equal(t, 0, product.StockQuantity)
	})

	t.Run("rejects delta that would go negative", func(t *testing.T) {
		product := newTestProduct(t)

		err := product.AdjustStock(-26)

		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.Equal(t, 25, product.StockQuantity)
	})

	t.Run("publishes ProductStockAdjusted event", func(t *testing.T) {
		product := newTestProduct(t)
		product.ClearDomainEvents()

		require.NoError(t, product.AdjustStock(-5))

		events := product.GetDomainEvents()
		require.Len(t, events, 1)

		event, ok := events[0].(*ProductStockAdjustedEvent)
		require.True(t, ok)
		assert.Equal(t, 25, event.OldQuantity)
		assert.Equal(t, 20, event.NewQuantity)
		assert.Equal(t, -5, event.Delta)
	})
}

func TestProductCanFulfill(t *testing.T) {
	product := newTestProduct(t)

	assert.True(t, product.CanFulfill(25))
	assert.True(t, product.CanFulfill(1))
	assert.False(t, product.CanFulfill(26))
}

func TestProductUpdate(t *testing.T) {
	t.Run("updates name and description", func(t *testing.T) {
		product := newTestProduct(t)
		version := product.GetVersion()

		err := product.Update("UltraBook Pro 16", "Bigger screen")

		require.NoError(t, err)
		assert.Equal(t, "UltraBook Pro 16", product.Name)
		assert.Equal(t, "Bigger screen", product.Description)
		assert.Equal(t, version+1, product.GetVersion())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		product := newTestProduct(t)

		err := product.Update("", "desc")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})
}

func TestProductSetPrices(t *testing.T) {
	product := newTestProduct(t)

	err := product.SetPrices(
		valueobject.NewMoneyUSDFromFloat(1199.99),
		valueobject.NewMoneyUSDFromFloat(850.00),
	)

	require.NoError(t, err)
	assert.True(t, product.GetPriceMoney().Equals(valueobject.NewMoneyUSDFromFloat(1199.99)))
	assert.True(t, product.GetCostMoney().Equals(valueobject.NewMoneyUSDFromFloat(850.00)))
}

func TestProductGetProfitMargin(t *testing.T) {
	t.Run("computes margin from cost", func(t *testing.T) {
		product, err := NewProduct("SKU-001", "Widget", "", CategoryOther,
			valueobject.NewMoneyUSDFromFloat(150),
			valueobject.NewMoneyUSDFromFloat(100),
			0, "")
		require.NoError(t, err)

		margin := product.GetProfitMargin()
		assert.Equal(t, "50", margin.String())
	})

	t.Run("returns zero when cost is zero", func(t *testing.T) {
		product, err := NewProduct("SKU-002", "Freebie", "", CategoryOther,
			valueobject.NewMoneyUSDFromFloat(10),
			valueobject.ZeroUSD(),
			0, "")
		require.NoError(t, err)

		assert.True(t, product.GetProfitMargin().IsZero())
	})
}

func TestCategory(t *testing.T) {
	t.Run("all categories are valid", func(t *testing.T) {
		for _, category := range AllCategories() {
			assert.True(t, category.IsValid(), category.String())
		}
	})

	t.Run("unknown category is invalid", func(t *testing.T) {
		assert.False(t, Category("gadgets").IsValid())
	})
}
