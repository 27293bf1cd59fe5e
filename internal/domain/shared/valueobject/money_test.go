package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(10.50), USD)
		require.NoError(t, err)
		assert.Equal(t, USD, m.Currency())
		assert.Equal(t, "10.50", m.StringFixed(2))
	})

	t.Run("fails with empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(1), "")
		assert.Error(t, err)
	})

	t.Run("from string", func(t *testing.T) {
		m, err := NewMoneyUSDFromString("149.99")
		require.NoError(t, err)
		assert.Equal(t, "149.99", m.StringFixed(2))
	})

	t.Run("from invalid string", func(t *testing.T) {
		_, err := NewMoneyUSDFromString("not-a-number")
		assert.Error(t, err)
	})
}

func TestMoneyArithmetic(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		a := NewMoneyUSDFromFloat(10.50)
		b := NewMoneyUSDFromFloat(4.25)

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, "14.75", sum.StringFixed(2))
	})

	t.Run("add rejects currency mismatch", func(t *testing.T) {
		a := NewMoneyUSDFromFloat(10)
		b := Zero(EUR)

		_, err := a.Add(b)
		assert.Error(t, err)
	})

	t.Run("subtract", func(t *testing.T) {
		a := NewMoneyUSDFromFloat(10.50)
		b := NewMoneyUSDFromFloat(4.25)

		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.Equal(t, "6.25", diff.StringFixed(2))
	})

	t.Run("multiply by int", func(t *testing.T) {
		m := NewMoneyUSDFromFloat(149.99).MultiplyByInt(2)
		assert.Equal(t, "299.98", m.StringFixed(2))
	})

	t.Run("operations do not mutate the receiver", func(t *testing.T) {
		a := NewMoneyUSDFromFloat(10)
		_ = a.MultiplyByInt(3)
		assert.Equal(t, "10.00", a.StringFixed(2))
	})
}

func TestMoneyRounding(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"23.9984", "24.00"},
		{"23.994", "23.99"},
		{"23.995", "24.00"}, // half-up at the midpoint
		{"0.005", "0.01"},
		{"0.004", "0.00"},
		{"100", "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := NewMoneyUSDFromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m.RoundToCurrency().StringFixed(2))
		})
	}
}

func TestMoneyComparison(t *testing.T) {
	a := NewMoneyUSDFromFloat(99.99)
	b := NewMoneyUSDFromFloat(100.00)

	less, err := a.LessThan(b)
	require.NoError(t, err)
	assert.True(t, less)

	gte, err := b.GreaterThanOrEqual(a)
	require.NoError(t, err)
	assert.True(t, gte)

	gte, err = b.GreaterThanOrEqual(NewMoneyUSDFromFloat(100.00))
	require.NoError(t, err)
	assert.True(t, gte)

	assert.True(t, NewMoneyUSDFromFloat(5).Equals(NewMoneyUSDFromFloat(5)))
	assert.False(t, NewMoneyUSDFromFloat(5).Equals(Zero(EUR)))

	_, err = a.LessThan(Zero(EUR))
	assert.Error(t, err)
}

func TestMoneyPredicates(t *testing.T) {
	assert.True(t, ZeroUSD().IsZero())
	assert.True(t, NewMoneyUSDFromFloat(1).IsPositive())
	assert.True(t, NewMoneyUSDFromFloat(-1).IsNegative())
}

func TestMoneyJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		original := NewMoneyUSDFromFloat(323.98)

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded Money
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, original.Equals(decoded))
	})

	t.Run("rejects invalid amount", func(t *testing.T) {
		var m Money
		err := json.Unmarshal([]byte(`{"amount":"abc","currency":"USD"}`), &m)
		assert.Error(t, err)
	})
}

func TestMoneySQL(t *testing.T) {
	t.Run("value stores amount", func(t *testing.T) {
		v, err := NewMoneyUSDFromFloat(12.34).Value()
		require.NoError(t, err)
		assert.Equal(t, "12.34", v)
	})

	t.Run("scan string", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan("12.34"))
		assert.Equal(t, "12.34", m.StringFixed(2))
		assert.Equal(t, DefaultCurrency, m.Currency())
	})

	t.Run("scan bytes", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan([]byte("0.08")))
		assert.Equal(t, "0.08", m.StringFixed(2))
	})

	t.Run("scan nil yields zero", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan(nil))
		assert.True(t, m.IsZero())
	})

	t.Run("scan rejects unsupported type", func(t *testing.T) {
		var m Money
		assert.Error(t, m.Scan(42))
	})
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "149.99 USD", NewMoneyUSDFromFloat(149.99).String())
}
