package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shoppy/backend/internal/domain/order"
	"github.com/shoppy/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockOrderRepository creates a GormOrderRepository with a mocked SQL connection
func newMockOrderRepository(t *testing.T) (*GormOrderRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormOrderRepository(gormDB), mock, mockDB
}

func orderRows(orders ...order.Order) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "version", "order_number", "status", "payment_method",
		"subtotal", "tax", "shipping", "total",
		"created_at", "updated_at",
	})
	for _, o := range orders {
		rows.AddRow(
			o.ID, o.Version, o.OrderNumber, o.Status, o.PaymentMethod,
			o.Subtotal, o.Tax, o.Shipping, o.Total,
			o.CreatedAt, o.UpdatedAt,
		)
	}
	return rows
}

func sampleOrder() order.Order {
	return order.Order{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			Version: 1,
		},
		OrderNumber:   "ORD-2026-00042",
		Status:        order.StatusPending,
		PaymentMethod: order.PaymentMethodCreditCard,
		Subtotal:      decimal.NewFromFloat(299.98),
		Tax:           decimal.NewFromFloat(24.00),
		Shipping:      decimal.Zero,
		Total:         decimal.NewFromFloat(323.98),
	}
}

func TestGormOrderRepository_FindByID(t *testing.T) {
	t.Run("loads order with items", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		ord := sampleOrder()

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1`).
			WithArgs(ord.ID, 1).
			WillReturnRows(orderRows(ord))

		itemRows := sqlmock.NewRows([]string{
			"id", "order_id", "sku", "product_name", "unit_price", "quantity", "amount",
		}).AddRow(
			uuid.New(), ord.ID, "LAPTOP-001", "UltraBook Pro 15",
			decimal.NewFromFloat(149.99), 2, decimal.NewFromFloat(299.98),
		)
		mock.ExpectQuery(`SELECT \* FROM "order_items" WHERE "order_items"\."order_id" = \$1`).
			WithArgs(ord.ID).
			WillReturnRows(itemRows)

		found, err := repo.FindByID(context.Background(), ord.ID)

		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "ORD-2026-00042", found.OrderNumber)
		require.Len(t, found.Items, 1)
		assert.Equal(t, "LAPTOP-001", found.Items[0].SKU)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for unknown ID", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1`).
			WithArgs(id, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		found, err := repo.FindByID(context.Background(), id)

		assert.Nil(t, found)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_SaveWithLock(t *testing.T) {
	t.Run("returns conflict when stored version differs", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		ord := sampleOrder()
		ord.Version = 2

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT "version" FROM "orders" WHERE id = \$1`).
			WithArgs(ord.ID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(3))
		mock.ExpectRollback()

		err := repo.SaveWithLock(context.Background(), &ord)

		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when the order row is gone", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		ord := sampleOrder()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT "version" FROM "orders" WHERE id = \$1`).
			WithArgs(ord.ID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"version"}))
		mock.ExpectRollback()

		err := repo.SaveWithLock(context.Background(), &ord)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_Count(t *testing.T) {
	t.Run("counts all orders", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "orders"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

		count, err := repo.Count(context.Background(), shared.DefaultFilter())

		assert.NoError(t, err)
		assert.Equal(t, int64(11), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("applies the status filter", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE status = \$1`).
			WithArgs(order.StatusShipped).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

		filter := shared.DefaultFilter()
		filter.Filters["status"] = order.StatusShipped
		count, err := repo.Count(context.Background(), filter)

		assert.NoError(t, err)
		assert.Equal(t, int64(4), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_CountByStatus(t *testing.T) {
	repo, mock, mockDB := newMockOrderRepository(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE status = \$1`).
		WithArgs(order.StatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountByStatus(context.Background(), order.StatusPending)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderRepository_GenerateOrderNumber(t *testing.T) {
	t.Run("starts at one when no orders exist this year", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE order_number LIKE \$1`).
			WillReturnError(gorm.ErrRecordNotFound)

		number, err := repo.GenerateOrderNumber(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("ORD-%d-00001", time.Now().Year()), number)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("increments the highest existing number", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		last := sampleOrder()
		last.OrderNumber = fmt.Sprintf("ORD-%d-00041", time.Now().Year())

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE order_number LIKE \$1`).
			WillReturnRows(orderRows(last))

		number, err := repo.GenerateOrderNumber(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("ORD-%d-00042", time.Now().Year()), number)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
