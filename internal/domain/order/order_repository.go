package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/shoppy/backend/internal/domain/shared"
)

// Repository defines the interface for order persistence
type Repository interface {
	// FindByID finds an order by its ID, with items loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByOrderNumber finds an order by its order number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)

	// FindAll finds all orders matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// FindByStatus finds orders in the given status
	FindByStatus(ctx context.Context, status Status, filter shared.Filter) ([]Order, error)

	// Save creates or updates an order together with its items
	Save(ctx context.Context, order *Order) error

	// SaveWithLock persists the order with an optimistic version check.
	// Returns ErrConcurrencyConflict if the stored version differs from
	// the aggregate's version.
	SaveWithLock(ctx context.Context, order *Order) error

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByStatus counts orders in the given status
	CountByStatus(ctx context.Context, status Status) (int64, error)

	// GenerateOrderNumber produces the next sequential order number
	GenerateOrderNumber(ctx context.Context) (string, error)
}
