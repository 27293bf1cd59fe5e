package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shoppy/backend/internal/domain/order"
	"github.com/shoppy/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormOrderRepository implements order.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by its ID, with items loaded
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var ord order.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&ord, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ord, nil
}

// FindByOrderNumber finds an order by its order number
func (r *GormOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	var ord order.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("order_number = ?", orderNumber).
		First(&ord).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ord, nil
}

// FindAll finds all orders matching the filter
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]order.Order, error) {
	var orders []order.Order
	query := r.applyFilter(r.db.WithContext(ctx).Model(&order.Order{}).Preload("Items"), filter)

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByStatus finds orders in the given status
func (r *GormOrderRepository) FindByStatus(ctx context.Context, status order.Status, filter shared.Filter) ([]order.Order, error) {
	var orders []order.Order
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&order.Order{}).Preload("Items").
			Where("status = ?", status),
		filter,
	)

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save creates or updates an order together with its items
func (r *GormOrderRepository) Save(ctx context.Context, ord *order.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(ord).Error; err != nil {
			return err
		}
		return r.saveItems(tx, ord)
	})
}

// SaveWithLock persists the order with an optimistic version check
func (r *GormOrderRepository) SaveWithLock(ctx context.Context, ord *order.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current struct{ Version int }
		if err := tx.Model(&order.Order{}).
			Select("version").
			Where("id = ?", ord.ID).
			First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if current.Version != ord.Version {
			return shared.ErrConcurrencyConflict
		}

		ord.Version++
		ord.UpdatedAt = time.Now()

		result := tx.Model(&order.Order{}).
			Where("id = ? AND version = ?", ord.ID, current.Version).
			Updates(map[string]interface{}{
				"order_number":   ord.OrderNumber,
				"status":         ord.Status,
				"payment_method": ord.PaymentMethod,
				"subtotal":       ord.Subtotal,
				"tax":            ord.Tax,
				"shipping":       ord.Shipping,
				"total":          ord.Total,
				"processed_at":   ord.ProcessedAt,
				"shipped_at":     ord.ShippedAt,
				"delivered_at":   ord.DeliveredAt,
				"cancelled_at":   ord.CancelledAt,
				"refunded_at":    ord.RefundedAt,
				"version":        ord.Version,
				"updated_at":     ord.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}

		return r.saveItems(tx, ord)
	})
}

// saveItems reconciles the persisted item rows with the aggregate's items
func (r *GormOrderRepository) saveItems(tx *gorm.DB, ord *order.Order) error {
	currentItemIDs := make([]uuid.UUID, len(ord.Items))
	for i, item := range ord.Items {
		currentItemIDs[i] = item.ID
	}

	if len(currentItemIDs) > 0 {
		if err := tx.Where("order_id = ? AND id NOT IN ?", ord.ID, currentItemIDs).
			Delete(&order.Item{}).Error; err != nil {
			return err
		}
	} else {
		if err := tx.Where("order_id = ?", ord.ID).
			Delete(&order.Item{}).Error; err != nil {
			return err
		}
	}

	for i := range ord.Items {
		ord.Items[i].OrderID = ord.ID
		if err := tx.Save(&ord.Items[i]).Error; err != nil {
			return err
		}
	}

	return nil
}

// Count counts orders matching the filter
func (r *GormOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	query := r.db.WithContext(ctx).Model(&order.Order{})
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts orders in the given status
func (r *GormOrderRepository) CountByStatus(ctx context.Context, status order.Status) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GenerateOrderNumber produces the next sequential order number.
// Format: ORD-YYYY-NNNNN (e.g., ORD-2026-00001)
func (r *GormOrderRepository) GenerateOrderNumber(ctx context.Context) (string, error) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("ORD-%d-", year)

	var lastOrder order.Order
	err := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Where("order_number LIKE ?", prefix+"%").
		Order("order_number DESC").
		First(&lastOrder).Error

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	var nextNum int64 = 1
	if err == nil && lastOrder.OrderNumber != "" {
		parts := strings.Split(lastOrder.OrderNumber, "-")
		if len(parts) == 3 {
			var num int64
			if _, parseErr := fmt.Sscanf(parts[2], "%d", &num); parseErr == nil {
				nextNum = num + 1
			}
		}
	}

	return fmt.Sprintf("%s%05d", prefix, nextNum), nil
}

// applyFilter applies filter options to the query
func (r *GormOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// Ensure GormOrderRepository implements order.Repository
var _ order.Repository = (*GormOrderRepository)(nil)
