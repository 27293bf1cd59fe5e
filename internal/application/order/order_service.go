package order

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shoppy/backend/internal/domain/order"
	"github.com/shoppy/backend/internal/domain/pricing"
	"github.com/shoppy/backend/internal/domain/shared"
	"go.uber.org/zap"
)

var validate = validator.New()

// Service handles order lifecycle operations. Order creation and every
// stock-affecting transition run inside a transaction scope so order rows
// and stock adjustments commit or roll back together.
type Service struct {
	orderRepo order.Repository
	txScope   TransactionScope
	pricer    *pricing.Engine
	eventBus  shared.EventPublisher
	logger    *zap.Logger
}

// NewService creates a new order Service
func NewService(
	orderRepo order.Repository,
	txScope TransactionScope,
	pricer *pricing.Engine,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *Service {
	return &Service{
		orderRepo: orderRepo,
		txScope:   txScope,
		pricer:    pricer,
		eventBus:  eventBus,
		logger:    logger,
	}
}

// Create places a new order. Prices and product names are snapshotted from
// the catalog at this moment; stock is decremented per line item in the
// same transaction. Any failure, including insufficient stock on the last
// line, rolls the whole order back.
func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", err.Error())
	}

	paymentMethod := order.PaymentMethod(req.PaymentMethod)
	if !paymentMethod.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", fmt.Sprintf("Unknown payment method %q", req.PaymentMethod))
	}

	var created *order.Order
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		orderNumber, err := repos.OrderRepo().GenerateOrderNumber(ctx)
		if err != nil {
			return err
		}

		ord, err := order.NewOrder(orderNumber, paymentMethod)
		if err != nil {
			return err
		}

		lineItems := make([]pricing.LineItem, 0, len(req.Items))
		for _, reqItem := range req.Items {
			product, err := repos.ProductRepo().FindBySKU(ctx, reqItem.SKU)
			if err != nil {
				return err
			}

			item, err := ord.AddItem(product.SKU, product.Name, product.GetPriceMoney(), reqItem.Quantity)
			if err != nil {
				return err
			}

			lineItems = append(lineItems, pricing.LineItem{
				SKU:       item.SKU,
				UnitPrice: item.UnitPrice,
				Quantity:  item.Quantity,
			})
		}

		totals := s.pricer.ComputeOrderTotals(lineItems)
		if err := ord.SetTotals(totals.Subtotal, totals.Tax, totals.Shipping, totals.Total); err != nil {
			return err
		}

		for _, item := range ord.Items {
			if err := repos.ProductRepo().AdjustStock(ctx, item.SKU, -item.Quantity); err != nil {
				return err
			}
		}

		if err := repos.OrderRepo().Save(ctx, ord); err != nil {
			return err
		}

		created = ord
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, created)

	s.logger.Info("order created",
		zap.String("order_number", created.OrderNumber),
		zap.Int("items", created.ItemCount()),
		zap.String("total", created.GetTotalMoney().String()),
	)

	resp := toOrderResponse(created)
	return &resp, nil
}

// GetByID returns the order with the given ID, items included
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	ord, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(ord)
	return &resp, nil
}

// GetByOrderNumber returns the order with the given order number
func (s *Service) GetByOrderNumber(ctx context.Context, orderNumber string) (*OrderResponse, error) {
	ord, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(ord)
	return &resp, nil
}

// List returns orders matching the filter, newest first
func (s *Service) List(ctx context.Context, filter OrderListFilter) (*shared.Paginated[OrderResponse], error) {
	if err := validate.Struct(filter); err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", err.Error())
	}

	repoFilter := shared.DefaultFilter()
	repoFilter.OrderBy = "created_at"
	repoFilter.OrderDir = "desc"
	if filter.Page > 0 {
		repoFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		repoFilter.PageSize = filter.PageSize
	}

	var (
		orders []order.Order
		err    error
	)
	if filter.Status != "" {
		status := order.Status(filter.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", filter.Status))
		}
		repoFilter.Filters["status"] = status
		orders, err = s.orderRepo.FindByStatus(ctx, status, repoFilter)
	} else {
		orders, err = s.orderRepo.FindAll(ctx, repoFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.orderRepo.Count(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = toOrderResponse(&orders[i])
	}

	page := shared.NewPaginated(responses, total, repoFilter.Page, repoFilter.PageSize)
	return &page, nil
}

// Transition moves an order to the target status. Entering cancelled or
// refunded returns each line item's quantity to the catalog in the same
// transaction as the status write. The order row is saved with an
// optimistic version check, so two concurrent transitions of the same
// order cannot both win.
func (s *Service) Transition(ctx context.Context, id uuid.UUID, req TransitionRequest) (*OrderResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", err.Error())
	}

	target := order.Status(req.Status)
	if !target.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", req.Status))
	}

	var updated *order.Order
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		ord, err := repos.OrderRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := ord.TransitionTo(target); err != nil {
			return err
		}

		if target.ReleasesStock() {
			for _, item := range ord.Items {
				if err := repos.ProductRepo().AdjustStock(ctx, item.SKU, item.Quantity); err != nil {
					return err
				}
			}
		}

		if err := repos.OrderRepo().SaveWithLock(ctx, ord); err != nil {
			return err
		}

		updated = ord
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, updated)

	s.logger.Info("order transitioned",
		zap.String("order_number", updated.OrderNumber),
		zap.String("status", updated.Status.String()),
		zap.Bool("released_stock", target.ReleasesStock()),
	)

	resp := toOrderResponse(updated)
	return &resp, nil
}

// Cancel is shorthand for a transition to cancelled
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	return s.Transition(ctx, id, TransitionRequest{Status: order.StatusCancelled.String()})
}

// Refund is shorthand for a transition to refunded
func (s *Service) Refund(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	return s.Transition(ctx, id, TransitionRequest{Status: order.StatusRefunded.String()})
}

// StatusCounts returns how many orders sit in each status
func (s *Service) StatusCounts(ctx context.Context) (*StatusCountResponse, error) {
	statuses := []order.Status{
		order.StatusPending, order.StatusProcessing, order.StatusShipped,
		order.StatusDelivered, order.StatusCancelled, order.StatusRefunded,
	}

	resp := &StatusCountResponse{Counts: make(map[string]int64, len(statuses))}
	for _, status := range statuses {
		count, err := s.orderRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		resp.Counts[status.String()] = count
		resp.Total += count
	}
	return resp, nil
}

// publishEvents publishes and clears the aggregate's domain events
func (s *Service) publishEvents(ctx context.Context, ord *order.Order) {
	events := ord.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventBus.Publish(ctx, events...); err != nil {
		s.logger.Warn("failed to publish order events", zap.Error(err))
	}
	ord.ClearDomainEvents()
}
