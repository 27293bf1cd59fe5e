package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shoppy/backend/internal/domain/catalog"
	"github.com/shoppy/backend/internal/domain/shared"
	"github.com/shoppy/backend/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

var validate = validator.New()

// ProductService handles catalog business operations
type ProductService struct {
	productRepo catalog.ProductRepository
	eventBus    shared.EventPublisher
	logger      *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, eventBus shared.EventPublisher, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		eventBus:    eventBus,
		logger:      logger,
	}
}

// Upsert creates the product if its SKU is absent; if the SKU already
// exists, the stored product is returned untouched. Two concurrent upserts
// of the same SKU resolve to exactly one creation because the SKU column
// carries a unique constraint.
func (s *ProductService) Upsert(ctx context.Context, req UpsertProductRequest) (*UpsertProductResult, error) {
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", err.Error())
	}

	category := catalog.Category(req.Category)
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", fmt.Sprintf("Unknown category %q", req.Category))
	}

	existing, err := s.productRepo.FindBySKU(ctx, req.SKU)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return &UpsertProductResult{Product: toProductResponse(existing), Created: false}, nil
	}

	product, err := catalog.NewProduct(
		req.SKU, req.Name, req.Description, category,
		valueobject.NewMoneyUSD(req.Price),
		valueobject.NewMoneyUSD(req.Cost),
		req.StockQuantity, req.ImageURL,
	)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		// A concurrent upsert of the same SKU beat us to the insert. The
		// unique constraint decides the winner; the loser reads back the
		// stored row.
		if errors.Is(err, shared.ErrAlreadyExists) {
			stored, fetchErr := s.productRepo.FindBySKU(ctx, req.SKU)
			if fetchErr != nil {
				return nil, fetchErr
			}
			return &UpsertProductResult{Product: toProductResponse(stored), Created: false}, nil
		}
		return nil, err
	}

	s.publishEvents(ctx, product)

	s.logger.Info("product created",
		zap.String("sku", product.SKU),
		zap.String("category", product.Category.String()),
	)

	return &UpsertProductResult{Product: toProductResponse(product), Created: true}, nil
}

// GetBySKU returns the product with the given SKU
func (s *ProductService) GetBySKU(ctx context.Context, sku string) (*ProductResponse, error) {
	product, err := s.productRepo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// List returns a page of products matching the filter, oldest first
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) (*shared.Paginated[ProductResponse], error) {
	if err := validate.Struct(filter); err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", err.Error())
	}

	repoFilter := shared.DefaultFilter()
	repoFilter.Search = filter.Search
	if filter.Page > 0 {
		repoFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		repoFilter.PageSize = filter.PageSize
	}
	if filter.Category != "" {
		category := catalog.Category(filter.Category)
		if !category.IsValid() {
			return nil, shared.NewDomainError("INVALID_CATEGORY", fmt.Sprintf("Unknown category %q", filter.Category))
		}
		repoFilter.Filters["category"] = category
	}
	if filter.InStock != nil {
		repoFilter.Filters["in_stock"] = *filter.InStock
	}

	products, err := s.productRepo.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.productRepo.Count(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = toProductResponse(&products[i])
	}

	page := shared.NewPaginated(responses, total, repoFilter.Page, repoFilter.PageSize)
	return &page, nil
}

// ListByCategory returns all products in a category in insertion order
func (s *ProductService) ListByCategory(ctx context.Context, category string) ([]ProductResponse, error) {
	cat := catalog.Category(category)
	if !cat.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", fmt.Sprintf("Unknown category %q", category))
	}

	products, err := s.productRepo.FindByCategory(ctx, cat)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = toProductResponse(&products[i])
	}
	return responses, nil
}

// Update updates a product's details and returns the stored product
func (s *ProductService) Update(ctx context.Context, sku string, req UpdateProductRequest) (*ProductResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", err.Error())
	}

	product, err := s.productRepo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Description != nil {
		name := product.Name
		description := product.Description
		if req.Name != nil {
			name = *req.Name
		}
		if req.Description != nil {
			description = *req.Description
		}
		if err := product.Update(name, description); err != nil {
			return nil, err
		}
	}

	if req.Price != nil || req.Cost != nil {
		price := product.GetPriceMoney()
		cost := product.GetCostMoney()
		if req.Price != nil {
			price = valueobject.NewMoneyUSD(*req.Price)
		}
		if req.Cost != nil {
			cost = valueobject.NewMoneyUSD(*req.Cost)
		}
		if err := product.SetPrices(price, cost); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := toProductResponse(product)
	return &resp, nil
}

// AdjustStock applies a signed stock delta to a SKU. The adjustment is a
// single conditional update in the repository, so concurrent decrements
// cannot oversell.
func (s *ProductService) AdjustStock(ctx context.Context, sku string, req AdjustStockRequest) (*ProductResponse, error) {
	if req.Delta == 0 {
		return nil, shared.ErrInvalidInput
	}

	if err := s.productRepo.AdjustStock(ctx, sku, req.Delta); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}

	s.logger.Info("stock adjusted",
		zap.String("sku", product.SKU),
		zap.Int("delta", req.Delta),
		zap.Int("stock_quantity", product.StockQuantity),
	)

	resp := toProductResponse(product)
	return &resp, nil
}

// Summary returns per-category product counts
func (s *ProductService) Summary(ctx context.Context) (*CategorySummary, error) {
	counts, err := s.productRepo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	summary := &CategorySummary{Counts: make(map[string]int64, len(counts))}
	for category, count := range counts {
		summary.Counts[category.String()] = count
		summary.Total += count
	}
	return summary, nil
}

// publishEvents publishes and clears the aggregate's domain events
func (s *ProductService) publishEvents(ctx context.Context, product *catalog.Product) {
	events := product.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventBus.Publish(ctx, events...); err != nil {
		s.logger.Warn("failed to publish product events", zap.Error(err))
	}
	product.ClearDomainEvents()
}
