package seed

import (
	"context"
	"fmt"

	"github.com/shoppy/backend/internal/application/catalog"
	domaincatalog "github.com/shoppy/backend/internal/domain/catalog"
	"go.uber.org/zap"
)

// Options controls a seeding run.
type Options struct {
	// Clear removes all existing products before importing.
	Clear bool
}

// Result summarizes a completed seeding run.
type Result struct {
	Cleared int64
	Created int
	Skipped int
	Total   int64
}

// ProductSeeder imports the sample catalog through the regular upsert path,
// so seeded products raise the same events and pass the same validation as
// any other product.
type ProductSeeder struct {
	productService *catalog.ProductService
	productRepo    domaincatalog.ProductRepository
	logger         *zap.Logger
}

func NewProductSeeder(productService *catalog.ProductService, productRepo domaincatalog.ProductRepository, logger *zap.Logger) *ProductSeeder {
	return &ProductSeeder{
		productService: productService,
		productRepo:    productRepo,
		logger:         logger,
	}
}

// Run imports the sample products. Products whose SKU already exists are
// skipped and left untouched, so running the seeder twice is safe.
func (s *ProductSeeder) Run(ctx context.Context, opts Options) (*Result, error) {
	result := &Result{}

	if opts.Clear {
		cleared, err := s.productRepo.DeleteAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("clear products: %w", err)
		}
		result.Cleared = cleared
		s.logger.Warn("Cleared existing products", zap.Int64("count", cleared))
	}

	for _, req := range SampleProducts() {
		upserted, err := s.productService.Upsert(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("import product %s: %w", req.SKU, err)
		}
		if upserted.Created {
			result.Created++
			s.logger.Info("Created product",
				zap.String("sku", upserted.Product.SKU),
				zap.String("name", upserted.Product.Name))
		} else {
			result.Skipped++
			s.logger.Warn("Product already exists, skipping",
				zap.String("sku", upserted.Product.SKU),
				zap.String("name", upserted.Product.Name))
		}
	}

	summary, err := s.productService.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarize catalog: %w", err)
	}
	result.Total = summary.Total

	s.logger.Info("Seeding complete",
		zap.Int64("cleared", result.Cleared),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
		zap.Int64("total", result.Total))
	for category, count := range summary.Counts {
		s.logger.Info("Category summary",
			zap.String("category", category),
			zap.Int64("products", count))
	}

	return result, nil
}
