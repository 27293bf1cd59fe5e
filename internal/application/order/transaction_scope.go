package order

import (
	"context"

	"github.com/shoppy/backend/internal/domain/catalog"
	"github.com/shoppy/backend/internal/domain/order"
)

// TransactionScope provides transactional access to the repositories an
// order operation touches. When a function is executed within a scope,
// all repository operations are part of the same database transaction
// and commit or roll back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the order and product
// repositories within a transaction. Both repositories share the same
// underlying database transaction, so an order write and its stock
// adjustments either all land or none do.
type TransactionalRepositories interface {
	// OrderRepo returns the order repository scoped to the current transaction
	OrderRepo() order.Repository
	// ProductRepo returns the product repository scoped to the current transaction
	ProductRepo() catalog.ProductRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing.
type NoOpTransactionScope struct {
	orderRepo   order.Repository
	productRepo catalog.ProductRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(orderRepo order.Repository, productRepo catalog.ProductRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// Execute runs the function directly without a transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// OrderRepo returns the order repository
func (s *NoOpTransactionScope) OrderRepo() order.Repository {
	return s.orderRepo
}

// ProductRepo returns the product repository
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
