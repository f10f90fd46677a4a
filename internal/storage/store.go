// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/inventoryhub/internal/models"
)

// ErrNotFound is returned by lookups when the record does not exist.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for product and bill storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// ListProducts returns all products ordered by id.
	ListProducts(ctx context.Context) ([]models.Product, error)

	// GetProduct retrieves a product by id.
	// Returns ErrNotFound if the product does not exist.
	GetProduct(ctx context.Context, id int64) (*models.Product, error)

	// CreateProduct persists a new product and populates product.ID.
	CreateProduct(ctx context.Context, product *models.Product) error

	// UpdateProduct replaces the name, price and quantity of the product with
	// the given id. Returns ErrNotFound if the product does not exist.
	UpdateProduct(ctx context.Context, id int64, product *models.Product) error

	// DeleteProduct removes a product by id. Deleting a product never touches
	// bill items that reference it. A missing id is not an error.
	DeleteProduct(ctx context.Context, id int64) error

	// ListBills returns all bills ordered by id, items included.
	ListBills(ctx context.Context) ([]models.Bill, error)

	// GetBill retrieves a bill by id, items included, in insertion order.
	// Returns ErrNotFound if the bill does not exist.
	GetBill(ctx context.Context, id int64) (*models.Bill, error)

	// CreateBill persists a bill together with its items in one operation,
	// populating bill.ID and each item's ID and BillID.
	CreateBill(ctx context.Context, bill *models.Bill) error

	// WithTx runs fn against a Store scoped to a single write transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	// Calling WithTx on a transaction-scoped Store is not supported.
	WithTx(ctx context.Context, fn func(tx Store) error) error

	// Close releases any resources held by the store.
	Close() error
}
