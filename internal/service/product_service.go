package service

import (
	"context"
	"log/slog"

	"github.com/mmynk/inventoryhub/internal/models"
	"github.com/mmynk/inventoryhub/internal/storage"
)

// ProductService exposes catalog CRUD over the storage backend.
// It applies no field validation: the product API accepts whatever the
// client sends, matching the observed behavior of the system it replaces.
type ProductService struct {
	store storage.Store
}

// NewProductService creates a new ProductService with the given storage backend.
func NewProductService(store storage.Store) *ProductService {
	return &ProductService{store: store}
}

// ListProducts returns all products in the catalog.
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		slog.Error("ListProducts failed", "error", err)
		return nil, err
	}
	return products, nil
}

// GetProduct retrieves a product by id.
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.store.GetProduct(ctx, id)
	if err != nil {
		slog.Error("GetProduct failed", "product_id", id, "error", err)
		return nil, err
	}
	return product, nil
}

// CreateProduct persists a new product and returns it with its generated id.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := s.store.CreateProduct(ctx, product); err != nil {
		slog.Error("CreateProduct failed", "name", product.Name, "error", err)
		return err
	}
	slog.Info("Product created", "product_id", product.ID, "name", product.Name)
	return nil
}

// UpdateProduct replaces the name, price and quantity of an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, product *models.Product) error {
	if err := s.store.UpdateProduct(ctx, id, product); err != nil {
		slog.Error("UpdateProduct failed", "product_id", id, "error", err)
		return err
	}
	slog.Info("Product updated", "product_id", id)
	return nil
}

// DeleteProduct removes a product by id. Missing ids are a no-op.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		slog.Error("DeleteProduct failed", "product_id", id, "error", err)
		return err
	}
	slog.Info("Product deleted", "product_id", id)
	return nil
}
