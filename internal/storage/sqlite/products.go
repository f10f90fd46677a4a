package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/inventoryhub/internal/models"
	"github.com/mmynk/inventoryhub/internal/storage"
)

// ListProducts returns all products ordered by id.
func (s *SQLiteStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.q.QueryContext(ctx,
		"SELECT id, name, price, quantity FROM products ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// GetProduct retrieves a product by id.
func (s *SQLiteStore) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	p := &models.Product{}
	err := s.q.QueryRowContext(ctx,
		"SELECT id, name, price, quantity FROM products WHERE id = ?",
		id,
	).Scan(&p.ID, &p.Name, &p.Price, &p.Quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

// CreateProduct persists a new product and populates its generated id.
func (s *SQLiteStore) CreateProduct(ctx context.Context, product *models.Product) error {
	res, err := s.q.ExecContext(ctx,
		"INSERT INTO products (name, price, quantity) VALUES (?, ?, ?)",
		product.Name, product.Price, product.Quantity,
	)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read product id: %w", err)
	}
	product.ID = id
	return nil
}

// UpdateProduct replaces the name, price and quantity of an existing product.
func (s *SQLiteStore) UpdateProduct(ctx context.Context, id int64, product *models.Product) error {
	res, err := s.q.ExecContext(ctx,
		"UPDATE products SET name = ?, price = ?, quantity = ? WHERE id = ?",
		product.Name, product.Price, product.Quantity, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("product %d: %w", id, storage.ErrNotFound)
	}

	product.ID = id
	return nil
}

// DeleteProduct removes a product by id. Missing ids are a no-op.
// Historical bill items that reference the product are left untouched.
func (s *SQLiteStore) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := s.q.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
