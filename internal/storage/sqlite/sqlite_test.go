package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/inventoryhub/internal/models"
	"github.com/mmynk/inventoryhub/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "inventoryhub-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		os.RemoveAll(tempDir)
		t.Fatalf("Failed to create store: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
		os.RemoveAll(tempDir)
	})
	return store
}

func TestProductStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateProduct generates ID", func(t *testing.T) {
		p := &models.Product{Name: "Widget", Price: 2.50, Quantity: 10}
		if err := store.CreateProduct(ctx, p); err != nil {
			t.Fatalf("CreateProduct failed: %v", err)
		}
		if p.ID == 0 {
			t.Error("Expected product ID to be generated")
		}
	})

	t.Run("GetProduct retrieves fields", func(t *testing.T) {
		p := &models.Product{Name: "Gadget", Price: 9.99, Quantity: 5}
		if err := store.CreateProduct(ctx, p); err != nil {
			t.Fatalf("CreateProduct failed: %v", err)
		}

		got, err := store.GetProduct(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetProduct failed: %v", err)
		}
		if got.Name != "Gadget" || got.Price != 9.99 || got.Quantity != 5 {
			t.Errorf("Unexpected product: %+v", got)
		}
	})

	t.Run("GetProduct returns ErrNotFound for missing id", func(t *testing.T) {
		_, err := store.GetProduct(ctx, 9999)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListProducts returns all in id order", func(t *testing.T) {
		products, err := store.ListProducts(ctx)
		if err != nil {
			t.Fatalf("ListProducts failed: %v", err)
		}
		if len(products) < 2 {
			t.Fatalf("Expected at least 2 products, got %d", len(products))
		}
		for i := 1; i < len(products); i++ {
			if products[i-1].ID >= products[i].ID {
				t.Errorf("Products not ordered by id: %d before %d", products[i-1].ID, products[i].ID)
			}
		}
	})

	t.Run("UpdateProduct replaces all fields", func(t *testing.T) {
		p := &models.Product{Name: "Old", Price: 1.0, Quantity: 1}
		if err := store.CreateProduct(ctx, p); err != nil {
			t.Fatalf("CreateProduct failed: %v", err)
		}

		update := &models.Product{Name: "New", Price: 2.0, Quantity: 7}
		if err := store.UpdateProduct(ctx, p.ID, update); err != nil {
			t.Fatalf("UpdateProduct failed: %v", err)
		}
		if update.ID != p.ID {
			t.Errorf("Expected update to carry id %d, got %d", p.ID, update.ID)
		}

		got, err := store.GetProduct(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetProduct failed: %v", err)
		}
		if got.Name != "New" || got.Price != 2.0 || got.Quantity != 7 {
			t.Errorf("Unexpected product after update: %+v", got)
		}
	})

	t.Run("UpdateProduct returns ErrNotFound for missing id", func(t *testing.T) {
		err := store.UpdateProduct(ctx, 9999, &models.Product{Name: "X"})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("DeleteProduct removes the row", func(t *testing.T) {
		p := &models.Product{Name: "Doomed", Price: 1.0, Quantity: 1}
		if err := store.CreateProduct(ctx, p); err != nil {
			t.Fatalf("CreateProduct failed: %v", err)
		}
		if err := store.DeleteProduct(ctx, p.ID); err != nil {
			t.Fatalf("DeleteProduct failed: %v", err)
		}
		if _, err := store.GetProduct(ctx, p.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
	})

	t.Run("DeleteProduct is a no-op for missing id", func(t *testing.T) {
		if err := store.DeleteProduct(ctx, 9999); err != nil {
			t.Errorf("Expected nil error deleting missing product, got %v", err)
		}
	})
}

func TestBillStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateBill assigns ids and back-references", func(t *testing.T) {
		bill := &models.Bill{
			Total: 12.5,
			Items: []models.BillItem{
				{ProductID: 1, Name: "Widget", Quantity: 3, Price: 2.5},
				{ProductID: 2, Name: "Gadget", Quantity: 1, Price: 5.0},
			},
		}

		if err := store.CreateBill(ctx, bill); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}
		if bill.ID == 0 {
			t.Error("Expected bill ID to be generated")
		}
		if bill.Date.IsZero() {
			t.Error("Expected Date to be set")
		}
		for i, item := range bill.Items {
			if item.ID == 0 {
				t.Errorf("Item %d: expected generated ID", i)
			}
			if item.BillID != bill.ID {
				t.Errorf("Item %d: expected BillID %d, got %d", i, bill.ID, item.BillID)
			}
		}
	})

	t.Run("GetBill retrieves complete bill in insertion order", func(t *testing.T) {
		original := &models.Bill{
			Total: 30.0,
			Items: []models.BillItem{
				{ProductID: 3, Name: "First", Quantity: 2, Price: 5.0},
				{ProductID: 4, Name: "Second", Quantity: 4, Price: 5.0},
			},
		}
		if err := store.CreateBill(ctx, original); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}

		retrieved, err := store.GetBill(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetBill failed: %v", err)
		}
		if retrieved.ID != original.ID {
			t.Errorf("ID mismatch: got %d, want %d", retrieved.ID, original.ID)
		}
		if retrieved.Total != original.Total {
			t.Errorf("Total mismatch: got %f, want %f", retrieved.Total, original.Total)
		}
		if !retrieved.Date.Equal(original.Date) {
			t.Errorf("Date mismatch: got %v, want %v", retrieved.Date, original.Date)
		}
		if len(retrieved.Items) != 2 {
			t.Fatalf("Items count mismatch: got %d, want 2", len(retrieved.Items))
		}
		if retrieved.Items[0].Name != "First" || retrieved.Items[1].Name != "Second" {
			t.Errorf("Items out of insertion order: %+v", retrieved.Items)
		}
		for i, item := range retrieved.Items {
			if item != original.Items[i] {
				t.Errorf("Item %d mismatch: got %+v, want %+v", i, item, original.Items[i])
			}
		}
	})

	t.Run("GetBill returns ErrNotFound for missing id", func(t *testing.T) {
		_, err := store.GetBill(ctx, 9999)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListBills includes items", func(t *testing.T) {
		bills, err := store.ListBills(ctx)
		if err != nil {
			t.Fatalf("ListBills failed: %v", err)
		}
		if len(bills) != 2 {
			t.Fatalf("Expected 2 bills, got %d", len(bills))
		}
		for _, bill := range bills {
			if len(bill.Items) == 0 {
				t.Errorf("Bill %d: expected items to be loaded", bill.ID)
			}
		}
	})

	t.Run("Deleting a product leaves bill item snapshots intact", func(t *testing.T) {
		p := &models.Product{Name: "Ephemeral", Price: 4.0, Quantity: 9}
		if err := store.CreateProduct(ctx, p); err != nil {
			t.Fatalf("CreateProduct failed: %v", err)
		}

		bill := &models.Bill{
			Total: 8.0,
			Items: []models.BillItem{{ProductID: p.ID, Name: p.Name, Quantity: 2, Price: p.Price}},
		}
		if err := store.CreateBill(ctx, bill); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}

		if err := store.DeleteProduct(ctx, p.ID); err != nil {
			t.Fatalf("DeleteProduct failed: %v", err)
		}

		retrieved, err := store.GetBill(ctx, bill.ID)
		if err != nil {
			t.Fatalf("GetBill failed: %v", err)
		}
		if len(retrieved.Items) != 1 {
			t.Fatalf("Expected 1 item, got %d", len(retrieved.Items))
		}
		item := retrieved.Items[0]
		if item.Name != "Ephemeral" || item.Price != 4.0 {
			t.Errorf("Snapshot changed after product delete: %+v", item)
		}
	})
}

func TestWithTx(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("commit on nil error", func(t *testing.T) {
		var id int64
		err := store.WithTx(ctx, func(tx storage.Store) error {
			p := &models.Product{Name: "Committed", Price: 1.0, Quantity: 1}
			if err := tx.CreateProduct(ctx, p); err != nil {
				return err
			}
			id = p.ID
			return nil
		})
		if err != nil {
			t.Fatalf("WithTx failed: %v", err)
		}

		if _, err := store.GetProduct(ctx, id); err != nil {
			t.Errorf("Expected committed product to exist, got %v", err)
		}
	})

	t.Run("rollback on error", func(t *testing.T) {
		sentinel := fmt.Errorf("boom")
		var id int64
		err := store.WithTx(ctx, func(tx storage.Store) error {
			p := &models.Product{Name: "RolledBack", Price: 1.0, Quantity: 1}
			if err := tx.CreateProduct(ctx, p); err != nil {
				return err
			}
			id = p.ID
			return sentinel
		})
		if !errors.Is(err, sentinel) {
			t.Fatalf("Expected sentinel error, got %v", err)
		}

		if _, err := store.GetProduct(ctx, id); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected rolled-back product to be absent, got %v", err)
		}
	})

	t.Run("nested transactions rejected", func(t *testing.T) {
		err := store.WithTx(ctx, func(tx storage.Store) error {
			return tx.WithTx(ctx, func(storage.Store) error { return nil })
		})
		if err == nil {
			t.Error("Expected error for nested WithTx, got nil")
		}
	})
}
