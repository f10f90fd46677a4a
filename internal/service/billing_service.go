package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/inventoryhub/internal/metrics"
	"github.com/mmynk/inventoryhub/internal/models"
	"github.com/mmynk/inventoryhub/internal/storage"
)

// BillingService executes the sale workflow: validate stock, decrement
// inventory and persist the bill with its line items as one atomic step.
type BillingService struct {
	store storage.Store
}

// NewBillingService creates a new BillingService with the given storage backend.
func NewBillingService(store storage.Store) *BillingService {
	return &BillingService{store: store}
}

// LinesFromRequest maps the HTTP bill payload to workflow line requests.
// The client-supplied name, price and total are ignored: snapshots and the
// total are recomputed from the catalog inside the transaction.
func LinesFromRequest(req *models.BillRequest) ([]models.LineRequest, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyBill
	}
	lines := make([]models.LineRequest, len(req.Items))
	for i, item := range req.Items {
		lines[i] = models.LineRequest{ProductID: item.ID, Quantity: item.Quantity}
	}
	return lines, nil
}

// CreateBill validates and executes a sale for the given line requests.
//
// Every line must reference an existing product with enough stock. Lines are
// checked and applied in order inside a single write transaction, so a
// failure on any line leaves all stock levels untouched and persists no bill.
// On success the returned bill carries generated ids, sale-time snapshots of
// each product's name and price, and a total recomputed from those snapshots.
func (s *BillingService) CreateBill(ctx context.Context, lines []models.LineRequest) (*models.Bill, error) {
	if len(lines) == 0 {
		metrics.BillFailures.WithLabelValues("validation").Inc()
		return nil, ErrEmptyBill
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			metrics.BillFailures.WithLabelValues("validation").Inc()
			return nil, &ValidationError{
				Reason: fmt.Sprintf("quantity must be positive for product %d", line.ProductID),
			}
		}
	}

	bill := &models.Bill{Date: time.Now()}

	err := s.store.WithTx(ctx, func(tx storage.Store) error {
		items := make([]models.BillItem, 0, len(lines))
		var total float64

		for _, line := range lines {
			product, err := tx.GetProduct(ctx, line.ProductID)
			if errors.Is(err, storage.ErrNotFound) {
				return &ProductNotFoundError{ProductID: line.ProductID}
			}
			if err != nil {
				return err
			}

			if product.Quantity < line.Quantity {
				return &InsufficientStockError{ProductID: product.ID, Name: product.Name}
			}

			product.Quantity -= line.Quantity
			if err := tx.UpdateProduct(ctx, product.ID, product); err != nil {
				return err
			}

			items = append(items, models.BillItem{
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  line.Quantity,
				Price:     product.Price,
			})
			total += product.Price * float64(line.Quantity)
		}

		bill.Items = items
		bill.Total = total
		return tx.CreateBill(ctx, bill)
	})
	if err != nil {
		slog.Error("CreateBill failed", "lines", len(lines), "error", err)
		metrics.BillFailures.WithLabelValues(failureReason(err)).Inc()
		return nil, err
	}

	slog.Info("Bill created", "bill_id", bill.ID, "items", len(bill.Items), "total", bill.Total)
	metrics.BillsCreated.Inc()
	return bill, nil
}

// ListBills returns all persisted bills.
func (s *BillingService) ListBills(ctx context.Context) ([]models.Bill, error) {
	bills, err := s.store.ListBills(ctx)
	if err != nil {
		slog.Error("ListBills failed", "error", err)
		return nil, err
	}
	return bills, nil
}

// GetBill retrieves a bill by id.
func (s *BillingService) GetBill(ctx context.Context, id int64) (*models.Bill, error) {
	bill, err := s.store.GetBill(ctx, id)
	if err != nil {
		slog.Error("GetBill failed", "bill_id", id, "error", err)
		return nil, err
	}
	return bill, nil
}

// failureReason buckets a CreateBill error for the failure counter.
func failureReason(err error) string {
	var notFound *ProductNotFoundError
	var noStock *InsufficientStockError
	switch {
	case errors.As(err, &notFound):
		return "product_not_found"
	case errors.As(err, &noStock):
		return "insufficient_stock"
	default:
		return "storage"
	}
}
