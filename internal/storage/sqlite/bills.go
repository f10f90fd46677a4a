package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/inventoryhub/internal/models"
	"github.com/mmynk/inventoryhub/internal/storage"
)

// Bill dates are stored as RFC 3339 text so they survive round trips with
// full precision and stay readable in the database file.
const dateFormat = time.RFC3339Nano

// CreateBill persists a bill together with its items in one operation.
// When the store is already transaction-scoped the inserts join that
// transaction; otherwise a dedicated one is opened.
func (s *SQLiteStore) CreateBill(ctx context.Context, bill *models.Bill) error {
	if bill.Date.IsZero() {
		bill.Date = time.Now()
	}

	if s.inTx {
		return insertBill(ctx, s.q, bill)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertBill(ctx, tx, bill); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// insertBill writes the bill row and its item rows, populating generated ids
// and each item's back-reference to the bill.
func insertBill(ctx context.Context, q dbtx, bill *models.Bill) error {
	res, err := q.ExecContext(ctx,
		"INSERT INTO bills (total, date) VALUES (?, ?)",
		bill.Total, bill.Date.Format(dateFormat),
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill: %w", err)
	}

	billID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read bill id: %w", err)
	}
	bill.ID = billID

	for i := range bill.Items {
		item := &bill.Items[i]
		item.BillID = billID

		res, err := q.ExecContext(ctx,
			"INSERT INTO bill_items (bill_id, product_id, name, quantity, price) VALUES (?, ?, ?, ?, ?)",
			billID, item.ProductID, item.Name, item.Quantity, item.Price,
		)
		if err != nil {
			return fmt.Errorf("failed to insert bill item: %w", err)
		}

		itemID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read bill item id: %w", err)
		}
		item.ID = itemID
	}

	return nil
}

// GetBill retrieves a bill by id, including all items in insertion order.
func (s *SQLiteStore) GetBill(ctx context.Context, id int64) (*models.Bill, error) {
	bill := &models.Bill{}
	var date string
	err := s.q.QueryRowContext(ctx,
		"SELECT id, total, date FROM bills WHERE id = ?",
		id,
	).Scan(&bill.ID, &bill.Total, &date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("bill %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	if bill.Date, err = time.Parse(dateFormat, date); err != nil {
		return nil, fmt.Errorf("failed to parse bill date: %w", err)
	}

	if bill.Items, err = s.billItems(ctx, bill.ID); err != nil {
		return nil, err
	}
	return bill, nil
}

// ListBills returns all bills ordered by id, items included.
func (s *SQLiteStore) ListBills(ctx context.Context) ([]models.Bill, error) {
	rows, err := s.q.QueryContext(ctx, "SELECT id, total, date FROM bills ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []models.Bill
	for rows.Next() {
		var bill models.Bill
		var date string
		if err := rows.Scan(&bill.ID, &bill.Total, &date); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		if bill.Date, err = time.Parse(dateFormat, date); err != nil {
			return nil, fmt.Errorf("failed to parse bill date: %w", err)
		}
		bills = append(bills, bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}

	for i := range bills {
		if bills[i].Items, err = s.billItems(ctx, bills[i].ID); err != nil {
			return nil, err
		}
	}
	return bills, nil
}

// billItems loads the items of one bill in insertion order.
func (s *SQLiteStore) billItems(ctx context.Context, billID int64) ([]models.BillItem, error) {
	rows, err := s.q.QueryContext(ctx,
		"SELECT id, bill_id, product_id, name, quantity, price FROM bill_items WHERE bill_id = ? ORDER BY id",
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get bill items: %w", err)
	}
	defer rows.Close()

	var items []models.BillItem
	for rows.Next() {
		var item models.BillItem
		if err := rows.Scan(&item.ID, &item.BillID, &item.ProductID, &item.Name, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("failed to scan bill item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bill items: %w", err)
	}
	return items, nil
}
