package models

import "time"

// Bill is a completed sale. Bills are immutable once persisted: there are no
// update or delete operations, and line items belong exclusively to their bill.
type Bill struct {
	// ID is the store-generated identifier.
	ID int64 `json:"id"`

	// Items are the line items of the sale, in the order they were submitted.
	// Serialized as "products" because that is what the frontend reads.
	Items []BillItem `json:"products"`

	// Total is the sum of Price*Quantity over all items, computed server-side.
	Total float64 `json:"total"`

	// Date is when the sale was completed.
	Date time.Time `json:"date"`
}

// BillItem is one line of a bill. Name and Price are snapshots taken at sale
// time, so later edits or deletion of the referenced product never change a
// historical bill.
type BillItem struct {
	// ID is the store-generated identifier.
	ID int64 `json:"id"`

	// BillID references the owning bill. It is a plain identifier rather than
	// a pointer back to the Bill, and it is hidden from JSON.
	BillID int64 `json:"-"`

	// ProductID references the product that was sold. The product may be
	// deleted later; the reference is informational, not an ownership link.
	ProductID int64 `json:"productId"`

	// Name is the product name at sale time.
	Name string `json:"name"`

	// Quantity is the number of units sold.
	Quantity int64 `json:"quantity"`

	// Price is the unit price at sale time.
	Price float64 `json:"price"`
}

// LineRequest is one (product, quantity) pair of a bill-creation call.
type LineRequest struct {
	ProductID int64
	Quantity  int64
}

// BillRequest is the POST /api/bills payload. The client echoes product
// name/price and a precomputed total, but the server treats those as untrusted
// hints: snapshots and the total are always recomputed from the catalog inside
// the billing transaction.
type BillRequest struct {
	Items []BillRequestItem `json:"items"`
	Total float64           `json:"total"`
}

// BillRequestItem is one entry of a BillRequest. ID is the product id.
type BillRequestItem struct {
	ID       int64   `json:"id"`
	Quantity int64   `json:"quantity"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
}
