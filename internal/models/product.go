package models

// Product is a catalog entry with its available stock.
type Product struct {
	// ID is the store-generated identifier.
	ID int64 `json:"id"`

	// Name is the display name of the product.
	Name string `json:"name"`

	// Price is the current unit price.
	Price float64 `json:"price"`

	// Quantity is the number of units available for sale.
	// Decremented by the billing workflow; edited freely via the product API.
	Quantity int64 `json:"quantity"`
}
