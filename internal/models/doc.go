// Package models defines the core domain models for InventoryHub.
//
// # Models
//
//   - Product: a catalog entry with price and available stock
//   - Bill: a completed sale owning an ordered list of BillItems
//   - BillItem: one line of a bill, snapshotting name and unit price
//
// Request shapes (BillRequest, LineRequest) live here too so the HTTP and
// service layers share one definition.
//
// # Design Principles
//
//  1. **Snapshot over reference**: a BillItem copies the product's name and
//     price at sale time, so historical bills never change when the catalog
//     does.
//  2. **Avoid circular references**: BillItem carries its parent's id instead
//     of a pointer to the Bill.
//  3. **No behavior**: models are plain data; validation and the stock rules
//     live in the service layer.
package models
