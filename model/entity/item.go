package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock status bands, snapshotted on every item write.
const (
	StatusInStock    = "In Stock"
	StatusLowStock   = "Low Stock"
	StatusOutOfStock = "Out of Stock"
)

// Item is one equipment line in the inventory collection. CategoryName and
// SupplierName are denormalized display snapshots refreshed at write time;
// CategoryID/SupplierID are weak references (the target may be deleted).
type Item struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName,omitempty"`
	Quantity     int             `json:"quantity"`
	Location     string          `json:"location"`
	SupplierID   string          `json:"supplierId"`
	SupplierName string          `json:"supplierName,omitempty"`
	PurchaseDate string          `json:"purchaseDate"`
	Price        decimal.Decimal `json:"price"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// DeriveStatus maps a quantity onto a status band. The boundary quantity
// (exactly the threshold) is still Low Stock.
func DeriveStatus(quantity, lowStockThreshold int) string {
	switch {
	case quantity <= 0:
		return StatusOutOfStock
	case quantity <= lowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}
