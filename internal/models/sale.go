package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord is the sale_records table row. No update or delete statement
// exists for this table anywhere in the codebase.
type SaleRecord struct {
	SaleID        string          `db:"sale_id"`
	ItemKind      string          `db:"item_kind"`
	ItemID        string          `db:"item_id"`
	Quantity      int64           `db:"quantity"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	Discount      decimal.Decimal `db:"discount"`
	NetTotal      decimal.Decimal `db:"net_total"`
	PaymentMethod string          `db:"payment_method"`
	CustomerID    string          `db:"customer_id"` // Nullable
	SaleDate      time.Time       `db:"sale_date"`
	CreatedAt     time.Time       `db:"created_at"`
	CreatedBy     string          `db:"created_by"`
}
