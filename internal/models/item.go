package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is the items table row. sale_price is nullable: an unset price is a
// validation failure at sale time, not a zero-price sale.
type Item struct {
	ItemID    string           `db:"item_id"`
	Kind      string           `db:"kind"`
	Name      string           `db:"name"`
	SalePrice *decimal.Decimal `db:"sale_price"`
	Stock     int64            `db:"stock"`
	Status    string           `db:"status"`
	SoldAt    *time.Time       `db:"sold_at"`
	AuditFields
}
