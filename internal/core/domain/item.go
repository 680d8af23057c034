package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemKind distinguishes the catalog tables an item can come from.
type ItemKind string

const (
	// ItemPhone and ItemService are unique single-unit goods: quantity is
	// always 1 and a sale flips their status instead of decrementing stock.
	ItemPhone   ItemKind = "PHONE"
	ItemService ItemKind = "SERVICE"
	// ItemGoods is bulk inventory with a stock count.
	ItemGoods ItemKind = "GOODS"
)

// ItemStatus is the sale lifecycle of a unique-unit item.
type ItemStatus string

const (
	ItemAvailable       ItemStatus = "AVAILABLE"
	ItemSold            ItemStatus = "SOLD"
	ItemInstallmentSale ItemStatus = "INSTALLMENT_SALE"
)

// Item is the engine's view of a catalog row. The catalog's CRUD management
// is owned elsewhere; the engine only reads prices/stock and writes the
// sale-related mutations.
type Item struct {
	ItemID    string           `json:"itemID"`
	Kind      ItemKind         `json:"kind"`
	Name      string           `json:"name"`
	SalePrice *decimal.Decimal `json:"salePrice"` // nil means price not configured
	Stock     int64            `json:"stock"`     // Bulk goods only
	Status    ItemStatus       `json:"status"`    // Unique-unit items only
	SoldAt    *time.Time       `json:"soldAt"`
	AuditFields
}

// IsUniqueUnit reports whether the kind sells as a single unit via a status
// flip rather than a stock decrement.
func (k ItemKind) IsUniqueUnit() bool {
	return k == ItemPhone || k == ItemService
}
