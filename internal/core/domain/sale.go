package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a plain (non-installment) sale was settled.
type PaymentMethod string

const (
	Cash   PaymentMethod = "CASH"
	Credit PaymentMethod = "CREDIT"
)

// SaleRecord is one line-item sale. It is immutable after creation: there is
// no update or delete path, and it is always written in the same atomic unit
// as its inventory mutation and (for credit sales) its ledger posting.
type SaleRecord struct {
	SaleID        string          `json:"saleID"`
	ItemKind      ItemKind        `json:"itemKind"`
	ItemID        string          `json:"itemID"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Discount      decimal.Decimal `json:"discount"`
	NetTotal      decimal.Decimal `json:"netTotal"` // quantity*unitPrice - discount
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	CustomerID    string          `json:"customerID"` // Nullable; guest sales have none
	SaleDate      time.Time       `json:"saleDate"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}
