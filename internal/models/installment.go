package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentSale is the installment_sales table row.
type InstallmentSale struct {
	SaleID            string          `db:"sale_id"`
	CustomerID        string          `db:"customer_id"`
	ItemKind          string          `db:"item_kind"`
	ItemID            string          `db:"item_id"`
	SalePrice         decimal.Decimal `db:"sale_price"`
	DownPayment       decimal.Decimal `db:"down_payment"`
	InstallmentCount  int             `db:"installment_count"`
	InstallmentAmount decimal.Decimal `db:"installment_amount"`
	StartDate         time.Time       `db:"start_date"`
	Notes             string          `db:"notes"`
	AuditFields
}

// InstallmentPayment is the installment_payments table row.
type InstallmentPayment struct {
	PaymentID string          `db:"payment_id"`
	SaleID    string          `db:"sale_id"`
	Ordinal   int             `db:"ordinal"`
	DueDate   time.Time       `db:"due_date"`
	AmountDue decimal.Decimal `db:"amount_due"`
	Status    string          `db:"status"`
	PaidDate  *time.Time      `db:"paid_date"`
	AuditFields
}

// InstallmentTransaction is the installment_transactions table row.
// Append-only.
type InstallmentTransaction struct {
	TransactionID string          `db:"transaction_id"`
	PaymentID     string          `db:"payment_id"`
	Amount        decimal.Decimal `db:"amount"`
	PaidAt        time.Time       `db:"paid_at"`
	Notes         string          `db:"notes"`
	CreatedAt     time.Time       `db:"created_at"`
	CreatedBy     string          `db:"created_by"`
}
