package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckInstrument is the check_instruments table row.
type CheckInstrument struct {
	CheckID     string          `db:"check_id"`
	SaleID      string          `db:"sale_id"`
	CheckNumber string          `db:"check_number"`
	BankName    string          `db:"bank_name"`
	DueDate     time.Time       `db:"due_date"`
	Amount      decimal.Decimal `db:"amount"`
	Status      string          `db:"status"`
	AuditFields
}
