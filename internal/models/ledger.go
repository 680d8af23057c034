package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the ledger_entries table row. Append-only; seq is the
// per-account insertion order and the only valid ordering for balances.
type LedgerEntry struct {
	EntryID       string          `db:"entry_id"`
	AccountID     string          `db:"account_id"`
	Seq           int64           `db:"seq"`
	EntryDate     time.Time       `db:"entry_date"`
	Description   string          `db:"description"`
	Debit         decimal.Decimal `db:"debit"`
	Credit        decimal.Decimal `db:"credit"`
	Balance       decimal.Decimal `db:"balance"`
	ReferenceKind string          `db:"reference_kind"` // Nullable
	ReferenceID   string          `db:"reference_id"`   // Nullable
	CreatedAt     time.Time       `db:"created_at"`
	CreatedBy     string          `db:"created_by"`
}
