package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reference kinds link a ledger entry back to the row that caused it.
const (
	RefSale            = "sale"
	RefInstallmentSale = "installment_sale"
	RefRepair          = "repair"
	RefManual          = "manual"
)

// LedgerEntry is one immutable debit/credit posting with a snapshot of the
// resulting balance. Entries are totally ordered per account by Seq, which is
// the insertion order; EntryDate may be backdated for historical corrections
// and must never be used to order balances. Corrections are made by posting
// an offsetting entry, never by editing an existing one.
type LedgerEntry struct {
	EntryID       string          `json:"entryID"`
	AccountID     string          `json:"accountID"`
	Seq           int64           `json:"seq"` // Per-account insertion sequence, starts at 1
	EntryDate     time.Time       `json:"entryDate"`
	Description   string          `json:"description"`
	Debit         decimal.Decimal `json:"debit"`  // >= 0
	Credit        decimal.Decimal `json:"credit"` // >= 0
	Balance       decimal.Decimal `json:"balance"`
	ReferenceKind string          `json:"referenceKind"` // Nullable, e.g. "installment_sale"
	ReferenceID   string          `json:"referenceID"`   // Nullable
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}
