package models

import "github.com/shopspring/decimal"

// AccountKind mirrors domain.AccountKind at the storage layer.
type AccountKind string

const (
	Customer AccountKind = "CUSTOMER"
	Partner  AccountKind = "PARTNER"
)

// Account is the accounts table row. current_balance is denormalized and must
// equal the balance column of the account's highest-seq ledger entry.
type Account struct {
	AccountID      string          `db:"account_id"`
	PartyName      string          `db:"party_name"`
	Kind           AccountKind     `db:"kind"`
	Phone          string          `db:"phone"` // Nullable
	CurrentBalance decimal.Decimal `db:"current_balance"`
	AuditFields
}
