package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountKind identifies which side of the counter an account sits on.
type AccountKind string

const (
	// Customer accounts track what the party owes the shop.
	Customer AccountKind = "CUSTOMER"
	// Partner accounts (suppliers, technicians) track what the shop owes the party.
	Partner AccountKind = "PARTNER"
)

// Account is the ledger subject for a customer or partner. CurrentBalance is
// denormalized and must always equal the balance of the account's most recent
// ledger entry (zero when no entries exist).
type Account struct {
	AccountID      string          `json:"accountID"`
	PartyName      string          `json:"partyName"`
	Kind           AccountKind     `json:"kind"`
	Phone          string          `json:"phone"` // Nullable contact number
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	AuditFields
}

// SignedDelta returns the balance effect of one debit/credit pair under the
// account kind's sign rule: customers owe the shop, so debit increases their
// balance; partners are owed by the shop, so credit increases theirs.
func SignedDelta(kind AccountKind, debit, credit decimal.Decimal) (decimal.Decimal, error) {
	switch kind {
	case Customer:
		return debit.Sub(credit), nil
	case Partner:
		return credit.Sub(debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account kind '%s'", kind)
	}
}
