package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckStatus is the lifecycle state of a post-dated check instrument.
type CheckStatus string

const (
	CheckHeld         CheckStatus = "HELD"          // Still with the customer
	CheckInCollection CheckStatus = "IN_COLLECTION" // Deposited, awaiting clearance
	CheckCleared      CheckStatus = "CLEARED"       // Terminal
	CheckBounced      CheckStatus = "BOUNCED"
	CheckVoided       CheckStatus = "VOIDED" // Terminal
)

// checkTransitions is the allowed-transition table. CLEARED and VOIDED are
// terminal; a bounced check may be re-deposited or written off.
var checkTransitions = map[CheckStatus][]CheckStatus{
	CheckHeld:         {CheckInCollection, CheckVoided},
	CheckInCollection: {CheckCleared, CheckBounced, CheckVoided},
	CheckBounced:      {CheckInCollection, CheckVoided},
	CheckCleared:      {},
	CheckVoided:       {},
}

// ValidCheckStatus reports whether s is one of the five known states.
func ValidCheckStatus(s CheckStatus) bool {
	_, ok := checkTransitions[s]
	return ok
}

// CanTransitionCheck reports whether a check may move from one status to
// another. Self-transitions are rejected along with everything not in the
// table.
func CanTransitionCheck(from, to CheckStatus) bool {
	for _, allowed := range checkTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition out of s exists.
func (s CheckStatus) IsTerminal() bool {
	allowed, ok := checkTransitions[s]
	return ok && len(allowed) == 0
}

// CheckInstrument is a post-dated check attached to an installment sale.
// Status changes go through the transition table only.
type CheckInstrument struct {
	CheckID     string          `json:"checkID"`
	SaleID      string          `json:"saleID"`
	CheckNumber string          `json:"checkNumber"`
	BankName    string          `json:"bankName"`
	DueDate     time.Time       `json:"dueDate"`
	Amount      decimal.Decimal `json:"amount"`
	Status      CheckStatus     `json:"status"`
	AuditFields
}
