package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mobifroosh/shop_backend/internal/core/domain"
)

// PostLedgerEntryRequest defines one manual debit/credit posting. At most one
// of Debit/Credit conventionally carries a value; both are allowed.
type PostLedgerEntryRequest struct {
	Description   string          `json:"description" binding:"required"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	EntryDate     *time.Time      `json:"entryDate"` // Optional; may be backdated
	ReferenceKind string          `json:"referenceKind"`
	ReferenceID   string          `json:"referenceID"`
}

// LedgerEntryResponse mirrors domain.LedgerEntry for API output.
type LedgerEntryResponse struct {
	EntryID       string          `json:"entryID"`
	AccountID     string          `json:"accountID"`
	Seq           int64           `json:"seq"`
	EntryDate     time.Time       `json:"entryDate"`
	Description   string          `json:"description"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"`
	ReferenceKind string          `json:"referenceKind,omitempty"`
	ReferenceID   string          `json:"referenceID,omitempty"`
}

// ToLedgerEntryResponse converts a domain entry to its response DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:       e.EntryID,
		AccountID:     e.AccountID,
		Seq:           e.Seq,
		EntryDate:     e.EntryDate,
		Description:   e.Description,
		Debit:         e.Debit,
		Credit:        e.Credit,
		Balance:       e.Balance,
		ReferenceKind: e.ReferenceKind,
		ReferenceID:   e.ReferenceID,
	}
}

// LedgerHistoryResponse is one page of an account's entry log, oldest first.
type LedgerHistoryResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// BalanceResponse carries an account's current running balance.
type BalanceResponse struct {
	AccountID string          `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
}
