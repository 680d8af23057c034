package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mobifroosh/shop_backend/internal/core/domain"
	"github.com/mobifroosh/shop_backend/internal/dto"
)

// LedgerSvcFacade is the append-only ledger store contract.
type LedgerSvcFacade interface {
	// PostEntry validates and appends one entry for the account, computing
	// the resulting balance under the account kind's sign rule.
	PostEntry(ctx context.Context, accountID string, req dto.PostLedgerEntryRequest, creatorUserID string) (*domain.LedgerEntry, error)

	// GetCurrentBalance returns the balance of the account's latest entry,
	// zero when none exists.
	GetCurrentBalance(ctx context.Context, accountID string) (decimal.Decimal, error)

	// ListEntries returns the account's history oldest first, restartable
	// via the returned token.
	ListEntries(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}
