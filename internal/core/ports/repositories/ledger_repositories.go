package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/mobifroosh/shop_backend/internal/core/domain"
)

// LedgerReader defines read operations for ledger entries.
type LedgerReader interface {
	// ListEntriesByAccountID returns the account's entries oldest first,
	// keyset-paginated on the insertion sequence.
	ListEntriesByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// LedgerWriter defines the posting operations. Entries are append-only:
// there is no update or delete, corrections are offsetting posts.
type LedgerWriter interface {
	// PostEntry appends one entry in its own transaction: it locks the
	// account, computes the new balance from the prior entry, inserts the
	// row, and updates the denormalized account balance.
	PostEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error)

	// PostEntryInTx is PostEntry inside a caller-owned transaction, used by
	// the sale, installment, and repair atomic units.
	PostEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) (*domain.LedgerEntry, error)
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
