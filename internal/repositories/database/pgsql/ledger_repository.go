package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mobifroosh/shop_backend/internal/apperrors"
	"github.com/mobifroosh/shop_backend/internal/core/domain"
	portsrepo "github.com/mobifroosh/shop_backend/internal/core/ports/repositories"
	"github.com/mobifroosh/shop_backend/internal/models"
	"github.com/mobifroosh/shop_backend/internal/utils/mapping"
	"github.com/mobifroosh/shop_backend/internal/utils/pagination"
)

type PgxLedgerRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// newPgxLedgerRepository creates a new repository for the append-only entry log.
func newPgxLedgerRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) *PgxLedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const ledgerColumns = `entry_id, account_id, seq, entry_date, description, debit, credit, balance, reference_kind, reference_id, created_at, created_by`

// PostEntry appends one entry in its own transaction.
func (r *PgxLedgerRepository) PostEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Ignored once committed

	posted, err := r.PostEntryInTx(ctx, tx, entry)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return posted, nil
}

// PostEntryInTx appends one entry inside a caller-owned transaction. It locks
// the account row, reads the latest entry by insertion sequence (never by
// entry date, which may be backdated), applies the sign rule for the account
// kind, inserts the new entry, and refreshes the denormalized account balance.
func (r *PgxLedgerRepository) PostEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	account, err := r.accountRepo.FindAccountByIDForUpdate(ctx, tx, entry.AccountID)
	if err != nil {
		return nil, err
	}

	var lastSeq int64
	lastBalance := decimal.Zero
	err = tx.QueryRow(ctx, `
		SELECT seq, balance FROM ledger_entries
		WHERE account_id = $1
		ORDER BY seq DESC
		LIMIT 1;
	`, entry.AccountID).Scan(&lastSeq, &lastBalance)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewAppError(500, "failed to read latest ledger entry for account "+entry.AccountID, err)
	}

	// The denormalized balance must match the latest entry; a mismatch means
	// the recurrence invariant has already been broken somewhere.
	if !account.CurrentBalance.Equal(lastBalance) {
		return nil, fmt.Errorf("%w: account %s balance %s diverged from latest entry balance %s",
			apperrors.ErrConsistency, entry.AccountID, account.CurrentBalance, lastBalance)
	}

	delta, err := domain.SignedDelta(account.Kind, entry.Debit, entry.Credit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConsistency, err)
	}

	entry.Seq = lastSeq + 1
	entry.Balance = lastBalance.Add(delta)

	m := mapping.ToModelLedgerEntry(entry)
	_, err = tx.Exec(ctx, `
		INSERT INTO ledger_entries (entry_id, account_id, seq, entry_date, description, debit, credit, balance, reference_kind, reference_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`,
		m.EntryID,
		m.AccountID,
		m.Seq,
		m.EntryDate,
		m.Description,
		m.Debit,
		m.Credit,
		m.Balance,
		nullIfEmpty(m.ReferenceKind),
		nullIfEmpty(m.ReferenceID),
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert ledger entry "+m.EntryID, err)
	}

	if err := r.accountRepo.UpdateAccountBalanceInTx(ctx, tx, entry.AccountID, entry.Balance, entry.CreatedBy, entry.CreatedAt); err != nil {
		return nil, err
	}

	return &entry, nil
}

// ListEntriesByAccountID retrieves the account's entries oldest first using
// keyset pagination on the insertion sequence.
func (r *PgxLedgerRepository) ListEntriesByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to determine whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE account_id = $1`
	orderByClause := `ORDER BY seq ASC`

	var rows pgx.Rows
	var err error
	args := []interface{}{accountID}

	if nextToken != nil && *nextToken != "" {
		afterSeq, decodeErr := pagination.DecodeSeqToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, afterSeq)
		query := baseQuery + ` AND seq > $2 ` + orderByClause + ` LIMIT $` + strconv.Itoa(len(args)+1) + `;`
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + ` ` + orderByClause + ` LIMIT $` + strconv.Itoa(len(args)+1) + `;`
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}

	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query ledger entries for account "+accountID, err)
	}
	defer rows.Close()

	entries := make([]models.LedgerEntry, 0, fetchLimit)
	for rows.Next() {
		m, err := scanLedgerEntryRow(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan ledger entry row for account "+accountID, err)
		}
		entries = append(entries, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating ledger entry rows for account "+accountID, err)
	}

	var nextTokenVal *string
	results := entries
	if len(entries) > limit {
		token := pagination.EncodeSeqToken(entries[limit-1].Seq)
		nextTokenVal = &token
		results = entries[:limit]
	}

	return mapping.ToDomainLedgerEntrySlice(results), nextTokenVal, nil
}

// scanLedgerEntryRow scans one ledger_entries row, handling nullables.
func scanLedgerEntryRow(row pgx.Row) (*models.LedgerEntry, error) {
	var m models.LedgerEntry
	var refKind, refID sql.NullString
	err := row.Scan(
		&m.EntryID,
		&m.AccountID,
		&m.Seq,
		&m.EntryDate,
		&m.Description,
		&m.Debit,
		&m.Credit,
		&m.Balance,
		&refKind,
		&refID,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	if refKind.Valid {
		m.ReferenceKind = refKind.String
	}
	if refID.Valid {
		m.ReferenceID = refID.String
	}
	return &m, nil
}
