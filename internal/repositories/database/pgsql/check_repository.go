package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mobifroosh/shop_backend/internal/apperrors"
	"github.com/mobifroosh/shop_backend/internal/core/domain"
	portsrepo "github.com/mobifroosh/shop_backend/internal/core/ports/repositories"
	"github.com/mobifroosh/shop_backend/internal/models"
	"github.com/mobifroosh/shop_backend/internal/utils/mapping"
)

type PgxCheckRepository struct {
	BaseRepository
}

// newPgxCheckRepository creates a new repository for check instruments.
func newPgxCheckRepository(pool *pgxpool.Pool) *PgxCheckRepository {
	return &PgxCheckRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CheckRepositoryFacade = (*PgxCheckRepository)(nil)

const checkColumns = `check_id, sale_id, check_number, bank_name, due_date, amount, status, created_at, created_by, last_updated_at, last_updated_by`

// FindCheckByID retrieves one check instrument.
func (r *PgxCheckRepository) FindCheckByID(ctx context.Context, checkID string) (*domain.CheckInstrument, error) {
	query := `SELECT ` + checkColumns + ` FROM check_instruments WHERE check_id = $1;`
	m, err := scanCheckRow(r.Pool.QueryRow(ctx, query, checkID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find check "+checkID, err)
	}
	c := mapping.ToDomainCheckInstrument(*m)
	return &c, nil
}

// FindChecksBySaleID returns the sale's checks ordered by due date.
func (r *PgxCheckRepository) FindChecksBySaleID(ctx context.Context, saleID string) ([]domain.CheckInstrument, error) {
	query := `SELECT ` + checkColumns + ` FROM check_instruments WHERE sale_id = $1 ORDER BY due_date, check_id;`
	rows, err := r.Pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query checks for sale "+saleID, err)
	}
	defer rows.Close()

	checks := []models.CheckInstrument{}
	for rows.Next() {
		m, err := scanCheckRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan check row for sale "+saleID, err)
		}
		checks = append(checks, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating check rows for sale "+saleID, err)
	}
	return mapping.ToDomainCheckInstrumentSlice(checks), nil
}

// UpdateCheckStatus moves the check to newStatus if the transition table
// allows it. The row lock keeps the read-validate-write race-free.
func (r *PgxCheckRepository) UpdateCheckStatus(ctx context.Context, checkID string, newStatus domain.CheckStatus, userID string, now time.Time) (*domain.CheckInstrument, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Ignored once committed

	query := `SELECT ` + checkColumns + ` FROM check_instruments WHERE check_id = $1 FOR UPDATE;`
	m, err := scanCheckRow(tx.QueryRow(ctx, query, checkID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock check "+checkID, err)
	}

	current := domain.CheckStatus(m.Status)
	if !domain.CanTransitionCheck(current, newStatus) {
		return nil, fmt.Errorf("%w: check %s cannot move from %s to %s", apperrors.ErrConflict, checkID, current, newStatus)
	}

	_, err = tx.Exec(ctx, `
		UPDATE check_instruments
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE check_id = $1;
	`, checkID, string(newStatus), now, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update status for check "+checkID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	m.Status = string(newStatus)
	m.LastUpdatedAt = now
	m.LastUpdatedBy = userID
	c := mapping.ToDomainCheckInstrument(*m)
	return &c, nil
}

// scanCheckRow scans one check_instruments row.
func scanCheckRow(row pgx.Row) (*models.CheckInstrument, error) {
	var m models.CheckInstrument
	err := row.Scan(
		&m.CheckID,
		&m.SaleID,
		&m.CheckNumber,
		&m.BankName,
		&m.DueDate,
		&m.Amount,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
