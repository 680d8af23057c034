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

type PgxRepairRepository struct {
	BaseRepository
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// newPgxRepairRepository creates a new repository for repair jobs.
func newPgxRepairRepository(pool *pgxpool.Pool, ledgerRepo portsrepo.LedgerRepositoryFacade) *PgxRepairRepository {
	return &PgxRepairRepository{
		BaseRepository: BaseRepository{Pool: pool},
		ledgerRepo:     ledgerRepo,
	}
}

var _ portsrepo.RepairRepositoryFacade = (*PgxRepairRepository)(nil)

const repairColumns = `repair_id, customer_id, technician_id, device, problem, price, wage, status, received_at, delivered_at, created_at, created_by, last_updated_at, last_updated_by`

// SaveRepair persists a new repair job.
func (r *PgxRepairRepository) SaveRepair(ctx context.Context, repair domain.Repair) error {
	m := mapping.ToModelRepair(repair)
	query := `
		INSERT INTO repairs (` + repairColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RepairID,
		m.CustomerID,
		m.TechnicianID,
		m.Device,
		nullIfEmpty(m.Problem),
		m.Price,
		m.Wage,
		m.Status,
		m.ReceivedAt,
		m.DeliveredAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert repair "+m.RepairID, err)
	}
	return nil
}

// FindRepairByID retrieves one repair job.
func (r *PgxRepairRepository) FindRepairByID(ctx context.Context, repairID string) (*domain.Repair, error) {
	query := `SELECT ` + repairColumns + ` FROM repairs WHERE repair_id = $1;`
	m, err := scanRepairRow(r.Pool.QueryRow(ctx, query, repairID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find repair "+repairID, err)
	}
	rep := mapping.ToDomainRepair(*m)
	return &rep, nil
}

// CompleteRepair flips the repair to DELIVERED and posts the customer-debit /
// technician-credit pair, all in one transaction.
func (r *PgxRepairRepository) CompleteRepair(ctx context.Context, repairID string, deliveredAt time.Time, customerEntry domain.LedgerEntry, technicianEntry *domain.LedgerEntry, userID string, now time.Time) (*domain.Repair, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Ignored once committed

	query := `SELECT ` + repairColumns + ` FROM repairs WHERE repair_id = $1 FOR UPDATE;`
	m, err := scanRepairRow(tx.QueryRow(ctx, query, repairID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock repair "+repairID, err)
	}
	if domain.RepairStatus(m.Status) == domain.RepairDelivered {
		return nil, fmt.Errorf("%w: repair %s is already delivered", apperrors.ErrConflict, repairID)
	}

	if _, err := r.ledgerRepo.PostEntryInTx(ctx, tx, customerEntry); err != nil {
		return nil, err
	}
	if technicianEntry != nil {
		if _, err := r.ledgerRepo.PostEntryInTx(ctx, tx, *technicianEntry); err != nil {
			return nil, err
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE repairs
		SET status = $2, delivered_at = $3, last_updated_at = $4, last_updated_by = $5
		WHERE repair_id = $1;
	`, repairID, string(domain.RepairDelivered), deliveredAt, now, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to complete repair "+repairID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	m.Status = string(domain.RepairDelivered)
	m.DeliveredAt = &deliveredAt
	m.LastUpdatedAt = now
	m.LastUpdatedBy = userID
	rep := mapping.ToDomainRepair(*m)
	return &rep, nil
}

// scanRepairRow scans one repairs row, handling nullables.
func scanRepairRow(row pgx.Row) (*models.Repair, error) {
	var m models.Repair
	var problem *string
	err := row.Scan(
		&m.RepairID,
		&m.CustomerID,
		&m.TechnicianID,
		&m.Device,
		&problem,
		&m.Price,
		&m.Wage,
		&m.Status,
		&m.ReceivedAt,
		&m.DeliveredAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if problem != nil {
		m.Problem = *problem
	}
	return &m, nil
}
