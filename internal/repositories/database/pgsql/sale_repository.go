package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mobifroosh/shop_backend/internal/apperrors"
	"github.com/mobifroosh/shop_backend/internal/core/domain"
	portsrepo "github.com/mobifroosh/shop_backend/internal/core/ports/repositories"
	"github.com/mobifroosh/shop_backend/internal/models"
	"github.com/mobifroosh/shop_backend/internal/utils/mapping"
)

type PgxSaleRepository struct {
	BaseRepository
	inventoryRepo portsrepo.InventoryCatalog
	ledgerRepo    portsrepo.LedgerRepositoryFacade
}

// newPgxSaleRepository creates a new repository for plain cash/credit sales.
func newPgxSaleRepository(pool *pgxpool.Pool, inventoryRepo portsrepo.InventoryCatalog, ledgerRepo portsrepo.LedgerRepositoryFacade) *PgxSaleRepository {
	return &PgxSaleRepository{
		BaseRepository: BaseRepository{Pool: pool},
		inventoryRepo:  inventoryRepo,
		ledgerRepo:     ledgerRepo,
	}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

// RecordSale executes the sale's atomic unit: a locked availability re-check,
// the inventory mutation, the sale row insert, and the optional customer
// debit. Any failure rolls the whole unit back.
func (r *PgxSaleRepository) RecordSale(ctx context.Context, sale domain.SaleRecord, ledgerEntry *domain.LedgerEntry) (*domain.SaleRecord, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Ignored once committed

	// Re-check availability under the row lock; the service's earlier read
	// was unlocked and may have raced another writer.
	item, err := r.inventoryRepo.FindItemForUpdate(ctx, tx, sale.ItemKind, sale.ItemID)
	if err != nil {
		return nil, err
	}

	if sale.ItemKind.IsUniqueUnit() {
		if item.Status != domain.ItemAvailable {
			return nil, fmt.Errorf("%w: item %s is not available (status %s)", apperrors.ErrConflict, sale.ItemID, item.Status)
		}
		if err := r.inventoryRepo.MarkSoldInTx(ctx, tx, sale.ItemKind, sale.ItemID, domain.ItemSold, sale.SaleDate, sale.CreatedBy, sale.CreatedAt); err != nil {
			return nil, err
		}
	} else {
		if item.Stock < sale.Quantity {
			return nil, fmt.Errorf("%w: insufficient stock for item %s (%d < %d)", apperrors.ErrConflict, sale.ItemID, item.Stock, sale.Quantity)
		}
		if err := r.inventoryRepo.DecrementStockInTx(ctx, tx, sale.ItemID, sale.Quantity, sale.CreatedBy, sale.CreatedAt); err != nil {
			return nil, err
		}
	}

	m := mapping.ToModelSaleRecord(sale)
	_, err = tx.Exec(ctx, `
		INSERT INTO sale_records (sale_id, item_kind, item_id, quantity, unit_price, discount, net_total, payment_method, customer_id, sale_date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`,
		m.SaleID,
		m.ItemKind,
		m.ItemID,
		m.Quantity,
		m.UnitPrice,
		m.Discount,
		m.NetTotal,
		m.PaymentMethod,
		nullIfEmpty(m.CustomerID),
		m.SaleDate,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert sale record "+m.SaleID, err)
	}

	if ledgerEntry != nil {
		if _, err := r.ledgerRepo.PostEntryInTx(ctx, tx, *ledgerEntry); err != nil {
			return nil, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &sale, nil
}

// FindSaleByID retrieves a sale record.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.SaleRecord, error) {
	query := `
		SELECT sale_id, item_kind, item_id, quantity, unit_price, discount, net_total, payment_method, customer_id, sale_date, created_at, created_by
		FROM sale_records
		WHERE sale_id = $1;
	`
	var m models.SaleRecord
	var customerID sql.NullString
	err := r.Pool.QueryRow(ctx, query, saleID).Scan(
		&m.SaleID,
		&m.ItemKind,
		&m.ItemID,
		&m.Quantity,
		&m.UnitPrice,
		&m.Discount,
		&m.NetTotal,
		&m.PaymentMethod,
		&customerID,
		&m.SaleDate,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find sale record "+saleID, err)
	}
	if customerID.Valid {
		m.CustomerID = customerID.String
	}

	s := mapping.ToDomainSaleRecord(m)
	return &s, nil
}
