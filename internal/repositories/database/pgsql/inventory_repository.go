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

type PgxInventoryRepository struct {
	BaseRepository
}

// newPgxInventoryRepository creates the engine's view of the item catalog.
func newPgxInventoryRepository(pool *pgxpool.Pool) *PgxInventoryRepository {
	return &PgxInventoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InventoryCatalog = (*PgxInventoryRepository)(nil)

const itemColumns = `item_id, kind, name, sale_price, stock, status, sold_at, created_at, created_by, last_updated_at, last_updated_by`

// SaveItem persists a new catalog row.
func (r *PgxInventoryRepository) SaveItem(ctx context.Context, item domain.Item) error {
	m := mapping.ToModelItem(item)
	query := `
		INSERT INTO items (item_id, kind, name, sale_price, stock, status, sold_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID,
		m.Kind,
		m.Name,
		m.SalePrice,
		m.Stock,
		m.Status,
		m.SoldAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert item "+m.ItemID, err)
	}
	return nil
}

// FindItem retrieves an item without locking.
func (r *PgxInventoryRepository) FindItem(ctx context.Context, kind domain.ItemKind, itemID string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = $1 AND kind = $2;`
	return r.queryItem(ctx, r.Pool, query, itemID, string(kind))
}

// FindItemForUpdate retrieves the item and locks its row inside the caller's
// transaction.
func (r *PgxInventoryRepository) FindItemForUpdate(ctx context.Context, tx pgx.Tx, kind domain.ItemKind, itemID string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = $1 AND kind = $2 FOR UPDATE;`
	return r.queryItem(ctx, tx, query, itemID, string(kind))
}

// MarkSoldInTx flips a unique-unit item to a sold-ish status and stamps its
// sale date.
func (r *PgxInventoryRepository) MarkSoldInTx(ctx context.Context, tx pgx.Tx, kind domain.ItemKind, itemID string, status domain.ItemStatus, saleDate time.Time, userID string, now time.Time) error {
	query := `
		UPDATE items
		SET status = $3, sold_at = $4, last_updated_at = $5, last_updated_by = $6
		WHERE item_id = $1 AND kind = $2;
	`
	cmdTag, err := tx.Exec(ctx, query, itemID, string(kind), string(status), saleDate, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark item "+itemID+" sold", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("item " + itemID + " not found for sale mutation")
	}
	return nil
}

// DecrementStockInTx reduces a bulk item's stock. The guard in the WHERE
// clause catches stock that became insufficient after the caller's check.
func (r *PgxInventoryRepository) DecrementStockInTx(ctx context.Context, tx pgx.Tx, itemID string, quantity int64, userID string, now time.Time) error {
	query := `
		UPDATE items
		SET stock = stock - $2, last_updated_at = $3, last_updated_by = $4
		WHERE item_id = $1 AND stock >= $2;
	`
	cmdTag, err := tx.Exec(ctx, query, itemID, quantity, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to decrement stock for item "+itemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: insufficient stock for item %s", apperrors.ErrConflict, itemID)
	}
	return nil
}

// rowQuerier is satisfied by both pgxpool.Pool and pgx.Tx.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *PgxInventoryRepository) queryItem(ctx context.Context, q rowQuerier, query string, args ...any) (*domain.Item, error) {
	var m models.Item
	err := q.QueryRow(ctx, query, args...).Scan(
		&m.ItemID,
		&m.Kind,
		&m.Name,
		&m.SalePrice,
		&m.Stock,
		&m.Status,
		&m.SoldAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find item", err)
	}
	item := mapping.ToDomainItem(m)
	return &item, nil
}
