package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mobifroosh/shop_backend/internal/core/domain"
)

// InventoryCatalog is the engine's narrow view of the item catalog: price and
// stock reads plus the sale-time mutations, all callable inside the caller's
// transaction. Catalog CRUD is owned elsewhere.
type InventoryCatalog interface {
	// FindItem retrieves an item without locking, for price lookups and
	// early validation.
	FindItem(ctx context.Context, kind domain.ItemKind, itemID string) (*domain.Item, error)

	// FindItemForUpdate retrieves the item and locks its row inside the
	// caller's transaction, so availability re-checks and mutations are
	// race-free.
	FindItemForUpdate(ctx context.Context, tx pgx.Tx, kind domain.ItemKind, itemID string) (*domain.Item, error)

	// MarkSoldInTx flips a unique-unit item to the given sold-ish status and
	// stamps its sale date.
	MarkSoldInTx(ctx context.Context, tx pgx.Tx, kind domain.ItemKind, itemID string, status domain.ItemStatus, saleDate time.Time, userID string, now time.Time) error

	// DecrementStockInTx reduces a bulk item's stock.
	DecrementStockInTx(ctx context.Context, tx pgx.Tx, itemID string, quantity int64, userID string, now time.Time) error

	// SaveItem persists a new catalog row (minimal surface so the engine is
	// exercisable end to end).
	SaveItem(ctx context.Context, item domain.Item) error
}
