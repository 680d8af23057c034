package repositories

import (
	"context"
	"time"

	"github.com/mobifroosh/shop_backend/internal/core/domain"
)

// RepairRepositoryFacade persists repair jobs. CompleteRepair is one atomic
// unit: the status flip and the customer-debit / technician-credit ledger
// pair either all commit or none do.
type RepairRepositoryFacade interface {
	SaveRepair(ctx context.Context, repair domain.Repair) error

	FindRepairByID(ctx context.Context, repairID string) (*domain.Repair, error)

	// CompleteRepair flips the repair to DELIVERED under a row lock and
	// posts the ledger entries in the same transaction. technicianEntry is
	// nil for zero-wage jobs.
	CompleteRepair(ctx context.Context, repairID string, deliveredAt time.Time, customerEntry domain.LedgerEntry, technicianEntry *domain.LedgerEntry, userID string, now time.Time) (*domain.Repair, error)
}
