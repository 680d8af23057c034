package repositories

import (
	"context"

	"github.com/mobifroosh/shop_backend/internal/core/domain"
)

// SaleRepositoryFacade persists plain cash/credit sales. RecordSale is one
// atomic unit: locked availability re-check, inventory mutation, sale row
// insert, and the optional ledger posting either all commit or none do.
type SaleRepositoryFacade interface {
	// RecordSale executes the atomic unit. ledgerEntry is nil for cash or
	// guest sales.
	RecordSale(ctx context.Context, sale domain.SaleRecord, ledgerEntry *domain.LedgerEntry) (*domain.SaleRecord, error)

	// FindSaleByID retrieves a sale record.
	FindSaleByID(ctx context.Context, saleID string) (*domain.SaleRecord, error)
}
