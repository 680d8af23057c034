package services

import (
	"context"

	"github.com/mobifroosh/shop_backend/internal/core/domain"
	"github.com/mobifroosh/shop_backend/internal/dto"
)

// SaleSvcFacade records single-item cash/credit sales.
type SaleSvcFacade interface {
	// RecordSale validates the request, resolves the unit price from the
	// catalog, and executes the atomic unit (inventory mutation, sale row,
	// conditional customer debit).
	RecordSale(ctx context.Context, req dto.RecordSaleRequest, creatorUserID string) (*domain.SaleRecord, error)

	GetSaleByID(ctx context.Context, saleID string) (*domain.SaleRecord, error)
}

// InventorySvcFacade is the minimal catalog surface the engine exposes so it
// can be exercised end to end; full catalog management lives elsewhere.
type InventorySvcFacade interface {
	CreateItem(ctx context.Context, req dto.CreateItemRequest, creatorUserID string) (*domain.Item, error)
	GetItem(ctx context.Context, kind domain.ItemKind, itemID string) (*domain.Item, error)
}
