package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mobifroosh/shop_backend/internal/apperrors"
	"github.com/mobifroosh/shop_backend/internal/core/domain"
	portsrepo "github.com/mobifroosh/shop_backend/internal/core/ports/repositories"
	portssvc "github.com/mobifroosh/shop_backend/internal/core/ports/services"
	"github.com/mobifroosh/shop_backend/internal/dto"
)

// saleService implements the SaleSvcFacade interface. It resolves prices and
// validates the request up front; availability is re-checked under a row
// lock inside the repository's atomic unit, so a stale read here can reject
// early but never oversell.
type saleService struct {
	BaseService
	saleRepo      portsrepo.SaleRepositoryFacade
	inventoryRepo portsrepo.InventoryCatalog
	accountRepo   portsrepo.AccountRepositoryFacade
}

// NewSaleService creates a new sale service.
func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade, inventoryRepo portsrepo.InventoryCatalog, accountRepo portsrepo.AccountRepositoryFacade) portssvc.SaleSvcFacade {
	return &saleService{
		saleRepo:      saleRepo,
		inventoryRepo: inventoryRepo,
		accountRepo:   accountRepo,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) RecordSale(ctx context.Context, req dto.RecordSaleRequest, creatorUserID string) (*domain.SaleRecord, error) {
	if req.ItemKind.IsUniqueUnit() && req.Quantity != 1 {
		return nil, fmt.Errorf("%w: %s items sell one unit at a time", apperrors.ErrValidation, req.ItemKind)
	}

	item, err := s.inventoryRepo.FindItem(ctx, req.ItemKind, req.ItemID)
	if err != nil {
		return nil, err
	}

	// Resolve the unit price: a negotiated override wins, otherwise the
	// catalog price must be configured.
	var unitPrice decimal.Decimal
	switch {
	case req.UnitPriceOverride != nil:
		unitPrice = *req.UnitPriceOverride
	case item.SalePrice != nil:
		unitPrice = *item.SalePrice
	default:
		return nil, fmt.Errorf("%w: item %s has no sale price configured", apperrors.ErrValidation, req.ItemID)
	}
	if !unitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: unit price must be positive", apperrors.ErrValidation)
	}

	gross := unitPrice.Mul(decimal.NewFromInt(req.Quantity))
	if req.Discount.IsNegative() {
		return nil, fmt.Errorf("%w: discount must not be negative", apperrors.ErrValidation)
	}
	if req.Discount.GreaterThan(gross) {
		return nil, fmt.Errorf("%w: discount %s exceeds gross total %s", apperrors.ErrValidation, req.Discount, gross)
	}
	netTotal := gross.Sub(req.Discount)

	if req.PaymentMethod == domain.Credit && req.CustomerID == "" {
		return nil, fmt.Errorf("%w: credit sales require a customer", apperrors.ErrValidation)
	}
	if req.CustomerID != "" {
		customer, err := s.accountRepo.FindAccountByID(ctx, req.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer.Kind != domain.Customer {
			return nil, fmt.Errorf("%w: account %s is not a customer", apperrors.ErrValidation, req.CustomerID)
		}
	}

	now := time.Now()
	saleDate := now
	if req.SaleDate != nil {
		saleDate = *req.SaleDate
	}

	sale := domain.SaleRecord{
		SaleID:        uuid.NewString(),
		ItemKind:      req.ItemKind,
		ItemID:        req.ItemID,
		Quantity:      req.Quantity,
		UnitPrice:     unitPrice,
		Discount:      req.Discount,
		NetTotal:      netTotal,
		PaymentMethod: req.PaymentMethod,
		CustomerID:    req.CustomerID,
		SaleDate:      saleDate,
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
	}

	// Credit sales debit the customer for the net total in the same atomic
	// unit as the inventory mutation. Cash sales leave the ledger alone.
	var ledgerEntry *domain.LedgerEntry
	if req.PaymentMethod == domain.Credit && netTotal.IsPositive() {
		ledgerEntry = &domain.LedgerEntry{
			EntryID:       uuid.NewString(),
			AccountID:     req.CustomerID,
			EntryDate:     saleDate,
			Description:   fmt.Sprintf("Credit sale of %s", item.Name),
			Debit:         netTotal,
			Credit:        decimal.Zero,
			ReferenceKind: domain.RefSale,
			ReferenceID:   sale.SaleID,
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
		}
	}

	saved, err := s.saleRepo.RecordSale(ctx, sale, ledgerEntry)
	if err != nil {
		s.LogError(ctx, err, "Failed to record sale",
			slog.String("item_id", req.ItemID),
			slog.String("payment_method", string(req.PaymentMethod)))
		return nil, err
	}

	s.LogInfo(ctx, "Sale recorded",
		slog.String("sale_id", saved.SaleID),
		slog.String("item_id", saved.ItemID),
		slog.String("net_total", saved.NetTotal.String()))
	return saved, nil
}

func (s *saleService) GetSaleByID(ctx context.Context, saleID string) (*domain.SaleRecord, error) {
	return s.saleRepo.FindSaleByID(ctx, saleID)
}
