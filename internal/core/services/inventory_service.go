package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mobifroosh/shop_backend/internal/apperrors"
	"github.com/mobifroosh/shop_backend/internal/core/domain"
	portsrepo "github.com/mobifroosh/shop_backend/internal/core/ports/repositories"
	portssvc "github.com/mobifroosh/shop_backend/internal/core/ports/services"
	"github.com/mobifroosh/shop_backend/internal/dto"
)

// inventoryService exposes the minimal catalog surface the engine needs.
type inventoryService struct {
	BaseService
	inventoryRepo portsrepo.InventoryCatalog
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(repo portsrepo.InventoryCatalog) portssvc.InventorySvcFacade {
	return &inventoryService{inventoryRepo: repo}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

func (s *inventoryService) CreateItem(ctx context.Context, req dto.CreateItemRequest, creatorUserID string) (*domain.Item, error) {
	if req.SalePrice != nil && req.SalePrice.IsNegative() {
		return nil, fmt.Errorf("%w: sale price must not be negative", apperrors.ErrValidation)
	}
	if req.Kind.IsUniqueUnit() && req.Stock != 0 {
		return nil, fmt.Errorf("%w: unique-unit items carry no stock count", apperrors.ErrValidation)
	}

	now := time.Now()
	item := domain.Item{
		ItemID:    uuid.NewString(),
		Kind:      req.Kind,
		Name:      req.Name,
		SalePrice: req.SalePrice,
		Stock:     req.Stock,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if item.Kind.IsUniqueUnit() {
		item.Status = domain.ItemAvailable
	}

	if err := s.inventoryRepo.SaveItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save item", slog.String("item_id", item.ItemID))
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	s.LogInfo(ctx, "Item created",
		slog.String("item_id", item.ItemID),
		slog.String("kind", string(item.Kind)))
	return &item, nil
}

func (s *inventoryService) GetItem(ctx context.Context, kind domain.ItemKind, itemID string) (*domain.Item, error) {
	return s.inventoryRepo.FindItem(ctx, kind, itemID)
}
