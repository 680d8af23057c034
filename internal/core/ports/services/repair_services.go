package services

import (
	"context"

	"github.com/mobifroosh/shop_backend/internal/core/domain"
	"github.com/mobifroosh/shop_backend/internal/dto"
)

// RepairSvcFacade manages device repair jobs. Completion is the one payment
// finalization that posts to the ledger (customer debit, technician credit).
type RepairSvcFacade interface {
	CreateRepair(ctx context.Context, req dto.CreateRepairRequest, creatorUserID string) (*domain.Repair, error)
	GetRepairByID(ctx context.Context, repairID string) (*domain.Repair, error)
	CompleteRepair(ctx context.Context, repairID string, req dto.CompleteRepairRequest, userID string) (*domain.Repair, error)
}
