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

// repairService implements the RepairSvcFacade interface.
type repairService struct {
	BaseService
	repairRepo  portsrepo.RepairRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewRepairService creates a new repair service.
func NewRepairService(repairRepo portsrepo.RepairRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.RepairSvcFacade {
	return &repairService{
		repairRepo:  repairRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.RepairSvcFacade = (*repairService)(nil)

func (s *repairService) CreateRepair(ctx context.Context, req dto.CreateRepairRequest, creatorUserID string) (*domain.Repair, error) {
	if !req.Price.IsPositive() {
		return nil, fmt.Errorf("%w: repair price must be positive", apperrors.ErrValidation)
	}
	if req.Wage.IsNegative() {
		return nil, fmt.Errorf("%w: technician wage must not be negative", apperrors.ErrValidation)
	}

	customer, err := s.accountRepo.FindAccountByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer.Kind != domain.Customer {
		return nil, fmt.Errorf("%w: account %s is not a customer", apperrors.ErrValidation, req.CustomerID)
	}
	technician, err := s.accountRepo.FindAccountByID(ctx, req.TechnicianID)
	if err != nil {
		return nil, err
	}
	if technician.Kind != domain.Partner {
		return nil, fmt.Errorf("%w: account %s is not a partner", apperrors.ErrValidation, req.TechnicianID)
	}

	now := time.Now()
	receivedAt := now
	if req.ReceivedAt != nil {
		receivedAt = *req.ReceivedAt
	}

	repair := domain.Repair{
		RepairID:     uuid.NewString(),
		CustomerID:   req.CustomerID,
		TechnicianID: req.TechnicianID,
		Device:       req.Device,
		Problem:      req.Problem,
		Price:        req.Price,
		Wage:         req.Wage,
		Status:       domain.RepairReceived,
		ReceivedAt:   receivedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.repairRepo.SaveRepair(ctx, repair); err != nil {
		s.LogError(ctx, err, "Failed to save repair", slog.String("repair_id", repair.RepairID))
		return nil, fmt.Errorf("failed to save repair: %w", err)
	}

	s.LogInfo(ctx, "Repair registered",
		slog.String("repair_id", repair.RepairID),
		slog.String("device", repair.Device))
	return &repair, nil
}

func (s *repairService) GetRepairByID(ctx context.Context, repairID string) (*domain.Repair, error) {
	return s.repairRepo.FindRepairByID(ctx, repairID)
}

func (s *repairService) CompleteRepair(ctx context.Context, repairID string, req dto.CompleteRepairRequest, userID string) (*domain.Repair, error) {
	repair, err := s.repairRepo.FindRepairByID(ctx, repairID)
	if err != nil {
		return nil, err
	}
	if repair.Status == domain.RepairDelivered {
		return nil, fmt.Errorf("%w: repair %s is already delivered", apperrors.ErrConflict, repairID)
	}

	now := time.Now()
	deliveredAt := now
	if req.DeliveredAt != nil {
		deliveredAt = *req.DeliveredAt
	}

	customerEntry := domain.LedgerEntry{
		EntryID:       uuid.NewString(),
		AccountID:     repair.CustomerID,
		EntryDate:     deliveredAt,
		Description:   fmt.Sprintf("Repair of %s", repair.Device),
		Debit:         repair.Price,
		Credit:        decimal.Zero,
		ReferenceKind: domain.RefRepair,
		ReferenceID:   repairID,
		CreatedAt:     now,
		CreatedBy:     userID,
	}

	var technicianEntry *domain.LedgerEntry
	if repair.Wage.IsPositive() {
		technicianEntry = &domain.LedgerEntry{
			EntryID:       uuid.NewString(),
			AccountID:     repair.TechnicianID,
			EntryDate:     deliveredAt,
			Description:   fmt.Sprintf("Wage for repair of %s", repair.Device),
			Debit:         decimal.Zero,
			Credit:        repair.Wage,
			ReferenceKind: domain.RefRepair,
			ReferenceID:   repairID,
			CreatedAt:     now,
			CreatedBy:     userID,
		}
	}

	completed, err := s.repairRepo.CompleteRepair(ctx, repairID, deliveredAt, customerEntry, technicianEntry, userID, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to complete repair", slog.String("repair_id", repairID))
		return nil, err
	}

	s.LogInfo(ctx, "Repair delivered",
		slog.String("repair_id", repairID),
		slog.String("price", repair.Price.String()),
		slog.String("wage", repair.Wage.String()))
	return completed, nil
}
