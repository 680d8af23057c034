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

// accountService implements the AccountSvcFacade interface.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	now := time.Now()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		PartyName:      req.PartyName,
		Kind:           req.Kind,
		Phone:          req.Phone,
		CurrentBalance: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("kind", string(account.Kind)))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, kind domain.AccountKind, limit, offset int) ([]domain.Account, error) {
	if kind != "" && kind != domain.Customer && kind != domain.Partner {
		return nil, fmt.Errorf("%w: unknown account kind '%s'", apperrors.ErrValidation, kind)
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.accountRepo.ListAccounts(ctx, kind, limit, offset)
}
