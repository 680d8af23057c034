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

// ledgerService implements the LedgerSvcFacade interface. Balance arithmetic
// lives in the repository's posting transaction; this layer validates the
// request shape and assembles the entry.
type ledgerService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryFacade
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(accountRepo portsrepo.AccountRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// validatePostingAmounts checks the debit/credit pair: both non-negative and
// not both zero. A zero-impact entry would still burn a sequence slot and
// confuse the statement.
func validatePostingAmounts(debit, credit decimal.Decimal) error {
	if debit.IsNegative() {
		return fmt.Errorf("%w: debit must not be negative", apperrors.ErrValidation)
	}
	if credit.IsNegative() {
		return fmt.Errorf("%w: credit must not be negative", apperrors.ErrValidation)
	}
	if debit.IsZero() && credit.IsZero() {
		return fmt.Errorf("%w: debit and credit must not both be zero", apperrors.ErrValidation)
	}
	return nil
}

func (s *ledgerService) PostEntry(ctx context.Context, accountID string, req dto.PostLedgerEntryRequest, creatorUserID string) (*domain.LedgerEntry, error) {
	if err := validatePostingAmounts(req.Debit, req.Credit); err != nil {
		s.LogError(ctx, err, "Rejected ledger posting", slog.String("account_id", accountID))
		return nil, err
	}

	now := time.Now()
	entryDate := now
	if req.EntryDate != nil {
		entryDate = *req.EntryDate
	}
	referenceKind := req.ReferenceKind
	if referenceKind == "" && req.ReferenceID == "" {
		referenceKind = domain.RefManual
	}

	entry := domain.LedgerEntry{
		EntryID:       uuid.NewString(),
		AccountID:     accountID,
		EntryDate:     entryDate,
		Description:   req.Description,
		Debit:         req.Debit,
		Credit:        req.Credit,
		ReferenceKind: referenceKind,
		ReferenceID:   req.ReferenceID,
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
	}

	saved, err := s.ledgerRepo.PostEntry(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to post ledger entry", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Ledger entry posted",
		slog.String("account_id", accountID),
		slog.String("entry_id", saved.EntryID),
		slog.Int64("seq", saved.Seq))
	return saved, nil
}

func (s *ledgerService) GetCurrentBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.CurrentBalance, nil
}

func (s *ledgerService) ListEntries(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	return s.ledgerRepo.ListEntriesByAccountID(ctx, accountID, limit, nextToken)
}
