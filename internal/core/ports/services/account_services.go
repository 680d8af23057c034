package services

import (
	"context"

	"github.com/mobifroosh/shop_backend/internal/core/domain"
	"github.com/mobifroosh/shop_backend/internal/dto"
)

// AccountSvcFacade manages the ledger subjects (customers and partners).
// Accounts are created implicitly when a party is registered and are never
// deleted while ledger entries reference them.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, kind domain.AccountKind, limit, offset int) ([]domain.Account, error)
}
