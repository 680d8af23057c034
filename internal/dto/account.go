package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mobifroosh/shop_backend/internal/core/domain"
)

// CreateAccountRequest defines the data needed to register a party's account.
type CreateAccountRequest struct {
	PartyName string             `json:"partyName" binding:"required"`
	Kind      domain.AccountKind `json:"kind" binding:"required,oneof=CUSTOMER PARTNER"`
	Phone     string             `json:"phone"` // Optional
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      string             `json:"accountID"`
	PartyName      string             `json:"partyName"`
	Kind           domain.AccountKind `json:"kind"`
	Phone          string             `json:"phone"`
	CurrentBalance decimal.Decimal    `json:"currentBalance"`
	CreatedAt      time.Time          `json:"createdAt"`
	CreatedBy      string             `json:"createdBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		PartyName:      acc.PartyName,
		Kind:           acc.Kind,
		Phone:          acc.Phone,
		CurrentBalance: acc.CurrentBalance,
		CreatedAt:      acc.CreatedAt,
		CreatedBy:      acc.CreatedBy,
	}
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToListAccountsResponse converts domain accounts to the list DTO.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	resp := ListAccountsResponse{Accounts: make([]AccountResponse, len(accounts))}
	for i := range accounts {
		resp.Accounts[i] = ToAccountResponse(&accounts[i])
	}
	return resp
}
