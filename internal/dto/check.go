package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mobifroosh/shop_backend/internal/core/domain"
)

// SetCheckStatusRequest moves a check instrument to a new lifecycle state.
type SetCheckStatusRequest struct {
	Status domain.CheckStatus `json:"status" binding:"required,oneof=HELD IN_COLLECTION CLEARED BOUNCED VOIDED"`
}

// CheckResponse mirrors domain.CheckInstrument for API output.
type CheckResponse struct {
	CheckID     string             `json:"checkID"`
	SaleID      string             `json:"saleID"`
	CheckNumber string             `json:"checkNumber"`
	BankName    string             `json:"bankName"`
	DueDate     time.Time          `json:"dueDate"`
	Amount      decimal.Decimal    `json:"amount"`
	Status      domain.CheckStatus `json:"status"`
}

// ToCheckResponse converts a domain check to its response DTO.
func ToCheckResponse(c *domain.CheckInstrument) CheckResponse {
	return CheckResponse{
		CheckID:     c.CheckID,
		SaleID:      c.SaleID,
		CheckNumber: c.CheckNumber,
		BankName:    c.BankName,
		DueDate:     c.DueDate,
		Amount:      c.Amount,
		Status:      c.Status,
	}
}
