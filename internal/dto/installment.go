package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mobifroosh/shop_backend/internal/core/domain"
)

// CheckDescriptor describes one post-dated check supplied with an
// installment sale. Status defaults to HELD when omitted.
type CheckDescriptor struct {
	CheckNumber string             `json:"checkNumber" binding:"required"`
	BankName    string             `json:"bankName" binding:"required"`
	DueDate     time.Time          `json:"dueDate" binding:"required"`
	Amount      decimal.Decimal    `json:"amount" binding:"required"`
	Status      domain.CheckStatus `json:"status"` // Optional initial status
}

// CreateInstallmentSaleRequest defines a financed sale agreement.
type CreateInstallmentSaleRequest struct {
	CustomerID        string            `json:"customerID" binding:"required"`
	ItemKind          domain.ItemKind   `json:"itemKind" binding:"required,oneof=PHONE SERVICE"`
	ItemID            string            `json:"itemID" binding:"required"`
	SalePrice         decimal.Decimal   `json:"salePrice" binding:"required"`
	DownPayment       decimal.Decimal   `json:"downPayment"`
	InstallmentCount  int               `json:"installmentCount" binding:"required,gte=1"`
	InstallmentAmount decimal.Decimal   `json:"installmentAmount" binding:"required"`
	StartDate         time.Time         `json:"startDate" binding:"required"`
	Checks            []CheckDescriptor `json:"checks"`
	Notes             string            `json:"notes"`
}

// InstallmentSaleResponse mirrors domain.InstallmentSale for API output.
type InstallmentSaleResponse struct {
	SaleID            string          `json:"saleID"`
	CustomerID        string          `json:"customerID"`
	ItemKind          domain.ItemKind `json:"itemKind"`
	ItemID            string          `json:"itemID"`
	SalePrice         decimal.Decimal `json:"salePrice"`
	DownPayment       decimal.Decimal `json:"downPayment"`
	InstallmentCount  int             `json:"installmentCount"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount"`
	StartDate         time.Time       `json:"startDate"`
	Notes             string          `json:"notes,omitempty"`
}

// ToInstallmentSaleResponse converts a domain sale to its response DTO.
func ToInstallmentSaleResponse(s *domain.InstallmentSale) InstallmentSaleResponse {
	return InstallmentSaleResponse{
		SaleID:            s.SaleID,
		CustomerID:        s.CustomerID,
		ItemKind:          s.ItemKind,
		ItemID:            s.ItemID,
		SalePrice:         s.SalePrice,
		DownPayment:       s.DownPayment,
		InstallmentCount:  s.InstallmentCount,
		InstallmentAmount: s.InstallmentAmount,
		StartDate:         s.StartDate,
		Notes:             s.Notes,
	}
}

// InstallmentPaymentResponse is one scheduled obligation.
type InstallmentPaymentResponse struct {
	PaymentID string               `json:"paymentID"`
	Ordinal   int                  `json:"ordinal"`
	DueDate   time.Time            `json:"dueDate"`
	AmountDue decimal.Decimal      `json:"amountDue"`
	Status    domain.PaymentStatus `json:"status"`
	PaidDate  *time.Time           `json:"paidDate,omitempty"`
}

// ToInstallmentPaymentResponse converts a domain payment to its DTO.
func ToInstallmentPaymentResponse(p *domain.InstallmentPayment) InstallmentPaymentResponse {
	return InstallmentPaymentResponse{
		PaymentID: p.PaymentID,
		Ordinal:   p.Ordinal,
		DueDate:   p.DueDate,
		AmountDue: p.AmountDue,
		Status:    p.Status,
		PaidDate:  p.PaidDate,
	}
}

// InstallmentSaleDetail is a sale with its schedule, checks, and the derived
// aggregate values. Status and balances are recomputed on every read; nothing
// here is authoritative storage.
type InstallmentSaleDetail struct {
	Sale                InstallmentSaleResponse      `json:"sale"`
	Payments            []InstallmentPaymentResponse `json:"payments"`
	Checks              []CheckResponse              `json:"checks"`
	Status              domain.SaleStatus            `json:"status"`
	RemainingBalance    decimal.Decimal              `json:"remainingBalance"`    // Floored at zero for display
	RemainingBalanceRaw decimal.Decimal              `json:"remainingBalanceRaw"` // Unfloored, for reconciliation
}

// ApplyPaymentRequest records a (possibly partial) payment against an
// obligation.
type ApplyPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	PaidAt time.Time       `json:"paidAt" binding:"required"`
	Notes  string          `json:"notes"`
}

// SettlePaymentRequest marks an obligation fully paid as of the given date.
type SettlePaymentRequest struct {
	PaidAt time.Time `json:"paidAt" binding:"required"`
}

// InstallmentTransactionResponse is one money-received event.
type InstallmentTransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	PaymentID     string          `json:"paymentID"`
	Amount        decimal.Decimal `json:"amount"`
	PaidAt        time.Time       `json:"paidAt"`
	Notes         string          `json:"notes,omitempty"`
}

// ToInstallmentTransactionResponse converts a domain transaction to its DTO.
func ToInstallmentTransactionResponse(t *domain.InstallmentTransaction) InstallmentTransactionResponse {
	return InstallmentTransactionResponse{
		TransactionID: t.TransactionID,
		PaymentID:     t.PaymentID,
		Amount:        t.Amount,
		PaidAt:        t.PaidAt,
		Notes:         t.Notes,
	}
}
