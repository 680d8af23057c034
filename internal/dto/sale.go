package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mobifroosh/shop_backend/internal/core/domain"
)

// RecordSaleRequest defines a single-item cash/credit sale.
type RecordSaleRequest struct {
	ItemKind           domain.ItemKind      `json:"itemKind" binding:"required,oneof=PHONE SERVICE GOODS"`
	ItemID             string               `json:"itemID" binding:"required"`
	Quantity           int64                `json:"quantity" binding:"required,gt=0"`
	UnitPriceOverride  *decimal.Decimal     `json:"unitPriceOverride"` // Optional negotiated price
	CustomerID         string               `json:"customerID"`        // Optional; required for credit sales
	Discount           decimal.Decimal      `json:"discount"`
	PaymentMethod      domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=CASH CREDIT"`
	SaleDate           *time.Time           `json:"saleDate"` // Defaults to now
}

// SaleRecordResponse mirrors domain.SaleRecord for API output.
type SaleRecordResponse struct {
	SaleID        string               `json:"saleID"`
	ItemKind      domain.ItemKind      `json:"itemKind"`
	ItemID        string               `json:"itemID"`
	Quantity      int64                `json:"quantity"`
	UnitPrice     decimal.Decimal      `json:"unitPrice"`
	Discount      decimal.Decimal      `json:"discount"`
	NetTotal      decimal.Decimal      `json:"netTotal"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	CustomerID    string               `json:"customerID,omitempty"`
	SaleDate      time.Time            `json:"saleDate"`
}

// ToSaleRecordResponse converts a domain sale record to its response DTO.
func ToSaleRecordResponse(s *domain.SaleRecord) SaleRecordResponse {
	return SaleRecordResponse{
		SaleID:        s.SaleID,
		ItemKind:      s.ItemKind,
		ItemID:        s.ItemID,
		Quantity:      s.Quantity,
		UnitPrice:     s.UnitPrice,
		Discount:      s.Discount,
		NetTotal:      s.NetTotal,
		PaymentMethod: s.PaymentMethod,
		CustomerID:    s.CustomerID,
		SaleDate:      s.SaleDate,
	}
}
