package mapping

import (
	"github.com/mobifroosh/shop_backend/internal/core/domain"
	"github.com/mobifroosh/shop_backend/internal/models"
)

// ToModelSaleRecord converts a domain SaleRecord to a model SaleRecord
func ToModelSaleRecord(d domain.SaleRecord) models.SaleRecord {
	return models.SaleRecord{
		SaleID:        d.SaleID,
		ItemKind:      string(d.ItemKind),
		ItemID:        d.ItemID,
		Quantity:      d.Quantity,
		UnitPrice:     d.UnitPrice,
		Discount:      d.Discount,
		NetTotal:      d.NetTotal,
		PaymentMethod: string(d.PaymentMethod),
		CustomerID:    d.CustomerID,
		SaleDate:      d.SaleDate,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

// ToDomainSaleRecord converts a model SaleRecord to a domain SaleRecord
func ToDomainSaleRecord(m models.SaleRecord) domain.SaleRecord {
	return domain.SaleRecord{
		SaleID:        m.SaleID,
		ItemKind:      domain.ItemKind(m.ItemKind),
		ItemID:        m.ItemID,
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		Discount:      m.Discount,
		NetTotal:      m.NetTotal,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		CustomerID:    m.CustomerID,
		SaleDate:      m.SaleDate,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}
