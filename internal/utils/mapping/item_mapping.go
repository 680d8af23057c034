package mapping

import (
	"github.com/mobifroosh/shop_backend/internal/core/domain"
	"github.com/mobifroosh/shop_backend/internal/models"
)

// ToModelItem converts a domain Item to a model Item
func ToModelItem(d domain.Item) models.Item {
	return models.Item{
		ItemID:      d.ItemID,
		Kind:        string(d.Kind),
		Name:        d.Name,
		SalePrice:   d.SalePrice,
		Stock:       d.Stock,
		Status:      string(d.Status),
		SoldAt:      d.SoldAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainItem converts a model Item to a domain Item
func ToDomainItem(m models.Item) domain.Item {
	return domain.Item{
		ItemID:      m.ItemID,
		Kind:        domain.ItemKind(m.Kind),
		Name:        m.Name,
		SalePrice:   m.SalePrice,
		Stock:       m.Stock,
		Status:      domain.ItemStatus(m.Status),
		SoldAt:      m.SoldAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
