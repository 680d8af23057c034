package mapping

import (
	"github.com/mobifroosh/shop_backend/internal/core/domain"
	"github.com/mobifroosh/shop_backend/internal/models"
)

// ToModelRepair converts a domain Repair to its model row.
func ToModelRepair(d domain.Repair) models.Repair {
	return models.Repair{
		RepairID:     d.RepairID,
		CustomerID:   d.CustomerID,
		TechnicianID: d.TechnicianID,
		Device:       d.Device,
		Problem:      d.Problem,
		Price:        d.Price,
		Wage:         d.Wage,
		Status:       string(d.Status),
		ReceivedAt:   d.ReceivedAt,
		DeliveredAt:  d.DeliveredAt,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRepair converts a model row back to the domain type.
func ToDomainRepair(m models.Repair) domain.Repair {
	return domain.Repair{
		RepairID:     m.RepairID,
		CustomerID:   m.CustomerID,
		TechnicianID: m.TechnicianID,
		Device:       m.Device,
		Problem:      m.Problem,
		Price:        m.Price,
		Wage:         m.Wage,
		Status:       domain.RepairStatus(m.Status),
		ReceivedAt:   m.ReceivedAt,
		DeliveredAt:  m.DeliveredAt,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
