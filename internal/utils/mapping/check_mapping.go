package mapping

import (
	"github.com/mobifroosh/shop_backend/internal/core/domain"
	"github.com/mobifroosh/shop_backend/internal/models"
)

// ToModelCheckInstrument converts a domain CheckInstrument to its model row.
func ToModelCheckInstrument(d domain.CheckInstrument) models.CheckInstrument {
	return models.CheckInstrument{
		CheckID:     d.CheckID,
		SaleID:      d.SaleID,
		CheckNumber: d.CheckNumber,
		BankName:    d.BankName,
		DueDate:     d.DueDate,
		Amount:      d.Amount,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCheckInstrument converts a model row back to the domain type.
func ToDomainCheckInstrument(m models.CheckInstrument) domain.CheckInstrument {
	return domain.CheckInstrument{
		CheckID:     m.CheckID,
		SaleID:      m.SaleID,
		CheckNumber: m.CheckNumber,
		BankName:    m.BankName,
		DueDate:     m.DueDate,
		Amount:      m.Amount,
		Status:      domain.CheckStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCheckInstrumentSlice converts a slice of model check rows.
func ToDomainCheckInstrumentSlice(ms []models.CheckInstrument) []domain.CheckInstrument {
	ds := make([]domain.CheckInstrument, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCheckInstrument(m)
	}
	return ds
}
