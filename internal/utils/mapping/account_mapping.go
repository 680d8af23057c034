package mapping

import (
	"github.com/mobifroosh/shop_backend/internal/core/domain"
	"github.com/mobifroosh/shop_backend/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		PartyName:      d.PartyName,
		Kind:           models.AccountKind(d.Kind),
		Phone:          d.Phone,
		CurrentBalance: d.CurrentBalance,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		PartyName:      m.PartyName,
		Kind:           domain.AccountKind(m.Kind),
		Phone:          m.Phone,
		CurrentBalance: m.CurrentBalance,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
