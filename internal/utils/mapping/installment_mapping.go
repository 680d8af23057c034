package mapping

import (
	"github.com/mobifroosh/shop_backend/internal/core/domain"
	"github.com/mobifroosh/shop_backend/internal/models"
)

// ToModelInstallmentSale converts a domain InstallmentSale to its model row.
func ToModelInstallmentSale(d domain.InstallmentSale) models.InstallmentSale {
	return models.InstallmentSale{
		SaleID:            d.SaleID,
		CustomerID:        d.CustomerID,
		ItemKind:          string(d.ItemKind),
		ItemID:            d.ItemID,
		SalePrice:         d.SalePrice,
		DownPayment:       d.DownPayment,
		InstallmentCount:  d.InstallmentCount,
		InstallmentAmount: d.InstallmentAmount,
		StartDate:         d.StartDate,
		Notes:             d.Notes,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInstallmentSale converts a model row back to the domain type.
func ToDomainInstallmentSale(m models.InstallmentSale) domain.InstallmentSale {
	return domain.InstallmentSale{
		SaleID:            m.SaleID,
		CustomerID:        m.CustomerID,
		ItemKind:          domain.ItemKind(m.ItemKind),
		ItemID:            m.ItemID,
		SalePrice:         m.SalePrice,
		DownPayment:       m.DownPayment,
		InstallmentCount:  m.InstallmentCount,
		InstallmentAmount: m.InstallmentAmount,
		StartDate:         m.StartDate,
		Notes:             m.Notes,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelInstallmentPayment converts a domain InstallmentPayment to its model row.
func ToModelInstallmentPayment(d domain.InstallmentPayment) models.InstallmentPayment {
	return models.InstallmentPayment{
		PaymentID:   d.PaymentID,
		SaleID:      d.SaleID,
		Ordinal:     d.Ordinal,
		DueDate:     d.DueDate,
		AmountDue:   d.AmountDue,
		Status:      string(d.Status),
		PaidDate:    d.PaidDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInstallmentPayment converts a model row back to the domain type.
func ToDomainInstallmentPayment(m models.InstallmentPayment) domain.InstallmentPayment {
	return domain.InstallmentPayment{
		PaymentID:   m.PaymentID,
		SaleID:      m.SaleID,
		Ordinal:     m.Ordinal,
		DueDate:     m.DueDate,
		AmountDue:   m.AmountDue,
		Status:      domain.PaymentStatus(m.Status),
		PaidDate:    m.PaidDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInstallmentPaymentSlice converts a slice of model payment rows.
func ToDomainInstallmentPaymentSlice(ms []models.InstallmentPayment) []domain.InstallmentPayment {
	ds := make([]domain.InstallmentPayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInstallmentPayment(m)
	}
	return ds
}

// ToModelInstallmentTransaction converts a domain transaction to its model row.
func ToModelInstallmentTransaction(d domain.InstallmentTransaction) models.InstallmentTransaction {
	return models.InstallmentTransaction{
		TransactionID: d.TransactionID,
		PaymentID:     d.PaymentID,
		Amount:        d.Amount,
		PaidAt:        d.PaidAt,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

// ToDomainInstallmentTransaction converts a model row back to the domain type.
func ToDomainInstallmentTransaction(m models.InstallmentTransaction) domain.InstallmentTransaction {
	return domain.InstallmentTransaction{
		TransactionID: m.TransactionID,
		PaymentID:     m.PaymentID,
		Amount:        m.Amount,
		PaidAt:        m.PaidAt,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

// ToDomainInstallmentTransactionSlice converts a slice of model transaction rows.
func ToDomainInstallmentTransactionSlice(ms []models.InstallmentTransaction) []domain.InstallmentTransaction {
	ds := make([]domain.InstallmentTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInstallmentTransaction(m)
	}
	return ds
}
