package mapping

import (
	"github.com/mobifroosh/shop_backend/internal/core/domain"
	"github.com/mobifroosh/shop_backend/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:       d.EntryID,
		AccountID:     d.AccountID,
		Seq:           d.Seq,
		EntryDate:     d.EntryDate,
		Description:   d.Description,
		Debit:         d.Debit,
		Credit:        d.Credit,
		Balance:       d.Balance,
		ReferenceKind: d.ReferenceKind,
		ReferenceID:   d.ReferenceID,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:       m.EntryID,
		AccountID:     m.AccountID,
		Seq:           m.Seq,
		EntryDate:     m.EntryDate,
		Description:   m.Description,
		Debit:         m.Debit,
		Credit:        m.Credit,
		Balance:       m.Balance,
		ReferenceKind: m.ReferenceKind,
		ReferenceID:   m.ReferenceID,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

// ToDomainLedgerEntrySlice converts a slice of model entries to domain entries.
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
