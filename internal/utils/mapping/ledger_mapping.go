package mapping

import (
	"github.com/SvcLearn/service_learning_app/internal/core/domain"
	"github.com/SvcLearn/service_learning_app/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:                 d.EntryID,
		PlacementID:             d.PlacementID,
		WorkDate:                d.WorkDate,
		HoursWorked:             d.HoursWorked,
		Activities:              d.Activities,
		EvidencePath:            d.EvidencePath,
		OrganizationDisposition: models.Disposition(d.OrganizationDisposition),
		CoordinatorDisposition:  models.Disposition(d.CoordinatorDisposition),
		OrganizationNotes:       d.OrganizationNotes,
		CoordinatorNotes:        d.CoordinatorNotes,
		OrganizationDecidedAt:   d.OrganizationDecidedAt,
		CoordinatorDecidedAt:    d.CoordinatorDecidedAt,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:                 m.EntryID,
		PlacementID:             m.PlacementID,
		WorkDate:                m.WorkDate,
		HoursWorked:             m.HoursWorked,
		Activities:              m.Activities,
		EvidencePath:            m.EvidencePath,
		OrganizationDisposition: domain.Disposition(m.OrganizationDisposition),
		CoordinatorDisposition:  domain.Disposition(m.CoordinatorDisposition),
		OrganizationNotes:       m.OrganizationNotes,
		CoordinatorNotes:        m.CoordinatorNotes,
		OrganizationDecidedAt:   m.OrganizationDecidedAt,
		CoordinatorDecidedAt:    m.CoordinatorDecidedAt,
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerEntrySlice converts a slice of model LedgerEntries to domain LedgerEntries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
