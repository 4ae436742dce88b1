package mapping

import (
	"github.com/SvcLearn/service_learning_app/internal/core/domain"
	"github.com/SvcLearn/service_learning_app/internal/models"
)

// ToModelPlacement converts a domain Placement to a model Placement
func ToModelPlacement(d domain.Placement) models.Placement {
	return models.Placement{
		PlacementID:           d.PlacementID,
		ApplicationID:         d.ApplicationID,
		StudentID:             d.StudentID,
		OrganizationID:        d.OrganizationID,
		JobListingID:          d.JobListingID,
		CoordinatorID:         d.CoordinatorID,
		Career:                d.Career,
		Semester:              d.Semester,
		ControlNumber:         d.ControlNumber,
		ProjectName:           d.ProjectName,
		MainActivities:        d.MainActivities,
		SupervisorName:        d.SupervisorName,
		SupervisorEmail:       d.SupervisorEmail,
		SupervisorPhone:       d.SupervisorPhone,
		StartDate:             d.StartDate,
		EstimatedEndDate:      d.EstimatedEndDate,
		ActualEndDate:         d.ActualEndDate,
		RequiredHours:         d.RequiredHours,
		State:                 models.PlacementState(d.State),
		CoordinatorNotes:      d.CoordinatorNotes,
		OrganizationNotes:     d.OrganizationNotes,
		RequestedAt:           d.RequestedAt,
		CoordinatorDecidedAt:  d.CoordinatorDecidedAt,
		OrganizationDecidedAt: d.OrganizationDecidedAt,
		ProcessStartedAt:      d.ProcessStartedAt,
		FinalizedAt:           d.FinalizedAt,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPlacement converts a model Placement to a domain Placement
func ToDomainPlacement(m models.Placement) domain.Placement {
	return domain.Placement{
		PlacementID:           m.PlacementID,
		ApplicationID:         m.ApplicationID,
		StudentID:             m.StudentID,
		OrganizationID:        m.OrganizationID,
		JobListingID:          m.JobListingID,
		CoordinatorID:         m.CoordinatorID,
		Career:                m.Career,
		Semester:              m.Semester,
		ControlNumber:         m.ControlNumber,
		ProjectName:           m.ProjectName,
		MainActivities:        m.MainActivities,
		SupervisorName:        m.SupervisorName,
		SupervisorEmail:       m.SupervisorEmail,
		SupervisorPhone:       m.SupervisorPhone,
		StartDate:             m.StartDate,
		EstimatedEndDate:      m.EstimatedEndDate,
		ActualEndDate:         m.ActualEndDate,
		RequiredHours:         m.RequiredHours,
		State:                 domain.PlacementState(m.State),
		CoordinatorNotes:      m.CoordinatorNotes,
		OrganizationNotes:     m.OrganizationNotes,
		RequestedAt:           m.RequestedAt,
		CoordinatorDecidedAt:  m.CoordinatorDecidedAt,
		OrganizationDecidedAt: m.OrganizationDecidedAt,
		ProcessStartedAt:      m.ProcessStartedAt,
		FinalizedAt:           m.FinalizedAt,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPlacementSlice converts a slice of model Placements to domain Placements
func ToDomainPlacementSlice(ms []models.Placement) []domain.Placement {
	ds := make([]domain.Placement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPlacement(m)
	}
	return ds
}
