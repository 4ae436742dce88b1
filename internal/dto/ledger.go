package dto

import (
	"time"

	"github.com/SvcLearn/service_learning_app/internal/core/domain"
)

// SubmitEntryRequest carries one day of worked hours.
type SubmitEntryRequest struct {
	WorkDate     time.Time `json:"workDate" binding:"required"`
	HoursWorked  int       `json:"hoursWorked" binding:"required"`
	Activities   string    `json:"activities" binding:"required,max=1000"`
	EvidencePath string    `json:"evidencePath,omitempty"` // opaque handle from the evidence upload
}

// ReviewEntryRequest carries a reviewer's verdict on an entry.
type ReviewEntryRequest struct {
	Approved bool   `json:"approved"`
	Notes    string `json:"notes,omitempty" binding:"max=500"`
}

// LedgerEntryResponse is the API representation of a ledger entry.
type LedgerEntryResponse struct {
	EntryID                 string             `json:"entryID"`
	PlacementID             string             `json:"placementID"`
	WorkDate                time.Time          `json:"workDate"`
	HoursWorked             int                `json:"hoursWorked"`
	Activities              string             `json:"activities"`
	EvidencePath            *string            `json:"evidencePath,omitempty"`
	OrganizationDisposition domain.Disposition `json:"organizationDisposition"`
	CoordinatorDisposition  domain.Disposition `json:"coordinatorDisposition"`
	OrganizationNotes       string             `json:"organizationNotes,omitempty"`
	CoordinatorNotes        string             `json:"coordinatorNotes,omitempty"`
	OrganizationDecidedAt   *time.Time         `json:"organizationDecidedAt,omitempty"`
	CoordinatorDecidedAt    *time.Time         `json:"coordinatorDecidedAt,omitempty"`
	CreatedAt               time.Time          `json:"createdAt"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its API representation.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:                 e.EntryID,
		PlacementID:             e.PlacementID,
		WorkDate:                e.WorkDate,
		HoursWorked:             e.HoursWorked,
		Activities:              e.Activities,
		EvidencePath:            e.EvidencePath,
		OrganizationDisposition: e.OrganizationDisposition,
		CoordinatorDisposition:  e.CoordinatorDisposition,
		OrganizationNotes:       e.OrganizationNotes,
		CoordinatorNotes:        e.CoordinatorNotes,
		OrganizationDecidedAt:   e.OrganizationDecidedAt,
		CoordinatorDecidedAt:    e.CoordinatorDecidedAt,
		CreatedAt:               e.CreatedAt,
	}
}

// ToLedgerEntryResponses converts a slice of ledger entries.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToLedgerEntryResponse(&entries[i])
	}
	return responses
}
