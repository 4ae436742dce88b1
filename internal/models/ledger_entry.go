package models

import "time"

// Disposition is a reviewer's verdict on a ledger entry.
type Disposition string

const (
	DispositionPending  Disposition = "PENDING"
	DispositionApproved Disposition = "APPROVED"
	DispositionRejected Disposition = "REJECTED"
)

// LedgerEntry represents one day of worked hours on a placement.
type LedgerEntry struct {
	EntryID     string    `json:"entryID" db:"entry_id"`
	PlacementID string    `json:"placementID" db:"placement_id"`
	WorkDate    time.Time `json:"workDate" db:"work_date"`
	HoursWorked int       `json:"hoursWorked" db:"hours_worked"`
	Activities  string    `json:"activities" db:"activities"`
	// EvidencePath is an opaque handle into the evidence store.
	EvidencePath *string `json:"evidencePath,omitempty" db:"evidence_path"`

	OrganizationDisposition Disposition `json:"organizationDisposition" db:"organization_disposition"`
	CoordinatorDisposition  Disposition `json:"coordinatorDisposition" db:"coordinator_disposition"`
	OrganizationNotes       string      `json:"organizationNotes" db:"organization_notes"`
	CoordinatorNotes        string      `json:"coordinatorNotes" db:"coordinator_notes"`
	OrganizationDecidedAt   *time.Time  `json:"organizationDecidedAt,omitempty" db:"organization_decided_at"`
	CoordinatorDecidedAt    *time.Time  `json:"coordinatorDecidedAt,omitempty" db:"coordinator_decided_at"`

	AuditFields
}
