package domain

import "time"

// Disposition is the verdict a reviewing actor assigns to a ledger entry.
type Disposition string

const (
	DispositionPending  Disposition = "PENDING"
	DispositionApproved Disposition = "APPROVED"
	DispositionRejected Disposition = "REJECTED"
)

// Hour bounds for a single work day.
const (
	MinHoursPerEntry = 1
	MaxHoursPerEntry = 12
)

// LedgerEntry is one dated, hour-quantified work record submitted against a
// placement. At most one entry exists per (placement, work date) pair.
// The organization and coordinator dispositions are independent review
// tracks; the canonical approved-hours figure uses the organization track.
type LedgerEntry struct {
	EntryID     string `json:"entryID"`
	PlacementID string `json:"placementID"`

	WorkDate     time.Time `json:"workDate"`
	HoursWorked  int       `json:"hoursWorked"`
	Activities   string    `json:"activities"`
	EvidencePath *string   `json:"evidencePath,omitempty"` // opaque storage handle

	OrganizationDisposition Disposition `json:"organizationDisposition"`
	CoordinatorDisposition  Disposition `json:"coordinatorDisposition"`
	OrganizationNotes       string      `json:"organizationNotes,omitempty"`
	CoordinatorNotes        string      `json:"coordinatorNotes,omitempty"`
	OrganizationDecidedAt   *time.Time  `json:"organizationDecidedAt,omitempty"`
	CoordinatorDecidedAt    *time.Time  `json:"coordinatorDecidedAt,omitempty"`

	AuditFields
}

// Withdrawable reports whether the owning student may still delete the entry.
func (e *LedgerEntry) Withdrawable() bool {
	return e.OrganizationDisposition == DispositionPending
}
