package domain

import "time"

// PlacementState is the lifecycle state of a placement. It is the sole
// source of truth; the per-actor approval booleans exposed on the API are
// derived from it and never stored.
type PlacementState string

const (
	StateSolicited            PlacementState = "SOLICITED"
	StateCoordinatorApproved  PlacementState = "COORDINATOR_APPROVED"
	StateOrganizationAccepted PlacementState = "ORGANIZATION_ACCEPTED" // transient: accept lands directly on IN_PROGRESS
	StateInProgress           PlacementState = "IN_PROGRESS"
	StateCompleted            PlacementState = "COMPLETED"
	StateRejected             PlacementState = "REJECTED"
)

// Placement is one tracked service-learning engagement, created from an
// accepted application and driven through the coordinator and organization
// gates before hours can accumulate against it.
type Placement struct {
	PlacementID    string `json:"placementID"`
	ApplicationID  string `json:"applicationID"`
	StudentID      string `json:"studentID"`
	OrganizationID string `json:"organizationID"`
	JobListingID   string `json:"jobListingID"`
	CoordinatorID  string `json:"coordinatorID"`

	Career         string `json:"career"`
	Semester       string `json:"semester"`
	ControlNumber  string `json:"controlNumber"`
	ProjectName    string `json:"projectName"`
	MainActivities string `json:"mainActivities"`

	// Supervisor contact is informational only and has no behavioral effect.
	SupervisorName  string `json:"supervisorName,omitempty"`
	SupervisorEmail string `json:"supervisorEmail,omitempty"`
	SupervisorPhone string `json:"supervisorPhone,omitempty"`

	StartDate        time.Time  `json:"startDate"`
	EstimatedEndDate time.Time  `json:"estimatedEndDate"`
	ActualEndDate    *time.Time `json:"actualEndDate,omitempty"`

	RequiredHours int `json:"requiredHours"`

	State             PlacementState `json:"state"`
	CoordinatorNotes  string         `json:"coordinatorNotes,omitempty"`
	OrganizationNotes string         `json:"organizationNotes,omitempty"`

	RequestedAt           time.Time  `json:"requestedAt"`
	CoordinatorDecidedAt  *time.Time `json:"coordinatorDecidedAt,omitempty"`
	OrganizationDecidedAt *time.Time `json:"organizationDecidedAt,omitempty"`
	ProcessStartedAt      *time.Time `json:"processStartedAt,omitempty"`
	FinalizedAt           *time.Time `json:"finalizedAt,omitempty"`

	AuditFields
}

// CoordinatorApproved reports whether the coordinator gate has been passed.
// Derived from the state enum so it can never disagree with it.
func (p *Placement) CoordinatorApproved() bool {
	switch p.State {
	case StateCoordinatorApproved, StateOrganizationAccepted, StateInProgress, StateCompleted:
		return true
	}
	return false
}

// OrganizationAccepted reports whether the organization gate has been passed.
func (p *Placement) OrganizationAccepted() bool {
	switch p.State {
	case StateOrganizationAccepted, StateInProgress, StateCompleted:
		return true
	}
	return false
}

// HoursEligible reports whether the student may submit ledger entries.
func (p *Placement) HoursEligible() bool {
	return p.State == StateInProgress
}

// IsTerminal reports whether no further transition can ever succeed.
func (p *Placement) IsTerminal() bool {
	return p.State == StateCompleted || p.State == StateRejected
}

// DaysRemaining returns the number of whole days until the estimated end
// date, negative if it has passed, or nil when no estimate is set.
func (p *Placement) DaysRemaining(now time.Time) *int {
	if p.EstimatedEndDate.IsZero() {
		return nil
	}
	days := int(p.EstimatedEndDate.Sub(now).Hours() / 24)
	return &days
}
