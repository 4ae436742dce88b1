package models

import "time"

// PlacementState is the lifecycle state of a placement.
type PlacementState string

const (
	Solicited           PlacementState = "SOLICITED"
	CoordinatorApproved PlacementState = "COORDINATOR_APPROVED"
	// OrganizationAccepted is transient on the wire; acceptance persists
	// directly as InProgress.
	OrganizationAccepted PlacementState = "ORGANIZATION_ACCEPTED"
	InProgress           PlacementState = "IN_PROGRESS"
	Completed            PlacementState = "COMPLETED"
	Rejected             PlacementState = "REJECTED"
)

// Placement represents a service-learning placement row.
type Placement struct {
	PlacementID    string `json:"placementID" db:"placement_id"`
	ApplicationID  string `json:"applicationID" db:"application_id"`
	StudentID      string `json:"studentID" db:"student_id"`
	OrganizationID string `json:"organizationID" db:"organization_id"`
	JobListingID   string `json:"jobListingID" db:"job_listing_id"`
	CoordinatorID  string `json:"coordinatorID" db:"coordinator_id"`

	Career         string `json:"career" db:"career"`
	Semester       string `json:"semester" db:"semester"`
	ControlNumber  string `json:"controlNumber" db:"control_number"`
	ProjectName    string `json:"projectName" db:"project_name"`
	MainActivities string `json:"mainActivities" db:"main_activities"`

	SupervisorName  string `json:"supervisorName" db:"supervisor_name"`
	SupervisorEmail string `json:"supervisorEmail" db:"supervisor_email"`
	SupervisorPhone string `json:"supervisorPhone" db:"supervisor_phone"`

	StartDate        time.Time  `json:"startDate" db:"start_date"`
	EstimatedEndDate time.Time  `json:"estimatedEndDate" db:"estimated_end_date"`
	ActualEndDate    *time.Time `json:"actualEndDate,omitempty" db:"actual_end_date"`

	RequiredHours int            `json:"requiredHours" db:"required_hours"`
	State         PlacementState `json:"state" db:"state"`

	CoordinatorNotes  string `json:"coordinatorNotes" db:"coordinator_notes"`
	OrganizationNotes string `json:"organizationNotes" db:"organization_notes"`

	RequestedAt           time.Time  `json:"requestedAt" db:"requested_at"`
	CoordinatorDecidedAt  *time.Time `json:"coordinatorDecidedAt,omitempty" db:"coordinator_decided_at"`
	OrganizationDecidedAt *time.Time `json:"organizationDecidedAt,omitempty" db:"organization_decided_at"`
	ProcessStartedAt      *time.Time `json:"processStartedAt,omitempty" db:"process_started_at"`
	FinalizedAt           *time.Time `json:"finalizedAt,omitempty" db:"finalized_at"`

	AuditFields
}
