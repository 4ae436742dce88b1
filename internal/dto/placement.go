package dto

import (
	"time"

	"github.com/SvcLearn/service_learning_app/internal/core/domain"
)

// RequestPlacementRequest carries the student's placement request built on
// an accepted application.
type RequestPlacementRequest struct {
	ApplicationID    string    `json:"applicationID" binding:"required"`
	Career           string    `json:"career" binding:"required,max=255"`
	Semester         string    `json:"semester" binding:"required,max=50"`
	ControlNumber    string    `json:"controlNumber" binding:"required,max=50"`
	ProjectName      string    `json:"projectName" binding:"required,max=500"`
	MainActivities   string    `json:"mainActivities" binding:"required"`
	StartDate        time.Time `json:"startDate" binding:"required"`
	EstimatedEndDate time.Time `json:"estimatedEndDate" binding:"required"`
	RequiredHours    int       `json:"requiredHours,omitempty"` // defaults from config when zero
	SupervisorName   string    `json:"supervisorName,omitempty" binding:"max=255"`
	SupervisorEmail  string    `json:"supervisorEmail,omitempty" binding:"omitempty,email,max=255"`
	SupervisorPhone  string    `json:"supervisorPhone,omitempty" binding:"max=20"`
}

// DecisionRequest carries a gate decision's optional review notes.
// Notes are mandatory for rejections; the services enforce that.
type DecisionRequest struct {
	Notes string `json:"notes,omitempty" binding:"max=1000"`
}

// ListPlacementsParams filters placement listings.
type ListPlacementsParams struct {
	State *domain.PlacementState `form:"state"`
}

// PlacementResponse is the API representation of a placement. The approval
// booleans are derived views of the state enum.
type PlacementResponse struct {
	PlacementID           string                `json:"placementID"`
	ApplicationID         string                `json:"applicationID"`
	StudentID             string                `json:"studentID"`
	OrganizationID        string                `json:"organizationID"`
	JobListingID          string                `json:"jobListingID"`
	CoordinatorID         string                `json:"coordinatorID"`
	Career                string                `json:"career"`
	Semester              string                `json:"semester"`
	ControlNumber         string                `json:"controlNumber"`
	ProjectName           string                `json:"projectName"`
	MainActivities        string                `json:"mainActivities"`
	SupervisorName        string                `json:"supervisorName,omitempty"`
	SupervisorEmail       string                `json:"supervisorEmail,omitempty"`
	SupervisorPhone       string                `json:"supervisorPhone,omitempty"`
	StartDate             time.Time             `json:"startDate"`
	EstimatedEndDate      time.Time             `json:"estimatedEndDate"`
	ActualEndDate         *time.Time            `json:"actualEndDate,omitempty"`
	RequiredHours         int                   `json:"requiredHours"`
	State                 domain.PlacementState `json:"state"`
	CoordinatorApproved   bool                  `json:"coordinatorApproved"`
	OrganizationAccepted  bool                  `json:"organizationAccepted"`
	CoordinatorNotes      string                `json:"coordinatorNotes,omitempty"`
	OrganizationNotes     string                `json:"organizationNotes,omitempty"`
	RequestedAt           time.Time             `json:"requestedAt"`
	CoordinatorDecidedAt  *time.Time            `json:"coordinatorDecidedAt,omitempty"`
	OrganizationDecidedAt *time.Time            `json:"organizationDecidedAt,omitempty"`
	ProcessStartedAt      *time.Time            `json:"processStartedAt,omitempty"`
	FinalizedAt           *time.Time            `json:"finalizedAt,omitempty"`
}

// ToPlacementResponse converts a domain.Placement to its API representation.
func ToPlacementResponse(p *domain.Placement) PlacementResponse {
	return PlacementResponse{
		PlacementID:           p.PlacementID,
		ApplicationID:         p.ApplicationID,
		StudentID:             p.StudentID,
		OrganizationID:        p.OrganizationID,
		JobListingID:          p.JobListingID,
		CoordinatorID:         p.CoordinatorID,
		Career:                p.Career,
		Semester:              p.Semester,
		ControlNumber:         p.ControlNumber,
		ProjectName:           p.ProjectName,
		MainActivities:        p.MainActivities,
		SupervisorName:        p.SupervisorName,
		SupervisorEmail:       p.SupervisorEmail,
		SupervisorPhone:       p.SupervisorPhone,
		StartDate:             p.StartDate,
		EstimatedEndDate:      p.EstimatedEndDate,
		ActualEndDate:         p.ActualEndDate,
		RequiredHours:         p.RequiredHours,
		State:                 p.State,
		CoordinatorApproved:   p.CoordinatorApproved(),
		OrganizationAccepted:  p.OrganizationAccepted(),
		CoordinatorNotes:      p.CoordinatorNotes,
		OrganizationNotes:     p.OrganizationNotes,
		RequestedAt:           p.RequestedAt,
		CoordinatorDecidedAt:  p.CoordinatorDecidedAt,
		OrganizationDecidedAt: p.OrganizationDecidedAt,
		ProcessStartedAt:      p.ProcessStartedAt,
		FinalizedAt:           p.FinalizedAt,
	}
}

// ToPlacementResponses converts a slice of placements.
func ToPlacementResponses(placements []domain.Placement) []PlacementResponse {
	responses := make([]PlacementResponse, len(placements))
	for i := range placements {
		responses[i] = ToPlacementResponse(&placements[i])
	}
	return responses
}
