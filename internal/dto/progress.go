package dto

import (
	"github.com/SvcLearn/service_learning_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProgressResponse is the API representation of a progress snapshot.
type ProgressResponse struct {
	PlacementID     string                `json:"placementID"`
	State           domain.PlacementState `json:"state"`
	RequiredHours   int                   `json:"requiredHours"`
	Hours           domain.HoursBreakdown `json:"hours"`
	RemainingHours  int                   `json:"remainingHours"`
	ProgressPercent decimal.Decimal       `json:"progressPercent"`
	DaysRemaining   *int                  `json:"daysRemaining,omitempty"`
}

// ToProgressResponse converts a domain.ProgressSnapshot to its API representation.
func ToProgressResponse(s *domain.ProgressSnapshot) ProgressResponse {
	return ProgressResponse{
		PlacementID:     s.PlacementID,
		State:           s.State,
		RequiredHours:   s.RequiredHours,
		Hours:           s.Hours,
		RemainingHours:  s.RemainingHours,
		ProgressPercent: s.ProgressPercent,
		DaysRemaining:   s.DaysRemaining,
	}
}

// MonthlyReportResponse is the API representation of a monthly hours report.
type MonthlyReportResponse struct {
	PlacementID   string                `json:"placementID"`
	Year          int                   `json:"year"`
	Month         int                   `json:"month"`
	TotalHours    int                   `json:"totalHours"`
	ApprovedHours int                   `json:"approvedHours"`
	DaysWorked    int                   `json:"daysWorked"`
	Entries       []LedgerEntryResponse `json:"entries"`
}

// ToMonthlyReportResponse converts a domain.MonthlyReport to its API representation.
func ToMonthlyReportResponse(r *domain.MonthlyReport) MonthlyReportResponse {
	return MonthlyReportResponse{
		PlacementID:   r.PlacementID,
		Year:          r.Year,
		Month:         int(r.Month),
		TotalHours:    r.TotalHours,
		ApprovedHours: r.ApprovedHours,
		DaysWorked:    r.DaysWorked,
		Entries:       ToLedgerEntryResponses(r.Entries),
	}
}
