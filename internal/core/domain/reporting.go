package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HoursBreakdown sums a placement's ledger by organization disposition.
// Completed is the inclusive logged total regardless of disposition, so
// Approved + Pending + Rejected == Completed always holds.
type HoursBreakdown struct {
	Completed int `json:"completed"`
	Approved  int `json:"approved"`
	Pending   int `json:"pending"`
	Rejected  int `json:"rejected"`
}

// ProgressSnapshot is the derived progress view for one placement.
type ProgressSnapshot struct {
	PlacementID     string          `json:"placementID"`
	State           PlacementState  `json:"state"`
	RequiredHours   int             `json:"requiredHours"`
	Hours           HoursBreakdown  `json:"hours"`
	RemainingHours  int             `json:"remainingHours"`
	ProgressPercent decimal.Decimal `json:"progressPercent"`
	DaysRemaining   *int            `json:"daysRemaining,omitempty"`
}

// MonthlyHoursAggregate is one calendar month's logged-hours total.
type MonthlyHoursAggregate struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Hours int        `json:"hours"`
}

// MonthlyReport details one calendar month of a placement's ledger.
type MonthlyReport struct {
	PlacementID   string        `json:"placementID"`
	Year          int           `json:"year"`
	Month         time.Month    `json:"month"`
	TotalHours    int           `json:"totalHours"`
	ApprovedHours int           `json:"approvedHours"`
	DaysWorked    int           `json:"daysWorked"`
	Entries       []LedgerEntry `json:"entries"`
}

// PlacementStatusCounts backs the coordinator dashboard.
type PlacementStatusCounts struct {
	Solicited           int `json:"solicited"`
	CoordinatorApproved int `json:"coordinatorApproved"`
	InProgress          int `json:"inProgress"`
	Completed           int `json:"completed"`
	Rejected            int `json:"rejected"`
}

// ProgressPercent computes completed hours as a percentage of required
// hours, rounded to one decimal and capped at 100. Zero required hours
// yields zero progress.
func ProgressPercent(completedHours, requiredHours int) decimal.Decimal {
	if requiredHours == 0 {
		return decimal.Zero
	}
	pct := decimal.NewFromInt(int64(completedHours)).
		Div(decimal.NewFromInt(int64(requiredHours))).
		Mul(decimal.NewFromInt(100)).
		Round(1)
	hundred := decimal.NewFromInt(100)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}
