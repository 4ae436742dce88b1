package repositories

import (
	"context"

	"github.com/SvcLearn/service_learning_app/internal/core/domain"
)

// ReportingRepository aggregates ledger data for progress and dashboards.
// Totals are always computed from the ledger, never read from counters.
type ReportingRepository interface {
	// GetHoursBreakdown sums a placement's hours by organization disposition.
	GetHoursBreakdown(ctx context.Context, placementID string) (domain.HoursBreakdown, error)

	// GetMonthlyHours returns per-calendar-month logged hour totals for a placement.
	GetMonthlyHours(ctx context.Context, placementID string) ([]domain.MonthlyHoursAggregate, error)

	// GetPlacementStatusCounts counts placements per lifecycle state.
	GetPlacementStatusCounts(ctx context.Context) (domain.PlacementStatusCounts, error)
}
