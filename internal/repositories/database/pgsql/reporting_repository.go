package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SvcLearn/service_learning_app/internal/core/domain"
	portsrepo "github.com/SvcLearn/service_learning_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a repository for derived ledger aggregates.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetHoursBreakdown sums a placement's hours by organization disposition in
// one pass over the ledger. There are no counter columns to drift.
func (r *PgxReportingRepository) GetHoursBreakdown(ctx context.Context, placementID string) (domain.HoursBreakdown, error) {
	query := `
		SELECT
			COALESCE(SUM(hours_worked), 0) AS completed,
			COALESCE(SUM(hours_worked) FILTER (WHERE organization_disposition = 'APPROVED'), 0) AS approved,
			COALESCE(SUM(hours_worked) FILTER (WHERE organization_disposition = 'PENDING'), 0) AS pending,
			COALESCE(SUM(hours_worked) FILTER (WHERE organization_disposition = 'REJECTED'), 0) AS rejected
		FROM ledger_entries
		WHERE placement_id = $1;
	`
	var b domain.HoursBreakdown
	err := r.Pool.QueryRow(ctx, query, placementID).Scan(&b.Completed, &b.Approved, &b.Pending, &b.Rejected)
	if err != nil {
		return domain.HoursBreakdown{}, fmt.Errorf("failed to aggregate hours for placement %s: %w", placementID, err)
	}
	return b, nil
}

// GetMonthlyHours returns per-calendar-month logged hour totals for a placement.
func (r *PgxReportingRepository) GetMonthlyHours(ctx context.Context, placementID string) ([]domain.MonthlyHoursAggregate, error) {
	query := `
		SELECT
			EXTRACT(YEAR FROM work_date)::int AS year,
			EXTRACT(MONTH FROM work_date)::int AS month,
			COALESCE(SUM(hours_worked), 0) AS hours
		FROM ledger_entries
		WHERE placement_id = $1
		GROUP BY 1, 2
		ORDER BY 1, 2;
	`
	rows, err := r.Pool.Query(ctx, query, placementID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly hours for placement %s: %w", placementID, err)
	}
	defer rows.Close()

	var aggregates []domain.MonthlyHoursAggregate
	for rows.Next() {
		var (
			a     domain.MonthlyHoursAggregate
			month int
		)
		if err := rows.Scan(&a.Year, &month, &a.Hours); err != nil {
			return nil, fmt.Errorf("failed to scan monthly hours row: %w", err)
		}
		a.Month = time.Month(month)
		aggregates = append(aggregates, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly hours rows: %w", err)
	}
	return aggregates, nil
}

// GetPlacementStatusCounts counts placements per lifecycle state.
func (r *PgxReportingRepository) GetPlacementStatusCounts(ctx context.Context) (domain.PlacementStatusCounts, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE state = 'SOLICITED'),
			COUNT(*) FILTER (WHERE state = 'COORDINATOR_APPROVED'),
			COUNT(*) FILTER (WHERE state = 'IN_PROGRESS'),
			COUNT(*) FILTER (WHERE state = 'COMPLETED'),
			COUNT(*) FILTER (WHERE state = 'REJECTED')
		FROM placements;
	`
	var c domain.PlacementStatusCounts
	err := r.Pool.QueryRow(ctx, query).Scan(&c.Solicited, &c.CoordinatorApproved, &c.InProgress, &c.Completed, &c.Rejected)
	if err != nil {
		return domain.PlacementStatusCounts{}, fmt.Errorf("failed to count placements by state: %w", err)
	}
	return c, nil
}
