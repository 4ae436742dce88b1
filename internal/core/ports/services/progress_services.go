package services

import (
	"context"
	"time"

	"github.com/SvcLearn/service_learning_app/internal/core/domain"
)

// ProgressReaderSvc derives progress figures from the ledger.
type ProgressReaderSvc interface {
	// Snapshot returns the progress view of a placement.
	Snapshot(ctx context.Context, actor domain.Actor, placementID string) (*domain.ProgressSnapshot, error)

	// MonthlyReport details one calendar month of a placement's ledger.
	MonthlyReport(ctx context.Context, actor domain.Actor, placementID string, year int, month time.Month) (*domain.MonthlyReport, error)

	// MonthlyAggregates returns per-calendar-month hour totals for a placement.
	MonthlyAggregates(ctx context.Context, actor domain.Actor, placementID string) ([]domain.MonthlyHoursAggregate, error)
}

// ProgressRecalculator is invoked by the ledger after every mutation. It is
// the only non-actor-triggered transition in the system.
type ProgressRecalculator interface {
	// RecheckCompletion transitions an in-progress placement to completed
	// once its logged hours reach the required total, stamping finalized-at
	// and notifying the student. It also drops any cached snapshot.
	RecheckCompletion(ctx context.Context, placementID string) error
}

// ProgressSvcFacade combines the progress service interfaces.
type ProgressSvcFacade interface {
	ProgressReaderSvc
	ProgressRecalculator
}
