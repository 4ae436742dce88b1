package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SvcLearn/service_learning_app/internal/apperrors"
	"github.com/SvcLearn/service_learning_app/internal/core/domain"
	portsrepo "github.com/SvcLearn/service_learning_app/internal/core/ports/repositories"
	portssvc "github.com/SvcLearn/service_learning_app/internal/core/ports/services"
	"github.com/SvcLearn/service_learning_app/internal/platform/cache"
)

// progressService derives progress figures from the ledger. Nothing here is
// ever read from a stored counter; every figure is recomputed from the
// entries themselves.
type progressService struct {
	BaseService
	placementRepo portsrepo.PlacementRepositoryFacade
	ledgerRepo    portsrepo.LedgerReader
	reportingRepo portsrepo.ReportingRepository
	notifier      portssvc.NotifierSvc
	cache         *cache.ProgressCache
}

// NewProgressService creates a new progress service. cache may be nil.
func NewProgressService(
	placementRepo portsrepo.PlacementRepositoryFacade,
	ledgerRepo portsrepo.LedgerReader,
	reportingRepo portsrepo.ReportingRepository,
	notifier portssvc.NotifierSvc,
	progressCache *cache.ProgressCache,
) portssvc.ProgressSvcFacade {
	return &progressService{
		placementRepo: placementRepo,
		ledgerRepo:    ledgerRepo,
		reportingRepo: reportingRepo,
		notifier:      notifier,
		cache:         progressCache,
	}
}

var _ portssvc.ProgressSvcFacade = (*progressService)(nil)

// Snapshot returns the progress view of a placement.
func (s *progressService) Snapshot(ctx context.Context, actor domain.Actor, placementID string) (*domain.ProgressSnapshot, error) {
	placement, err := s.placementRepo.FindPlacementByID(ctx, placementID)
	if err != nil {
		return nil, err
	}
	if !canViewEntry(actor, placement) {
		return nil, apperrors.NewNotFoundError("placement not found")
	}

	if cached, err := s.cache.Get(ctx, placementID); err != nil {
		s.LogError(ctx, err, "progress cache read failed", "placement_id", placementID)
	} else if cached != nil {
		return cached, nil
	}

	snapshot, err := s.buildSnapshot(ctx, placement)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, snapshot); err != nil {
		s.LogError(ctx, err, "progress cache write failed", "placement_id", placementID)
	}
	return snapshot, nil
}

func (s *progressService) buildSnapshot(ctx context.Context, placement *domain.Placement) (*domain.ProgressSnapshot, error) {
	breakdown, err := s.reportingRepo.GetHoursBreakdown(ctx, placement.PlacementID)
	if err != nil {
		return nil, err
	}

	remaining := placement.RequiredHours - breakdown.Completed
	if remaining < 0 {
		remaining = 0
	}

	return &domain.ProgressSnapshot{
		PlacementID:     placement.PlacementID,
		State:           placement.State,
		RequiredHours:   placement.RequiredHours,
		Hours:           breakdown,
		RemainingHours:  remaining,
		ProgressPercent: domain.ProgressPercent(breakdown.Completed, placement.RequiredHours),
		DaysRemaining:   placement.DaysRemaining(time.Now()),
	}, nil
}

// MonthlyReport details one calendar month of a placement's ledger.
func (s *progressService) MonthlyReport(ctx context.Context, actor domain.Actor, placementID string, year int, month time.Month) (*domain.MonthlyReport, error) {
	if month < time.January || month > time.December {
		return nil, apperrors.NewValidationError("month must be between 1 and 12")
	}
	placement, err := s.placementRepo.FindPlacementByID(ctx, placementID)
	if err != nil {
		return nil, err
	}
	if !canViewEntry(actor, placement) {
		return nil, apperrors.NewNotFoundError("placement not found")
	}

	entries, err := s.ledgerRepo.ListEntriesByPlacementMonth(ctx, placementID, year, month)
	if err != nil {
		return nil, err
	}

	report := &domain.MonthlyReport{
		PlacementID: placementID,
		Year:        year,
		Month:       month,
		Entries:     entries,
	}
	for _, entry := range entries {
		report.TotalHours += entry.HoursWorked
		if entry.OrganizationDisposition == domain.DispositionApproved {
			report.ApprovedHours += entry.HoursWorked
		}
	}
	// One entry per work date, so the entry count is the day count.
	report.DaysWorked = len(entries)

	return report, nil
}

// MonthlyAggregates returns per-calendar-month hour totals for a placement.
func (s *progressService) MonthlyAggregates(ctx context.Context, actor domain.Actor, placementID string) ([]domain.MonthlyHoursAggregate, error) {
	placement, err := s.placementRepo.FindPlacementByID(ctx, placementID)
	if err != nil {
		return nil, err
	}
	if !canViewEntry(actor, placement) {
		return nil, apperrors.NewNotFoundError("placement not found")
	}
	return s.reportingRepo.GetMonthlyHours(ctx, placementID)
}

// RecheckCompletion transitions an in-progress placement to completed once
// its logged hours reach the required total. It runs after every ledger
// mutation and is idempotent.
func (s *progressService) RecheckCompletion(ctx context.Context, placementID string) error {
	// The ledger just changed underneath any cached snapshot.
	if err := s.cache.Invalidate(ctx, placementID); err != nil {
		s.LogError(ctx, err, "progress cache invalidation failed", "placement_id", placementID)
	}

	placement, err := s.placementRepo.FindPlacementByID(ctx, placementID)
	if err != nil {
		return err
	}
	if placement.State != domain.StateInProgress {
		return nil
	}

	breakdown, err := s.reportingRepo.GetHoursBreakdown(ctx, placementID)
	if err != nil {
		return err
	}
	if placement.RequiredHours <= 0 || breakdown.Completed < placement.RequiredHours {
		return nil
	}

	now := time.Now()
	placement.State = domain.StateCompleted
	placement.FinalizedAt = &now
	placement.ActualEndDate = &now
	placement.LastUpdatedAt = now
	placement.LastUpdatedBy = placement.StudentID

	if err := s.placementRepo.UpdatePlacementState(ctx, *placement, domain.StateInProgress); err != nil {
		// A concurrent recheck already completed it.
		if errors.Is(err, apperrors.ErrConflict) {
			return nil
		}
		return err
	}

	batch := []domain.Notification{
		newNotification(placement.StudentID,
			"Service learning completed",
			fmt.Sprintf("Congratulations, you have completed your %d required hours.", placement.RequiredHours),
			domain.NotifySuccess,
			fmt.Sprintf("/placements/%s", placement.PlacementID)),
		newNotification(placement.CoordinatorID,
			"Placement completed",
			fmt.Sprintf("The placement for %q reached its required hours and was marked completed.", placement.ProjectName),
			domain.NotifyInfo,
			fmt.Sprintf("/placements/%s", placement.PlacementID)),
	}
	s.notifier.Dispatch(ctx, batch)

	s.LogInfo(ctx, "placement auto-completed", "placement_id", placementID, "logged_hours", breakdown.Completed)
	return nil
}
