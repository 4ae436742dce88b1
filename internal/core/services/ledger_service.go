package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SvcLearn/service_learning_app/internal/apperrors"
	"github.com/SvcLearn/service_learning_app/internal/core/domain"
	portsrepo "github.com/SvcLearn/service_learning_app/internal/core/ports/repositories"
	portssvc "github.com/SvcLearn/service_learning_app/internal/core/ports/services"
	"github.com/SvcLearn/service_learning_app/internal/dto"
	"github.com/SvcLearn/service_learning_app/internal/platform/storage"
)

// ledgerService owns the hours ledger of a placement.
type ledgerService struct {
	BaseService
	ledgerRepo    portsrepo.LedgerRepositoryFacade
	placementRepo portsrepo.PlacementReader
	userRepo      portsrepo.UserReader
	progressSvc   portssvc.ProgressRecalculator
	notifier      portssvc.NotifierSvc
	evidence      storage.EvidenceStore
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	placementRepo portsrepo.PlacementReader,
	userRepo portsrepo.UserReader,
	progressSvc portssvc.ProgressRecalculator,
	notifier portssvc.NotifierSvc,
	evidence storage.EvidenceStore,
) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:    ledgerRepo,
		placementRepo: placementRepo,
		userRepo:      userRepo,
		progressSvc:   progressSvc,
		notifier:      notifier,
		evidence:      evidence,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// sameDay compares calendar dates ignoring the time component.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// notifyOrganization fans a notification out to every member of the organization.
func (s *ledgerService) notifyOrganization(ctx context.Context, organizationID, title, body string, category domain.NotificationCategory, target string) []domain.Notification {
	members, err := s.userRepo.ListUsersByOrganization(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "failed to list organization members for notification", "organization_id", organizationID)
		return nil
	}
	notifications := make([]domain.Notification, 0, len(members))
	for _, member := range members {
		notifications = append(notifications, newNotification(member.UserID, title, body, category, target))
	}
	return notifications
}

// canViewEntry mirrors placement visibility for individual ledger entries.
func canViewEntry(actor domain.Actor, placement *domain.Placement) bool {
	switch actor.Role {
	case domain.RoleStudent:
		return placement.StudentID == actor.UserID
	case domain.RoleOrganization:
		return actor.OrganizationID != "" && placement.OrganizationID == actor.OrganizationID
	case domain.RoleCoordinator:
		return true
	}
	return false
}

// SubmitEntry records one day of work against an in-progress placement owned
// by the acting student.
func (s *ledgerService) SubmitEntry(ctx context.Context, actor domain.Actor, placementID string, req dto.SubmitEntryRequest) (*domain.LedgerEntry, error) {
	placement, err := s.placementRepo.FindPlacementByID(ctx, placementID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleStudent || placement.StudentID != actor.UserID {
		return nil, apperrors.NewNotFoundError("placement not found")
	}
	if !placement.HoursEligible() {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("placement is %s, hours can only be logged while it is in progress", placement.State))
	}

	if req.HoursWorked < domain.MinHoursPerEntry || req.HoursWorked > domain.MaxHoursPerEntry {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("hours worked must be between %d and %d", domain.MinHoursPerEntry, domain.MaxHoursPerEntry))
	}
	now := time.Now()
	if req.WorkDate.After(now) && !sameDay(req.WorkDate, now) {
		return nil, apperrors.NewValidationError("work date cannot be in the future")
	}
	if strings.TrimSpace(req.Activities) == "" {
		return nil, apperrors.NewValidationError("activities description is required")
	}

	entry := domain.LedgerEntry{
		EntryID:                 uuid.NewString(),
		PlacementID:             placement.PlacementID,
		WorkDate:                req.WorkDate,
		HoursWorked:             req.HoursWorked,
		Activities:              strings.TrimSpace(req.Activities),
		OrganizationDisposition: domain.DispositionPending,
		CoordinatorDisposition:  domain.DispositionPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	if req.EvidencePath != "" {
		entry.EvidencePath = &req.EvidencePath
	}

	if err := s.ledgerRepo.SaveEntry(ctx, entry); err != nil {
		return nil, err
	}

	// Every ledger mutation re-derives completion from the stored entries.
	if err := s.progressSvc.RecheckCompletion(ctx, placement.PlacementID); err != nil {
		s.LogError(ctx, err, "completion recheck failed after submit", "placement_id", placement.PlacementID)
	}

	title := "Hours submitted for review"
	body := fmt.Sprintf("%d hours were logged for %s on %q and await review.",
		entry.HoursWorked, entry.WorkDate.Format("2006-01-02"), placement.ProjectName)
	target := fmt.Sprintf("/placements/%s/entries", placement.PlacementID)
	batch := []domain.Notification{
		newNotification(placement.CoordinatorID, title, body, domain.NotifyInfo, target),
	}
	batch = append(batch, s.notifyOrganization(ctx, placement.OrganizationID, title, body, domain.NotifyInfo, target)...)
	s.notifier.Dispatch(ctx, batch)

	s.LogInfo(ctx, "ledger entry submitted", "entry_id", entry.EntryID, "placement_id", placement.PlacementID, "hours", entry.HoursWorked)
	return &entry, nil
}

// ReviewEntry sets the acting reviewer's disposition on an entry. The
// organization and coordinator tracks never touch each other.
func (s *ledgerService) ReviewEntry(ctx context.Context, actor domain.Actor, entryID string, req dto.ReviewEntryRequest) (*domain.LedgerEntry, error) {
	notes := strings.TrimSpace(req.Notes)
	if !req.Approved && notes == "" {
		return nil, apperrors.NewValidationError("rejection notes are required")
	}

	entry, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	placement, err := s.placementRepo.FindPlacementByID(ctx, entry.PlacementID)
	if err != nil {
		return nil, err
	}

	disposition := domain.DispositionApproved
	if !req.Approved {
		disposition = domain.DispositionRejected
	}
	now := time.Now()

	switch actor.Role {
	case domain.RoleOrganization:
		if actor.OrganizationID == "" || placement.OrganizationID != actor.OrganizationID {
			return nil, apperrors.NewNotFoundError("entry not found")
		}
		entry.OrganizationDisposition = disposition
		entry.OrganizationNotes = notes
		entry.OrganizationDecidedAt = &now
	case domain.RoleCoordinator:
		entry.CoordinatorDisposition = disposition
		entry.CoordinatorNotes = notes
		entry.CoordinatorDecidedAt = &now
	default:
		return nil, apperrors.ErrForbidden
	}

	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actor.UserID

	if err := s.ledgerRepo.UpdateEntryReview(ctx, *entry); err != nil {
		return nil, err
	}

	if err := s.progressSvc.RecheckCompletion(ctx, entry.PlacementID); err != nil {
		s.LogError(ctx, err, "completion recheck failed after review", "placement_id", entry.PlacementID)
	}

	title := "Hours approved"
	category := domain.NotifySuccess
	body := fmt.Sprintf("Your %d hours logged for %s were approved.", entry.HoursWorked, entry.WorkDate.Format("2006-01-02"))
	if !req.Approved {
		title = "Hours rejected"
		category = domain.NotifyWarning
		body = fmt.Sprintf("Your %d hours logged for %s were rejected: %s", entry.HoursWorked, entry.WorkDate.Format("2006-01-02"), notes)
	}
	s.notifier.Dispatch(ctx, []domain.Notification{
		newNotification(placement.StudentID, title, body, category,
			fmt.Sprintf("/placements/%s/entries", placement.PlacementID)),
	})

	s.LogInfo(ctx, "ledger entry reviewed", "entry_id", entryID, "reviewer_role", string(actor.Role), "approved", req.Approved)
	return entry, nil
}

// WithdrawEntry deletes the acting student's entry while the organization
// disposition is still pending, removing any evidence artifact with it.
func (s *ledgerService) WithdrawEntry(ctx context.Context, actor domain.Actor, entryID string) error {
	entry, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return err
	}
	placement, err := s.placementRepo.FindPlacementByID(ctx, entry.PlacementID)
	if err != nil {
		return err
	}
	if actor.Role != domain.RoleStudent || placement.StudentID != actor.UserID {
		return apperrors.NewNotFoundError("entry not found")
	}
	if !entry.Withdrawable() {
		return apperrors.NewConflictError("entry has already been reviewed and can no longer be withdrawn")
	}

	if err := s.ledgerRepo.DeleteEntry(ctx, entryID); err != nil {
		return err
	}

	if entry.EvidencePath != nil {
		if err := s.evidence.Delete(ctx, *entry.EvidencePath); err != nil {
			s.LogError(ctx, err, "failed to delete evidence artifact", "entry_id", entryID, "path", *entry.EvidencePath)
		}
	}

	if err := s.progressSvc.RecheckCompletion(ctx, entry.PlacementID); err != nil {
		s.LogError(ctx, err, "completion recheck failed after withdraw", "placement_id", entry.PlacementID)
	}

	s.LogInfo(ctx, "ledger entry withdrawn", "entry_id", entryID, "placement_id", entry.PlacementID)
	return nil
}

// GetEntry retrieves a single entry visible to the acting user.
func (s *ledgerService) GetEntry(ctx context.Context, actor domain.Actor, entryID string) (*domain.LedgerEntry, error) {
	entry, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	placement, err := s.placementRepo.FindPlacementByID(ctx, entry.PlacementID)
	if err != nil {
		return nil, err
	}
	if !canViewEntry(actor, placement) {
		return nil, apperrors.NewNotFoundError("entry not found")
	}
	return entry, nil
}

// ListEntries retrieves a placement's entries, most recent work date first.
func (s *ledgerService) ListEntries(ctx context.Context, actor domain.Actor, placementID string) ([]domain.LedgerEntry, error) {
	placement, err := s.placementRepo.FindPlacementByID(ctx, placementID)
	if err != nil {
		return nil, err
	}
	if !canViewEntry(actor, placement) {
		return nil, apperrors.NewNotFoundError("placement not found")
	}
	return s.ledgerRepo.ListEntriesByPlacement(ctx, placementID)
}
