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
)

// placementService drives the placement lifecycle state machine.
type placementService struct {
	BaseService
	placementRepo        portsrepo.PlacementRepositoryFacade
	applicationRepo      portsrepo.ApplicationReader
	userRepo             portsrepo.UserReader
	reportingRepo        portsrepo.ReportingRepository
	notifier             portssvc.NotifierSvc
	coordinatorID        string
	defaultRequiredHours int
}

// NewPlacementService creates a new placement service. The coordinator
// identity is resolved once from configuration, never looked up per request.
func NewPlacementService(
	placementRepo portsrepo.PlacementRepositoryFacade,
	applicationRepo portsrepo.ApplicationReader,
	userRepo portsrepo.UserReader,
	reportingRepo portsrepo.ReportingRepository,
	notifier portssvc.NotifierSvc,
	coordinatorID string,
	defaultRequiredHours int,
) portssvc.PlacementSvcFacade {
	return &placementService{
		placementRepo:        placementRepo,
		applicationRepo:      applicationRepo,
		userRepo:             userRepo,
		reportingRepo:        reportingRepo,
		notifier:             notifier,
		coordinatorID:        coordinatorID,
		defaultRequiredHours: defaultRequiredHours,
	}
}

var _ portssvc.PlacementSvcFacade = (*placementService)(nil)

// canView reports whether the actor may read the placement at all.
// Cross-tenant access is indistinguishable from a missing placement.
func (s *placementService) canView(actor domain.Actor, p *domain.Placement) bool {
	switch actor.Role {
	case domain.RoleStudent:
		return p.StudentID == actor.UserID
	case domain.RoleOrganization:
		return actor.OrganizationID != "" && p.OrganizationID == actor.OrganizationID
	case domain.RoleCoordinator:
		return true
	}
	return false
}

// displayName resolves a user's name for notification text, falling back to
// the ID when the lookup fails.
func (s *placementService) displayName(ctx context.Context, userID string) string {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil || user.Name == "" {
		return userID
	}
	return user.Name
}

func newNotification(recipientID, title, body string, category domain.NotificationCategory, target string) domain.Notification {
	return domain.Notification{
		NotificationID: uuid.NewString(),
		RecipientID:    recipientID,
		Title:          title,
		Body:           body,
		Category:       category,
		Target:         target,
		CreatedAt:      time.Now(),
	}
}

// notifyOrganization fans a notification out to every member of the organization.
func (s *placementService) notifyOrganization(ctx context.Context, organizationID, title, body string, category domain.NotificationCategory, target string) []domain.Notification {
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

// RequestPlacement creates a placement in the solicited state from an
// accepted application owned by the acting student.
func (s *placementService) RequestPlacement(ctx context.Context, actor domain.Actor, req dto.RequestPlacementRequest) (*domain.Placement, error) {
	if actor.Role != domain.RoleStudent {
		return nil, apperrors.ErrForbidden
	}

	application, err := s.applicationRepo.FindAcceptedApplication(ctx, req.ApplicationID, actor.UserID)
	if err != nil {
		return nil, err
	}

	if !req.EstimatedEndDate.After(req.StartDate) {
		return nil, apperrors.NewValidationError("estimated end date must be after start date")
	}

	requiredHours := req.RequiredHours
	if requiredHours == 0 {
		requiredHours = s.defaultRequiredHours
	}
	if requiredHours < 0 {
		return nil, apperrors.NewValidationError("required hours must be positive")
	}

	now := time.Now()
	placement := domain.Placement{
		PlacementID:      uuid.NewString(),
		ApplicationID:    application.ApplicationID,
		StudentID:        actor.UserID,
		OrganizationID:   application.OrganizationID,
		JobListingID:     application.JobListingID,
		CoordinatorID:    s.coordinatorID,
		Career:           req.Career,
		Semester:         req.Semester,
		ControlNumber:    req.ControlNumber,
		ProjectName:      req.ProjectName,
		MainActivities:   req.MainActivities,
		SupervisorName:   req.SupervisorName,
		SupervisorEmail:  req.SupervisorEmail,
		SupervisorPhone:  req.SupervisorPhone,
		StartDate:        req.StartDate,
		EstimatedEndDate: req.EstimatedEndDate,
		RequiredHours:    requiredHours,
		State:            domain.StateSolicited,
		RequestedAt:      now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.placementRepo.SavePlacement(ctx, placement); err != nil {
		s.LogError(ctx, err, "failed to save placement", "application_id", req.ApplicationID)
		return nil, err
	}

	studentName := s.displayName(ctx, actor.UserID)
	target := fmt.Sprintf("/placements/%s", placement.PlacementID)

	batch := []domain.Notification{
		newNotification(s.coordinatorID,
			"New placement request",
			fmt.Sprintf("%s has requested a service-learning placement for project %q. Review the request.", studentName, placement.ProjectName),
			domain.NotifyInfo, target),
	}
	batch = append(batch, s.notifyOrganization(ctx, placement.OrganizationID,
		"New placement request",
		fmt.Sprintf("%s has requested that their work on %q count as service learning. The coordinator reviews it first.", studentName, placement.ProjectName),
		domain.NotifyInfo, target)...)
	s.notifier.Dispatch(ctx, batch)

	s.LogInfo(ctx, "placement requested", "placement_id", placement.PlacementID, "student_id", actor.UserID)
	return &placement, nil
}

// CoordinatorApprove passes the coordinator gate of a solicited placement.
func (s *placementService) CoordinatorApprove(ctx context.Context, actor domain.Actor, placementID string, notes string) (*domain.Placement, error) {
	if actor.Role != domain.RoleCoordinator {
		return nil, apperrors.ErrForbidden
	}

	placement, err := s.placementRepo.FindPlacementByID(ctx, placementID)
	if err != nil {
		return nil, err
	}
	if placement.State != domain.StateSolicited {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("placement is %s, only solicited placements can be approved", placement.State))
	}

	now := time.Now()
	placement.State = domain.StateCoordinatorApproved
	placement.CoordinatorNotes = strings.TrimSpace(notes)
	placement.CoordinatorDecidedAt = &now
	placement.LastUpdatedAt = now
	placement.LastUpdatedBy = actor.UserID

	if err := s.placementRepo.UpdatePlacementState(ctx, *placement, domain.StateSolicited); err != nil {
		return nil, err
	}

	target := fmt.Sprintf("/placements/%s", placement.PlacementID)
	batch := []domain.Notification{
		newNotification(placement.StudentID,
			"Placement approved by the coordinator",
			fmt.Sprintf("Your placement request for %q was approved. The organization decides next.", placement.ProjectName),
			domain.NotifySuccess, target),
	}
	batch = append(batch, s.notifyOrganization(ctx, placement.OrganizationID,
		"Placement awaiting your decision",
		fmt.Sprintf("The coordinator approved the placement request for %q. You can now accept or reject it.", placement.ProjectName),
		domain.NotifyInfo, target)...)
	s.notifier.Dispatch(ctx, batch)

	s.LogInfo(ctx, "placement approved by coordinator", "placement_id", placementID)
	return placement, nil
}

// CoordinatorReject terminally rejects a solicited placement.
func (s *placementService) CoordinatorReject(ctx context.Context, actor domain.Actor, placementID string, notes string) (*domain.Placement, error) {
	if actor.Role != domain.RoleCoordinator {
		return nil, apperrors.ErrForbidden
	}
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return nil, apperrors.NewValidationError("rejection notes are required")
	}

	placement, err := s.placementRepo.FindPlacementByID(ctx, placementID)
	if err != nil {
		return nil, err
	}
	if placement.State != domain.StateSolicited {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("placement is %s, only solicited placements can be rejected by the coordinator", placement.State))
	}

	now := time.Now()
	placement.State = domain.StateRejected
	placement.CoordinatorNotes = notes
	placement.CoordinatorDecidedAt = &now
	placement.FinalizedAt = &now
	placement.LastUpdatedAt = now
	placement.LastUpdatedBy = actor.UserID

	if err := s.placementRepo.UpdatePlacementState(ctx, *placement, domain.StateSolicited); err != nil {
		return nil, err
	}

	target := fmt.Sprintf("/placements/%s", placement.PlacementID)
	s.notifier.Dispatch(ctx, []domain.Notification{
		newNotification(placement.StudentID,
			"Placement rejected by the coordinator",
			fmt.Sprintf("Your placement request for %q was rejected: %s", placement.ProjectName, notes),
			domain.NotifyError, target),
	})

	s.LogInfo(ctx, "placement rejected by coordinator", "placement_id", placementID)
	return placement, nil
}

// OrganizationAccept passes the organization gate of a coordinator-approved
// placement. Acceptance starts the hours process immediately, so the stored
// state moves straight to in-progress.
func (s *placementService) OrganizationAccept(ctx context.Context, actor domain.Actor, placementID string, notes string) (*domain.Placement, error) {
	placement, err := s.findForOrganizationDecision(ctx, actor, placementID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	placement.State = domain.StateInProgress
	placement.OrganizationNotes = strings.TrimSpace(notes)
	placement.OrganizationDecidedAt = &now
	placement.ProcessStartedAt = &now
	placement.LastUpdatedAt = now
	placement.LastUpdatedBy = actor.UserID

	if err := s.placementRepo.UpdatePlacementState(ctx, *placement, domain.StateCoordinatorApproved); err != nil {
		return nil, err
	}

	target := fmt.Sprintf("/placements/%s", placement.PlacementID)
	s.notifier.Dispatch(ctx, []domain.Notification{
		newNotification(placement.StudentID,
			"Placement accepted",
			fmt.Sprintf("The organization accepted your placement for %q. You can start logging hours now.", placement.ProjectName),
			domain.NotifySuccess, target),
		newNotification(placement.CoordinatorID,
			"Placement accepted by the organization",
			fmt.Sprintf("The organization accepted the placement for %q. Hour logging is open.", placement.ProjectName),
			domain.NotifyInfo, target),
	})

	s.LogInfo(ctx, "placement accepted by organization", "placement_id", placementID)
	return placement, nil
}

// OrganizationReject terminally rejects a coordinator-approved placement.
func (s *placementService) OrganizationReject(ctx context.Context, actor domain.Actor, placementID string, notes string) (*domain.Placement, error) {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return nil, apperrors.NewValidationError("rejection notes are required")
	}

	placement, err := s.findForOrganizationDecision(ctx, actor, placementID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	placement.State = domain.StateRejected
	placement.OrganizationNotes = notes
	placement.OrganizationDecidedAt = &now
	placement.FinalizedAt = &now
	placement.LastUpdatedAt = now
	placement.LastUpdatedBy = actor.UserID

	if err := s.placementRepo.UpdatePlacementState(ctx, *placement, domain.StateCoordinatorApproved); err != nil {
		return nil, err
	}

	target := fmt.Sprintf("/placements/%s", placement.PlacementID)
	s.notifier.Dispatch(ctx, []domain.Notification{
		newNotification(placement.StudentID,
			"Placement rejected by the organization",
			fmt.Sprintf("The organization rejected your placement for %q: %s", placement.ProjectName, notes),
			domain.NotifyError, target),
		newNotification(placement.CoordinatorID,
			"Placement rejected by the organization",
			fmt.Sprintf("The organization rejected the placement for %q.", placement.ProjectName),
			domain.NotifyWarning, target),
	})

	s.LogInfo(ctx, "placement rejected by organization", "placement_id", placementID)
	return placement, nil
}

// findForOrganizationDecision loads a placement for an organization gate
// decision, enforcing membership and the coordinator-approved guard.
func (s *placementService) findForOrganizationDecision(ctx context.Context, actor domain.Actor, placementID string) (*domain.Placement, error) {
	if actor.Role != domain.RoleOrganization || actor.OrganizationID == "" {
		return nil, apperrors.ErrForbidden
	}

	placement, err := s.placementRepo.FindPlacementByID(ctx, placementID)
	if err != nil {
		return nil, err
	}
	if placement.OrganizationID != actor.OrganizationID {
		// Obscure other tenants' placements.
		return nil, apperrors.NewNotFoundError("placement not found")
	}
	if placement.State != domain.StateCoordinatorApproved {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("placement is %s, the organization decides only after coordinator approval", placement.State))
	}
	return placement, nil
}

// CancelPlacement deletes the acting student's placement while it is still solicited.
func (s *placementService) CancelPlacement(ctx context.Context, actor domain.Actor, placementID string) error {
	placement, err := s.placementRepo.FindPlacementByID(ctx, placementID)
	if err != nil {
		return err
	}
	if actor.Role != domain.RoleStudent || placement.StudentID != actor.UserID {
		return apperrors.NewNotFoundError("placement not found")
	}
	if placement.State != domain.StateSolicited {
		return apperrors.NewConflictError(
			"placement has already been processed and can no longer be cancelled")
	}

	// Guarded at the data layer so a concurrent coordinator decision wins
	// over the cancellation, not the other way around.
	if err := s.placementRepo.DeletePlacement(ctx, placementID, domain.StateSolicited); err != nil {
		return err
	}

	studentName := s.displayName(ctx, actor.UserID)
	batch := []domain.Notification{
		newNotification(placement.CoordinatorID,
			"Placement request cancelled",
			fmt.Sprintf("%s cancelled their placement request for %q.", studentName, placement.ProjectName),
			domain.NotifyWarning, "/placements"),
	}
	batch = append(batch, s.notifyOrganization(ctx, placement.OrganizationID,
		"Placement request cancelled",
		fmt.Sprintf("%s cancelled their placement request for %q.", studentName, placement.ProjectName),
		domain.NotifyWarning, "/placements")...)
	s.notifier.Dispatch(ctx, batch)

	s.LogInfo(ctx, "placement cancelled", "placement_id", placementID)
	return nil
}

// GetPlacement retrieves a placement visible to the acting user.
func (s *placementService) GetPlacement(ctx context.Context, actor domain.Actor, placementID string) (*domain.Placement, error) {
	placement, err := s.placementRepo.FindPlacementByID(ctx, placementID)
	if err != nil {
		return nil, err
	}
	if !s.canView(actor, placement) {
		return nil, apperrors.NewNotFoundError("placement not found")
	}
	return placement, nil
}

// ListPlacements retrieves the placements visible to the acting user.
func (s *placementService) ListPlacements(ctx context.Context, actor domain.Actor, params dto.ListPlacementsParams) ([]domain.Placement, error) {
	switch actor.Role {
	case domain.RoleStudent:
		return s.placementRepo.ListPlacementsByStudent(ctx, actor.UserID)
	case domain.RoleOrganization:
		if actor.OrganizationID == "" {
			return nil, apperrors.ErrForbidden
		}
		// Organizations see placements only from the coordinator gate onward.
		return s.placementRepo.ListPlacementsByOrganization(ctx, actor.OrganizationID, []domain.PlacementState{
			domain.StateCoordinatorApproved,
			domain.StateInProgress,
			domain.StateCompleted,
			domain.StateRejected,
		})
	case domain.RoleCoordinator:
		return s.placementRepo.ListPlacements(ctx, params.State)
	}
	return nil, apperrors.ErrForbidden
}

// StatusCounts returns per-state placement counts for the coordinator dashboard.
func (s *placementService) StatusCounts(ctx context.Context, actor domain.Actor) (*domain.PlacementStatusCounts, error) {
	if actor.Role != domain.RoleCoordinator {
		return nil, apperrors.ErrForbidden
	}
	counts, err := s.reportingRepo.GetPlacementStatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	return &counts, nil
}
