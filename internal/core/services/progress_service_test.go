package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SvcLearn/service_learning_app/internal/apperrors"
	"github.com/SvcLearn/service_learning_app/internal/core/domain"
	portssvc "github.com/SvcLearn/service_learning_app/internal/core/ports/services"
	"github.com/SvcLearn/service_learning_app/internal/core/services"
)

// --- Test Suite Setup ---
type ProgressServiceTestSuite struct {
	suite.Suite
	mockPlacementRepo *MockPlacementRepository
	mockLedgerRepo    *MockLedgerRepository
	mockReportingRepo *MockReportingRepository
	mockNotifier      *MockNotifier
	service           portssvc.ProgressSvcFacade

	studentID     string
	coordinatorID string
	student       domain.Actor
	placement     *domain.Placement
}

func (suite *ProgressServiceTestSuite) SetupTest() {
	suite.mockPlacementRepo = new(MockPlacementRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockNotifier = new(MockNotifier)

	suite.studentID = uuid.NewString()
	suite.coordinatorID = uuid.NewString()
	suite.student = domain.Actor{UserID: suite.studentID, Role: domain.RoleStudent}

	suite.placement = &domain.Placement{
		PlacementID:      uuid.NewString(),
		StudentID:        suite.studentID,
		OrganizationID:   uuid.NewString(),
		CoordinatorID:    suite.coordinatorID,
		ProjectName:      "Community Library Catalog",
		EstimatedEndDate: time.Now().AddDate(0, 2, 0),
		RequiredHours:    480,
		State:            domain.StateInProgress,
	}

	// The snapshot cache is optional and absent in tests.
	suite.service = services.NewProgressService(
		suite.mockPlacementRepo,
		suite.mockLedgerRepo,
		suite.mockReportingRepo,
		suite.mockNotifier,
		nil,
	)
}

// --- Snapshot ---

func (suite *ProgressServiceTestSuite) TestSnapshot_Math() {
	ctx := context.Background()
	breakdown := domain.HoursBreakdown{Completed: 130, Approved: 100, Pending: 20, Rejected: 10}
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, suite.placement.PlacementID).Return(suite.placement, nil).Once()
	suite.mockReportingRepo.On("GetHoursBreakdown", ctx, suite.placement.PlacementID).Return(breakdown, nil).Once()

	snapshot, err := suite.service.Snapshot(ctx, suite.student, suite.placement.PlacementID)

	suite.Require().NoError(err)
	suite.Equal(breakdown, snapshot.Hours)
	suite.Equal(350, snapshot.RemainingHours)
	// 130/480*100 rounds to one decimal.
	suite.True(snapshot.ProgressPercent.Equal(decimal.RequireFromString("27.1")),
		"got %s", snapshot.ProgressPercent)
	suite.Equal(snapshot.Hours.Approved+snapshot.Hours.Pending+snapshot.Hours.Rejected, snapshot.Hours.Completed)
	suite.Require().NotNil(snapshot.DaysRemaining)
	suite.Positive(*snapshot.DaysRemaining)
}

func (suite *ProgressServiceTestSuite) TestSnapshot_OverloggedCapsAtHundred() {
	ctx := context.Background()
	breakdown := domain.HoursBreakdown{Completed: 600, Approved: 600}
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, suite.placement.PlacementID).Return(suite.placement, nil).Once()
	suite.mockReportingRepo.On("GetHoursBreakdown", ctx, suite.placement.PlacementID).Return(breakdown, nil).Once()

	snapshot, err := suite.service.Snapshot(ctx, suite.student, suite.placement.PlacementID)

	suite.Require().NoError(err)
	suite.Equal(0, snapshot.RemainingHours)
	suite.True(snapshot.ProgressPercent.Equal(decimal.NewFromInt(100)), "got %s", snapshot.ProgressPercent)
}

func (suite *ProgressServiceTestSuite) TestSnapshot_ZeroRequiredHours() {
	ctx := context.Background()
	placement := *suite.placement
	placement.RequiredHours = 0
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, placement.PlacementID).Return(&placement, nil).Once()
	suite.mockReportingRepo.On("GetHoursBreakdown", ctx, placement.PlacementID).
		Return(domain.HoursBreakdown{Completed: 40, Approved: 40}, nil).Once()

	snapshot, err := suite.service.Snapshot(ctx, suite.student, placement.PlacementID)

	suite.Require().NoError(err)
	suite.True(snapshot.ProgressPercent.IsZero(), "got %s", snapshot.ProgressPercent)
}

func (suite *ProgressServiceTestSuite) TestSnapshot_CrossTenantObscured() {
	ctx := context.Background()
	foreignMember := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleOrganization, OrganizationID: uuid.NewString()}
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, suite.placement.PlacementID).Return(suite.placement, nil).Once()

	_, err := suite.service.Snapshot(ctx, foreignMember, suite.placement.PlacementID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetHoursBreakdown", mock.Anything, mock.Anything)
}

// --- MonthlyReport ---

func (suite *ProgressServiceTestSuite) TestMonthlyReport_Math() {
	ctx := context.Background()
	entries := []domain.LedgerEntry{
		{EntryID: uuid.NewString(), HoursWorked: 6, OrganizationDisposition: domain.DispositionApproved},
		{EntryID: uuid.NewString(), HoursWorked: 8, OrganizationDisposition: domain.DispositionPending},
		{EntryID: uuid.NewString(), HoursWorked: 4, OrganizationDisposition: domain.DispositionRejected},
	}
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, suite.placement.PlacementID).Return(suite.placement, nil).Once()
	suite.mockLedgerRepo.On("ListEntriesByPlacementMonth", ctx, suite.placement.PlacementID, 2026, time.March).
		Return(entries, nil).Once()

	report, err := suite.service.MonthlyReport(ctx, suite.student, suite.placement.PlacementID, 2026, time.March)

	suite.Require().NoError(err)
	suite.Equal(18, report.TotalHours)
	suite.Equal(6, report.ApprovedHours)
	suite.Equal(3, report.DaysWorked)
	suite.Len(report.Entries, 3)
}

func (suite *ProgressServiceTestSuite) TestMonthlyReport_InvalidMonth() {
	ctx := context.Background()

	_, err := suite.service.MonthlyReport(ctx, suite.student, suite.placement.PlacementID, 2026, time.Month(13))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPlacementRepo.AssertNotCalled(suite.T(), "FindPlacementByID", mock.Anything, mock.Anything)
}

func (suite *ProgressServiceTestSuite) TestMonthlyAggregates() {
	ctx := context.Background()
	aggregates := []domain.MonthlyHoursAggregate{
		{Year: 2026, Month: time.February, Hours: 42},
		{Year: 2026, Month: time.March, Hours: 61},
	}
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, suite.placement.PlacementID).Return(suite.placement, nil).Once()
	suite.mockReportingRepo.On("GetMonthlyHours", ctx, suite.placement.PlacementID).Return(aggregates, nil).Once()

	result, err := suite.service.MonthlyAggregates(ctx, suite.student, suite.placement.PlacementID)

	suite.Require().NoError(err)
	suite.Equal(aggregates, result)
}

// --- RecheckCompletion ---

func (suite *ProgressServiceTestSuite) TestRecheckCompletion_ReachedRequiredHours() {
	ctx := context.Background()
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, suite.placement.PlacementID).Return(suite.placement, nil).Once()
	suite.mockReportingRepo.On("GetHoursBreakdown", ctx, suite.placement.PlacementID).
		Return(domain.HoursBreakdown{Completed: 480, Approved: 450, Pending: 30}, nil).Once()

	var updated domain.Placement
	suite.mockPlacementRepo.On("UpdatePlacementState", ctx, mock.AnythingOfType("domain.Placement"), domain.StateInProgress).
		Run(func(args mock.Arguments) { updated = args.Get(1).(domain.Placement) }).
		Return(nil).Once()

	var dispatched []domain.Notification
	suite.mockNotifier.On("Dispatch", ctx, mock.AnythingOfType("[]domain.Notification")).
		Run(func(args mock.Arguments) { dispatched = args.Get(1).([]domain.Notification) }).
		Return().Once()

	err := suite.service.RecheckCompletion(ctx, suite.placement.PlacementID)

	suite.Require().NoError(err)
	suite.Equal(domain.StateCompleted, updated.State)
	suite.Require().NotNil(updated.FinalizedAt)
	suite.Require().NotNil(updated.ActualEndDate)

	suite.Require().Len(dispatched, 2)
	suite.Equal(suite.studentID, dispatched[0].RecipientID)
	suite.Equal(suite.coordinatorID, dispatched[1].RecipientID)
}

func (suite *ProgressServiceTestSuite) TestRecheckCompletion_BelowRequiredHours() {
	ctx := context.Background()
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, suite.placement.PlacementID).Return(suite.placement, nil).Once()
	suite.mockReportingRepo.On("GetHoursBreakdown", ctx, suite.placement.PlacementID).
		Return(domain.HoursBreakdown{Completed: 479, Approved: 479}, nil).Once()

	err := suite.service.RecheckCompletion(ctx, suite.placement.PlacementID)

	suite.Require().NoError(err)
	suite.mockPlacementRepo.AssertNotCalled(suite.T(), "UpdatePlacementState", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProgressServiceTestSuite) TestRecheckCompletion_NotInProgress() {
	ctx := context.Background()
	for _, state := range []domain.PlacementState{
		domain.StateSolicited,
		domain.StateCoordinatorApproved,
		domain.StateCompleted,
		domain.StateRejected,
	} {
		placement := *suite.placement
		placement.State = state
		suite.mockPlacementRepo.On("FindPlacementByID", ctx, placement.PlacementID).Return(&placement, nil).Once()

		err := suite.service.RecheckCompletion(ctx, placement.PlacementID)

		suite.Require().NoError(err, "state=%s", state)
	}
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetHoursBreakdown", mock.Anything, mock.Anything)
}

func (suite *ProgressServiceTestSuite) TestRecheckCompletion_ZeroRequiredHoursNeverCompletes() {
	ctx := context.Background()
	placement := *suite.placement
	placement.RequiredHours = 0
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, placement.PlacementID).Return(&placement, nil).Once()
	suite.mockReportingRepo.On("GetHoursBreakdown", ctx, placement.PlacementID).
		Return(domain.HoursBreakdown{Completed: 200, Approved: 200}, nil).Once()

	err := suite.service.RecheckCompletion(ctx, placement.PlacementID)

	suite.Require().NoError(err)
	suite.mockPlacementRepo.AssertNotCalled(suite.T(), "UpdatePlacementState", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProgressServiceTestSuite) TestRecheckCompletion_ConcurrentCompletionTolerated() {
	ctx := context.Background()
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, suite.placement.PlacementID).Return(suite.placement, nil).Once()
	suite.mockReportingRepo.On("GetHoursBreakdown", ctx, suite.placement.PlacementID).
		Return(domain.HoursBreakdown{Completed: 500, Approved: 500}, nil).Once()
	// A parallel recheck won the guarded update.
	suite.mockPlacementRepo.On("UpdatePlacementState", ctx, mock.AnythingOfType("domain.Placement"), domain.StateInProgress).
		Return(apperrors.NewConflictError("placement state changed")).Once()

	err := suite.service.RecheckCompletion(ctx, suite.placement.PlacementID)

	suite.Require().NoError(err)
	suite.mockNotifier.AssertNotCalled(suite.T(), "Dispatch", mock.Anything, mock.Anything)
}

func TestProgressServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProgressServiceTestSuite))
}
