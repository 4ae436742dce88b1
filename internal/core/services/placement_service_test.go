package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SvcLearn/service_learning_app/internal/apperrors"
	"github.com/SvcLearn/service_learning_app/internal/core/domain"
	portssvc "github.com/SvcLearn/service_learning_app/internal/core/ports/services"
	"github.com/SvcLearn/service_learning_app/internal/core/services"
	"github.com/SvcLearn/service_learning_app/internal/dto"
)

const testDefaultRequiredHours = 480

// --- Test Suite Setup ---
type PlacementServiceTestSuite struct {
	suite.Suite
	mockPlacementRepo   *MockPlacementRepository
	mockApplicationRepo *MockApplicationRepository
	mockUserRepo        *MockUserRepository
	mockReportingRepo   *MockReportingRepository
	mockNotifier        *MockNotifier
	service             portssvc.PlacementSvcFacade

	studentID      string
	organizationID string
	coordinatorID  string
	student        domain.Actor
	orgMember      domain.Actor
	coordinator    domain.Actor
}

func (suite *PlacementServiceTestSuite) SetupTest() {
	suite.mockPlacementRepo = new(MockPlacementRepository)
	suite.mockApplicationRepo = new(MockApplicationRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockNotifier = new(MockNotifier)

	suite.studentID = uuid.NewString()
	suite.organizationID = uuid.NewString()
	suite.coordinatorID = uuid.NewString()
	suite.student = domain.Actor{UserID: suite.studentID, Role: domain.RoleStudent}
	suite.orgMember = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleOrganization, OrganizationID: suite.organizationID}
	suite.coordinator = domain.Actor{UserID: suite.coordinatorID, Role: domain.RoleCoordinator}

	suite.service = services.NewPlacementService(
		suite.mockPlacementRepo,
		suite.mockApplicationRepo,
		suite.mockUserRepo,
		suite.mockReportingRepo,
		suite.mockNotifier,
		suite.coordinatorID,
		testDefaultRequiredHours,
	)
}

func (suite *PlacementServiceTestSuite) placementInState(state domain.PlacementState) *domain.Placement {
	return &domain.Placement{
		PlacementID:      uuid.NewString(),
		ApplicationID:    uuid.NewString(),
		StudentID:        suite.studentID,
		OrganizationID:   suite.organizationID,
		CoordinatorID:    suite.coordinatorID,
		ProjectName:      "Community Library Catalog",
		StartDate:        time.Now().AddDate(0, -1, 0),
		EstimatedEndDate: time.Now().AddDate(0, 5, 0),
		RequiredHours:    testDefaultRequiredHours,
		State:            state,
		RequestedAt:      time.Now().AddDate(0, -1, 0),
	}
}

func (suite *PlacementServiceTestSuite) expectNoDispatch() {
	suite.mockNotifier.AssertNotCalled(suite.T(), "Dispatch", mock.Anything, mock.Anything)
}

// --- RequestPlacement ---

func (suite *PlacementServiceTestSuite) TestRequestPlacement_Success() {
	ctx := context.Background()
	application := &domain.AcceptedApplication{
		ApplicationID:  uuid.NewString(),
		StudentID:      suite.studentID,
		OrganizationID: suite.organizationID,
		JobListingID:   uuid.NewString(),
	}
	req := dto.RequestPlacementRequest{
		ApplicationID:    application.ApplicationID,
		Career:           "Computer Systems Engineering",
		Semester:         "8",
		ControlNumber:    "19280384",
		ProjectName:      "Community Library Catalog",
		MainActivities:   "Catalog digitization and shelf audits",
		StartDate:        time.Now(),
		EstimatedEndDate: time.Now().AddDate(0, 6, 0),
	}

	suite.mockApplicationRepo.On("FindAcceptedApplication", ctx, application.ApplicationID, suite.studentID).Return(application, nil).Once()

	var saved domain.Placement
	suite.mockPlacementRepo.On("SavePlacement", ctx, mock.AnythingOfType("domain.Placement")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Placement) }).
		Return(nil).Once()

	suite.mockUserRepo.On("FindUserByID", ctx, suite.studentID).
		Return(&domain.User{UserID: suite.studentID, Name: "Dana Ruiz"}, nil).Once()
	members := []domain.User{
		{UserID: uuid.NewString(), Role: domain.RoleOrganization, OrganizationID: suite.organizationID},
		{UserID: uuid.NewString(), Role: domain.RoleOrganization, OrganizationID: suite.organizationID},
	}
	suite.mockUserRepo.On("ListUsersByOrganization", ctx, suite.organizationID).Return(members, nil).Once()

	var dispatched []domain.Notification
	suite.mockNotifier.On("Dispatch", ctx, mock.AnythingOfType("[]domain.Notification")).
		Run(func(args mock.Arguments) { dispatched = args.Get(1).([]domain.Notification) }).
		Return().Once()

	placement, err := suite.service.RequestPlacement(ctx, suite.student, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(placement)
	suite.Equal(domain.StateSolicited, placement.State)
	suite.Equal(suite.studentID, placement.StudentID)
	suite.Equal(suite.organizationID, placement.OrganizationID)
	suite.Equal(suite.coordinatorID, placement.CoordinatorID)
	suite.Equal(testDefaultRequiredHours, placement.RequiredHours) // zero in request falls back to the default
	suite.False(placement.CoordinatorApproved())
	suite.False(placement.OrganizationAccepted())
	suite.Equal(placement.PlacementID, saved.PlacementID)

	// Coordinator plus every organization member hears about the request.
	suite.Require().Len(dispatched, 3)
	recipients := map[string]bool{}
	for _, n := range dispatched {
		recipients[n.RecipientID] = true
	}
	suite.True(recipients[suite.coordinatorID])
	suite.True(recipients[members[0].UserID])
	suite.True(recipients[members[1].UserID])

	suite.mockPlacementRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *PlacementServiceTestSuite) TestRequestPlacement_NonStudentForbidden() {
	ctx := context.Background()

	_, err := suite.service.RequestPlacement(ctx, suite.orgMember, dto.RequestPlacementRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockApplicationRepo.AssertNotCalled(suite.T(), "FindAcceptedApplication", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PlacementServiceTestSuite) TestRequestPlacement_NoAcceptedApplication() {
	ctx := context.Background()
	applicationID := uuid.NewString()
	suite.mockApplicationRepo.On("FindAcceptedApplication", ctx, applicationID, suite.studentID).
		Return(nil, apperrors.NewNotFoundError("no accepted application")).Once()

	_, err := suite.service.RequestPlacement(ctx, suite.student, dto.RequestPlacementRequest{ApplicationID: applicationID})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPlacementRepo.AssertNotCalled(suite.T(), "SavePlacement", mock.Anything, mock.Anything)
}

func (suite *PlacementServiceTestSuite) TestRequestPlacement_EndDateNotAfterStart() {
	ctx := context.Background()
	application := &domain.AcceptedApplication{ApplicationID: uuid.NewString(), StudentID: suite.studentID, OrganizationID: suite.organizationID}
	suite.mockApplicationRepo.On("FindAcceptedApplication", ctx, application.ApplicationID, suite.studentID).Return(application, nil).Once()

	start := time.Now()
	_, err := suite.service.RequestPlacement(ctx, suite.student, dto.RequestPlacementRequest{
		ApplicationID:    application.ApplicationID,
		StartDate:        start,
		EstimatedEndDate: start.AddDate(0, 0, -1),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPlacementRepo.AssertNotCalled(suite.T(), "SavePlacement", mock.Anything, mock.Anything)
}

func (suite *PlacementServiceTestSuite) TestRequestPlacement_ExplicitRequiredHours() {
	ctx := context.Background()
	application := &domain.AcceptedApplication{ApplicationID: uuid.NewString(), StudentID: suite.studentID, OrganizationID: suite.organizationID}
	suite.mockApplicationRepo.On("FindAcceptedApplication", ctx, application.ApplicationID, suite.studentID).Return(application, nil).Once()
	suite.mockPlacementRepo.On("SavePlacement", ctx, mock.AnythingOfType("domain.Placement")).Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.studentID).Return(&domain.User{UserID: suite.studentID, Name: "Dana"}, nil).Once()
	suite.mockUserRepo.On("ListUsersByOrganization", ctx, suite.organizationID).Return([]domain.User{}, nil).Once()
	suite.mockNotifier.On("Dispatch", ctx, mock.AnythingOfType("[]domain.Notification")).Return().Once()

	placement, err := suite.service.RequestPlacement(ctx, suite.student, dto.RequestPlacementRequest{
		ApplicationID:    application.ApplicationID,
		StartDate:        time.Now(),
		EstimatedEndDate: time.Now().AddDate(0, 3, 0),
		RequiredHours:    300,
	})

	suite.Require().NoError(err)
	suite.Equal(300, placement.RequiredHours)
}

func (suite *PlacementServiceTestSuite) TestRequestPlacement_DuplicateApplication() {
	ctx := context.Background()
	application := &domain.AcceptedApplication{ApplicationID: uuid.NewString(), StudentID: suite.studentID, OrganizationID: suite.organizationID}
	suite.mockApplicationRepo.On("FindAcceptedApplication", ctx, application.ApplicationID, suite.studentID).Return(application, nil).Once()
	suite.mockPlacementRepo.On("SavePlacement", ctx, mock.AnythingOfType("domain.Placement")).
		Return(apperrors.NewAppError(409, "a placement already exists for this application", apperrors.ErrDuplicate)).Once()

	_, err := suite.service.RequestPlacement(ctx, suite.student, dto.RequestPlacementRequest{
		ApplicationID:    application.ApplicationID,
		StartDate:        time.Now(),
		EstimatedEndDate: time.Now().AddDate(0, 3, 0),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.expectNoDispatch()
}

// --- Coordinator gate ---

func (suite *PlacementServiceTestSuite) TestCoordinatorApprove_Success() {
	ctx := context.Background()
	placement := suite.placementInState(domain.StateSolicited)
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, placement.PlacementID).Return(placement, nil).Once()

	var updated domain.Placement
	suite.mockPlacementRepo.On("UpdatePlacementState", ctx, mock.AnythingOfType("domain.Placement"), domain.StateSolicited).
		Run(func(args mock.Arguments) { updated = args.Get(1).(domain.Placement) }).
		Return(nil).Once()
	suite.mockUserRepo.On("ListUsersByOrganization", ctx, suite.organizationID).
		Return([]domain.User{{UserID: suite.orgMember.UserID}}, nil).Once()

	var dispatched []domain.Notification
	suite.mockNotifier.On("Dispatch", ctx, mock.AnythingOfType("[]domain.Notification")).
		Run(func(args mock.Arguments) { dispatched = args.Get(1).([]domain.Notification) }).
		Return().Once()

	result, err := suite.service.CoordinatorApprove(ctx, suite.coordinator, placement.PlacementID, "looks solid")

	suite.Require().NoError(err)
	suite.Equal(domain.StateCoordinatorApproved, result.State)
	suite.Equal(domain.StateCoordinatorApproved, updated.State)
	suite.Equal("looks solid", result.CoordinatorNotes)
	suite.Require().NotNil(result.CoordinatorDecidedAt)
	suite.Nil(result.FinalizedAt)
	suite.True(result.CoordinatorApproved())
	suite.False(result.OrganizationAccepted())

	// Student and the organization both hear about the decision.
	suite.Require().Len(dispatched, 2)
	suite.Equal(suite.studentID, dispatched[0].RecipientID)
	suite.Equal(suite.orgMember.UserID, dispatched[1].RecipientID)
	suite.mockPlacementRepo.AssertExpectations(suite.T())
}

func (suite *PlacementServiceTestSuite) TestCoordinatorApprove_NonCoordinatorForbidden() {
	ctx := context.Background()

	_, err := suite.service.CoordinatorApprove(ctx, suite.student, uuid.NewString(), "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockPlacementRepo.AssertNotCalled(suite.T(), "FindPlacementByID", mock.Anything, mock.Anything)
}

func (suite *PlacementServiceTestSuite) TestCoordinatorApprove_AlreadyDecided() {
	ctx := context.Background()
	placement := suite.placementInState(domain.StateCoordinatorApproved)
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, placement.PlacementID).Return(placement, nil).Once()

	_, err := suite.service.CoordinatorApprove(ctx, suite.coordinator, placement.PlacementID, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockPlacementRepo.AssertNotCalled(suite.T(), "UpdatePlacementState", mock.Anything, mock.Anything, mock.Anything)
	suite.expectNoDispatch()
}

func (suite *PlacementServiceTestSuite) TestCoordinatorApprove_LostRace() {
	ctx := context.Background()
	placement := suite.placementInState(domain.StateSolicited)
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, placement.PlacementID).Return(placement, nil).Once()
	// Another decision landed between the read and the guarded update.
	suite.mockPlacementRepo.On("UpdatePlacementState", ctx, mock.AnythingOfType("domain.Placement"), domain.StateSolicited).
		Return(apperrors.NewConflictError("placement state changed")).Once()

	_, err := suite.service.CoordinatorApprove(ctx, suite.coordinator, placement.PlacementID, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.expectNoDispatch()
}

func (suite *PlacementServiceTestSuite) TestCoordinatorReject_RequiresNotes() {
	ctx := context.Background()

	_, err := suite.service.CoordinatorReject(ctx, suite.coordinator, uuid.NewString(), "   ")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPlacementRepo.AssertNotCalled(suite.T(), "FindPlacementByID", mock.Anything, mock.Anything)
}

func (suite *PlacementServiceTestSuite) TestCoordinatorReject_Success() {
	ctx := context.Background()
	placement := suite.placementInState(domain.StateSolicited)
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, placement.PlacementID).Return(placement, nil).Once()
	suite.mockPlacementRepo.On("UpdatePlacementState", ctx, mock.AnythingOfType("domain.Placement"), domain.StateSolicited).Return(nil).Once()

	var dispatched []domain.Notification
	suite.mockNotifier.On("Dispatch", ctx, mock.AnythingOfType("[]domain.Notification")).
		Run(func(args mock.Arguments) { dispatched = args.Get(1).([]domain.Notification) }).
		Return().Once()

	result, err := suite.service.CoordinatorReject(ctx, suite.coordinator, placement.PlacementID, "missing project plan")

	suite.Require().NoError(err)
	suite.Equal(domain.StateRejected, result.State)
	suite.Require().NotNil(result.FinalizedAt)
	suite.True(result.IsTerminal())
	suite.Require().Len(dispatched, 1)
	suite.Equal(suite.studentID, dispatched[0].RecipientID)
	suite.Contains(dispatched[0].Body, "missing project plan")
}

// --- Organization gate ---

func (suite *PlacementServiceTestSuite) TestOrganizationAccept_Success() {
	ctx := context.Background()
	placement := suite.placementInState(domain.StateCoordinatorApproved)
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, placement.PlacementID).Return(placement, nil).Once()

	var updated domain.Placement
	suite.mockPlacementRepo.On("UpdatePlacementState", ctx, mock.AnythingOfType("domain.Placement"), domain.StateCoordinatorApproved).
		Run(func(args mock.Arguments) { updated = args.Get(1).(domain.Placement) }).
		Return(nil).Once()

	var dispatched []domain.Notification
	suite.mockNotifier.On("Dispatch", ctx, mock.AnythingOfType("[]domain.Notification")).
		Run(func(args mock.Arguments) { dispatched = args.Get(1).([]domain.Notification) }).
		Return().Once()

	result, err := suite.service.OrganizationAccept(ctx, suite.orgMember, placement.PlacementID, "welcome aboard")

	suite.Require().NoError(err)
	// Acceptance opens the hours process immediately.
	suite.Equal(domain.StateInProgress, result.State)
	suite.Equal(domain.StateInProgress, updated.State)
	suite.Require().NotNil(result.OrganizationDecidedAt)
	suite.Require().NotNil(result.ProcessStartedAt)
	suite.True(result.CoordinatorApproved())
	suite.True(result.OrganizationAccepted())
	suite.True(result.HoursEligible())

	suite.Require().Len(dispatched, 2)
	suite.Equal(suite.studentID, dispatched[0].RecipientID)
	suite.Equal(suite.coordinatorID, dispatched[1].RecipientID)
}

func (suite *PlacementServiceTestSuite) TestOrganizationAccept_BeforeCoordinatorGate() {
	ctx := context.Background()
	placement := suite.placementInState(domain.StateSolicited)
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, placement.PlacementID).Return(placement, nil).Once()

	_, err := suite.service.OrganizationAccept(ctx, suite.orgMember, placement.PlacementID, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockPlacementRepo.AssertNotCalled(suite.T(), "UpdatePlacementState", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PlacementServiceTestSuite) TestOrganizationAccept_ForeignPlacementObscured() {
	ctx := context.Background()
	placement := suite.placementInState(domain.StateCoordinatorApproved)
	placement.OrganizationID = uuid.NewString() // belongs to another organization
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, placement.PlacementID).Return(placement, nil).Once()

	_, err := suite.service.OrganizationAccept(ctx, suite.orgMember, placement.PlacementID, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PlacementServiceTestSuite) TestOrganizationAccept_StudentForbidden() {
	ctx := context.Background()

	_, err := suite.service.OrganizationAccept(ctx, suite.student, uuid.NewString(), "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *PlacementServiceTestSuite) TestOrganizationReject_RequiresNotes() {
	ctx := context.Background()

	_, err := suite.service.OrganizationReject(ctx, suite.orgMember, uuid.NewString(), "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPlacementRepo.AssertNotCalled(suite.T(), "FindPlacementByID", mock.Anything, mock.Anything)
}

func (suite *PlacementServiceTestSuite) TestOrganizationReject_Success() {
	ctx := context.Background()
	placement := suite.placementInState(domain.StateCoordinatorApproved)
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, placement.PlacementID).Return(placement, nil).Once()
	suite.mockPlacementRepo.On("UpdatePlacementState", ctx, mock.AnythingOfType("domain.Placement"), domain.StateCoordinatorApproved).Return(nil).Once()

	var dispatched []domain.Notification
	suite.mockNotifier.On("Dispatch", ctx, mock.AnythingOfType("[]domain.Notification")).
		Run(func(args mock.Arguments) { dispatched = args.Get(1).([]domain.Notification) }).
		Return().Once()

	result, err := suite.service.OrganizationReject(ctx, suite.orgMember, placement.PlacementID, "no capacity this semester")

	suite.Require().NoError(err)
	suite.Equal(domain.StateRejected, result.State)
	suite.Require().NotNil(result.FinalizedAt)
	suite.Require().Len(dispatched, 2)
	suite.Equal(suite.studentID, dispatched[0].RecipientID)
	suite.Equal(suite.coordinatorID, dispatched[1].RecipientID)
}

// --- Cancel ---

func (suite *PlacementServiceTestSuite) TestCancelPlacement_Success() {
	ctx := context.Background()
	placement := suite.placementInState(domain.StateSolicited)
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, placement.PlacementID).Return(placement, nil).Once()
	suite.mockPlacementRepo.On("DeletePlacement", ctx, placement.PlacementID, domain.StateSolicited).Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.studentID).Return(&domain.User{UserID: suite.studentID, Name: "Dana"}, nil).Once()
	suite.mockUserRepo.On("ListUsersByOrganization", ctx, suite.organizationID).Return([]domain.User{{UserID: suite.orgMember.UserID}}, nil).Once()

	var dispatched []domain.Notification
	suite.mockNotifier.On("Dispatch", ctx, mock.AnythingOfType("[]domain.Notification")).
		Run(func(args mock.Arguments) { dispatched = args.Get(1).([]domain.Notification) }).
		Return().Once()

	err := suite.service.CancelPlacement(ctx, suite.student, placement.PlacementID)

	suite.Require().NoError(err)
	suite.Require().Len(dispatched, 2)
	suite.Equal(suite.coordinatorID, dispatched[0].RecipientID)
	suite.Equal(suite.orgMember.UserID, dispatched[1].RecipientID)
	suite.mockPlacementRepo.AssertExpectations(suite.T())
}

func (suite *PlacementServiceTestSuite) TestCancelPlacement_AfterDecision() {
	ctx := context.Background()
	placement := suite.placementInState(domain.StateCoordinatorApproved)
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, placement.PlacementID).Return(placement, nil).Once()

	err := suite.service.CancelPlacement(ctx, suite.student, placement.PlacementID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockPlacementRepo.AssertNotCalled(suite.T(), "DeletePlacement", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PlacementServiceTestSuite) TestCancelPlacement_LostRaceToDecision() {
	ctx := context.Background()
	placement := suite.placementInState(domain.StateSolicited)
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, placement.PlacementID).Return(placement, nil).Once()
	// The coordinator decided between the read and the guarded delete.
	suite.mockPlacementRepo.On("DeletePlacement", ctx, placement.PlacementID, domain.StateSolicited).
		Return(apperrors.NewConflictError("placement is no longer solicited")).Once()

	err := suite.service.CancelPlacement(ctx, suite.student, placement.PlacementID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.expectNoDispatch()
}

func (suite *PlacementServiceTestSuite) TestCancelPlacement_NotOwnerObscured() {
	ctx := context.Background()
	placement := suite.placementInState(domain.StateSolicited)
	otherStudent := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleStudent}
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, placement.PlacementID).Return(placement, nil).Once()

	err := suite.service.CancelPlacement(ctx, otherStudent, placement.PlacementID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Visibility ---

func (suite *PlacementServiceTestSuite) TestGetPlacement_OwnerSees() {
	ctx := context.Background()
	placement := suite.placementInState(domain.StateInProgress)
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, placement.PlacementID).Return(placement, nil).Once()

	result, err := suite.service.GetPlacement(ctx, suite.student, placement.PlacementID)

	suite.Require().NoError(err)
	suite.Equal(placement.PlacementID, result.PlacementID)
}

func (suite *PlacementServiceTestSuite) TestGetPlacement_CrossTenantObscured() {
	ctx := context.Background()
	placement := suite.placementInState(domain.StateInProgress)
	foreignMember := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleOrganization, OrganizationID: uuid.NewString()}
	suite.mockPlacementRepo.On("FindPlacementByID", ctx, placement.PlacementID).Return(placement, nil).Once()

	_, err := suite.service.GetPlacement(ctx, foreignMember, placement.PlacementID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PlacementServiceTestSuite) TestListPlacements_OrganizationSeesPostGateOnly() {
	ctx := context.Background()
	expectedStates := []domain.PlacementState{
		domain.StateCoordinatorApproved,
		domain.StateInProgress,
		domain.StateCompleted,
		domain.StateRejected,
	}
	suite.mockPlacementRepo.On("ListPlacementsByOrganization", ctx, suite.organizationID, expectedStates).
		Return([]domain.Placement{}, nil).Once()

	_, err := suite.service.ListPlacements(ctx, suite.orgMember, dto.ListPlacementsParams{})

	suite.Require().NoError(err)
	suite.mockPlacementRepo.AssertExpectations(suite.T())
}

func (suite *PlacementServiceTestSuite) TestListPlacements_StudentSeesOwn() {
	ctx := context.Background()
	suite.mockPlacementRepo.On("ListPlacementsByStudent", ctx, suite.studentID).
		Return([]domain.Placement{*suite.placementInState(domain.StateSolicited)}, nil).Once()

	placements, err := suite.service.ListPlacements(ctx, suite.student, dto.ListPlacementsParams{})

	suite.Require().NoError(err)
	suite.Len(placements, 1)
}

func (suite *PlacementServiceTestSuite) TestStatusCounts_CoordinatorOnly() {
	ctx := context.Background()

	_, err := suite.service.StatusCounts(ctx, suite.student)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *PlacementServiceTestSuite) TestStatusCounts_Success() {
	ctx := context.Background()
	counts := domain.PlacementStatusCounts{Solicited: 3, InProgress: 5, Completed: 2}
	suite.mockReportingRepo.On("GetPlacementStatusCounts", ctx).Return(counts, nil).Once()

	result, err := suite.service.StatusCounts(ctx, suite.coordinator)

	suite.Require().NoError(err)
	suite.Equal(counts, *result)
}

func TestPlacementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlacementServiceTestSuite))
}
