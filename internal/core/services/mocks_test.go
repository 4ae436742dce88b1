package services_test

import (
	"context"
	"io"
	"time"

	"github.com/SvcLearn/service_learning_app/internal/core/domain"
	portsrepo "github.com/SvcLearn/service_learning_app/internal/core/ports/repositories"
	portssvc "github.com/SvcLearn/service_learning_app/internal/core/ports/services"
	"github.com/SvcLearn/service_learning_app/internal/platform/storage"
	"github.com/stretchr/testify/mock"
)

// --- Mock PlacementRepository ---
type MockPlacementRepository struct {
	mock.Mock
}

var _ portsrepo.PlacementRepositoryFacade = (*MockPlacementRepository)(nil)

func (m *MockPlacementRepository) FindPlacementByID(ctx context.Context, placementID string) (*domain.Placement, error) {
	args := m.Called(ctx, placementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Placement), args.Error(1)
}

func (m *MockPlacementRepository) FindPlacementByApplicationID(ctx context.Context, applicationID string) (*domain.Placement, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Placement), args.Error(1)
}

func (m *MockPlacementRepository) ListPlacementsByStudent(ctx context.Context, studentID string) ([]domain.Placement, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Placement), args.Error(1)
}

func (m *MockPlacementRepository) ListPlacementsByOrganization(ctx context.Context, organizationID string, states []domain.PlacementState) ([]domain.Placement, error) {
	args := m.Called(ctx, organizationID, states)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Placement), args.Error(1)
}

func (m *MockPlacementRepository) ListPlacements(ctx context.Context, state *domain.PlacementState) ([]domain.Placement, error) {
	args := m.Called(ctx, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Placement), args.Error(1)
}

func (m *MockPlacementRepository) SavePlacement(ctx context.Context, placement domain.Placement) error {
	args := m.Called(ctx, placement)
	return args.Error(0)
}

func (m *MockPlacementRepository) UpdatePlacementState(ctx context.Context, placement domain.Placement, expectedState domain.PlacementState) error {
	args := m.Called(ctx, placement, expectedState)
	return args.Error(0)
}

func (m *MockPlacementRepository) DeletePlacement(ctx context.Context, placementID string, expectedState domain.PlacementState) error {
	args := m.Called(ctx, placementID, expectedState)
	return args.Error(0)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListEntriesByPlacement(ctx context.Context, placementID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, placementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListEntriesByPlacementMonth(ctx context.Context, placementID string, year int, month time.Month) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, placementID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) UpdateEntryReview(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetHoursBreakdown(ctx context.Context, placementID string) (domain.HoursBreakdown, error) {
	args := m.Called(ctx, placementID)
	return args.Get(0).(domain.HoursBreakdown), args.Error(1)
}

func (m *MockReportingRepository) GetMonthlyHours(ctx context.Context, placementID string) ([]domain.MonthlyHoursAggregate, error) {
	args := m.Called(ctx, placementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyHoursAggregate), args.Error(1)
}

func (m *MockReportingRepository) GetPlacementStatusCounts(ctx context.Context) (domain.PlacementStatusCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.PlacementStatusCounts), args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserReader = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsersByOrganization(ctx context.Context, organizationID string) ([]domain.User, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Mock ApplicationRepository ---
type MockApplicationRepository struct {
	mock.Mock
}

var _ portsrepo.ApplicationReader = (*MockApplicationRepository)(nil)

func (m *MockApplicationRepository) FindAcceptedApplication(ctx context.Context, applicationID, studentID string) (*domain.AcceptedApplication, error) {
	args := m.Called(ctx, applicationID, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AcceptedApplication), args.Error(1)
}

// --- Mock NotificationRepository ---
type MockNotificationRepository struct {
	mock.Mock
}

var _ portsrepo.NotificationWriter = (*MockNotificationRepository)(nil)

func (m *MockNotificationRepository) SaveNotifications(ctx context.Context, notifications []domain.Notification) error {
	args := m.Called(ctx, notifications)
	return args.Error(0)
}

// --- Mock Notifier ---
type MockNotifier struct {
	mock.Mock
}

var _ portssvc.NotifierSvc = (*MockNotifier)(nil)

func (m *MockNotifier) Dispatch(ctx context.Context, notifications []domain.Notification) {
	m.Called(ctx, notifications)
}

// --- Mock ProgressRecalculator ---
type MockProgressRecalculator struct {
	mock.Mock
}

var _ portssvc.ProgressRecalculator = (*MockProgressRecalculator)(nil)

func (m *MockProgressRecalculator) RecheckCompletion(ctx context.Context, placementID string) error {
	args := m.Called(ctx, placementID)
	return args.Error(0)
}

// --- Mock EvidenceStore ---
type MockEvidenceStore struct {
	mock.Mock
}

var _ storage.EvidenceStore = (*MockEvidenceStore)(nil)

func (m *MockEvidenceStore) Store(ctx context.Context, originalName string, content io.Reader) (string, error) {
	args := m.Called(ctx, originalName, content)
	return args.String(0), args.Error(1)
}

func (m *MockEvidenceStore) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}
