package repositories

import (
	"context"

	"github.com/SvcLearn/service_learning_app/internal/core/domain"
)

// PlacementReader defines read operations for placement data.
type PlacementReader interface {
	// FindPlacementByID retrieves a specific placement by its unique identifier.
	FindPlacementByID(ctx context.Context, placementID string) (*domain.Placement, error)

	// FindPlacementByApplicationID retrieves the placement created from an
	// application, if any. Returns apperrors.ErrNotFound when none exists.
	FindPlacementByApplicationID(ctx context.Context, applicationID string) (*domain.Placement, error)

	// ListPlacementsByStudent retrieves all placements owned by a student, newest first.
	ListPlacementsByStudent(ctx context.Context, studentID string) ([]domain.Placement, error)

	// ListPlacementsByOrganization retrieves an organization's placements
	// restricted to the given states, newest first.
	ListPlacementsByOrganization(ctx context.Context, organizationID string, states []domain.PlacementState) ([]domain.Placement, error)

	// ListPlacements retrieves all placements, optionally filtered by state, newest first.
	ListPlacements(ctx context.Context, state *domain.PlacementState) ([]domain.Placement, error)
}

// PlacementWriter defines write operations for placement data.
type PlacementWriter interface {
	// SavePlacement persists a new placement. A second placement for the
	// same application fails with apperrors.ErrDuplicate.
	SavePlacement(ctx context.Context, placement domain.Placement) error

	// UpdatePlacementState persists a transition. The update is guarded by
	// expectedState at the data layer: if the stored state no longer
	// matches, nothing is written and apperrors.ErrConflict is returned, so
	// concurrent actors serialize on the row itself.
	UpdatePlacementState(ctx context.Context, placement domain.Placement, expectedState domain.PlacementState) error

	// DeletePlacement removes a placement and, by cascade, its ledger
	// entries. Like UpdatePlacementState it is guarded by expectedState:
	// if the stored state no longer matches, nothing is deleted and
	// apperrors.ErrConflict is returned.
	DeletePlacement(ctx context.Context, placementID string, expectedState domain.PlacementState) error
}

// PlacementRepositoryFacade combines all placement repository interfaces.
type PlacementRepositoryFacade interface {
	PlacementReader
	PlacementWriter
}
