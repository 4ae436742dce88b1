package services

import (
	"context"

	"github.com/SvcLearn/service_learning_app/internal/core/domain"
	"github.com/SvcLearn/service_learning_app/internal/dto"
)

// PlacementReaderSvc defines read operations on placements.
type PlacementReaderSvc interface {
	// GetPlacement retrieves a placement visible to the acting user.
	GetPlacement(ctx context.Context, actor domain.Actor, placementID string) (*domain.Placement, error)

	// ListPlacements retrieves the placements visible to the acting user:
	// a student sees their own, an organization member their organization's
	// (from the coordinator gate onward), the coordinator all of them.
	ListPlacements(ctx context.Context, actor domain.Actor, params dto.ListPlacementsParams) ([]domain.Placement, error)

	// StatusCounts returns per-state placement counts for the coordinator dashboard.
	StatusCounts(ctx context.Context, actor domain.Actor) (*domain.PlacementStatusCounts, error)
}

// PlacementWriterSvc defines the lifecycle transitions of a placement.
type PlacementWriterSvc interface {
	// RequestPlacement creates a placement in the solicited state from an
	// accepted application owned by the acting student.
	RequestPlacement(ctx context.Context, actor domain.Actor, req dto.RequestPlacementRequest) (*domain.Placement, error)

	// CoordinatorApprove passes the coordinator gate of a solicited placement.
	CoordinatorApprove(ctx context.Context, actor domain.Actor, placementID string, notes string) (*domain.Placement, error)

	// CoordinatorReject terminally rejects a solicited placement. Notes are required.
	CoordinatorReject(ctx context.Context, actor domain.Actor, placementID string, notes string) (*domain.Placement, error)

	// OrganizationAccept passes the organization gate of a coordinator-approved
	// placement and immediately starts the hours process.
	OrganizationAccept(ctx context.Context, actor domain.Actor, placementID string, notes string) (*domain.Placement, error)

	// OrganizationReject terminally rejects a coordinator-approved placement. Notes are required.
	OrganizationReject(ctx context.Context, actor domain.Actor, placementID string, notes string) (*domain.Placement, error)

	// CancelPlacement deletes the acting student's placement while it is
	// still solicited.
	CancelPlacement(ctx context.Context, actor domain.Actor, placementID string) error
}

// PlacementSvcFacade combines all placement service interfaces.
type PlacementSvcFacade interface {
	PlacementReaderSvc
	PlacementWriterSvc
}
