package repositories

import (
	"context"

	"github.com/SvcLearn/service_learning_app/internal/core/domain"
)

// ApplicationReader is the boundary to the application-tracking collaborator.
type ApplicationReader interface {
	// FindAcceptedApplication retrieves an accepted application owned by the
	// given student. Applications in any other state, or owned by someone
	// else, surface as apperrors.ErrNotFound.
	FindAcceptedApplication(ctx context.Context, applicationID, studentID string) (*domain.AcceptedApplication, error)
}
