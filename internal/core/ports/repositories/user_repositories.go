package repositories

import (
	"context"

	"github.com/SvcLearn/service_learning_app/internal/core/domain"
)

// UserReader defines the read operations the workflow needs on user records.
type UserReader interface {
	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsersByOrganization retrieves all member users of an organization.
	ListUsersByOrganization(ctx context.Context, organizationID string) ([]domain.User, error)
}
