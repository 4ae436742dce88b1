package services

import (
	"context"

	"github.com/SvcLearn/service_learning_app/internal/core/domain"
)

// UserSvcFacade exposes the user lookups needed by the auth boundary.
type UserSvcFacade interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// Authenticate verifies credentials and returns the matching user, or
	// apperrors.ErrUnauthorized when they do not match.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}
