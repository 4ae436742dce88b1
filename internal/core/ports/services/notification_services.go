package services

import (
	"context"

	"github.com/SvcLearn/service_learning_app/internal/core/domain"
)

// NotifierSvc receives notification request batches from the workflow.
// Dispatch is fire-and-forget: failures are logged and never propagated, so
// a notification problem can never roll back a state transition.
type NotifierSvc interface {
	Dispatch(ctx context.Context, notifications []domain.Notification)
}
