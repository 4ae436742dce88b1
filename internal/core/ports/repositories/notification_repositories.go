package repositories

import (
	"context"

	"github.com/SvcLearn/service_learning_app/internal/core/domain"
)

// NotificationWriter persists notification requests for the delivery collaborator.
type NotificationWriter interface {
	// SaveNotifications inserts a batch of notification requests.
	SaveNotifications(ctx context.Context, notifications []domain.Notification) error
}
