package services

import (
	"context"

	portsrepo "github.com/SvcLearn/service_learning_app/internal/core/ports/repositories"
	portssvc "github.com/SvcLearn/service_learning_app/internal/core/ports/services"

	"github.com/SvcLearn/service_learning_app/internal/core/domain"
)

// notificationService persists notification request batches for the delivery
// collaborator. Failures are logged and swallowed so a notification problem
// can never fail or roll back the operation that produced the batch.
type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationWriter
}

// NewNotificationService creates a new notification dispatcher.
func NewNotificationService(notificationRepo portsrepo.NotificationWriter) portssvc.NotifierSvc {
	return &notificationService{notificationRepo: notificationRepo}
}

var _ portssvc.NotifierSvc = (*notificationService)(nil)

// Dispatch persists a batch of notification requests.
func (s *notificationService) Dispatch(ctx context.Context, notifications []domain.Notification) {
	if len(notifications) == 0 {
		return
	}
	if err := s.notificationRepo.SaveNotifications(ctx, notifications); err != nil {
		s.LogError(ctx, err, "failed to persist notification batch", "count", len(notifications))
		return
	}
	s.LogDebug(ctx, "notification batch dispatched", "count", len(notifications))
}
