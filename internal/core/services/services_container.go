package services

import (
	portsrepo "github.com/SvcLearn/service_learning_app/internal/core/ports/repositories"
	portssvc "github.com/SvcLearn/service_learning_app/internal/core/ports/services"
	"github.com/SvcLearn/service_learning_app/internal/platform/cache"
	"github.com/SvcLearn/service_learning_app/internal/platform/config"
	"github.com/SvcLearn/service_learning_app/internal/platform/storage"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, progressCache *cache.ProgressCache, evidence storage.EvidenceStore) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The notifier comes first since every workflow service emits batches through it.
	container.Notifier = NewNotificationService(repos.NotificationRepo)

	container.User = NewUserService(repos.UserRepo)

	container.Placement = NewPlacementService(
		repos.PlacementRepo,
		repos.ApplicationRepo,
		repos.UserRepo,
		repos.ReportingRepo,
		container.Notifier,
		cfg.CoordinatorUserID,
		cfg.DefaultRequiredHours,
	)

	container.Progress = NewProgressService(
		repos.PlacementRepo,
		repos.LedgerRepo,
		repos.ReportingRepo,
		container.Notifier,
		progressCache,
	)

	// The ledger drives completion rechecks through the progress service.
	container.Ledger = NewLedgerService(
		repos.LedgerRepo,
		repos.PlacementRepo,
		repos.UserRepo,
		container.Progress,
		container.Notifier,
		evidence,
	)

	return container
}
