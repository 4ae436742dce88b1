package pgsql

import (
	portsrepo "github.com/SvcLearn/service_learning_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	placementRepo := newPgxPlacementRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	applicationRepo := newPgxApplicationRepository(dbPool)
	notificationRepo := newPgxNotificationRepository(dbPool)

	return portsrepo.RepositoryProvider{
		PlacementRepo:    placementRepo,
		LedgerRepo:       ledgerRepo,
		ReportingRepo:    reportingRepo,
		UserRepo:         userRepo,
		ApplicationRepo:  applicationRepo,
		NotificationRepo: notificationRepo,
	}
}
