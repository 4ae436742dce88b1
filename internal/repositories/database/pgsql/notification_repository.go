package pgsql

import (
	"context"
	"fmt"

	"github.com/SvcLearn/service_learning_app/internal/core/domain"
	portsrepo "github.com/SvcLearn/service_learning_app/internal/core/ports/repositories"
	"github.com/SvcLearn/service_learning_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationWriter {
	return &PgxNotificationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.NotificationWriter = (*PgxNotificationRepository)(nil)

// SaveNotifications inserts a batch of notification requests in one round trip.
func (r *PgxNotificationRepository) SaveNotifications(ctx context.Context, notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO notifications (notification_id, recipient_id, title, body, category, target, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, n := range notifications {
		m := mapping.ToModelNotification(n)
		batch.Queue(query, m.NotificationID, m.RecipientID, m.Title, m.Body, m.Category, m.Target, m.Read, m.CreatedAt)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for range notifications {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert notification batch: %w", err)
		}
	}
	return nil
}
