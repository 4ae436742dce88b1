package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SvcLearn/service_learning_app/internal/apperrors"
	"github.com/SvcLearn/service_learning_app/internal/core/domain"
	portsrepo "github.com/SvcLearn/service_learning_app/internal/core/ports/repositories"
	"github.com/SvcLearn/service_learning_app/internal/models"
	"github.com/SvcLearn/service_learning_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxApplicationRepository struct {
	BaseRepository
}

func newPgxApplicationRepository(pool *pgxpool.Pool) portsrepo.ApplicationReader {
	return &PgxApplicationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ApplicationReader = (*PgxApplicationRepository)(nil)

// FindAcceptedApplication retrieves an accepted application owned by the
// given student. The status filter lives in the query, so applications in
// any other state look exactly like missing ones.
func (r *PgxApplicationRepository) FindAcceptedApplication(ctx context.Context, applicationID, studentID string) (*domain.AcceptedApplication, error) {
	query := `
		SELECT application_id, student_id, organization_id, job_listing_id
		FROM applications
		WHERE application_id = $1 AND student_id = $2 AND status = 'ACCEPTED';
	`
	var m models.AcceptedApplication
	err := r.Pool.QueryRow(ctx, query, applicationID, studentID).Scan(
		&m.ApplicationID, &m.StudentID, &m.OrganizationID, &m.JobListingID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("accepted application %s not found", applicationID))
		}
		return nil, fmt.Errorf("failed to find accepted application %s: %w", applicationID, err)
	}
	d := mapping.ToDomainAcceptedApplication(m)
	return &d, nil
}
