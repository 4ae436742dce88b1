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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPlacementRepository struct {
	BaseRepository
}

// newPgxPlacementRepository creates a new repository for placement data.
func newPgxPlacementRepository(pool *pgxpool.Pool) portsrepo.PlacementRepositoryFacade {
	return &PgxPlacementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PlacementRepositoryFacade = (*PgxPlacementRepository)(nil)

const placementColumns = `
	placement_id, application_id, student_id, organization_id, job_listing_id, coordinator_id,
	career, semester, control_number, project_name, main_activities,
	supervisor_name, supervisor_email, supervisor_phone,
	start_date, estimated_end_date, actual_end_date,
	required_hours, state, coordinator_notes, organization_notes,
	requested_at, coordinator_decided_at, organization_decided_at, process_started_at, finalized_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanPlacement(row pgx.Row) (*models.Placement, error) {
	var m models.Placement
	err := row.Scan(
		&m.PlacementID, &m.ApplicationID, &m.StudentID, &m.OrganizationID, &m.JobListingID, &m.CoordinatorID,
		&m.Career, &m.Semester, &m.ControlNumber, &m.ProjectName, &m.MainActivities,
		&m.SupervisorName, &m.SupervisorEmail, &m.SupervisorPhone,
		&m.StartDate, &m.EstimatedEndDate, &m.ActualEndDate,
		&m.RequiredHours, &m.State, &m.CoordinatorNotes, &m.OrganizationNotes,
		&m.RequestedAt, &m.CoordinatorDecidedAt, &m.OrganizationDecidedAt, &m.ProcessStartedAt, &m.FinalizedAt,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectPlacements(rows pgx.Rows) ([]domain.Placement, error) {
	defer rows.Close()
	var ms []models.Placement
	for rows.Next() {
		m, err := scanPlacement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan placement row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating placement rows: %w", err)
	}
	return mapping.ToDomainPlacementSlice(ms), nil
}

// SavePlacement persists a new placement. The unique index on application_id
// turns a second placement for the same application into ErrDuplicate.
func (r *PgxPlacementRepository) SavePlacement(ctx context.Context, placement domain.Placement) error {
	m := mapping.ToModelPlacement(placement)
	query := `
		INSERT INTO placements (` + placementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PlacementID, m.ApplicationID, m.StudentID, m.OrganizationID, m.JobListingID, m.CoordinatorID,
		m.Career, m.Semester, m.ControlNumber, m.ProjectName, m.MainActivities,
		m.SupervisorName, m.SupervisorEmail, m.SupervisorPhone,
		m.StartDate, m.EstimatedEndDate, m.ActualEndDate,
		m.RequiredHours, m.State, m.CoordinatorNotes, m.OrganizationNotes,
		m.RequestedAt, m.CoordinatorDecidedAt, m.OrganizationDecidedAt, m.ProcessStartedAt, m.FinalizedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewAppError(409, "a placement already exists for this application", apperrors.ErrDuplicate)
			}
		}
		return fmt.Errorf("failed to insert placement %s: %w", m.PlacementID, err)
	}
	return nil
}

// FindPlacementByID retrieves a specific placement by its unique identifier.
func (r *PgxPlacementRepository) FindPlacementByID(ctx context.Context, placementID string) (*domain.Placement, error) {
	query := `SELECT ` + placementColumns + ` FROM placements WHERE placement_id = $1;`
	m, err := scanPlacement(r.Pool.QueryRow(ctx, query, placementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("placement %s not found", placementID))
		}
		return nil, fmt.Errorf("failed to find placement %s: %w", placementID, err)
	}
	d := mapping.ToDomainPlacement(*m)
	return &d, nil
}

// FindPlacementByApplicationID retrieves the placement created from an application, if any.
func (r *PgxPlacementRepository) FindPlacementByApplicationID(ctx context.Context, applicationID string) (*domain.Placement, error) {
	query := `SELECT ` + placementColumns + ` FROM placements WHERE application_id = $1;`
	m, err := scanPlacement(r.Pool.QueryRow(ctx, query, applicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("no placement for application %s", applicationID))
		}
		return nil, fmt.Errorf("failed to find placement by application %s: %w", applicationID, err)
	}
	d := mapping.ToDomainPlacement(*m)
	return &d, nil
}

// ListPlacementsByStudent retrieves all placements owned by a student, newest first.
func (r *PgxPlacementRepository) ListPlacementsByStudent(ctx context.Context, studentID string) ([]domain.Placement, error) {
	query := `SELECT ` + placementColumns + ` FROM placements WHERE student_id = $1 ORDER BY requested_at DESC;`
	rows, err := r.Pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query placements for student %s: %w", studentID, err)
	}
	return collectPlacements(rows)
}

// ListPlacementsByOrganization retrieves an organization's placements
// restricted to the given states, newest first.
func (r *PgxPlacementRepository) ListPlacementsByOrganization(ctx context.Context, organizationID string, states []domain.PlacementState) ([]domain.Placement, error) {
	stateStrs := make([]string, len(states))
	for i, s := range states {
		stateStrs[i] = string(s)
	}
	query := `SELECT ` + placementColumns + ` FROM placements
		WHERE organization_id = $1 AND state = ANY($2)
		ORDER BY requested_at DESC;`
	rows, err := r.Pool.Query(ctx, query, organizationID, stateStrs)
	if err != nil {
		return nil, fmt.Errorf("failed to query placements for organization %s: %w", organizationID, err)
	}
	return collectPlacements(rows)
}

// ListPlacements retrieves all placements, optionally filtered by state, newest first.
func (r *PgxPlacementRepository) ListPlacements(ctx context.Context, state *domain.PlacementState) ([]domain.Placement, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if state != nil {
		query := `SELECT ` + placementColumns + ` FROM placements WHERE state = $1 ORDER BY requested_at DESC;`
		rows, err = r.Pool.Query(ctx, query, string(*state))
	} else {
		query := `SELECT ` + placementColumns + ` FROM placements ORDER BY requested_at DESC;`
		rows, err = r.Pool.Query(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query placements: %w", err)
	}
	return collectPlacements(rows)
}

// UpdatePlacementState persists a transition guarded by the expected current
// state. When the stored state has moved on, zero rows match and the caller
// gets ErrConflict, so concurrent transitions serialize on the row itself.
func (r *PgxPlacementRepository) UpdatePlacementState(ctx context.Context, placement domain.Placement, expectedState domain.PlacementState) error {
	m := mapping.ToModelPlacement(placement)
	query := `
		UPDATE placements SET
			state = $1,
			coordinator_notes = $2,
			organization_notes = $3,
			actual_end_date = $4,
			coordinator_decided_at = $5,
			organization_decided_at = $6,
			process_started_at = $7,
			finalized_at = $8,
			last_updated_at = $9,
			last_updated_by = $10
		WHERE placement_id = $11 AND state = $12;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.State, m.CoordinatorNotes, m.OrganizationNotes, m.ActualEndDate,
		m.CoordinatorDecidedAt, m.OrganizationDecidedAt, m.ProcessStartedAt, m.FinalizedAt,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.PlacementID, string(expectedState),
	)
	if err != nil {
		return fmt.Errorf("failed to update placement %s: %w", m.PlacementID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewConflictError(fmt.Sprintf("placement %s is no longer %s", m.PlacementID, expectedState))
	}
	return nil
}

// DeletePlacement removes a placement; ledger entries go with it by cascade.
// The delete carries the same state predicate as UpdatePlacementState, so a
// placement that moved on since it was read is left untouched.
func (r *PgxPlacementRepository) DeletePlacement(ctx context.Context, placementID string, expectedState domain.PlacementState) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM placements WHERE placement_id = $1 AND state = $2;`,
		placementID, string(expectedState),
	)
	if err != nil {
		return fmt.Errorf("failed to delete placement %s: %w", placementID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewConflictError(fmt.Sprintf("placement %s is no longer %s", placementID, expectedState))
	}
	return nil
}
