package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SvcLearn/service_learning_app/internal/apperrors"
	"github.com/SvcLearn/service_learning_app/internal/core/domain"
	portsrepo "github.com/SvcLearn/service_learning_app/internal/core/ports/repositories"
	"github.com/SvcLearn/service_learning_app/internal/models"
	"github.com/SvcLearn/service_learning_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entry data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const ledgerColumns = `
	entry_id, placement_id, work_date, hours_worked, activities, evidence_path,
	organization_disposition, coordinator_disposition, organization_notes, coordinator_notes,
	organization_decided_at, coordinator_decided_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanLedgerEntry(row pgx.Row) (*models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID, &m.PlacementID, &m.WorkDate, &m.HoursWorked, &m.Activities, &m.EvidencePath,
		&m.OrganizationDisposition, &m.CoordinatorDisposition, &m.OrganizationNotes, &m.CoordinatorNotes,
		&m.OrganizationDecidedAt, &m.CoordinatorDecidedAt,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectLedgerEntries(rows pgx.Rows) ([]domain.LedgerEntry, error) {
	defer rows.Close()
	var ms []models.LedgerEntry
	for rows.Next() {
		m, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", err)
	}
	return mapping.ToDomainLedgerEntrySlice(ms), nil
}

// SaveEntry persists a new entry. The unique index on (placement_id,
// work_date) makes the database the arbiter of duplicate dates; a losing
// concurrent writer gets ErrDuplicate.
func (r *PgxLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	query := `
		INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.PlacementID, m.WorkDate, m.HoursWorked, m.Activities, m.EvidencePath,
		m.OrganizationDisposition, m.CoordinatorDisposition, m.OrganizationNotes, m.CoordinatorNotes,
		m.OrganizationDecidedAt, m.CoordinatorDecidedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewAppError(409, "an entry already exists for this work date", apperrors.ErrDuplicate)
			}
		}
		return fmt.Errorf("failed to insert ledger entry %s: %w", m.EntryID, err)
	}
	return nil
}

// FindEntryByID retrieves a single ledger entry.
func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE entry_id = $1;`
	m, err := scanLedgerEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("ledger entry %s not found", entryID))
		}
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", entryID, err)
	}
	d := mapping.ToDomainLedgerEntry(*m)
	return &d, nil
}

// ListEntriesByPlacement retrieves all entries for a placement, most recent work date first.
func (r *PgxLedgerRepository) ListEntriesByPlacement(ctx context.Context, placementID string) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE placement_id = $1 ORDER BY work_date DESC;`
	rows, err := r.Pool.Query(ctx, query, placementID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries for placement %s: %w", placementID, err)
	}
	return collectLedgerEntries(rows)
}

// ListEntriesByPlacementMonth retrieves a placement's entries within one
// calendar month, ascending by work date.
func (r *PgxLedgerRepository) ListEntriesByPlacementMonth(ctx context.Context, placementID string, year int, month time.Month) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries
		WHERE placement_id = $1
		  AND EXTRACT(YEAR FROM work_date) = $2
		  AND EXTRACT(MONTH FROM work_date) = $3
		ORDER BY work_date ASC;`
	rows, err := r.Pool.Query(ctx, query, placementID, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly ledger entries for placement %s: %w", placementID, err)
	}
	return collectLedgerEntries(rows)
}

// UpdateEntryReview persists the disposition fields of both review tracks.
func (r *PgxLedgerRepository) UpdateEntryReview(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	query := `
		UPDATE ledger_entries SET
			organization_disposition = $1,
			coordinator_disposition = $2,
			organization_notes = $3,
			coordinator_notes = $4,
			organization_decided_at = $5,
			coordinator_decided_at = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE entry_id = $9;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.OrganizationDisposition, m.CoordinatorDisposition,
		m.OrganizationNotes, m.CoordinatorNotes,
		m.OrganizationDecidedAt, m.CoordinatorDecidedAt,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.EntryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update ledger entry %s: %w", m.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("ledger entry %s not found", m.EntryID))
	}
	return nil
}

// DeleteEntry removes a ledger entry while its organization review is still
// pending. An entry reviewed between the read and the delete is left in
// place and the caller gets a conflict.
func (r *PgxLedgerRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM ledger_entries WHERE entry_id = $1 AND organization_disposition = $2;`,
		entryID, string(domain.DispositionPending),
	)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewConflictError(fmt.Sprintf("ledger entry %s has been reviewed or no longer exists", entryID))
	}
	return nil
}
