package repositories

import (
	"context"
	"time"

	"github.com/SvcLearn/service_learning_app/internal/core/domain"
)

// LedgerReader defines read operations for ledger entries.
type LedgerReader interface {
	// FindEntryByID retrieves a single ledger entry.
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListEntriesByPlacement retrieves all entries for a placement, most recent work date first.
	ListEntriesByPlacement(ctx context.Context, placementID string) ([]domain.LedgerEntry, error)

	// ListEntriesByPlacementMonth retrieves a placement's entries within one
	// calendar month, ascending by work date.
	ListEntriesByPlacementMonth(ctx context.Context, placementID string, year int, month time.Month) ([]domain.LedgerEntry, error)
}

// LedgerWriter defines write operations for ledger entries.
type LedgerWriter interface {
	// SaveEntry persists a new entry. The (placement, work date) uniqueness
	// constraint is enforced by the database; a losing concurrent writer
	// receives apperrors.ErrDuplicate.
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error

	// UpdateEntryReview persists the disposition fields of one review track.
	UpdateEntryReview(ctx context.Context, entry domain.LedgerEntry) error

	// DeleteEntry removes a ledger entry whose organization disposition is
	// still pending. An entry reviewed in the meantime is not deleted and
	// apperrors.ErrConflict is returned.
	DeleteEntry(ctx context.Context, entryID string) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
