package services

import (
	"context"

	"github.com/SvcLearn/service_learning_app/internal/core/domain"
	"github.com/SvcLearn/service_learning_app/internal/dto"
)

// LedgerReaderSvc defines read operations on ledger entries.
type LedgerReaderSvc interface {
	// GetEntry retrieves a single entry visible to the acting user.
	GetEntry(ctx context.Context, actor domain.Actor, entryID string) (*domain.LedgerEntry, error)

	// ListEntries retrieves a placement's entries, most recent work date first.
	ListEntries(ctx context.Context, actor domain.Actor, placementID string) ([]domain.LedgerEntry, error)
}

// LedgerWriterSvc defines the mutations of the hours ledger.
type LedgerWriterSvc interface {
	// SubmitEntry records one day of work against an in-progress placement
	// owned by the acting student.
	SubmitEntry(ctx context.Context, actor domain.Actor, placementID string, req dto.SubmitEntryRequest) (*domain.LedgerEntry, error)

	// ReviewEntry sets the acting reviewer's disposition on an entry. The
	// organization and coordinator tracks are independent of each other.
	ReviewEntry(ctx context.Context, actor domain.Actor, entryID string, req dto.ReviewEntryRequest) (*domain.LedgerEntry, error)

	// WithdrawEntry deletes the acting student's entry while the
	// organization disposition is still pending, removing any evidence
	// artifact with it.
	WithdrawEntry(ctx context.Context, actor domain.Actor, entryID string) error
}

// LedgerSvcFacade combines all ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
