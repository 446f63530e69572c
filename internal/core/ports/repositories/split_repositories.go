package repositories

import (
	"context"

	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
)

// CollaboratorReader looks up the configured beneficiaries for a beat.
// Collaborator configuration itself is maintained outside this core; this is
// the read side of that boundary.
type CollaboratorReader interface {
	// FindCollaboratorsByBeatID returns the ordered collaborator set for a
	// beat. An empty slice (not an error) means the beat has no split
	// configuration.
	FindCollaboratorsByBeatID(ctx context.Context, beatID string) ([]domain.BeatCollaborator, error)
}

// SplitWriter defines write operations for sale split records.
type SplitWriter interface {
	// SaveSplits persists all split rows for one sale in a single transaction.
	// Either every row lands or none do.
	SaveSplits(ctx context.Context, splits []domain.SaleSplit) error

	// MarkSplitCredited flips the credited flag after the balance credit landed.
	MarkSplitCredited(ctx context.Context, splitID string) error
}

// SplitReader defines read operations for sale split records.
type SplitReader interface {
	// FindSplitsBySaleID returns all split rows recorded for a sale.
	FindSplitsBySaleID(ctx context.Context, saleID string) ([]domain.SaleSplit, error)
}

// SplitRepositoryFacade combines all split-related repository interfaces.
type SplitRepositoryFacade interface {
	CollaboratorReader
	SplitWriter
	SplitReader
}
