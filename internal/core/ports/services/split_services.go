package services

import (
	"context"

	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
)

// SplitSvcFacade distributes sale revenue across a beat's collaborators.
type SplitSvcFacade interface {
	// DistributeSale computes per-collaborator payouts, persists the split
	// rows (all or nothing), then credits each linked account best-effort.
	// A beat with no collaborators yields an empty outcome, not an error.
	DistributeSale(ctx context.Context, sale domain.Sale) (*domain.SplitOutcome, error)

	// GetSaleSplits returns the recorded split rows for a sale.
	GetSaleSplits(ctx context.Context, saleID string) ([]domain.SaleSplit, error)
}
