package services

import (
	"context"

	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
)

// BoostSvcFacade manages time-bounded promotional boosts per beat.
type BoostSvcFacade interface {
	// CreateBoost starts a boost from a purchased number of days, deriving the
	// tier from fixed day breakpoints.
	CreateBoost(ctx context.Context, itemID string, ownerID string, days int) (*domain.Boost, error)

	// ActivateOrExtendBoost activates a tier-based boost, extending from the
	// existing expiry when the item already has an active boost. Upserts under
	// a retry-on-conflict loop keyed by item.
	ActivateOrExtendBoost(ctx context.Context, itemID string, ownerID string, tier int) (*domain.Boost, error)

	// PauseBoost expires a boost immediately without deleting its history.
	// Only the boost owner may pause it.
	PauseBoost(ctx context.Context, boostID string, callerID string) (*domain.Boost, error)

	// DeleteBoost hard-removes a boost record. Cleanup path only.
	DeleteBoost(ctx context.Context, boostID string) error

	// ListActiveBoosts returns the active set ordered by priority score then
	// recency of start.
	ListActiveBoosts(ctx context.Context, limit int, offset int) ([]domain.Boost, error)
}
