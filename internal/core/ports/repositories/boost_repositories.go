package repositories

import (
	"context"
	"time"

	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
)

// BoostReader defines read operations for boost records.
type BoostReader interface {
	// FindBoostByID retrieves a boost by its primary key.
	FindBoostByID(ctx context.Context, boostID string) (*domain.Boost, error)

	// FindBoostByItemID retrieves the single boost row for a promoted item.
	// Returns apperrors.ErrNotFound when the item was never boosted.
	FindBoostByItemID(ctx context.Context, itemID string) (*domain.Boost, error)

	// ListActiveBoosts returns boosts with expires_at > now, ordered by
	// priority_score descending then starts_at descending. The ordering is a
	// contract consumed by ranking surfaces and must be stable.
	ListActiveBoosts(ctx context.Context, now time.Time, limit int, offset int) ([]domain.Boost, error)
}

// BoostWriter defines write operations for boost records.
type BoostWriter interface {
	// SaveBoost inserts a new boost row. Returns apperrors.ErrDuplicate when a
	// row for the same item already exists (upsert race lost).
	SaveBoost(ctx context.Context, boost domain.Boost) error

	// SwapBoost conditionally rewrites a boost row guarded by expectedVersion.
	// Returns apperrors.ErrConflict on a version mismatch.
	SwapBoost(ctx context.Context, boost domain.Boost, expectedVersion int64) error

	// DeleteBoost hard-removes a boost row. Administrative/cleanup path only.
	DeleteBoost(ctx context.Context, boostID string) error
}

// BoostRepositoryFacade combines all boost-related repository interfaces.
type BoostRepositoryFacade interface {
	BoostReader
	BoostWriter
}
