package repositories

import (
	"context"

	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
)

// SubscriptionReader defines read operations for subscription rows.
type SubscriptionReader interface {
	// FindSubscriptionByAccountID returns the caller's subscription row.
	FindSubscriptionByAccountID(ctx context.Context, accountID string) (*domain.Subscription, error)
}

// SubscriptionWriter defines write operations for subscription rows.
type SubscriptionWriter interface {
	// UpsertSubscription inserts or updates the one logical row per
	// (account, plan). Rows are never deleted.
	UpsertSubscription(ctx context.Context, sub domain.Subscription) error
}

// SubscriptionRepositoryFacade combines subscription repository interfaces.
type SubscriptionRepositoryFacade interface {
	SubscriptionReader
	SubscriptionWriter
}

// PlanReader reads the plan catalog. The catalog is seeded by migration and
// read per request; no in-process copy is kept.
type PlanReader interface {
	// FindPlanByID retrieves one plan. Returns apperrors.ErrNotFound for
	// unknown or retired plan IDs.
	FindPlanByID(ctx context.Context, planID string) (*domain.Plan, error)

	// ListPlans returns the active plan catalog.
	ListPlans(ctx context.Context) ([]domain.Plan, error)
}
