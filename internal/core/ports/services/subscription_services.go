package services

import (
	"context"
	"time"

	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
)

// SubscriptionSvcFacade computes period boundaries and applies renewals.
// Renewal triggers arrive pre-verified (webhook signature checking happens
// upstream); this service only trusts and applies them.
type SubscriptionSvcFacade interface {
	// ComputePeriodEnd is pure: now + the plan's period length.
	ComputePeriodEnd(plan domain.Plan, now time.Time) time.Time

	// SyncRenewal resets the account's balance to the plan allowance, stamps
	// the plan onto the account, and moves the subscription period forward.
	SyncRenewal(ctx context.Context, accountID string, planID string, providerSubscriptionID string) (*domain.Subscription, error)

	// CancelAtPeriodEnd flags the subscription to lapse at the current period
	// boundary. The row is updated, never deleted.
	CancelAtPeriodEnd(ctx context.Context, accountID string) (*domain.Subscription, error)

	// GetSubscription returns the caller's subscription row.
	GetSubscription(ctx context.Context, accountID string) (*domain.Subscription, error)

	// ListPlans returns the active plan catalog.
	ListPlans(ctx context.Context) ([]domain.Plan, error)
}
