package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/apperrors"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
	portsrepo "github.com/riddimbasellc-sys/riddimbase-backend/internal/core/ports/repositories"
	portssvc "github.com/riddimbasellc-sys/riddimbase-backend/internal/core/ports/services"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/middleware"
)

// subscriptionService implements portssvc.SubscriptionSvcFacade. It owns the
// period arithmetic and drives the credit service for the balance side of a
// renewal; payment verification is assumed to have happened upstream.
type subscriptionService struct {
	subscriptionRepo portsrepo.SubscriptionRepositoryFacade
	planRepo         portsrepo.PlanReader
	creditSvc        portssvc.CreditWriterSvc
}

// NewSubscriptionService creates a new subscription period manager.
func NewSubscriptionService(subscriptionRepo portsrepo.SubscriptionRepositoryFacade, planRepo portsrepo.PlanReader, creditSvc portssvc.CreditWriterSvc) portssvc.SubscriptionSvcFacade {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		creditSvc:        creditSvc,
	}
}

// ComputePeriodEnd returns now plus the plan's period length.
func (s *subscriptionService) ComputePeriodEnd(plan domain.Plan, now time.Time) time.Time {
	return now.Add(time.Duration(plan.PeriodDays) * 24 * time.Hour)
}

// SyncRenewal applies one verified renewal: resets the balance to the plan
// allowance, stamps the plan onto the account, and moves the period forward.
// The balance reset lands first; a crash between the two leaves an account
// with fresh credits and a stale period end, which the next renewal repairs.
func (s *subscriptionService) SyncRenewal(ctx context.Context, accountID string, planID string, providerSubscriptionID string) (*domain.Subscription, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if accountID == "" || planID == "" {
		return nil, fmt.Errorf("%w: account ID and plan ID are required", apperrors.ErrValidation)
	}

	plan, err := s.planRepo.FindPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	if _, err := s.creditSvc.ResetToMonthlyAllowance(ctx, accountID, *plan); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sub := domain.Subscription{
		SubscriptionID:         uuid.NewString(),
		AccountID:              accountID,
		PlanID:                 planID,
		Status:                 domain.SubscriptionActive,
		CurrentPeriodEnd:       s.ComputePeriodEnd(*plan, now),
		AutoRenew:              true,
		CancelAtPeriodEnd:      false,
		ProviderSubscriptionID: providerSubscriptionID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.subscriptionRepo.UpsertSubscription(ctx, sub); err != nil {
		return nil, err
	}

	logger.Info("Subscription renewed", "account_id", accountID, "plan_id", planID, "period_end", sub.CurrentPeriodEnd)
	return &sub, nil
}

// CancelAtPeriodEnd flags the caller's subscription to lapse at the current
// period boundary. The row is updated, never deleted, and already granted
// credits are untouched.
func (s *subscriptionService) CancelAtPeriodEnd(ctx context.Context, accountID string) (*domain.Subscription, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	sub, err := s.subscriptionRepo.FindSubscriptionByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	sub.CancelAtPeriodEnd = true
	sub.AutoRenew = false
	sub.UpdatedAt = time.Now().UTC()

	if err := s.subscriptionRepo.UpsertSubscription(ctx, *sub); err != nil {
		return nil, err
	}

	logger.Info("Subscription flagged for cancellation", "account_id", accountID, "period_end", sub.CurrentPeriodEnd)
	return sub, nil
}

// GetSubscription returns the caller's subscription row.
func (s *subscriptionService) GetSubscription(ctx context.Context, accountID string) (*domain.Subscription, error) {
	if accountID == "" {
		return nil, fmt.Errorf("%w: account ID is required", apperrors.ErrValidation)
	}
	return s.subscriptionRepo.FindSubscriptionByAccountID(ctx, accountID)
}

// ListPlans returns the active plan catalog.
func (s *subscriptionService) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	return s.planRepo.ListPlans(ctx)
}
