package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/apperrors"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
	portsrepo "github.com/riddimbasellc-sys/riddimbase-backend/internal/core/ports/repositories"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/models"
)

type PgxSubscriptionRepository struct {
	BaseRepository
}

// newPgxSubscriptionRepository creates a new repository for subscription data.
func newPgxSubscriptionRepository(pool *pgxpool.Pool) portsrepo.SubscriptionRepositoryFacade {
	return &PgxSubscriptionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSubscriptionRepository implements portsrepo.SubscriptionRepositoryFacade
var _ portsrepo.SubscriptionRepositoryFacade = (*PgxSubscriptionRepository)(nil)

func toDomainSubscription(m models.Subscription) domain.Subscription {
	return domain.Subscription{
		SubscriptionID:         m.SubscriptionID,
		AccountID:              m.AccountID,
		PlanID:                 m.PlanID,
		Status:                 domain.SubscriptionStatus(m.Status),
		CurrentPeriodEnd:       m.CurrentPeriodEnd,
		AutoRenew:              m.AutoRenew,
		CancelAtPeriodEnd:      m.CancelAtPeriodEnd,
		ProviderSubscriptionID: m.ProviderSubscriptionID,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// UpsertSubscription inserts or updates the one logical row per (account, plan).
func (r *PgxSubscriptionRepository) UpsertSubscription(ctx context.Context, sub domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (subscription_id, account_id, plan_id, status, current_period_end, auto_renew, cancel_at_period_end, provider_subscription_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (account_id, plan_id) DO UPDATE
		SET status = EXCLUDED.status,
			current_period_end = EXCLUDED.current_period_end,
			auto_renew = EXCLUDED.auto_renew,
			cancel_at_period_end = EXCLUDED.cancel_at_period_end,
			provider_subscription_id = EXCLUDED.provider_subscription_id,
			updated_at = EXCLUDED.updated_at;
	`
	var providerID sql.NullString
	if sub.ProviderSubscriptionID != "" {
		providerID = sql.NullString{String: sub.ProviderSubscriptionID, Valid: true}
	}

	_, err := r.Pool.Exec(ctx, query,
		sub.SubscriptionID,
		sub.AccountID,
		sub.PlanID,
		string(sub.Status),
		sub.CurrentPeriodEnd,
		sub.AutoRenew,
		sub.CancelAtPeriodEnd,
		providerID,
		sub.CreatedAt,
		sub.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert subscription for account %s plan %s: %w", sub.AccountID, sub.PlanID, err)
	}
	return nil
}

// FindSubscriptionByAccountID returns the account's most recently touched
// subscription row. Older rows from plan switches stay as history.
func (r *PgxSubscriptionRepository) FindSubscriptionByAccountID(ctx context.Context, accountID string) (*domain.Subscription, error) {
	query := `
		SELECT subscription_id, account_id, plan_id, status, current_period_end, auto_renew, cancel_at_period_end, provider_subscription_id, created_at, updated_at
		FROM subscriptions
		WHERE account_id = $1
		ORDER BY updated_at DESC
		LIMIT 1;
	`
	var m models.Subscription
	var providerID sql.NullString

	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&m.SubscriptionID,
		&m.AccountID,
		&m.PlanID,
		&m.Status,
		&m.CurrentPeriodEnd,
		&m.AutoRenew,
		&m.CancelAtPeriodEnd,
		&providerID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find subscription for account %s: %w", accountID, err)
	}

	if providerID.Valid {
		m.ProviderSubscriptionID = providerID.String
	}

	sub := toDomainSubscription(m)
	return &sub, nil
}
