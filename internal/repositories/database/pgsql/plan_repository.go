package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/apperrors"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
	portsrepo "github.com/riddimbasellc-sys/riddimbase-backend/internal/core/ports/repositories"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/models"
)

type PgxPlanRepository struct {
	BaseRepository
}

// newPgxPlanRepository creates the read-only plan catalog repository.
// The catalog is seeded by migrations; this service never writes it.
func newPgxPlanRepository(pool *pgxpool.Pool) portsrepo.PlanReader {
	return &PgxPlanRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPlanRepository implements portsrepo.PlanReader
var _ portsrepo.PlanReader = (*PgxPlanRepository)(nil)

func toDomainPlan(m models.Plan) domain.Plan {
	return domain.Plan{
		PlanID:             m.PlanID,
		Name:               m.Name,
		MonthlyCredits:     m.MonthlyCredits,
		PriorityProcessing: m.PriorityProcessing,
		MonthlyPriceUSD:    m.MonthlyPriceUSD,
		PeriodDays:         m.PeriodDays,
		IsActive:           m.IsActive,
	}
}

// FindPlanByID retrieves one active plan from the catalog.
func (r *PgxPlanRepository) FindPlanByID(ctx context.Context, planID string) (*domain.Plan, error) {
	query := `
		SELECT plan_id, name, monthly_credits, priority_processing, monthly_price_usd, period_days, is_active
		FROM plans
		WHERE plan_id = $1 AND is_active = TRUE;
	`
	var m models.Plan
	err := r.Pool.QueryRow(ctx, query, planID).Scan(
		&m.PlanID,
		&m.Name,
		&m.MonthlyCredits,
		&m.PriorityProcessing,
		&m.MonthlyPriceUSD,
		&m.PeriodDays,
		&m.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: plan %s", apperrors.ErrNotFound, planID)
		}
		return nil, fmt.Errorf("failed to find plan %s: %w", planID, err)
	}

	plan := toDomainPlan(m)
	return &plan, nil
}

// ListPlans returns the active plan catalog, cheapest first.
func (r *PgxPlanRepository) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	query := `
		SELECT plan_id, name, monthly_credits, priority_processing, monthly_price_usd, period_days, is_active
		FROM plans
		WHERE is_active = TRUE
		ORDER BY monthly_price_usd;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query plans: %w", err)
	}
	defer rows.Close()

	plans := []domain.Plan{}
	for rows.Next() {
		var m models.Plan
		err := rows.Scan(
			&m.PlanID,
			&m.Name,
			&m.MonthlyCredits,
			&m.PriorityProcessing,
			&m.MonthlyPriceUSD,
			&m.PeriodDays,
			&m.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan row: %w", err)
		}
		plans = append(plans, toDomainPlan(m))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plan rows: %w", err)
	}

	return plans, nil
}
