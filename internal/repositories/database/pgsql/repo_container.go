package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/riddimbasellc-sys/riddimbase-backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:       newPgxLedgerRepository(dbPool),
		SplitRepo:        newPgxSplitRepository(dbPool),
		BoostRepo:        newPgxBoostRepository(dbPool),
		SubscriptionRepo: newPgxSubscriptionRepository(dbPool),
		PlanRepo:         newPgxPlanRepository(dbPool),
	}
}
