package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/apperrors"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
	portsrepo "github.com/riddimbasellc-sys/riddimbase-backend/internal/core/ports/repositories"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/models"
)

type PgxBoostRepository struct {
	BaseRepository
}

// newPgxBoostRepository creates a new repository for boost data.
func newPgxBoostRepository(pool *pgxpool.Pool) portsrepo.BoostRepositoryFacade {
	return &PgxBoostRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBoostRepository implements portsrepo.BoostRepositoryFacade
var _ portsrepo.BoostRepositoryFacade = (*PgxBoostRepository)(nil)

func toModelBoost(d domain.Boost) models.Boost {
	return models.Boost{
		BoostID:       d.BoostID,
		ItemID:        d.ItemID,
		OwnerID:       d.OwnerID,
		Tier:          d.Tier,
		PriorityScore: d.PriorityScore,
		StartsAt:      d.StartsAt,
		ExpiresAt:     d.ExpiresAt,
		Version:       d.Version,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func toDomainBoost(m models.Boost) domain.Boost {
	return domain.Boost{
		BoostID:       m.BoostID,
		ItemID:        m.ItemID,
		OwnerID:       m.OwnerID,
		Tier:          m.Tier,
		PriorityScore: m.PriorityScore,
		StartsAt:      m.StartsAt,
		ExpiresAt:     m.ExpiresAt,
		Version:       m.Version,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

const boostColumns = `boost_id, item_id, owner_id, tier, priority_score, starts_at, expires_at, version, created_at, updated_at`

func scanBoost(row pgx.Row) (*domain.Boost, error) {
	var m models.Boost
	err := row.Scan(
		&m.BoostID,
		&m.ItemID,
		&m.OwnerID,
		&m.Tier,
		&m.PriorityScore,
		&m.StartsAt,
		&m.ExpiresAt,
		&m.Version,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b := toDomainBoost(m)
	return &b, nil
}

// SaveBoost inserts a new boost row. The unique constraint on item_id keeps
// at most one row per promoted item; a violation means the upsert race lost.
func (r *PgxBoostRepository) SaveBoost(ctx context.Context, boost domain.Boost) error {
	m := toModelBoost(boost)

	query := `
		INSERT INTO boosts (` + boostColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BoostID, m.ItemID, m.OwnerID, m.Tier, m.PriorityScore,
		m.StartsAt, m.ExpiresAt, m.Version, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: item %s already has a boost", apperrors.ErrDuplicate, m.ItemID)
		}
		return fmt.Errorf("failed to save boost for item %s: %w", m.ItemID, err)
	}
	return nil
}

// SwapBoost conditionally rewrites a boost row guarded by its version.
func (r *PgxBoostRepository) SwapBoost(ctx context.Context, boost domain.Boost, expectedVersion int64) error {
	m := toModelBoost(boost)

	query := `
		UPDATE boosts
		SET tier = $2, priority_score = $3, starts_at = $4, expires_at = $5, version = version + 1, updated_at = $6
		WHERE boost_id = $1 AND version = $7;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.BoostID, m.Tier, m.PriorityScore, m.StartsAt, m.ExpiresAt, m.UpdatedAt, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to swap boost %s: %w", m.BoostID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: boost %s version %d is stale", apperrors.ErrConflict, m.BoostID, expectedVersion)
	}
	return nil
}

// FindBoostByID retrieves a boost by its primary key.
func (r *PgxBoostRepository) FindBoostByID(ctx context.Context, boostID string) (*domain.Boost, error) {
	query := `SELECT ` + boostColumns + ` FROM boosts WHERE boost_id = $1;`

	boost, err := scanBoost(r.Pool.QueryRow(ctx, query, boostID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find boost by ID %s: %w", boostID, err)
	}
	return boost, nil
}

// FindBoostByItemID retrieves the single boost row for a promoted item.
func (r *PgxBoostRepository) FindBoostByItemID(ctx context.Context, itemID string) (*domain.Boost, error) {
	query := `SELECT ` + boostColumns + ` FROM boosts WHERE item_id = $1;`

	boost, err := scanBoost(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find boost by item ID %s: %w", itemID, err)
	}
	return boost, nil
}

// DeleteBoost hard-removes a boost row. Administrative cleanup only.
func (r *PgxBoostRepository) DeleteBoost(ctx context.Context, boostID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM boosts WHERE boost_id = $1;`, boostID)
	if err != nil {
		return fmt.Errorf("failed to delete boost %s: %w", boostID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListActiveBoosts returns the active set ordered by priority score then most
// recent start. The ordering is the display contract: stable and reproducible
// for a fixed snapshot.
func (r *PgxBoostRepository) ListActiveBoosts(ctx context.Context, now time.Time, limit int, offset int) ([]domain.Boost, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + boostColumns + `
		FROM boosts
		WHERE expires_at > $1
		ORDER BY priority_score DESC, starts_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, now, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query active boosts: %w", err)
	}
	defer rows.Close()

	boosts := []domain.Boost{}
	for rows.Next() {
		boost, err := scanBoost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan boost row: %w", err)
		}
		boosts = append(boosts, *boost)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating boost rows: %w", err)
	}

	return boosts, nil
}
