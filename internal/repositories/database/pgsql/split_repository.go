package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/apperrors"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
	portsrepo "github.com/riddimbasellc-sys/riddimbase-backend/internal/core/ports/repositories"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/models"
)

type PgxSplitRepository struct {
	BaseRepository
}

// newPgxSplitRepository creates a new repository for sale split data.
func newPgxSplitRepository(pool *pgxpool.Pool) portsrepo.SplitRepositoryFacade {
	return &PgxSplitRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSplitRepository implements portsrepo.SplitRepositoryFacade
var _ portsrepo.SplitRepositoryFacade = (*PgxSplitRepository)(nil)

func toModelSplit(d domain.SaleSplit) models.SaleSplit {
	return models.SaleSplit{
		SplitID:         d.SplitID,
		SaleID:          d.SaleID,
		BeatID:          d.BeatID,
		CollaboratorID:  d.CollaboratorID,
		LinkedAccountID: d.LinkedAccountID,
		AmountEarned:    d.AmountEarned,
		Currency:        d.Currency,
		Credited:        d.Credited,
		CreatedAt:       d.CreatedAt,
	}
}

func toDomainSplit(m models.SaleSplit) domain.SaleSplit {
	return domain.SaleSplit{
		SplitID:         m.SplitID,
		SaleID:          m.SaleID,
		BeatID:          m.BeatID,
		CollaboratorID:  m.CollaboratorID,
		LinkedAccountID: m.LinkedAccountID,
		AmountEarned:    m.AmountEarned,
		Currency:        m.Currency,
		Credited:        m.Credited,
		CreatedAt:       m.CreatedAt,
	}
}

// FindCollaboratorsByBeatID returns the configured collaborator set for a
// beat, largest share first. An empty result is not an error.
func (r *PgxSplitRepository) FindCollaboratorsByBeatID(ctx context.Context, beatID string) ([]domain.BeatCollaborator, error) {
	query := `
		SELECT beat_id, collaborator_id, linked_account_id, split_percentage
		FROM beat_collaborators
		WHERE beat_id = $1
		ORDER BY split_percentage DESC, collaborator_id;
	`
	rows, err := r.Pool.Query(ctx, query, beatID)
	if err != nil {
		return nil, fmt.Errorf("failed to query collaborators for beat %s: %w", beatID, err)
	}
	defer rows.Close()

	collaborators := []domain.BeatCollaborator{}
	for rows.Next() {
		var m models.BeatCollaborator
		var linkedID sql.NullString
		if err := rows.Scan(&m.BeatID, &m.CollaboratorID, &linkedID, &m.SplitPercentage); err != nil {
			return nil, fmt.Errorf("failed to scan collaborator row: %w", err)
		}
		if linkedID.Valid {
			m.LinkedAccountID = linkedID.String
		}
		collaborators = append(collaborators, domain.BeatCollaborator{
			BeatID:          m.BeatID,
			CollaboratorID:  m.CollaboratorID,
			LinkedAccountID: m.LinkedAccountID,
			SplitPercentage: m.SplitPercentage,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating collaborator rows for beat %s: %w", beatID, err)
	}

	return collaborators, nil
}

// SaveSplits persists every split row for one sale in a single transaction.
// This must land before any balance credit is attempted: the rows are the
// durable proof of entitlement.
func (r *PgxSplitRepository) SaveSplits(ctx context.Context, splits []domain.SaleSplit) error {
	if len(splits) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO sale_splits (split_id, sale_id, beat_id, collaborator_id, linked_account_id, amount_earned, currency, credited, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	batch := &pgx.Batch{}
	for _, split := range splits {
		m := toModelSplit(split)
		var linkedID sql.NullString
		if m.LinkedAccountID != "" {
			linkedID = sql.NullString{String: m.LinkedAccountID, Valid: true}
		}
		batch.Queue(query, m.SplitID, m.SaleID, m.BeatID, m.CollaboratorID, linkedID, m.AmountEarned, m.Currency, m.Credited, m.CreatedAt)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				batchErr = fmt.Errorf("%w: sale %s already has a split for collaborator %s", apperrors.ErrDuplicate, splits[i].SaleID, splits[i].CollaboratorID)
			} else {
				batchErr = fmt.Errorf("failed to insert split %s: %w", splits[i].SplitID, err)
			}
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close split insert batch: %w", err)
	}
	if batchErr != nil {
		return batchErr
	}

	return r.Commit(ctx, tx)
}

// MarkSplitCredited flips the credited flag once the balance credit landed.
func (r *PgxSplitRepository) MarkSplitCredited(ctx context.Context, splitID string) error {
	query := `UPDATE sale_splits SET credited = TRUE WHERE split_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, splitID)
	if err != nil {
		return fmt.Errorf("failed to mark split %s credited: %w", splitID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindSplitsBySaleID returns all split rows recorded for a sale.
func (r *PgxSplitRepository) FindSplitsBySaleID(ctx context.Context, saleID string) ([]domain.SaleSplit, error) {
	query := `
		SELECT split_id, sale_id, beat_id, collaborator_id, linked_account_id, amount_earned, currency, credited, created_at
		FROM sale_splits
		WHERE sale_id = $1
		ORDER BY amount_earned DESC, collaborator_id;
	`
	rows, err := r.Pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query splits for sale %s: %w", saleID, err)
	}
	defer rows.Close()

	splits := []domain.SaleSplit{}
	for rows.Next() {
		var m models.SaleSplit
		var linkedID sql.NullString
		err := rows.Scan(
			&m.SplitID,
			&m.SaleID,
			&m.BeatID,
			&m.CollaboratorID,
			&linkedID,
			&m.AmountEarned,
			&m.Currency,
			&m.Credited,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan split row: %w", err)
		}
		if linkedID.Valid {
			m.LinkedAccountID = linkedID.String
		}
		splits = append(splits, toDomainSplit(m))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating split rows for sale %s: %w", saleID, err)
	}

	return splits, nil
}
