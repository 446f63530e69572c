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

// pgUniqueViolation is the postgres error code for unique constraint violations.
const pgUniqueViolation = "23505"

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates the repository backing balances and entries.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func toModelAccount(d domain.CreditAccount) models.CreditAccount {
	return models.CreditAccount{
		AccountID:          d.AccountID,
		Balance:            d.Balance,
		CurrentPlanID:      d.CurrentPlanID,
		PriorityProcessing: d.PriorityProcessing,
		Version:            d.Version,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func toDomainAccount(m models.CreditAccount) domain.CreditAccount {
	return domain.CreditAccount{
		AccountID:          m.AccountID,
		Balance:            m.Balance,
		CurrentPlanID:      m.CurrentPlanID,
		PriorityProcessing: m.PriorityProcessing,
		Version:            m.Version,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

func toDomainEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:      m.EntryID,
		AccountID:    m.AccountID,
		Delta:        m.Delta,
		BalanceAfter: m.BalanceAfter,
		Reason:       m.Reason,
		Source:       domain.LedgerSource(m.Source),
		Meta:         m.Meta,
		CreatedAt:    m.CreatedAt,
	}
}

// FindBalance retrieves the balance row for an account.
func (r *PgxLedgerRepository) FindBalance(ctx context.Context, accountID string) (*domain.CreditAccount, error) {
	query := `
		SELECT account_id, balance, current_plan_id, priority_processing, version, created_at, updated_at
		FROM credit_accounts
		WHERE account_id = $1;
	`
	var modelAcc models.CreditAccount
	var planID sql.NullString

	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&modelAcc.AccountID,
		&modelAcc.Balance,
		&planID,
		&modelAcc.PriorityProcessing,
		&modelAcc.Version,
		&modelAcc.CreatedAt,
		&modelAcc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find balance for account %s: %w", accountID, err)
	}

	if planID.Valid {
		modelAcc.CurrentPlanID = planID.String
	}

	domainAcc := toDomainAccount(modelAcc)
	return &domainAcc, nil
}

// CreateBalance inserts the account row and its signup entry in one transaction.
func (r *PgxLedgerRepository) CreateBalance(ctx context.Context, account domain.CreditAccount, entry domain.LedgerEntry) error {
	modelAcc := toModelAccount(account)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	accountQuery := `
		INSERT INTO credit_accounts (account_id, balance, current_plan_id, priority_processing, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	var planID sql.NullString
	if modelAcc.CurrentPlanID != "" {
		planID = sql.NullString{String: modelAcc.CurrentPlanID, Valid: true}
	}

	_, err = tx.Exec(ctx, accountQuery,
		modelAcc.AccountID,
		modelAcc.Balance,
		planID,
		modelAcc.PriorityProcessing,
		modelAcc.Version,
		modelAcc.CreatedAt,
		modelAcc.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			// Lost the first-access race; the caller falls back to a re-read.
			return fmt.Errorf("%w: account %s already exists", apperrors.ErrDuplicate, modelAcc.AccountID)
		}
		return fmt.Errorf("failed to create balance for account %s: %w", modelAcc.AccountID, err)
	}

	if err := r.appendEntryInTx(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// SwapBalance conditionally rewrites the balance row and appends the ledger
// entry in the same transaction. The version guard is the compare-and-set:
// zero rows affected means a concurrent writer got there first.
func (r *PgxLedgerRepository) SwapBalance(ctx context.Context, account domain.CreditAccount, expectedVersion int64, entry domain.LedgerEntry) error {
	modelAcc := toModelAccount(account)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE credit_accounts
		SET balance = $2, current_plan_id = $3, priority_processing = $4, version = version + 1, updated_at = $5
		WHERE account_id = $1 AND version = $6;
	`
	var planID sql.NullString
	if modelAcc.CurrentPlanID != "" {
		planID = sql.NullString{String: modelAcc.CurrentPlanID, Valid: true}
	}

	cmdTag, err := tx.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.Balance,
		planID,
		modelAcc.PriorityProcessing,
		modelAcc.UpdatedAt,
		expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to swap balance for account %s: %w", modelAcc.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Accounts are never hard-deleted, so a miss here is a version race.
		return fmt.Errorf("%w: account %s version %d is stale", apperrors.ErrConflict, modelAcc.AccountID, expectedVersion)
	}

	if err := r.appendEntryInTx(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// appendEntryInTx writes one immutable ledger entry inside the caller's transaction.
func (r *PgxLedgerRepository) appendEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (entry_id, account_id, delta, balance_after, reason, source, meta, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	var meta any
	if entry.Meta != nil {
		meta = entry.Meta
	}

	_, err := tx.Exec(ctx, query,
		entry.EntryID,
		entry.AccountID,
		entry.Delta,
		entry.BalanceAfter,
		entry.Reason,
		string(entry.Source),
		meta,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append ledger entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// ListEntries retrieves a page of ledger entries for an account, newest first.
func (r *PgxLedgerRepository) ListEntries(ctx context.Context, accountID string, limit int, offset int) ([]domain.LedgerEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT entry_id, account_id, delta, balance_after, reason, source, meta, created_at
		FROM ledger_entries
		WHERE account_id = $1
		ORDER BY created_at DESC, entry_id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries for account %s: %w", accountID, err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		var modelEntry models.LedgerEntry
		err := rows.Scan(
			&modelEntry.EntryID,
			&modelEntry.AccountID,
			&modelEntry.Delta,
			&modelEntry.BalanceAfter,
			&modelEntry.Reason,
			&modelEntry.Source,
			&modelEntry.Meta,
			&modelEntry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, toDomainEntry(modelEntry))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows for account %s: %w", accountID, err)
	}

	return entries, nil
}
