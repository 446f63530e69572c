package repositories

import (
	"context"

	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
)

// BalanceReader defines read operations for credit account balances.
type BalanceReader interface {
	// FindBalance retrieves the balance row for an account, including its
	// optimistic-lock version. Returns apperrors.ErrNotFound when the account
	// has never been referenced.
	FindBalance(ctx context.Context, accountID string) (*domain.CreditAccount, error)
}

// BalanceWriter defines the only sanctioned mutation paths for balances.
type BalanceWriter interface {
	// CreateBalance inserts a fresh balance row and its signup ledger entry in
	// a single transaction. Returns apperrors.ErrDuplicate when the row
	// already exists; callers must treat that as a lost first-access race and
	// fall back to reading the existing row.
	CreateBalance(ctx context.Context, account domain.CreditAccount, entry domain.LedgerEntry) error

	// SwapBalance conditionally writes the account's new balance and plan
	// fields, guarded by expectedVersion, and appends the ledger entry in the
	// same transaction. Returns apperrors.ErrConflict when the row version no
	// longer matches; the caller must re-read and retry.
	SwapBalance(ctx context.Context, account domain.CreditAccount, expectedVersion int64, entry domain.LedgerEntry) error
}

// EntryReader defines read operations for the append-only ledger history.
type EntryReader interface {
	// ListEntries retrieves a page of ledger entries for an account, newest first.
	ListEntries(ctx context.Context, accountID string, limit int, offset int) ([]domain.LedgerEntry, error)
}

// LedgerRepositoryFacade combines all ledger-store operations.
type LedgerRepositoryFacade interface {
	BalanceReader
	BalanceWriter
	EntryReader
}
