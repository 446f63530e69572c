package services

import (
	"context"

	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
)

// CreditReaderSvc defines read operations over an account's credit state.
type CreditReaderSvc interface {
	// EnsureAccount returns the caller's balance, creating the account with
	// the signup bonus on first access. Safe under concurrent first access:
	// the losing writer re-reads, and at most one signup entry ever exists.
	EnsureAccount(ctx context.Context, accountID string) (*domain.CreditAccount, error)

	// ListEntries returns a page of the account's ledger history, newest first.
	ListEntries(ctx context.Context, accountID string, limit int, offset int) ([]domain.LedgerEntry, error)
}

// CreditWriterSvc defines the balance mutation operations. All writes run a
// bounded read-modify-write loop over the store's compare-and-set primitive
// and fail with apperrors.ErrContention once the retry budget is exhausted.
type CreditWriterSvc interface {
	// Debit removes credits. Fails with apperrors.ErrInvalidAmount for
	// non-positive amounts and apperrors.ErrInsufficientFunds when the balance
	// cannot cover the amount; neither is retried.
	Debit(ctx context.Context, accountID string, amount int64, reason string, source domain.LedgerSource) (*domain.CreditAccount, error)

	// Credit adds credits, creating the account first if needed. Replaying a
	// call with identical intent applies twice: there is no deduplication key,
	// retries are the caller's responsibility.
	Credit(ctx context.Context, accountID string, amount int64, reason string, source domain.LedgerSource, meta map[string]any) (*domain.CreditAccount, error)

	// ResetToMonthlyAllowance sets the balance to the plan's monthly credits
	// (not an increment) and records the net change as the entry delta. Also
	// stamps the plan ID and priority flag onto the account in the same
	// conditional write.
	ResetToMonthlyAllowance(ctx context.Context, accountID string, plan domain.Plan) (*domain.CreditAccount, error)
}

// CreditSvcFacade combines all credit ledger operations.
type CreditSvcFacade interface {
	CreditReaderSvc
	CreditWriterSvc
}
