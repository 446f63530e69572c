package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/apperrors"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
	portsrepo "github.com/riddimbasellc-sys/riddimbase-backend/internal/core/ports/repositories"
	portssvc "github.com/riddimbasellc-sys/riddimbase-backend/internal/core/ports/services"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/middleware"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/platform/metrics"
)

// creditService implements portssvc.CreditSvcFacade over the ledger store.
// Every balance mutation runs a bounded read-modify-write loop: read the row
// with its version, compute the new state, and write it back conditionally.
// A lost race re-reads and retries until the budget runs out.
type creditService struct {
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	signupBonus int64
	retryLimit  int
}

// NewCreditService creates a new credit ledger service.
func NewCreditService(ledgerRepo portsrepo.LedgerRepositoryFacade, signupBonus int64, retryLimit int) portssvc.CreditSvcFacade {
	if retryLimit < 1 {
		retryLimit = 1
	}
	return &creditService{
		ledgerRepo:  ledgerRepo,
		signupBonus: signupBonus,
		retryLimit:  retryLimit,
	}
}

// EnsureAccount returns the account's balance row, lazily creating it with
// the signup bonus on first access. Two concurrent first accesses race on the
// insert; the loser gets ErrDuplicate and falls back to reading the winner's
// row, so exactly one signup entry ever exists.
func (s *creditService) EnsureAccount(ctx context.Context, accountID string) (*domain.CreditAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if accountID == "" {
		return nil, fmt.Errorf("%w: account ID is required", apperrors.ErrValidation)
	}

	account, err := s.ledgerRepo.FindBalance(ctx, accountID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		metrics.LedgerOperations.WithLabelValues("ensure", "error").Inc()
		return nil, err
	}

	now := time.Now().UTC()
	fresh := domain.CreditAccount{
		AccountID: accountID,
		Balance:   s.signupBonus,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	entry := domain.LedgerEntry{
		EntryID:      uuid.NewString(),
		AccountID:    accountID,
		Delta:        s.signupBonus,
		BalanceAfter: s.signupBonus,
		Reason:       "signup bonus",
		Source:       domain.SourceSignup,
		CreatedAt:    now,
	}

	err = s.ledgerRepo.CreateBalance(ctx, fresh, entry)
	if err == nil {
		logger.Info("Created credit account with signup bonus", "account_id", accountID, "balance", s.signupBonus)
		metrics.LedgerOperations.WithLabelValues("ensure", "created").Inc()
		return &fresh, nil
	}
	if errors.Is(err, apperrors.ErrDuplicate) {
		// Lost the first-access race; the winner's row is authoritative.
		return s.ledgerRepo.FindBalance(ctx, accountID)
	}

	metrics.LedgerOperations.WithLabelValues("ensure", "error").Inc()
	return nil, err
}

// ListEntries returns a page of the account's ledger history, newest first.
func (s *creditService) ListEntries(ctx context.Context, accountID string, limit int, offset int) ([]domain.LedgerEntry, error) {
	if accountID == "" {
		return nil, fmt.Errorf("%w: account ID is required", apperrors.ErrValidation)
	}
	return s.ledgerRepo.ListEntries(ctx, accountID, limit, offset)
}

// Debit removes credits from an account. Non-positive amounts and balances
// that cannot cover the amount are terminal failures, never retried.
func (s *creditService) Debit(ctx context.Context, accountID string, amount int64, reason string, source domain.LedgerSource) (*domain.CreditAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if amount <= 0 {
		metrics.LedgerOperations.WithLabelValues("debit", "invalid").Inc()
		return nil, fmt.Errorf("%w: debit amount must be positive, got %d", apperrors.ErrInvalidAmount, amount)
	}

	for attempt := 0; attempt < s.retryLimit; attempt++ {
		account, err := s.EnsureAccount(ctx, accountID)
		if err != nil {
			return nil, err
		}

		if account.Balance < amount {
			metrics.LedgerOperations.WithLabelValues("debit", "insufficient").Inc()
			return nil, fmt.Errorf("%w: balance %d cannot cover %d", apperrors.ErrInsufficientFunds, account.Balance, amount)
		}

		updated, err := s.swap(ctx, *account, -amount, reason, source, nil)
		if err == nil {
			metrics.LedgerOperations.WithLabelValues("debit", "success").Inc()
			return updated, nil
		}
		if errors.Is(err, apperrors.ErrConflict) {
			metrics.LedgerRetries.WithLabelValues("ledger").Inc()
			continue
		}
		metrics.LedgerOperations.WithLabelValues("debit", "error").Inc()
		return nil, err
	}

	logger.Warn("Debit exhausted retry budget", "account_id", accountID, "amount", amount)
	metrics.LedgerOperations.WithLabelValues("debit", "contention").Inc()
	return nil, fmt.Errorf("%w: debit of %d for account %s", apperrors.ErrContention, amount, accountID)
}

// Credit adds credits to an account, creating it first if needed. There is no
// deduplication key: replaying a call with identical intent applies twice.
func (s *creditService) Credit(ctx context.Context, accountID string, amount int64, reason string, source domain.LedgerSource, meta map[string]any) (*domain.CreditAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if amount <= 0 {
		metrics.LedgerOperations.WithLabelValues("credit", "invalid").Inc()
		return nil, fmt.Errorf("%w: credit amount must be positive, got %d", apperrors.ErrInvalidAmount, amount)
	}

	for attempt := 0; attempt < s.retryLimit; attempt++ {
		account, err := s.EnsureAccount(ctx, accountID)
		if err != nil {
			return nil, err
		}

		updated, err := s.swap(ctx, *account, amount, reason, source, meta)
		if err == nil {
			metrics.LedgerOperations.WithLabelValues("credit", "success").Inc()
			return updated, nil
		}
		if errors.Is(err, apperrors.ErrConflict) {
			metrics.LedgerRetries.WithLabelValues("ledger").Inc()
			continue
		}
		metrics.LedgerOperations.WithLabelValues("credit", "error").Inc()
		return nil, err
	}

	logger.Warn("Credit exhausted retry budget", "account_id", accountID, "amount", amount)
	metrics.LedgerOperations.WithLabelValues("credit", "contention").Inc()
	return nil, fmt.Errorf("%w: credit of %d for account %s", apperrors.ErrContention, amount, accountID)
}

// ResetToMonthlyAllowance sets the balance to the plan's monthly allotment.
// The entry records the net change, so the ledger still prefix-sums to the
// balance across renewals.
func (s *creditService) ResetToMonthlyAllowance(ctx context.Context, accountID string, plan domain.Plan) (*domain.CreditAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	for attempt := 0; attempt < s.retryLimit; attempt++ {
		account, err := s.EnsureAccount(ctx, accountID)
		if err != nil {
			return nil, err
		}

		now := time.Now().UTC()
		delta := plan.MonthlyCredits - account.Balance

		next := *account
		next.Balance = plan.MonthlyCredits
		next.CurrentPlanID = plan.PlanID
		next.PriorityProcessing = plan.PriorityProcessing
		next.UpdatedAt = now

		entry := domain.LedgerEntry{
			EntryID:      uuid.NewString(),
			AccountID:    accountID,
			Delta:        delta,
			BalanceAfter: next.Balance,
			Reason:       "monthly renewal",
			Source:       domain.SourceSubscription,
			Meta:         map[string]any{"plan_id": plan.PlanID},
			CreatedAt:    now,
		}

		err = s.ledgerRepo.SwapBalance(ctx, next, account.Version, entry)
		if err == nil {
			metrics.LedgerOperations.WithLabelValues("reset", "success").Inc()
			next.Version = account.Version + 1
			return &next, nil
		}
		if errors.Is(err, apperrors.ErrConflict) {
			metrics.LedgerRetries.WithLabelValues("ledger").Inc()
			continue
		}
		metrics.LedgerOperations.WithLabelValues("reset", "error").Inc()
		return nil, err
	}

	logger.Warn("Allowance reset exhausted retry budget", "account_id", accountID, "plan_id", plan.PlanID)
	metrics.LedgerOperations.WithLabelValues("reset", "contention").Inc()
	return nil, fmt.Errorf("%w: allowance reset for account %s", apperrors.ErrContention, accountID)
}

// swap applies one signed delta to an account snapshot via the conditional
// write path. Returns ErrConflict untouched so callers can retry.
func (s *creditService) swap(ctx context.Context, account domain.CreditAccount, delta int64, reason string, source domain.LedgerSource, meta map[string]any) (*domain.CreditAccount, error) {
	now := time.Now().UTC()

	next := account
	next.Balance = account.Balance + delta
	next.UpdatedAt = now

	entry := domain.LedgerEntry{
		EntryID:      uuid.NewString(),
		AccountID:    account.AccountID,
		Delta:        delta,
		BalanceAfter: next.Balance,
		Reason:       reason,
		Source:       source,
		Meta:         meta,
		CreatedAt:    now,
	}

	if err := s.ledgerRepo.SwapBalance(ctx, next, account.Version, entry); err != nil {
		return nil, err
	}
	next.Version = account.Version + 1
	return &next, nil
}
