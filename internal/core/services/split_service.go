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
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalHundred = decimal.NewFromInt(100)
)

// splitService implements portssvc.SplitSvcFacade. Payouts follow a durable
// record first policy: every split row lands in one transaction before any
// balance credit is attempted, and credits after that point are best effort
// per account.
type splitService struct {
	splitRepo portsrepo.SplitRepositoryFacade
	creditSvc portssvc.CreditWriterSvc
}

// NewSplitService creates a new revenue split service.
func NewSplitService(splitRepo portsrepo.SplitRepositoryFacade, creditSvc portssvc.CreditWriterSvc) portssvc.SplitSvcFacade {
	return &splitService{
		splitRepo: splitRepo,
		creditSvc: creditSvc,
	}
}

// DistributeSale computes per-collaborator payouts, persists the split rows,
// then credits each linked account. Rounding is half-up to two decimal
// places. When the configured percentages sum to exactly 100 the rounding
// remainder goes to the largest share so the payouts conserve the creator
// revenue; otherwise the percentages are paid as given.
func (s *splitService) DistributeSale(ctx context.Context, sale domain.Sale) (*domain.SplitOutcome, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if sale.SaleID == "" || sale.BeatID == "" {
		return nil, fmt.Errorf("%w: sale ID and beat ID are required", apperrors.ErrValidation)
	}
	if !sale.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: sale amount must be positive, got %s", apperrors.ErrInvalidAmount, sale.Amount)
	}
	if sale.PlatformFeeRate.IsNegative() || sale.PlatformFeeRate.GreaterThan(decimalOne) {
		return nil, fmt.Errorf("%w: platform fee rate must be within [0,1], got %s", apperrors.ErrValidation, sale.PlatformFeeRate)
	}

	creatorRevenue := sale.Amount.Mul(decimalOne.Sub(sale.PlatformFeeRate)).Round(2)
	if creatorRevenue.IsNegative() {
		creatorRevenue = decimal.Zero
	}

	outcome := &domain.SplitOutcome{
		SaleID:           sale.SaleID,
		CreatorRevenue:   creatorRevenue,
		Splits:           []domain.SaleSplit{},
		CreditedAccounts: []string{},
	}

	collaborators, err := s.splitRepo.FindCollaboratorsByBeatID(ctx, sale.BeatID)
	if err != nil {
		return nil, err
	}
	if len(collaborators) == 0 {
		logger.Info("Sale has no collaborators configured, nothing to distribute", "sale_id", sale.SaleID, "beat_id", sale.BeatID)
		return outcome, nil
	}

	payouts := make([]decimal.Decimal, len(collaborators))
	totalPct := decimal.Zero
	paid := decimal.Zero
	for i, collab := range collaborators {
		payouts[i] = creatorRevenue.Mul(collab.SplitPercentage).Div(decimalHundred).Round(2)
		totalPct = totalPct.Add(collab.SplitPercentage)
		paid = paid.Add(payouts[i])
	}

	// Collaborators arrive largest share first, so index 0 absorbs the
	// remainder when the configuration covers the full revenue.
	if totalPct.Equal(decimalHundred) {
		remainder := creatorRevenue.Sub(paid)
		if !remainder.IsZero() {
			payouts[0] = payouts[0].Add(remainder)
		}
	}

	now := time.Now().UTC()
	splits := make([]domain.SaleSplit, len(collaborators))
	for i, collab := range collaborators {
		splits[i] = domain.SaleSplit{
			SplitID:         uuid.NewString(),
			SaleID:          sale.SaleID,
			BeatID:          sale.BeatID,
			CollaboratorID:  collab.CollaboratorID,
			LinkedAccountID: collab.LinkedAccountID,
			AmountEarned:    payouts[i],
			Currency:        sale.Currency,
			Credited:        false,
			CreatedAt:       now,
		}
	}

	if err := s.splitRepo.SaveSplits(ctx, splits); err != nil {
		return nil, err
	}
	outcome.Splits = splits

	for i := range splits {
		split := &splits[i]
		if split.LinkedAccountID == "" {
			continue
		}
		if !split.AmountEarned.IsPositive() {
			continue
		}

		// Balances hold whole credits; a payout of 54.00 lands as 5400.
		// AmountEarned is already rounded to two places so this is exact.
		credits := split.AmountEarned.Mul(decimalHundred).IntPart()
		meta := map[string]any{
			"sale_id":  split.SaleID,
			"split_id": split.SplitID,
			"amount":   split.AmountEarned.String(),
			"currency": split.Currency,
		}

		_, err := s.creditSvc.Credit(ctx, split.LinkedAccountID, credits,
			fmt.Sprintf("sale split for beat %s", split.BeatID), domain.SourceSaleSplit, meta)
		if err != nil {
			logger.Error("Failed to credit collaborator for recorded split",
				"sale_id", split.SaleID, "split_id", split.SplitID,
				"account_id", split.LinkedAccountID, "error", err)
			metrics.SplitCreditFailures.Inc()
			outcome.Failures = append(outcome.Failures, domain.SplitCreditFailure{
				CollaboratorID: split.CollaboratorID,
				AccountID:      split.LinkedAccountID,
				Error:          err.Error(),
			})
			continue
		}

		if err := s.splitRepo.MarkSplitCredited(ctx, split.SplitID); err != nil {
			// The credit landed; the flag is cosmetic bookkeeping and
			// reconciliation will catch it.
			logger.Warn("Credited split could not be flagged", "split_id", split.SplitID, "error", err)
		} else {
			split.Credited = true
		}
		outcome.CreditedAccounts = append(outcome.CreditedAccounts, split.LinkedAccountID)
	}

	return outcome, nil
}

// GetSaleSplits returns the recorded split rows for a sale.
func (s *splitService) GetSaleSplits(ctx context.Context, saleID string) ([]domain.SaleSplit, error) {
	if saleID == "" {
		return nil, fmt.Errorf("%w: sale ID is required", apperrors.ErrValidation)
	}
	return s.splitRepo.FindSplitsBySaleID(ctx, saleID)
}
