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

// boostService implements portssvc.BoostSvcFacade. Writes that touch an
// existing boost run the same bounded compare-and-set loop as the ledger:
// read with version, mutate, conditional write, retry on conflict.
type boostService struct {
	boostRepo  portsrepo.BoostRepositoryFacade
	retryLimit int
	now        func() time.Time
}

// NewBoostService creates a new boost scheduler service.
func NewBoostService(boostRepo portsrepo.BoostRepositoryFacade, retryLimit int) portssvc.BoostSvcFacade {
	if retryLimit < 1 {
		retryLimit = 1
	}
	return &boostService{
		boostRepo:  boostRepo,
		retryLimit: retryLimit,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// CreateBoost starts a boost from a purchased number of days. The tier is
// derived from the day count and fixes the priority score; the expiry tracks
// the purchased days exactly, not the tier's canonical duration.
func (s *boostService) CreateBoost(ctx context.Context, itemID string, ownerID string, days int) (*domain.Boost, error) {
	if itemID == "" || ownerID == "" {
		return nil, fmt.Errorf("%w: item ID and owner ID are required", apperrors.ErrValidation)
	}
	if days < 1 {
		return nil, fmt.Errorf("%w: boost days must be at least 1, got %d", apperrors.ErrValidation, days)
	}

	tier := domain.TierForDays(days)
	duration := time.Duration(days) * 24 * time.Hour

	return s.upsert(ctx, itemID, ownerID, tier, duration)
}

// ActivateOrExtendBoost activates a tier-based boost. When the item already
// has an active boost the new expiry extends from the existing one, so
// renewing early never shortens the remaining time.
func (s *boostService) ActivateOrExtendBoost(ctx context.Context, itemID string, ownerID string, tier int) (*domain.Boost, error) {
	if itemID == "" || ownerID == "" {
		return nil, fmt.Errorf("%w: item ID and owner ID are required", apperrors.ErrValidation)
	}

	duration, err := domain.DurationForTier(tier)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	return s.upsert(ctx, itemID, ownerID, tier, duration)
}

// upsert applies one activation or extension to the single boost row per
// item. Concurrent writers race on either the unique item insert or the
// version guard; both outcomes re-read and retry.
func (s *boostService) upsert(ctx context.Context, itemID string, ownerID string, tier int, duration time.Duration) (*domain.Boost, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	for attempt := 0; attempt < s.retryLimit; attempt++ {
		now := s.now()

		existing, err := s.boostRepo.FindBoostByItemID(ctx, itemID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				return nil, err
			}

			fresh := domain.Boost{
				BoostID:       uuid.NewString(),
				ItemID:        itemID,
				OwnerID:       ownerID,
				Tier:          tier,
				PriorityScore: domain.BoostPriorityScore(tier),
				StartsAt:      now,
				ExpiresAt:     now.Add(duration),
				Version:       1,
				AuditFields: domain.AuditFields{
					CreatedAt: now,
					UpdatedAt: now,
				},
			}

			err = s.boostRepo.SaveBoost(ctx, fresh)
			if err == nil {
				logger.Info("Boost activated", "item_id", itemID, "tier", tier, "expires_at", fresh.ExpiresAt)
				return &fresh, nil
			}
			if errors.Is(err, apperrors.ErrDuplicate) {
				metrics.LedgerRetries.WithLabelValues("boost").Inc()
				continue
			}
			return nil, err
		}

		// Extension anchors at whichever is later, now or the current
		// expiry, so expired rows restart instead of backfilling.
		base := now
		if existing.ExpiresAt.After(base) {
			base = existing.ExpiresAt
		}

		next := *existing
		next.Tier = tier
		next.PriorityScore = domain.BoostPriorityScore(tier)
		next.ExpiresAt = base.Add(duration)
		next.UpdatedAt = now
		if !existing.ActiveAt(now) {
			next.StartsAt = now
		}

		err = s.boostRepo.SwapBoost(ctx, next, existing.Version)
		if err == nil {
			next.Version = existing.Version + 1
			logger.Info("Boost extended", "item_id", itemID, "tier", tier, "expires_at", next.ExpiresAt)
			return &next, nil
		}
		if errors.Is(err, apperrors.ErrConflict) {
			metrics.LedgerRetries.WithLabelValues("boost").Inc()
			continue
		}
		return nil, err
	}

	logger.Warn("Boost upsert exhausted retry budget", "item_id", itemID, "tier", tier)
	return nil, fmt.Errorf("%w: boost upsert for item %s", apperrors.ErrContention, itemID)
}

// PauseBoost expires a boost immediately without deleting its history. Only
// the owner may pause; anyone else sees the boost as missing.
func (s *boostService) PauseBoost(ctx context.Context, boostID string, callerID string) (*domain.Boost, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	for attempt := 0; attempt < s.retryLimit; attempt++ {
		boost, err := s.boostRepo.FindBoostByID(ctx, boostID)
		if err != nil {
			return nil, err
		}
		if boost.OwnerID != callerID {
			return nil, fmt.Errorf("%w: boost %s", apperrors.ErrNotFound, boostID)
		}

		now := s.now()
		next := *boost
		next.ExpiresAt = now
		next.UpdatedAt = now

		err = s.boostRepo.SwapBoost(ctx, next, boost.Version)
		if err == nil {
			next.Version = boost.Version + 1
			logger.Info("Boost paused", "boost_id", boostID, "item_id", boost.ItemID)
			return &next, nil
		}
		if errors.Is(err, apperrors.ErrConflict) {
			metrics.LedgerRetries.WithLabelValues("boost").Inc()
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("%w: pause of boost %s", apperrors.ErrContention, boostID)
}

// DeleteBoost hard-removes a boost record.
func (s *boostService) DeleteBoost(ctx context.Context, boostID string) error {
	if boostID == "" {
		return fmt.Errorf("%w: boost ID is required", apperrors.ErrValidation)
	}
	return s.boostRepo.DeleteBoost(ctx, boostID)
}

// ListActiveBoosts returns the active set ordered by priority score then
// recency of start.
func (s *boostService) ListActiveBoosts(ctx context.Context, limit int, offset int) ([]domain.Boost, error) {
	return s.boostRepo.ListActiveBoosts(ctx, s.now(), limit, offset)
}
