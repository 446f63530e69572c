package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/riddimbasellc-sys/riddimbase-backend/internal/apperrors"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
	portssvc "github.com/riddimbasellc-sys/riddimbase-backend/internal/core/ports/services"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BoostServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBoostRepository
	service  portssvc.BoostSvcFacade
}

func (suite *BoostServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBoostRepository)
	suite.service = services.NewBoostService(suite.mockRepo, testRetryLimit)
}

func (suite *BoostServiceTestSuite) TestCreateBoost_FreshTierFromDays() {
	ctx := context.Background()

	suite.mockRepo.On("FindBoostByItemID", ctx, "beat-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveBoost", ctx, mock.MatchedBy(func(b domain.Boost) bool {
		return b.ItemID == "beat-1" && b.Tier == 2 && b.PriorityScore == 200
	})).Return(nil).Once()

	boost, err := suite.service.CreateBoost(ctx, "beat-1", "acct-1", 10)

	suite.Require().NoError(err)
	suite.Equal(2, boost.Tier)
	suite.Equal(200, boost.PriorityScore)
	// Expiry follows the purchased days, not the tier's canonical duration.
	suite.WithinDuration(boost.StartsAt.Add(10*24*time.Hour), boost.ExpiresAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BoostServiceTestSuite) TestCreateBoost_InvalidDaysRejected() {
	ctx := context.Background()

	_, err := suite.service.CreateBoost(ctx, "beat-1", "acct-1", 0)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBoost", mock.Anything, mock.Anything)
}

func (suite *BoostServiceTestSuite) TestActivateOrExtendBoost_FreshActivation() {
	ctx := context.Background()

	suite.mockRepo.On("FindBoostByItemID", ctx, "beat-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveBoost", ctx, mock.MatchedBy(func(b domain.Boost) bool {
		return b.Tier == 1 && b.PriorityScore == 100
	})).Return(nil).Once()

	boost, err := suite.service.ActivateOrExtendBoost(ctx, "beat-1", "acct-1", 1)

	suite.Require().NoError(err)
	suite.WithinDuration(boost.StartsAt.Add(domain.Tier1Duration), boost.ExpiresAt, time.Second)
}

func (suite *BoostServiceTestSuite) TestActivateOrExtendBoost_ExtendsFromExistingExpiry() {
	ctx := context.Background()
	now := time.Now().UTC()
	existing := &domain.Boost{
		BoostID:       "boost-1",
		ItemID:        "beat-1",
		OwnerID:       "acct-1",
		Tier:          1,
		PriorityScore: 100,
		StartsAt:      now.Add(-24 * time.Hour),
		ExpiresAt:     now.Add(48 * time.Hour),
		Version:       2,
	}

	suite.mockRepo.On("FindBoostByItemID", ctx, "beat-1").Return(existing, nil).Once()
	suite.mockRepo.On("SwapBoost", ctx, mock.MatchedBy(func(b domain.Boost) bool {
		// Renewal extends from the current expiry, not from now.
		return b.Tier == 2 && b.PriorityScore == 200 &&
			b.ExpiresAt.Sub(existing.ExpiresAt) == domain.Tier2Duration &&
			b.StartsAt.Equal(existing.StartsAt)
	}), int64(2)).Return(nil).Once()

	boost, err := suite.service.ActivateOrExtendBoost(ctx, "beat-1", "acct-1", 2)

	suite.Require().NoError(err)
	suite.Equal(int64(3), boost.Version)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BoostServiceTestSuite) TestActivateOrExtendBoost_ExpiredBoostRestarts() {
	ctx := context.Background()
	now := time.Now().UTC()
	existing := &domain.Boost{
		BoostID:   "boost-1",
		ItemID:    "beat-1",
		OwnerID:   "acct-1",
		Tier:      3,
		StartsAt:  now.Add(-40 * 24 * time.Hour),
		ExpiresAt: now.Add(-10 * 24 * time.Hour),
		Version:   5,
	}

	suite.mockRepo.On("FindBoostByItemID", ctx, "beat-1").Return(existing, nil).Once()
	suite.mockRepo.On("SwapBoost", ctx, mock.MatchedBy(func(b domain.Boost) bool {
		return b.StartsAt.After(existing.StartsAt) &&
			b.ExpiresAt.Sub(b.StartsAt) == domain.Tier1Duration
	}), int64(5)).Return(nil).Once()

	boost, err := suite.service.ActivateOrExtendBoost(ctx, "beat-1", "acct-1", 1)

	suite.Require().NoError(err)
	suite.True(boost.ActiveAt(now))
}

func (suite *BoostServiceTestSuite) TestActivateOrExtendBoost_InvalidTierRejected() {
	ctx := context.Background()

	_, err := suite.service.ActivateOrExtendBoost(ctx, "beat-1", "acct-1", 4)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindBoostByItemID", mock.Anything, mock.Anything)
}

func (suite *BoostServiceTestSuite) TestActivateOrExtendBoost_LostInsertRaceRetriesAsExtension() {
	ctx := context.Background()
	now := time.Now().UTC()
	winner := &domain.Boost{
		BoostID:   "boost-1",
		ItemID:    "beat-1",
		OwnerID:   "acct-1",
		Tier:      1,
		StartsAt:  now,
		ExpiresAt: now.Add(domain.Tier1Duration),
		Version:   1,
	}

	suite.mockRepo.On("FindBoostByItemID", ctx, "beat-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveBoost", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()
	suite.mockRepo.On("FindBoostByItemID", ctx, "beat-1").Return(winner, nil).Once()
	suite.mockRepo.On("SwapBoost", ctx, mock.Anything, int64(1)).Return(nil).Once()

	_, err := suite.service.ActivateOrExtendBoost(ctx, "beat-1", "acct-1", 1)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BoostServiceTestSuite) TestPauseBoost_ExpiresImmediately() {
	ctx := context.Background()
	now := time.Now().UTC()
	existing := &domain.Boost{
		BoostID:   "boost-1",
		ItemID:    "beat-1",
		OwnerID:   "acct-1",
		ExpiresAt: now.Add(5 * 24 * time.Hour),
		Version:   3,
	}

	suite.mockRepo.On("FindBoostByID", ctx, "boost-1").Return(existing, nil).Once()
	suite.mockRepo.On("SwapBoost", ctx, mock.MatchedBy(func(b domain.Boost) bool {
		return !b.ExpiresAt.After(time.Now().UTC())
	}), int64(3)).Return(nil).Once()

	boost, err := suite.service.PauseBoost(ctx, "boost-1", "acct-1")

	suite.Require().NoError(err)
	suite.False(boost.ActiveAt(time.Now().UTC()))
}

func (suite *BoostServiceTestSuite) TestPauseBoost_NonOwnerSeesNotFound() {
	ctx := context.Background()
	existing := &domain.Boost{BoostID: "boost-1", OwnerID: "acct-1", Version: 1}

	suite.mockRepo.On("FindBoostByID", ctx, "boost-1").Return(existing, nil).Once()

	_, err := suite.service.PauseBoost(ctx, "boost-1", "acct-2")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SwapBoost", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BoostServiceTestSuite) TestListActiveBoosts_Delegates() {
	ctx := context.Background()
	boosts := []domain.Boost{{BoostID: "boost-1", PriorityScore: 300}}

	suite.mockRepo.On("ListActiveBoosts", ctx, mock.AnythingOfType("time.Time"), 20, 0).Return(boosts, nil).Once()

	got, err := suite.service.ListActiveBoosts(ctx, 20, 0)

	suite.Require().NoError(err)
	suite.Len(got, 1)
}

func TestBoostServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BoostServiceTestSuite))
}
