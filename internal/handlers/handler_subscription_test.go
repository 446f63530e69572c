package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riddimbasellc-sys/riddimbase-backend/internal/apperrors"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/dto"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SubscriptionHandlerTestSuite struct {
	suite.Suite
}

func activeSubscription() *domain.Subscription {
	return &domain.Subscription{
		SubscriptionID:   "sub-1",
		AccountID:        "acct-1",
		PlanID:           "producer",
		Status:           domain.SubscriptionActive,
		CurrentPeriodEnd: time.Now().UTC().Add(30 * 24 * time.Hour),
		AutoRenew:        true,
	}
}

func (suite *SubscriptionHandlerTestSuite) TestGetSubscription_Success() {
	router, mocks := newTestRouter()

	mocks.subscription.On("GetSubscription", mock.Anything, "acct-1").
		Return(activeSubscription(), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/subscription", nil)
	req.Header.Set(middleware.AccountIDHeader, "acct-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.SubscriptionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("producer", resp.PlanID)
	suite.Equal("active", resp.Status)
}

func (suite *SubscriptionHandlerTestSuite) TestGetSubscription_NoneReturns404() {
	router, mocks := newTestRouter()

	mocks.subscription.On("GetSubscription", mock.Anything, "acct-1").
		Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/subscription", nil)
	req.Header.Set(middleware.AccountIDHeader, "acct-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SubscriptionHandlerTestSuite) TestRenewSubscription_Success() {
	router, mocks := newTestRouter()

	mocks.subscription.On("SyncRenewal", mock.Anything, "acct-1", "producer", "stripe-sub-1").
		Return(activeSubscription(), nil).Once()

	body, _ := json.Marshal(dto.RenewSubscriptionRequest{PlanID: "producer", ProviderSubscriptionID: "stripe-sub-1"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/subscription/renew", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.AccountIDHeader, "acct-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	mocks.subscription.AssertExpectations(suite.T())
}

func (suite *SubscriptionHandlerTestSuite) TestRenewSubscription_UnknownPlanReturns404() {
	router, mocks := newTestRouter()

	mocks.subscription.On("SyncRenewal", mock.Anything, "acct-1", "bogus", "").
		Return(nil, apperrors.ErrNotFound).Once()

	body, _ := json.Marshal(dto.RenewSubscriptionRequest{PlanID: "bogus"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/subscription/renew", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.AccountIDHeader, "acct-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SubscriptionHandlerTestSuite) TestCancelSubscription_Success() {
	router, mocks := newTestRouter()

	canceled := activeSubscription()
	canceled.CancelAtPeriodEnd = true
	canceled.AutoRenew = false
	mocks.subscription.On("CancelAtPeriodEnd", mock.Anything, "acct-1").
		Return(canceled, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/subscription/cancel", nil)
	req.Header.Set(middleware.AccountIDHeader, "acct-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.SubscriptionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.CancelAtPeriodEnd)
	suite.False(resp.AutoRenew)
}

func (suite *SubscriptionHandlerTestSuite) TestListPlans_PublicRoute() {
	router, mocks := newTestRouter()

	plans := []domain.Plan{
		{PlanID: "starter", Name: "Starter", MonthlyCredits: 2000, MonthlyPriceUSD: decimal.RequireFromString("9.99"), PeriodDays: 30, IsActive: true},
	}
	mocks.subscription.On("ListPlans", mock.Anything).Return(plans, nil).Once()

	// No identity header: the catalog read is public.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.PlanResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("starter", resp[0].PlanID)
}

func TestSubscriptionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionHandlerTestSuite))
}
