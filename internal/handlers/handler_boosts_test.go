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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BoostsHandlerTestSuite struct {
	suite.Suite
}

func (suite *BoostsHandlerTestSuite) activeBoost() *domain.Boost {
	now := time.Now().UTC()
	return &domain.Boost{
		BoostID:       "boost-1",
		ItemID:        "beat-1",
		OwnerID:       "acct-1",
		Tier:          2,
		PriorityScore: 200,
		StartsAt:      now,
		ExpiresAt:     now.Add(domain.Tier2Duration),
	}
}

func (suite *BoostsHandlerTestSuite) TestCreateBoost_Success() {
	router, mocks := newTestRouter()

	mocks.boost.On("CreateBoost", mock.Anything, "beat-1", "acct-1", 10).
		Return(suite.activeBoost(), nil).Once()

	body, _ := json.Marshal(dto.CreateBoostRequest{ItemID: "beat-1", Days: 10})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/boosts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.AccountIDHeader, "acct-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.BoostResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(2, resp.Tier)
	suite.True(resp.Active)
	mocks.boost.AssertExpectations(suite.T())
}

func (suite *BoostsHandlerTestSuite) TestActivateBoost_InvalidTierFailsBinding() {
	router, mocks := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/boosts/activate", bytes.NewReader([]byte(`{"itemID":"beat-1","tier":4}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.AccountIDHeader, "acct-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	mocks.boost.AssertNotCalled(suite.T(), "ActivateOrExtendBoost", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BoostsHandlerTestSuite) TestActivateBoost_Success() {
	router, mocks := newTestRouter()

	mocks.boost.On("ActivateOrExtendBoost", mock.Anything, "beat-1", "acct-1", 2).
		Return(suite.activeBoost(), nil).Once()

	body, _ := json.Marshal(dto.ActivateBoostRequest{ItemID: "beat-1", Tier: 2})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/boosts/activate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.AccountIDHeader, "acct-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	mocks.boost.AssertExpectations(suite.T())
}

func (suite *BoostsHandlerTestSuite) TestPauseBoost_NotFoundForNonOwner() {
	router, mocks := newTestRouter()

	mocks.boost.On("PauseBoost", mock.Anything, "boost-1", "acct-2").
		Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/boosts/boost-1/pause", nil)
	req.Header.Set(middleware.AccountIDHeader, "acct-2")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *BoostsHandlerTestSuite) TestDeleteBoost_NoContent() {
	router, mocks := newTestRouter()

	mocks.boost.On("DeleteBoost", mock.Anything, "boost-1").Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/boosts/boost-1", nil)
	req.Header.Set(middleware.AccountIDHeader, "acct-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	mocks.boost.AssertExpectations(suite.T())
}

func (suite *BoostsHandlerTestSuite) TestListActiveBoosts_PublicRoute() {
	router, mocks := newTestRouter()

	boosts := []domain.Boost{*suite.activeBoost()}
	mocks.boost.On("ListActiveBoosts", mock.Anything, 20, 0).Return(boosts, nil).Once()

	// No identity header: the ranking read is public.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/boosts/active", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.BoostResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal(200, resp[0].PriorityScore)
}

func (suite *BoostsHandlerTestSuite) TestListActiveBoosts_StoreFailureDegradesToEmpty() {
	router, mocks := newTestRouter()

	mocks.boost.On("ListActiveBoosts", mock.Anything, 20, 0).
		Return(nil, apperrors.ErrUnavailable).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/boosts/active", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.BoostResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Empty(resp)
}

func TestBoostsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BoostsHandlerTestSuite))
}
